package membership

import (
	"time"

	"github.com/google/uuid"
)

// ===========================
// Membership 領域事件
// ===========================

// MembershipEnrolledEvent 會籍建立事件
type MembershipEnrolledEvent struct {
	eventID      string
	membershipID MembershipID
	userID       UserID
	businessID   BusinessID
	occurredAt   time.Time
}

// NewMembershipEnrolledEvent 創建會籍建立事件
func NewMembershipEnrolledEvent(
	membershipID MembershipID,
	userID UserID,
	businessID BusinessID,
) *MembershipEnrolledEvent {
	return &MembershipEnrolledEvent{
		eventID:      uuid.New().String(),
		membershipID: membershipID,
		userID:       userID,
		businessID:   businessID,
		occurredAt:   time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *MembershipEnrolledEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *MembershipEnrolledEvent) EventType() string {
	return "membership.enrolled"
}

// OccurredAt 實現 DomainEvent 介面
func (e *MembershipEnrolledEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *MembershipEnrolledEvent) AggregateID() string {
	return e.membershipID.String()
}

// MembershipID 獲取會籍 ID
func (e *MembershipEnrolledEvent) MembershipID() MembershipID {
	return e.membershipID
}

// UserID 獲取用戶 ID
func (e *MembershipEnrolledEvent) UserID() UserID {
	return e.userID
}

// BusinessID 獲取商家 ID
func (e *MembershipEnrolledEvent) BusinessID() BusinessID {
	return e.businessID
}

// ===========================
// PurchaseAppended 領域事件
// ===========================

// PurchaseAppendedEvent 消費記錄入帳事件
type PurchaseAppendedEvent struct {
	eventID      string
	membershipID MembershipID
	purchaseID   PurchaseID
	pointsEarned int
	newBalance   int
	occurredAt   time.Time
}

// NewPurchaseAppendedEvent 創建消費記錄入帳事件
func NewPurchaseAppendedEvent(
	membershipID MembershipID,
	purchaseID PurchaseID,
	pointsEarned int,
	newBalance int,
) *PurchaseAppendedEvent {
	return &PurchaseAppendedEvent{
		eventID:      uuid.New().String(),
		membershipID: membershipID,
		purchaseID:   purchaseID,
		pointsEarned: pointsEarned,
		newBalance:   newBalance,
		occurredAt:   time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *PurchaseAppendedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *PurchaseAppendedEvent) EventType() string {
	return "membership.purchase_appended"
}

// OccurredAt 實現 DomainEvent 介面
func (e *PurchaseAppendedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *PurchaseAppendedEvent) AggregateID() string {
	return e.membershipID.String()
}

// MembershipID 獲取會籍 ID
func (e *PurchaseAppendedEvent) MembershipID() MembershipID {
	return e.membershipID
}

// PurchaseID 獲取消費記錄 ID
func (e *PurchaseAppendedEvent) PurchaseID() PurchaseID {
	return e.purchaseID
}

// PointsEarned 獲取點數增減
func (e *PurchaseAppendedEvent) PointsEarned() int {
	return e.pointsEarned
}

// NewBalance 獲取入帳後餘額
func (e *PurchaseAppendedEvent) NewBalance() int {
	return e.newBalance
}
