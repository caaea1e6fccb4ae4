package appeal

import (
	"time"

	"github.com/google/uuid"
)

// ===========================
// Appeal 領域事件
// ===========================

// AppealSubmittedEvent 申訴提交事件
type AppealSubmittedEvent struct {
	eventID        string
	appealID       AppealID
	userID         UserID
	businessID     BusinessID
	pointsExpected int
	occurredAt     time.Time
}

// NewAppealSubmittedEvent 創建申訴提交事件
func NewAppealSubmittedEvent(
	appealID AppealID,
	userID UserID,
	businessID BusinessID,
	pointsExpected int,
) *AppealSubmittedEvent {
	return &AppealSubmittedEvent{
		eventID:        uuid.New().String(),
		appealID:       appealID,
		userID:         userID,
		businessID:     businessID,
		pointsExpected: pointsExpected,
		occurredAt:     time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *AppealSubmittedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *AppealSubmittedEvent) EventType() string {
	return "appeal.submitted"
}

// OccurredAt 實現 DomainEvent 介面
func (e *AppealSubmittedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *AppealSubmittedEvent) AggregateID() string {
	return e.appealID.String()
}

// AppealID 獲取申訴 ID
func (e *AppealSubmittedEvent) AppealID() AppealID {
	return e.appealID
}

// UserID 獲取用戶 ID
func (e *AppealSubmittedEvent) UserID() UserID {
	return e.userID
}

// BusinessID 獲取商家 ID
func (e *AppealSubmittedEvent) BusinessID() BusinessID {
	return e.businessID
}

// PointsExpected 獲取主張的點數
func (e *AppealSubmittedEvent) PointsExpected() int {
	return e.pointsExpected
}

// ===========================
// AppealApproved 領域事件
// ===========================

// AppealApprovedEvent 申訴核准事件
type AppealApprovedEvent struct {
	eventID        string
	appealID       AppealID
	userID         UserID
	businessID     BusinessID
	pointsExpected int
	reviewerID     string
	occurredAt     time.Time
}

// NewAppealApprovedEvent 創建申訴核准事件
func NewAppealApprovedEvent(
	appealID AppealID,
	userID UserID,
	businessID BusinessID,
	pointsExpected int,
	reviewerID string,
) *AppealApprovedEvent {
	return &AppealApprovedEvent{
		eventID:        uuid.New().String(),
		appealID:       appealID,
		userID:         userID,
		businessID:     businessID,
		pointsExpected: pointsExpected,
		reviewerID:     reviewerID,
		occurredAt:     time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *AppealApprovedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *AppealApprovedEvent) EventType() string {
	return "appeal.approved"
}

// OccurredAt 實現 DomainEvent 介面
func (e *AppealApprovedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *AppealApprovedEvent) AggregateID() string {
	return e.appealID.String()
}

// AppealID 獲取申訴 ID
func (e *AppealApprovedEvent) AppealID() AppealID {
	return e.appealID
}

// UserID 獲取用戶 ID
func (e *AppealApprovedEvent) UserID() UserID {
	return e.userID
}

// BusinessID 獲取商家 ID
func (e *AppealApprovedEvent) BusinessID() BusinessID {
	return e.businessID
}

// PointsExpected 獲取入帳的點數
func (e *AppealApprovedEvent) PointsExpected() int {
	return e.pointsExpected
}

// ReviewerID 獲取審核者 ID
func (e *AppealApprovedEvent) ReviewerID() string {
	return e.reviewerID
}

// ===========================
// AppealRejected 領域事件
// ===========================

// AppealRejectedEvent 申訴駁回事件
type AppealRejectedEvent struct {
	eventID    string
	appealID   AppealID
	userID     UserID
	businessID BusinessID
	reviewerID string
	reason     string
	occurredAt time.Time
}

// NewAppealRejectedEvent 創建申訴駁回事件
func NewAppealRejectedEvent(
	appealID AppealID,
	userID UserID,
	businessID BusinessID,
	reviewerID string,
	reason string,
) *AppealRejectedEvent {
	return &AppealRejectedEvent{
		eventID:    uuid.New().String(),
		appealID:   appealID,
		userID:     userID,
		businessID: businessID,
		reviewerID: reviewerID,
		reason:     reason,
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *AppealRejectedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *AppealRejectedEvent) EventType() string {
	return "appeal.rejected"
}

// OccurredAt 實現 DomainEvent 介面
func (e *AppealRejectedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *AppealRejectedEvent) AggregateID() string {
	return e.appealID.String()
}

// AppealID 獲取申訴 ID
func (e *AppealRejectedEvent) AppealID() AppealID {
	return e.appealID
}

// ReviewerID 獲取審核者 ID
func (e *AppealRejectedEvent) ReviewerID() string {
	return e.reviewerID
}

// Reason 獲取駁回理由
func (e *AppealRejectedEvent) Reason() string {
	return e.reason
}
