package appeal

import (
	"strings"
	"time"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// AppealStatus 值對象
// ===========================

// AppealStatus 申訴狀態
//
// 狀態機：
//   pending ──Approve──▶ approved（終態）
//   pending ──Reject───▶ rejected（終態）
//
// 不存在其他轉換：終態之間不可互轉，也不可回到 pending
type AppealStatus string

// 申訴狀態常量
const (
	StatusPending  AppealStatus = "pending"
	StatusApproved AppealStatus = "approved"
	StatusRejected AppealStatus = "rejected"
)

// IsValid 檢查狀態是否有效
func (s AppealStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsResolved 檢查是否為終態（已核准或已駁回）
func (s AppealStatus) IsResolved() bool {
	return s == StatusApproved || s == StatusRejected
}

// ===========================
// PurchaseAppeal 聚合根
// ===========================

// PurchaseAppeal 消費申訴聚合根
//
// 顧客主張某筆消費未獲點數時提交申訴，等待商家管理員裁決。
// 核准後由 Application Layer 在同一事務中將點數入帳至會籍。
//
// 業務不變條件：
// - pointsExpected 永遠為正（提交時驗證，終身不變）
// - amount 永遠非負
// - 裁決（approved / rejected）是終態，每個申訴至多被裁決一次
// - resolvedAt / reviewerID 僅在終態下有值
type PurchaseAppeal struct {
	// 聚合根識別符
	appealID   AppealID
	userID     UserID
	businessID BusinessID

	// 申訴內容
	item           string
	amount         decimal.Decimal
	pointsExpected int
	appealReason   string

	// 裁決狀態
	status       AppealStatus
	reviewerID   string
	rejectReason string

	// 審計欄位
	submittedAt time.Time
	resolvedAt  *time.Time

	// 待發布的領域事件
	events []shared.DomainEvent
}

// NewPurchaseAppeal 創建新申訴（初始狀態為 pending）
//
// 業務規則：
// - item 不能為空白
// - amount 不能為負數（零元消費的申訴合法，例如招待品項漏給點數）
// - pointsExpected 必須為正整數
// - appealReason 可為空（顧客未必補充說明）
// - 發布 AppealSubmitted 事件
func NewPurchaseAppeal(
	userID UserID,
	businessID BusinessID,
	item string,
	amount decimal.Decimal,
	pointsExpected int,
	appealReason string,
) (*PurchaseAppeal, error) {
	if userID.IsEmpty() {
		return nil, ErrInvalidUserID.WithContext(
			"reason", "userID cannot be empty",
		)
	}
	if businessID.IsEmpty() {
		return nil, ErrInvalidBusinessID.WithContext(
			"reason", "businessID cannot be empty",
		)
	}

	item = strings.TrimSpace(item)
	if item == "" {
		return nil, ErrInvalidItem.WithContext(
			"reason", "item cannot be empty",
		)
	}

	if amount.IsNegative() {
		return nil, ErrInvalidAmount.WithContext(
			"amount", amount.String(),
		)
	}

	if pointsExpected <= 0 {
		return nil, ErrInvalidPoints.WithContext(
			"points_expected", pointsExpected,
		)
	}

	a := &PurchaseAppeal{
		appealID:       NewAppealID(),
		userID:         userID,
		businessID:     businessID,
		item:           item,
		amount:         amount,
		pointsExpected: pointsExpected,
		appealReason:   strings.TrimSpace(appealReason),
		status:         StatusPending,
		submittedAt:    time.Now(),
		events:         make([]shared.DomainEvent, 0),
	}

	a.addEvent(NewAppealSubmittedEvent(a.appealID, userID, businessID, pointsExpected))

	return a, nil
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// Approve 核准申訴（核心業務邏輯）
//
// 業務規則：
// - 只有 pending 狀態可被核准；終態下返回 ErrAppealAlreadyResolved
// - 記錄審核者與裁決時間
// - 發布 AppealApprovedEvent
//
// 注意：聚合內的狀態檢查是第一道防線；
// 併發裁決的最終仲裁由 Repository 的 MarkResolved
// 條件更新（WHERE status = 'pending'）完成
func (a *PurchaseAppeal) Approve(reviewerID string) error {
	if a.status.IsResolved() {
		return ErrAppealAlreadyResolved.WithContext(
			"appeal_id", a.appealID.String(),
			"status", string(a.status),
		)
	}
	if strings.TrimSpace(reviewerID) == "" {
		return ErrInvalidReviewerID.WithContext(
			"reason", "reviewerID cannot be empty",
		)
	}

	now := time.Now()
	a.status = StatusApproved
	a.reviewerID = reviewerID
	a.resolvedAt = &now

	a.addEvent(NewAppealApprovedEvent(a.appealID, a.userID, a.businessID, a.pointsExpected, reviewerID))

	return nil
}

// Reject 駁回申訴
//
// 業務規則：
// - 只有 pending 狀態可被駁回；終態下返回 ErrAppealAlreadyResolved
// - 駁回不觸及任何會籍餘額
// - reason 可為空（商家未必說明理由）
func (a *PurchaseAppeal) Reject(reviewerID string, reason string) error {
	if a.status.IsResolved() {
		return ErrAppealAlreadyResolved.WithContext(
			"appeal_id", a.appealID.String(),
			"status", string(a.status),
		)
	}
	if strings.TrimSpace(reviewerID) == "" {
		return ErrInvalidReviewerID.WithContext(
			"reason", "reviewerID cannot be empty",
		)
	}

	now := time.Now()
	a.status = StatusRejected
	a.reviewerID = reviewerID
	a.rejectReason = strings.TrimSpace(reason)
	a.resolvedAt = &now

	a.addEvent(NewAppealRejectedEvent(a.appealID, a.userID, a.businessID, reviewerID, a.rejectReason))

	return nil
}

// ===========================
// 事件管理
// ===========================

// addEvent 添加領域事件到待發布列表（私有方法）
func (a *PurchaseAppeal) addEvent(event shared.DomainEvent) {
	a.events = append(a.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
func (a *PurchaseAppeal) PullEvents() []shared.DomainEvent {
	events := a.events
	a.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// 查詢方法（Getters）
// ===========================

// AppealID 獲取申訴 ID
func (a *PurchaseAppeal) AppealID() AppealID {
	return a.appealID
}

// UserID 獲取用戶 ID
func (a *PurchaseAppeal) UserID() UserID {
	return a.userID
}

// BusinessID 獲取商家 ID
func (a *PurchaseAppeal) BusinessID() BusinessID {
	return a.businessID
}

// Item 獲取消費品項
func (a *PurchaseAppeal) Item() string {
	return a.item
}

// Amount 獲取消費金額
func (a *PurchaseAppeal) Amount() decimal.Decimal {
	return a.amount
}

// PointsExpected 獲取主張的點數
func (a *PurchaseAppeal) PointsExpected() int {
	return a.pointsExpected
}

// AppealReason 獲取申訴理由（可為空）
func (a *PurchaseAppeal) AppealReason() string {
	return a.appealReason
}

// Status 獲取申訴狀態
func (a *PurchaseAppeal) Status() AppealStatus {
	return a.status
}

// IsResolved 檢查申訴是否已被裁決
func (a *PurchaseAppeal) IsResolved() bool {
	return a.status.IsResolved()
}

// ReviewerID 獲取審核者 ID（未裁決時為空字串）
func (a *PurchaseAppeal) ReviewerID() string {
	return a.reviewerID
}

// RejectReason 獲取駁回理由（僅駁回時有值）
func (a *PurchaseAppeal) RejectReason() string {
	return a.rejectReason
}

// SubmittedAt 獲取提交時間
func (a *PurchaseAppeal) SubmittedAt() time.Time {
	return a.submittedAt
}

// ResolvedAt 獲取裁決時間（未裁決時為 nil）
func (a *PurchaseAppeal) ResolvedAt() *time.Time {
	return a.resolvedAt
}

// ===========================
// 聚合重建方法（僅供 Infrastructure Layer 使用）
// ===========================

// ReconstructPurchaseAppeal 從持久化存儲重建申訴聚合
//
// 與 NewPurchaseAppeal 的區別：
// - 不生成新 ID、不發布事件（事件已發生過）
// - 仍驗證不變條件：資料損壞不得進入領域層
func ReconstructPurchaseAppeal(
	appealID AppealID,
	userID UserID,
	businessID BusinessID,
	item string,
	amount decimal.Decimal,
	pointsExpected int,
	appealReason string,
	status AppealStatus,
	reviewerID string,
	rejectReason string,
	submittedAt time.Time,
	resolvedAt *time.Time,
) (*PurchaseAppeal, error) {
	if appealID.IsEmpty() {
		return nil, ErrInvalidAppealID.WithContext(
			"reason", "invalid appeal ID in database",
		)
	}
	if userID.IsEmpty() {
		return nil, ErrInvalidUserID.WithContext(
			"reason", "invalid user ID in database",
		)
	}
	if businessID.IsEmpty() {
		return nil, ErrInvalidBusinessID.WithContext(
			"reason", "invalid business ID in database",
		)
	}
	if !status.IsValid() {
		return nil, ErrInvalidAppealStatus.WithContext(
			"status", string(status),
		)
	}
	if item == "" {
		return nil, ErrInvalidItem.WithContext(
			"reason", "empty item in database",
		)
	}
	if amount.IsNegative() {
		return nil, ErrInvalidAmount.WithContext(
			"amount", amount.String(),
		)
	}
	if pointsExpected <= 0 {
		return nil, ErrInvalidPoints.WithContext(
			"points_expected", pointsExpected,
		)
	}

	return &PurchaseAppeal{
		appealID:       appealID,
		userID:         userID,
		businessID:     businessID,
		item:           item,
		amount:         amount,
		pointsExpected: pointsExpected,
		appealReason:   appealReason,
		status:         status,
		reviewerID:     reviewerID,
		rejectReason:   rejectReason,
		submittedAt:    submittedAt,
		resolvedAt:     resolvedAt,
		events:         make([]shared.DomainEvent, 0),
	}, nil
}
