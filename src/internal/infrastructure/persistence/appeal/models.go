package appeal

import (
	"time"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/appeal"
	"github.com/shopspring/decimal"
)

// ===========================
// GORM Models
// ===========================

// AppealGORM 消費申訴資料表模型
//
// 資料庫約束：
// - appeal_id: 主鍵（UUID）
// - (business_id, status): 複合索引（待審佇列查詢）
// - submitted_at: 索引（先到先審排序）
type AppealGORM struct {
	AppealID   string `gorm:"column:appeal_id;type:varchar(36);primaryKey"`
	UserID     string `gorm:"column:user_id;type:varchar(36);not null;index"`
	BusinessID string `gorm:"column:business_id;type:varchar(36);not null;index:idx_appeals_business_status"`

	// 申訴內容
	Item           string          `gorm:"column:item;type:varchar(255);not null"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	PointsExpected int             `gorm:"column:points_expected;not null"`
	AppealReason   string          `gorm:"column:appeal_reason;type:text"`

	// 裁決狀態
	Status       string     `gorm:"column:status;type:varchar(16);not null;index:idx_appeals_business_status"`
	ReviewerID   string     `gorm:"column:reviewer_id;type:varchar(36)"`
	RejectReason string     `gorm:"column:reject_reason;type:text"`
	SubmittedAt  time.Time  `gorm:"column:submitted_at;not null;index"`
	ResolvedAt   *time.Time `gorm:"column:resolved_at"`
}

// TableName 指定資料表名稱
func (AppealGORM) TableName() string {
	return "purchase_appeals"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 聚合
func toDomain(a *AppealGORM) (*appeal.PurchaseAppeal, error) {
	appealID, err := appeal.AppealIDFromString(a.AppealID)
	if err != nil {
		return nil, err
	}

	userID, err := appeal.UserIDFromString(a.UserID)
	if err != nil {
		return nil, err
	}

	businessID, err := appeal.BusinessIDFromString(a.BusinessID)
	if err != nil {
		return nil, err
	}

	return appeal.ReconstructPurchaseAppeal(
		appealID,
		userID,
		businessID,
		a.Item,
		a.Amount,
		a.PointsExpected,
		a.AppealReason,
		appeal.AppealStatus(a.Status),
		a.ReviewerID,
		a.RejectReason,
		a.SubmittedAt,
		a.ResolvedAt,
	)
}

// toGORM 將 Domain 聚合轉換為 GORM 模型
func toGORM(a *appeal.PurchaseAppeal) *AppealGORM {
	return &AppealGORM{
		AppealID:       a.AppealID().String(),
		UserID:         a.UserID().String(),
		BusinessID:     a.BusinessID().String(),
		Item:           a.Item(),
		Amount:         a.Amount(),
		PointsExpected: a.PointsExpected(),
		AppealReason:   a.AppealReason(),
		Status:         string(a.Status()),
		ReviewerID:     a.ReviewerID(),
		RejectReason:   a.RejectReason(),
		SubmittedAt:    a.SubmittedAt(),
		ResolvedAt:     a.ResolvedAt(),
	}
}
