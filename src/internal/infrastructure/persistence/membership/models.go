package membership

import (
	"sort"
	"time"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/membership"
	"github.com/shopspring/decimal"
)

// ===========================
// GORM Models
// ===========================

// MembershipGORM 會籍資料表模型
//
// 資料庫約束：
// - membership_id: 主鍵（UUID）
// - (user_id, business_id): 複合唯一索引
//   （冪等加入的基礎：併發首次加入只有一方能插入成功）
type MembershipGORM struct {
	MembershipID string `gorm:"column:membership_id;type:varchar(36);primaryKey"`
	UserID       string `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:idx_memberships_user_business"`
	BusinessID   string `gorm:"column:business_id;type:varchar(36);not null;uniqueIndex:idx_memberships_user_business"`

	PointsBalance int `gorm:"column:points_balance;not null;default:0"`

	// 審計欄位
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (MembershipGORM) TableName() string {
	return "memberships"
}

// PurchaseGORM 消費記錄資料表模型
//
// 資料庫約束：
// - purchase_id: 主鍵（UUID）
// - membership_id: 索引（日誌歸屬）
// - source_id: 唯一索引（nullable；appeal 來源的記錄攜帶申訴 ID，
//   唯一約束保證同一申訴至多入帳一次；direct 來源為 NULL，
//   NULL 不參與唯一性比較）
// - position: 日誌內的附加順序
type PurchaseGORM struct {
	PurchaseID   string `gorm:"column:purchase_id;type:varchar(36);primaryKey"`
	MembershipID string `gorm:"column:membership_id;type:varchar(36);not null;index"`

	Item         string          `gorm:"column:item;type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	PointsEarned int             `gorm:"column:points_earned;not null"`
	Status       string          `gorm:"column:status;type:varchar(16);not null;default:''"`
	Source       string          `gorm:"column:source;type:varchar(16);not null"`
	SourceID     *string         `gorm:"column:source_id;type:varchar(36);uniqueIndex"`

	Position    int       `gorm:"column:position;not null"`
	PurchasedAt time.Time `gorm:"column:purchased_at;not null"`
}

// TableName 指定資料表名稱
func (PurchaseGORM) TableName() string {
	return "purchases"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 聚合
//
// 轉換邏輯：
// - purchases 依 position 排序後重建，維持附加順序
// - ReconstructMembership 會驗證餘額不變條件，
//   資料損壞時返回 ErrCorruptedBalance
func toDomain(m *MembershipGORM, purchases []PurchaseGORM) (*membership.Membership, error) {
	membershipID, err := membership.MembershipIDFromString(m.MembershipID)
	if err != nil {
		return nil, err
	}

	userID, err := membership.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	businessID, err := membership.BusinessIDFromString(m.BusinessID)
	if err != nil {
		return nil, err
	}

	sort.Slice(purchases, func(i, j int) bool {
		return purchases[i].Position < purchases[j].Position
	})

	log := make([]membership.Purchase, 0, len(purchases))
	for _, p := range purchases {
		purchase, err := purchaseToDomain(&p)
		if err != nil {
			return nil, err
		}
		log = append(log, purchase)
	}

	return membership.ReconstructMembership(
		membershipID,
		userID,
		businessID,
		m.PointsBalance,
		log,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// purchaseToDomain 將 GORM 消費記錄模型轉換為 Domain 實體
func purchaseToDomain(p *PurchaseGORM) (membership.Purchase, error) {
	purchaseID, err := membership.PurchaseIDFromString(p.PurchaseID)
	if err != nil {
		return membership.Purchase{}, err
	}

	sourceID := ""
	if p.SourceID != nil {
		sourceID = *p.SourceID
	}

	return membership.ReconstructPurchase(
		purchaseID,
		p.Item,
		p.Amount,
		p.PointsEarned,
		membership.PurchaseStatus(p.Status),
		membership.PurchaseSource(p.Source),
		sourceID,
		p.PurchasedAt,
	)
}

// toGORM 將 Domain 聚合轉換為會籍列模型
func toGORM(m *membership.Membership) *MembershipGORM {
	return &MembershipGORM{
		MembershipID:  m.MembershipID().String(),
		UserID:        m.UserID().String(),
		BusinessID:    m.BusinessID().String(),
		PointsBalance: m.PointsBalance(),
		CreatedAt:     m.CreatedAt(),
		UpdatedAt:     m.UpdatedAt(),
	}
}

// purchaseToGORM 將 Domain 消費記錄轉換為 GORM 模型
//
// 注意：direct 來源的 sourceID 為空字串，存為 NULL
// 以免空字串互相撞上唯一索引
func purchaseToGORM(membershipID string, p membership.Purchase, position int) PurchaseGORM {
	var sourceID *string
	if p.SourceID() != "" {
		s := p.SourceID()
		sourceID = &s
	}

	return PurchaseGORM{
		PurchaseID:   p.PurchaseID().String(),
		MembershipID: membershipID,
		Item:         p.Item(),
		Amount:       p.Amount(),
		PointsEarned: p.PointsEarned(),
		Status:       string(p.Status()),
		Source:       string(p.Source()),
		SourceID:     sourceID,
		Position:     position,
		PurchasedAt:  p.PurchasedAt(),
	}
}
