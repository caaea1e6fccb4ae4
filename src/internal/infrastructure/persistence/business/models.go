package business

import (
	"sort"
	"time"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
)

// ===========================
// GORM Models
// ===========================

// BusinessGORM 商家資料表模型
//
// 設計原則：
// - 僅用於 Infrastructure Layer（不暴露給 Domain Layer）
// - 與 Domain Business 聚合分離（Mapper 轉換）
//
// 資料庫約束：
// - business_id: 主鍵（UUID）
// - join_code: 唯一索引（全系統唯一的加入碼）
type BusinessGORM struct {
	// 識別欄位
	BusinessID string `gorm:"column:business_id;type:varchar(36);primaryKey"`
	Name       string `gorm:"column:name;type:varchar(255);not null"`
	AdminOwner string `gorm:"column:admin_owner;type:varchar(36);not null;index"`

	// 自助加入
	JoinCode string `gorm:"column:join_code;type:varchar(8);uniqueIndex;not null"`

	// 審計欄位
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	Version   int       `gorm:"column:version;not null;default:1"` // 樂觀鎖
}

// TableName 指定資料表名稱
func (BusinessGORM) TableName() string {
	return "businesses"
}

// RewardGORM 獎勵目錄資料表模型
//
// 資料庫約束：
// - reward_id: 主鍵（UUID）
// - business_id: 索引（目錄歸屬）
// - position: 目錄內的展示順序（插入順序）
type RewardGORM struct {
	RewardID   string `gorm:"column:reward_id;type:varchar(36);primaryKey"`
	BusinessID string `gorm:"column:business_id;type:varchar(36);not null;index"`

	Title       string `gorm:"column:title;type:varchar(255);not null"`
	Description string `gorm:"column:description;type:text"`
	PointsCost  int    `gorm:"column:points_cost;not null"`
	Category    string `gorm:"column:category;type:varchar(100)"`

	Position int `gorm:"column:position;not null"`
}

// TableName 指定資料表名稱
func (RewardGORM) TableName() string {
	return "rewards"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 聚合
//
// 轉換邏輯：
// - rewards 依 position 排序後重建，維持目錄展示順序
// - 所有值對象經 checked constructor 重建（損壞資料擋在領域層外）
func toDomain(b *BusinessGORM, rewards []RewardGORM) (*business.Business, error) {
	businessID, err := business.BusinessIDFromString(b.BusinessID)
	if err != nil {
		return nil, err
	}

	adminOwner, err := business.UserIDFromString(b.AdminOwner)
	if err != nil {
		return nil, err
	}

	joinCode, err := business.NewJoinCode(b.JoinCode)
	if err != nil {
		return nil, err
	}

	sort.Slice(rewards, func(i, j int) bool {
		return rewards[i].Position < rewards[j].Position
	})

	catalog := make([]business.Reward, 0, len(rewards))
	for _, r := range rewards {
		reward, err := rewardToDomain(&r)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, reward)
	}

	return business.ReconstructBusiness(
		businessID,
		b.Name,
		adminOwner,
		joinCode,
		catalog,
		b.CreatedAt,
		b.UpdatedAt,
		b.Version,
	)
}

// rewardToDomain 將 GORM 獎勵模型轉換為 Domain 實體
func rewardToDomain(r *RewardGORM) (business.Reward, error) {
	rewardID, err := business.RewardIDFromString(r.RewardID)
	if err != nil {
		return business.Reward{}, err
	}

	pointsCost, err := business.NewPointsCost(r.PointsCost)
	if err != nil {
		return business.Reward{}, err
	}

	return business.ReconstructReward(rewardID, r.Title, r.Description, pointsCost, r.Category)
}

// toGORM 將 Domain 聚合轉換為 GORM 模型（商家列 + 目錄列）
func toGORM(b *business.Business) (*BusinessGORM, []RewardGORM) {
	domainRewards := b.Rewards()
	rewards := make([]RewardGORM, 0, len(domainRewards))
	for i, r := range domainRewards {
		rewards = append(rewards, RewardGORM{
			RewardID:    r.RewardID().String(),
			BusinessID:  b.BusinessID().String(),
			Title:       r.Title(),
			Description: r.Description(),
			PointsCost:  r.PointsCost().Value(),
			Category:    r.Category(),
			Position:    i,
		})
	}

	return &BusinessGORM{
		BusinessID: b.BusinessID().String(),
		Name:       b.Name(),
		AdminOwner: b.AdminOwner().String(),
		JoinCode:   b.JoinCode().String(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
		Version:    b.Version(),
	}, rewards
}
