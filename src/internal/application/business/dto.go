package business

import (
	"time"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
)

// ===========================
// 共用 Output DTO
// ===========================

// RewardDTO 獎勵項目（Output DTO）
//
// 設計原則：
// - 只包含外部需要的數據，使用原始類型（避免暴露 Domain 對象）
type RewardDTO struct {
	RewardID    string
	Title       string
	Description string
	PointsCost  int
	Category    string
}

// BusinessDTO 商家（Output DTO）
type BusinessDTO struct {
	BusinessID string
	Name       string
	AdminOwner string
	JoinCode   string
	Rewards    []RewardDTO
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// toRewardDTO 將 Domain 獎勵轉換為 DTO
func toRewardDTO(r business.Reward) RewardDTO {
	return RewardDTO{
		RewardID:    r.RewardID().String(),
		Title:       r.Title(),
		Description: r.Description(),
		PointsCost:  r.PointsCost().Value(),
		Category:    r.Category(),
	}
}

// toBusinessDTO 將 Domain 商家轉換為 DTO
func toBusinessDTO(b *business.Business) *BusinessDTO {
	rewards := make([]RewardDTO, 0, len(b.Rewards()))
	for _, r := range b.Rewards() {
		rewards = append(rewards, toRewardDTO(r))
	}

	return &BusinessDTO{
		BusinessID: b.BusinessID().String(),
		Name:       b.Name(),
		AdminOwner: b.AdminOwner().String(),
		JoinCode:   b.JoinCode().String(),
		Rewards:    rewards,
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
}
