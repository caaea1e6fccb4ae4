package membership

import (
	"time"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/membership"
)

// ===========================
// 共用 Output DTO
// ===========================

// PurchaseDTO 消費記錄（Output DTO）
//
// 設計原則：
// - 只包含外部需要的數據，使用原始類型（避免暴露 Domain 對象）
// - Amount 以十進位字串輸出，調用端不做浮點運算
type PurchaseDTO struct {
	PurchaseID   string
	Item         string
	Amount       string
	PointsEarned int
	Status       string
	Source       string
	SourceID     string
	PurchasedAt  time.Time
}

// MembershipDTO 會籍（Output DTO）
type MembershipDTO struct {
	MembershipID  string
	UserID        string
	BusinessID    string
	PointsBalance int
	Purchases     []PurchaseDTO
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// toPurchaseDTO 將 Domain 消費記錄轉換為 DTO
func toPurchaseDTO(p membership.Purchase) PurchaseDTO {
	return PurchaseDTO{
		PurchaseID:   p.PurchaseID().String(),
		Item:         p.Item(),
		Amount:       p.Amount().String(),
		PointsEarned: p.PointsEarned(),
		Status:       string(p.Status()),
		Source:       string(p.Source()),
		SourceID:     p.SourceID(),
		PurchasedAt:  p.PurchasedAt(),
	}
}

// toMembershipDTO 將 Domain 會籍轉換為 DTO
func toMembershipDTO(m *membership.Membership) *MembershipDTO {
	domainPurchases := m.Purchases()
	purchases := make([]PurchaseDTO, 0, len(domainPurchases))
	for _, p := range domainPurchases {
		purchases = append(purchases, toPurchaseDTO(p))
	}

	return &MembershipDTO{
		MembershipID:  m.MembershipID().String(),
		UserID:        m.UserID().String(),
		BusinessID:    m.BusinessID().String(),
		PointsBalance: m.PointsBalance(),
		Purchases:     purchases,
		CreatedAt:     m.CreatedAt(),
		UpdatedAt:     m.UpdatedAt(),
	}
}
