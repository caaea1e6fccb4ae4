package appeal

import (
	"time"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/appeal"
)

// ===========================
// 共用 Output DTO
// ===========================

// AppealDTO 申訴（Output DTO）
//
// 設計原則：
// - 只包含外部需要的數據，使用原始類型（避免暴露 Domain 對象）
// - Amount 以十進位字串輸出
type AppealDTO struct {
	AppealID       string
	UserID         string
	BusinessID     string
	Item           string
	Amount         string
	PointsExpected int
	AppealReason   string
	Status         string
	ReviewerID     string
	RejectReason   string
	SubmittedAt    time.Time
	ResolvedAt     *time.Time
}

// toAppealDTO 將 Domain 申訴轉換為 DTO
func toAppealDTO(a *appeal.PurchaseAppeal) *AppealDTO {
	return &AppealDTO{
		AppealID:       a.AppealID().String(),
		UserID:         a.UserID().String(),
		BusinessID:     a.BusinessID().String(),
		Item:           a.Item(),
		Amount:         a.Amount().String(),
		PointsExpected: a.PointsExpected(),
		AppealReason:   a.AppealReason(),
		Status:         string(a.Status()),
		ReviewerID:     a.ReviewerID(),
		RejectReason:   a.RejectReason(),
		SubmittedAt:    a.SubmittedAt(),
		ResolvedAt:     a.ResolvedAt(),
	}
}
