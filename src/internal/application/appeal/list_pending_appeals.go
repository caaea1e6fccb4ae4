package appeal

import (
	"fmt"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/appeal"
)

// ===========================
// ListPendingAppeals Use Case
// ===========================

// ListPendingAppealsQuery 列出待裁決申訴的查詢
type ListPendingAppealsQuery struct {
	BusinessID string
}

// ListPendingAppealsUseCase 列出待裁決申訴 Use Case
//
// 使用場景：
// - 商家管理後台的申訴收件匣
//
// 設計原則：
// - 純讀操作，不開啟事務（ctx 傳 nil，auto-commit）
// - 排序由 Repository 保證：依提交時間由舊到新（先到先審）
type ListPendingAppealsUseCase struct {
	appealRepo appeal.AppealRepository
}

// NewListPendingAppealsUseCase 創建 Use Case 實例
func NewListPendingAppealsUseCase(repo appeal.AppealRepository) *ListPendingAppealsUseCase {
	return &ListPendingAppealsUseCase{appealRepo: repo}
}

// Execute 執行查詢
//
// 錯誤處理：
// - ErrInvalidBusinessID: ID 格式無效
func (uc *ListPendingAppealsUseCase) Execute(query ListPendingAppealsQuery) ([]*AppealDTO, error) {
	businessID, err := appeal.BusinessIDFromString(query.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	appeals, err := uc.appealRepo.ListPendingByBusiness(nil, businessID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*AppealDTO, 0, len(appeals))
	for _, a := range appeals {
		dtos = append(dtos, toAppealDTO(a))
	}

	return dtos, nil
}
