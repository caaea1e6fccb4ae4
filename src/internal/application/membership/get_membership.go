package membership

import (
	"fmt"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/membership"
)

// ===========================
// GetMembership Use Case
// ===========================

// GetMembershipQuery 查詢單一會籍
type GetMembershipQuery struct {
	UserID     string
	BusinessID string
}

// GetMembershipUseCase 查詢會籍 Use Case（含完整消費日誌）
//
// 設計原則：
// - 純讀操作，不開啟事務（ctx 傳 nil，auto-commit）
type GetMembershipUseCase struct {
	membershipRepo membership.MembershipRepository
}

// NewGetMembershipUseCase 創建 Use Case 實例
func NewGetMembershipUseCase(repo membership.MembershipRepository) *GetMembershipUseCase {
	return &GetMembershipUseCase{membershipRepo: repo}
}

// Execute 執行查詢
//
// 錯誤處理：
// - ErrInvalidUserID / ErrInvalidBusinessID: ID 格式無效
// - ErrMembershipNotFound: 會籍不存在
// - ErrCorruptedBalance: 餘額與消費記錄不一致（資料損壞）
func (uc *GetMembershipUseCase) Execute(query GetMembershipQuery) (*MembershipDTO, error) {
	userID, err := membership.UserIDFromString(query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user ID: %w", err)
	}

	businessID, err := membership.BusinessIDFromString(query.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	m, err := uc.membershipRepo.FindByUserAndBusiness(nil, userID, businessID)
	if err != nil {
		return nil, err
	}

	return toMembershipDTO(m), nil
}

// ===========================
// ListMemberships Use Case
// ===========================

// ListMembershipsQuery 列出用戶所有會籍
type ListMembershipsQuery struct {
	UserID string
}

// ListMembershipsUseCase 列出用戶所有會籍 Use Case
//
// 使用場景：
// - 顧客 App 首頁展示所有已加入的商家與各自餘額
type ListMembershipsUseCase struct {
	membershipRepo membership.MembershipRepository
}

// NewListMembershipsUseCase 創建 Use Case 實例
func NewListMembershipsUseCase(repo membership.MembershipRepository) *ListMembershipsUseCase {
	return &ListMembershipsUseCase{membershipRepo: repo}
}

// Execute 執行查詢（依建立時間排序）
func (uc *ListMembershipsUseCase) Execute(query ListMembershipsQuery) ([]*MembershipDTO, error) {
	userID, err := membership.UserIDFromString(query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user ID: %w", err)
	}

	memberships, err := uc.membershipRepo.FindAllByUser(nil, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*MembershipDTO, 0, len(memberships))
	for _, m := range memberships {
		dtos = append(dtos, toMembershipDTO(m))
	}

	return dtos, nil
}
