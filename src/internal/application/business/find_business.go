package business

import (
	"fmt"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
)

// ===========================
// FindBusinessByJoinCode Use Case
// ===========================

// FindBusinessByJoinCodeQuery 加入碼查找商家的查詢
type FindBusinessByJoinCodeQuery struct {
	JoinCode string
}

// FindBusinessByJoinCodeUseCase 加入碼查找商家 Use Case
//
// 使用場景：
// - 顧客輸入商家展示的加入碼，App 解析出商家資料後發起加入
//
// 設計原則：
// - 純讀操作，不開啟事務（ctx 傳 nil，auto-commit）
type FindBusinessByJoinCodeUseCase struct {
	businessRepo business.BusinessRepository
}

// NewFindBusinessByJoinCodeUseCase 創建 Use Case 實例
func NewFindBusinessByJoinCodeUseCase(repo business.BusinessRepository) *FindBusinessByJoinCodeUseCase {
	return &FindBusinessByJoinCodeUseCase{businessRepo: repo}
}

// Execute 執行查找
//
// 錯誤處理：
// - ErrInvalidJoinCode: 加入碼格式無效（不查詢資料庫）
// - ErrBusinessNotFound: 加入碼未對應任何商家
func (uc *FindBusinessByJoinCodeUseCase) Execute(query FindBusinessByJoinCodeQuery) (*BusinessDTO, error) {
	code, err := business.NewJoinCode(query.JoinCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse join code: %w", err)
	}

	found, err := uc.businessRepo.FindByJoinCode(nil, code)
	if err != nil {
		return nil, err
	}

	return toBusinessDTO(found), nil
}

// ===========================
// GetBusiness Use Case
// ===========================

// GetBusinessQuery 商家 ID 查找的查詢
type GetBusinessQuery struct {
	BusinessID string
}

// GetBusinessUseCase 查找商家 Use Case（含完整獎勵目錄）
type GetBusinessUseCase struct {
	businessRepo business.BusinessRepository
}

// NewGetBusinessUseCase 創建 Use Case 實例
func NewGetBusinessUseCase(repo business.BusinessRepository) *GetBusinessUseCase {
	return &GetBusinessUseCase{businessRepo: repo}
}

// Execute 執行查找
//
// 錯誤處理：
// - ErrInvalidBusinessID: ID 格式無效
// - ErrBusinessNotFound: 商家不存在
func (uc *GetBusinessUseCase) Execute(query GetBusinessQuery) (*BusinessDTO, error) {
	businessID, err := business.BusinessIDFromString(query.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	found, err := uc.businessRepo.FindByID(nil, businessID)
	if err != nil {
		return nil, err
	}

	return toBusinessDTO(found), nil
}
