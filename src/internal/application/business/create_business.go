package business

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
)

// ===========================
// CreateBusiness Use Case
// ===========================

// maxJoinCodeAttempts 加入碼衝突時的最大重試次數
//
// 31^8 的碼空間下衝突機率極低，重試多於一次的情況
// 幾乎只會發生在資料損壞或亂數源異常時
const maxJoinCodeAttempts = 5

// CreateBusinessCommand 創建商家的命令
//
// 輸入：
// - Name: 商家名稱（必填）
// - AdminOwner: 管理員用戶 ID（UUID 字串）
type CreateBusinessCommand struct {
	Name       string
	AdminOwner string
}

// CreateBusinessResult 創建商家的結果
//
// 輸出：
// - JoinCode: 系統指派的加入碼（管理員需要展示給顧客）
type CreateBusinessResult struct {
	BusinessID string
	Name       string
	JoinCode   string
}

// CreateBusinessUseCase 創建商家 Use Case
//
// 職責：
// 1. 驗證輸入（AdminOwner 格式）
// 2. 生成唯一加入碼並創建商家聚合
// 3. 保存到 Repository（在事務中）
//
// 設計原則：
// - 並發安全：加入碼唯一性依賴資料庫唯一約束，
//   衝突時重新生成並重試（非 check-then-insert）
type CreateBusinessUseCase struct {
	businessRepo business.BusinessRepository
	txManager    shared.TransactionManager
}

// NewCreateBusinessUseCase 創建 Use Case 實例
func NewCreateBusinessUseCase(
	repo business.BusinessRepository,
	txManager shared.TransactionManager,
) *CreateBusinessUseCase {
	return &CreateBusinessUseCase{
		businessRepo: repo,
		txManager:    txManager,
	}
}

// Execute 執行創建商家
//
// 執行流程：
// 1. 驗證 AdminOwner 格式
// 2. 生成加入碼、創建商家聚合
// 3. 在事務中保存；加入碼唯一約束衝突時換碼重試
//
// 錯誤處理：
// - ErrInvalidUserID: AdminOwner 格式無效
// - ErrInvalidBusinessName: 名稱為空
// - ErrJoinCodeAlreadyExists: 連續重試仍衝突（極罕見）
func (uc *CreateBusinessUseCase) Execute(cmd CreateBusinessCommand) (*CreateBusinessResult, error) {
	// 1. 驗證並轉換 AdminOwner
	adminOwner, err := business.UserIDFromString(cmd.AdminOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin owner ID: %w", err)
	}

	// 2. 生成加入碼並保存；唯一約束衝突時換碼重試
	var lastErr error
	for attempt := 0; attempt < maxJoinCodeAttempts; attempt++ {
		joinCode, err := business.GenerateJoinCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate join code: %w", err)
		}

		newBusiness, err := business.NewBusiness(cmd.Name, adminOwner, joinCode)
		if err != nil {
			return nil, fmt.Errorf("failed to create business: %w", err)
		}

		err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
			return uc.businessRepo.Save(ctx, newBusiness)
		})
		if err == nil {
			return &CreateBusinessResult{
				BusinessID: newBusiness.BusinessID().String(),
				Name:       newBusiness.Name(),
				JoinCode:   newBusiness.JoinCode().String(),
			}, nil
		}

		if !errors.Is(err, business.ErrJoinCodeAlreadyExists) {
			return nil, fmt.Errorf("failed to save business: %w", err)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("exhausted join code attempts: %w", lastErr)
}
