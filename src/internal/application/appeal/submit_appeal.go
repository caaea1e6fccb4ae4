package appeal

import (
	"fmt"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/appeal"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// SubmitAppeal Use Case
// ===========================

// SubmitAppealCommand 提交申訴的命令
//
// 輸入：
// - Amount: 消費金額的十進位字串（例如 "4.50"）
// - PointsExpected: 主張應得的點數（必須為正）
// - Reason: 申訴理由（可為空）
type SubmitAppealCommand struct {
	UserID         string
	BusinessID     string
	Item           string
	Amount         string
	PointsExpected int
	Reason         string
}

// SubmitAppealResult 提交申訴的結果
type SubmitAppealResult struct {
	AppealID    string
	Status      string
	SubmittedAt string
}

// SubmitAppealUseCase 提交申訴 Use Case
//
// 職責：
// 1. 驗證輸入與商家存在性
// 2. 創建申訴聚合（pending 狀態）並保存
//
// 注意：提交不要求申訴者已有會籍——顧客可能正因為
// 點數未入帳而尚未出現在商家的會籍名單中。
// 會籍在申訴核准時自動建立
type SubmitAppealUseCase struct {
	appealRepo   appeal.AppealRepository
	businessRepo business.BusinessRepository
	txManager    shared.TransactionManager
}

// NewSubmitAppealUseCase 創建 Use Case 實例
func NewSubmitAppealUseCase(
	appealRepo appeal.AppealRepository,
	businessRepo business.BusinessRepository,
	txManager shared.TransactionManager,
) *SubmitAppealUseCase {
	return &SubmitAppealUseCase{
		appealRepo:   appealRepo,
		businessRepo: businessRepo,
		txManager:    txManager,
	}
}

// Execute 執行提交申訴
//
// 錯誤處理：
// - ErrInvalidUserID / ErrInvalidBusinessID: ID 格式無效
// - ErrInvalidItem / ErrInvalidAmount / ErrInvalidPoints: 申訴內容無效
// - ErrBusinessNotFound: 商家不存在
func (uc *SubmitAppealUseCase) Execute(cmd SubmitAppealCommand) (*SubmitAppealResult, error) {
	// 1. 驗證輸入
	userID, err := appeal.UserIDFromString(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user ID: %w", err)
	}

	businessID, err := appeal.BusinessIDFromString(cmd.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	amount, err := decimal.NewFromString(cmd.Amount)
	if err != nil {
		return nil, appeal.ErrInvalidAmount.WithContext(
			"amount", cmd.Amount,
			"reason", "not a decimal string",
		)
	}

	newAppeal, err := appeal.NewPurchaseAppeal(userID, businessID, cmd.Item, amount, cmd.PointsExpected, cmd.Reason)
	if err != nil {
		return nil, err
	}

	// 2. 在事務中檢查商家存在並保存
	directoryBusinessID, err := business.BusinessIDFromString(cmd.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		exists, err := uc.businessRepo.ExistsByID(ctx, directoryBusinessID)
		if err != nil {
			return err
		}
		if !exists {
			return business.ErrBusinessNotFound.WithContext(
				"business_id", cmd.BusinessID,
			)
		}

		return uc.appealRepo.Save(ctx, newAppeal)
	})
	if err != nil {
		return nil, err
	}

	return &SubmitAppealResult{
		AppealID:    newAppeal.AppealID().String(),
		Status:      string(newAppeal.Status()),
		SubmittedAt: newAppeal.SubmittedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
