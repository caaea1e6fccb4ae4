package appeal

import (
	"fmt"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/appeal"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
)

// ===========================
// RejectAppeal Use Case
// ===========================

// RejectAppealCommand 駁回申訴的命令
//
// 輸入：
// - Reason: 駁回理由（可為空）
type RejectAppealCommand struct {
	AppealID   string
	ReviewerID string
	Reason     string
}

// RejectAppealResult 駁回申訴的結果
type RejectAppealResult struct {
	AppealID string
	Status   string
}

// RejectAppealUseCase 駁回申訴 Use Case
//
// 職責：
// 1. 載入申訴、聚合狀態轉移（pending → rejected）
// 2. MarkResolved 條件更新（與核准共用併發仲裁機制）
//
// 注意：駁回不觸及任何會籍餘額
type RejectAppealUseCase struct {
	appealRepo appeal.AppealRepository
	txManager  shared.TransactionManager
}

// NewRejectAppealUseCase 創建 Use Case 實例
func NewRejectAppealUseCase(
	appealRepo appeal.AppealRepository,
	txManager shared.TransactionManager,
) *RejectAppealUseCase {
	return &RejectAppealUseCase{
		appealRepo: appealRepo,
		txManager:  txManager,
	}
}

// Execute 執行駁回申訴
//
// 錯誤處理：
// - ErrAppealNotFound: 申訴不存在
// - ErrAppealAlreadyResolved: 申訴已被裁決（含併發落敗）
func (uc *RejectAppealUseCase) Execute(cmd RejectAppealCommand) (*RejectAppealResult, error) {
	appealID, err := appeal.AppealIDFromString(cmd.AppealID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse appeal ID: %w", err)
	}

	var result *RejectAppealResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		a, err := uc.appealRepo.FindByID(ctx, appealID)
		if err != nil {
			return err
		}

		if err := a.Reject(cmd.ReviewerID, cmd.Reason); err != nil {
			return err
		}

		if err := uc.appealRepo.MarkResolved(ctx, a); err != nil {
			return err
		}

		result = &RejectAppealResult{
			AppealID: a.AppealID().String(),
			Status:   string(a.Status()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
