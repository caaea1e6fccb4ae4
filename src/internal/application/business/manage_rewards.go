package business

import (
	"fmt"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
)

// ===========================
// AddReward Use Case
// ===========================

// AddRewardCommand 新增獎勵的命令
type AddRewardCommand struct {
	BusinessID  string
	Title       string
	Description string
	PointsCost  int
	Category    string
}

// AddRewardResult 新增獎勵的結果
type AddRewardResult struct {
	RewardID   string
	BusinessID string
}

// AddRewardUseCase 新增獎勵 Use Case
//
// 職責：
// 1. 驗證輸入並轉換為 Value Object
// 2. 載入商家聚合，委派目錄變更給聚合方法
// 3. 在事務中保存（load-modify-save）
type AddRewardUseCase struct {
	businessRepo business.BusinessRepository
	txManager    shared.TransactionManager
}

// NewAddRewardUseCase 創建 Use Case 實例
func NewAddRewardUseCase(
	repo business.BusinessRepository,
	txManager shared.TransactionManager,
) *AddRewardUseCase {
	return &AddRewardUseCase{
		businessRepo: repo,
		txManager:    txManager,
	}
}

// Execute 執行新增獎勵
//
// 錯誤處理：
// - ErrInvalidBusinessID / ErrInvalidRewardTitle / ErrInvalidPointsCost: 輸入驗證失敗
// - ErrBusinessNotFound: 商家不存在
// - ErrRewardAlreadyExists: 獎勵 ID 重複（實務上不會發生，ID 為新生成）
func (uc *AddRewardUseCase) Execute(cmd AddRewardCommand) (*AddRewardResult, error) {
	// 1. 驗證輸入
	businessID, err := business.BusinessIDFromString(cmd.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	pointsCost, err := business.NewPointsCost(cmd.PointsCost)
	if err != nil {
		return nil, err
	}

	reward, err := business.NewReward(cmd.Title, cmd.Description, pointsCost, cmd.Category)
	if err != nil {
		return nil, err
	}

	// 2. 在事務中載入、變更、保存
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		b, err := uc.businessRepo.FindByID(ctx, businessID)
		if err != nil {
			return err
		}

		if err := b.AddReward(reward); err != nil {
			return err
		}

		return uc.businessRepo.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return &AddRewardResult{
		RewardID:   reward.RewardID().String(),
		BusinessID: cmd.BusinessID,
	}, nil
}

// ===========================
// UpdateReward Use Case
// ===========================

// UpdateRewardCommand 更新獎勵的命令（整體替換）
type UpdateRewardCommand struct {
	BusinessID  string
	RewardID    string
	Title       string
	Description string
	PointsCost  int
	Category    string
}

// UpdateRewardUseCase 更新獎勵 Use Case
type UpdateRewardUseCase struct {
	businessRepo business.BusinessRepository
	txManager    shared.TransactionManager
}

// NewUpdateRewardUseCase 創建 Use Case 實例
func NewUpdateRewardUseCase(
	repo business.BusinessRepository,
	txManager shared.TransactionManager,
) *UpdateRewardUseCase {
	return &UpdateRewardUseCase{
		businessRepo: repo,
		txManager:    txManager,
	}
}

// Execute 執行更新獎勵
//
// 錯誤處理：
// - ErrRewardNotFound: 獎勵不存在於商家目錄
func (uc *UpdateRewardUseCase) Execute(cmd UpdateRewardCommand) error {
	businessID, err := business.BusinessIDFromString(cmd.BusinessID)
	if err != nil {
		return fmt.Errorf("failed to parse business ID: %w", err)
	}

	rewardID, err := business.RewardIDFromString(cmd.RewardID)
	if err != nil {
		return fmt.Errorf("failed to parse reward ID: %w", err)
	}

	pointsCost, err := business.NewPointsCost(cmd.PointsCost)
	if err != nil {
		return err
	}

	// 保留原 RewardID，整體替換其餘欄位
	reward, err := business.ReconstructReward(rewardID, cmd.Title, cmd.Description, pointsCost, cmd.Category)
	if err != nil {
		return err
	}

	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		b, err := uc.businessRepo.FindByID(ctx, businessID)
		if err != nil {
			return err
		}

		if err := b.UpdateReward(reward); err != nil {
			return err
		}

		return uc.businessRepo.Update(ctx, b)
	})
}

// ===========================
// RemoveReward Use Case
// ===========================

// RemoveRewardCommand 移除獎勵的命令
type RemoveRewardCommand struct {
	BusinessID string
	RewardID   string
}

// RemoveRewardUseCase 移除獎勵 Use Case
type RemoveRewardUseCase struct {
	businessRepo business.BusinessRepository
	txManager    shared.TransactionManager
}

// NewRemoveRewardUseCase 創建 Use Case 實例
func NewRemoveRewardUseCase(
	repo business.BusinessRepository,
	txManager shared.TransactionManager,
) *RemoveRewardUseCase {
	return &RemoveRewardUseCase{
		businessRepo: repo,
		txManager:    txManager,
	}
}

// Execute 執行移除獎勵
//
// 錯誤處理：
// - ErrRewardNotFound: 獎勵不存在於商家目錄
func (uc *RemoveRewardUseCase) Execute(cmd RemoveRewardCommand) error {
	businessID, err := business.BusinessIDFromString(cmd.BusinessID)
	if err != nil {
		return fmt.Errorf("failed to parse business ID: %w", err)
	}

	rewardID, err := business.RewardIDFromString(cmd.RewardID)
	if err != nil {
		return fmt.Errorf("failed to parse reward ID: %w", err)
	}

	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		b, err := uc.businessRepo.FindByID(ctx, businessID)
		if err != nil {
			return err
		}

		if err := b.RemoveReward(rewardID); err != nil {
			return err
		}

		return uc.businessRepo.Update(ctx, b)
	})
}
