package appeal

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/appeal"
	domainmembership "github.com/jackyeh168/loyalty_crm/src/internal/domain/membership"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"

	appmembership "github.com/jackyeh168/loyalty_crm/src/internal/application/membership"
)

// ===========================
// ReconcileLedger Use Case
// ===========================

// ReconcileLedgerCommand 對帳修復的命令
type ReconcileLedgerCommand struct {
	BusinessID string
}

// ReconcileLedgerResult 對帳修復的結果
//
// 輸出：
// - CheckedCount: 掃描的已核准申訴數
// - RepairedAppealIDs: 本次補入帳的申訴 ID
type ReconcileLedgerResult struct {
	CheckedCount      int
	RepairedAppealIDs []string
}

// ReconcileLedgerUseCase 對帳修復 Use Case
//
// 不變條件：每個已核准的申訴都必須有一筆對應的入帳記錄
// （purchases.source_id = 申訴 ID）。正常流程下核准與入帳在
// 同一事務中完成，此不變條件不會被破壞；對帳是針對
// 歷史資料損壞或外部直接改庫的防護網。
//
// 職責：
// 1. 掃描商家的所有已核准申訴
// 2. 缺少入帳記錄者，逐筆在獨立事務中補入帳
// 3. 補入帳失敗的申訴集中報告為 ErrLedgerInconsistent（需人工介入）
type ReconcileLedgerUseCase struct {
	appealRepo     appeal.AppealRepository
	membershipRepo domainmembership.MembershipRepository
	enrollUC       *appmembership.EnrollMembershipUseCase
	txManager      shared.TransactionManager
}

// NewReconcileLedgerUseCase 創建 Use Case 實例
func NewReconcileLedgerUseCase(
	appealRepo appeal.AppealRepository,
	membershipRepo domainmembership.MembershipRepository,
	enrollUC *appmembership.EnrollMembershipUseCase,
	txManager shared.TransactionManager,
) *ReconcileLedgerUseCase {
	return &ReconcileLedgerUseCase{
		appealRepo:     appealRepo,
		membershipRepo: membershipRepo,
		enrollUC:       enrollUC,
		txManager:      txManager,
	}
}

// Execute 執行對帳修復
//
// 執行流程：
// 1. 列出商家的已核准申訴（唯讀，不開事務）
// 2. 逐筆檢查 source_id 入帳記錄是否存在
// 3. 缺失者在獨立事務中補入帳；
//    補入帳時撞上 source_id 唯一約束視為已修復（併發對帳）
// 4. 任何一筆修復失敗 → ErrLedgerInconsistent（附申訴 ID 列表）
//
// 錯誤處理：
// - ErrInvalidBusinessID: ID 格式無效
// - ErrLedgerInconsistent: 存在無法自動修復的缺帳
func (uc *ReconcileLedgerUseCase) Execute(cmd ReconcileLedgerCommand) (*ReconcileLedgerResult, error) {
	businessID, err := appeal.BusinessIDFromString(cmd.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	approved, err := uc.appealRepo.ListApprovedByBusiness(nil, businessID)
	if err != nil {
		return nil, err
	}

	result := &ReconcileLedgerResult{
		CheckedCount:      len(approved),
		RepairedAppealIDs: make([]string, 0),
	}
	failed := make([]string, 0)

	for _, a := range approved {
		exists, err := uc.membershipRepo.ExistsPurchaseBySourceID(nil, a.AppealID().String())
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		if err := uc.repair(a); err != nil {
			failed = append(failed, a.AppealID().String())
			continue
		}
		result.RepairedAppealIDs = append(result.RepairedAppealIDs, a.AppealID().String())
	}

	if len(failed) > 0 {
		return nil, appeal.ErrLedgerInconsistent.WithContext(
			"business_id", cmd.BusinessID,
			"appeal_ids", failed,
		)
	}

	return result, nil
}

// repair 在獨立事務中補入一筆缺失的入帳記錄
func (uc *ReconcileLedgerUseCase) repair(a *appeal.PurchaseAppeal) error {
	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		m, err := uc.findOrEnrollMembership(ctx, a)
		if err != nil {
			return err
		}

		// 併發對帳下另一個修復可能已先完成
		if m.HasPurchaseFromSource(a.AppealID().String()) {
			return nil
		}

		purchase, err := domainmembership.NewPurchase(
			a.Item(),
			a.Amount(),
			a.PointsExpected(),
			domainmembership.StatusApproved,
			domainmembership.SourceAppeal,
			a.AppealID().String(),
		)
		if err != nil {
			return err
		}
		m.AppendPurchase(purchase)

		if err := uc.membershipRepo.Update(ctx, m); err != nil {
			// source_id 唯一約束衝突 = 已被併發修復，視為成功
			if errors.Is(err, domainmembership.ErrPurchaseAlreadyApplied) {
				return nil
			}
			return err
		}
		return nil
	})
}

// findOrEnrollMembership 查找申訴者的會籍，不存在時自動建立
func (uc *ReconcileLedgerUseCase) findOrEnrollMembership(
	ctx shared.TransactionContext,
	a *appeal.PurchaseAppeal,
) (*domainmembership.Membership, error) {
	userID, err := domainmembership.UserIDFromString(a.UserID().String())
	if err != nil {
		return nil, err
	}
	businessID, err := domainmembership.BusinessIDFromString(a.BusinessID().String())
	if err != nil {
		return nil, err
	}

	m, err := uc.membershipRepo.FindByUserAndBusiness(ctx, userID, businessID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, domainmembership.ErrMembershipNotFound) {
		return nil, err
	}

	enrolled, err := uc.enrollUC.ExecuteWithContext(ctx, appmembership.EnrollMembershipCommand{
		UserID:     a.UserID().String(),
		BusinessID: a.BusinessID().String(),
	})
	if err != nil {
		return nil, err
	}

	membershipID, err := domainmembership.MembershipIDFromString(enrolled.MembershipID)
	if err != nil {
		return nil, err
	}

	return uc.membershipRepo.FindByID(ctx, membershipID)
}
