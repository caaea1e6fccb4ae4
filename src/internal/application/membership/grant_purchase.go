package membership

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/membership"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// GrantPurchase Use Case
// ===========================

// GrantPurchaseCommand 直接發放消費點數的命令
//
// 輸入：
// - Amount: 消費金額的十進位字串（例如 "4.50"）
// - PointsEarned: 點數增減（正為發放，負為兌換扣點）
type GrantPurchaseCommand struct {
	UserID       string
	BusinessID   string
	Item         string
	Amount       string
	PointsEarned int
}

// GrantPurchaseResult 發放結果
type GrantPurchaseResult struct {
	MembershipID  string
	PurchaseID    string
	PointsEarned  int
	PointsBalance int
}

// GrantPurchaseUseCase 直接發放消費點數 Use Case
//
// 使用場景：
// - 管理員掃描顧客 QR Code 後，依消費內容直接發放點數
// - 顧客兌換獎勵時扣點（PointsEarned 為負）
//
// 職責：
// 1. 驗證輸入並轉換為 Domain 對象
// 2. 會籍不存在時自動建立（首次消費即加入）
// 3. 在同一事務中附加消費記錄並更新餘額
type GrantPurchaseUseCase struct {
	membershipRepo membership.MembershipRepository
	enrollUC       *EnrollMembershipUseCase
	txManager      shared.TransactionManager
}

// NewGrantPurchaseUseCase 創建 Use Case 實例
func NewGrantPurchaseUseCase(
	membershipRepo membership.MembershipRepository,
	enrollUC *EnrollMembershipUseCase,
	txManager shared.TransactionManager,
) *GrantPurchaseUseCase {
	return &GrantPurchaseUseCase{
		membershipRepo: membershipRepo,
		enrollUC:       enrollUC,
		txManager:      txManager,
	}
}

// Execute 執行發放
//
// 執行流程：
// 1. 驗證輸入（ID 格式、金額格式、消費記錄約束）
// 2. 在事務中執行：
//    a. 查找會籍；不存在則自動建立（複用 EnrollMembership 的
//       冪等邏輯，含商家存在性檢查）
//    b. AppendPurchase（餘額變動的唯一路徑）
//    c. 保存
//
// 錯誤處理：
// - ErrInvalidPurchaseAmount: 金額為負或非十進位字串
// - ErrBusinessNotFound: 商家不存在（自動建立路徑）
func (uc *GrantPurchaseUseCase) Execute(cmd GrantPurchaseCommand) (*GrantPurchaseResult, error) {
	// 1. 驗證輸入
	userID, err := membership.UserIDFromString(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user ID: %w", err)
	}

	businessID, err := membership.BusinessIDFromString(cmd.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	amount, err := decimal.NewFromString(cmd.Amount)
	if err != nil {
		return nil, membership.ErrInvalidPurchaseAmount.WithContext(
			"amount", cmd.Amount,
			"reason", "not a decimal string",
		)
	}

	purchase, err := membership.NewPurchase(
		cmd.Item,
		amount,
		cmd.PointsEarned,
		membership.StatusNone,
		membership.SourceDirect,
		"",
	)
	if err != nil {
		return nil, err
	}

	// 2. 在事務中執行
	var result *GrantPurchaseResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		m, err := uc.findOrEnroll(ctx, cmd, userID, businessID)
		if err != nil {
			return err
		}

		m.AppendPurchase(purchase)

		if err := uc.membershipRepo.Update(ctx, m); err != nil {
			return err
		}

		result = &GrantPurchaseResult{
			MembershipID:  m.MembershipID().String(),
			PurchaseID:    purchase.PurchaseID().String(),
			PointsEarned:  purchase.PointsEarned(),
			PointsBalance: m.PointsBalance(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// findOrEnroll 查找會籍，不存在時自動建立
func (uc *GrantPurchaseUseCase) findOrEnroll(
	ctx shared.TransactionContext,
	cmd GrantPurchaseCommand,
	userID membership.UserID,
	businessID membership.BusinessID,
) (*membership.Membership, error) {
	m, err := uc.membershipRepo.FindByUserAndBusiness(ctx, userID, businessID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, membership.ErrMembershipNotFound) {
		return nil, err
	}

	enrolled, err := uc.enrollUC.ExecuteWithContext(ctx, EnrollMembershipCommand{
		UserID:     cmd.UserID,
		BusinessID: cmd.BusinessID,
	})
	if err != nil {
		return nil, err
	}

	membershipID, err := membership.MembershipIDFromString(enrolled.MembershipID)
	if err != nil {
		return nil, err
	}

	return uc.membershipRepo.FindByID(ctx, membershipID)
}
