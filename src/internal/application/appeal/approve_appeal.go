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
// ApproveAppeal Use Case
// ===========================

// ApproveAppealCommand 核准申訴的命令
type ApproveAppealCommand struct {
	AppealID   string
	ReviewerID string
}

// ApproveAppealResult 核准申訴的結果
//
// 輸出：
// - PointsGranted: 入帳的點數（等於申訴主張的點數）
// - PointsBalance: 入帳後的會籍餘額
type ApproveAppealResult struct {
	AppealID      string
	MembershipID  string
	PointsGranted int
	PointsBalance int
}

// ApproveAppealUseCase 核准申訴 Use Case
//
// 這是整個系統最關鍵的事務邊界：申訴狀態轉移與點數入帳
// 必須同時生效或同時失敗，任何中間狀態都不可觀察。
//
// at-most-once 保證（三道防線）：
// 1. 聚合狀態檢查：Approve 對非 pending 申訴返回 ErrAppealAlreadyResolved
// 2. MarkResolved 條件更新（WHERE status = 'pending'）：
//    併發裁決的最終仲裁點，落敗方影響 0 列
// 3. purchases.source_id 唯一約束：同一申訴至多產生一筆入帳記錄
//
// 自動建立會籍：
// - 申訴者尚無該商家會籍時，在同一事務中自動建立
//   （顧客可能正因點數未入帳而從未出現在會籍名單中）
type ApproveAppealUseCase struct {
	appealRepo     appeal.AppealRepository
	membershipRepo domainmembership.MembershipRepository
	enrollUC       *appmembership.EnrollMembershipUseCase
	txManager      shared.TransactionManager
}

// NewApproveAppealUseCase 創建 Use Case 實例
func NewApproveAppealUseCase(
	appealRepo appeal.AppealRepository,
	membershipRepo domainmembership.MembershipRepository,
	enrollUC *appmembership.EnrollMembershipUseCase,
	txManager shared.TransactionManager,
) *ApproveAppealUseCase {
	return &ApproveAppealUseCase{
		appealRepo:     appealRepo,
		membershipRepo: membershipRepo,
		enrollUC:       enrollUC,
		txManager:      txManager,
	}
}

// Execute 執行核准申訴
//
// 執行流程（單一事務）：
// 1. 載入申訴
// 2. 聚合狀態轉移（pending → approved）
// 3. MarkResolved 條件更新（併發仲裁）
// 4. 查找或自動建立會籍
// 5. 附加 approved 消費記錄（點數入帳的唯一路徑）
// 6. 保存會籍
//
// 錯誤處理：
// - ErrAppealNotFound: 申訴不存在
// - ErrAppealAlreadyResolved: 申訴已被裁決（含併發落敗）
// - ErrPurchaseAlreadyApplied: 同一申訴重複入帳（唯一約束兜底）
func (uc *ApproveAppealUseCase) Execute(cmd ApproveAppealCommand) (*ApproveAppealResult, error) {
	appealID, err := appeal.AppealIDFromString(cmd.AppealID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse appeal ID: %w", err)
	}

	var result *ApproveAppealResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 1. 載入申訴
		a, err := uc.appealRepo.FindByID(ctx, appealID)
		if err != nil {
			return err
		}

		// 2. 聚合狀態轉移
		if err := a.Approve(cmd.ReviewerID); err != nil {
			return err
		}

		// 3. 條件更新：併發裁決的最終仲裁
		if err := uc.appealRepo.MarkResolved(ctx, a); err != nil {
			return err
		}

		// 4. 查找或自動建立會籍
		m, err := uc.findOrEnrollMembership(ctx, a)
		if err != nil {
			return err
		}

		// 5. 點數入帳
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

		// 6. 保存會籍（source_id 唯一約束在此兜底）
		if err := uc.membershipRepo.Update(ctx, m); err != nil {
			return err
		}

		result = &ApproveAppealResult{
			AppealID:      a.AppealID().String(),
			MembershipID:  m.MembershipID().String(),
			PointsGranted: a.PointsExpected(),
			PointsBalance: m.PointsBalance(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// findOrEnrollMembership 查找申訴者的會籍，不存在時在同一事務中自動建立
func (uc *ApproveAppealUseCase) findOrEnrollMembership(
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
