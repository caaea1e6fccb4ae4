package membership

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/membership"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// EnrollMembership Use Case
// ===========================

// welcomeBonusItem 迎新點數在消費日誌中的品項名稱
const welcomeBonusItem = "Welcome bonus"

// EnrollMembershipCommand 加入會籍的命令
//
// 輸入：
// - UserID: 用戶 ID（UUID 字串）
// - BusinessID: 商家 ID（UUID 字串）
type EnrollMembershipCommand struct {
	UserID     string
	BusinessID string
}

// EnrollMembershipResult 加入會籍的結果
//
// 輸出：
// - AlreadyEnrolled: 會籍先前已存在（冪等路徑），調用端可區分
//   「首次加入」與「重複加入」以決定是否展示歡迎訊息
type EnrollMembershipResult struct {
	MembershipID    string
	UserID          string
	BusinessID      string
	PointsBalance   int
	AlreadyEnrolled bool
}

// EnrollMembershipUseCase 加入會籍 Use Case
//
// 職責：
// 1. 驗證輸入與商家存在性
// 2. 冪等加入：會籍已存在時返回既有會籍，不報錯
// 3. 首次加入時發放迎新點數（如有設定）
//
// 並發安全：
// - 兩個請求同時首次加入時，依賴 (user_id, business_id)
//   複合唯一約束仲裁；落敗方捕捉 ErrMembershipAlreadyExists
//   後重新讀取，兩邊都拿到同一個會籍
type EnrollMembershipUseCase struct {
	membershipRepo membership.MembershipRepository
	businessRepo   business.BusinessRepository
	txManager      shared.TransactionManager

	// welcomeBonusPoints 首次加入發放的迎新點數（0 表示不發放）
	welcomeBonusPoints int
}

// NewEnrollMembershipUseCase 創建 Use Case 實例
func NewEnrollMembershipUseCase(
	membershipRepo membership.MembershipRepository,
	businessRepo business.BusinessRepository,
	txManager shared.TransactionManager,
	welcomeBonusPoints int,
) *EnrollMembershipUseCase {
	return &EnrollMembershipUseCase{
		membershipRepo:     membershipRepo,
		businessRepo:       businessRepo,
		txManager:          txManager,
		welcomeBonusPoints: welcomeBonusPoints,
	}
}

// Execute 執行加入會籍
//
// 執行流程：
// 1. 驗證 ID 格式
// 2. 在事務中執行：
//    a. 檢查商家存在
//    b. 查找既有會籍 → 存在則走冪等路徑
//    c. 創建會籍（含迎新點數）並保存
//    d. 唯一約束衝突 → 重新讀取並返回既有會籍
//
// 錯誤處理：
// - ErrInvalidUserID / ErrInvalidBusinessID: ID 格式無效
// - ErrBusinessNotFound: 商家不存在
func (uc *EnrollMembershipUseCase) Execute(cmd EnrollMembershipCommand) (*EnrollMembershipResult, error) {
	var result *EnrollMembershipResult

	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		result, err = uc.ExecuteWithContext(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ExecuteWithContext 在已有事務上下文中執行加入會籍
//
// 使用場景：
// - 申訴核准時自動建立會籍，必須與點數入帳在同一事務
//
// 注意：
// - 此方法不會開啟新事務（使用調用者提供的 ctx）
// - 錯誤時不會自動回滾（由調用者的 TransactionManager 處理）
func (uc *EnrollMembershipUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	cmd EnrollMembershipCommand,
) (*EnrollMembershipResult, error) {
	// 1. 驗證並轉換 ID
	userID, err := membership.UserIDFromString(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user ID: %w", err)
	}

	membershipBusinessID, err := membership.BusinessIDFromString(cmd.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	// 2. 檢查商家存在（跨 context 查詢，以字串重新解析）
	directoryBusinessID, err := business.BusinessIDFromString(cmd.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	exists, err := uc.businessRepo.ExistsByID(ctx, directoryBusinessID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, business.ErrBusinessNotFound.WithContext(
			"business_id", cmd.BusinessID,
		)
	}

	// 3. 冪等路徑：會籍已存在時直接返回
	existing, err := uc.membershipRepo.FindByUserAndBusiness(ctx, userID, membershipBusinessID)
	if err == nil {
		return uc.toResult(existing, true), nil
	}
	if !errors.Is(err, membership.ErrMembershipNotFound) {
		return nil, err
	}

	// 4. 創建新會籍
	newMembership, err := membership.NewMembership(userID, membershipBusinessID)
	if err != nil {
		return nil, err
	}

	if uc.welcomeBonusPoints > 0 {
		bonus, err := membership.NewPurchase(
			welcomeBonusItem,
			decimal.Zero,
			uc.welcomeBonusPoints,
			membership.StatusNone,
			membership.SourceDirect,
			"",
		)
		if err != nil {
			return nil, err
		}
		newMembership.AppendPurchase(bonus)
	}

	// 5. 保存；併發首次加入落敗時改走冪等路徑
	if err := uc.membershipRepo.Save(ctx, newMembership); err != nil {
		if errors.Is(err, membership.ErrMembershipAlreadyExists) {
			winner, findErr := uc.membershipRepo.FindByUserAndBusiness(ctx, userID, membershipBusinessID)
			if findErr != nil {
				return nil, findErr
			}
			return uc.toResult(winner, true), nil
		}
		return nil, err
	}

	return uc.toResult(newMembership, false), nil
}

// toResult 構建結果 DTO
func (uc *EnrollMembershipUseCase) toResult(m *membership.Membership, alreadyEnrolled bool) *EnrollMembershipResult {
	return &EnrollMembershipResult{
		MembershipID:    m.MembershipID().String(),
		UserID:          m.UserID().String(),
		BusinessID:      m.BusinessID().String(),
		PointsBalance:   m.PointsBalance(),
		AlreadyEnrolled: alreadyEnrolled,
	}
}
