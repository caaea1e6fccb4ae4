package appeal

import "github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"

// ===========================
// AppealRepository 介面
// ===========================

// AppealRepository 申訴倉儲介面
//
// 設計原則：
// 1. 依賴倒置原則（DIP）：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. 事務支持：寫操作 ctx 必須 non-nil，讀操作可為 nil
//
// 併發語義：
// - MarkResolved 是裁決競爭的最終仲裁點：
//   以條件更新（WHERE status = 'pending'）實作，
//   影響列數為 0 時表示已被其他裁決搶先，返回 ErrAppealAlreadyResolved
type AppealRepository interface {
	// Save 保存新申訴
	Save(ctx shared.TransactionContext, a *PurchaseAppeal) error

	// FindByID 根據申訴 ID 查找
	// 返回：找到的申訴，或 ErrAppealNotFound
	FindByID(ctx shared.TransactionContext, appealID AppealID) (*PurchaseAppeal, error)

	// ListPendingByBusiness 列出商家的待裁決申訴
	// 排序：依提交時間由舊到新（先到先審）
	ListPendingByBusiness(ctx shared.TransactionContext, businessID BusinessID) ([]*PurchaseAppeal, error)

	// ListApprovedByBusiness 列出商家的已核准申訴
	// 使用場景：對帳修復掃描核准記錄與入帳記錄的對應關係
	ListApprovedByBusiness(ctx shared.TransactionContext, businessID BusinessID) ([]*PurchaseAppeal, error)

	// MarkResolved 以條件更新持久化裁決結果（原子性保證）
	//
	// 實作要求：UPDATE ... SET status/reviewer/resolved_at
	//           WHERE appeal_id = ? AND status = 'pending'
	// - 影響 1 列：裁決成功
	// - 影響 0 列且申訴存在：返回 ErrAppealAlreadyResolved
	// - 申訴不存在：返回 ErrAppealNotFound
	MarkResolved(ctx shared.TransactionContext, a *PurchaseAppeal) error
}
