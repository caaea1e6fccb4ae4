package membership

import "github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"

// ===========================
// MembershipRepository 介面
// ===========================

// MembershipRepository 會籍倉儲介面
//
// 設計原則：
// 1. 依賴倒置原則（DIP）：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. 聚合根持久化：會籍連同其消費記錄視為一個聚合整體
// 3. 事務支持：寫操作 ctx 必須 non-nil，讀操作可為 nil
//
// 併發語義：
// - Save 依賴 (user_id, business_id) 複合唯一索引；
//   併發首次加入競爭時，後到者收到 ErrMembershipAlreadyExists，
//   應重新讀取並返回先到者建立的會籍（冪等加入）
// - 新增消費記錄與會籍列更新必須在同一事務中寫入
//
// 事務使用範例：
//   txManager.InTransaction(func(ctx shared.TransactionContext) error {
//       m, _ := repo.FindByUserAndBusiness(ctx, userID, businessID)
//       m.AppendPurchase(purchase)
//       return repo.Update(ctx, m)
//   })
type MembershipRepository interface {
	// Save 保存新會籍（連同已緩衝的消費記錄）
	// 前置條件：(userID, businessID) 會籍不存在
	// 錯誤：ErrMembershipAlreadyExists（複合唯一約束違反）
	Save(ctx shared.TransactionContext, m *Membership) error

	// Update 更新既有會籍（餘額欄位 + 新增的消費記錄）
	// 前置條件：會籍已存在
	// 錯誤：ErrPurchaseAlreadyApplied（同一申訴重複入帳，
	//       由 source_id 唯一約束偵測）
	Update(ctx shared.TransactionContext, m *Membership) error

	// FindByID 根據會籍 ID 查找（含完整消費記錄，依附加順序）
	// 返回：找到的會籍，或 ErrMembershipNotFound
	FindByID(ctx shared.TransactionContext, membershipID MembershipID) (*Membership, error)

	// FindByUserAndBusiness 根據 (userID, businessID) 查找會籍
	// 業務規則：一組 (user, business) 對應一個會籍
	// 返回：找到的會籍，或 ErrMembershipNotFound
	FindByUserAndBusiness(ctx shared.TransactionContext, userID UserID, businessID BusinessID) (*Membership, error)

	// FindAllByUser 查找用戶的所有會籍（依建立時間排序）
	FindAllByUser(ctx shared.TransactionContext, userID UserID) ([]*Membership, error)

	// ExistsPurchaseBySourceID 檢查指定來源標識的消費記錄是否存在
	// 使用場景：對帳修復檢查某申訴是否已入帳
	// 效能優化：只執行 COUNT，不載入聚合
	ExistsPurchaseBySourceID(ctx shared.TransactionContext, sourceID string) (bool, error)
}
