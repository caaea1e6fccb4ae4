package business

import (
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
)

// ===========================
// BusinessRepository Interface
// ===========================

// BusinessRepository 商家倉儲介面
//
// 設計原則：
// - 介面定義在 Domain Layer（依賴反轉原則）
// - 具體實現在 Infrastructure Layer
// - 返回 Domain 對象，不暴露資料庫細節
// - 使用 TransactionContext 支持事務管理
//
// 事務管理策略：
// - 寫操作（Save / Update）ctx 必須 non-nil
// - 讀操作（FindBy* / ExistsBy*）ctx 可為 nil（auto-commit）
//
// 持久化範圍：
// - Business 聚合連同其獎勵目錄整體持久化
//   （目錄是聚合的一部分，不單獨提供 Reward 倉儲）
type BusinessRepository interface {
	// Save 保存新商家（連同獎勵目錄）
	// 前置條件：商家不存在
	// 錯誤：ErrJoinCodeAlreadyExists（加入碼唯一約束違反）
	Save(ctx shared.TransactionContext, b *Business) error

	// Update 更新既有商家（商家欄位 + 目錄整體替換）
	// 前置條件：商家已存在
	Update(ctx shared.TransactionContext, b *Business) error

	// FindByID 根據商家 ID 查找（含完整獎勵目錄，依目錄順序）
	// 返回：找到的商家，或 ErrBusinessNotFound
	FindByID(ctx shared.TransactionContext, businessID BusinessID) (*Business, error)

	// FindByJoinCode 根據加入碼查找商家
	// 使用場景：會員輸入加入碼自助加入
	// 返回：找到的商家，或 ErrBusinessNotFound
	FindByJoinCode(ctx shared.TransactionContext, code JoinCode) (*Business, error)

	// ExistsByID 檢查商家是否存在
	// 使用場景：Membership 自動加入前的存在性檢查
	// 效能優化：只執行 COUNT，不載入目錄
	ExistsByID(ctx shared.TransactionContext, businessID BusinessID) (bool, error)
}
