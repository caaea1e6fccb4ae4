package persistence

import (
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionManager 實作
// ===========================

// GORMTransactionManager GORM 事務管理器
//
// 設計原則：
// 1. 實作 shared.TransactionManager 介面
// 2. 手動管理 Begin / Commit / Rollback（不用 db.Transaction 包裝，
//    讓 panic 處理路徑明確可見）
// 3. Use Case 不接觸 *gorm.DB，只拿到不透明的 TransactionContext
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建 GORM 事務管理器
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在資料庫事務中執行函數
//
// 事務語義：
// - fn 返回 nil → Commit
// - fn 返回 error → Rollback，並返回該 error
// - fn panic → Rollback 後重新拋出（不吞掉 panic）
func (tm *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	tx := tm.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(NewGORMTransactionContext(tx)); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
