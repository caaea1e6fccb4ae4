package persistence

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appealpersistence "github.com/jackyeh168/loyalty_crm/src/internal/infrastructure/persistence/appeal"
	businesspersistence "github.com/jackyeh168/loyalty_crm/src/internal/infrastructure/persistence/business"
	membershippersistence "github.com/jackyeh168/loyalty_crm/src/internal/infrastructure/persistence/membership"
)

// ===========================
// 資料庫初始化
// ===========================

// NewSQLiteDB 建立 SQLite 資料庫連接並執行遷移
//
// 參數：
// - dsn: SQLite 資料來源（檔案路徑，或 ":memory:"）
// - logLevel: GORM 日誌等級（生產環境建議 logger.Warn）
//
// 設計說明：
// - 外鍵約束在 SQLite 需顯式開啟（_foreign_keys pragma 由 DSN 控制，
//   此處以 PRAGMA 指令開啟以相容純檔案路徑 DSN）
func NewSQLiteDB(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate 遷移所有資料表
//
// 表清單（依依賴順序）：
// - businesses / rewards: 商家目錄
// - memberships / purchases: 會籍與消費日誌
// - purchase_appeals: 申訴佇列
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&businesspersistence.BusinessGORM{},
		&businesspersistence.RewardGORM{},
		&membershippersistence.MembershipGORM{},
		&membershippersistence.PurchaseGORM{},
		&appealpersistence.AppealGORM{},
	)
}
