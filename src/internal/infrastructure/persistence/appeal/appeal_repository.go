package appeal

import (
	"errors"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/appeal"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文（來自 persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// AppealRepositoryImpl
// ===========================

// AppealRepositoryImpl 申訴倉儲實現（GORM）
//
// 設計原則：
// - 實作 appeal.AppealRepository 接口
// - MarkResolved 以條件更新作為裁決競爭的最終仲裁點
type AppealRepositoryImpl struct {
	db *gorm.DB
}

// NewAppealRepository 創建新的申訴倉儲實例
func NewAppealRepository(db *gorm.DB) appeal.AppealRepository {
	return &AppealRepositoryImpl{db: db}
}

// Save 保存新申訴
func (r *AppealRepositoryImpl) Save(ctx shared.TransactionContext, a *appeal.PurchaseAppeal) error {
	db := r.getDB(ctx)
	return db.Create(toGORM(a)).Error
}

// FindByID 根據申訴 ID 查找
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → appeal.ErrAppealNotFound
func (r *AppealRepositoryImpl) FindByID(ctx shared.TransactionContext, appealID appeal.AppealID) (*appeal.PurchaseAppeal, error) {
	db := r.getDB(ctx)

	var gormModel AppealGORM
	result := db.Where("appeal_id = ?", appealID.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, appeal.ErrAppealNotFound.WithContext(
				"appeal_id", appealID.String(),
			)
		}
		return nil, result.Error
	}

	return toDomain(&gormModel)
}

// ListPendingByBusiness 列出商家的待裁決申訴（提交時間由舊到新）
func (r *AppealRepositoryImpl) ListPendingByBusiness(ctx shared.TransactionContext, businessID appeal.BusinessID) ([]*appeal.PurchaseAppeal, error) {
	return r.listByBusinessAndStatus(ctx, businessID, appeal.StatusPending)
}

// ListApprovedByBusiness 列出商家的已核准申訴
func (r *AppealRepositoryImpl) ListApprovedByBusiness(ctx shared.TransactionContext, businessID appeal.BusinessID) ([]*appeal.PurchaseAppeal, error) {
	return r.listByBusinessAndStatus(ctx, businessID, appeal.StatusApproved)
}

// MarkResolved 以條件更新持久化裁決結果
//
// 實作邏輯：
// - UPDATE ... WHERE appeal_id = ? AND status = 'pending'
// - 影響 1 列：裁決寫入成功
// - 影響 0 列：再查一次以區分「已被搶先裁決」與「申訴不存在」
func (r *AppealRepositoryImpl) MarkResolved(ctx shared.TransactionContext, a *appeal.PurchaseAppeal) error {
	db := r.getDB(ctx)

	result := db.Model(&AppealGORM{}).
		Where("appeal_id = ? AND status = ?", a.AppealID().String(), string(appeal.StatusPending)).
		Updates(map[string]interface{}{
			"status":        string(a.Status()),
			"reviewer_id":   a.ReviewerID(),
			"reject_reason": a.RejectReason(),
			"resolved_at":   a.ResolvedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&AppealGORM{}).
			Where("appeal_id = ?", a.AppealID().String()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return appeal.ErrAppealNotFound.WithContext(
				"appeal_id", a.AppealID().String(),
			)
		}
		return appeal.ErrAppealAlreadyResolved.WithContext(
			"appeal_id", a.AppealID().String(),
		)
	}

	return nil
}

// listByBusinessAndStatus 列出商家指定狀態的申訴（私有輔助方法）
func (r *AppealRepositoryImpl) listByBusinessAndStatus(ctx shared.TransactionContext, businessID appeal.BusinessID, status appeal.AppealStatus) ([]*appeal.PurchaseAppeal, error) {
	db := r.getDB(ctx)

	var gormModels []AppealGORM
	result := db.Where("business_id = ? AND status = ?", businessID.String(), string(status)).
		Order("submitted_at ASC").
		Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	appeals := make([]*appeal.PurchaseAppeal, 0, len(gormModels))
	for i := range gormModels {
		a, err := toDomain(&gormModels[i])
		if err != nil {
			return nil, err
		}
		appeals = append(appeals, a)
	}

	return appeals, nil
}

// getDB 獲取資料庫實例
//
// 邏輯：
// - 如果 ctx 是 gormTransactionContext，返回事務中的 DB
// - 否則返回預設的 DB（auto-commit 模式）
func (r *AppealRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}
