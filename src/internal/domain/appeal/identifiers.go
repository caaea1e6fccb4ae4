package appeal

import (
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================

// AppealMarker 是 AppealID 的標記類型
type AppealMarker struct{}

// AppealID 申訴的唯一標識符
type AppealID = shared.EntityID[AppealMarker]

// NewAppealID 生成新的申訴 ID（UUID v4）
func NewAppealID() AppealID {
	return shared.NewEntityID[AppealMarker]()
}

// AppealIDFromString 從字串解析申訴 ID
func AppealIDFromString(s string) (AppealID, error) {
	return shared.EntityIDFromString[AppealMarker](s, ErrInvalidAppealID)
}

// UserMarker 是 UserID 的標記類型
type UserMarker struct{}

// UserID 用戶的唯一標識符（外部身份引用）
type UserID = shared.EntityID[UserMarker]

// NewUserID 生成新的用戶 ID（UUID v4）
func NewUserID() UserID {
	return shared.NewEntityID[UserMarker]()
}

// UserIDFromString 從字串解析用戶 ID
func UserIDFromString(s string) (UserID, error) {
	return shared.EntityIDFromString[UserMarker](s, ErrInvalidUserID)
}

// BusinessMarker 是 BusinessID 的標記類型
type BusinessMarker struct{}

// BusinessID 商家的唯一標識符（外部身份引用）
type BusinessID = shared.EntityID[BusinessMarker]

// NewBusinessID 生成新的商家 ID（UUID v4）
func NewBusinessID() BusinessID {
	return shared.NewEntityID[BusinessMarker]()
}

// BusinessIDFromString 從字串解析商家 ID
func BusinessIDFromString(s string) (BusinessID, error) {
	return shared.EntityIDFromString[BusinessMarker](s, ErrInvalidBusinessID)
}
