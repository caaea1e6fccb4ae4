package business

import (
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================

// 設計原則：使用泛型 shared.EntityID[T] + 類型別名
//
// 類型安全保證：
// - BusinessID、RewardID、UserID 是不同類型（編譯器強制檢查）
// - 不能將 BusinessID 賦值給 RewardID 變量
// - 不能比較不同類型的 ID（編譯錯誤）

// ===========================
// BusinessID - 商家 ID
// ===========================

// BusinessMarker 是 BusinessID 的標記類型
type BusinessMarker struct{}

// BusinessID 商家的唯一標識符
type BusinessID = shared.EntityID[BusinessMarker]

// NewBusinessID 生成新的商家 ID（UUID v4）
func NewBusinessID() BusinessID {
	return shared.NewEntityID[BusinessMarker]()
}

// BusinessIDFromString 從字串解析商家 ID
//
// 使用場景：
// - 從資料庫讀取 ID
// - 從外部請求解析 ID
func BusinessIDFromString(s string) (BusinessID, error) {
	return shared.EntityIDFromString[BusinessMarker](s, ErrInvalidBusinessID)
}

// ===========================
// RewardID - 獎勵 ID
// ===========================

// RewardMarker 是 RewardID 的標記類型
type RewardMarker struct{}

// RewardID 獎勵項目的唯一標識符（商家目錄內唯一）
type RewardID = shared.EntityID[RewardMarker]

// NewRewardID 生成新的獎勵 ID（UUID v4）
func NewRewardID() RewardID {
	return shared.NewEntityID[RewardMarker]()
}

// RewardIDFromString 從字串解析獎勵 ID
func RewardIDFromString(s string) (RewardID, error) {
	return shared.EntityIDFromString[RewardMarker](s, ErrInvalidRewardID)
}

// ===========================
// UserID - 用戶 ID
// ===========================

// UserMarker 是 UserID 的標記類型
type UserMarker struct{}

// UserID 用戶的唯一標識符
//
// 注意：用戶檔案（註冊、認證）由外部系統管理，
// 本 bounded context 只持有用戶的身份引用（如商家管理員）
type UserID = shared.EntityID[UserMarker]

// NewUserID 生成新的用戶 ID（UUID v4）
func NewUserID() UserID {
	return shared.NewEntityID[UserMarker]()
}

// UserIDFromString 從字串解析用戶 ID
func UserIDFromString(s string) (UserID, error) {
	return shared.EntityIDFromString[UserMarker](s, ErrInvalidUserID)
}
