package membership

import (
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================

// 設計說明：
// 每個 bounded context 定義自己的 ID 別名與標記類型。
// UserID / BusinessID 在此為外部身份的引用（用戶檔案與商家目錄
// 分別由 auth 系統與 business context 擁有），跨 context 傳遞
// 一律通過字串（Application Layer DTO），不共享 Go 類型。

// MembershipMarker 是 MembershipID 的標記類型
type MembershipMarker struct{}

// MembershipID 會籍的唯一標識符
type MembershipID = shared.EntityID[MembershipMarker]

// NewMembershipID 生成新的會籍 ID（UUID v4）
func NewMembershipID() MembershipID {
	return shared.NewEntityID[MembershipMarker]()
}

// MembershipIDFromString 從字串解析會籍 ID
func MembershipIDFromString(s string) (MembershipID, error) {
	return shared.EntityIDFromString[MembershipMarker](s, ErrInvalidMembershipID)
}

// PurchaseMarker 是 PurchaseID 的標記類型
type PurchaseMarker struct{}

// PurchaseID 消費記錄的唯一標識符
type PurchaseID = shared.EntityID[PurchaseMarker]

// NewPurchaseID 生成新的消費記錄 ID（UUID v4）
func NewPurchaseID() PurchaseID {
	return shared.NewEntityID[PurchaseMarker]()
}

// PurchaseIDFromString 從字串解析消費記錄 ID
func PurchaseIDFromString(s string) (PurchaseID, error) {
	return shared.EntityIDFromString[PurchaseMarker](s, ErrInvalidPurchaseID)
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
