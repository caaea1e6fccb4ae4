package membership

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// 錯誤代碼常量
const (
	// 會籍相關
	ErrCodeInvalidMembershipID      ErrorCode = "MEMBERSHIP_ID_INVALID"
	ErrCodeMembershipNotFound       ErrorCode = "MEMBERSHIP_NOT_FOUND"
	ErrCodeMembershipAlreadyExists  ErrorCode = "MEMBERSHIP_ALREADY_EXISTS"
	ErrCodeCorruptedBalance         ErrorCode = "MEMBERSHIP_BALANCE_CORRUPTED"

	// 消費記錄相關
	ErrCodeInvalidPurchaseID     ErrorCode = "PURCHASE_ID_INVALID"
	ErrCodeInvalidPurchaseItem   ErrorCode = "PURCHASE_ITEM_INVALID"
	ErrCodeInvalidPurchaseAmount ErrorCode = "PURCHASE_AMOUNT_INVALID"
	ErrCodeInvalidPurchaseStatus ErrorCode = "PURCHASE_STATUS_INVALID"
	ErrCodeInvalidPurchaseSource ErrorCode = "PURCHASE_SOURCE_INVALID"
	ErrCodePurchaseAlreadyApplied ErrorCode = "PURCHASE_ALREADY_APPLIED"

	// 身份引用相關
	ErrCodeInvalidUserID     ErrorCode = "USER_ID_INVALID"
	ErrCodeInvalidBusinessID ErrorCode = "BUSINESS_ID_INVALID"
)

// ===========================
// DomainError 結構
// ===========================

// DomainError 領域錯誤
// 設計原則：
// 1. 包含結構化的錯誤代碼（供外層映射為使用者可見的回應）
// 2. 支持上下文信息（用於調試和日誌）
// 3. 不可變性（WithContext 返回新實例）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 介面
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例，保持不可變性）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 介面（用於錯誤類型判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ===========================
// 預定義錯誤
// ===========================

// 會籍相關錯誤
var (
	ErrInvalidMembershipID = &DomainError{
		Code:    ErrCodeInvalidMembershipID,
		Message: "無效的會籍 ID",
	}

	ErrMembershipNotFound = &DomainError{
		Code:    ErrCodeMembershipNotFound,
		Message: "會籍不存在",
	}

	// ErrMembershipAlreadyExists (userID, businessID) 會籍已存在
	// 由資料庫唯一約束偵測；Enroll 調用端捕捉此錯誤並改走冪等路徑
	ErrMembershipAlreadyExists = &DomainError{
		Code:    ErrCodeMembershipAlreadyExists,
		Message: "會籍已存在",
	}

	// ErrCorruptedBalance 餘額與消費記錄不一致（資料損壞）
	// 重建聚合時驗證：pointsBalance 必須等於計入餘額的 pointsEarned 總和
	ErrCorruptedBalance = &DomainError{
		Code:    ErrCodeCorruptedBalance,
		Message: "點數餘額與消費記錄不一致",
	}
)

// 消費記錄相關錯誤
var (
	ErrInvalidPurchaseID = &DomainError{
		Code:    ErrCodeInvalidPurchaseID,
		Message: "無效的消費記錄 ID",
	}

	ErrInvalidPurchaseItem = &DomainError{
		Code:    ErrCodeInvalidPurchaseItem,
		Message: "消費品項不能為空",
	}

	ErrInvalidPurchaseAmount = &DomainError{
		Code:    ErrCodeInvalidPurchaseAmount,
		Message: "消費金額不能為負數",
	}

	ErrInvalidPurchaseStatus = &DomainError{
		Code:    ErrCodeInvalidPurchaseStatus,
		Message: "無效的消費記錄狀態",
	}

	ErrInvalidPurchaseSource = &DomainError{
		Code:    ErrCodeInvalidPurchaseSource,
		Message: "無效的消費記錄來源",
	}

	// ErrPurchaseAlreadyApplied 同一申訴的點數已入帳
	// 由 purchases.source_id 唯一約束偵測（at-most-once 的資料庫層保險）
	ErrPurchaseAlreadyApplied = &DomainError{
		Code:    ErrCodePurchaseAlreadyApplied,
		Message: "此申訴的點數已入帳",
	}
)

// 身份引用相關錯誤
var (
	ErrInvalidUserID = &DomainError{
		Code:    ErrCodeInvalidUserID,
		Message: "無效的用戶 ID",
	}

	ErrInvalidBusinessID = &DomainError{
		Code:    ErrCodeInvalidBusinessID,
		Message: "無效的商家 ID",
	}
)
