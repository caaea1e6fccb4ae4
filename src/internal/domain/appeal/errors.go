package appeal

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// 錯誤代碼常量
const (
	ErrCodeInvalidAppealID       ErrorCode = "APPEAL_ID_INVALID"
	ErrCodeAppealNotFound        ErrorCode = "APPEAL_NOT_FOUND"
	ErrCodeAppealAlreadyResolved ErrorCode = "APPEAL_ALREADY_RESOLVED"
	ErrCodeInvalidAppealStatus   ErrorCode = "APPEAL_STATUS_INVALID"
	ErrCodeInvalidItem           ErrorCode = "APPEAL_ITEM_INVALID"
	ErrCodeInvalidAmount         ErrorCode = "APPEAL_AMOUNT_INVALID"
	ErrCodeInvalidPoints         ErrorCode = "APPEAL_POINTS_INVALID"
	ErrCodeLedgerInconsistent    ErrorCode = "LEDGER_INCONSISTENT"

	// 身份引用相關
	ErrCodeInvalidUserID     ErrorCode = "USER_ID_INVALID"
	ErrCodeInvalidBusinessID ErrorCode = "BUSINESS_ID_INVALID"
	ErrCodeInvalidReviewerID ErrorCode = "REVIEWER_ID_INVALID"
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

// 申訴相關錯誤
var (
	ErrInvalidAppealID = &DomainError{
		Code:    ErrCodeInvalidAppealID,
		Message: "無效的申訴 ID",
	}

	ErrAppealNotFound = &DomainError{
		Code:    ErrCodeAppealNotFound,
		Message: "申訴不存在",
	}

	// ErrAppealAlreadyResolved 申訴已被裁決（核准或駁回）
	// 裁決是終態：重複核准、核准後駁回、駁回後核准均返回此錯誤
	ErrAppealAlreadyResolved = &DomainError{
		Code:    ErrCodeAppealAlreadyResolved,
		Message: "申訴已被裁決",
	}

	ErrInvalidAppealStatus = &DomainError{
		Code:    ErrCodeInvalidAppealStatus,
		Message: "無效的申訴狀態",
	}

	ErrInvalidItem = &DomainError{
		Code:    ErrCodeInvalidItem,
		Message: "申訴品項不能為空",
	}

	ErrInvalidAmount = &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: "申訴金額不能為負數",
	}

	// ErrInvalidPoints 申訴主張的點數必須為正整數
	// 零點或負點的申訴沒有入帳意義，提交時即拒絕
	ErrInvalidPoints = &DomainError{
		Code:    ErrCodeInvalidPoints,
		Message: "申訴點數必須為正整數",
	}

	// ErrLedgerInconsistent 帳本不一致：已核准的申訴缺少對應的入帳記錄
	// 且自動修復失敗。此錯誤表示需要人工介入
	ErrLedgerInconsistent = &DomainError{
		Code:    ErrCodeLedgerInconsistent,
		Message: "帳本不一致：已核准申訴缺少入帳記錄",
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

	ErrInvalidReviewerID = &DomainError{
		Code:    ErrCodeInvalidReviewerID,
		Message: "無效的審核者 ID",
	}
)
