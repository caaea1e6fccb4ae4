package business

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// 錯誤代碼常量
const (
	// 商家相關
	ErrCodeInvalidBusinessID   ErrorCode = "BUSINESS_ID_INVALID"
	ErrCodeInvalidBusinessName ErrorCode = "BUSINESS_NAME_INVALID"
	ErrCodeBusinessNotFound    ErrorCode = "BUSINESS_NOT_FOUND"

	// 加入碼相關
	ErrCodeInvalidJoinCode       ErrorCode = "JOIN_CODE_INVALID"
	ErrCodeJoinCodeAlreadyExists ErrorCode = "JOIN_CODE_ALREADY_EXISTS"

	// 獎勵目錄相關
	ErrCodeInvalidRewardID      ErrorCode = "REWARD_ID_INVALID"
	ErrCodeInvalidRewardTitle   ErrorCode = "REWARD_TITLE_INVALID"
	ErrCodeInvalidPointsCost    ErrorCode = "REWARD_POINTS_COST_INVALID"
	ErrCodeRewardAlreadyExists  ErrorCode = "REWARD_ALREADY_EXISTS"
	ErrCodeRewardNotFound       ErrorCode = "REWARD_NOT_FOUND"

	// 用戶相關
	ErrCodeInvalidUserID ErrorCode = "USER_ID_INVALID"
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

// 商家相關錯誤
var (
	ErrInvalidBusinessID = &DomainError{
		Code:    ErrCodeInvalidBusinessID,
		Message: "無效的商家 ID",
	}

	ErrInvalidBusinessName = &DomainError{
		Code:    ErrCodeInvalidBusinessName,
		Message: "商家名稱不能為空",
	}

	ErrBusinessNotFound = &DomainError{
		Code:    ErrCodeBusinessNotFound,
		Message: "商家不存在",
	}
)

// 加入碼相關錯誤
var (
	ErrInvalidJoinCode = &DomainError{
		Code:    ErrCodeInvalidJoinCode,
		Message: "無效的加入碼格式",
	}

	// ErrJoinCodeAlreadyExists 加入碼已被其他商家使用
	// 由資料庫唯一約束偵測（Save 時返回）
	ErrJoinCodeAlreadyExists = &DomainError{
		Code:    ErrCodeJoinCodeAlreadyExists,
		Message: "加入碼已被使用",
	}
)

// 獎勵目錄相關錯誤
var (
	ErrInvalidRewardID = &DomainError{
		Code:    ErrCodeInvalidRewardID,
		Message: "無效的獎勵 ID",
	}

	ErrInvalidRewardTitle = &DomainError{
		Code:    ErrCodeInvalidRewardTitle,
		Message: "獎勵名稱不能為空",
	}

	ErrInvalidPointsCost = &DomainError{
		Code:    ErrCodeInvalidPointsCost,
		Message: "兌換點數必須為正整數",
	}

	ErrRewardAlreadyExists = &DomainError{
		Code:    ErrCodeRewardAlreadyExists,
		Message: "獎勵 ID 已存在於此商家目錄",
	}

	ErrRewardNotFound = &DomainError{
		Code:    ErrCodeRewardNotFound,
		Message: "獎勵不存在",
	}
)

// 用戶相關錯誤
var (
	ErrInvalidUserID = &DomainError{
		Code:    ErrCodeInvalidUserID,
		Message: "無效的用戶 ID",
	}
)
