package business

import (
	"crypto/rand"
	"regexp"
	"strings"
)

// ===========================
// JoinCode Value Object
// ===========================

// JoinCode 商家加入碼值對象
//
// 業務規則：
// 1. 固定 8 個字符
// 2. 只包含大寫字母與數字，排除易混淆字符（0/O、1/I/L）
// 3. 全系統唯一（由資料庫唯一約束保證，非值對象職責）
//
// 設計原則：
// - 不可變性（Immutability）：所有欄位為 unexported
// - 自我驗證（Self-validation）：建構函數強制驗證
// - 值相等（Value Equality）：基於內容比較
//
// 使用範例：
//   code, err := NewJoinCode("CAFE8Q2K")
//   if err != nil {
//       return err // ErrInvalidJoinCode
//   }
//   fmt.Println(code.String()) // "CAFE8Q2K"
type JoinCode struct {
	value string
}

// joinCodeLength 加入碼固定長度
const joinCodeLength = 8

// joinCodeAlphabet 加入碼字符集
//
// 排除 0、O、1、I、L，會員口頭或手抄輸入時不易誤認
const joinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// joinCodePattern 加入碼正則表達式
var joinCodePattern = regexp.MustCompile(`^[A-HJ-KM-NP-Z2-9]{8}$`)

// NewJoinCode 創建新的加入碼值對象（Checked Constructor）
//
// 參數：
// - value: 原始加入碼字串（允許小寫輸入，自動正規化為大寫）
//
// 返回：
// - JoinCode: 驗證通過的加入碼值對象
// - error: 驗證失敗時返回 ErrInvalidJoinCode
//
// 錯誤範例：
// - "CAFE8Q2" (7位) → ErrInvalidJoinCode
// - "CAFE8Q20" (包含 0) → ErrInvalidJoinCode
// - "CAFE-Q2K" (包含連字號) → ErrInvalidJoinCode
func NewJoinCode(value string) (JoinCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))

	if !joinCodePattern.MatchString(normalized) {
		return JoinCode{}, ErrInvalidJoinCode.WithContext(
			"join_code", value,
			"reason", "must be 8 characters from the unambiguous alphabet",
		)
	}

	return JoinCode{value: normalized}, nil
}

// GenerateJoinCode 隨機生成新的加入碼
//
// 使用場景：
// - 管理員創建商家時自動指派
//
// 唯一性說明：
// - 生成本身不保證唯一，唯一性由 businesses.join_code 唯一索引保證
// - 調用端（CreateBusinessUseCase）在唯一約束衝突時重新生成並重試
//
// 隨機來源：crypto/rand（避免可預測的加入碼被猜測、搶先註冊）
func GenerateJoinCode() (JoinCode, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return JoinCode{}, ErrInvalidJoinCode.WithContext(
			"reason", "random source unavailable",
			"underlying_error", err.Error(),
		)
	}

	chars := make([]byte, joinCodeLength)
	for i, b := range buf {
		chars[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}

	return JoinCode{value: string(chars)}, nil
}

// String 返回加入碼字串表示
func (c JoinCode) String() string {
	return c.value
}

// Equals 比較兩個加入碼是否相等
func (c JoinCode) Equals(other JoinCode) bool {
	return c.value == other.value
}

// IsZero 檢查是否為零值
//
// 使用場景：
// - 驗證聚合重建時的必填欄位
func (c JoinCode) IsZero() bool {
	return c.value == ""
}
