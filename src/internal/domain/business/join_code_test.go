package business_test

import (
	"testing"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// JoinCode 值對象測試
// ===========================

// Test 16: NewJoinCode 有效格式成功
func TestNewJoinCode_ValidFormat_Success(t *testing.T) {
	// Act
	code, err := business.NewJoinCode("CAFE8Q2K")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "CAFE8Q2K", code.String())
	assert.False(t, code.IsZero())
}

// Test 17: NewJoinCode 小寫輸入自動正規化
func TestNewJoinCode_LowercaseInput_Normalized(t *testing.T) {
	// Act
	code, err := business.NewJoinCode("  cafe8q2k ")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "CAFE8Q2K", code.String())
}

// Test 18: NewJoinCode 無效格式返回錯誤
func TestNewJoinCode_InvalidFormat_ReturnsError(t *testing.T) {
	invalid := []string{
		"",          // 空字串
		"CAFE8Q2",   // 7 位
		"CAFE8Q2KX", // 9 位
		"CAFE8Q20",  // 包含 0（易混淆字符）
		"CAFE8Q2O",  // 包含 O
		"CAFE8Q2I",  // 包含 I
		"CAFE8Q2L",  // 包含 L
		"CAFE-Q2K",  // 包含連字號
	}

	for _, s := range invalid {
		_, err := business.NewJoinCode(s)
		assert.ErrorIs(t, err, business.ErrInvalidJoinCode, "input %q", s)
	}
}

// Test 19: GenerateJoinCode 產生有效加入碼
func TestGenerateJoinCode_ProducesValidCode(t *testing.T) {
	// Act
	code, err := business.GenerateJoinCode()
	require.NoError(t, err)

	// Assert: 生成的碼必須能通過自身的驗證
	parsed, err := business.NewJoinCode(code.String())
	assert.NoError(t, err)
	assert.True(t, parsed.Equals(code))
}

// Test 20: GenerateJoinCode 連續生成不重複
//
// 注意：理論上 31^8 空間下碰撞機率極低；此測試捕捉的是
// 隨機源退化（如固定種子）這類實作錯誤，而非機率保證
func TestGenerateJoinCode_SuccessiveCodesDiffer(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code, err := business.GenerateJoinCode()
		require.NoError(t, err)
		assert.False(t, seen[code.String()], "duplicate code generated: %s", code)
		seen[code.String()] = true
	}
}

// Test 21: Equals 值相等性
func TestJoinCode_Equals_ValueEquality(t *testing.T) {
	a, _ := business.NewJoinCode("CAFE8Q2K")
	b, _ := business.NewJoinCode("cafe8q2k")
	c, _ := business.NewJoinCode("MART3W7N")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
