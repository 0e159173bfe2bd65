package decimal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse 测试整串解析
func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr error
	}{
		{"Zero", "0", 0, nil},
		{"One", "1", 1, nil},
		{"LeadingZeros", "0007", 7, nil},
		{"Max", "18446744073709551615", math.MaxUint64, nil},
		{"MaxPlusOne", "18446744073709551616", 0, ErrRange},
		{"FarOverflow", "99999999999999999999", 0, ErrRange},
		{"Empty", "", 0, ErrSyntax},
		{"Letter", "a", 0, ErrSyntax},
		{"TrailingLetter", "1a", 0, ErrSyntax},
		{"Sign", "+1", 0, ErrSyntax},
		{"Negative", "-1", 0, ErrSyntax},
		{"Space", " 1", 0, ErrSyntax},
		{"TrailingSpace", "1 ", 0, ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParsePrefix 测试前导数字串解析
func TestParsePrefix(t *testing.T) {
	t.Run("DigitsOnly", func(t *testing.T) {
		v, n, err := ParsePrefix("1024")
		require.NoError(t, err)
		assert.Equal(t, uint64(1024), v)
		assert.Equal(t, 4, n)
	})

	t.Run("WithSuffix", func(t *testing.T) {
		s := "11Gx"
		v, n, err := ParsePrefix(s)
		require.NoError(t, err)
		assert.Equal(t, uint64(11), v)
		assert.Equal(t, "Gx", s[n:])
	})

	t.Run("NoDigits", func(t *testing.T) {
		_, _, err := ParsePrefix("ms")
		assert.ErrorIs(t, err, ErrSyntax)
	})

	t.Run("Overflow", func(t *testing.T) {
		_, _, err := ParsePrefix("18446744073709551616ns")
		assert.ErrorIs(t, err, ErrRange)
	})
}

// TestParse_NonDigitAnywhere 任意位置出现一个非数字字符都必须失败
func TestParse_NonDigitAnywhere(t *testing.T) {
	const digits = "1234567890"
	for i := 0; i <= len(digits); i++ {
		for _, c := range []byte{'x', '.', ' ', '/', ':', 'K'} {
			input := digits[:i] + string(c) + digits[i:]
			_, err := Parse(input)
			assert.Error(t, err, "input %q", input)
		}
	}
}

// TestParseError 测试错误信息与错误链
func TestParseError(t *testing.T) {
	_, err := Parse("1a")
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Parse", pe.Func)
	assert.Equal(t, "1a", pe.Input)
	assert.Equal(t, `Parse: parsing "1a": invalid syntax`, err.Error())
}

// TestMul 测试带溢出检查的乘法
func TestMul(t *testing.T) {
	v, err := Mul(11, 1<<30)
	require.NoError(t, err)
	assert.Equal(t, uint64(11)<<30, v)

	v, err = Mul(math.MaxUint64, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)

	v, err = Mul(0, math.MaxUint64)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = Mul(1<<34, 1<<30)
	assert.ErrorIs(t, err, ErrRange)

	_, err = Mul(math.MaxUint64/2+1, 2)
	assert.ErrorIs(t, err, ErrRange)
}

// TestFormat_RoundTrip 格式化后再解析应得到原值
func TestFormat_RoundTrip(t *testing.T) {
	samples := []uint64{0, 1, 9, 10, 1023, 1 << 32, math.MaxUint64 - 1, math.MaxUint64}
	for _, n := range samples {
		got, err := Parse(Format(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	assert.Equal(t, "0", Format(0))
}
