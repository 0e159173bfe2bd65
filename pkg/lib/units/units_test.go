package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-quicutil/pkg/lib/decimal"
)

// TestFormatUint 测试精确格式化
func TestFormatUint(t *testing.T) {
	assert.Equal(t, "0", FormatUint(0))
	assert.Equal(t, "18446744073709551615", FormatUint(math.MaxUint64))
}

// TestParseUint 测试精确解析
func TestParseUint(t *testing.T) {
	tests := []struct {
		input   string
		want    uint64
		wantErr bool
	}{
		{"0", 0, false},
		{"1", 1, false},
		{"18446744073709551615", math.MaxUint64, false},
		{"18446744073709551616", 0, true},
		{"a", 0, true},
		{"1a", 0, true},
		{"", 0, true},
		{"1K", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUint(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseUint_RoundTrip 精确形式互为逆运算
func TestParseUint_RoundTrip(t *testing.T) {
	samples := []uint64{0, 1, 42, 1023, 1024, 1 << 40, math.MaxUint64 - 1, math.MaxUint64}
	for _, n := range samples {
		got, err := ParseUint(FormatUint(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

// TestFormatUintIEC 测试 IEC 格式化
func TestFormatUintIEC(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{(1 << 10) - 1, "1023"},
		{1 << 10, "1K"},
		{1 << 20, "1M"},
		{1 << 30, "1G"},
		{math.MaxUint64, "18446744073709551615"},
		{(1 << 20) + (1 << 10), "1025K"},
		{1049600, "1025K"},
		{3 << 30, "3G"},
		{1 << 40, "1024G"},
		{1536, "1536"},
		{1025, "1025"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUintIEC(tt.n))
		})
	}
}

// TestParseUintIEC 测试 IEC 解析
func TestParseUintIEC(t *testing.T) {
	tests := []struct {
		input   string
		want    uint64
		wantErr error
	}{
		{"0", 0, nil},
		{"1023", 1023, nil},
		{"1K", 1 << 10, nil},
		{"1M", 1 << 20, nil},
		{"1G", 1 << 30, nil},
		{"11G", 11 << 30, nil},
		{"0G", 0, nil},
		{"17179869183G", 17179869183 << 30, nil},
		{"17179869184G", 0, decimal.ErrRange},
		{"18446744073709551616", 0, decimal.ErrRange},
		{"1x", 0, decimal.ErrSyntax},
		{"1Gx", 0, decimal.ErrSyntax},
		{"1k", 0, decimal.ErrSyntax},
		{"1KK", 0, decimal.ErrSyntax},
		{"K", 0, decimal.ErrSyntax},
		{"", 0, decimal.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUintIEC(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseUintIEC_ErrorFunc 错误应以对外函数名报告
func TestParseUintIEC_ErrorFunc(t *testing.T) {
	_, err := ParseUintIEC("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ParseUintIEC")
}

// TestFormatUintIEC_Parse IEC 形式的输出总能被解析回原值
func TestFormatUintIEC_Parse(t *testing.T) {
	samples := []uint64{0, 1, 1023, 1024, 1049600, 5 << 20, 7 << 30, math.MaxUint64}
	for _, n := range samples {
		got, err := ParseUintIEC(FormatUintIEC(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}
