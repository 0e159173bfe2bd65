package decimal

import (
	"math"
	"math/bits"
	"strconv"
)

// ============================================================================
//                              解析
// ============================================================================

// Parse 将整串 ASCII 数字解析为 uint64
//
// 不接受符号、空白或任何非数字字符；空串、非法字符和溢出都会返回错误。
func Parse(s string) (uint64, error) {
	v, n, err := accumulate(s)
	if err != nil {
		return 0, &ParseError{Func: "Parse", Input: s, Err: err}
	}
	if n != len(s) {
		return 0, SyntaxError("Parse", s)
	}
	return v, nil
}

// ParsePrefix 解析 s 开头的数字串
//
// 返回解析出的值和消耗的字节数 n，s[n:] 即剩余未解析部分。
// 前导数字串为空或累加溢出时返回错误。
func ParsePrefix(s string) (uint64, int, error) {
	v, n, err := accumulate(s)
	if err != nil {
		return 0, 0, &ParseError{Func: "ParsePrefix", Input: s, Err: err}
	}
	return v, n, nil
}

// accumulate 累加前导数字，返回哨兵错误
func accumulate(s string) (uint64, int, error) {
	var v uint64
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := uint64(c - '0')
		// 在 v*10+d 之前判断是否会回绕
		if v > (math.MaxUint64-d)/10 {
			return 0, 0, ErrRange
		}
		v = v*10 + d
	}
	if i == 0 {
		return 0, 0, ErrSyntax
	}
	return v, i, nil
}

// ============================================================================
//                              运算
// ============================================================================

// Mul 返回 a*b，结果超出 uint64 时返回 ErrRange 而不是回绕
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrRange
	}
	return lo, nil
}

// ============================================================================
//                              格式化
// ============================================================================

// Format 返回 v 的十进制表示，0 输出 "0"
func Format(v uint64) string {
	return strconv.FormatUint(v, 10)
}
