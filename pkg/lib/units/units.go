// Package units 提供 uint64 数量的精确与 IEC 单位格式化/解析
//
// 精确形式（FormatUint/ParseUint）互为逆运算；
// IEC 形式（FormatUintIEC）只在能整除 K/M/G 时带单位，其余回退为纯数字。
package units

import (
	"github.com/dep2p/go-quicutil/pkg/lib/decimal"
)

// IEC 二进制单位
const (
	KiB uint64 = 1 << 10
	MiB uint64 = 1 << 20
	GiB uint64 = 1 << 30
)

// iecUnit 单位后缀与倍数
type iecUnit struct {
	suffix byte
	scale  uint64
}

// iecUnits 按从大到小排列，格式化时第一个能整除的单位胜出
var iecUnits = [...]iecUnit{
	{'G', GiB},
	{'M', MiB},
	{'K', KiB},
}

// ============================================================================
//                              精确形式
// ============================================================================

// FormatUint 返回 n 的十进制表示
func FormatUint(n uint64) string {
	return decimal.Format(n)
}

// ParseUint 解析纯数字串，是 FormatUint 的逆运算
func ParseUint(s string) (uint64, error) {
	v, err := decimal.Parse(s)
	if err != nil {
		return 0, decimal.Rename(err, "ParseUint")
	}
	return v, nil
}

// ============================================================================
//                              IEC 形式
// ============================================================================

// FormatUintIEC 以最大的能整除 n 的 IEC 单位格式化 n
//
// 例如 1<<20 输出 "1M"，(1<<20)+(1<<10) 输出 "1025K"，1023 输出 "1023"。
// 0 不是任何单位的非零倍数，输出 "0"。
func FormatUintIEC(n uint64) string {
	if n == 0 {
		return "0"
	}
	for _, u := range iecUnits {
		if n%u.scale == 0 {
			return decimal.Format(n/u.scale) + string(u.suffix)
		}
	}
	return decimal.Format(n)
}

// ParseUintIEC 解析可带单个 K/M/G 后缀的数字串
//
// 后缀区分大小写，且其后不能再有任何字符。乘以单位时同样做溢出检查。
func ParseUintIEC(s string) (uint64, error) {
	v, n, err := decimal.ParsePrefix(s)
	if err != nil {
		return 0, decimal.Rename(err, "ParseUintIEC")
	}

	rest := s[n:]
	if rest == "" {
		return v, nil
	}
	if len(rest) != 1 {
		return 0, decimal.SyntaxError("ParseUintIEC", s)
	}

	for _, u := range iecUnits {
		if rest[0] != u.suffix {
			continue
		}
		res, err := decimal.Mul(v, u.scale)
		if err != nil {
			return 0, decimal.RangeError("ParseUintIEC", s)
		}
		return res, nil
	}
	return 0, decimal.SyntaxError("ParseUintIEC", s)
}
