// Package duration 提供纳秒时长的格式化与解析
//
// 时长以 uint64 纳秒表示，没有负时长的概念。
//
//   - Format: 精确形式，选择能整除的最大单位，如 "1m"、"61s"、"999ns"
//   - Formatf: 近似形式，保留两位小数，如 "1.02us"、"3.50ms"
//   - Parse: Format 的逆运算，无后缀时默认单位为秒
package duration

import (
	"math"
	"time"

	"github.com/dep2p/go-quicutil/pkg/lib/decimal"
)

// 时间单位（纳秒）
const (
	Nanosecond  uint64 = 1
	Microsecond        = 1000 * Nanosecond
	Millisecond        = 1000 * Microsecond
	Second             = 1000 * Millisecond
	Minute             = 60 * Second
	Hour               = 60 * Minute
)

// unit 单位后缀与纳秒倍数
type unit struct {
	suffix string
	scale  uint64
}

// ladder 从大到小的单位阶梯（不含纳秒）
var ladder = [...]unit{
	{"h", Hour},
	{"m", Minute},
	{"s", Second},
	{"ms", Millisecond},
	{"us", Microsecond},
}

// approxUnits Formatf 使用的单位，按从小到大排列
var approxUnits = [...]unit{
	{"us", Microsecond},
	{"ms", Millisecond},
	{"s", Second},
}

// ============================================================================
//                              精确形式
// ============================================================================

// Format 以能整除 ns 的最大单位格式化时长
//
// 61s 不是分钟的整数倍，因此输出 "61s" 而不是 "1m1s"。
// 没有更大单位能整除时（包括 0）回退为纳秒。
func Format(ns uint64) string {
	for _, u := range ladder {
		if ns >= u.scale && ns%u.scale == 0 {
			return decimal.Format(ns/u.scale) + u.suffix
		}
	}
	return decimal.Format(ns) + "ns"
}

// Parse 解析数字加可选单位后缀的时长
//
// 支持的后缀：ns、us、ms、s、m、h；无后缀时按秒计算。
// 后缀之后不能有任何字符，乘以单位时做溢出检查。
func Parse(s string) (uint64, error) {
	v, n, err := decimal.ParsePrefix(s)
	if err != nil {
		return 0, decimal.Rename(err, "Parse")
	}

	scale, ok := suffixScale(s[n:])
	if !ok {
		return 0, decimal.SyntaxError("Parse", s)
	}

	res, err := decimal.Mul(v, scale)
	if err != nil {
		return 0, decimal.RangeError("Parse", s)
	}
	return res, nil
}

// suffixScale 返回后缀对应的纳秒倍数
//
// 整个剩余部分必须恰好是一个后缀，"ms" 不会被拆成 "m" 加多余的 "s"。
func suffixScale(suffix string) (uint64, bool) {
	switch suffix {
	case "":
		return Second, true
	case "ns":
		return Nanosecond, true
	case "us":
		return Microsecond, true
	case "ms":
		return Millisecond, true
	case "s":
		return Second, true
	case "m":
		return Minute, true
	case "h":
		return Hour, true
	default:
		return 0, false
	}
}

// ============================================================================
//                              近似形式
// ============================================================================

// Formatf 以两位小数近似格式化时长
//
// 小于 1us 时输出整数纳秒。其余按量级选择 us / ms / s，
// 以该单位百分之一为刻度做浮点除法，再按 IEEE-754 就近偶数舍入：
// 1005ns 为 "1.00us"，1015ns 为 "1.02us"。
// 舍入进位到 1000.00 时改用下一个单位（999999ns 为 "1.00ms"），秒不再进位。
func Formatf(ns uint64) string {
	if ns < Microsecond {
		return decimal.Format(ns) + "ns"
	}

	i := 0
	switch {
	case ns < Millisecond:
	case ns < Second:
		i = 1
	default:
		i = 2
	}

	var hundredths uint64
	for {
		u := approxUnits[i]
		hundredths = uint64(math.RoundToEven(float64(ns) / float64(u.scale/100)))
		if hundredths < 100000 || i == len(approxUnits)-1 {
			break
		}
		i++
	}

	frac := hundredths % 100
	return decimal.Format(hundredths/100) + "." +
		string([]byte{'0' + byte(frac/10), '0' + byte(frac%10)}) +
		approxUnits[i].suffix
}

// ============================================================================
//                              time.Duration 互转
// ============================================================================

// FromStd 将 time.Duration 转换为纳秒数，负值返回错误
func FromStd(d time.Duration) (uint64, error) {
	if d < 0 {
		return 0, decimal.RangeError("FromStd", d.String())
	}
	return uint64(d), nil
}

// ToStd 将纳秒数转换为 time.Duration，超出 int64 时返回错误
func ToStd(ns uint64) (time.Duration, error) {
	if ns > math.MaxInt64 {
		return 0, decimal.RangeError("ToStd", decimal.Format(ns))
	}
	return time.Duration(ns), nil
}
