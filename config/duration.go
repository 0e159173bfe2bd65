package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dep2p/go-quicutil/pkg/lib/duration"
)

// Duration 是支持 JSON 字符串解析的 time.Duration 包装类型
//
// 支持的格式:
//   - 字符串: 由 duration.Parse 解析，如 "30s"、"250ms"、"5m"；纯数字按秒计
//   - 数字: 纳秒数
//
// 输出为 duration.Format 的精确表示，例如 30 秒输出 "30s"。
type Duration time.Duration

// UnmarshalJSON 实现 json.Unmarshaler 接口
func (d *Duration) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.Set(s)
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		if n < 0 {
			return fmt.Errorf("invalid duration %d: negative", n)
		}
		*d = Duration(n)
		return nil
	}

	return fmt.Errorf("duration must be a string (e.g., \"30s\") or number (nanoseconds)")
}

// MarshalJSON 实现 json.Marshaler 接口
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Set 解析字符串形式的时长（用于环境变量与命令行）
func (d *Duration) Set(s string) error {
	ns, err := duration.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid duration string %q: %w", s, err)
	}
	v, err := duration.ToStd(ns)
	if err != nil {
		return fmt.Errorf("invalid duration string %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Duration 返回底层的 time.Duration 值
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// String 返回精确的字符串表示；负值按 0 处理
func (d Duration) String() string {
	ns, err := duration.FromStd(time.Duration(d))
	if err != nil {
		return duration.Format(0)
	}
	return duration.Format(ns)
}
