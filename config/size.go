package config

import (
	"encoding/json"
	"fmt"

	"github.com/dep2p/go-quicutil/pkg/lib/units"
)

// Size 是支持 IEC 后缀的字节数
//
// 支持的格式:
//   - 字符串: 由 units.ParseUintIEC 解析，如 "16M"、"256K"、"1500"
//   - 数字: 字节数
//
// 输出为 units.FormatUintIEC 的表示，例如 "24M"。
type Size uint64

// UnmarshalJSON 实现 json.Unmarshaler 接口
func (s *Size) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		return s.Set(str)
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Size(n)
		return nil
	}

	return fmt.Errorf("size must be a string (e.g., \"16M\") or non-negative number (bytes)")
}

// MarshalJSON 实现 json.Marshaler 接口
func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Set 解析字符串形式的大小（用于环境变量与命令行）
func (s *Size) Set(str string) error {
	n, err := units.ParseUintIEC(str)
	if err != nil {
		return fmt.Errorf("invalid size string %q: %w", str, err)
	}
	*s = Size(n)
	return nil
}

// Bytes 返回字节数
func (s Size) Bytes() uint64 {
	return uint64(s)
}

// String 返回 IEC 表示
func (s Size) String() string {
	return units.FormatUintIEC(uint64(s))
}
