package config

import (
	"errors"
	"fmt"
)

// ValidateAll 验证整个配置的有效性
//
// 与 Config.Validate() 相同，额外处理 nil。
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateCompatibility 验证配置各部分之间的兼容性
//
// 检查单个子配置无法发现的组合问题：
//   - 单流窗口不应超过连接窗口
//   - 静默模式下打开的诊断开关不会生效
func ValidateCompatibility(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}

	t := c.Transport
	for _, s := range []struct {
		name string
		v    Size
	}{
		{"max_stream_data_bidi_local", t.MaxStreamDataBidiLocal},
		{"max_stream_data_bidi_remote", t.MaxStreamDataBidiRemote},
		{"max_stream_data_uni", t.MaxStreamDataUni},
	} {
		if s.v > t.MaxData {
			return fmt.Errorf("transport.%s (%s) exceeds max_data (%s)", s.name, s.v, t.MaxData)
		}
	}

	d := c.Diagnostics
	if d.Quiet && (d.ShowSecret || d.ShowStreamData) {
		return errors.New("diagnostics.quiet conflicts with show_secret/show_stream_data")
	}

	return nil
}
