package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/dep2p/go-quicutil/internal/util/logger"
)

// DiagnosticsConfig 诊断输出配置
type DiagnosticsConfig struct {
	// Quiet 关闭所有诊断输出
	Quiet bool `json:"quiet"`

	// ShowSecret 打印 TLS 密钥材料（仅用于调试）
	ShowSecret bool `json:"show_secret"`

	// ShowStreamData 打印流数据与数据报的 hexdump
	ShowStreamData bool `json:"show_stream_data"`

	// LogLevel 日志级别：debug/info/warn/error，空表示沿用环境变量
	LogLevel string `json:"log_level,omitempty"`

	// LogFormat 日志格式：text/json，空表示沿用环境变量
	LogFormat string `json:"log_format,omitempty"`
}

// DefaultDiagnosticsConfig 返回默认诊断配置
func DefaultDiagnosticsConfig() DiagnosticsConfig {
	return DiagnosticsConfig{}
}

// Validate 验证诊断配置
func (c DiagnosticsConfig) Validate() error {
	var err error

	if c.LogLevel != "" {
		if _, e := logger.ParseLevel(c.LogLevel); e != nil {
			err = multierr.Append(err, fmt.Errorf("diagnostics.log_level: %w", e))
		}
	}
	if c.LogFormat != "" {
		if _, e := logger.ParseFormat(c.LogFormat); e != nil {
			err = multierr.Append(err, fmt.Errorf("diagnostics.log_format: %w", e))
		}
	}

	return err
}
