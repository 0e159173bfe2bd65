// Package config 提供 quicutil 工具链的统一配置管理
//
// 本包沿用分文件的子配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义，各自提供 Default*Config 与 Validate
//   - 支持从 JSON 加载和保存配置，以及 QUICUTIL_ 环境变量覆盖
//
// 时长与大小字段使用人类可读的字符串：
//
//	{
//	  "transport": {"idle_timeout": "30s", "max_data": "24M"},
//	  "server": {"htdocs": "/var/www"}
//	}
//
// 使用示例：
//
//	cfg, err := config.LoadFile("quicutil.json")
//	if err != nil {
//	    return err
//	}
//	if err := config.ApplyEnv(cfg); err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config

import (
	"go.uber.org/multierr"
)

// Config 是 quicutil 的完整配置结构
//
// 配置按照功能组织：
//   - Transport: QUIC 传输参数
//   - Security: TLS 与密钥材料
//   - Server: 示例服务端
//   - Diagnostics: 诊断输出与日志
type Config struct {
	// Transport 传输参数配置
	Transport TransportConfig `json:"transport"`

	// Security 安全配置
	Security SecurityConfig `json:"security"`

	// Server 服务端配置
	Server ServerConfig `json:"server"`

	// Diagnostics 诊断配置
	Diagnostics DiagnosticsConfig `json:"diagnostics"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Transport:   DefaultTransportConfig(),
		Security:    DefaultSecurityConfig(),
		Server:      DefaultServerConfig(),
		Diagnostics: DefaultDiagnosticsConfig(),
	}
}

// Validate 验证配置的有效性
//
// 检查所有子配置，返回包含全部问题的聚合错误；
// 可用 multierr.Errors 逐个取出。
func (c *Config) Validate() error {
	return multierr.Combine(
		c.Transport.Validate(),
		c.Security.Validate(),
		c.Server.Validate(),
		c.Diagnostics.Validate(),
	)
}
