package config

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// ============================================================================
//                              环境变量
// ============================================================================

// EnvPrefix 环境变量前缀
const EnvPrefix = "QUICUTIL_"

// 环境变量名（不含前缀）
const (
	EnvIdleTimeout   = "IDLE_TIMEOUT"
	EnvMaxData       = "MAX_DATA"
	EnvMaxStreamData = "MAX_STREAM_DATA"
	EnvHtdocs        = "HTDOCS"
	EnvCiphers       = "CIPHERS"
	EnvGroups        = "GROUPS"
	EnvKeyFile       = "KEY_FILE"
	EnvCertFile      = "CERT_FILE"
)

// ApplyEnv 应用环境变量覆盖配置
//
// 环境变量优先级高于配置文件，但低于命令行参数。
// 支持的环境变量（均使用 QUICUTIL_ 前缀）：
//   - QUICUTIL_IDLE_TIMEOUT: 空闲超时，如 "30s"
//   - QUICUTIL_MAX_DATA: 连接级流量控制上限，如 "24M"
//   - QUICUTIL_MAX_STREAM_DATA: 同时设置三类流的流量控制上限
//   - QUICUTIL_HTDOCS: 服务端文件根目录
//   - QUICUTIL_CIPHERS / QUICUTIL_GROUPS: TLS 参数
//   - QUICUTIL_KEY_FILE / QUICUTIL_CERT_FILE: 服务端密钥与证书
//
// 无法解析的值不会修改配置，所有问题合并后返回。
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}

	var err error

	if v, ok := get(EnvIdleTimeout); ok {
		var d Duration
		if e := d.Set(v); e != nil {
			err = multierr.Append(err, fmt.Errorf("%s%s: %w", EnvPrefix, EnvIdleTimeout, e))
		} else {
			cfg.Transport.IdleTimeout = d
		}
	}

	if v, ok := get(EnvMaxData); ok {
		var s Size
		if e := s.Set(v); e != nil {
			err = multierr.Append(err, fmt.Errorf("%s%s: %w", EnvPrefix, EnvMaxData, e))
		} else {
			cfg.Transport.MaxData = s
		}
	}

	if v, ok := get(EnvMaxStreamData); ok {
		var s Size
		if e := s.Set(v); e != nil {
			err = multierr.Append(err, fmt.Errorf("%s%s: %w", EnvPrefix, EnvMaxStreamData, e))
		} else {
			cfg.Transport.MaxStreamDataBidiLocal = s
			cfg.Transport.MaxStreamDataBidiRemote = s
			cfg.Transport.MaxStreamDataUni = s
		}
	}

	if v, ok := get(EnvHtdocs); ok {
		cfg.Server.Htdocs = v
	}
	if v, ok := get(EnvCiphers); ok {
		cfg.Security.Ciphers = v
	}
	if v, ok := get(EnvGroups); ok {
		cfg.Security.Groups = v
	}
	if v, ok := get(EnvKeyFile); ok {
		cfg.Security.KeyFile = v
	}
	if v, ok := get(EnvCertFile); ok {
		cfg.Security.CertFile = v
	}

	return err
}
