package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/dep2p/go-quicutil/pkg/lib/crypto"
)

// SecurityConfig TLS 与密钥材料配置
type SecurityConfig struct {
	// KeyFile 服务端私钥文件（PEM）
	KeyFile string `json:"key_file,omitempty"`

	// CertFile 服务端证书文件（PEM）
	CertFile string `json:"cert_file,omitempty"`

	// StaticSecretFile 静态密钥文件，用于派生 token 密钥
	// 为空时每次启动随机生成
	StaticSecretFile string `json:"static_secret_file,omitempty"`

	// Ciphers TLS 1.3 密码套件列表（冒号分隔）
	Ciphers string `json:"ciphers"`

	// Groups 密钥交换组列表（冒号分隔）
	Groups string `json:"groups"`
}

// DefaultSecurityConfig 返回默认安全配置
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		Ciphers: crypto.DefaultCiphers(),
		Groups:  crypto.DefaultGroups(),
	}
}

// Validate 验证安全配置
func (c SecurityConfig) Validate() error {
	var err error

	if ciphers, e := crypto.ParseCiphers(c.Ciphers); e != nil {
		err = multierr.Append(err, fmt.Errorf("security.ciphers: %w", e))
	} else if len(ciphers) == 0 {
		err = multierr.Append(err, errors.New("security.ciphers must not be empty"))
	}

	if groups, e := crypto.ParseGroups(c.Groups); e != nil {
		err = multierr.Append(err, fmt.Errorf("security.groups: %w", e))
	} else if len(groups) == 0 {
		err = multierr.Append(err, errors.New("security.groups must not be empty"))
	}

	// 私钥与证书必须成对出现
	if (c.KeyFile == "") != (c.CertFile == "") {
		err = multierr.Append(err, errors.New("security.key_file and security.cert_file must be set together"))
	}

	return err
}
