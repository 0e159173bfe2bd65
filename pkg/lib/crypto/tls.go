package crypto

import (
	"crypto/tls"
	"fmt"
	"strings"
)

// 默认 TLS 1.3 参数（冒号分隔，与 OpenSSL 风格一致）
const (
	defaultCiphers = "TLS_AES_128_GCM_SHA256:TLS_AES_256_GCM_SHA384:TLS_CHACHA20_POLY1305_SHA256"
	defaultGroups  = "X25519:P-256:P-384:P-521"
)

// groupsByName 支持的密钥交换组
var groupsByName = map[string]tls.CurveID{
	"X25519": tls.X25519,
	"P-256":  tls.CurveP256,
	"P-384":  tls.CurveP384,
	"P-521":  tls.CurveP521,
}

// DefaultCiphers 返回默认的 TLS 1.3 密码套件列表
func DefaultCiphers() string {
	return defaultCiphers
}

// DefaultGroups 返回默认的密钥交换组列表
func DefaultGroups() string {
	return defaultGroups
}

// ParseCiphers 将冒号分隔的密码套件名称解析为 crypto/tls 标识
func ParseCiphers(list string) ([]uint16, error) {
	byName := make(map[string]uint16)
	for _, cs := range tls.CipherSuites() {
		byName[cs.Name] = cs.ID
	}

	names := splitList(list)
	ids := make([]uint16, 0, len(names))
	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseGroups 将冒号分隔的组名称解析为 crypto/tls 曲线标识
func ParseGroups(list string) ([]tls.CurveID, error) {
	names := splitList(list)
	ids := make([]tls.CurveID, 0, len(names))
	for _, name := range names {
		id, ok := groupsByName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// splitList 分割冒号列表并去除空白项
func splitList(list string) []string {
	parts := strings.Split(list, ":")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
