package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/dep2p/go-quicutil/pkg/lib/crypto"
)

// 密钥参数
const (
	// staticSecretSize 静态密钥长度（SHA-256 摘要长度）
	staticSecretSize = 32

	// tokenKeySize token 密钥长度
	tokenKeySize = 32
)

// tokenKeyInfo 派生 token 密钥时使用的 HKDF info
var tokenKeyInfo = []byte("quicutil token key")

// Keys 会话使用的密钥材料
type Keys struct {
	// StaticSecret 静态密钥
	StaticSecret []byte

	// TokenKey 由静态密钥派生的 token 密钥
	TokenKey []byte

	// Persisted 静态密钥是否来自或写入了文件
	Persisted bool
}

// loadKeys 加载或生成静态密钥并派生 token 密钥
//
// path 为空时生成仅存在于内存中的密钥；
// path 指向的文件不存在时生成新密钥并写入该文件。
func loadKeys(path string) (*Keys, error) {
	secret, persisted, err := loadOrCreateSecret(path)
	if err != nil {
		return nil, err
	}

	tokenKey, err := crypto.DeriveKey(secret, nil, tokenKeyInfo, tokenKeySize)
	if err != nil {
		return nil, fmt.Errorf("derive token key: %w", err)
	}

	return &Keys{
		StaticSecret: secret,
		TokenKey:     tokenKey,
		Persisted:    persisted,
	}, nil
}

func loadOrCreateSecret(path string) ([]byte, bool, error) {
	if path != "" {
		secret, err := crypto.ReadPEM(path, "static secret", crypto.PEMTypeStaticSecret)
		if err == nil {
			if len(secret) != staticSecretSize {
				return nil, false, fmt.Errorf("static secret %s: want %d bytes, got %d", path, staticSecretSize, len(secret))
			}
			log.Debug("loaded static secret", "file", path)
			return secret, true, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, false, err
		}
	}

	secret := make([]byte, staticSecretSize)
	if err := crypto.GenerateSecret(secret); err != nil {
		return nil, false, fmt.Errorf("generate static secret: %w", err)
	}

	if path == "" {
		return secret, false, nil
	}

	if err := crypto.WritePEM(path, "static secret", crypto.PEMTypeStaticSecret, secret); err != nil {
		return nil, false, err
	}
	log.Info("generated static secret", "file", path)
	return secret, true, nil
}
