package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/hkdf"

	"github.com/dep2p/go-quicutil/internal/util/logger"
)

var log = logger.Logger("crypto")

// randReader 随机源，测试中可替换
var randReader io.Reader = rand.Reader

// secretSeedSize 生成静态密钥时使用的随机种子长度
const secretSeedSize = 16

// ============================================================================
//                              随机数
// ============================================================================

// GenerateSecureRandom 用密码学安全随机字节填满 buf
func GenerateSecureRandom(buf []byte) error {
	if _, err := io.ReadFull(randReader, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomFailed, err)
	}
	return nil
}

// ============================================================================
//                              静态密钥
// ============================================================================

// GenerateSecret 生成静态密钥并写入 secret
//
// 取 16 字节安全随机数做 SHA-256 摘要，secret 获得摘要的前 len(secret) 字节。
// secret 不能超过 32 字节。
func GenerateSecret(secret []byte) error {
	if len(secret) > sha256.Size {
		return ErrSecretTooLong
	}

	var seed [secretSeedSize]byte
	if err := GenerateSecureRandom(seed[:]); err != nil {
		log.Error("failed to generate secret seed", "err", err)
		return err
	}

	h := sha256.New()
	h.Write(seed[:])
	copy(secret, h.Sum(nil))
	return nil
}

// DeriveKey 以 HKDF-SHA256 从 secret 派生 n 字节密钥
//
// salt 可为 nil；info 用于区分不同用途的子密钥。
func DeriveKey(secret, salt, info []byte, n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: invalid length %d", ErrDeriveFailed, n)
	}

	key := make([]byte, n)
	reader := hkdf.New(sha256.New, secret, salt, info)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeriveFailed, err)
	}
	return key, nil
}
