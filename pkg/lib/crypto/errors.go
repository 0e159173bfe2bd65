package crypto

import "errors"

// ============================================================================
//                              错误定义
// ============================================================================

// 密钥生成相关错误
var (
	// ErrRandomFailed 随机数生成失败
	ErrRandomFailed = errors.New("secure random generation failed")

	// ErrSecretTooLong 请求的密钥长度超过摘要长度
	ErrSecretTooLong = errors.New("secret longer than digest size")

	// ErrDeriveFailed 密钥派生失败
	ErrDeriveFailed = errors.New("key derivation failed")
)

// PEM 相关错误
var (
	// ErrInvalidPEM 文件中没有 PEM 块
	ErrInvalidPEM = errors.New("invalid PEM data")

	// ErrPEMTypeMismatch PEM 块类型与期望不符
	ErrPEMTypeMismatch = errors.New("unexpected PEM type")
)

// TLS 配置相关错误
var (
	// ErrUnknownCipher 未知的密码套件名称
	ErrUnknownCipher = errors.New("unknown cipher suite")

	// ErrUnknownGroup 未知的密钥交换组名称
	ErrUnknownGroup = errors.New("unknown group")
)
