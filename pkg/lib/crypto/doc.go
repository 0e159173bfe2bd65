// Package crypto 提供 quicutil 工具链使用的密码学辅助函数
//
// 本包只是对成熟实现的薄封装，每个函数只报告成功或失败：
//
//   - GenerateSecureRandom: 填充密码学安全随机字节（crypto/rand）
//   - GenerateSecret: 16 字节随机数经 SHA-256 摘要得到静态密钥
//   - DeriveKey: 以 HKDF-SHA256 从静态密钥派生子密钥（如 token 密钥）
//   - ReadPEM / WritePEM: 读写单个 PEM 块，写入为原子操作
//   - DefaultCiphers / DefaultGroups: TLS 1.3 默认密码套件与密钥交换组
//
// # 快速开始
//
//	secret := make([]byte, 32)
//	if err := crypto.GenerateSecret(secret); err != nil {
//	    return err
//	}
//
//	tokenKey, err := crypto.DeriveKey(secret, nil, []byte("token"), 32)
//
//	err = crypto.WritePEM("static.pem", "static secret", "QUIC STATIC SECRET", secret)
//	data, err := crypto.ReadPEM("static.pem", "static secret", "QUIC STATIC SECRET")
//
// # 架构层
//
//   - 层级：pkg（公共包）
//   - 依赖：internal/util/logger
package crypto
