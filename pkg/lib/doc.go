// Package lib 包含无状态的文本与字节工具库
//
//   - decimal: uint64 十进制数字解析与格式化
//   - units: K/M/G（1024 进制）数量表示
//   - duration: 纳秒时长的精确与近似表示
//   - pathutil: 请求路径规范化
//   - hexdump: 十六进制/ASCII 转储
//   - crypto: 随机数、静态密钥、PEM 与 TLS 参数解析
//
// # 使用示例
//
//	import (
//	    "github.com/dep2p/go-quicutil/pkg/lib/duration"
//	    "github.com/dep2p/go-quicutil/pkg/lib/units"
//	)
package lib
