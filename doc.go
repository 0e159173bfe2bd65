// Package quicutil 是 QUIC 示例工具链的文本与字节工具集
//
// 工具链的客户端、服务端及其诊断输出共用以下无状态工具：
//
//   - pkg/lib/units: uint64 数量的精确与 IEC（K/M/G）格式化和解析
//   - pkg/lib/duration: 纳秒时长的精确与两位小数近似格式化和解析
//   - pkg/lib/pathutil: 请求路径规范化（"."、".." 处理）
//   - pkg/lib/hexdump: 带重复行省略的十六进制/ASCII 转储
//   - pkg/lib/crypto: 安全随机数、静态密钥、HKDF 派生与 PEM 读写
//
// 外围组件：
//
//   - config: JSON 配置，时长与大小字段使用上述格式
//   - internal/debug/tracer: 带时间戳的 hexdump 诊断输出
//   - internal/app: fx 应用容器
//   - cmd/quicutil: 命令行入口
//
// # 快速开始
//
//	n, err := units.ParseUintIEC("16M")      // 16777216
//	s := duration.Formatf(1234567)           // "1.23ms"
//	p := pathutil.Normalize("/a/../b/./c/")  // "/b/c/"
//	_ = hexdump.Dump(os.Stdout, []byte("hello"))
package quicutil
