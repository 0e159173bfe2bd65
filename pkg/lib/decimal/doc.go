// Package decimal 提供带溢出检查的十进制无符号整数解析
//
// 本包是 units、duration 等格式化包共享的底层原语：
//   - Parse: 整串解析为 uint64
//   - ParsePrefix: 解析前导数字串，返回消耗的字节数（供带单位后缀的解析器使用）
//   - Mul: 带溢出检查的乘法
//   - Format: uint64 的十进制表示
//
// 溢出在每一步 "乘 10 加数字" 之前检测，而不是运算后再检查，
// 因此 18446744073709551615 可以被接受，而 18446744073709551616 会被拒绝。
//
// 所有解析失败都以 *ParseError 返回，内部包装 ErrSyntax 或 ErrRange。
// 调用方通常只需判断 err != nil。
package decimal
