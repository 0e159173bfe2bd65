package decimal

import (
	"errors"
	"strconv"
)

// 解析错误
var (
	// ErrSyntax 输入为空或包含非数字字符
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange 数值超出 uint64 范围
	ErrRange = errors.New("value out of range")
)

// ParseError 记录一次失败的解析
//
// Func 为调用的解析函数名，Input 为原始输入，Err 为 ErrSyntax 或 ErrRange。
type ParseError struct {
	Func  string
	Input string
	Err   error
}

// Error 实现 error 接口
func (e *ParseError) Error() string {
	return e.Func + ": parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

// Unwrap 返回底层错误
func (e *ParseError) Unwrap() error {
	return e.Err
}

// SyntaxError 构造语法错误
func SyntaxError(fn, input string) *ParseError {
	return &ParseError{Func: fn, Input: input, Err: ErrSyntax}
}

// RangeError 构造溢出错误
func RangeError(fn, input string) *ParseError {
	return &ParseError{Func: fn, Input: input, Err: ErrRange}
}

// Rename 返回替换了 Func 的 ParseError 副本
//
// 供包装本包的解析器以自己的函数名报告错误，非 ParseError 原样返回。
func Rename(err error, fn string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return &ParseError{Func: fn, Input: pe.Input, Err: pe.Err}
	}
	return err
}
