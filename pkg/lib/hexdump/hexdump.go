// Package hexdump 以 "偏移 + 十六进制 + ASCII" 的形式输出字节缓冲区
//
// 输出格式（每行 16 字节）：
//
//	00000000  30 31 32 33 34 35 36 37  38 39 61 62 63 64 65 66  |0123456789abcdef|
//	*
//	00000030  30 30 30 30 30 30 30 30  30 30 30 30 30 30 30 32  |0000000000000002|
//	00000040
//
// 与上一条已输出行完全相同的行不再输出，连续重复只打印一次 "*"。
// 最后一行是总字节数（8 位小写十六进制）。
package hexdump

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// BytesPerLine 每行字节数
const BytesPerLine = 16

// ErrNilWriter 输出目标为 nil
var ErrNilWriter = errors.New("hexdump: nil writer")

// elisionMarker 重复行省略标记
var elisionMarker = []byte("*\n")

// state 省略状态机
type state int

const (
	// statePrinting 正常输出
	statePrinting state = iota
	// stateEliding 正在省略重复行，"*" 已输出
	stateEliding
)

// ============================================================================
//                              Dumper
// ============================================================================

// Dumper 将字节缓冲区渲染到 io.Writer
//
// Dumper 复用内部行缓冲，不能被多个 goroutine 同时使用。
// 每次 Dump 都从偏移 0 和 statePrinting 状态开始。
type Dumper struct {
	w    io.Writer
	line []byte
}

// NewDumper 创建输出到 w 的 Dumper
//
// w 由调用方持有并负责关闭。
func NewDumper(w io.Writer) *Dumper {
	return &Dumper{
		w:    w,
		line: make([]byte, 0, 80),
	}
}

// Dump 输出 data 的完整转储
//
// 任一次写入失败都会立即终止转储并返回错误，之后不再写入；
// 此时已写出的部分输出视为无效。
func (d *Dumper) Dump(data []byte) error {
	if d.w == nil {
		return ErrNilWriter
	}

	st := statePrinting
	var prev []byte

	for off := 0; off < len(data); off += BytesPerLine {
		cur := data[off:min(off+BytesPerLine, len(data))]

		if prev != nil && bytes.Equal(cur, prev) {
			if st == statePrinting {
				if err := d.write(elisionMarker); err != nil {
					return err
				}
				st = stateEliding
			}
			continue
		}

		st = statePrinting
		d.line = appendLine(d.line[:0], off, cur)
		if err := d.write(d.line); err != nil {
			return err
		}
		prev = cur
	}

	d.line = fmt.Appendf(d.line[:0], "%08x\n", len(data))
	return d.write(d.line)
}

// write 写入一段输出，包装 sink 错误
func (d *Dumper) write(p []byte) error {
	if _, err := d.w.Write(p); err != nil {
		return fmt.Errorf("hexdump: write failed: %w", err)
	}
	return nil
}

// ============================================================================
//                              便捷函数
// ============================================================================

// Dump 将 data 的转储写入 w
func Dump(w io.Writer, data []byte) error {
	return NewDumper(w).Dump(data)
}

// Sprint 返回 data 的转储文本
func Sprint(data []byte) string {
	var sb strings.Builder
	// strings.Builder 的写入不会失败
	_ = Dump(&sb, data)
	return sb.String()
}

// ============================================================================
//                              行渲染
// ============================================================================

// appendLine 渲染一行数据
func appendLine(b []byte, off int, cur []byte) []byte {
	const hexDigits = "0123456789abcdef"

	b = fmt.Appendf(b, "%08x  ", off)
	for i := 0; i < BytesPerLine; i++ {
		if i < len(cur) {
			c := cur[i]
			b = append(b, hexDigits[c>>4], hexDigits[c&0xf], ' ')
		} else {
			b = append(b, "   "...)
		}
		if i == 7 {
			b = append(b, ' ')
		}
	}

	b = append(b, " |"...)
	for _, c := range cur {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		b = append(b, c)
	}
	return append(b, "|\n"...)
}
