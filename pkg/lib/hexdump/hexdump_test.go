package hexdump

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDump 测试转储输出格式
func TestDump(t *testing.T) {
	tests := []struct {
		name string
		data string
		dump string
	}{
		{
			"Empty",
			"",
			"00000000\n",
		},
		{
			"OneByte",
			"0",
			"00000000  30                                                |0|\n" +
				"00000001\n",
		},
		{
			"EightBytes",
			"01234567",
			"00000000  30 31 32 33 34 35 36 37                           |01234567|\n" +
				"00000008\n",
		},
		{
			"NineBytes",
			"012345678",
			"00000000  30 31 32 33 34 35 36 37  38                       |012345678|\n" +
				"00000009\n",
		},
		{
			"FifteenBytes",
			"0123456789abcde",
			"00000000  30 31 32 33 34 35 36 37  38 39 61 62 63 64 65     |0123456789abcde|\n" +
				"0000000f\n",
		},
		{
			"SixteenBytes",
			"0123456789abcdef",
			"00000000  30 31 32 33 34 35 36 37  38 39 61 62 63 64 65 66  |0123456789abcdef|\n" +
				"00000010\n",
		},
		{
			"SeventeenBytes",
			"0123456789abcdefg",
			"00000000  30 31 32 33 34 35 36 37  38 39 61 62 63 64 65 66  |0123456789abcdef|\n" +
				"00000010  67                                                |g|\n" +
				"00000011\n",
		},
		{
			"NonPrintables",
			"\x00\a\b\t\n\v\f\r\x7f",
			"00000000  00 07 08 09 0a 0b 0c 0d  7f                       |.........|\n" +
				"00000009\n",
		},
		{
			"HighBytes",
			"\x80\xff ~",
			"00000000  80 ff 20 7e                                       |.. ~|\n" +
				"00000004\n",
		},
		{
			"MultipleLines",
			"alpha bravo charlie delta echo foxtrot golf",
			"00000000  61 6c 70 68 61 20 62 72  61 76 6f 20 63 68 61 72  |alpha bravo char|\n" +
				"00000010  6c 69 65 20 64 65 6c 74  61 20 65 63 68 6f 20 66  |lie delta echo f|\n" +
				"00000020  6f 78 74 72 6f 74 20 67  6f 6c 66                 |oxtrot golf|\n" +
				"0000002b\n",
		},
		{
			"RepeatedLines",
			strings.Repeat("0000000000000001", 3) +
				strings.Repeat("0000000000000002", 2) +
				"0000000000000003",
			"00000000  30 30 30 30 30 30 30 30  30 30 30 30 30 30 30 31  |0000000000000001|\n" +
				"*\n" +
				"00000030  30 30 30 30 30 30 30 30  30 30 30 30 30 30 30 32  |0000000000000002|\n" +
				"*\n" +
				"00000050  30 30 30 30 30 30 30 30  30 30 30 30 30 30 30 33  |0000000000000003|\n" +
				"00000060\n",
		},
		{
			"EndsWithRepeatedLine",
			strings.Repeat("0000000000000001", 3) +
				strings.Repeat("0000000000000002", 2),
			"00000000  30 30 30 30 30 30 30 30  30 30 30 30 30 30 30 31  |0000000000000001|\n" +
				"*\n" +
				"00000030  30 30 30 30 30 30 30 30  30 30 30 30 30 30 30 32  |0000000000000002|\n" +
				"*\n" +
				"00000050\n",
		},
		{
			"PartialLineAfterRepeat",
			strings.Repeat("0000000000000001", 2) + "00",
			"00000000  30 30 30 30 30 30 30 30  30 30 30 30 30 30 30 31  |0000000000000001|\n" +
				"*\n" +
				"00000020  30 30                                             |00|\n" +
				"00000022\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Dump(&buf, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.dump, buf.String())
		})
	}
}

// TestDump_ThreeRepeatedGroups 三组各自重复多次的 16 字节模式
func TestDump_ThreeRepeatedGroups(t *testing.T) {
	a := bytes.Repeat([]byte{0xaa}, BytesPerLine)
	b := bytes.Repeat([]byte{'b'}, BytesPerLine)
	c := []byte("cccccccccccccccc")

	var data []byte
	for _, g := range []struct {
		line  []byte
		count int
	}{{a, 4}, {b, 3}, {c, 5}} {
		for i := 0; i < g.count; i++ {
			data = append(data, g.line...)
		}
	}

	out := Sprint(data)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "00000000  aa aa"))
	assert.Equal(t, "*", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "00000040  62 62"))
	assert.True(t, strings.HasSuffix(lines[2], "|bbbbbbbbbbbbbbbb|"))
	assert.Equal(t, "*", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "00000070  63 63"))
	// 末尾的重复段同样折叠为一个 "*"
	assert.Equal(t, "*", lines[5])
	assert.Equal(t, "000000c0", lines[6])
	assert.Equal(t, 3, strings.Count(out, "*\n"))
}

// TestDump_ReusesDumper 同一个 Dumper 多次转储互不影响
func TestDump_ReusesDumper(t *testing.T) {
	var buf bytes.Buffer
	d := NewDumper(&buf)

	require.NoError(t, d.Dump([]byte("0123456789abcdef0123456789abcdef")))
	require.NoError(t, d.Dump([]byte("0123456789abcdef")))

	want := "00000000  30 31 32 33 34 35 36 37  38 39 61 62 63 64 65 66  |0123456789abcdef|\n" +
		"*\n" +
		"00000020\n" +
		"00000000  30 31 32 33 34 35 36 37  38 39 61 62 63 64 65 66  |0123456789abcdef|\n" +
		"00000010\n"
	assert.Equal(t, want, buf.String())
}

// failingWriter 在第 n 次写入时失败
type failingWriter struct {
	n      int
	writes int
	err    error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes >= w.n {
		return 0, w.err
	}
	return len(p), nil
}

// TestDump_WriteError 写入失败时立即终止
func TestDump_WriteError(t *testing.T) {
	sinkErr := errors.New("disk full")
	w := &failingWriter{n: 2, err: sinkErr}

	err := Dump(w, []byte("alpha bravo charlie delta echo foxtrot golf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, sinkErr)
	assert.Equal(t, 2, w.writes, "no writes after the failing one")
}

// TestDump_WriteErrorOnFinalLine 最后一行写入失败同样返回错误
func TestDump_WriteErrorOnFinalLine(t *testing.T) {
	sinkErr := errors.New("closed")
	w := &failingWriter{n: 1, err: sinkErr}

	err := Dump(w, nil)
	assert.ErrorIs(t, err, sinkErr)
	assert.Equal(t, 1, w.writes)
}

// TestDump_NilWriter 测试 nil 输出目标
func TestDump_NilWriter(t *testing.T) {
	assert.ErrorIs(t, Dump(nil, []byte("x")), ErrNilWriter)
}
