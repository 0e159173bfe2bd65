// Package pathutil 提供以 "/" 分隔的路径规范化
//
// Normalize 折叠连续斜杠、消解 "." 与 ".."，结果总以 "/" 开头，
// 且多次调用结果不变。Resolve 在此基础上把请求路径映射到文档根目录下的文件。
package pathutil

import (
	"path/filepath"
	"strings"
)

// IndexFile 目录请求映射到的默认文件名
const IndexFile = "index.html"

// Normalize 返回 path 的规范形式
//
// 规则：
//   - 连续的 "/" 视为一个
//   - 丢弃空段和 "." 段
//   - ".." 弹出上一个保留段；已在根目录时直接丢弃
//   - 输入以 "/"、"." 或 ".." 结尾时保留结尾的 "/"
//   - 根目录输出 "/"
func Normalize(path string) string {
	segs := strings.Split(path, "/")
	kept := make([]string, 0, len(segs))

	for _, seg := range segs {
		switch seg {
		case "", ".":
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, seg)
		}
	}

	if len(kept) == 0 {
		return "/"
	}

	var b strings.Builder
	b.Grow(len(path) + 1)
	for _, seg := range kept {
		b.WriteByte('/')
		b.WriteString(seg)
	}

	switch segs[len(segs)-1] {
	case "", ".", "..":
		b.WriteByte('/')
	}
	return b.String()
}

// Resolve 将请求路径映射为 root 下的文件路径
//
// 请求路径中 '?' 或 '#' 之后的部分被忽略；规范化后以 "/" 结尾的目录请求
// 映射到 IndexFile。规范化已消除全部 ".."，结果不会跳出 root。
func Resolve(root, reqPath string) string {
	if i := strings.IndexAny(reqPath, "?#"); i >= 0 {
		reqPath = reqPath[:i]
	}

	p := Normalize(reqPath)
	if strings.HasSuffix(p, "/") {
		p += IndexFile
	}
	return filepath.Join(root, filepath.FromSlash(p))
}
