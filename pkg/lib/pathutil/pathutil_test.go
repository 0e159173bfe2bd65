package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalize 测试路径规范化
func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/", "/"},
		{"//", "/"},
		{"/foo", "/foo"},
		{"/foo/bar/", "/foo/bar/"},
		{"/foo/abc/../bar/", "/foo/bar/"},
		{"/../foo/abc/../bar/", "/foo/bar/"},
		{"/./foo/././abc///.././bar/./", "/foo/bar/"},
		{"/foo/.", "/foo/"},
		{"/foo/./bar", "/foo/bar"},
		{"/foo/./../bar", "/bar"},
		{"/../../bar", "/bar"},
		{"", "/"},
		{".", "/"},
		{"..", "/"},
		{"foo/bar", "/foo/bar"},
		{"/foo/..", "/"},
		{"/foo/bar/..", "/foo/"},
		{"/...", "/..."},
		{"/.hidden/x", "/.hidden/x"},
		{"///a//b///", "/a/b/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

// TestNormalize_Idempotent 规范化结果再次规范化不变
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"", "/", "//", ".", "..", "/./", "/../",
		"/foo/bar/", "/foo/abc/../bar/", "/./foo/././abc///.././bar/./",
		"a/b/c/../../d", "/x/y/./z/..", "/..../.../..", "////", "/a/./b/../../c/",
	}
	for _, p := range inputs {
		once := Normalize(p)
		assert.Equal(t, once, Normalize(once), "input %q", p)
		assert.Equal(t, byte('/'), once[0], "input %q", p)
	}
}

// TestResolve 测试请求路径映射
func TestResolve(t *testing.T) {
	root := filepath.FromSlash("/srv/htdocs")

	tests := []struct {
		name string
		req  string
		want string
	}{
		{"Root", "/", "/srv/htdocs/index.html"},
		{"File", "/a/b.txt", "/srv/htdocs/a/b.txt"},
		{"Directory", "/a/", "/srv/htdocs/a/index.html"},
		{"Escape", "/../../etc/passwd", "/srv/htdocs/etc/passwd"},
		{"Query", "/a.txt?x=1", "/srv/htdocs/a.txt"},
		{"Fragment", "/docs/#top", "/srv/htdocs/docs/index.html"},
		{"DotDir", "/a/.", "/srv/htdocs/a/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), Resolve(root, tt.req))
		})
	}
}
