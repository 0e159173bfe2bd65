// Package main 提供 quicutil 命令行入口
//
// quicutil 把工具链的文本与字节工具暴露为子命令：
//
//	quicutil hexdump [file|-]
//	quicutil size fmt|parse <value>...
//	quicutil duration fmt [-approx] <ns>... | parse <value>...
//	quicutil path [-root dir] <path>...
//	quicutil secret [-out file] [-len n]
//	quicutil pem -type T <file>
//	quicutil config [-config file] [-check]
//	quicutil version
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	quicutil "github.com/dep2p/go-quicutil"
	"github.com/dep2p/go-quicutil/internal/util/logger"
)

var log = logger.Logger("cmd")

// errUsage 参数错误，退出码为 2
var errUsage = errors.New("usage")

// env 命令的输入输出
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// command 子命令
type command struct {
	summary string
	run     func(e *env, args []string) error
}

var commands = map[string]command{
	"hexdump":  {"dump a file or stdin as hex and ASCII", runHexdump},
	"size":     {"format or parse byte counts with K/M/G suffixes", runSize},
	"duration": {"format or parse nanosecond durations", runDuration},
	"path":     {"normalize request paths", runPath},
	"secret":   {"generate a static secret", runSecret},
	"pem":      {"dump the payload of a PEM file", runPEM},
	"config":   {"show the effective configuration", runConfig},
	"version":  {"print version information", runVersion},
}

func main() {
	os.Exit(run(os.Args[1:], &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}))
}

// run 执行子命令并返回退出码
func run(args []string, e *env) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		printHelp(e.stderr)
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(e.stderr, "error: unknown command %q\n", args[0])
		printHelp(e.stderr)
		return 2
	}

	if err := cmd.run(e, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		log.Debug("command failed", "command", args[0], "err", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

// newFlagSet 创建子命令的 FlagSet，错误输出到 stderr
func newFlagSet(e *env, name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "usage: quicutil %s %s\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags 解析参数，解析失败视为参数错误
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// usageErrorf 返回参数错误
func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

func runVersion(e *env, args []string) error {
	if len(args) != 0 {
		return usageErrorf("version takes no arguments")
	}
	fmt.Fprintln(e.stdout, quicutil.VersionInfo())
	return nil
}

// printHelp 打印帮助信息
func printHelp(w io.Writer) {
	fmt.Fprintln(w, "quicutil - QUIC toolchain text and byte utilities")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  quicutil <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "environment:")
	fmt.Fprintln(w, "  QUICUTIL_LOG_LEVEL    log level, e.g. tracer=debug,info")
	fmt.Fprintln(w, "  QUICUTIL_LOG_FORMAT   text or json")
	fmt.Fprintln(w, "  QUICUTIL_*            configuration overrides, see 'quicutil config -h'")
}
