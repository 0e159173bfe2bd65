package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/dep2p/go-quicutil/pkg/lib/crypto"
	"github.com/dep2p/go-quicutil/pkg/lib/decimal"
	"github.com/dep2p/go-quicutil/pkg/lib/duration"
	"github.com/dep2p/go-quicutil/pkg/lib/hexdump"
	"github.com/dep2p/go-quicutil/pkg/lib/pathutil"
	"github.com/dep2p/go-quicutil/pkg/lib/units"
)

// ============================================================================
//                              hexdump
// ============================================================================

func runHexdump(e *env, args []string) error {
	fs := newFlagSet(e, "hexdump", "[file|-]")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return usageErrorf("hexdump takes at most one file")
	}

	var data []byte
	var err error
	if fs.NArg() == 0 || fs.Arg(0) == "-" {
		data, err = io.ReadAll(e.stdin)
	} else {
		data, err = os.ReadFile(fs.Arg(0)) //nolint:gosec // G304: 用户指定的文件
	}
	if err != nil {
		return err
	}

	return hexdump.Dump(e.stdout, data)
}

// ============================================================================
//                              size / duration
// ============================================================================

func runSize(e *env, args []string) error {
	fs := newFlagSet(e, "size", "fmt|parse <value>...")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return usageErrorf("size needs a mode and at least one value")
	}

	var convert func(string) (string, error)
	switch fs.Arg(0) {
	case "fmt":
		// 精确数字 → IEC 表示
		convert = func(s string) (string, error) {
			n, err := units.ParseUint(s)
			if err != nil {
				return "", err
			}
			return units.FormatUintIEC(n), nil
		}
	case "parse":
		// IEC 表示 → 精确数字
		convert = func(s string) (string, error) {
			n, err := units.ParseUintIEC(s)
			if err != nil {
				return "", err
			}
			return units.FormatUint(n), nil
		}
	default:
		return usageErrorf("unknown size mode %q", fs.Arg(0))
	}

	return convertEach(e.stdout, fs.Args()[1:], convert)
}

func runDuration(e *env, args []string) error {
	if len(args) == 0 {
		return usageErrorf("duration needs a mode: fmt or parse")
	}

	mode := args[0]
	fs := newFlagSet(e, "duration "+mode, "[-approx] <value>...")
	approx := fs.Bool("approx", false, "format with two decimals (fmt only)")
	if err := parseFlags(fs, args[1:]); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usageErrorf("duration %s needs at least one value", mode)
	}

	var convert func(string) (string, error)
	switch mode {
	case "fmt":
		format := duration.Format
		if *approx {
			format = duration.Formatf
		}
		convert = func(s string) (string, error) {
			ns, err := decimal.Parse(s)
			if err != nil {
				return "", err
			}
			return format(ns), nil
		}
	case "parse":
		if *approx {
			return usageErrorf("-approx only applies to fmt")
		}
		convert = func(s string) (string, error) {
			ns, err := duration.Parse(s)
			if err != nil {
				return "", err
			}
			return decimal.Format(ns), nil
		}
	default:
		return usageErrorf("unknown duration mode %q", mode)
	}

	return convertEach(e.stdout, fs.Args(), convert)
}

// convertEach 逐个转换并输出，遇到第一个错误即停止
func convertEach(w io.Writer, values []string, convert func(string) (string, error)) error {
	for _, v := range values {
		out, err := convert(v)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
//                              path
// ============================================================================

func runPath(e *env, args []string) error {
	fs := newFlagSet(e, "path", "[-root dir] <path>...")
	root := fs.String("root", "", "resolve each path to a file under this document root")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usageErrorf("path needs at least one path")
	}

	return convertEach(e.stdout, fs.Args(), func(p string) (string, error) {
		if *root != "" {
			return pathutil.Resolve(*root, p), nil
		}
		return pathutil.Normalize(p), nil
	})
}

// ============================================================================
//                              secret / pem
// ============================================================================

// maxSecretLen 静态密钥的最大长度（一个 SHA-256 摘要）
const maxSecretLen = 32

func runSecret(e *env, args []string) error {
	fs := newFlagSet(e, "secret", "[-out file] [-len n]")
	out := fs.String("out", "", "write the secret to this PEM file instead of stdout")
	n := fs.Int("len", maxSecretLen, "secret length in bytes (1-32)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return usageErrorf("secret takes no arguments")
	}
	if *n <= 0 || *n > maxSecretLen {
		return usageErrorf("-len must be between 1 and %d", maxSecretLen)
	}

	secret := make([]byte, *n)
	if err := crypto.GenerateSecret(secret); err != nil {
		return err
	}

	if *out == "" {
		_, err := fmt.Fprintln(e.stdout, hex.EncodeToString(secret))
		return err
	}
	if err := crypto.WritePEM(*out, "static secret", crypto.PEMTypeStaticSecret, secret); err != nil {
		return err
	}
	log.Info("wrote static secret", "file", *out, "len", *n)
	return nil
}

func runPEM(e *env, args []string) error {
	fs := newFlagSet(e, "pem", "-type T <file>")
	typ := fs.String("type", crypto.PEMTypeStaticSecret, "expected PEM block type")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageErrorf("pem needs exactly one file")
	}

	data, err := crypto.ReadPEM(fs.Arg(0), *typ, *typ)
	if err != nil {
		return err
	}
	return hexdump.Dump(e.stdout, data)
}
