package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/dep2p/go-quicutil/config"
	"github.com/dep2p/go-quicutil/internal/app"
)

// ============================================================================
//                              配置加载（CLI 专用）
// ============================================================================

// loadConfig 按优先级组装配置
//
// 配置优先级（从高到低）：
//  1. 命令行参数
//  2. 环境变量（QUICUTIL_* 前缀）
//  3. 配置文件
//  4. 默认值
func loadConfig(path string, overrides func(*config.Config) error) (*config.Config, error) {
	cfg := config.NewConfig()
	if path != "" {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if overrides != nil {
		if err := overrides(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func runConfig(e *env, args []string) error {
	fs := newFlagSet(e, "config", "[-config file] [-check]")
	path := fs.String("config", "", "JSON configuration file")
	check := fs.Bool("check", false, "start the application once to verify keys and diagnostics")

	var idleTimeout config.Duration
	var maxData config.Size
	fs.Var(&idleTimeout, "idle-timeout", "override transport.idle_timeout (e.g. 30s)")
	fs.Var(&maxData, "max-data", "override transport.max_data (e.g. 24M)")
	htdocs := fs.String("htdocs", "", "override server.htdocs")
	quiet := fs.Bool("quiet", false, "override diagnostics.quiet")

	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return usageErrorf("config takes no arguments")
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := loadConfig(*path, func(cfg *config.Config) error {
		if set["idle-timeout"] {
			cfg.Transport.IdleTimeout = idleTimeout
		}
		if set["max-data"] {
			cfg.Transport.MaxData = maxData
		}
		if set["htdocs"] {
			cfg.Server.Htdocs = *htdocs
		}
		if set["quiet"] {
			cfg.Diagnostics.Quiet = *quiet
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.ValidateCompatibility(cfg); err != nil {
		log.Warn("configuration compatibility", "err", err)
	}

	if *check {
		b := app.NewBootstrap(cfg, app.WithTraceOutput(e.stderr))
		err := app.Run(context.Background(), b, func(_ context.Context, rt *app.Runtime) error {
			log.Info("configuration check passed",
				"persisted_secret", rt.Keys.Persisted,
				"uptime", rt.Tracer.Elapsed())
			return nil
		})
		if err != nil {
			return err
		}
	}

	data, err := cfg.ToJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout, string(data))
	return err
}
