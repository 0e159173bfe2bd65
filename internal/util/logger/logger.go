// Package logger 提供 quicutil 的统一日志系统
//
// 基于标准库 log/slog，支持：
//   - 按子系统配置日志级别
//   - 环境变量配置（QUICUTIL_LOG_LEVEL, QUICUTIL_LOG_FORMAT）
//   - 运行时由配置文件覆盖级别与格式（Configure）
//
// 使用示例:
//
//	package tracer
//
//	import "github.com/dep2p/go-quicutil/internal/util/logger"
//
//	var log = logger.Logger("tracer")
//
//	func foo() {
//	    log.Debug("stream data", "stream", id, "len", len(data))
//	}
//
// 环境变量配置:
//
//	# 所有模块为 info，tracer 模块为 debug
//	QUICUTIL_LOG_LEVEL=tracer=debug,info
//
//	# 使用 JSON 格式输出
//	QUICUTIL_LOG_FORMAT=json
package logger

import (
	"io"
	"log/slog"
	"sync"
)

// globalSubsystem 全局 Logger 使用的子系统名
const globalSubsystem = "quicutil"

var (
	// loggers 缓存各子系统的 Logger
	loggers sync.Map // map[string]*slog.Logger

	// handlers 缓存各子系统的 Handler（用于动态调整级别）
	handlers sync.Map // map[string]*subsystemHandler

	formatOnce sync.Once
)

// Logger 获取指定子系统的 Logger
//
// 同一子系统多次调用返回相同实例。
func Logger(subsystem string) *slog.Logger {
	if l, ok := loggers.Load(subsystem); ok {
		return l.(*slog.Logger)
	}

	cfg := ConfigFromEnv()
	formatOnce.Do(func() {
		globalFormat.Store(int32(cfg.Format))
	})

	handler := newHandler(subsystem, cfg.LevelForSubsystem(subsystem), cfg.AddSource)
	actual, loaded := loggers.LoadOrStore(subsystem, slog.New(handler))
	if !loaded {
		handlers.Store(subsystem, handler)
	}
	return actual.(*slog.Logger)
}

// GlobalLogger 返回不属于特定子系统的 Logger
func GlobalLogger() *slog.Logger {
	return Logger(globalSubsystem)
}

// SetLevel 动态设置子系统的日志级别
func SetLevel(subsystem string, level slog.Level) {
	if h, ok := handlers.Load(subsystem); ok {
		h.(*subsystemHandler).SetLevel(level)
	}
}

// SetGlobalLevel 设置所有已创建子系统的日志级别
func SetGlobalLevel(level slog.Level) {
	handlers.Range(func(_, value any) bool {
		value.(*subsystemHandler).SetLevel(level)
		return true
	})
}

// SetFormat 切换所有 Logger 的输出格式
func SetFormat(format LogFormat) {
	formatOnce.Do(func() {})
	globalFormat.Store(int32(format))
}

// Configure 以配置文件中的级别和格式覆盖环境变量配置
//
// 空字符串表示保持不变。环境变量中按子系统指定的级别优先于 level。
func Configure(level, format string) error {
	if format != "" {
		f, err := ParseFormat(format)
		if err != nil {
			return err
		}
		SetFormat(f)
	}

	if level != "" {
		lvl, err := ParseLevel(level)
		if err != nil {
			return err
		}
		subsystemLevels := ConfigFromEnv().SubsystemLevels
		handlers.Range(func(key, value any) bool {
			if _, pinned := subsystemLevels[key.(string)]; !pinned {
				value.(*subsystemHandler).SetLevel(lvl)
			}
			return true
		})
		ConfigFromEnv().DefaultLevel = lvl
	}
	return nil
}

// Discard 返回一个丢弃所有日志的 Logger
func Discard() *slog.Logger {
	return slog.New(DiscardHandler())
}

// SetOutput 设置全局日志输出目标
//
// 已创建的 Logger 同样会写入新的目标。
func SetOutput(w io.Writer) {
	globalOutputMu.Lock()
	globalOutput = w
	globalOutputMu.Unlock()
}
