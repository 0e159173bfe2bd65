package app

import (
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"
)

// BootstrapOption Bootstrap 配置选项
type BootstrapOption func(*Bootstrap)

// WithTraceOutput 设置诊断输出目标
func WithTraceOutput(w io.Writer) BootstrapOption {
	return func(b *Bootstrap) {
		b.fxOptions = append(b.fxOptions, fx.Provide(
			fx.Annotate(func() io.Writer { return w }, fx.ResultTags(`name:"trace_output"`)),
		))
	}
}

// WithClock 设置时钟
func WithClock(c clock.Clock) BootstrapOption {
	return func(b *Bootstrap) {
		b.fxOptions = append(b.fxOptions, fx.Provide(func() clock.Clock { return c }))
	}
}

// WithFxOptions 追加任意 fx 选项（如 fx.Populate、fx.Decorate）
func WithFxOptions(opts ...fx.Option) BootstrapOption {
	return func(b *Bootstrap) {
		b.fxOptions = append(b.fxOptions, opts...)
	}
}

// WithTimeouts 设置启动与停止超时
func WithTimeouts(start, stop time.Duration) BootstrapOption {
	return func(b *Bootstrap) {
		b.startTimeout = start
		b.stopTimeout = stop
	}
}
