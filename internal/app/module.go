package app

import (
	"context"
	"io"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"

	"github.com/dep2p/go-quicutil/config"
	"github.com/dep2p/go-quicutil/internal/debug/tracer"
	"github.com/dep2p/go-quicutil/internal/util/logger"
)

// ============================================================================
//                              模块输入依赖
// ============================================================================

// ModuleInput 定义模块输入依赖
type ModuleInput struct {
	fx.In

	// 配置（可选，使用默认配置）
	Config *config.Config `optional:"true"`

	// TraceOutput 诊断输出目标（可选，默认 stderr）
	TraceOutput io.Writer `name:"trace_output" optional:"true"`

	// Clock 时钟（可选，测试中注入 mock）
	Clock clock.Clock `optional:"true"`
}

// ============================================================================
//                              模块输出服务
// ============================================================================

// ModuleOutput 定义模块输出服务
type ModuleOutput struct {
	fx.Out

	Tracer *tracer.Tracer
	Keys   *Keys
}

// ============================================================================
//                              服务提供
// ============================================================================

// ProvideServices 提供模块服务
func ProvideServices(input ModuleInput) (ModuleOutput, error) {
	cfg := input.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	var opts []tracer.Option
	if input.TraceOutput != nil {
		opts = append(opts, tracer.WithOutput(input.TraceOutput))
	}
	if input.Clock != nil {
		opts = append(opts, tracer.WithClock(input.Clock))
	}

	keys, err := loadKeys(cfg.Security.StaticSecretFile)
	if err != nil {
		return ModuleOutput{}, err
	}

	return ModuleOutput{
		Tracer: tracer.New(cfg.Diagnostics, opts...),
		Keys:   keys,
	}, nil
}

// ============================================================================
//                              生命周期
// ============================================================================

// lifecycleInput 生命周期依赖
type lifecycleInput struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config `optional:"true"`
	Tracer *tracer.Tracer
	Keys   *Keys
}

// registerLifecycle 注册启动与停止钩子
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if input.Config != nil {
				d := input.Config.Diagnostics
				if err := logger.Configure(d.LogLevel, d.LogFormat); err != nil {
					return err
				}
			}
			log.Info("quicutil started",
				"persisted_secret", input.Keys.Persisted,
				"show_secret", input.Tracer.SecretsEnabled(),
				"show_stream_data", input.Tracer.StreamDataEnabled())
			return input.Tracer.PrintSecret("static_secret", input.Keys.StaticSecret)
		},
		OnStop: func(_ context.Context) error {
			log.Info("quicutil stopped", "uptime", input.Tracer.Elapsed())
			return nil
		},
	})
}

// Module 返回 fx 模块
func Module() fx.Option {
	return fx.Module("quicutil",
		fx.Provide(ProvideServices),
		fx.Invoke(registerLifecycle),
	)
}
