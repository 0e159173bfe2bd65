// Package app 提供 quicutil 应用编排层
//
// app 包负责：
// - fx 模块组装（配置、诊断 tracer、密钥材料）
// - 日志配置
// - 生命周期管理
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-quicutil/config"
	"github.com/dep2p/go-quicutil/internal/debug/tracer"
	"github.com/dep2p/go-quicutil/internal/util/logger"
)

var log = logger.Logger("app")

// 默认超时
const (
	defaultStartTimeout = 30 * time.Second
	defaultStopTimeout  = 30 * time.Second
)

// ErrNotBuilt 尚未调用 Build
var ErrNotBuilt = errors.New("app not built")

// Bootstrap 应用引导程序
//
// Bootstrap 负责：
// - 校验配置
// - 组装 fx 模块
// - 管理应用生命周期
type Bootstrap struct {
	config       *config.Config
	fxOptions    []fx.Option
	startTimeout time.Duration
	stopTimeout  time.Duration

	fxApp  *fx.App
	tracer *tracer.Tracer
	keys   *Keys
}

// NewBootstrap 创建引导程序，cfg 为 nil 时使用默认配置
//
// 引导程序持有 cfg 的副本，调用方之后对 cfg 的修改不影响应用。
func NewBootstrap(cfg *config.Config, opts ...BootstrapOption) *Bootstrap {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	b := &Bootstrap{
		config:       config.CloneConfig(cfg),
		startTimeout: defaultStartTimeout,
		stopTimeout:  defaultStopTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// New 校验配置并构建 fx 应用（不启动）
func New(cfg *config.Config, opts ...fx.Option) (*fx.App, error) {
	if err := config.ValidateAll(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	options := []fx.Option{
		fx.Supply(cfg),
		Module(),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	}
	options = append(options, opts...)

	app := fx.New(options...)
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}
	return app, nil
}

// Build 构建应用（不启动）
func (b *Bootstrap) Build() error {
	opts := append([]fx.Option{}, b.fxOptions...)
	opts = append(opts, fx.Populate(&b.tracer, &b.keys))

	app, err := New(b.config, opts...)
	if err != nil {
		return err
	}
	b.fxApp = app
	return nil
}

// Start 构建并启动应用，返回运行时句柄
func (b *Bootstrap) Start(ctx context.Context) (*Runtime, error) {
	if b.fxApp == nil {
		if err := b.Build(); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, b.startTimeout)
	defer cancel()

	if err := b.fxApp.Start(ctx); err != nil {
		return nil, fmt.Errorf("start app: %w", err)
	}

	return &Runtime{
		Config: b.config,
		Tracer: b.tracer,
		Keys:   b.keys,
		stop:   b.Stop,
	}, nil
}

// Stop 停止应用
func (b *Bootstrap) Stop(ctx context.Context) error {
	if b.fxApp == nil {
		return ErrNotBuilt
	}

	ctx, cancel := context.WithTimeout(ctx, b.stopTimeout)
	defer cancel()

	if err := b.fxApp.Stop(ctx); err != nil {
		return fmt.Errorf("stop app: %w", err)
	}
	return nil
}

// Config 返回使用的配置
func (b *Bootstrap) Config() *config.Config {
	return b.config
}
