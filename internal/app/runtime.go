package app

import (
	"context"

	"github.com/dep2p/go-quicutil/config"
	"github.com/dep2p/go-quicutil/internal/debug/tracer"
)

// Runtime 表示一个已通过 fx 组装并启动的 quicutil 运行时
type Runtime struct {
	Config *config.Config
	Tracer *tracer.Tracer
	Keys   *Keys

	stop func(ctx context.Context) error
}

// Stop 停止运行时（触发 fx 生命周期 OnStop）
func (r *Runtime) Stop(ctx context.Context) error {
	if r.stop == nil {
		return nil
	}
	return r.stop(ctx)
}
