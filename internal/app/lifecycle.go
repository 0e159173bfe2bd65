package app

import (
	"context"
	"fmt"
	"sync"
)

// ============================================================================
//                              一次性运行
// ============================================================================

// RunFunc 在运行时启动后执行的工作
type RunFunc func(ctx context.Context, rt *Runtime) error

// Run 启动应用、执行 fn，然后停止应用
//
// fn 的错误优先返回；fn 成功但停止失败时返回停止错误。
func Run(ctx context.Context, b *Bootstrap, fn RunFunc) (err error) {
	rt, err := b.Start(ctx)
	if err != nil {
		return err
	}

	var once sync.Once
	stop := func() error {
		var stopErr error
		once.Do(func() {
			stopErr = rt.Stop(context.WithoutCancel(ctx))
		})
		return stopErr
	}

	defer func() {
		if r := recover(); r != nil {
			_ = stop()
			panic(r)
		}
	}()

	if runErr := fn(ctx, rt); runErr != nil {
		if stopErr := stop(); stopErr != nil {
			log.Warn("stop after failure", "err", stopErr)
		}
		return runErr
	}

	if stopErr := stop(); stopErr != nil {
		return fmt.Errorf("stop: %w", stopErr)
	}
	return nil
}
