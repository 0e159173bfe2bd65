// Package tracer 输出 QUIC 会话的诊断信息
//
// 每条记录由一行带相对时间戳的标题和载荷的 hexdump 组成：
//
//	[12.50ms] stream 4 data len=20
//	00000000  47 45 54 20 2f 69 6e 64  65 78 2e 68 74 6d 6c 0d  |GET /index.html.|
//	00000010  0a 0d 0a 00                                       |....|
//	00000014
//
// 时间戳是自 Tracer 创建以来经过的时间，由 duration.Formatf 近似格式化。
// 是否输出由 DiagnosticsConfig 控制：Quiet 关闭一切输出，
// ShowSecret 控制密钥材料，ShowStreamData 控制流数据与数据报。
package tracer

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-quicutil/config"
	"github.com/dep2p/go-quicutil/internal/util/logger"
	"github.com/dep2p/go-quicutil/pkg/lib/duration"
	"github.com/dep2p/go-quicutil/pkg/lib/hexdump"
)

var log = logger.Logger("tracer")

// Option 配置 Tracer
type Option func(*Tracer)

// WithClock 指定时钟（测试中使用 clock.NewMock）
func WithClock(c clock.Clock) Option {
	return func(t *Tracer) {
		t.clock = c
	}
}

// WithOutput 指定输出目标，默认为 stderr
func WithOutput(w io.Writer) Option {
	return func(t *Tracer) {
		t.w = w
	}
}

// ============================================================================
//                              Tracer
// ============================================================================

// Tracer 诊断输出器
//
// 并发安全：所有写入由互斥锁串行化，单条记录不会与其他记录交错。
type Tracer struct {
	cfg   config.DiagnosticsConfig
	clock clock.Clock
	start time.Time

	mu     sync.Mutex
	w      io.Writer
	dumper *hexdump.Dumper
}

// New 创建 Tracer，计时从此刻开始
func New(cfg config.DiagnosticsConfig, opts ...Option) *Tracer {
	t := &Tracer{
		cfg:   cfg,
		clock: clock.New(),
		w:     os.Stderr,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.dumper = hexdump.NewDumper(t.w)
	t.start = t.clock.Now()
	return t
}

// Elapsed 返回自创建以来经过的时间
func (t *Tracer) Elapsed() time.Duration {
	d := t.clock.Now().Sub(t.start)
	if d < 0 {
		return 0
	}
	return d
}

// SecretsEnabled 是否输出密钥材料
func (t *Tracer) SecretsEnabled() bool {
	return !t.cfg.Quiet && t.cfg.ShowSecret
}

// StreamDataEnabled 是否输出流数据与数据报
func (t *Tracer) StreamDataEnabled() bool {
	return !t.cfg.Quiet && t.cfg.ShowStreamData
}

// PrintSecret 输出一段 TLS 密钥材料
//
// label 为密钥名称，例如 "client_handshake_traffic_secret"。
func (t *Tracer) PrintSecret(label string, secret []byte) error {
	if !t.SecretsEnabled() {
		return nil
	}
	return t.record(fmt.Sprintf("%s len=%d", label, len(secret)), secret)
}

// PrintStreamData 输出流上收到或发送的数据
func (t *Tracer) PrintStreamData(streamID int64, data []byte) error {
	if !t.StreamDataEnabled() {
		return nil
	}
	return t.record(fmt.Sprintf("stream %d data len=%d", streamID, len(data)), data)
}

// PrintDatagram 输出一个 DATAGRAM 帧的载荷
func (t *Tracer) PrintDatagram(data []byte) error {
	if !t.StreamDataEnabled() {
		return nil
	}
	return t.record(fmt.Sprintf("datagram len=%d", len(data)), data)
}

// record 输出标题行和载荷 hexdump
func (t *Tracer) record(title string, payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.w == nil {
		return hexdump.ErrNilWriter
	}

	ts := duration.Formatf(uint64(t.Elapsed()))
	if _, err := fmt.Fprintf(t.w, "[%s] %s\n", ts, title); err != nil {
		log.Debug("trace header write failed", "title", title, "err", err)
		return fmt.Errorf("tracer: write failed: %w", err)
	}
	if err := t.dumper.Dump(payload); err != nil {
		log.Debug("trace payload write failed", "title", title, "err", err)
		return err
	}
	return nil
}
