package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/dep2p/go-quicutil/pkg/lib/units"
)

// QUIC 协议对 UDP 载荷的限制（RFC 9000 §18.2）
const (
	minUDPPayloadSize = 1200
	maxUDPPayloadSize = 65527
)

// TransportConfig QUIC 传输参数配置
//
// 客户端与服务端共用，字段与 QUIC 传输参数一一对应。
type TransportConfig struct {
	// IdleTimeout 空闲超时
	IdleTimeout Duration `json:"idle_timeout"`

	// HandshakeTimeout 握手超时
	HandshakeTimeout Duration `json:"handshake_timeout"`

	// InitialRTT 初始 RTT 估计
	InitialRTT Duration `json:"initial_rtt"`

	// MaxData 连接级流量控制上限
	MaxData Size `json:"max_data"`

	// MaxStreamDataBidiLocal 本端发起的双向流的流量控制上限
	MaxStreamDataBidiLocal Size `json:"max_stream_data_bidi_local"`

	// MaxStreamDataBidiRemote 对端发起的双向流的流量控制上限
	MaxStreamDataBidiRemote Size `json:"max_stream_data_bidi_remote"`

	// MaxStreamDataUni 单向流的流量控制上限
	MaxStreamDataUni Size `json:"max_stream_data_uni"`

	// MaxStreamsBidi 允许对端打开的双向流数量
	MaxStreamsBidi uint64 `json:"max_streams_bidi"`

	// MaxStreamsUni 允许对端打开的单向流数量
	MaxStreamsUni uint64 `json:"max_streams_uni"`

	// MaxWindow 连接级自动调窗上限
	MaxWindow Size `json:"max_window"`

	// MaxStreamWindow 流级自动调窗上限
	MaxStreamWindow Size `json:"max_stream_window"`

	// MaxUDPPayloadSize 最大 UDP 载荷，0 表示使用路径 MTU 探测结果
	MaxUDPPayloadSize Size `json:"max_udp_payload_size,omitempty"`
}

// DefaultTransportConfig 返回默认传输配置
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		IdleTimeout:             Duration(30 * time.Second),       // 空闲 30 秒后关闭连接
		HandshakeTimeout:        Duration(10 * time.Second),       // 握手需在 10 秒内完成
		InitialRTT:              Duration(333 * time.Millisecond), // RFC 9002 建议值
		MaxData:                 Size(24 * units.MiB),             // 连接窗口：24 MB
		MaxStreamDataBidiLocal:  Size(16 * units.MiB),             // 本端双向流：16 MB
		MaxStreamDataBidiRemote: Size(256 * units.KiB),            // 对端双向流：256 KB
		MaxStreamDataUni:        Size(256 * units.KiB),            // 单向流：256 KB
		MaxStreamsBidi:          100,
		MaxStreamsUni:           3,
		MaxWindow:               Size(6 * units.MiB), // 自动调窗上限：6 MB
		MaxStreamWindow:         Size(6 * units.MiB),
	}
}

// Validate 验证传输配置，返回所有问题的聚合错误
func (c TransportConfig) Validate() error {
	var err error

	if c.IdleTimeout <= 0 {
		err = multierr.Append(err, errors.New("transport.idle_timeout must be positive"))
	}
	if c.HandshakeTimeout <= 0 {
		err = multierr.Append(err, errors.New("transport.handshake_timeout must be positive"))
	}
	if c.InitialRTT <= 0 {
		err = multierr.Append(err, errors.New("transport.initial_rtt must be positive"))
	}
	if c.MaxData == 0 {
		err = multierr.Append(err, errors.New("transport.max_data must be positive"))
	}
	if c.MaxWindow != 0 && c.MaxStreamWindow > c.MaxWindow {
		err = multierr.Append(err, fmt.Errorf("transport.max_stream_window (%s) exceeds max_window (%s)", c.MaxStreamWindow, c.MaxWindow))
	}
	if p := c.MaxUDPPayloadSize; p != 0 && (p < minUDPPayloadSize || p > maxUDPPayloadSize) {
		err = multierr.Append(err, fmt.Errorf("transport.max_udp_payload_size %d out of range [%d, %d]",
			p, minUDPPayloadSize, maxUDPPayloadSize))
	}

	return err
}
