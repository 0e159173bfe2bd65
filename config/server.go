package config

import (
	"errors"
	"fmt"
	"net"

	"go.uber.org/multierr"
)

// ServerConfig 示例服务端配置
type ServerConfig struct {
	// Htdocs 静态文件根目录，请求路径经规范化后在此目录下解析
	Htdocs string `json:"htdocs"`

	// ListenAddr 监听地址（host:port）
	ListenAddr string `json:"listen_addr"`
}

// DefaultServerConfig 返回默认服务端配置
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Htdocs:     ".",
		ListenAddr: "0.0.0.0:4433",
	}
}

// Validate 验证服务端配置
func (c ServerConfig) Validate() error {
	var err error

	if c.Htdocs == "" {
		err = multierr.Append(err, errors.New("server.htdocs must not be empty"))
	}
	if _, _, e := net.SplitHostPort(c.ListenAddr); e != nil {
		err = multierr.Append(err, fmt.Errorf("server.listen_addr: %w", e))
	}

	return err
}
