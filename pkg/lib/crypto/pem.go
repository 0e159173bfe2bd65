package crypto

import (
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// pemFileMode PEM 文件权限，仅所有者可读写
const pemFileMode os.FileMode = 0600

// 工具链使用的 PEM 类型
const (
	// PEMTypeStaticSecret 服务端静态密钥
	PEMTypeStaticSecret = "QUIC STATIC SECRET"

	// PEMTypeSessionTicket 客户端会话票据
	PEMTypeSessionTicket = "QUIC TLS SESSION"

	// PEMTypeTransportParams 客户端保存的传输参数
	PEMTypeTransportParams = "QUIC TRANSPORT PARAMETERS"
)

// ============================================================================
//                              读取
// ============================================================================

// ReadPEM 从 filename 读取类型为 typ 的 PEM 块内容
//
// name 是文件的人类可读名称，仅用于日志。
// 文件无法打开、没有 PEM 块或类型不符时返回错误。
func ReadPEM(filename, name, typ string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		log.Warn("could not open file", "name", name, "file", filename, "err", err)
		return nil, fmt.Errorf("read %s file %s: %w", name, filename, err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		log.Warn("could not read file", "name", name, "file", filename)
		return nil, fmt.Errorf("read %s file %s: %w", name, filename, ErrInvalidPEM)
	}

	if block.Type != typ {
		log.Warn("file contains unexpected type", "name", name, "file", filename, "type", block.Type)
		return nil, fmt.Errorf("read %s file %s: %w: %q", name, filename, ErrPEMTypeMismatch, block.Type)
	}

	return block.Bytes, nil
}

// ============================================================================
//                              写入
// ============================================================================

// WritePEM 将 data 以类型 typ 写入 filename
//
// 使用原子写操作（临时文件 + rename）防止部分写入导致的文件损坏。
// 文件权限设置为 0600，仅所有者可读写。
func WritePEM(filename, name, typ string, data []byte) error {
	block := &pem.Block{
		Type:  typ,
		Bytes: data,
	}

	if err := writeFileAtomic(filename, pem.EncodeToMemory(block)); err != nil {
		log.Warn("could not write file", "name", name, "file", filename, "err", err)
		return fmt.Errorf("write %s in %s: %w", name, filename, err)
	}
	return nil
}

// writeFileAtomic 先写同目录下的临时文件再 rename 到 filename
//
// 临时文件名以目标文件名为前缀，失败时删除临时文件，删除错误与原错误合并返回。
func writeFileAtomic(filename string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, os.Remove(tmp.Name()))
		}
	}()

	if err = tmp.Chmod(pemFileMode); err == nil {
		if _, err = tmp.Write(data); err == nil {
			err = tmp.Sync()
		}
	}
	if err = multierr.Append(err, tmp.Close()); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
