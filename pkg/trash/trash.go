package trash

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/moyu-x/similar-file/pkg/logger"
)

// Bin 回收站
// 把文件移动到回收目录而不是永久删除，跨设备移动退化为复制加删除
type Bin struct {
	fs  afero.Fs
	dir string
}

func New(fs afero.Fs, dir string) *Bin {
	return &Bin{fs: fs, dir: dir}
}

// Remove 把文件移入回收站
// 源文件缺失、目录不可写等都作为错误返回，由调用方决定是否继续
func (b *Bin) Remove(path string) error {
	if _, err := b.fs.Stat(path); err != nil {
		return fmt.Errorf("源文件不可用: %w", err)
	}

	if err := b.fs.MkdirAll(b.dir, 0755); err != nil {
		return fmt.Errorf("创建回收目录失败: %w", err)
	}

	dst, err := b.resolveDst(filepath.Base(path))
	if err != nil {
		return err
	}

	if err := b.fs.Rename(path, dst); err != nil {
		// 跨设备时 rename 会失败，复制后删除
		if copyErr := b.copyAndRemove(path, dst); copyErr != nil {
			return fmt.Errorf("移动到回收站失败: %w", copyErr)
		}
	}

	logger.Get().Debug().Msgf("已移入回收站: %s -> %s", path, dst)
	return nil
}

// resolveDst 计算回收站内的目标路径，重名时追加随机后缀
func (b *Bin) resolveDst(name string) (string, error) {
	dst := filepath.Join(b.dir, name)
	if _, err := b.fs.Stat(dst); os.IsNotExist(err) {
		return dst, nil
	} else if err != nil {
		return "", fmt.Errorf("检查目标路径失败: %w", err)
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	suffix := uuid.NewString()[:8]
	return filepath.Join(b.dir, base+"_"+suffix+ext), nil
}

func (b *Bin) copyAndRemove(src, dst string) error {
	in, err := b.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := b.fs.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		b.fs.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return b.fs.Remove(src)
}
