package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/logger"
)

// Walker 目录遍历器
// 隐藏文件和隐藏目录不参与遍历，符号链接不跟随，避免链接环
type Walker struct {
	IncludeHidden bool
}

func NewWalker() *Walker {
	return &Walker{}
}

// ListFiles 列出 root 下所有可比较的普通文件
// 根目录不可读属于致命输入错误，子目录的读取错误记录后跳过
func (w *Walker) ListFiles(root string) ([]internal.FileInfo, error) {
	var files []internal.FileInfo

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Get().Warn().Err(err).Msgf("读取目录项失败，跳过: %s", path)
			return nil
		}

		name := d.Name()
		hidden := strings.HasPrefix(name, ".") && path != root

		if d.IsDir() {
			if hidden && !w.IncludeHidden {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden && !w.IncludeHidden {
			return nil
		}

		// 跳过符号链接等非普通文件
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logger.Get().Warn().Err(err).Msgf("获取文件信息失败，跳过: %s", path)
			return nil
		}

		files = append(files, internal.FileInfo{
			Path:    path,
			Dir:     filepath.Dir(path),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Debug().Msgf("扫描完成，共找到 %d 个文件", len(files))
	return files, nil
}
