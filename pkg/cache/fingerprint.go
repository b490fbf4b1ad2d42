package cache

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/moyu-x/similar-file/pkg/scorer"
)

// Fingerprint 计算候选对的稳定指纹
// 除路径外还混入大小和修改时间，文件变化后旧记录自动失效
func Fingerprint(cand *scorer.DupCand) string {
	h := xxhash.New()
	for _, info := range []*scorer.PrecomputedFileInfo{cand.Older, cand.Newer} {
		h.WriteString(info.Path)
		h.WriteString("\x00")
		h.WriteString(strconv.FormatInt(info.Size, 10))
		h.WriteString("\x00")
		h.WriteString(strconv.FormatInt(info.ModTime.UnixNano(), 10))
		h.WriteString("\x00")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
