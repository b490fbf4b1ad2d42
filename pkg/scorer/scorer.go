package scorer

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/normalizer"
)

// PrecomputedFileInfo 预计算后的文件信息
// 在评分开始前一次性生成，之后只读
type PrecomputedFileInfo struct {
	internal.FileInfo
	Key normalizer.Key
}

// DupCand 重复候选，Older/Newer 按修改时间排序
// Newer 是删除候选
type DupCand struct {
	Older      *PrecomputedFileInfo
	Newer      *PrecomputedFileInfo
	Similarity float64
	SizeRatio  float64
}

// Score 对一对文件评分，通过阈值和排除规则时返回候选
// 纯函数，不修改输入
func Score(a, b *PrecomputedFileInfo) (*DupCand, bool) {
	// 排除规则：集数不同
	if a.Key.HasEpisode && b.Key.HasEpisode && a.Key.Episode != b.Key.Episode {
		return nil, false
	}

	// 排除规则：前后篇标记不同
	if a.Key.Part != "" && b.Key.Part != "" && a.Key.Part != b.Key.Part {
		return nil, false
	}

	// 长度预过滤，归一化键长度差太大时不可能相似
	la, lb := len([]rune(a.Key.Canonical)), len([]rune(b.Key.Canonical))
	if la > 0 && lb > 0 {
		if ratio := float64(min(la, lb)) / float64(max(la, lb)); ratio < internal.LengthRatioMin {
			return nil, false
		}
	}

	m := difflib.NewMatcher(splitRunes(a.Key.Canonical), splitRunes(b.Key.Canonical))
	if m.QuickRatio() < internal.MatchThreshold {
		return nil, false
	}
	similarity := m.Ratio()
	if similarity < internal.MatchThreshold {
		return nil, false
	}

	sizeRatio := 0.0
	if maxSize := max(a.Size, b.Size); maxSize > 0 {
		sizeRatio = float64(abs(a.Size-b.Size)) / float64(maxSize)
	}
	if sizeRatio >= internal.SizeDiffThreshold {
		return nil, false
	}

	older, newer := a, b
	if a.ModTime.After(b.ModTime) || (a.ModTime.Equal(b.ModTime) && a.Path > b.Path) {
		older, newer = b, a
	}

	return &DupCand{
		Older:      older,
		Newer:      newer,
		Similarity: similarity,
		SizeRatio:  sizeRatio,
	}, true
}

// Similarity 计算两个归一化键的相似度（2M/T）
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
