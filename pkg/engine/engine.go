package engine

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/logger"
	"github.com/moyu-x/similar-file/pkg/normalizer"
	"github.com/moyu-x/similar-file/pkg/scanner"
	"github.com/moyu-x/similar-file/pkg/scorer"
)

// Engine 候选检测引擎
// 只比较同一目录内的文件，所有文件对评完分后统一排序，
// 排序结果与工作协程的调度顺序无关
type Engine struct {
	workers int
	walker  *scanner.Walker
}

func New(workers int) *Engine {
	if workers <= 0 {
		workers = min(runtime.NumCPU(), internal.DefaultMaxWorkers)
	}
	return &Engine{
		workers: workers,
		walker:  scanner.NewWalker(),
	}
}

// Result 检测结果，Candidates 为全局确定序
type Result struct {
	Candidates []*scorer.DupCand
	Dirs       []internal.DirStats
}

// FindCandidates 枚举 root 下的重复候选
// 对同一棵未变化的目录树，两次调用返回完全相同的候选顺序
func (e *Engine) FindCandidates(ctx context.Context, root string) (*Result, error) {
	files, err := e.walker.ListFiles(root)
	if err != nil {
		return nil, err
	}

	// 按目录分组并预计算比较键
	groups := make(map[string][]*scorer.PrecomputedFileInfo)
	for _, f := range files {
		groups[f.Dir] = append(groups[f.Dir], &scorer.PrecomputedFileInfo{
			FileInfo: f,
			Key:      normalizer.Normalize(filepath.Base(f.Path)),
		})
	}

	dirs := make([]string, 0, len(groups))
	for dir := range groups {
		sort.Slice(groups[dir], func(i, j int) bool {
			return groups[dir][i].Path < groups[dir][j].Path
		})
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	statsByDir := make(map[string]*internal.DirStats, len(dirs))
	totalPairs := 0
	for _, dir := range dirs {
		n := len(groups[dir])
		pairs := n * (n - 1) / 2
		totalPairs += pairs
		statsByDir[dir] = &internal.DirStats{
			Dir:       dir,
			FileCount: n,
			Pairs:     pairs,
		}
	}

	logger.Get().Info().Msgf("共 %d 个目录 %d 个文件，待比较 %d 组", len(dirs), len(files), totalPairs)

	pool := NewPool(e.workers)
	if err := pool.Start(); err != nil {
		return nil, err
	}

	// 分发所有文件对，取消信号在目录批次之间生效
	go func() {
		defer pool.Finish()
		for _, dir := range dirs {
			if ctx.Err() != nil {
				return
			}
			infos := groups[dir]
			for i := 0; i < len(infos); i++ {
				for j := i + 1; j < len(infos); j++ {
					pool.AddTask(PairTask{A: infos[i], B: infos[j]})
				}
			}
		}
	}()

	var candidates []*scorer.DupCand
	for cand := range pool.Results() {
		candidates = append(candidates, cand)
	}
	pool.Release()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 排序屏障：目录升序、相似度降序、新文件路径升序
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Older.Dir != b.Older.Dir {
			return a.Older.Dir < b.Older.Dir
		}
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		if a.Newer.Path != b.Newer.Path {
			return a.Newer.Path < b.Newer.Path
		}
		return a.Older.Path < b.Older.Path
	})

	for _, cand := range candidates {
		statsByDir[cand.Older.Dir].Candidates++
	}

	result := &Result{Candidates: candidates, Dirs: make([]internal.DirStats, 0, len(dirs))}
	for _, dir := range dirs {
		stats := statsByDir[dir]
		if stats.Candidates > 0 {
			logger.Get().Debug().Msgf("目录 %s: %d 个候选", dir, stats.Candidates)
		}
		result.Dirs = append(result.Dirs, *stats)
	}

	logger.Get().Info().Msgf("比较完成，共 %d 个重复候选", len(candidates))
	return result, nil
}
