package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/moyu-x/similar-file/config"
	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/engine"
	"github.com/moyu-x/similar-file/pkg/logger"
)

type StatsOptions struct {
	Root     string
	Workers  int
	LogLevel string
}

// RunStats 统计模式：只跑候选检测，按目录输出候选数量
// 不提问也不写决策缓存，用于调试阈值和排除规则
func RunStats(ctx context.Context, opts *StatsOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.Workers <= 0 {
		opts.Workers = cfg.Performance.Workers
	}
	logLevel := opts.LogLevel
	if logLevel == "" {
		logLevel = "warn"
	}
	if err := logger.Init(logLevel, ""); err != nil {
		return err
	}

	if err := validateRoot(opts.Root); err != nil {
		return err
	}

	eng := engine.New(opts.Workers)
	result, err := eng.FindCandidates(ctx, opts.Root)
	if err != nil {
		return err
	}

	var rows []internal.DirStats
	for _, stats := range result.Dirs {
		if stats.Candidates > 0 {
			rows = append(rows, stats)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Candidates > rows[j].Candidates
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers("目录", "文件数", "比较组", "候选数")

	total := 0
	for _, stats := range rows {
		rel, err := filepath.Rel(opts.Root, stats.Dir)
		if err != nil {
			rel = stats.Dir
		}
		t.Row(rel,
			strconv.Itoa(stats.FileCount),
			strconv.Itoa(stats.Pairs),
			strconv.Itoa(stats.Candidates))
		total += stats.Candidates
	}
	t.Row("合计", "", "", strconv.Itoa(total))

	fmt.Println(t)
	return nil
}
