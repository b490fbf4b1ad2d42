package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/moyu-x/similar-file/config"
	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/cache"
	"github.com/moyu-x/similar-file/pkg/console"
	"github.com/moyu-x/similar-file/pkg/engine"
	"github.com/moyu-x/similar-file/pkg/logger"
	"github.com/moyu-x/similar-file/pkg/session"
	"github.com/moyu-x/similar-file/pkg/trash"
)

type RunOptions struct {
	Root     string
	TrashDir string
	DBPath   string
	Workers  int
	LogLevel string
	LogFile  string
	Verbose  bool
}

// Run 执行完整的交互式去重流程
func Run(ctx context.Context, opts *RunOptions) (*internal.SessionStats, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyDefaults(opts, cfg)

	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, err
	}

	if err := validateRoot(opts.Root); err != nil {
		return nil, err
	}

	logger.Get().Info().Msgf("目标目录: %s", opts.Root)
	logger.Get().Info().Msgf("回收站: %s", opts.TrashDir)
	logger.Get().Info().Msgf("决策缓存: %s", opts.DBPath)

	eng := engine.New(opts.Workers)
	result, err := eng.FindCandidates(ctx, opts.Root)
	if err != nil {
		return nil, err
	}

	if len(result.Candidates) == 0 {
		logger.Get().Info().Msg("✨ 没有找到重复候选")
		return &internal.SessionStats{}, nil
	}

	store, err := cache.Open(opts.DBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	prompter := console.New(os.Stdin, os.Stdout)
	bin := trash.New(afero.NewOsFs(), opts.TrashDir)

	sess := session.New(store, prompter, bin)
	return sess.Run(ctx, result.Candidates)
}

// applyDefaults 命令行参数优先，未指定时回退到配置文件
func applyDefaults(opts *RunOptions, cfg *config.Config) {
	if opts.TrashDir == "" {
		opts.TrashDir = cfg.Trash.Dir
	}
	if opts.DBPath == "" {
		opts.DBPath = cfg.Database.Path
	}
	if opts.Workers <= 0 {
		opts.Workers = cfg.Performance.Workers
	}
	if opts.LogLevel == "" {
		opts.LogLevel = cfg.Logging.Level
	}
	if opts.LogFile == "" {
		opts.LogFile = cfg.Logging.File
	}
}

func validateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("目标目录不可用: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("目标路径不是目录: %s", root)
	}
	return nil
}
