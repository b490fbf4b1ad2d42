package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moyu-x/similar-file/app"
	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/logger"
)

var runCmd = &cobra.Command{
	Use:   "run <directory>",
	Short: "交互式查找并删除文件名近似重复的文件",
	Long: `遍历指定目录，比较同一目录内的文件名相似度，找出疑似重复的文件对。
先逐对确认是否为同一内容，再逐个确认删除，删除的文件移动到回收目录。
所有回答都会立即写入决策缓存，中断后重新运行不会重复提问。`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	trashDir, _ := cmd.Flags().GetString("trash-dir")
	dbPath, _ := cmd.Flags().GetString("db")
	workers, _ := cmd.Flags().GetInt("workers")
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")
	verbose, _ := cmd.Flags().GetBool("verbose")

	// 中断信号在两次提问之间生效，进行中的决策总会先落盘
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &app.RunOptions{
		Root:     args[0],
		TrashDir: trashDir,
		DBPath:   dbPath,
		Workers:  workers,
		LogLevel: logLevel,
		LogFile:  logFile,
		Verbose:  verbose,
	}

	stats, err := app.Run(ctx, opts)
	if stats != nil {
		printFinalStats(stats)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Get().Warn().Msg("⏹  已中断，已记录的决策不会丢失")
			os.Exit(130)
		}
		return err
	}

	return nil
}

func init() {
	runCmd.Flags().StringP("trash-dir", "t", "", "回收目录路径")
	runCmd.Flags().String("db", "", "决策缓存路径")
	runCmd.Flags().IntP("workers", "w", 0, "比较用的工作协程数")
	runCmd.Flags().String("log-level", "", "日志级别")
	runCmd.Flags().String("log-file", "", "日志文件路径")
	runCmd.Flags().BoolP("verbose", "v", false, "输出调试日志")

	rootCmd.AddCommand(runCmd)
}

func printFinalStats(stats *internal.SessionStats) {
	elapsed := stats.EndTime.Sub(stats.StartTime)

	logger.Get().Info().Msg("========== 处理完成 ==========")
	logger.Get().Info().Msgf("候选总数: %d", stats.Candidates)
	logger.Get().Info().Msgf("缓存命中: %d", stats.Cached)
	logger.Get().Info().Msgf("本次回答: %d (确认 %d / 跳过 %d)", stats.Asked, stats.Accepted, stats.Rejected)
	logger.Get().Info().Msgf("已删除: %d 个文件", stats.Deleted)
	if stats.Failed > 0 {
		logger.Get().Info().Msgf("删除失败: %d 个文件", stats.Failed)
	}
	logger.Get().Info().Msgf("释放空间: %s", internal.FormatBytes(stats.FreedSpace))
	logger.Get().Info().Msgf("总耗时: %v", elapsed)
	logger.Get().Info().Msg("============================")
}
