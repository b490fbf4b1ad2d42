package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moyu-x/similar-file/app"
)

var statsCmd = &cobra.Command{
	Use:   "stats <directory>",
	Short: "按目录统计重复候选数量（调试用）",
	Long: `只执行候选检测，不提问也不写决策缓存。
按目录输出文件数、比较组数和候选数，用于调试阈值和排除规则。`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers")
	logLevel, _ := cmd.Flags().GetString("log-level")

	return app.RunStats(cmd.Context(), &app.StatsOptions{
		Root:     args[0],
		Workers:  workers,
		LogLevel: logLevel,
	})
}

func init() {
	statsCmd.Flags().IntP("workers", "w", 0, "比较用的工作协程数")
	statsCmd.Flags().String("log-level", "", "日志级别")

	rootCmd.AddCommand(statsCmd)
}
