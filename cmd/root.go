package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "similar-file",
	Short: "一个用于清理文件名近似重复文件的工具",
	Long: `Similar File 是一个命令行工具，用于找出同一目录内文件名高度相似的文件，
并引导操作员确认和删除多余的副本。

主要功能:
- 归一化文件名并计算相似度，集数或前后篇不同的文件自动排除
- 并行比较目录树中的所有文件对，输出确定性的候选顺序
- 每条确认/跳过/删除决策立即写入 SQLite 缓存，中断后可续接
- 删除只是移动到回收目录，不做物理删除`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
