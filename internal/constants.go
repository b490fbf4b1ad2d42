package internal

const (
	// 文件名相似度阈值
	MatchThreshold = 0.85

	// 大小差比例阈值，达到该值的文件对不视为候选
	SizeDiffThreshold = 0.40

	// 归一化键长度比下限，低于该值直接跳过比较
	LengthRatioMin = 0.5

	// 大小差警告阈值 (200MB)
	SizeWarnBytes = 200 * 1024 * 1024

	// 决策缓存默认路径（相对当前工作目录）
	DefaultDatabasePath = "cache.db"

	// 回收站默认路径
	DefaultTrashDir = "/storage/.recycle"

	// 工作协程数上限
	DefaultMaxWorkers = 8

	// 缓冲区大小
	DefaultBufferSize = 1000
)
