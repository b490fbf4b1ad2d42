package internal

import "time"

// 决策类型
type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
	DecisionDeleted  Decision = "deleted"
)

// 操作员的回答
type Answer int

const (
	AnswerNo Answer = iota
	AnswerYes
	AnswerQuit
	AnswerAll
)

// 扫描得到的文件信息，列出后不再修改
type FileInfo struct {
	Path    string
	Dir     string
	Size    int64
	ModTime time.Time
}

// 会话统计
type SessionStats struct {
	Candidates int
	Cached     int
	Asked      int
	Accepted   int
	Rejected   int
	Deleted    int
	Failed     int
	FreedSpace int64
	StartTime  time.Time
	EndTime    time.Time
}

// 目录统计信息
type DirStats struct {
	Dir        string
	FileCount  int
	Pairs      int
	Candidates int
}
