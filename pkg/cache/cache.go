package cache

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/logger"
)

// Store 决策缓存
// 单文件 SQLite 存储，每次写入立即提交，崩溃最多丢失进行中的一条决策
type Store struct {
	db *sql.DB
}

// Record 一条已持久化的决策
type Record struct {
	Fingerprint string
	Decision    internal.Decision
	UpdatedAt   time.Time
}

// Open 打开（必要时创建）决策缓存
func Open(dbPath string) (*Store, error) {
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=synchronous(FULL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("打开决策缓存失败: %w", err)
	}

	// 同一时刻只有一个交互会话，单连接即可
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS decisions (
		fingerprint TEXT PRIMARY KEY,
		decision TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("创建决策表失败: %w", err)
	}

	logger.Get().Debug().Msgf("决策缓存已打开: %s", dbPath)
	return &Store{db: db}, nil
}

// Close 关闭缓存连接
func (s *Store) Close() error {
	return s.db.Close()
}

// Lookup 查询指纹对应的决策，不存在时返回 nil
func (s *Store) Lookup(fingerprint string) (*Record, error) {
	row := s.db.QueryRow(
		"SELECT fingerprint, decision, updated_at FROM decisions WHERE fingerprint = ?",
		fingerprint,
	)

	var rec Record
	var updatedAt int64
	if err := row.Scan(&rec.Fingerprint, &rec.Decision, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("查询决策失败: %w", err)
	}
	rec.UpdatedAt = time.Unix(updatedAt, 0)
	return &rec, nil
}

// Record 写入或覆盖一条决策，立即提交
func (s *Store) Record(fingerprint string, decision internal.Decision) error {
	_, err := s.db.Exec(
		`INSERT INTO decisions (fingerprint, decision, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(fingerprint) DO UPDATE SET decision = excluded.decision, updated_at = excluded.updated_at`,
		fingerprint, string(decision), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("写入决策失败: %w", err)
	}
	logger.Get().Debug().Msgf("记录决策: %s -> %s", fingerprint, decision)
	return nil
}

// Count 统计已记录的决策数
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM decisions").Scan(&count); err != nil {
		return 0, fmt.Errorf("统计决策数失败: %w", err)
	}
	return count, nil
}
