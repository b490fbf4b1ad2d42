package session

import (
	"context"
	"os"
	"time"

	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/cache"
	"github.com/moyu-x/similar-file/pkg/logger"
	"github.com/moyu-x/similar-file/pkg/scorer"
)

// Prompter 提问界面
type Prompter interface {
	AskDuplicate(cand *scorer.DupCand, index, total int) (internal.Answer, error)
	AskDelete(cand *scorer.DupCand, index, total int) (internal.Answer, error)
}

// Remover 删除协作方，把文件移入回收站
type Remover interface {
	Remove(path string) error
}

// Session 交互会话
// 两个阶段严格顺序执行：质询阶段确认候选，删除阶段执行删除
// 每条决策写入缓存后立即提交，中断后重跑可从缓存续接
type Session struct {
	store    *cache.Store
	prompter Prompter
	remover  Remover
	stats    internal.SessionStats
}

func New(store *cache.Store, prompter Prompter, remover Remover) *Session {
	return &Session{
		store:    store,
		prompter: prompter,
		remover:  remover,
	}
}

// Run 在候选列表上执行完整会话
// ctx 取消只在两次提问之间生效，进行中的决策总会先落盘
func (s *Session) Run(ctx context.Context, candidates []*scorer.DupCand) (*internal.SessionStats, error) {
	s.stats = internal.SessionStats{
		Candidates: len(candidates),
		StartTime:  time.Now(),
	}

	queue, err := s.questionPhase(ctx, candidates)
	if err != nil {
		s.stats.EndTime = time.Now()
		return &s.stats, err
	}

	if len(queue) > 0 {
		logger.Get().Info().Msgf("进入删除确认阶段，共 %d 个待删除候选", len(queue))
	}

	err = s.deletePhase(ctx, queue)
	s.stats.EndTime = time.Now()
	return &s.stats, err
}

// questionPhase 质询阶段
// 已有决策的候选不再提问；回答 q 时剩余候选保持未决，留给下次运行
func (s *Session) questionPhase(ctx context.Context, candidates []*scorer.DupCand) ([]*scorer.DupCand, error) {
	type item struct {
		cand *scorer.DupCand
		fp   string
	}

	acceptedSet := make(map[string]bool)
	var pending []item

	for _, cand := range candidates {
		fp := cache.Fingerprint(cand)
		rec, err := s.store.Lookup(fp)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			s.stats.Cached++
			// accepted 但尚未 deleted 的候选仍要进入删除阶段
			if rec.Decision == internal.DecisionAccepted {
				acceptedSet[fp] = true
			}
			continue
		}
		pending = append(pending, item{cand: cand, fp: fp})
	}

	if s.stats.Cached > 0 {
		logger.Get().Info().Msgf("缓存命中 %d 条已有决策，不再重复提问", s.stats.Cached)
	}

	total := len(pending)
loop:
	for i, it := range pending {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ans, err := s.prompter.AskDuplicate(it.cand, i+1, total)
		if err != nil {
			return nil, err
		}

		switch ans {
		case internal.AnswerYes:
			if err := s.store.Record(it.fp, internal.DecisionAccepted); err != nil {
				return nil, err
			}
			acceptedSet[it.fp] = true
			s.stats.Asked++
			s.stats.Accepted++
		case internal.AnswerQuit:
			break loop
		default:
			if err := s.store.Record(it.fp, internal.DecisionRejected); err != nil {
				return nil, err
			}
			s.stats.Asked++
			s.stats.Rejected++
		}
	}

	// 按候选的全局确定序重建删除队列
	var queue []*scorer.DupCand
	for _, cand := range candidates {
		if acceptedSet[cache.Fingerprint(cand)] {
			queue = append(queue, cand)
		}
	}
	return queue, nil
}

// deletePhase 删除阶段
// 单条删除失败只记录不中断，缓存状态保持 accepted，下次运行可重试
func (s *Session) deletePhase(ctx context.Context, queue []*scorer.DupCand) error {
	deleteAll := false
	total := len(queue)

	for i, cand := range queue {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := os.Stat(cand.Newer.Path); err != nil {
			logger.Get().Warn().Msgf("文件已不存在，跳过: %s", cand.Newer.Path)
			continue
		}

		shouldDelete := deleteAll
		if !deleteAll {
			ans, err := s.prompter.AskDelete(cand, i+1, total)
			if err != nil {
				return err
			}
			switch ans {
			case internal.AnswerAll:
				deleteAll = true
				shouldDelete = true
			case internal.AnswerYes:
				shouldDelete = true
			}
		}

		if !shouldDelete {
			// 保持 accepted 状态，下次运行重新进入删除阶段
			continue
		}

		if err := s.remover.Remove(cand.Newer.Path); err != nil {
			logger.Get().Error().Err(err).Msgf("删除失败: %s", cand.Newer.Path)
			s.stats.Failed++
			continue
		}

		if err := s.store.Record(cache.Fingerprint(cand), internal.DecisionDeleted); err != nil {
			// 决策无法落盘时不能继续，否则已删除的文件会被再次提示
			return err
		}
		s.stats.Deleted++
		s.stats.FreedSpace += cand.Newer.Size
	}

	return nil
}
