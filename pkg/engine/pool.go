package engine

import (
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/logger"
	"github.com/moyu-x/similar-file/pkg/scorer"
)

// PairTask 待评分的文件对
type PairTask struct {
	A *scorer.PrecomputedFileInfo
	B *scorer.PrecomputedFileInfo
}

// Pool 文件对评分池
// 工作协程只读取不可变的 PrecomputedFileInfo，没有共享可变状态
type Pool struct {
	workers int
	tasks   chan PairTask
	results chan *scorer.DupCand
	wg      sync.WaitGroup
	pool    *ants.Pool
}

func NewPool(workers int) *Pool {
	logger.Get().Debug().Msgf("创建评分池，工作协程数: %d", workers)
	return &Pool{
		workers: workers,
		tasks:   make(chan PairTask, internal.DefaultBufferSize),
		results: make(chan *scorer.DupCand, internal.DefaultBufferSize),
	}
}

func (p *Pool) Start() error {
	var err error
	p.pool, err = ants.NewPool(p.workers)
	if err != nil {
		return err
	}

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		if err := p.pool.Submit(p.worker); err != nil {
			p.wg.Done()
			return err
		}
	}

	// 所有工作协程退出后关闭结果通道
	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	return nil
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		if cand, ok := scorer.Score(task.A, task.B); ok {
			p.results <- cand
		}
	}
}

func (p *Pool) AddTask(task PairTask) {
	p.tasks <- task
}

// Finish 关闭任务通道，之后不能再调用 AddTask
func (p *Pool) Finish() {
	close(p.tasks)
}

func (p *Pool) Results() <-chan *scorer.DupCand {
	return p.results
}

func (p *Pool) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
