package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool 處理請求之外的背景工作，例如快取失效
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop 關閉佇列並等待所有已提交工作完成
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
