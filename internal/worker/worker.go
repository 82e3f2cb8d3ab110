package worker

import (
	"errors"
	"sync"
)

var (
	// ErrStopped 表示 pool 已停止，不再接受工作
	ErrStopped = errors.New("worker pool stopped")
	// ErrQueueFull 表示佇列已滿，TrySubmit 不等待
	ErrQueueFull = errors.New("worker queue full")
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a fixed-size worker pool.
type Pool interface {
	Submit(Task) error
	TrySubmit(Task) error
	Stop()
}

// queuePerWorker 每個 worker 預留的佇列深度
const queuePerWorker = 64

// NewPool creates a pool with n workers and a queue of n*64 tasks.
// n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	return NewPoolWithQueue(n, n*queuePerWorker)
}

// NewPoolWithQueue creates a pool with n workers and a queue holding depth tasks.
func NewPoolWithQueue(n, depth int) Pool {
	if n <= 0 {
		n = 1
	}
	if depth < 0 {
		depth = 0
	}
	p := &pool{jobs: make(chan Task, depth)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
}

func (p *pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job != nil {
			job()
		}
	}
}

// Submit 將工作排入佇列；佇列滿時會阻塞直到有 worker 空出
func (p *pool) Submit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	p.jobs <- t
	return nil
}

// TrySubmit 與 Submit 相同，但佇列滿時立即回傳 ErrQueueFull
func (p *pool) TrySubmit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	select {
	case p.jobs <- t:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop 關閉佇列並等待已排入的工作全部完成，可重複呼叫
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
