package timer

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs recurring callbacks keyed by widget id. Cancel must be
// safe to call from inside a callback.
type Scheduler interface {
	Schedule(id string, every time.Duration, fn func())
	Cancel(id string)
	Active(id string) bool
	Len() int
	Stop()
}

// TickerScheduler backs every registration with a time.Ticker goroutine.
type TickerScheduler struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	jobs   map[string]context.CancelFunc
	wg     sync.WaitGroup
}

var _ Scheduler = (*TickerScheduler)(nil)

func NewTickerScheduler(ctx context.Context) *TickerScheduler {
	ctx, cancel := context.WithCancel(ctx)
	return &TickerScheduler{ctx: ctx, cancel: cancel, jobs: make(map[string]context.CancelFunc)}
}

// Schedule replaces any registration already held by id.
func (s *TickerScheduler) Schedule(id string, every time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return
	}
	if cancel, ok := s.jobs[id]; ok {
		cancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.jobs[id] = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				fn()
			}
		}
	}()
}

// Cancel does not wait for the goroutine, so a callback may cancel itself.
func (s *TickerScheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cancel, ok := s.jobs[id]; ok {
		cancel()
		delete(s.jobs, id)
	}
}

func (s *TickerScheduler) Active(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[id]
	return ok
}

func (s *TickerScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Stop cancels every registration and waits for the goroutines to exit.
// Do not call it from a callback.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	s.cancel()
	s.jobs = make(map[string]context.CancelFunc)
	s.mu.Unlock()
	s.wg.Wait()
}

// ManualScheduler fires callbacks only when told to. Tests use it to drive
// timers without sleeping.
type ManualScheduler struct {
	mu   sync.Mutex
	jobs map[string]func()
}

var _ Scheduler = (*ManualScheduler)(nil)

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{jobs: make(map[string]func())}
}

func (m *ManualScheduler) Schedule(id string, _ time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id] = fn
}

func (m *ManualScheduler) Cancel(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.jobs, id)
}

func (m *ManualScheduler) Active(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.jobs[id]
	return ok
}

func (m *ManualScheduler) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}

func (m *ManualScheduler) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = make(map[string]func())
}

// Fire runs the callback of id n times, stopping early if it gets
// cancelled. It returns how many callbacks ran.
func (m *ManualScheduler) Fire(id string, n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		m.mu.Lock()
		fn, ok := m.jobs[id]
		m.mu.Unlock()
		if !ok {
			break
		}
		fn()
		ran++
	}
	return ran
}
