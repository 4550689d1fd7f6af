// Package expiry runs cancellable one-shot deadlines keyed by entity id.
package expiry

import (
	"sync"
	"time"
)

type task struct {
	at    time.Time
	gen   uint64
	timer *time.Timer
}

// Scheduler holds at most one pending task per key. Scheduling a key
// again replaces its task; a replaced or cancelled task never runs, even
// if its timer had already fired and was waiting on the lock.
type Scheduler struct {
	mu    sync.Mutex
	now   func() time.Time
	gen   uint64
	tasks map[string]*task
}

// New returns a Scheduler that measures delays against now. A nil now
// uses time.Now.
func New(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now, tasks: make(map[string]*task)}
}

// Schedule arranges for fn to run at at. A deadline in the past runs fn
// promptly on its own goroutine. Scheduling the same key and deadline
// again is a no-op.
func (s *Scheduler) Schedule(key string, at time.Time, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tasks[key]; ok {
		if t.at.Equal(at) {
			return
		}
		t.timer.Stop()
	}

	s.gen++
	gen := s.gen
	delay := at.Sub(s.now())
	if delay < 0 {
		delay = 0
	}
	t := &task{at: at, gen: gen}
	t.timer = time.AfterFunc(delay, func() { s.fire(key, gen, fn) })
	s.tasks[key] = t
}

func (s *Scheduler) fire(key string, gen uint64, fn func()) {
	s.mu.Lock()
	t, ok := s.tasks[key]
	if !ok || t.gen != gen {
		s.mu.Unlock()
		return
	}
	delete(s.tasks, key)
	s.mu.Unlock()

	fn()
}

// Cancel drops the task for key and reports whether one was pending.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[key]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(s.tasks, key)
	return true
}

// Scheduled returns the deadline pending for key.
func (s *Scheduler) Scheduled(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[key]
	if !ok {
		return time.Time{}, false
	}
	return t.at, true
}

// Keys lists every key with a pending task.
func (s *Scheduler) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.tasks))
	for k := range s.tasks {
		keys = append(keys, k)
	}
	return keys
}

func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stop cancels every pending task.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, t := range s.tasks {
		t.timer.Stop()
		delete(s.tasks, k)
	}
}
