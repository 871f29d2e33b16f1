package scheduler

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is the function signature for scheduled jobs.
type Task func()

// Scheduler runs named periodic and one-shot jobs. Jobs recover from
// panics so a failing task never kills its ticker goroutine.
type Scheduler struct {
	mu      sync.Mutex
	periods map[string]*periodicJob
	oneOffs map[string]*time.Timer
	logger  *zap.Logger
	stopCh  chan struct{}
}

type periodicJob struct {
	ticker *time.Ticker
	stopCh chan struct{}
}

// New creates an empty Scheduler.
func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		periods: make(map[string]*periodicJob),
		oneOffs: make(map[string]*time.Timer),
		stopCh:  make(chan struct{}),
		logger:  logger,
	}
}

// Every registers a job to run on a fixed interval. Registering a name
// twice replaces the previous job. A non-positive interval skips the
// job entirely: time.NewTicker would panic on it, and a zero in the
// config means the operator turned the job off.
func (s *Scheduler) Every(name string, interval time.Duration, fn Task) {
	if interval <= 0 {
		s.logger.Warn("scheduler job skipped, non-positive interval",
			zap.String("name", name), zap.Duration("interval", interval))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.periods[name]; ok {
		close(old.stopCh)
		delete(s.periods, name)
	}

	job := &periodicJob{
		ticker: time.NewTicker(interval),
		stopCh: make(chan struct{}),
	}
	s.periods[name] = job

	go func() {
		for {
			select {
			case <-job.ticker.C:
				s.run(name, fn)
			case <-job.stopCh:
				job.ticker.Stop()
				return
			case <-s.stopCh:
				job.ticker.Stop()
				return
			}
		}
	}()
	s.logger.Info("scheduler job registered",
		zap.String("name", name), zap.Duration("interval", interval))
}

// After runs fn once after the given delay. A pending job with the same
// name is cancelled first.
func (s *Scheduler) After(name string, delay time.Duration, fn Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.oneOffs[name]; ok {
		old.Stop()
	}
	s.oneOffs[name] = time.AfterFunc(delay, func() {
		defer func() {
			s.mu.Lock()
			delete(s.oneOffs, name)
			s.mu.Unlock()
		}()
		s.run(name, fn)
	})
}

func (s *Scheduler) run(name string, fn Task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduler job panicked",
				zap.String("job", name), zap.Any("recover", r))
		}
	}()
	fn()
}

// Cancel stops and removes a job by name.
func (s *Scheduler) Cancel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.periods[name]; ok {
		close(job.stopCh)
		delete(s.periods, name)
	}
	if t, ok := s.oneOffs[name]; ok {
		t.Stop()
		delete(s.oneOffs, name)
	}
}

// Stop shuts down every job.
func (s *Scheduler) Stop() {
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
}

// Names returns the registered periodic job names, sorted.
func (s *Scheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.periods))
	for name := range s.periods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
