package duration

import (
	"sync"
	"time"
)

// Stopwatch measures elapsed time against a Clock.
type Stopwatch struct {
	mu sync.RWMutex

	clock Clock

	// start is the reading the current lap is measured from
	start time.Time
}

// NewStopwatch creates a stopwatch started at the current reading of clock.
// A nil clock uses SystemClock.
func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Stopwatch{
		clock: clock,
		start: clock.Now(),
	}
}

// StartedAt returns the reading the current lap started at.
func (s *Stopwatch) StartedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.start
}

// Elapsed returns the time since the current lap started.
func (s *Stopwatch) Elapsed() Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Between(s.start, s.clock.Now())
}

// Restart starts a new lap and returns the length of the previous one.
func (s *Stopwatch) Restart() Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	lap := Between(s.start, now)
	s.start = now
	return lap
}

// Measure runs f and returns how long it took.
func Measure(f func()) Duration {
	start := time.Now()
	f()
	return Since(start)
}

// MeasureValue runs f and returns how long it took along with its result.
func MeasureValue[T any](f func() T) (Duration, T) {
	start := time.Now()
	v := f()
	return Since(start), v
}
