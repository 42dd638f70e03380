package timer

import "time"

// Lap is one captured split.
type Lap struct {
	Elapsed   time.Duration `json:"-"`
	ElapsedMs int64         `json:"elapsedMs"`
	Formatted string        `json:"formatted"`
}

// Stopwatch accumulates a fixed step per tick while running.
type Stopwatch struct {
	step    time.Duration
	elapsed time.Duration
	running bool
	laps    []Lap
}

type StopwatchSnapshot struct {
	Running bool   `json:"running"`
	Elapsed int64  `json:"elapsedMs"`
	Display string `json:"display"`
	Laps    []Lap  `json:"laps"`
}

func NewStopwatch(step time.Duration) *Stopwatch {
	return &Stopwatch{step: step}
}

func (s *Stopwatch) Running() bool { return s.running }

func (s *Stopwatch) Elapsed() time.Duration { return s.elapsed }

func (s *Stopwatch) Step() time.Duration { return s.step }

func (s *Stopwatch) Start() { s.running = true }

func (s *Stopwatch) Pause() { s.running = false }

func (s *Stopwatch) Reset() {
	s.running = false
	s.elapsed = 0
	s.laps = nil
}

func (s *Stopwatch) Tick() []Event {
	if s.running {
		s.elapsed += s.step
	}
	return nil
}

// Lap records the current elapsed time. Only allowed while running.
func (s *Stopwatch) Lap() (Lap, error) {
	if !s.running {
		return Lap{}, ErrNotRunning
	}
	lap := Lap{Elapsed: s.elapsed, ElapsedMs: s.elapsed.Milliseconds(), Formatted: FormatStopwatch(s.elapsed)}
	s.laps = append(s.laps, lap)
	return lap, nil
}

func (s *Stopwatch) Laps() []Lap {
	return append([]Lap(nil), s.laps...)
}

func (s *Stopwatch) Snapshot() StopwatchSnapshot {
	return StopwatchSnapshot{
		Running: s.running,
		Elapsed: s.elapsed.Milliseconds(),
		Display: FormatStopwatch(s.elapsed),
		Laps:    s.Laps(),
	}
}
