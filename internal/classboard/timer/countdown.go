package timer

import "classboard/internal/classboard/widgetconfig"

type CountdownState string

const (
	CountdownIdle    CountdownState = "idle"
	CountdownRunning CountdownState = "running"
	CountdownExpired CountdownState = "expired"
)

// Countdown counts configured minutes and seconds down to zero.
// Once running, the remaining time is decoupled from the configuration.
type Countdown struct {
	cfg       widgetconfig.CountdownConfig
	remaining int
	state     CountdownState
}

type CountdownSnapshot struct {
	State     CountdownState `json:"state"`
	Remaining int            `json:"remainingSeconds"`
	Total     int            `json:"totalSeconds"`
	Progress  float64        `json:"progress"`
	Display   string         `json:"display"`
}

func NewCountdown(cfg widgetconfig.CountdownConfig) *Countdown {
	return &Countdown{cfg: cfg, remaining: cfg.TotalSeconds(), state: CountdownIdle}
}

// Mount applies autoStart. It returns true if the countdown started.
func (c *Countdown) Mount() bool {
	if !c.cfg.AutoStart || c.state == CountdownRunning || c.remaining <= 0 {
		return false
	}
	c.state = CountdownRunning
	return true
}

func (c *Countdown) Running() bool { return c.state == CountdownRunning }

func (c *Countdown) Remaining() int { return c.remaining }

func (c *Countdown) State() CountdownState { return c.state }

func (c *Countdown) Start() error {
	if c.state == CountdownRunning {
		return nil
	}
	if c.remaining <= 0 {
		return ErrNotRunnable
	}
	c.state = CountdownRunning
	return nil
}

func (c *Countdown) Pause() {
	if c.state == CountdownRunning {
		c.state = CountdownIdle
	}
}

// Reset discards progress and reloads the configured duration.
func (c *Countdown) Reset() {
	c.state = CountdownIdle
	c.remaining = c.cfg.TotalSeconds()
}

func (c *Countdown) Tick() []Event {
	if c.state != CountdownRunning {
		return nil
	}
	c.remaining--
	if c.remaining > 0 {
		return nil
	}
	c.remaining = 0
	c.state = CountdownExpired
	return []Event{{Kind: EventExpired, Alert: c.cfg.Alert}}
}

// AddTime shifts the remaining time of a running countdown without
// touching the configuration. Taking away more than is left is refused.
func (c *Countdown) AddTime(deltaSeconds int) error {
	if c.state != CountdownRunning {
		return ErrNotRunning
	}
	if deltaSeconds < 0 && c.remaining < -deltaSeconds {
		return ErrNotEnoughTime
	}
	c.remaining = max(0, c.remaining+deltaSeconds)
	return nil
}

// Adjust shifts the configured duration. Seconds wrap at 60 and neither
// field goes below zero. Returns the new configuration to persist.
func (c *Countdown) Adjust(deltaMinutes, deltaSeconds int) (widgetconfig.CountdownConfig, error) {
	if c.state == CountdownRunning {
		return c.cfg, ErrRunning
	}
	cfg := c.cfg
	cfg.Minutes = max(0, cfg.Minutes+deltaMinutes)
	cfg.Seconds = max(0, cfg.Seconds+deltaSeconds) % 60
	c.cfg = cfg
	c.remaining = cfg.TotalSeconds()
	c.state = CountdownIdle
	return cfg, nil
}

// Configure takes a new configuration. A changed duration only shows up
// in the remaining time while the countdown is not running.
func (c *Countdown) Configure(cfg widgetconfig.CountdownConfig) {
	durationChanged := cfg.TotalSeconds() != c.cfg.TotalSeconds()
	c.cfg = cfg
	if durationChanged && c.state != CountdownRunning {
		c.remaining = cfg.TotalSeconds()
		c.state = CountdownIdle
	}
}

func (c *Countdown) Snapshot() CountdownSnapshot {
	total := c.cfg.TotalSeconds()
	progress := 0.0
	if total > 0 {
		progress = float64(c.remaining) / float64(total) * 100
	}
	return CountdownSnapshot{
		State:     c.state,
		Remaining: c.remaining,
		Total:     total,
		Progress:  progress,
		Display:   FormatClock(c.remaining),
	}
}
