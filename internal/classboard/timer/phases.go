package timer

import (
	"strings"

	"classboard/internal/classboard/widgetconfig"
)

// PhaseSequence walks through the lesson phases of its configuration.
// Elapsed time is measured from the start of the first phase.
type PhaseSequence struct {
	cfg     widgetconfig.LessonPhasesConfig
	elapsed int
	running bool
}

type PhaseSnapshot struct {
	Running         bool    `json:"running"`
	Elapsed         int     `json:"elapsedSeconds"`
	CurrentPhase    int     `json:"currentPhase"`
	PhaseName       string  `json:"phaseName"`
	PhaseRemaining  int     `json:"phaseRemainingSeconds"`
	PhaseProgress   float64 `json:"phaseProgress"`
	OverallProgress float64 `json:"overallProgress"`
	TotalMinutes    int     `json:"totalMinutes"`
	Display         string  `json:"display"`
}

// NewPhaseSequence positions elapsed time at the start of the configured
// current phase.
func NewPhaseSequence(cfg widgetconfig.LessonPhasesConfig) *PhaseSequence {
	return &PhaseSequence{cfg: cfg, elapsed: cfg.PhaseStart(cfg.CurrentPhase) * 60}
}

func (p *PhaseSequence) Running() bool { return p.running }

func (p *PhaseSequence) Elapsed() int { return p.elapsed }

func (p *PhaseSequence) CurrentPhase() int { return p.cfg.CurrentPhase }

func (p *PhaseSequence) Start() error {
	if len(p.cfg.Phases) == 0 {
		return ErrNotRunnable
	}
	p.running = true
	return nil
}

func (p *PhaseSequence) Pause() {
	p.running = false
}

// phaseEnd is the elapsed second at which the current phase is over.
func (p *PhaseSequence) phaseEnd() int {
	cur := p.cfg.CurrentPhase
	return (p.cfg.PhaseStart(cur) + p.cfg.Phases[cur].DurationMinutes) * 60
}

func (p *PhaseSequence) Tick() []Event {
	if !p.running {
		return nil
	}
	p.elapsed++

	cur := p.cfg.CurrentPhase
	if !p.cfg.AutoProgress || cur >= len(p.cfg.Phases) || p.elapsed < p.phaseEnd() {
		return nil
	}
	if cur < len(p.cfg.Phases)-1 {
		p.cfg.CurrentPhase = cur + 1
		return []Event{{Kind: EventPhaseAdvanced, Phase: cur + 1, Alert: true}}
	}
	p.running = false
	return []Event{{Kind: EventSequenceCompleted, Phase: cur, Alert: true}}
}

// JumpToPhase stops the sequence and moves to the start of phase index.
func (p *PhaseSequence) JumpToPhase(index int) error {
	if index < 0 || index >= len(p.cfg.Phases) {
		return ErrPhaseOutOfRange
	}
	p.running = false
	p.cfg.CurrentPhase = index
	p.elapsed = p.cfg.PhaseStart(index) * 60
	return nil
}

func (p *PhaseSequence) Reset() {
	p.running = false
	p.cfg.CurrentPhase = 0
	p.elapsed = 0
}

// Configure takes a new configuration. While stopped, elapsed time snaps
// to the start of the current phase.
func (p *PhaseSequence) Configure(cfg widgetconfig.LessonPhasesConfig) {
	p.cfg = cfg
	if !p.running {
		p.elapsed = cfg.PhaseStart(cfg.CurrentPhase) * 60
	}
}

func (p *PhaseSequence) Snapshot() PhaseSnapshot {
	snap := PhaseSnapshot{
		Running:      p.running,
		Elapsed:      p.elapsed,
		CurrentPhase: p.cfg.CurrentPhase,
		TotalMinutes: p.cfg.TotalMinutes(),
		Display:      FormatClock(p.elapsed),
	}
	if total := snap.TotalMinutes * 60; total > 0 {
		snap.OverallProgress = min(100, float64(p.elapsed)/float64(total)*100)
	}
	cur := p.cfg.CurrentPhase
	if cur < len(p.cfg.Phases) {
		phase := p.cfg.Phases[cur]
		start := p.cfg.PhaseStart(cur) * 60
		length := phase.DurationMinutes * 60
		snap.PhaseName = phase.Name
		snap.PhaseRemaining = max(0, start+length-p.elapsed)
		if length > 0 {
			snap.PhaseProgress = min(100, max(0, float64(p.elapsed-start)/float64(length)*100))
		}
	}
	return snap
}

// AddPhase appends a phase to cfg.
func AddPhase(cfg widgetconfig.LessonPhasesConfig, phase widgetconfig.Phase) (widgetconfig.LessonPhasesConfig, error) {
	phase.Name = strings.TrimSpace(phase.Name)
	if phase.Name == "" || phase.DurationMinutes < 1 {
		return cfg, ErrInvalidPhase
	}
	phases := make([]widgetconfig.Phase, 0, len(cfg.Phases)+1)
	cfg.Phases = append(append(phases, cfg.Phases...), phase)
	return cfg, nil
}

// EditPhase replaces phase index of cfg.
func EditPhase(cfg widgetconfig.LessonPhasesConfig, index int, phase widgetconfig.Phase) (widgetconfig.LessonPhasesConfig, error) {
	if index < 0 || index >= len(cfg.Phases) {
		return cfg, ErrPhaseOutOfRange
	}
	phase.Name = strings.TrimSpace(phase.Name)
	if phase.Name == "" || phase.DurationMinutes < 1 {
		return cfg, ErrInvalidPhase
	}
	phases := append([]widgetconfig.Phase(nil), cfg.Phases...)
	phases[index] = phase
	cfg.Phases = phases
	return cfg, nil
}

// RemovePhase deletes phase index of cfg. The current phase shifts down
// when a phase at or before it goes away, and always stays in range.
func RemovePhase(cfg widgetconfig.LessonPhasesConfig, index int) (widgetconfig.LessonPhasesConfig, error) {
	if index < 0 || index >= len(cfg.Phases) {
		return cfg, ErrPhaseOutOfRange
	}
	phases := make([]widgetconfig.Phase, 0, len(cfg.Phases)-1)
	phases = append(phases, cfg.Phases[:index]...)
	cfg.Phases = append(phases, cfg.Phases[index+1:]...)

	if cfg.CurrentPhase >= index && cfg.CurrentPhase > 0 {
		cfg.CurrentPhase--
	}
	if cfg.CurrentPhase >= len(cfg.Phases) {
		cfg.CurrentPhase = max(0, len(cfg.Phases)-1)
	}
	return cfg, nil
}
