package service

import (
	"context"
	"time"

	"classboard/internal/classboard/metrics"
	"classboard/internal/classboard/model"
	"classboard/internal/classboard/timer"
	"classboard/internal/classboard/widget"
	"classboard/internal/classboard/widgetconfig"
)

// runtime is the live, unpersisted side of a mounted widget. Only widgets
// of the current workspace that are not minimized have one.
type runtime struct {
	widgetType string

	countdown *timer.Countdown
	phases    *timer.PhaseSequence
	stopwatch *timer.Stopwatch

	tally       *widget.Tally
	dice        []int
	groups      [][]string
	monitor     *widget.Monitor
	sensitivity int
	stopMic     context.CancelFunc
	micErr      string
}

func (s *Service) mountCurrent() {
	for _, w := range s.workspaces.Current().Widgets {
		if !w.IsMinimized {
			s.mount(w)
		}
	}
}

func (s *Service) unmountAll() {
	for id := range s.runtimes {
		s.unmount(id)
	}
}

// mount builds the runtime of w from its configuration and applies
// autoStart. A configuration that no longer decodes leaves the widget
// without a runtime.
func (s *Service) mount(w model.WidgetInstance) {
	cfg, err := widgetconfig.Decode(w.Type, w.Config)
	if err != nil {
		s.logger.Warn("Cannot mount widget", "widget_id", w.ID, "type", w.Type, "error", err)
		return
	}
	rt := &runtime{widgetType: w.Type}
	s.runtimes[w.ID] = rt

	switch c := cfg.(type) {
	case *widgetconfig.CountdownConfig:
		rt.countdown = timer.NewCountdown(*c)
		if rt.countdown.Mount() {
			s.schedule(w.ID, s.tick)
		}
	case *widgetconfig.LessonPhasesConfig:
		rt.phases = timer.NewPhaseSequence(*c)
	case *widgetconfig.StopwatchConfig:
		rt.stopwatch = timer.NewStopwatch(s.swTick)
	case *widgetconfig.PollConfig:
		rt.tally = widget.NewTally(len(c.Options))
	case *widgetconfig.DiceConfig:
		rt.dice = resizeDice(nil, c.NumberOfDice)
	case *widgetconfig.SoundMeterConfig:
		rt.monitor = widget.NewMonitor(c.Threshold)
		rt.sensitivity = c.Sensitivity
		if c.Enabled {
			s.startMic(w.ID, rt)
		}
	}
}

// unmount cancels every registration held by widget id.
func (s *Service) unmount(id string) {
	rt, ok := s.runtimes[id]
	if !ok {
		return
	}
	s.cancelTicks(id)
	s.stopMic(rt)
	delete(s.runtimes, id)
}

// reconfigure hands a freshly merged configuration to the live runtime.
func (s *Service) reconfigure(id string, rt *runtime, cfg map[string]any) {
	decoded, err := widgetconfig.Decode(rt.widgetType, cfg)
	if err != nil {
		return
	}
	switch c := decoded.(type) {
	case *widgetconfig.CountdownConfig:
		rt.countdown.Configure(*c)
	case *widgetconfig.LessonPhasesConfig:
		rt.phases.Configure(*c)
	case *widgetconfig.PollConfig:
		rt.tally.Sync(len(c.Options))
	case *widgetconfig.DiceConfig:
		rt.dice = resizeDice(rt.dice, c.NumberOfDice)
	case *widgetconfig.SoundMeterConfig:
		rt.monitor.SetThreshold(c.Threshold)
		restart := rt.sensitivity != c.Sensitivity
		rt.sensitivity = c.Sensitivity
		switch {
		case !c.Enabled:
			s.stopMic(rt)
		case rt.stopMic == nil || restart:
			s.stopMic(rt)
			s.startMic(id, rt)
		}
	}
}

// resizeDice keeps existing faces and shows 1 on new dice.
func resizeDice(faces []int, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1
		if i < len(faces) {
			out[i] = faces[i]
		}
	}
	return out
}

// schedule registers ticks for id under a fresh token. Callbacks carrying
// an older token are dropped in onTick.
func (s *Service) schedule(id string, every time.Duration) {
	s.tickSeq++
	token := s.tickSeq
	s.tickTokens[id] = token
	s.sched.Schedule(id, every, func() { s.onTick(id, token) })
	metrics.SetActiveTimers(s.sched.Len())
}

func (s *Service) cancelTicks(id string) {
	delete(s.tickTokens, id)
	if s.sched.Active(id) {
		s.sched.Cancel(id)
		metrics.SetActiveTimers(s.sched.Len())
	}
}

// onTick is the scheduler callback. It enters through the same lock as
// every other change, so ticks and user actions are totally ordered. A
// callback that was already waiting on the lock when its registration got
// cancelled finds its token stale and does nothing.
func (s *Service) onTick(id string, token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tickTokens[id] != token {
		return
	}
	rt, ok := s.runtimes[id]
	if !ok {
		s.cancelTicks(id)
		return
	}

	var events []timer.Event
	switch {
	case rt.countdown != nil:
		events = rt.countdown.Tick()
	case rt.phases != nil:
		events = rt.phases.Tick()
	case rt.stopwatch != nil:
		events = rt.stopwatch.Tick()
	}
	for _, ev := range events {
		s.handleEvent(id, ev)
	}
}

func (s *Service) handleEvent(id string, ev timer.Event) {
	metrics.RecordTimerEvent(string(ev.Kind))

	switch ev.Kind {
	case timer.EventExpired:
		s.cancelTicks(id)
		if ev.Alert {
			s.play(model.SoundTimerEnd)
		}
	case timer.EventPhaseAdvanced:
		if err := s.updater(id)(map[string]any{"currentPhase": ev.Phase}); err != nil {
			s.logger.Warn("Failed to record phase change", "widget_id", id, "error", err)
		}
		if ev.Alert {
			s.play(model.SoundAlert)
		}
	case timer.EventSequenceCompleted:
		s.cancelTicks(id)
		if ev.Alert {
			s.play(model.SoundAlert)
		}
	}
}

func (s *Service) startMic(id string, rt *runtime) {
	ctx, cancel := context.WithCancel(s.ctx)
	volumes, err := s.mic.Listen(ctx, rt.sensitivity)
	if err != nil {
		cancel()
		rt.micErr = err.Error()
		s.logger.Warn("Microphone unavailable", "widget_id", id, "error", err)
		return
	}
	rt.stopMic = cancel
	rt.micErr = ""

	go func() {
		for v := range volumes {
			s.observeVolume(id, rt, v)
		}
	}()
}

func (s *Service) stopMic(rt *runtime) {
	if rt.stopMic != nil {
		rt.stopMic()
		rt.stopMic = nil
	}
}

func (s *Service) observeVolume(id string, rt *runtime, volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runtimes[id] != rt || rt.stopMic == nil {
		return
	}
	if rt.monitor.Observe(volume) {
		s.play(model.SoundAlert)
	}
}
