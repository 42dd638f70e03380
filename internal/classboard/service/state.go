package service

import (
	"fmt"

	"classboard/internal/classboard/model"
	"classboard/internal/classboard/timer"
	"classboard/internal/classboard/widget"
	"classboard/internal/classboard/widgetconfig"
	"classboard/internal/classboard/workspace"
)

// WidgetState is a widget together with the live state of its body.
type WidgetState struct {
	Widget    model.WidgetInstance     `json:"widget"`
	Active    bool                     `json:"active"`
	Countdown *timer.CountdownSnapshot `json:"countdown,omitempty"`
	Phases    *timer.PhaseSnapshot     `json:"phases,omitempty"`
	Stopwatch *timer.StopwatchSnapshot `json:"stopwatch,omitempty"`
	Poll      *widget.PollResults      `json:"poll,omitempty"`
	Meter     *MeterState              `json:"meter,omitempty"`
	Dice      []int                    `json:"dice,omitempty"`
	Groups    [][]string               `json:"groups,omitempty"`
	Light     string                   `json:"lightDescription,omitempty"`
}

type MeterState struct {
	Listening bool    `json:"listening"`
	Volume    float64 `json:"volume"`
	Level     string  `json:"level"`
	Above     bool    `json:"aboveThreshold"`
	Error     string  `json:"error,omitempty"`
}

func (s *Service) WidgetState(id string) (WidgetState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.widgetState(id)
}

func (s *Service) widgetState(id string) (WidgetState, error) {
	w, ok := s.currentWidget(id)
	if !ok {
		return WidgetState{}, fmt.Errorf("%w: %s", workspace.ErrWidgetNotFound, id)
	}
	state := WidgetState{Widget: w}
	if w.Type == model.WidgetTrafficLight {
		if cfg, err := widgetconfig.DecodeAs[widgetconfig.TrafficLightConfig](w.Config); err == nil {
			state.Light = widget.LightDescription(cfg.State)
		}
	}

	rt, live := s.runtimes[id]
	if !live {
		return state, nil
	}
	state.Active = true

	switch {
	case rt.countdown != nil:
		snap := rt.countdown.Snapshot()
		state.Countdown = &snap
	case rt.phases != nil:
		snap := rt.phases.Snapshot()
		state.Phases = &snap
	case rt.stopwatch != nil:
		snap := rt.stopwatch.Snapshot()
		state.Stopwatch = &snap
	case rt.tally != nil:
		if cfg, err := widgetconfig.DecodeAs[widgetconfig.PollConfig](w.Config); err == nil {
			res := rt.tally.Results(cfg)
			state.Poll = &res
		}
	case rt.monitor != nil:
		state.Meter = &MeterState{
			Listening: rt.stopMic != nil,
			Volume:    rt.monitor.Volume(),
			Level:     widget.Level(rt.monitor.Volume(), rt.monitor.Threshold()),
			Above:     rt.monitor.Above(),
			Error:     rt.micErr,
		}
	}
	state.Dice = append([]int(nil), rt.dice...)
	for _, g := range rt.groups {
		state.Groups = append(state.Groups, append([]string(nil), g...))
	}
	return state, nil
}
