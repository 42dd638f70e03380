package service

import (
	"context"
	"fmt"

	"classboard/internal/classboard/model"
	"classboard/internal/classboard/timer"
	"classboard/internal/classboard/widget"
	"classboard/internal/classboard/widgetconfig"
	"classboard/internal/classboard/workspace"
)

// PerformAction runs a widget body action and returns the widget's state
// afterwards. Rejected actions leave the widget unchanged.
func (s *Service) PerformAction(ctx context.Context, req model.WidgetActionReq) (WidgetState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.currentWidget(req.ID)
	if !ok {
		return WidgetState{}, fmt.Errorf("%w: %s", workspace.ErrWidgetNotFound, req.ID)
	}
	rt, live := s.runtimes[w.ID]
	if !live {
		return WidgetState{}, ErrWidgetInactive
	}

	update := s.updater(w.ID)
	var err error
	switch w.Type {
	case model.WidgetCountdown:
		err = s.countdownAction(w, rt, req, update)
	case model.WidgetLessonPhases:
		err = s.phasesAction(w, rt, req, update)
	case model.WidgetStopwatch:
		err = s.stopwatchAction(w, rt, req)
	case model.WidgetDice:
		err = s.diceAction(w, rt, req, update)
	case model.WidgetGroupMaker:
		err = s.groupMakerAction(w, rt, req, update)
	case model.WidgetPoll:
		err = s.pollAction(w, rt, req, update)
	case model.WidgetScoreboard:
		err = s.scoreboardAction(w, req, update)
	case model.WidgetTrafficLight:
		err = s.trafficLightAction(w, req, update)
	case model.WidgetText:
		err = s.textAction(w, req, update)
	case model.WidgetSoundMeter:
		err = s.soundMeterAction(req, update)
	default:
		err = ErrUnsupportedAction
	}
	if err != nil {
		return WidgetState{}, err
	}
	s.logger.DebugContext(ctx, "Widget action", "widget_id", w.ID, "action", req.Action)

	state, _ := s.widgetState(w.ID)
	return state, nil
}

// persist encodes a typed configuration and sends it through update.
func persist(update widgetconfig.Updater, cfg widgetconfig.Config) error {
	partial, err := widgetconfig.Encode(cfg)
	if err != nil {
		return err
	}
	return update(partial)
}

func (s *Service) countdownAction(w model.WidgetInstance, rt *runtime, req model.WidgetActionReq, update widgetconfig.Updater) error {
	c := rt.countdown
	switch req.Action {
	case model.ActionStart:
		if err := c.Start(); err != nil {
			return err
		}
		if !s.sched.Active(w.ID) {
			s.schedule(w.ID, s.tick)
		}
	case model.ActionPause:
		c.Pause()
		s.cancelTicks(w.ID)
	case model.ActionReset:
		c.Reset()
		s.cancelTicks(w.ID)
	case model.ActionAdjust:
		cfg, err := c.Adjust(req.Minutes, req.Seconds)
		if err != nil {
			return err
		}
		return update(map[string]any{"minutes": cfg.Minutes, "seconds": cfg.Seconds})
	case model.ActionAddTime:
		return c.AddTime(req.Minutes*60 + req.Seconds)
	default:
		return ErrUnsupportedAction
	}
	return nil
}

func (s *Service) phasesAction(w model.WidgetInstance, rt *runtime, req model.WidgetActionReq, update widgetconfig.Updater) error {
	p := rt.phases
	switch req.Action {
	case model.ActionStart:
		if err := p.Start(); err != nil {
			return err
		}
		if !s.sched.Active(w.ID) {
			s.schedule(w.ID, s.tick)
		}
		return nil
	case model.ActionPause:
		p.Pause()
		s.cancelTicks(w.ID)
		return nil
	case model.ActionReset:
		p.Reset()
		s.cancelTicks(w.ID)
		return update(map[string]any{"currentPhase": 0})
	case model.ActionJump:
		if err := p.JumpToPhase(req.Index); err != nil {
			return err
		}
		s.cancelTicks(w.ID)
		return update(map[string]any{"currentPhase": req.Index})
	}

	cfg, err := widgetconfig.DecodeAs[widgetconfig.LessonPhasesConfig](w.Config)
	if err != nil {
		return err
	}
	switch req.Action {
	case model.ActionAddPhase:
		if req.Phase == nil {
			return timer.ErrInvalidPhase
		}
		cfg, err = timer.AddPhase(cfg, phaseFrom(req.Phase))
	case model.ActionEditPhase:
		if req.Phase == nil {
			return timer.ErrInvalidPhase
		}
		cfg, err = timer.EditPhase(cfg, req.Index, phaseFrom(req.Phase))
	case model.ActionRemovePhase:
		cfg, err = timer.RemovePhase(cfg, req.Index)
	default:
		return ErrUnsupportedAction
	}
	if err != nil {
		return err
	}
	return update(map[string]any{"phases": cfg.Phases, "currentPhase": cfg.CurrentPhase})
}

func phaseFrom(in *model.PhaseInput) widgetconfig.Phase {
	return widgetconfig.Phase{Name: in.Name, DurationMinutes: in.DurationMinutes, Color: in.Color}
}

func (s *Service) stopwatchAction(w model.WidgetInstance, rt *runtime, req model.WidgetActionReq) error {
	sw := rt.stopwatch
	switch req.Action {
	case model.ActionStart:
		sw.Start()
		if !s.sched.Active(w.ID) {
			s.schedule(w.ID, s.swTick)
		}
	case model.ActionPause:
		sw.Pause()
		s.cancelTicks(w.ID)
	case model.ActionReset:
		sw.Reset()
		s.cancelTicks(w.ID)
	case model.ActionLap:
		cfg, err := widgetconfig.DecodeAs[widgetconfig.StopwatchConfig](w.Config)
		if err != nil {
			return err
		}
		if !cfg.Laps {
			return ErrUnsupportedAction
		}
		_, err = sw.Lap()
		return err
	default:
		return ErrUnsupportedAction
	}
	return nil
}

func (s *Service) diceAction(w model.WidgetInstance, rt *runtime, req model.WidgetActionReq, update widgetconfig.Updater) error {
	cfg, err := widgetconfig.DecodeAs[widgetconfig.DiceConfig](w.Config)
	if err != nil {
		return err
	}
	switch req.Action {
	case model.ActionRoll:
		rt.dice = widget.Roll(cfg, s.rng)
		return nil
	case model.ActionSetCount:
		return persist(update, widget.SetDiceCount(cfg, req.Count))
	}
	return ErrUnsupportedAction
}

func (s *Service) groupMakerAction(w model.WidgetInstance, rt *runtime, req model.WidgetActionReq, update widgetconfig.Updater) error {
	cfg, err := widgetconfig.DecodeAs[widgetconfig.GroupMakerConfig](w.Config)
	if err != nil {
		return err
	}
	switch req.Action {
	case model.ActionMakeGroups:
		rt.groups = widget.MakeGroups(cfg, s.rng)
		return nil
	case model.ActionAddStudent:
		cfg, err = widget.AddStudent(cfg, req.Name)
	case model.ActionRemoveStudent:
		cfg, err = widget.RemoveStudent(cfg, req.Index)
	case model.ActionImportStudents:
		cfg, err = widget.ImportStudents(cfg, req.Text)
	case model.ActionSetCount:
		cfg = widget.SetGroupCount(cfg, req.Count)
	default:
		return ErrUnsupportedAction
	}
	if err != nil {
		return err
	}
	return persist(update, cfg)
}

func (s *Service) pollAction(w model.WidgetInstance, rt *runtime, req model.WidgetActionReq, update widgetconfig.Updater) error {
	switch req.Action {
	case model.ActionVote:
		return rt.tally.Vote(req.Index)
	case model.ActionResetPoll:
		rt.tally.Reset()
		return nil
	case model.ActionEditPoll:
		cfg, err := widget.EditPoll(req.Question, req.Options)
		if err != nil {
			return err
		}
		if err := persist(update, cfg); err != nil {
			return err
		}
		rt.tally.Reset()
		return nil
	}
	return ErrUnsupportedAction
}

func (s *Service) scoreboardAction(w model.WidgetInstance, req model.WidgetActionReq, update widgetconfig.Updater) error {
	cfg, err := widgetconfig.DecodeAs[widgetconfig.ScoreboardConfig](w.Config)
	if err != nil {
		return err
	}
	switch req.Action {
	case model.ActionScore:
		cfg, err = widget.ChangeScore(cfg, req.Index, req.Delta)
	case model.ActionResetScores:
		cfg = widget.ResetScores(cfg)
	case model.ActionAddTeam, model.ActionEditTeam:
		if req.Team == nil {
			return widget.ErrInvalidOption
		}
		team := widgetconfig.Team{Name: req.Team.Name, Score: req.Team.Score, Color: req.Team.Color}
		if req.Action == model.ActionAddTeam {
			cfg, err = widget.AddTeam(cfg, team)
		} else {
			cfg, err = widget.EditTeam(cfg, req.Index, team)
		}
	case model.ActionRemoveTeam:
		cfg, err = widget.RemoveTeam(cfg, req.Index)
	default:
		return ErrUnsupportedAction
	}
	if err != nil {
		return err
	}
	return persist(update, cfg)
}

func (s *Service) trafficLightAction(w model.WidgetInstance, req model.WidgetActionReq, update widgetconfig.Updater) error {
	if req.Action != model.ActionLight {
		return ErrUnsupportedAction
	}
	cfg, err := widgetconfig.DecodeAs[widgetconfig.TrafficLightConfig](w.Config)
	if err != nil {
		return err
	}
	cfg, sound, err := widget.SetLight(cfg, req.State)
	if err != nil {
		return err
	}
	if err := update(map[string]any{"state": cfg.State}); err != nil {
		return err
	}
	s.play(sound)
	return nil
}

func (s *Service) textAction(w model.WidgetInstance, req model.WidgetActionReq, update widgetconfig.Updater) error {
	cfg, err := widgetconfig.DecodeAs[widgetconfig.TextConfig](w.Config)
	if err != nil {
		return err
	}
	switch req.Action {
	case model.ActionFontSize:
		cfg = widget.SetFontSize(cfg, req.FontSize)
	case model.ActionAlign:
		if cfg, err = widget.SetAlignment(cfg, req.Alignment); err != nil {
			return err
		}
	default:
		return ErrUnsupportedAction
	}
	return update(map[string]any{"fontSize": cfg.FontSize, "alignment": cfg.Alignment})
}

// soundMeterAction maps start and pause to enabling and disabling the
// microphone.
func (s *Service) soundMeterAction(req model.WidgetActionReq, update widgetconfig.Updater) error {
	switch req.Action {
	case model.ActionStart:
		return update(map[string]any{"enabled": true})
	case model.ActionPause:
		return update(map[string]any{"enabled": false})
	}
	return ErrUnsupportedAction
}
