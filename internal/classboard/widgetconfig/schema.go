// Package widgetconfig is the contract through which a widget body changes
// its own configuration. Each widget type has a schema; partial updates are
// shallow-merged over the current configuration and the result must satisfy
// the schema before it is accepted.
package widgetconfig

import (
	"fmt"

	"classboard/internal/classboard/model"
)

// Config is implemented by every per-type configuration schema.
type Config interface {
	WidgetType() string
}

type CountdownConfig struct {
	Minutes   int  `json:"minutes" validate:"min=0"`
	Seconds   int  `json:"seconds" validate:"min=0,max=59"`
	Alert     bool `json:"alert"`
	AutoStart bool `json:"autoStart"`
}

func (CountdownConfig) WidgetType() string { return model.WidgetCountdown }

// TotalSeconds is the configured duration.
func (c CountdownConfig) TotalSeconds() int { return c.Minutes*60 + c.Seconds }

type TrafficLightConfig struct {
	State string `json:"state" validate:"required,oneof=red yellow green"`
	Sound bool   `json:"sound"`
}

func (TrafficLightConfig) WidgetType() string { return model.WidgetTrafficLight }

type SoundMeterConfig struct {
	Sensitivity int  `json:"sensitivity" validate:"min=1,max=10"`
	Threshold   int  `json:"threshold" validate:"min=1,max=10"`
	Enabled     bool `json:"enabled"`
}

func (SoundMeterConfig) WidgetType() string { return model.WidgetSoundMeter }

type Phase struct {
	Name            string `json:"name" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"min=1"`
	Color           string `json:"color"`
}

type LessonPhasesConfig struct {
	Phases       []Phase `json:"phases" validate:"dive"`
	CurrentPhase int     `json:"currentPhase" validate:"min=0"`
	AutoProgress bool    `json:"autoProgress"`
}

func (LessonPhasesConfig) WidgetType() string { return model.WidgetLessonPhases }

func (c LessonPhasesConfig) crossCheck() error {
	if len(c.Phases) == 0 && c.CurrentPhase != 0 {
		return fmt.Errorf("currentPhase %d with no phases", c.CurrentPhase)
	}
	if len(c.Phases) > 0 && c.CurrentPhase >= len(c.Phases) {
		return fmt.Errorf("currentPhase %d out of range [0,%d)", c.CurrentPhase, len(c.Phases))
	}
	return nil
}

// PhaseStart is the offset in minutes at which phase i begins.
func (c LessonPhasesConfig) PhaseStart(i int) int {
	total := 0
	for j := 0; j < i && j < len(c.Phases); j++ {
		total += c.Phases[j].DurationMinutes
	}
	return total
}

// TotalMinutes is the length of the whole lesson.
func (c LessonPhasesConfig) TotalMinutes() int {
	return c.PhaseStart(len(c.Phases))
}

type Team struct {
	Name  string `json:"name" validate:"required"`
	Score int    `json:"score" validate:"min=0"`
	Color string `json:"color"`
}

type ScoreboardConfig struct {
	Teams []Team `json:"teams" validate:"dive"`
}

func (ScoreboardConfig) WidgetType() string { return model.WidgetScoreboard }

type GroupMakerConfig struct {
	Students       []string `json:"students"`
	NumberOfGroups int      `json:"numberOfGroups" validate:"min=2,max=10"`
}

func (GroupMakerConfig) WidgetType() string { return model.WidgetGroupMaker }

type DiceConfig struct {
	NumberOfDice int `json:"numberOfDice" validate:"min=1,max=5"`
	Sides        int `json:"sides" validate:"oneof=4 6 8 10 12 20"`
}

func (DiceConfig) WidgetType() string { return model.WidgetDice }

type StopwatchConfig struct {
	Laps bool `json:"laps"`
}

func (StopwatchConfig) WidgetType() string { return model.WidgetStopwatch }

type TextConfig struct {
	Text      string `json:"text"`
	FontSize  int    `json:"fontSize" validate:"min=8,max=36"`
	Alignment string `json:"alignment" validate:"required,oneof=left center right"`
}

func (TextConfig) WidgetType() string { return model.WidgetText }

type PollConfig struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"min=2,dive,required"`
}

func (PollConfig) WidgetType() string { return model.WidgetPoll }

// newSchema returns an empty schema value for the widget type.
func newSchema(widgetType string) (Config, bool) {
	switch widgetType {
	case model.WidgetCountdown:
		return &CountdownConfig{}, true
	case model.WidgetTrafficLight:
		return &TrafficLightConfig{}, true
	case model.WidgetSoundMeter:
		return &SoundMeterConfig{}, true
	case model.WidgetLessonPhases:
		return &LessonPhasesConfig{}, true
	case model.WidgetScoreboard:
		return &ScoreboardConfig{}, true
	case model.WidgetGroupMaker:
		return &GroupMakerConfig{}, true
	case model.WidgetDice:
		return &DiceConfig{}, true
	case model.WidgetStopwatch:
		return &StopwatchConfig{}, true
	case model.WidgetText:
		return &TextConfig{}, true
	case model.WidgetPoll:
		return &PollConfig{}, true
	}
	return nil, false
}
