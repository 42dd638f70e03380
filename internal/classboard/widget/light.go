package widget

import (
	"classboard/internal/classboard/model"
	"classboard/internal/classboard/widgetconfig"
)

const (
	LightRed    = "red"
	LightYellow = "yellow"
	LightGreen  = "green"
)

var lightSounds = map[string]string{
	LightRed:    model.SoundRedLight,
	LightYellow: model.SoundYellowLight,
	LightGreen:  model.SoundGreenLight,
}

var lightDescriptions = map[string]string{
	LightRed:    "Absolute silence (individual work)",
	LightYellow: "Whispered consultation or quiet collaboration",
	LightGreen:  "Free discussion and collaboration",
}

// SetLight switches the light. The returned sound is empty unless the
// light has sound enabled.
func SetLight(cfg widgetconfig.TrafficLightConfig, state string) (widgetconfig.TrafficLightConfig, string, error) {
	sound, ok := lightSounds[state]
	if !ok {
		return cfg, "", ErrInvalidOption
	}
	cfg.State = state
	if !cfg.Sound {
		sound = ""
	}
	return cfg, sound, nil
}

func LightDescription(state string) string {
	return lightDescriptions[state]
}
