package adapter

import (
	"context"
	"errors"
	"log/slog"

	"classboard/internal/classboard/model"
	"classboard/internal/classboard/util"
)

var ErrUnknownSound = errors.New("unknown sound")

// AudioPlayer plays alert sounds. Playback is fire-and-forget: callers log
// failures and carry on.
type AudioPlayer interface {
	Play(ctx context.Context, sound string) error
}

var knownSounds = map[string]bool{
	model.SoundTimerEnd:    true,
	model.SoundClick:       true,
	model.SoundAlert:       true,
	model.SoundSuccess:     true,
	model.SoundRedLight:    true,
	model.SoundYellowLight: true,
	model.SoundGreenLight:  true,
}

// LogPlayer records sounds in the log instead of playing them. The server
// has no speakers; clients poll widget state and play locally.
type LogPlayer struct {
	logger *slog.Logger
}

func NewLogPlayer() *LogPlayer {
	return &LogPlayer{logger: util.GetLogger()}
}

func (p *LogPlayer) Play(ctx context.Context, sound string) error {
	if !knownSounds[sound] {
		return ErrUnknownSound
	}
	p.logger.InfoContext(ctx, "Playing sound", "sound", sound)
	return nil
}
