package widget

import "classboard/internal/classboard/widgetconfig"

const (
	MinFontSize = 8
	MaxFontSize = 36
)

func SetFontSize(cfg widgetconfig.TextConfig, size int) widgetconfig.TextConfig {
	cfg.FontSize = clamp(size, MinFontSize, MaxFontSize)
	return cfg
}

func SetAlignment(cfg widgetconfig.TextConfig, alignment string) (widgetconfig.TextConfig, error) {
	switch alignment {
	case "left", "center", "right":
		cfg.Alignment = alignment
		return cfg, nil
	}
	return cfg, ErrInvalidOption
}
