package widget

import (
	"math/rand"

	"classboard/internal/classboard/widgetconfig"
)

const (
	MinDice = 1
	MaxDice = 5
)

// Roll throws cfg.NumberOfDice dice with cfg.Sides faces each.
func Roll(cfg widgetconfig.DiceConfig, rng *rand.Rand) []int {
	n := clamp(cfg.NumberOfDice, MinDice, MaxDice)
	sides := max(cfg.Sides, 2)
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(sides) + 1
	}
	return out
}

// SetDiceCount clamps n to the allowed number of dice.
func SetDiceCount(cfg widgetconfig.DiceConfig, n int) widgetconfig.DiceConfig {
	cfg.NumberOfDice = clamp(n, MinDice, MaxDice)
	return cfg
}
