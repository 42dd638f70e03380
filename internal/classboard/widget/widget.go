// Package widget holds the behavior of widget bodies that are not driven
// by a clock. Every function takes the current typed configuration and
// returns the next one; callers persist it through the merge protocol.
package widget

import "errors"

var (
	ErrInvalidOption = errors.New("invalid option")
	ErrOutOfRange    = errors.New("index out of range")
)

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
