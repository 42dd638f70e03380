package widget

import "math"

// MaxVolume is the top of the normalized volume scale.
const MaxVolume = 10.0

// Normalize turns raw 0-255 frequency magnitudes into a 0-10 volume,
// scaled by sensitivity where 5 is neutral.
func Normalize(samples []uint8, sensitivity int) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0
	for _, s := range samples {
		sum += int(s)
	}
	avg := float64(sum) / float64(len(samples)) * float64(sensitivity) / 5
	return math.Min(MaxVolume, avg/25.5)
}

// Level buckets a volume relative to threshold for display.
func Level(volume float64, threshold int) string {
	t := float64(threshold)
	switch {
	case volume < t*0.5:
		return "quiet"
	case volume < t:
		return "moderate"
	default:
		return "loud"
	}
}

// Monitor watches a volume stream and reports each time it rises above
// the threshold. Staying above does not report again.
type Monitor struct {
	threshold int
	volume    float64
	above     bool
}

func NewMonitor(threshold int) *Monitor {
	return &Monitor{threshold: threshold}
}

// Observe records volume and returns true on an upward threshold crossing.
func (m *Monitor) Observe(volume float64) bool {
	m.volume = volume
	above := volume > float64(m.threshold)
	crossed := above && !m.above
	m.above = above
	return crossed
}

func (m *Monitor) SetThreshold(threshold int) {
	m.threshold = threshold
}

func (m *Monitor) Volume() float64 { return m.volume }

func (m *Monitor) Above() bool { return m.above }

func (m *Monitor) Threshold() int { return m.threshold }
