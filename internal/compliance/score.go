package compliance

import (
	"math"

	"a11yscanner/pkg/domain"
)

// Level buckets a compliance score.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Score returns the share of enabled features across every module, rounded to
// the nearest integer. A feature only counts as enabled when its module is
// enabled too. It reflects configuration coverage, not scan results.
func Score(settings domain.Settings) int {
	enabled, total := 0, 0
	for _, kind := range domain.ModuleKinds {
		m, ok := settings.Modules[kind]
		if !ok {
			continue
		}
		for _, on := range m.Features {
			total++
			if on && m.Enabled {
				enabled++
			}
		}
	}
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(enabled) / float64(total) * 100))
}

// LevelFor maps a score to its level.
func LevelFor(score int) Level {
	switch {
	case score >= 90:
		return LevelHigh
	case score >= 70:
		return LevelMedium
	default:
		return LevelLow
	}
}
