package layout

import (
	"github.com/plasmidmap/plasmidmap/pkg/errors"
	"github.com/plasmidmap/plasmidmap/pkg/plasmid"
)

// Desirable tick counts for the auto policy. The nice-interval search
// aims inside this window but degenerately short plasmids may yield
// fewer ticks.
const (
	autoTargetTicks = 8
	autoMaxTicks    = 12
)

// PlanTicks returns the base-pair positions to mark for the given tick
// configuration. Positions are ascending and lie in [0, basePairs).
//
// The auto style picks a "nice" interval (1, 2 or 5 times a power of
// ten) yielding roughly 6-12 ticks and never fails. The n-labels style
// spaces exactly count ticks evenly, starting at base pair 0; it returns
// INVALID_TICK_COUNT when count <= 0. The none style plans nothing.
func PlanTicks(basePairs int, style plasmid.TickStyle, count int) ([]int, error) {
	switch style {
	case plasmid.TickNone:
		return nil, nil
	case plasmid.TickAuto:
		return planAuto(basePairs), nil
	case plasmid.TickNLabels:
		return planEven(basePairs, count)
	}
	return nil, errors.New(errors.ErrCodeInvalidTickStyle,
		"tick style %q is not supported", style)
}

// planAuto marks multiples of a nice interval within [0, basePairs).
func planAuto(basePairs int) []int {
	interval := niceInterval(basePairs)
	positions := make([]int, 0, basePairs/interval+1)
	for bp := 0; bp < basePairs; bp += interval {
		positions = append(positions, bp)
	}
	return positions
}

// niceInterval returns the smallest interval from the 1/2/5 ladder that
// keeps the tick count at or below the maximum. Plasmids shorter than
// the tick window fall back to interval 1.
func niceInterval(basePairs int) int {
	if basePairs <= autoMaxTicks {
		return 1
	}
	for magnitude := 1; ; magnitude *= 10 {
		for _, step := range []int{1, 2, 5} {
			interval := step * magnitude
			if (basePairs+interval-1)/interval <= autoMaxTicks {
				return interval
			}
		}
	}
}

// planEven marks exactly count evenly spaced positions. Spacing uses
// integer truncation, so a 4361 bp plasmid with count 8 yields
// {0, 545, 1090, 1635, 2180, 2725, 3270, 3815}.
func planEven(basePairs, count int) ([]int, error) {
	if count <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidTickCount,
			"tick count must be positive, got %d", count)
	}
	positions := make([]int, count)
	for i := range positions {
		positions[i] = i * basePairs / count
	}
	return positions, nil
}
