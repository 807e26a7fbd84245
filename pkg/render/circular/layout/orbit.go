package layout

import "sort"

// Banded is the view of a multi-pair feature the orbit allocator works
// with. Both rectangle and arrow features satisfy it; single-pair markers
// are never allocated and always sit at orbit 0.
type Banded interface {
	Name() string
	Span() (start, end int)
	Orbit() int
	SetOrbit(orbit int) error
}

// span is a placed half-open interval [start, end).
type span struct {
	start, end int
}

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

// AllocateOrbits assigns each feature a radial orbit such that any two
// features sharing an orbit have disjoint [start, end) intervals.
//
// Features are processed in a stable order (ascending start, insertion
// order breaking ties) and each takes the innermost orbit, at or beyond
// its preset orbit, whose placed intervals are all disjoint from its own;
// a new orbit is opened when none fits. This greedy first-fit coloring is
// not guaranteed minimal but is deterministic: re-running it on an
// unchanged feature list yields identical assignments.
//
// The assigned orbit is written back onto each feature. The returned
// count is the number of orbits in use (0 for an empty input).
func AllocateOrbits(features []Banded) (int, error) {
	ordered := make([]Banded, len(features))
	copy(ordered, features)
	sort.SliceStable(ordered, func(i, j int) bool {
		si, _ := ordered[i].Span()
		sj, _ := ordered[j].Span()
		return si < sj
	})

	var orbits [][]span
	for _, f := range ordered {
		start, end := f.Span()
		candidate := span{start: start, end: end}

		orbit := f.Orbit()
		for orbit < len(orbits) && !fits(candidate, orbits[orbit]) {
			orbit++
		}
		for len(orbits) <= orbit {
			orbits = append(orbits, nil)
		}
		if err := f.SetOrbit(orbit); err != nil {
			return 0, err
		}
		orbits[orbit] = append(orbits[orbit], candidate)
	}
	return len(orbits), nil
}

func fits(candidate span, placed []span) bool {
	for _, s := range placed {
		if candidate.overlaps(s) {
			return false
		}
	}
	return true
}
