package layout

import (
	"testing"

	"github.com/plasmidmap/plasmidmap/pkg/plasmid"
)

func mustRectangle(t *testing.T, name string, start, end int) *plasmid.Rectangle {
	t.Helper()
	f, err := plasmid.NewRectangle(name, start, end)
	if err != nil {
		t.Fatalf("NewRectangle(%q, %d, %d) error = %v", name, start, end, err)
	}
	return f
}

func TestAllocateOrbits(t *testing.T) {
	tests := []struct {
		name       string
		spans      [][2]int
		wantOrbits []int
		wantCount  int
	}{
		{
			name:       "empty input",
			wantOrbits: []int{},
			wantCount:  0,
		},
		{
			name:       "disjoint features share orbit zero",
			spans:      [][2]int{{0, 100}, {200, 300}, {400, 500}},
			wantOrbits: []int{0, 0, 0},
			wantCount:  1,
		},
		{
			name:       "overlap pushes second feature outward",
			spans:      [][2]int{{300, 400}, {350, 450}, {500, 600}},
			wantOrbits: []int{0, 1, 0},
			wantCount:  2,
		},
		{
			name:       "triple overlap opens three orbits",
			spans:      [][2]int{{100, 500}, {200, 600}, {300, 700}},
			wantOrbits: []int{0, 1, 2},
			wantCount:  3,
		},
		{
			name:       "touching half-open intervals do not overlap",
			spans:      [][2]int{{100, 200}, {200, 300}},
			wantOrbits: []int{0, 0},
			wantCount:  1,
		},
		{
			name:       "later feature slots back into inner orbit",
			spans:      [][2]int{{0, 1000}, {100, 200}, {1200, 1300}},
			wantOrbits: []int{0, 1, 0},
			wantCount:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := make([]Banded, len(tt.spans))
			for i, s := range tt.spans {
				features[i] = mustRectangle(t, "f", s[0], s[1])
			}

			count, err := AllocateOrbits(features)
			if err != nil {
				t.Fatalf("AllocateOrbits() error = %v", err)
			}
			if count != tt.wantCount {
				t.Errorf("orbit count = %d, want %d", count, tt.wantCount)
			}
			for i, f := range features {
				if f.Orbit() != tt.wantOrbits[i] {
					t.Errorf("feature %d orbit = %d, want %d", i, f.Orbit(), tt.wantOrbits[i])
				}
			}
		})
	}
}

func TestAllocateOrbitsOverlapFree(t *testing.T) {
	spans := [][2]int{
		{86, 1276}, {1915, 2106}, {2534, 3122}, {2000, 2500},
		{100, 1500}, {3000, 3500}, {3400, 4000}, {0, 4361},
	}
	features := make([]Banded, len(spans))
	for i, s := range spans {
		features[i] = mustRectangle(t, "f", s[0], s[1])
	}

	if _, err := AllocateOrbits(features); err != nil {
		t.Fatalf("AllocateOrbits() error = %v", err)
	}

	for i, a := range features {
		for j, b := range features {
			if i >= j || a.Orbit() != b.Orbit() {
				continue
			}
			as, ae := a.Span()
			bs, be := b.Span()
			if as < be && bs < ae {
				t.Errorf("features %d [%d,%d) and %d [%d,%d) overlap on orbit %d",
					i, as, ae, j, bs, be, a.Orbit())
			}
		}
	}
}

func TestAllocateOrbitsIdempotent(t *testing.T) {
	features := []Banded{
		mustRectangle(t, "a", 300, 400),
		mustRectangle(t, "b", 350, 450),
		mustRectangle(t, "c", 500, 600),
	}

	first, err := AllocateOrbits(features)
	if err != nil {
		t.Fatalf("first AllocateOrbits() error = %v", err)
	}
	assigned := make([]int, len(features))
	for i, f := range features {
		assigned[i] = f.Orbit()
	}

	second, err := AllocateOrbits(features)
	if err != nil {
		t.Fatalf("second AllocateOrbits() error = %v", err)
	}
	if second != first {
		t.Errorf("orbit count changed on re-run: %d -> %d", first, second)
	}
	for i, f := range features {
		if f.Orbit() != assigned[i] {
			t.Errorf("feature %d orbit changed on re-run: %d -> %d", i, assigned[i], f.Orbit())
		}
	}
}

func TestAllocateOrbitsRespectsPresetOrbit(t *testing.T) {
	forced := mustRectangle(t, "forced", 0, 100)
	if err := forced.SetOrbit(2); err != nil {
		t.Fatalf("SetOrbit(2) error = %v", err)
	}
	other := mustRectangle(t, "other", 500, 600)

	count, err := AllocateOrbits([]Banded{forced, other})
	if err != nil {
		t.Fatalf("AllocateOrbits() error = %v", err)
	}
	if forced.Orbit() != 2 {
		t.Errorf("forced feature orbit = %d, want 2", forced.Orbit())
	}
	if other.Orbit() != 0 {
		t.Errorf("other feature orbit = %d, want 0", other.Orbit())
	}
	if count != 3 {
		t.Errorf("orbit count = %d, want 3", count)
	}
}
