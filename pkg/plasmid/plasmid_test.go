package plasmid

import (
	"testing"

	"github.com/plasmidmap/plasmidmap/pkg/errors"
)

func TestNewRejectsNonPositiveLength(t *testing.T) {
	tests := []struct {
		name      string
		basePairs int
	}{
		{name: "zero", basePairs: 0},
		{name: "negative", basePairs: -4361},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("broken", tt.basePairs)
			if !errors.Is(err, errors.ErrCodeInvalidLength) {
				t.Errorf("New(%d) error = %v, want INVALID_LENGTH", tt.basePairs, err)
			}
		})
	}
}

func TestAddFeatureBounds(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		wantErr    bool
	}{
		{name: "inside", start: 100, end: 200},
		{name: "touching both ends", start: 0, end: 4361},
		{name: "end beyond length", start: 4000, end: 4500, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New("pBR322", 4361)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			f, err := NewRectangle("ori", tt.start, tt.end)
			if err != nil {
				t.Fatalf("NewRectangle(%d, %d) failed: %v", tt.start, tt.end, err)
			}

			err = p.AddFeature(f)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeOutOfBounds) {
					t.Errorf("AddFeature() error = %v, want OUT_OF_BOUNDS", err)
				}
				if len(p.Features()) != 0 {
					t.Error("rejected feature must not be appended")
				}
				return
			}
			if err != nil {
				t.Errorf("AddFeature() failed: %v", err)
			}
		})
	}
}

func TestFeaturesPreserveInsertionOrder(t *testing.T) {
	p, err := New("pBR322", 4361)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	names := []string{"TcR", "ori", "AmpR"}
	spans := [][2]int{{86, 1276}, {2534, 3122}, {3293, 4153}}
	for i, name := range names {
		f, err := NewRectangle(name, spans[i][0], spans[i][1])
		if err != nil {
			t.Fatalf("NewRectangle(%s) failed: %v", name, err)
		}
		if err := p.AddFeature(f); err != nil {
			t.Fatalf("AddFeature(%s) failed: %v", name, err)
		}
	}

	got := p.Features()
	if len(got) != len(names) {
		t.Fatalf("Features() returned %d features, want %d", len(got), len(names))
	}
	for i, f := range got {
		if f.Name() != names[i] {
			t.Errorf("Features()[%d] = %q, want %q", i, f.Name(), names[i])
		}
	}
}

func TestRingWidth(t *testing.T) {
	p, err := New("pBR322", 4361)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Derived default: 10% of the radius.
	if got, want := p.RingWidth(), DefaultRadius*DefaultRingWidthFraction; got != want {
		t.Errorf("RingWidth() = %v, want %v", got, want)
	}

	if err := p.SetRingWidthSF(2); err != nil {
		t.Fatalf("SetRingWidthSF(2) failed: %v", err)
	}
	if got, want := p.RingWidth(), DefaultRadius*DefaultRingWidthFraction*2; got != want {
		t.Errorf("RingWidth() after SF = %v, want %v", got, want)
	}

	// An absolute width replaces the derived default but keeps the SF.
	if err := p.SetRingWidth(50); err != nil {
		t.Fatalf("SetRingWidth(50) failed: %v", err)
	}
	if got, want := p.RingWidth(), 100.0; got != want {
		t.Errorf("RingWidth() absolute = %v, want %v", got, want)
	}
}

func TestSetterValidation(t *testing.T) {
	p, err := New("pBR322", 4361)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		name string
		call func() error
		code errors.Code
	}{
		{name: "zero tick count", call: func() error { return p.SetTickCount(0) }, code: errors.ErrCodeInvalidTickCount},
		{name: "negative tick count", call: func() error { return p.SetTickCount(-8) }, code: errors.ErrCodeInvalidTickCount},
		{name: "unknown tick style", call: func() error { return p.SetTickStyle("spiral") }, code: errors.ErrCodeInvalidTickStyle},
		{name: "zero font size", call: func() error { return p.SetLabelFontSize(0) }, code: errors.ErrCodeInvalidFontSize},
		{name: "zero radius", call: func() error { return p.SetRadius(0) }, code: errors.ErrCodeInvalidLineWidth},
		{name: "zero ring width", call: func() error { return p.SetRingWidth(0) }, code: errors.ErrCodeInvalidLineWidth},
		{name: "zero tick distance", call: func() error { return p.SetTickDistanceSF(0) }, code: errors.ErrCodeInvalidLineWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidSetters(t *testing.T) {
	p, err := New("pBR322", 4361)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := p.SetTickStyle(TickNLabels); err != nil {
		t.Errorf("SetTickStyle(n-labels) failed: %v", err)
	}
	if err := p.SetTickCount(8); err != nil {
		t.Errorf("SetTickCount(8) failed: %v", err)
	}
	if p.TickStyle() != TickNLabels || p.TickCount() != 8 {
		t.Errorf("tick config = (%s, %d), want (n-labels, 8)", p.TickStyle(), p.TickCount())
	}
}
