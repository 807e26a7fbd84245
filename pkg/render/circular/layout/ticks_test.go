package layout

import (
	"reflect"
	"testing"

	"github.com/plasmidmap/plasmidmap/pkg/errors"
	"github.com/plasmidmap/plasmidmap/pkg/plasmid"
)

func TestPlanTicksEven(t *testing.T) {
	tests := []struct {
		name      string
		basePairs int
		count     int
		want      []int
		wantCode  errors.Code
	}{
		{
			name:      "pBR322 with eight ticks",
			basePairs: 4361,
			count:     8,
			want:      []int{0, 545, 1090, 1635, 2180, 2725, 3270, 3815},
		},
		{
			name:      "even division",
			basePairs: 100,
			count:     4,
			want:      []int{0, 25, 50, 75},
		},
		{
			name:      "single tick at origin",
			basePairs: 4361,
			count:     1,
			want:      []int{0},
		},
		{
			name:      "zero count rejected",
			basePairs: 4361,
			count:     0,
			wantCode:  errors.ErrCodeInvalidTickCount,
		},
		{
			name:      "negative count rejected",
			basePairs: 4361,
			count:     -3,
			wantCode:  errors.ErrCodeInvalidTickCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanTicks(tt.basePairs, plasmid.TickNLabels, tt.count)
			if tt.wantCode != "" {
				if err == nil {
					t.Fatal("PlanTicks() expected error, got nil")
				}
				if code := errors.GetCode(err); code != tt.wantCode {
					t.Errorf("error code = %s, want %s", code, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("PlanTicks() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("positions = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanTicksAuto(t *testing.T) {
	tests := []struct {
		name         string
		basePairs    int
		wantInterval int
	}{
		{name: "pBR322", basePairs: 4361, wantInterval: 500},
		{name: "round hundred", basePairs: 1000, wantInterval: 100},
		{name: "just over a decade", basePairs: 101, wantInterval: 10},
		{name: "large plasmid", basePairs: 48502, wantInterval: 5000},
		{name: "tiny plasmid", basePairs: 10, wantInterval: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanTicks(tt.basePairs, plasmid.TickAuto, 0)
			if err != nil {
				t.Fatalf("PlanTicks() error = %v", err)
			}
			if len(got) == 0 || len(got) > autoMaxTicks {
				t.Fatalf("tick count = %d, want 1..%d", len(got), autoMaxTicks)
			}
			if got[0] != 0 {
				t.Errorf("first tick = %d, want 0", got[0])
			}
			for i := 1; i < len(got); i++ {
				if got[i]-got[i-1] != tt.wantInterval {
					t.Errorf("interval between ticks %d and %d = %d, want %d",
						i-1, i, got[i]-got[i-1], tt.wantInterval)
				}
			}
			if last := got[len(got)-1]; last >= tt.basePairs {
				t.Errorf("last tick %d not below plasmid length %d", last, tt.basePairs)
			}
		})
	}
}

func TestPlanTicksNone(t *testing.T) {
	got, err := PlanTicks(4361, plasmid.TickNone, 8)
	if err != nil {
		t.Fatalf("PlanTicks() error = %v", err)
	}
	if got != nil {
		t.Errorf("positions = %v, want nil", got)
	}
}

func TestPlanTicksUnknownStyle(t *testing.T) {
	_, err := PlanTicks(4361, plasmid.TickStyle("spiral"), 8)
	if err == nil {
		t.Fatal("PlanTicks() expected error for unknown style, got nil")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidTickStyle {
		t.Errorf("error code = %s, want %s", code, errors.ErrCodeInvalidTickStyle)
	}
}
