package mapfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plasmidmap/plasmidmap/pkg/errors"
	"github.com/plasmidmap/plasmidmap/pkg/plasmid"
)

const pBR322 = `
name = "pBR322"
base_pairs = 4361
color = "darkgrey"
label_font_size = 36.0

[ticks]
style = "n-labels"
count = 8

[[feature]]
type = "arrow"
name = "TcR"
start = 86
end = 1276
direction = 1
color = "orange"

[[feature]]
type = "rectangle"
name = "ori"
start = 2534
end = 3122
labels = ["off-circle", "on-circle"]

[[feature]]
type = "site"
name = "BamHI"
position = 375

[[feature]]
type = "label"
name = "promoter region"
position = 4000
font_color = "darkred"
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(pBR322))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if p.Name() != "pBR322" || p.BasePairs() != 4361 {
		t.Errorf("plasmid = %s/%d, want pBR322/4361", p.Name(), p.BasePairs())
	}
	if p.Color() != "darkgrey" {
		t.Errorf("ring color = %q, want darkgrey", p.Color())
	}
	if p.LabelFontSize() != 36 {
		t.Errorf("label font size = %g, want 36", p.LabelFontSize())
	}
	if p.TickStyle() != plasmid.TickNLabels || p.TickCount() != 8 {
		t.Errorf("ticks = %s/%d, want n-labels/8", p.TickStyle(), p.TickCount())
	}

	features := p.Features()
	if len(features) != 4 {
		t.Fatalf("feature count = %d, want 4", len(features))
	}

	arrow, ok := features[0].(*plasmid.Arrow)
	if !ok {
		t.Fatalf("feature 0 is %T, want *plasmid.Arrow", features[0])
	}
	if arrow.Direction() != plasmid.Clockwise || arrow.Color() != "orange" {
		t.Errorf("arrow = %d/%s, want clockwise orange", arrow.Direction(), arrow.Color())
	}

	rect, ok := features[1].(*plasmid.Rectangle)
	if !ok {
		t.Fatalf("feature 1 is %T, want *plasmid.Rectangle", features[1])
	}
	if !rect.HasLabelStyle(plasmid.LabelOnCircle) || !rect.HasLabelStyle(plasmid.LabelOffCircle) {
		t.Errorf("rectangle label styles = %v, want both styles", rect.LabelStyles())
	}

	site, ok := features[2].(*plasmid.RestrictionSite)
	if !ok {
		t.Fatalf("feature 2 is %T, want *plasmid.RestrictionSite", features[2])
	}
	if site.LabelText() != "BamHI (375)" {
		t.Errorf("site label = %q, want BamHI (375)", site.LabelText())
	}

	marker, ok := features[3].(*plasmid.Marker)
	if !ok {
		t.Fatalf("feature 3 is %T, want *plasmid.Marker", features[3])
	}
	if marker.FontColor() != "darkred" {
		t.Errorf("marker font color = %q, want darkred", marker.FontColor())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{
			name:     "malformed toml",
			input:    "name = ",
			wantCode: errors.ErrCodeInvalidMapFile,
		},
		{
			name:     "unknown key",
			input:    "name = \"p\"\nbase_pairs = 100\nshape = \"round\"",
			wantCode: errors.ErrCodeInvalidMapFile,
		},
		{
			name:     "missing length",
			input:    "name = \"p\"",
			wantCode: errors.ErrCodeInvalidLength,
		},
		{
			name: "unknown feature type",
			input: "name = \"p\"\nbase_pairs = 100\n" +
				"[[feature]]\ntype = \"ellipse\"\nname = \"f\"\nstart = 1\nend = 2",
			wantCode: errors.ErrCodeInvalidMapFile,
		},
		{
			name: "inverted span",
			input: "name = \"p\"\nbase_pairs = 100\n" +
				"[[feature]]\ntype = \"rectangle\"\nname = \"f\"\nstart = 50\nend = 10",
			wantCode: errors.ErrCodeInvalidSpan,
		},
		{
			name: "feature outside plasmid",
			input: "name = \"p\"\nbase_pairs = 100\n" +
				"[[feature]]\ntype = \"rectangle\"\nname = \"f\"\nstart = 10\nend = 500",
			wantCode: errors.ErrCodeOutOfBounds,
		},
		{
			name: "bad label style",
			input: "name = \"p\"\nbase_pairs = 100\n" +
				"[[feature]]\ntype = \"rectangle\"\nname = \"f\"\nstart = 1\nend = 2\nlabels = [\"around\"]",
			wantCode: errors.ErrCodeInvalidLabelStyle,
		},
		{
			name:     "bad tick style",
			input:    "name = \"p\"\nbase_pairs = 100\n[ticks]\nstyle = \"spiral\"",
			wantCode: errors.ErrCodeInvalidTickStyle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if code := errors.GetCode(err); code != tt.wantCode {
				t.Errorf("error code = %s, want %s (err: %v)", code, tt.wantCode, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.toml")
	if err := os.WriteFile(path, []byte(pBR322), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name() != "pBR322" {
		t.Errorf("name = %q, want pBR322", p.Name())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeFileNotFound {
		t.Errorf("error code = %s, want %s", code, errors.ErrCodeFileNotFound)
	}
}
