package render

import (
	"bytes"
	"os/exec"
	"testing"
)

const minimalSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10"><circle cx="5" cy="5" r="4" fill="grey"/></svg>`

func TestToPDF(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}

	pdf, err := ToPDF([]byte(minimalSVG))
	if err != nil {
		t.Fatalf("ToPDF() error = %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF, got %q", pdf[:min(len(pdf), 8)])
	}
}

func TestToPS(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}

	ps, err := ToPS([]byte(minimalSVG))
	if err != nil {
		t.Fatalf("ToPS() error = %v", err)
	}
	if !bytes.HasPrefix(ps, []byte("%!PS")) {
		t.Errorf("output does not start with %%!PS, got %q", ps[:min(len(ps), 8)])
	}
}
