package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/plasmidmap/plasmidmap/pkg/pipeline"
)

const serveTestMap = `
name = "pBR322"
base_pairs = 4361

[[feature]]
type = "rectangle"
name = "ori"
start = 2534
end = 3122
`

func serveTestHandler(t *testing.T) http.Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.toml")
	if err := os.WriteFile(path, []byte(serveTestMap), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, log.ErrorLevel)
	runner := pipeline.NewRunner(nil, c.Logger)
	t.Cleanup(func() { runner.Close() })

	return c.serveHandler(runner, path, 0)
}

func TestServeSVG(t *testing.T) {
	handler := serveTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/map.svg", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q, want image/svg+xml", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body does not contain an svg element")
	}
}

func TestServeJSON(t *testing.T) {
	handler := serveTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/map.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"base_pairs": 4361`) {
		t.Error("body does not contain the layout json")
	}
}

func TestServeIndex(t *testing.T) {
	handler := serveTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `src="/map.svg"`) {
		t.Error("preview page does not embed the svg")
	}
}

func TestServeMissingMap(t *testing.T) {
	c := New(io.Discard, log.ErrorLevel)
	runner := pipeline.NewRunner(nil, c.Logger)
	defer runner.Close()
	handler := c.serveHandler(runner, filepath.Join(t.TempDir(), "absent.toml"), 0)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/map.svg", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestServeUnknownPath(t *testing.T) {
	handler := serveTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
