package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/plasmidmap/plasmidmap/pkg/pipeline"
)

const defaultServeAddr = "localhost:8475"

// contentTypes maps output formats to HTTP content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

// serveCommand creates the serve command for the live preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		scale   float64
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [map.toml]",
		Short: "Serve a live preview of a plasmid map over HTTP",
		Long: `Serve a live preview of a plasmid map over HTTP.

The serve command re-reads the map file on every request, so edits show
up on reload. Unchanged files are served from the layout and artifact
caches.

Endpoints:
  /          HTML preview page
  /map.svg   rendered SVG
  /map.png   rendered PNG
  /map.json  computed layout as JSON`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr, scale, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().Float64Var(&scale, "scale", 0, "png scale in pixels per layout unit (default 0.5)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the preview server and blocks until the context is
// cancelled or the server fails.
func (c *CLI) runServe(ctx context.Context, input, addr string, scale float64, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.serveHandler(runner, input, scale),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printSuccess("Preview server running")
	printDetail("Map:     %s", input)
	printDetail("Address: http://%s/", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// serveHandler builds the preview router. Every map endpoint runs the
// full pipeline; the content-addressed cache keeps repeat loads cheap.
func (c *CLI) serveHandler(runner *pipeline.Runner, input string, scale float64) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, previewPage, input)
	})
	r.Get("/map.svg", c.mapEndpoint(runner, input, pipeline.FormatSVG, scale))
	r.Get("/map.png", c.mapEndpoint(runner, input, pipeline.FormatPNG, scale))
	r.Get("/map.json", c.mapEndpoint(runner, input, pipeline.FormatJSON, scale))

	return r
}

// mapEndpoint renders the map in the given format for each request.
func (c *CLI) mapEndpoint(runner *pipeline.Runner, input, format string, scale float64) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		result, err := runner.Execute(req.Context(), pipeline.Options{
			MapFile:  input,
			Formats:  []string{format},
			PNGScale: scale,
		})
		if err != nil {
			c.Logger.Error("render failed", "format", format, "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(result.Artifacts[format])
	}
}

// requestLogger logs each request with method, path, status, and duration.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		c.Logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

const previewPage = `<!DOCTYPE html>
<html>
<head>
<title>plasmidmap preview</title>
<style>
body { margin: 0; background: #f4f4f4; font-family: sans-serif; }
header { padding: 0.5rem 1rem; background: #fff; border-bottom: 1px solid #ddd; }
header code { color: #555; }
main { display: flex; justify-content: center; padding: 1rem; }
img { max-width: min(90vw, 900px); height: auto; background: #fff; }
</style>
</head>
<body>
<header>plasmidmap · <code>%s</code> · reload to re-render</header>
<main><img src="/map.svg" alt="plasmid map"></main>
</body>
</html>
`
