package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/blipradar/blipradar/pkg/cache"
	"github.com/blipradar/blipradar/pkg/errors"
	"github.com/blipradar/blipradar/pkg/host"
	"github.com/blipradar/blipradar/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	redisAddr string // Redis address for the shared artifact cache
	noCache   bool   // disable the artifact cache
}

// serveCommand creates the serve command, which exposes the pipeline over
// HTTP for hosts that embed the radar remotely.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the radar pipeline over HTTP",
		Long: `Serve starts an HTTP server exposing the radar pipeline.

POST /radar accepts a JSON body with the dataset, optional stored colours,
and render options, and responds with the rendered artifacts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for a shared artifact cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runServe builds the runner and serves until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	artifactCache, err := c.newServeCache(ctx, opts)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(artifactCache, nil, c.Logger)
	defer runner.Close()

	server := &http.Server{
		Addr:         opts.addr,
		Handler:      c.newRouter(runner),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// newServeCache picks the cache backend for serve mode: Redis when an
// address is given, a local file cache otherwise.
func (c *CLI) newServeCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, opts.redisAddr)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "connecting to redis at %s", opts.redisAddr)
		}
		c.Logger.Info("using redis cache", "addr", opts.redisAddr)
		return rc, nil
	}
	return newCache(false), nil
}

// newRouter builds the HTTP route tree.
func (c *CLI) newRouter(runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/radar", c.handleRadar(runner))

	return r
}

// requestLogger tags every request with an id and logs its outcome.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		c.Logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// radarRequest is the POST /radar body.
type radarRequest struct {
	Dataset host.Dataset      `json:"dataset"`
	Colours map[string]string `json:"colours,omitempty"`
	Options pipeline.Options  `json:"options"`
}

// radarResponse is the POST /radar reply. Artifact bytes are base64 in
// the JSON encoding.
type radarResponse struct {
	InputHash      string               `json:"input_hash"`
	Artifacts      map[string][]byte    `json:"artifacts"`
	Customizations []host.Customization `json:"customizations"`
	Stats          radarResponseStats   `json:"stats"`
}

type radarResponseStats struct {
	Sectors int  `json:"sectors"`
	Blips   int  `json:"blips"`
	Skipped int  `json:"skipped"`
	Cached  bool `json:"cached"`
}

// handleRadar runs the pipeline for one request.
func (c *CLI) handleRadar(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req radarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request body"))
			return
		}

		colours := host.MemoryStore{}
		for id, colour := range req.Colours {
			if err := errors.ValidateColour(colour); err != nil {
				writeError(w, err)
				return
			}
			colours.Set(id, colour)
		}

		opts := req.Options
		opts.Logger = c.Logger
		result, err := runner.Execute(r.Context(), req.Dataset, colours, opts)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, radarResponse{
			InputHash:      result.InputHash,
			Artifacts:      result.Artifacts,
			Customizations: host.EnumerateCustomizations(result.Radar),
			Stats: radarResponseStats{
				Sectors: result.Stats.SectorCount,
				Blips:   result.Stats.BlipCount,
				Skipped: result.Stats.SkippedRows,
				Cached:  result.CacheInfo.RenderHit,
			},
		})
	}
}

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps an error to its HTTP status and writes the JSON body.
func writeError(w http.ResponseWriter, err error) {
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	writeJSON(w, errors.HTTPStatus(err), errorResponse{
		Code:    code,
		Message: errors.UserMessage(err),
	})
}

// writeJSON writes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
