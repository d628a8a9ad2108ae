// Package frontdoor serves the board's public entry point: a health check, a
// reverse proxy for the API, and static assets for everything else.
package frontdoor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configures the front door.
type Options struct {
	Port      int
	APIOrigin string // host:port or absolute URL of the board API
	StaticDir string
}

// Handler builds the front-door routes.
func Handler(opts Options, logger *zap.Logger) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	origin, err := parseOrigin(opts.APIOrigin)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(origin)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn("api proxy failed", zap.String("path", r.URL.Path), zap.Error(err))
		w.WriteHeader(http.StatusBadGateway)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthcheck", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/api/", http.StripPrefix("/api", proxy))
	mux.Handle("/", http.FileServer(http.Dir(opts.StaticDir)))
	return mux, nil
}

// parseOrigin accepts "host:port" (http assumed) or an absolute URL.
func parseOrigin(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("api origin is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid api origin %q", raw)
	}
	return u, nil
}

// Serve runs the front door until ctx is cancelled.
func Serve(ctx context.Context, opts Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	h, err := Handler(opts, logger)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("front door listening",
			zap.String("addr", srv.Addr),
			zap.String("api_origin", opts.APIOrigin))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
