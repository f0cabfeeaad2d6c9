package main

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/csscat"
	internal "github.com/yacobolo/csscat/internal/csscat"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve aggregation reports and stylesheets over HTTP",
	Long: `Serve the HTML report at / and the aggregate itself at /style.css.
The dir query parameter is resolved against --doc-root (or --site-root).
Writes follow the same gate as the CLI, using the caller's address and the
print and unlock query parameters.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		addr := getStringWithFallback("addr", "serve.addr", "127.0.0.1:8080")
		docRoot := getStringWithFallback("doc-root", "serve.doc-root", ".")

		h, err := newServer(buildConfig(), docRoot, logger)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		}
		logger.Info("listening", zap.String("addr", addr), zap.String("doc_root", h.base.DocumentRoot))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving on %s: %w", addr, err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Listen address")
	serveCmd.Flags().String("doc-root", ".", "Document root that dir parameters are resolved against")
	addAggregateFlags(serveCmd)
}

// server runs one independent pipeline per request
type server struct {
	base    internal.Config
	selfDir string
	logger  *zap.Logger
	mux     *http.ServeMux
}

func newServer(base internal.Config, docRoot string, logger *zap.Logger) (*server, error) {
	abs, err := filepath.Abs(docRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving document root %s: %w", docRoot, err)
	}
	base.DocumentRoot = abs

	if logger == nil {
		logger = zap.NewNop()
	}

	s := &server{
		base:    base,
		selfDir: internal.SelfDir(base.SelfDir),
		logger:  logger,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /{$}", s.handleReport)
	s.mux.HandleFunc("GET /style.css", s.handleStylesheet)
	return s, nil
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// requestConfig applies the query parameters to the base configuration
func (s *server) requestConfig(r *http.Request) (internal.Config, error) {
	config := s.base
	q := r.URL.Query()

	config.Dir = q.Get("dir")
	if v := q.Get("max_files"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config, fmt.Errorf("max_files: %w", err)
		}
		config.Aggregation.MaxFiles = n
	}
	if v := q.Get("max_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config, fmt.Errorf("max_length: %w", err)
		}
		config.Aggregation.MaxFileLength = n
	}
	if v := q.Get("write"); v != "" {
		config.Target = internal.Target(v)
	}
	if q.Has("minify") {
		config.Minify = true
	}
	return config, nil
}

func (s *server) handleReport(w http.ResponseWriter, r *http.Request) {
	config, err := s.requestConfig(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	auth := internal.RequestGate(r, s.selfDir, config.SentinelName)
	report, err := csscat.Run(config, auth, s.logger.With(zap.String("remote", r.RemoteAddr)))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := csscat.WriteOutput(w, report, csscat.OutputHTML, csscat.OutputOptions{}); err != nil {
		s.logger.Warn("writing report", zap.Error(err))
	}
}

func (s *server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	config, err := s.requestConfig(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Serving never writes
	report, err := csscat.Run(config, csscat.Deny, s.logger.With(zap.String("remote", r.RemoteAddr)))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !report.Available() {
		http.Error(w, csscat.MessageNotAvailable, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if _, err := w.Write(report.Content()); err != nil {
		s.logger.Warn("writing stylesheet", zap.Error(err))
	}
}
