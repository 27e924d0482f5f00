package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"subgraphScope/internal/dashboard"
	"subgraphScope/internal/explorer"
	"subgraphScope/internal/paginate"
)

//go:embed templates/*.html
var templateFS embed.FS

// Config holds the HTTP server settings.
type Config struct {
	Addr     string
	PageSize int
	Links    *explorer.Links
}

// Server serves the dashboard page, its JSON twin, health and metrics.
type Server struct {
	cfg       Config
	dashboard *dashboard.Dashboard
	gatherer  prometheus.Gatherer
	logger    *zap.Logger
	tmpl      *template.Template
	mux       *http.ServeMux
	server    *http.Server
	baseCtx   context.Context
	now       func() time.Time
}

// NewServer wires routes. Refreshes triggered over HTTP run under ctx,
// not the request context, so they outlive the redirect.
func NewServer(ctx context.Context, cfg Config, d *dashboard.Dashboard, gatherer prometheus.Gatherer, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = paginate.DefaultPageSize
	}
	if cfg.Links == nil {
		links, err := explorer.New(explorer.DefaultBaseURL)
		if err != nil {
			return nil, err
		}
		cfg.Links = links
	}

	tmpl, err := template.New("dashboard.html").Funcs(template.FuncMap{
		"pager":        newPagerData,
		"refreshQuery": encodeCursors,
	}).ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	s := &Server{
		cfg:       cfg,
		dashboard: d,
		gatherer:  gatherer,
		logger:    logger,
		tmpl:      tmpl,
		mux:       mux,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		baseCtx: ctx,
		now:     time.Now,
	}

	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /refresh", s.handleRefresh)
	s.mux.HandleFunc("GET /api/dashboard", s.handleAPI)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	if s.gatherer != nil {
		s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
}

// Handler exposes the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) render(r *http.Request) dashboard.View {
	status, snapshot := s.dashboard.State()
	return dashboard.Render(status, snapshot, parseCursors(r.URL.Query()), dashboard.RenderOptions{
		PageSize: s.cfg.PageSize,
		Now:      s.now(),
		Links:    s.cfg.Links,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := s.render(r)

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, view); err != nil {
		s.logger.Error("render dashboard", zap.Error(err))
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("write dashboard", zap.Error(err))
	}
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("manual refresh", zap.String("remote", r.RemoteAddr))
	s.dashboard.RefreshAsync(s.baseCtx)

	target := "/" + encodeCursors(parseCursors(r.URL.Query()))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, s.render(r))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, _ := s.dashboard.State()
	writeJSON(w, s.logger, map[string]string{
		"status":    "ok",
		"dashboard": string(status),
	})
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode response", zap.Error(err))
	}
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
