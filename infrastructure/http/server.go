package http

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"effix/frontend/shared/html"
	"effix/infrastructure/audit"
	"effix/infrastructure/i18n"
	"effix/infrastructure/navigation"
	"effix/infrastructure/sqlite"
)

//go:embed assets/*
var assets embed.FS

var ShutdownTimeout = 2 * time.Second

// Deps are the shared services handed to every handler.
type Deps struct {
	DB            *sqlite.DB
	Catalog       *i18n.Catalog
	DefaultLocale i18n.Locale
	Nav           *navigation.Registry
	Audit         *audit.Service
	Logger        *zap.Logger
	// Now decides which tasks are overdue. Defaults to time.Now.
	Now func() time.Time
}

// Server bundles dependencies and route wiring.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
	ln              net.Listener
	server          *http.Server
	router          *chi.Mux
	logger          *zap.Logger

	DB            *sqlite.DB
	Catalog       *i18n.Catalog
	DefaultLocale i18n.Locale
	Nav           *navigation.Registry
	Audit         *audit.Service
	Now           func() time.Time
}

// NewServer creates a new http server.
func NewServer(addr string, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	nav := deps.Nav
	if nav == nil {
		nav = navigation.New()
	}
	auditSvc := deps.Audit
	if auditSvc == nil {
		auditSvc = audit.NewService(logger)
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	def := deps.DefaultLocale
	if _, ok := i18n.ParseLocale(string(def)); !ok {
		def = i18n.English
	}

	s := &Server{
		Addr:            addr,
		ShutdownTimeout: ShutdownTimeout,
		router:          chi.NewRouter(),
		logger:          logger.Named("http"),
		DB:              deps.DB,
		Catalog:         deps.Catalog,
		DefaultLocale:   def,
		Nav:             nav,
		Audit:           auditSvc,
		Now:             now,
		server: &http.Server{
			MaxHeaderBytes:    1 << 20,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(secureHeaders)
	s.router.Use(s.observe)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(csrfMiddleware)
	s.router.Use(s.localeMiddleware)

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("/metrics", promhttp.Handler())

	// Serve assets from embedded FS.
	var assetsFS fs.FS = assets
	if sub, err := fs.Sub(assets, "assets"); err == nil {
		assetsFS = sub
	} else {
		s.logger.Error("assets subfs init failed; serving fallback fs", zap.Error(err))
	}
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS))))

	s.router.Post("/language", s.changeLanguage)
	s.RegisterNavigation()
	s.RegisterPageRoutes(s.router)
	s.router.NotFound(s.notFound)

	s.server.Handler = s.router
	return s
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	tr, err := html.Translator(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := html.RenderPage(w, r, s.Nav, tr.T("notfound.title"), html.NotFound(tr)); err != nil {
		s.logger.Error("render not found page failed", zap.Error(err))
	}
}

// Start listens on Addr and serves in the background.
func (s *Server) Start() error {
	var err error
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	ln := s.ln
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped", zap.Error(err))
		}
	}()
	s.logger.Info("http server listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// ListenAddr is the bound address, useful when Addr asks for port 0.
func (s *Server) ListenAddr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.ln == nil {
		return fmt.Errorf("HTTP server has not been started or is already stopped")
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %v", err)
	}
	s.ln = nil
	return nil
}

// Run serves until ctx is cancelled, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return s.Stop()
}
