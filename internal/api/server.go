package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgallion1/donorscan/internal/config"
	"github.com/dgallion1/donorscan/internal/ner"
	"github.com/dgallion1/donorscan/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Extractor runs the name pipeline for one URL.
type Extractor interface {
	Extract(ctx context.Context, rawURL string) (*pipeline.Result, error)
	ExtractLegacy(ctx context.Context, rawURL string, peopleOnly bool) (*pipeline.LegacyResult, error)
}

// Server is the HTTP API server for donorscan.
type Server struct {
	router    chi.Router
	extractor Extractor
	stats     *ner.Stats
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server. stats may be nil.
func NewServer(ex Extractor, stats *ner.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		extractor: ex,
		stats:     stats,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   s.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)

	r.Get("/health", s.handleHealth)

	r.Post("/scrape", s.handleScrape)
	r.Post("/scrape-names", s.handleScrapeNames)
	r.Get("/api/stats/ner", s.handleNERStats)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
