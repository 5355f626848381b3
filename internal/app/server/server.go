package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bizsuite/internal/domain/accounting"
	"bizsuite/internal/domain/appraisal"
	"bizsuite/internal/platform/config"
	"bizsuite/internal/platform/pmsclient"
	accountinghandler "bizsuite/internal/transport/http/handlers/accounting"
	pmshandler "bizsuite/internal/transport/http/handlers/pms"
	"bizsuite/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	repo := pmsclient.New(cfg.PMSBaseURL, cfg.PMSToken,
		pmsclient.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))
	pmsService := appraisal.NewService(repo, appraisal.DefaultMetricTable())
	books := accounting.NewSeededStore()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		pmshandler.NewHandler(pmsService).RegisterRoutes(r)
		accountinghandler.NewHandler(books, cfg.StatementDir).RegisterRoutes(r)
	})

	log.Printf("bizsuite server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
