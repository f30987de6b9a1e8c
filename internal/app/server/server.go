package server

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yuhaowen84/timesheet-app/internal/domain/timesheet"
	"github.com/yuhaowen84/timesheet-app/internal/platform/config"
	timesheethandler "github.com/yuhaowen84/timesheet-app/internal/transport/http/handlers/timesheet"
	"github.com/yuhaowen84/timesheet-app/internal/transport/http/middleware"
)

// NewRouter builds the HTTP surface for the given engine and config.
func NewRouter(cfg config.Config, engine *timesheet.Engine) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		timesheethandler.NewHandler(engine).RegisterRoutes(r)
	})

	return router
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	rates := timesheet.DefaultRates()
	holidays := timesheet.DefaultHolidays()
	if cfg.RatesFile != "" {
		rates, holidays, err = timesheet.LoadRatesFile(cfg.RatesFile)
		if err != nil {
			log.Fatalf("rates load failed: %v", err)
		}
		slog.Info("rates loaded", "file", cfg.RatesFile, "holidays", len(holidays))
	}

	engine := timesheet.NewEngine(rates, holidays)
	router := NewRouter(cfg, engine)

	log.Printf("timesheet server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
