package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/terracore-io/reserve-ledger/internal/config"
	"github.com/terracore-io/reserve-ledger/internal/services"
)

const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type Server struct {
	cfg        *config.Config
	svc        *services.Service
	httpServer *http.Server
}

func New(cfg *config.Config, svc *services.Service) *Server {
	srv := &Server{
		cfg: cfg,
		svc: svc,
	}

	srv.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Api.Host, cfg.Api.Port),
		Handler:           srv.routes(),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return srv
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(tracingMiddleware)
	r.Use(requestMetricsMiddleware)

	r.Get("/healthcheck", registerHandler(s.HealthCheck))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/mint", registerHandler(s.Mint))
		r.Get("/mint/preview", registerHandler(s.PreviewMint))
		r.Get("/capacity", registerHandler(s.Capacity))

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.adminAuthMiddleware)
			r.Put("/reserves", registerHandler(s.UpdateReserves))
			r.Put("/fee", registerHandler(s.SetFee))
			r.Put("/discount", registerHandler(s.SetDiscount))
			r.Put("/oracle", registerHandler(s.SetOracle))
			r.Post("/fees/withdraw", registerHandler(s.WithdrawFees))
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", registerHandler(s.ListProjects))
			r.Get("/{projectID}", registerHandler(s.GetProject))
			r.Get("/{projectID}/participations", registerHandler(s.ListParticipations))
			r.Get("/{projectID}/participations/{account}", registerHandler(s.GetParticipation))

			r.Post("/{projectID}/stake", registerHandler(s.Stake))
			r.Post("/{projectID}/unstake", registerHandler(s.Unstake))
			r.Post("/{projectID}/claim", registerHandler(s.ClaimProfit))
			r.Post("/{projectID}/convert", registerHandler(s.Convert))

			r.Group(func(r chi.Router) {
				r.Use(s.adminAuthMiddleware)
				r.Post("/", registerHandler(s.CreateProject))
				r.Post("/{projectID}/activate", registerHandler(s.ActivateProject))
				r.Put("/{projectID}/state", registerHandler(s.TransitionProject))
				r.Post("/{projectID}/profit", registerHandler(s.DepositProfit))
			})
		})
	})

	return r
}

func (s *Server) Start() error {
	log.Info().Msgf("Starting api server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
