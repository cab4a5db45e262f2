package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/terracore-io/reserve-ledger/internal/api"
	"github.com/terracore-io/reserve-ledger/internal/clients/kycclient"
	"github.com/terracore-io/reserve-ledger/internal/clients/oracleclient"
	"github.com/terracore-io/reserve-ledger/internal/clients/tokenclient"
	"github.com/terracore-io/reserve-ledger/internal/clients/treasuryclient"
	"github.com/terracore-io/reserve-ledger/internal/config"
	"github.com/terracore-io/reserve-ledger/internal/db"
	dbmodel "github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
	"github.com/terracore-io/reserve-ledger/internal/observability/tracing"
	"github.com/terracore-io/reserve-ledger/internal/queue"
	"github.com/terracore-io/reserve-ledger/internal/services"
)

const shutdownTimeout = 30 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the reserve ledger server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	oracleClient := oracleclient.NewClient(&cfg.Oracle)

	tokens := services.TokenClients{
		Payment: tokenclient.NewTokenClientWithMetrics(
			tokenclient.NewClient("payment", cfg.Tokens.PaymentURL, cfg.Tokens.Timeout)),
		Reserve: tokenclient.NewTokenClientWithMetrics(
			tokenclient.NewClient("reserve", cfg.Tokens.ReserveURL, cfg.Tokens.Timeout)),
		Claim: tokenclient.NewTokenClientWithMetrics(
			tokenclient.NewClient("claim", cfg.Tokens.ClaimURL, cfg.Tokens.Timeout)),
		Equity: tokenclient.NewTokenClientWithMetrics(
			tokenclient.NewClient("equity", cfg.Tokens.EquityURL, cfg.Tokens.Timeout)),
	}

	treasuryClient := treasuryclient.NewClient(&cfg.Treasury)
	kycClient := kycclient.NewClient(&cfg.Kyc)

	qm, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue manager")
	}
	defer qm.Shutdown()

	service := services.NewService(cfg, dbClient, oracleClient, tokens, treasuryClient, kycClient, qm)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	server := api.New(cfg, service)
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("api server terminated")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
