package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/terracore-io/reserve-ledger/internal/clients/kycclient"
	"github.com/terracore-io/reserve-ledger/internal/clients/oracleclient"
	"github.com/terracore-io/reserve-ledger/internal/clients/tokenclient"
	"github.com/terracore-io/reserve-ledger/internal/clients/treasuryclient"
	"github.com/terracore-io/reserve-ledger/internal/config"
	"github.com/terracore-io/reserve-ledger/internal/db"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
	"github.com/terracore-io/reserve-ledger/internal/queue"
)

// TokenClients groups the four external token ledgers the service talks to
type TokenClients struct {
	Payment tokenclient.TokenInterface
	Reserve tokenclient.TokenInterface
	Claim   tokenclient.TokenInterface
	Equity  tokenclient.TokenInterface
}

type Service struct {
	cfg          *config.Config
	db           db.DbInterface
	oracle       oracleclient.OracleInterface
	tokens       TokenClients
	treasury     treasuryclient.TreasuryInterface
	kyc          kycclient.KycInterface
	queueManager queue.QueueInterface

	// mu is the re-entry guard required by the execution model: mutating
	// entry points must not be re-enterable through a nested call
	// triggered by an external transfer.
	mu sync.Mutex
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	oracle oracleclient.OracleInterface,
	tokens TokenClients,
	treasury treasuryclient.TreasuryInterface,
	kyc kycclient.KycInterface,
	qm queue.QueueInterface,
) *Service {
	return &Service{
		cfg:          cfg,
		db:           db,
		oracle:       oracle,
		tokens:       tokens,
		treasury:     treasury,
		kyc:          kyc,
		queueManager: qm,
	}
}

// HealthCheck verifies the database connection is alive
func (s *Service) HealthCheck(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// priceSource resolves the current oracle client. Callers already holding
// the service mutex must read s.oracle directly instead.
func (s *Service) priceSource() oracleclient.OracleInterface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.oracle
}

// publishEvent emits the structured notification for a committed
// operation. A publish failure is logged and counted, never rolled back:
// the operation itself is already final.
func (s *Service) publishEvent(ctx context.Context, event queue.Event) {
	if s.queueManager == nil {
		return
	}

	if err := s.queueManager.Publish(ctx, event); err != nil {
		metrics.IncQueueSendErrors()
		log.Ctx(ctx).Error().
			Err(err).
			Str("event_type", event.Type.String()).
			Msg("failed to publish event")
	}
}
