package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/terracore-io/reserve-ledger/internal/clients/oracleclient"
	"github.com/terracore-io/reserve-ledger/internal/config"
	"github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
	"github.com/terracore-io/reserve-ledger/internal/queue"
	"github.com/terracore-io/reserve-ledger/internal/types"
	"github.com/terracore-io/reserve-ledger/pkg"
)

// ReserveQuantities carries the five attested category quantities of a
// snapshot update, in grams.
type ReserveQuantities struct {
	Inferred  uint64 `json:"inferred"`
	Indicated uint64 `json:"indicated"`
	Measured  uint64 `json:"measured"`
	Probable  uint64 `json:"probable"`
	Proven    uint64 `json:"proven"`
}

// UpdateReserves replaces the reserve snapshot wholesale. Shrinking the
// snapshot below the minted total is allowed: existing issuance stands,
// further minting halts until capacity recovers.
func (s *Service) UpdateReserves(ctx context.Context, quantities ReserveQuantities) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()
	serviceErr := s.updateReserves(ctx, quantities)
	metrics.RecordLedgerOperationDuration(time.Since(startTime), "UpdateReserves", serviceErr != nil)
	return serviceErr
}

func (s *Service) updateReserves(ctx context.Context, quantities ReserveQuantities) *types.Error {
	snapshot := model.ReserveSnapshot{
		Inferred:  quantities.Inferred,
		Indicated: quantities.Indicated,
		Measured:  quantities.Measured,
		Probable:  quantities.Probable,
		Proven:    quantities.Proven,
	}

	if err := s.db.UpdateReserveSnapshot(ctx, &snapshot); err != nil {
		return types.NewInternalServiceError(fmt.Errorf("failed to update reserve snapshot: %w", err))
	}

	state, err := s.db.GetMinterState(ctx)
	if err != nil {
		return types.NewInternalServiceError(fmt.Errorf("failed to reload minter state: %w", err))
	}

	capacity := CapacityOf(&state.Snapshot, state.DiscountBasisPoints)
	if state.MintedTotal >= capacity {
		log.Ctx(ctx).Warn().
			Uint64("minted_total", state.MintedTotal).
			Uint64("capacity", capacity).
			Msg("snapshot shrank below minted total, minting is halted")
		metrics.RecordRemainingCapacity(0)
	} else {
		metrics.RecordRemainingCapacity(capacity - state.MintedTotal)
	}

	s.publishEvent(ctx, queue.Event{
		Type: queue.EventReserveSnapshotUpdated,
		Amounts: map[string]uint64{
			"inferred":  quantities.Inferred,
			"indicated": quantities.Indicated,
			"measured":  quantities.Measured,
			"probable":  quantities.Probable,
			"proven":    quantities.Proven,
			"capacity":  capacity,
		},
	})

	return nil
}

// SetFee updates the issuance fee, bounded at 10% to keep a misconfigured
// operator from confiscating payments.
func (s *Service) SetFee(ctx context.Context, feeBps uint64) *types.Error {
	if feeBps > config.MaxFeeBasisPoints {
		return types.NewValidationError(
			fmt.Sprintf("fee of %d basis points exceeds the maximum of %d", feeBps, config.MaxFeeBasisPoints),
		)
	}

	if err := s.db.SetFeeBasisPoints(ctx, feeBps); err != nil {
		return types.NewInternalServiceError(fmt.Errorf("failed to set fee: %w", err))
	}

	s.publishEvent(ctx, queue.Event{
		Type:    queue.EventFeeUpdated,
		Amounts: map[string]uint64{"fee_basis_points": feeBps},
	})
	return nil
}

// SetDiscountFactor updates the global capacity discount. 10000 basis
// points means no discount; 0 halts all minting.
func (s *Service) SetDiscountFactor(ctx context.Context, discountBps uint64) *types.Error {
	if discountBps > config.MaxDiscountBasisPoints {
		return types.NewValidationError(
			fmt.Sprintf("discount of %d basis points exceeds the maximum of %d", discountBps, config.MaxDiscountBasisPoints),
		)
	}

	if err := s.db.SetDiscountBasisPoints(ctx, discountBps); err != nil {
		return types.NewInternalServiceError(fmt.Errorf("failed to set discount: %w", err))
	}

	s.publishEvent(ctx, queue.Event{
		Type:    queue.EventDiscountUpdated,
		Amounts: map[string]uint64{"discount_basis_points": discountBps},
	})
	return nil
}

// SetOracle repoints the price source at a new oracle endpoint, keeping
// the configured timeout and retry policy. Takes effect on the next quote;
// the configured URL is restored on restart.
func (s *Service) SetOracle(ctx context.Context, rawURL string) *types.Error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return types.NewValidationError("oracle url must be absolute")
	}

	oracleCfg := s.cfg.Oracle
	oracleCfg.URL = rawURL

	s.mu.Lock()
	s.oracle = oracleclient.NewClient(&oracleCfg)
	s.mu.Unlock()

	log.Ctx(ctx).Info().
		Str("oracle_url", rawURL).
		Msg("oracle reference updated")

	s.publishEvent(ctx, queue.Event{Type: queue.EventOracleUpdated})
	return nil
}

// WithdrawFees moves the accumulated payment-token fees to the given
// destination. The counter is reset before the transfer so a transfer
// failure can never allow a double withdrawal.
func (s *Service) WithdrawFees(ctx context.Context, destination string) (uint64, *types.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()
	amount, serviceErr := s.withdrawFees(ctx, destination)
	metrics.RecordLedgerOperationDuration(time.Since(startTime), "WithdrawFees", serviceErr != nil)
	return amount, serviceErr
}

func (s *Service) withdrawFees(ctx context.Context, destination string) (uint64, *types.Error) {
	if err := pkg.ValidateAccountAddress(destination); err != nil {
		return 0, types.NewValidationError(err.Error())
	}

	amount, err := s.db.ResetFeesCollected(ctx)
	if err != nil {
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to reset fee counter: %w", err))
	}
	if amount == 0 {
		return 0, types.NewErrorWithMsg(http.StatusConflict, types.InsufficientResource, "no fees to withdraw")
	}

	if err := s.tokens.Payment.Transfer(ctx, s.cfg.Minter.Account, destination, amount); err != nil {
		// The counter is already zeroed. The fees stay in the minter
		// account and the failure is surfaced for manual follow-up.
		log.Ctx(ctx).Error().
			Err(err).
			Uint64("amount", amount).
			Str("destination", destination).
			Msg("fee transfer failed after counter reset")
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to transfer fees: %w", err))
	}

	s.publishEvent(ctx, queue.Event{
		Type:    queue.EventFeesWithdrawn,
		Actor:   destination,
		Amounts: map[string]uint64{"amount": amount},
	})

	return amount, nil
}
