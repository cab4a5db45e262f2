package services

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/terracore-io/reserve-ledger/internal/clients/oracleclient"
	"github.com/terracore-io/reserve-ledger/internal/db"
	"github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
	"github.com/terracore-io/reserve-ledger/internal/queue"
	"github.com/terracore-io/reserve-ledger/internal/types"
	"github.com/terracore-io/reserve-ledger/pkg"
)

const (
	// TokenDecimals is the fixed decimal scale of the reserve token.
	// One whole token corresponds to one gram of commodity mass.
	TokenDecimals = 7

	basisPointsDivisor = 10000

	// DustFloorAmount rejects issuances below one gram
	DustFloorAmount = uint64(10_000_000)
)

// Category weights in basis points, lowest to highest geological
// confidence. Not monotonic by design: they reflect extraction confidence,
// not category ordering.
const (
	inferredWeightBps  = 1500
	indicatedWeightBps = 3000
	measuredWeightBps  = 6000
	probableWeightBps  = 5000
	provenWeightBps    = 7000
)

var categoryWeightsBps = [5]uint64{
	inferredWeightBps,
	indicatedWeightBps,
	measuredWeightBps,
	probableWeightBps,
	provenWeightBps,
}

// MintQuote is the arithmetic of one issuance, shared by Mint and
// PreviewMint. All fields are base units of their respective instruments.
type MintQuote struct {
	Payment       uint64 `json:"payment"`
	Fee           uint64 `json:"fee"`
	Net           uint64 `json:"net"`
	NetNormalized uint64 `json:"net_normalized"`
	Price         uint64 `json:"price"`
	Issued        uint64 `json:"issued"`
}

// CapacityOf computes the issuance ceiling for a snapshot:
// weightedSum * discount / 10^8, in reserve token base units. Recomputed on
// demand, never cached past a snapshot update.
func CapacityOf(snapshot *model.ReserveSnapshot, discountBps uint64) uint64 {
	quantities := snapshot.Quantities()

	weightedSum := sdkmath.ZeroInt()
	for i, quantity := range quantities {
		weightedSum = weightedSum.Add(
			sdkmath.NewIntFromUint64(quantity).MulRaw(int64(categoryWeightsBps[i])),
		)
	}

	capacity := weightedSum.
		MulRaw(int64(discountBps)).
		QuoRaw(basisPointsDivisor * basisPointsDivisor)

	if !capacity.IsUint64() {
		return math.MaxUint64
	}
	return capacity.Uint64()
}

// scaleAmount converts an amount between decimal conventions. Scaling down
// truncates; the loss always favors the system, never the caller.
func scaleAmount(amount uint64, fromDecimals, toDecimals int) (uint64, error) {
	if fromDecimals == toDecimals {
		return amount, nil
	}

	value := sdkmath.NewIntFromUint64(amount)
	if toDecimals > fromDecimals {
		value = value.Mul(sdkmath.NewIntWithDecimal(1, toDecimals-fromDecimals))
	} else {
		value = value.Quo(sdkmath.NewIntWithDecimal(1, fromDecimals-toDecimals))
	}

	if !value.IsUint64() {
		return 0, fmt.Errorf("amount %d overflows when scaled from %d to %d decimals", amount, fromDecimals, toDecimals)
	}
	return value.Uint64(), nil
}

// computeMintQuote applies the issuance formula: fee in bps off the top,
// the net normalized to the token scale, then priced through the oracle
// quote. Every division truncates toward the system.
func (s *Service) computeMintQuote(payment, feeBps, price uint64) (*MintQuote, *types.Error) {
	if payment == 0 {
		return nil, types.NewValidationError("payment amount must be positive")
	}
	if price == 0 {
		return nil, types.NewValidationError("oracle price must be positive")
	}

	fee := sdkmath.NewIntFromUint64(payment).
		MulRaw(int64(feeBps)).
		QuoRaw(basisPointsDivisor).
		Uint64()
	net := payment - fee

	netNormalized, err := scaleAmount(net, s.cfg.Minter.PaymentDecimals, TokenDecimals)
	if err != nil {
		return nil, types.NewValidationError(err.Error())
	}

	issued := sdkmath.NewIntFromUint64(netNormalized).
		Mul(sdkmath.NewIntWithDecimal(1, oracleclient.PriceDecimals)).
		Quo(sdkmath.NewIntFromUint64(price))
	if !issued.IsUint64() {
		return nil, types.NewValidationError("issuance amount overflows")
	}

	quote := &MintQuote{
		Payment:       payment,
		Fee:           fee,
		Net:           net,
		NetNormalized: netNormalized,
		Price:         price,
		Issued:        issued.Uint64(),
	}

	if quote.Issued < DustFloorAmount {
		return nil, types.NewValidationError("issuance below the one gram dust floor")
	}

	return quote, nil
}

// Mint converts a payment into reserve token issuance. Effects, in order:
// pull the payment from the payer, forward the net to the treasury router
// (the fee stays in the minter's custody), issue the reserve token to the
// payer, then commit the counters with a capacity-qualified update.
// Capacity is evaluated at execution time: a stale preview does not
// entitle the payer to anything.
func (s *Service) Mint(ctx context.Context, payer string, payment uint64) (*MintQuote, *types.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()
	quote, serviceErr := s.mint(ctx, payer, payment)
	metrics.RecordLedgerOperationDuration(time.Since(startTime), "Mint", serviceErr != nil)
	return quote, serviceErr
}

func (s *Service) mint(ctx context.Context, payer string, payment uint64) (*MintQuote, *types.Error) {
	if err := pkg.ValidateAccountAddress(payer); err != nil {
		return nil, types.NewValidationError(err.Error())
	}

	state, err := s.db.GetMinterState(ctx)
	if err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to load minter state: %w", err))
	}

	price, err := s.oracle.CurrentPrice(ctx)
	if err != nil {
		return nil, types.NewError(http.StatusBadGateway, types.InternalServiceError, fmt.Errorf("price unavailable: %w", err))
	}

	quote, serviceErr := s.computeMintQuote(payment, state.FeeBasisPoints, price)
	if serviceErr != nil {
		return nil, serviceErr
	}

	capacity := CapacityOf(&state.Snapshot, state.DiscountBasisPoints)
	if quote.Issued > capacity || state.MintedTotal > capacity-quote.Issued {
		return nil, types.NewError(
			http.StatusConflict,
			types.CapacityExceeded,
			fmt.Errorf("issuance of %d exceeds remaining capacity %d", quote.Issued, capacity-min(capacity, state.MintedTotal)),
		)
	}

	// External effects. The payment instrument pulls require the payer's
	// pre-authorization; the treasury router pulls the net from the
	// minter's own balance.
	if err := s.tokens.Payment.Transfer(ctx, payer, s.cfg.Minter.Account, quote.Payment); err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to pull payment: %w", err))
	}
	if err := s.treasury.RouteFunds(ctx, quote.Net); err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to route net proceeds: %w", err))
	}
	if err := s.tokens.Reserve.Issue(ctx, payer, quote.Issued); err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to issue reserve tokens: %w", err))
	}

	// Commit point. The qualified filter re-checks the issuance bound so a
	// competing snapshot shrink between read and commit cannot break it.
	if err := s.db.IncrementMintedTotal(ctx, quote.Issued, quote.Fee, capacity-quote.Issued); err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewError(
				http.StatusConflict,
				types.CapacityExceeded,
				fmt.Errorf("issuance of %d no longer fits capacity %d", quote.Issued, capacity),
			)
		}
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to commit issuance: %w", err))
	}

	metrics.RecordMintedTotal(state.MintedTotal + quote.Issued)
	metrics.RecordRemainingCapacity(capacity - state.MintedTotal - quote.Issued)

	s.publishEvent(ctx, queue.Event{
		Type:  queue.EventReserveMinted,
		Actor: payer,
		Amounts: map[string]uint64{
			"payment": quote.Payment,
			"fee":     quote.Fee,
			"net":     quote.Net,
			"issued":  quote.Issued,
		},
	})

	return quote, nil
}

// PreviewMint computes the issuance a payment would produce right now,
// with no side effects and no capacity check. Preview values go stale;
// Mint re-validates everything at execution time.
func (s *Service) PreviewMint(ctx context.Context, payment uint64) (*MintQuote, *types.Error) {
	state, err := s.db.GetMinterState(ctx)
	if err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to load minter state: %w", err))
	}

	price, err := s.priceSource().CurrentPrice(ctx)
	if err != nil {
		return nil, types.NewError(http.StatusBadGateway, types.InternalServiceError, fmt.Errorf("price unavailable: %w", err))
	}

	return s.computeMintQuote(payment, state.FeeBasisPoints, price)
}

// RemainingCapacity returns how much issuance the current snapshot still
// allows
func (s *Service) RemainingCapacity(ctx context.Context) (uint64, *types.Error) {
	state, err := s.db.GetMinterState(ctx)
	if err != nil {
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to load minter state: %w", err))
	}

	capacity := CapacityOf(&state.Snapshot, state.DiscountBasisPoints)
	if state.MintedTotal >= capacity {
		return 0, nil
	}

	remaining := capacity - state.MintedTotal
	metrics.RecordRemainingCapacity(remaining)
	return remaining, nil
}
