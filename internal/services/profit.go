package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/terracore-io/reserve-ledger/internal/db"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
	"github.com/terracore-io/reserve-ledger/internal/queue"
	"github.com/terracore-io/reserve-ledger/internal/types"
	"github.com/terracore-io/reserve-ledger/internal/utils"
	"github.com/terracore-io/reserve-ledger/pkg"
)

// DepositProfit records operating profit against a project. The reserve
// tokens move into the ledger's custody and become claimable pro-rata by
// the project's stakers.
func (s *Service) DepositProfit(ctx context.Context, projectID, depositor string, amount uint64) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()
	serviceErr := s.depositProfit(ctx, projectID, depositor, amount)
	metrics.RecordLedgerOperationDuration(time.Since(startTime), "DepositProfit", serviceErr != nil)
	return serviceErr
}

func (s *Service) depositProfit(ctx context.Context, projectID, depositor string, amount uint64) *types.Error {
	if err := pkg.ValidateAccountAddress(depositor); err != nil {
		return types.NewValidationError(err.Error())
	}
	if amount == 0 {
		return types.NewValidationError("profit amount must be positive")
	}

	project, err := s.db.GetProject(ctx, projectID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "project not found")
		}
		return types.NewInternalServiceError(fmt.Errorf("failed to load project: %w", err))
	}
	if !utils.Contains(types.QualifiedStatesForProfitDeposit(), project.State) {
		return types.NewInvalidStateError(
			fmt.Sprintf("project state %s does not accept profit deposits", project.State),
		)
	}

	if err := s.tokens.Reserve.Transfer(ctx, depositor, s.cfg.Ledger.Account, amount); err != nil {
		return types.NewInternalServiceError(fmt.Errorf("failed to pull profit deposit: %w", err))
	}

	if err := s.db.AddProjectProfit(ctx, projectID, amount); err != nil {
		if db.IsNotFoundError(err) {
			return types.NewInvalidStateError("project no longer accepts profit deposits")
		}
		return types.NewInternalServiceError(fmt.Errorf("failed to record profit: %w", err))
	}

	s.publishEvent(ctx, queue.Event{
		Type:      queue.EventProfitDeposited,
		Actor:     depositor,
		ProjectID: projectID,
		Amounts:   map[string]uint64{"amount": amount},
	})

	return nil
}

// claimableOf computes the account's unclaimed pro-rata share:
// totalProfit * staked / totalStaked, minus what was already claimed.
// Truncating division leaves remainders in custody rather than
// over-distributing.
func claimableOf(totalProfit, staked, totalStaked, alreadyClaimed uint64) (uint64, error) {
	if totalStaked == 0 || staked == 0 {
		return 0, nil
	}

	share := sdkmath.NewIntFromUint64(totalProfit).
		Mul(sdkmath.NewIntFromUint64(staked)).
		Quo(sdkmath.NewIntFromUint64(totalStaked))
	if !share.IsUint64() {
		return 0, fmt.Errorf("profit share overflows")
	}

	entitled := share.Uint64()
	if entitled <= alreadyClaimed {
		return 0, nil
	}
	return entitled - alreadyClaimed, nil
}

// ClaimProfit pays the caller's accumulated pro-rata profit share. Half of
// every payout also counts as repayment of the staker's funding debt,
// advancing conversion eligibility. Claiming is idempotent: a second call
// with no new profit finds nothing to claim.
func (s *Service) ClaimProfit(ctx context.Context, projectID, account string) (uint64, *types.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()
	claimed, serviceErr := s.claimProfit(ctx, projectID, account)
	metrics.RecordLedgerOperationDuration(time.Since(startTime), "ClaimProfit", serviceErr != nil)
	return claimed, serviceErr
}

func (s *Service) claimProfit(ctx context.Context, projectID, account string) (uint64, *types.Error) {
	if err := pkg.ValidateAccountAddress(account); err != nil {
		return 0, types.NewValidationError(err.Error())
	}

	project, err := s.db.GetProject(ctx, projectID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "project not found")
		}
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to load project: %w", err))
	}

	participation, err := s.db.GetParticipation(ctx, projectID, account)
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "no participation for this account")
		}
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to load participation: %w", err))
	}

	claimable, calcErr := claimableOf(project.TotalProfit, participation.Staked, project.TotalStaked, participation.ProfitClaimed)
	if calcErr != nil {
		return 0, types.NewInternalServiceError(calcErr)
	}
	if claimable == 0 {
		return 0, types.NewErrorWithMsg(http.StatusConflict, types.InsufficientResource, "nothing to claim")
	}

	// Record first, pay second: a crash between the two leaves the payout
	// in custody and the claim already consumed, never a double payment.
	debtRepaid := claimable / 2
	if err := s.db.AddParticipationProfit(ctx, projectID, account, claimable, debtRepaid); err != nil {
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to record profit claim: %w", err))
	}
	if err := s.tokens.Reserve.Transfer(ctx, s.cfg.Ledger.Account, account, claimable); err != nil {
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to pay profit: %w", err))
	}

	s.publishEvent(ctx, queue.Event{
		Type:      queue.EventProfitClaimed,
		Actor:     account,
		ProjectID: projectID,
		Amounts:   map[string]uint64{"amount": claimable, "debt_repaid": debtRepaid},
	})

	return claimable, nil
}

// Convert exchanges the caller's claim tokens for the equity instrument,
// once the funding debt is repaid and the caller passes verification. The
// position's claim tokens are destroyed in full; the staked principal
// becomes permanent project funding.
func (s *Service) Convert(ctx context.Context, projectID, account string) (uint64, *types.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()
	converted, serviceErr := s.convert(ctx, projectID, account)
	metrics.RecordLedgerOperationDuration(time.Since(startTime), "Convert", serviceErr != nil)
	return converted, serviceErr
}

func (s *Service) convert(ctx context.Context, projectID, account string) (uint64, *types.Error) {
	if err := pkg.ValidateAccountAddress(account); err != nil {
		return 0, types.NewValidationError(err.Error())
	}

	participation, err := s.db.GetParticipation(ctx, projectID, account)
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "no participation for this account")
		}
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to load participation: %w", err))
	}

	if participation.Converted {
		return 0, types.NewInvalidStateError("position already converted")
	}
	if participation.ClaimsIssued == 0 || participation.Staked == 0 {
		return 0, types.NewInvalidStateError("no claim position to convert")
	}

	// The funding debt is half the staked principal, rounded up
	requiredDebt := (participation.Staked + 1) / 2
	if participation.DebtRepaid < requiredDebt {
		return 0, types.NewInvalidStateError(
			fmt.Sprintf("funding debt not repaid: %d of %d", participation.DebtRepaid, requiredDebt),
		)
	}

	verified, err := s.kyc.IsVerified(ctx, account)
	if err != nil {
		return 0, types.NewError(http.StatusBadGateway, types.InternalServiceError, fmt.Errorf("verification check failed: %w", err))
	}
	if !verified {
		return 0, types.NewErrorWithMsg(http.StatusForbidden, types.Unauthorized, "account is not verified for equity conversion")
	}

	claims := participation.ClaimsIssued

	// Commit first. The qualified filter makes conversion one-shot even
	// under a concurrent attempt.
	if err := s.db.MarkParticipationConverted(ctx, projectID, account); err != nil {
		if db.IsNotFoundError(err) {
			return 0, types.NewInvalidStateError("position already converted")
		}
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to record conversion: %w", err))
	}

	if err := s.tokens.Claim.Destroy(ctx, account, claims); err != nil {
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to destroy claim tokens: %w", err))
	}
	if err := s.tokens.Equity.Issue(ctx, account, claims); err != nil {
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to issue equity: %w", err))
	}

	s.publishEvent(ctx, queue.Event{
		Type:      queue.EventConverted,
		Actor:     account,
		ProjectID: projectID,
		Amounts:   map[string]uint64{"claims": claims},
	})

	return claims, nil
}
