package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/terracore-io/reserve-ledger/internal/db"
	"github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
	"github.com/terracore-io/reserve-ledger/internal/queue"
	"github.com/terracore-io/reserve-ledger/internal/types"
	"github.com/terracore-io/reserve-ledger/internal/utils"
	"github.com/terracore-io/reserve-ledger/pkg"
)

// CreateProject registers a new funding project in the Proposed state.
// Nothing is transferable until the project is activated.
func (s *Service) CreateProject(
	ctx context.Context,
	name, documentationURI, operator, fundingAddress string,
	fundingTarget uint64,
) (*model.ProjectDocument, *types.Error) {
	if name == "" {
		return nil, types.NewValidationError("project name is required")
	}
	if fundingTarget == 0 {
		return nil, types.NewValidationError("funding target must be positive")
	}
	if err := pkg.ValidateAccountAddress(operator); err != nil {
		return nil, types.NewValidationError(fmt.Sprintf("invalid operator: %s", err))
	}
	if err := pkg.ValidateAccountAddress(fundingAddress); err != nil {
		return nil, types.NewValidationError(fmt.Sprintf("invalid funding address: %s", err))
	}

	projectDoc := &model.ProjectDocument{
		ID:               uuid.NewString(),
		Name:             name,
		DocumentationURI: documentationURI,
		State:            types.StateProposed,
		FundingTarget:    fundingTarget,
		Operator:         operator,
		FundingAddress:   fundingAddress,
		AcceptingStakes:  false,
		CreatedAt:        time.Now().Unix(),
	}

	if err := s.db.SaveNewProject(ctx, projectDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			return nil, types.NewErrorWithMsg(http.StatusConflict, types.ValidationError, "project already exists")
		}
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to save project: %w", err))
	}

	s.publishEvent(ctx, queue.Event{
		Type:      queue.EventProjectCreated,
		Actor:     operator,
		ProjectID: projectDoc.ID,
		State:     projectDoc.State.String(),
		Amounts:   map[string]uint64{"funding_target": fundingTarget},
	})

	return projectDoc, nil
}

// ActivateProject opens a Proposed project to stakes
func (s *Service) ActivateProject(ctx context.Context, projectID string) *types.Error {
	err := s.db.UpdateProjectState(
		ctx,
		projectID,
		types.QualifiedStatesForActivate(),
		types.StateActive,
		db.WithAcceptingStakes(true),
	)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewInvalidStateError("project not found or not in the proposed state")
		}
		return types.NewInternalServiceError(fmt.Errorf("failed to activate project: %w", err))
	}

	s.publishEvent(ctx, queue.Event{
		Type:      queue.EventProjectActivated,
		ProjectID: projectID,
		State:     types.StateActive.String(),
	})
	return nil
}

// TransitionProject moves a project along the administrator-owned edges of
// the lifecycle. The Proposed->Active and Active->Funded edges have their
// own entry points and are rejected here.
func (s *Service) TransitionProject(ctx context.Context, projectID string, newState types.ProjectState) *types.Error {
	qualifiedStates := types.QualifiedStatesForTransition(newState)
	if len(qualifiedStates) == 0 {
		return types.NewValidationError(fmt.Sprintf("no administrator transition leads to state %s", newState))
	}

	opts := []db.UpdateOption{}
	if newState.IsTerminal() {
		opts = append(opts, db.WithAcceptingStakes(false))
	}

	err := s.db.UpdateProjectState(ctx, projectID, qualifiedStates, newState, opts...)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewInvalidStateError(
				fmt.Sprintf("project not found or its current state does not allow moving to %s", newState),
			)
		}
		return types.NewInternalServiceError(fmt.Errorf("failed to transition project: %w", err))
	}

	s.publishEvent(ctx, queue.Event{
		Type:      queue.EventProjectStateChanged,
		ProjectID: projectID,
		State:     newState.String(),
	})
	return nil
}

// Stake locks reserve tokens into an Active project and issues claim tokens
// one-for-one. Half the stake is forwarded to the project's funding address
// immediately; reaching the funding target closes the project to further
// stakes, accepting the triggering stake in full.
func (s *Service) Stake(ctx context.Context, projectID, staker string, amount uint64) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()
	serviceErr := s.stake(ctx, projectID, staker, amount)
	metrics.RecordLedgerOperationDuration(time.Since(startTime), "Stake", serviceErr != nil)
	return serviceErr
}

func (s *Service) stake(ctx context.Context, projectID, staker string, amount uint64) *types.Error {
	if err := pkg.ValidateAccountAddress(staker); err != nil {
		return types.NewValidationError(err.Error())
	}
	if amount == 0 {
		return types.NewValidationError("stake amount must be positive")
	}

	project, err := s.db.GetProject(ctx, projectID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "project not found")
		}
		return types.NewInternalServiceError(fmt.Errorf("failed to load project: %w", err))
	}
	if project.State != types.StateActive || !project.AcceptingStakes {
		return types.NewInvalidStateError("project is not accepting stakes")
	}

	// External effects first: custody the stake, forward half to the
	// project, issue the claim tokens. The database commit below is the
	// point of record and re-checks the accepting gate.
	if err := s.tokens.Reserve.Transfer(ctx, staker, s.cfg.Ledger.Account, amount); err != nil {
		return types.NewInternalServiceError(fmt.Errorf("failed to pull stake: %w", err))
	}
	if forward := amount / 2; forward > 0 {
		if err := s.tokens.Reserve.Transfer(ctx, s.cfg.Ledger.Account, project.FundingAddress, forward); err != nil {
			return types.NewInternalServiceError(fmt.Errorf("failed to forward funds to project: %w", err))
		}
	}
	if err := s.tokens.Claim.Issue(ctx, staker, amount); err != nil {
		return types.NewInternalServiceError(fmt.Errorf("failed to issue claim tokens: %w", err))
	}

	updated, err := s.db.AddProjectStake(ctx, projectID, amount)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewInvalidStateError("project stopped accepting stakes")
		}
		return types.NewInternalServiceError(fmt.Errorf("failed to record stake: %w", err))
	}
	if err := s.db.AddParticipationStake(ctx, projectID, staker, amount); err != nil {
		return types.NewInternalServiceError(fmt.Errorf("failed to record participation: %w", err))
	}

	s.publishEvent(ctx, queue.Event{
		Type:      queue.EventStaked,
		Actor:     staker,
		ProjectID: projectID,
		Amounts:   map[string]uint64{"amount": amount, "total_staked": updated.TotalStaked},
	})

	if updated.TotalStaked >= updated.FundingTarget {
		err := s.db.UpdateProjectState(
			ctx,
			projectID,
			[]types.ProjectState{types.StateActive},
			types.StateFunded,
			db.WithAcceptingStakes(false),
			db.WithFundedAt(time.Now().Unix()),
		)
		if err != nil {
			// The stake itself is committed; only the automatic
			// transition failed.
			log.Ctx(ctx).Error().
				Err(err).
				Str("project_id", projectID).
				Msg("failed to mark project funded after target was reached")
		} else {
			s.publishEvent(ctx, queue.Event{
				Type:      queue.EventProjectStateChanged,
				ProjectID: projectID,
				State:     types.StateFunded.String(),
				Amounts:   map[string]uint64{"total_staked": updated.TotalStaked},
			})
		}
	}

	return nil
}

// Unstake returns staked principal. While the project is still Active the
// early-exit penalty is retained in the ledger account; after a terminal
// state the principal (whatever remains accounted to the staker) comes back
// whole. The staker must still hold the matching claim tokens: a converted
// position cannot also exit through the principal door.
func (s *Service) Unstake(ctx context.Context, projectID, staker string, amount uint64) (uint64, *types.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()
	returned, serviceErr := s.unstake(ctx, projectID, staker, amount)
	metrics.RecordLedgerOperationDuration(time.Since(startTime), "Unstake", serviceErr != nil)
	return returned, serviceErr
}

func (s *Service) unstake(ctx context.Context, projectID, staker string, amount uint64) (uint64, *types.Error) {
	if err := pkg.ValidateAccountAddress(staker); err != nil {
		return 0, types.NewValidationError(err.Error())
	}
	if amount == 0 {
		return 0, types.NewValidationError("unstake amount must be positive")
	}

	project, err := s.db.GetProject(ctx, projectID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "project not found")
		}
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to load project: %w", err))
	}
	if !utils.Contains(types.QualifiedStatesForUnstake(), project.State) {
		return 0, types.NewInvalidStateError(
			fmt.Sprintf("project state %s does not allow unstaking", project.State),
		)
	}

	participation, err := s.db.GetParticipation(ctx, projectID, staker)
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "no participation for this account")
		}
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to load participation: %w", err))
	}
	if participation.Staked < amount {
		return 0, types.NewErrorWithMsg(
			http.StatusConflict,
			types.InsufficientResource,
			fmt.Sprintf("staked balance %d is less than %d", participation.Staked, amount),
		)
	}
	if participation.ClaimsIssued < amount {
		return 0, types.NewInvalidStateError("claim tokens were converted; principal is no longer withdrawable")
	}

	var penalty uint64
	if project.State == types.StateActive {
		penalty = sdkmath.NewIntFromUint64(amount).
			MulRaw(int64(s.cfg.Ledger.PenaltyBasisPoints)).
			QuoRaw(basisPointsDivisor).
			Uint64()
	}
	returned := amount - penalty

	// Commit first. The qualified filters re-check both balances, so a
	// concurrent exit cannot overdraw the position.
	if err := s.db.SubtractParticipationStake(ctx, projectID, staker, amount); err != nil {
		if db.IsNotFoundError(err) {
			return 0, types.NewErrorWithMsg(http.StatusConflict, types.InsufficientResource, "staked or claim balance insufficient")
		}
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to record unstake: %w", err))
	}
	if err := s.db.SubtractProjectStake(ctx, projectID, amount); err != nil {
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to update project stake total: %w", err))
	}

	if err := s.tokens.Claim.Destroy(ctx, staker, amount); err != nil {
		return 0, types.NewInternalServiceError(fmt.Errorf("failed to destroy claim tokens: %w", err))
	}
	if returned > 0 {
		if err := s.tokens.Reserve.Transfer(ctx, s.cfg.Ledger.Account, staker, returned); err != nil {
			return 0, types.NewInternalServiceError(fmt.Errorf("failed to return principal: %w", err))
		}
	}

	s.publishEvent(ctx, queue.Event{
		Type:      queue.EventUnstaked,
		Actor:     staker,
		ProjectID: projectID,
		Amounts:   map[string]uint64{"amount": amount, "penalty": penalty, "returned": returned},
	})

	return returned, nil
}

func (s *Service) GetProject(ctx context.Context, projectID string) (*model.ProjectDocument, *types.Error) {
	project, err := s.db.GetProject(ctx, projectID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "project not found")
		}
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to load project: %w", err))
	}
	return project, nil
}

func (s *Service) GetProjects(ctx context.Context, states []types.ProjectState) ([]*model.ProjectDocument, *types.Error) {
	projects, err := s.db.GetProjectsByStates(ctx, states)
	if err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to list projects: %w", err))
	}
	return projects, nil
}

func (s *Service) GetParticipation(ctx context.Context, projectID, account string) (*model.ParticipationDocument, *types.Error) {
	participation, err := s.db.GetParticipation(ctx, projectID, account)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "no participation for this account")
		}
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to load participation: %w", err))
	}
	return participation, nil
}

func (s *Service) GetParticipations(ctx context.Context, projectID string) ([]*model.ParticipationDocument, *types.Error) {
	participations, err := s.db.GetParticipationsByProject(ctx, projectID)
	if err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to list participations: %w", err))
	}
	return participations, nil
}
