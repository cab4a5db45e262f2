package db

import (
	"context"

	"github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/types"
)

type DbInterface interface {
	Ping(ctx context.Context) error

	GetMinterState(ctx context.Context) (*model.MinterStateDocument, error)
	UpdateReserveSnapshot(ctx context.Context, snapshot *model.ReserveSnapshot) error
	SetFeeBasisPoints(ctx context.Context, feeBps uint64) error
	SetDiscountBasisPoints(ctx context.Context, discountBps uint64) error
	IncrementMintedTotal(ctx context.Context, issued, fee, maxPriorMinted uint64) error
	ResetFeesCollected(ctx context.Context) (uint64, error)

	SaveNewProject(ctx context.Context, projectDoc *model.ProjectDocument) error
	GetProject(ctx context.Context, projectID string) (*model.ProjectDocument, error)
	GetProjectsByStates(ctx context.Context, states []types.ProjectState) ([]*model.ProjectDocument, error)
	UpdateProjectState(ctx context.Context, projectID string, qualifiedPreviousStates []types.ProjectState, newState types.ProjectState, opts ...UpdateOption) error
	AddProjectStake(ctx context.Context, projectID string, amount uint64) (*model.ProjectDocument, error)
	SubtractProjectStake(ctx context.Context, projectID string, amount uint64) error
	AddProjectProfit(ctx context.Context, projectID string, amount uint64) error

	GetParticipation(ctx context.Context, projectID, account string) (*model.ParticipationDocument, error)
	GetParticipationsByProject(ctx context.Context, projectID string) ([]*model.ParticipationDocument, error)
	AddParticipationStake(ctx context.Context, projectID, account string, amount uint64) error
	SubtractParticipationStake(ctx context.Context, projectID, account string, amount uint64) error
	AddParticipationProfit(ctx context.Context, projectID, account string, claimed, debtRepaid uint64) error
	MarkParticipationConverted(ctx context.Context, projectID, account string) error
}
