package db

import (
	"context"
	"time"

	"github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
	"github.com/terracore-io/reserve-ledger/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) GetMinterState(ctx context.Context) (result *model.MinterStateDocument, err error) {
	//nolint:errcheck
	d.run("GetMinterState", func() error {
		result, err = d.db.GetMinterState(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateReserveSnapshot(ctx context.Context, snapshot *model.ReserveSnapshot) error {
	return d.run("UpdateReserveSnapshot", func() error {
		return d.db.UpdateReserveSnapshot(ctx, snapshot)
	})
}

func (d *DbWithMetrics) SetFeeBasisPoints(ctx context.Context, feeBps uint64) error {
	return d.run("SetFeeBasisPoints", func() error {
		return d.db.SetFeeBasisPoints(ctx, feeBps)
	})
}

func (d *DbWithMetrics) SetDiscountBasisPoints(ctx context.Context, discountBps uint64) error {
	return d.run("SetDiscountBasisPoints", func() error {
		return d.db.SetDiscountBasisPoints(ctx, discountBps)
	})
}

func (d *DbWithMetrics) IncrementMintedTotal(ctx context.Context, issued, fee, maxPriorMinted uint64) error {
	return d.run("IncrementMintedTotal", func() error {
		return d.db.IncrementMintedTotal(ctx, issued, fee, maxPriorMinted)
	})
}

func (d *DbWithMetrics) ResetFeesCollected(ctx context.Context) (result uint64, err error) {
	//nolint:errcheck
	d.run("ResetFeesCollected", func() error {
		result, err = d.db.ResetFeesCollected(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveNewProject(ctx context.Context, projectDoc *model.ProjectDocument) error {
	return d.run("SaveNewProject", func() error {
		return d.db.SaveNewProject(ctx, projectDoc)
	})
}

func (d *DbWithMetrics) GetProject(ctx context.Context, projectID string) (result *model.ProjectDocument, err error) {
	//nolint:errcheck
	d.run("GetProject", func() error {
		result, err = d.db.GetProject(ctx, projectID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetProjectsByStates(ctx context.Context, states []types.ProjectState) (result []*model.ProjectDocument, err error) {
	//nolint:errcheck
	d.run("GetProjectsByStates", func() error {
		result, err = d.db.GetProjectsByStates(ctx, states)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateProjectState(ctx context.Context, projectID string, qualifiedPreviousStates []types.ProjectState, newState types.ProjectState, opts ...UpdateOption) error {
	return d.run("UpdateProjectState", func() error {
		return d.db.UpdateProjectState(ctx, projectID, qualifiedPreviousStates, newState, opts...)
	})
}

func (d *DbWithMetrics) AddProjectStake(ctx context.Context, projectID string, amount uint64) (result *model.ProjectDocument, err error) {
	//nolint:errcheck
	d.run("AddProjectStake", func() error {
		result, err = d.db.AddProjectStake(ctx, projectID, amount)
		return err
	})
	return
}

func (d *DbWithMetrics) SubtractProjectStake(ctx context.Context, projectID string, amount uint64) error {
	return d.run("SubtractProjectStake", func() error {
		return d.db.SubtractProjectStake(ctx, projectID, amount)
	})
}

func (d *DbWithMetrics) AddProjectProfit(ctx context.Context, projectID string, amount uint64) error {
	return d.run("AddProjectProfit", func() error {
		return d.db.AddProjectProfit(ctx, projectID, amount)
	})
}

func (d *DbWithMetrics) GetParticipation(ctx context.Context, projectID, account string) (result *model.ParticipationDocument, err error) {
	//nolint:errcheck
	d.run("GetParticipation", func() error {
		result, err = d.db.GetParticipation(ctx, projectID, account)
		return err
	})
	return
}

func (d *DbWithMetrics) GetParticipationsByProject(ctx context.Context, projectID string) (result []*model.ParticipationDocument, err error) {
	//nolint:errcheck
	d.run("GetParticipationsByProject", func() error {
		result, err = d.db.GetParticipationsByProject(ctx, projectID)
		return err
	})
	return
}

func (d *DbWithMetrics) AddParticipationStake(ctx context.Context, projectID, account string, amount uint64) error {
	return d.run("AddParticipationStake", func() error {
		return d.db.AddParticipationStake(ctx, projectID, account, amount)
	})
}

func (d *DbWithMetrics) SubtractParticipationStake(ctx context.Context, projectID, account string, amount uint64) error {
	return d.run("SubtractParticipationStake", func() error {
		return d.db.SubtractParticipationStake(ctx, projectID, account, amount)
	})
}

func (d *DbWithMetrics) AddParticipationProfit(ctx context.Context, projectID, account string, claimed, debtRepaid uint64) error {
	return d.run("AddParticipationProfit", func() error {
		return d.db.AddParticipationProfit(ctx, projectID, account, claimed, debtRepaid)
	})
}

func (d *DbWithMetrics) MarkParticipationConverted(ctx context.Context, projectID, account string) error {
	return d.run("MarkParticipationConverted", func() error {
		return d.db.MarkParticipationConverted(ctx, projectID, account)
	})
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	metrics.RecordDbLatency(time.Since(startTime), method, err != nil)
	return err
}

// compile-time check that the wrapper keeps up with the interface
var _ DbInterface = (*DbWithMetrics)(nil)
