//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terracore-io/reserve-ledger/internal/db"
	"github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/types"
	"github.com/terracore-io/reserve-ledger/testutil"
)

func newProjectDoc(state types.ProjectState, accepting bool) *model.ProjectDocument {
	id, _ := testutil.RandomAlphaNum(12)
	return &model.ProjectDocument{
		ID:              id,
		Name:            testutil.RandomProjectName(),
		State:           state,
		FundingTarget:   1_000_000,
		Operator:        testutil.RandomAccountAddress(),
		FundingAddress:  testutil.RandomAccountAddress(),
		AcceptingStakes: accepting,
		CreatedAt:       time.Now().Unix(),
	}
}

func TestProjects(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("save and get", func(t *testing.T) {
		doc := newProjectDoc(types.StateProposed, false)
		require.NoError(t, testDB.SaveNewProject(ctx, doc))

		stored, err := testDB.GetProject(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, doc, stored)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		doc := newProjectDoc(types.StateProposed, false)
		require.NoError(t, testDB.SaveNewProject(ctx, doc))

		err := testDB.SaveNewProject(ctx, doc)
		assert.True(t, db.IsDuplicateKeyError(err))
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := testDB.GetProject(ctx, "missing")
		assert.True(t, db.IsNotFoundError(err))
	})

	t.Run("list by states", func(t *testing.T) {
		active := newProjectDoc(types.StateActive, true)
		failed := newProjectDoc(types.StateFailed, false)
		require.NoError(t, testDB.SaveNewProject(ctx, active))
		require.NoError(t, testDB.SaveNewProject(ctx, failed))

		projects, err := testDB.GetProjectsByStates(ctx, []types.ProjectState{types.StateFailed})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, failed.ID, projects[0].ID)
	})
}

func TestUpdateProjectState(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("qualified transition applies options", func(t *testing.T) {
		doc := newProjectDoc(types.StateProposed, false)
		require.NoError(t, testDB.SaveNewProject(ctx, doc))

		err := testDB.UpdateProjectState(ctx, doc.ID,
			types.QualifiedStatesForActivate(), types.StateActive, db.WithAcceptingStakes(true))
		require.NoError(t, err)

		stored, err := testDB.GetProject(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, types.StateActive, stored.State)
		assert.True(t, stored.AcceptingStakes)
	})

	t.Run("unqualified current state", func(t *testing.T) {
		doc := newProjectDoc(types.StateOperational, false)
		require.NoError(t, testDB.SaveNewProject(ctx, doc))

		err := testDB.UpdateProjectState(ctx, doc.ID,
			types.QualifiedStatesForActivate(), types.StateActive)
		assert.True(t, db.IsNotFoundError(err))
	})
}

func TestProjectStake(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("accepting project accumulates", func(t *testing.T) {
		doc := newProjectDoc(types.StateActive, true)
		require.NoError(t, testDB.SaveNewProject(ctx, doc))

		after, err := testDB.AddProjectStake(ctx, doc.ID, 10_000)
		require.NoError(t, err)
		assert.Equal(t, uint64(10_000), after.TotalStaked)

		after, err = testDB.AddProjectStake(ctx, doc.ID, 5_000)
		require.NoError(t, err)
		assert.Equal(t, uint64(15_000), after.TotalStaked)
	})

	t.Run("closed project rejects stakes", func(t *testing.T) {
		doc := newProjectDoc(types.StateActive, false)
		require.NoError(t, testDB.SaveNewProject(ctx, doc))

		_, err := testDB.AddProjectStake(ctx, doc.ID, 10_000)
		assert.True(t, db.IsNotFoundError(err))
	})

	t.Run("subtract requires cover and qualified state", func(t *testing.T) {
		doc := newProjectDoc(types.StateActive, true)
		require.NoError(t, testDB.SaveNewProject(ctx, doc))
		_, err := testDB.AddProjectStake(ctx, doc.ID, 10_000)
		require.NoError(t, err)

		assert.True(t, db.IsNotFoundError(testDB.SubtractProjectStake(ctx, doc.ID, 20_000)))
		require.NoError(t, testDB.SubtractProjectStake(ctx, doc.ID, 4_000))

		stored, err := testDB.GetProject(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(6_000), stored.TotalStaked)
	})

	t.Run("profit only in profit-bearing states", func(t *testing.T) {
		active := newProjectDoc(types.StateActive, true)
		operational := newProjectDoc(types.StateOperational, false)
		require.NoError(t, testDB.SaveNewProject(ctx, active))
		require.NoError(t, testDB.SaveNewProject(ctx, operational))

		assert.True(t, db.IsNotFoundError(testDB.AddProjectProfit(ctx, active.ID, 1_000)))
		require.NoError(t, testDB.AddProjectProfit(ctx, operational.ID, 1_000))

		stored, err := testDB.GetProject(ctx, operational.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(1_000), stored.TotalProfit)
	})
}

func TestParticipations(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	projectID, _ := testutil.RandomAlphaNum(12)
	account := testutil.RandomAccountAddress()

	t.Run("first stake creates the record", func(t *testing.T) {
		require.NoError(t, testDB.AddParticipationStake(ctx, projectID, account, 10_000))

		participation, err := testDB.GetParticipation(ctx, projectID, account)
		require.NoError(t, err)
		assert.Equal(t, uint64(10_000), participation.Staked)
		assert.Equal(t, uint64(10_000), participation.ClaimsIssued)
		assert.NotZero(t, participation.CreatedAt)
	})

	t.Run("restake accumulates on the same record", func(t *testing.T) {
		require.NoError(t, testDB.AddParticipationStake(ctx, projectID, account, 5_000))

		participation, err := testDB.GetParticipation(ctx, projectID, account)
		require.NoError(t, err)
		assert.Equal(t, uint64(15_000), participation.Staked)
	})

	t.Run("profit claim advances debt", func(t *testing.T) {
		require.NoError(t, testDB.AddParticipationProfit(ctx, projectID, account, 1_000, 500))

		participation, err := testDB.GetParticipation(ctx, projectID, account)
		require.NoError(t, err)
		assert.Equal(t, uint64(1_000), participation.ProfitClaimed)
		assert.Equal(t, uint64(500), participation.DebtRepaid)
	})

	t.Run("unstake requires claims to cover", func(t *testing.T) {
		assert.True(t, db.IsNotFoundError(
			testDB.SubtractParticipationStake(ctx, projectID, account, 20_000)))
		require.NoError(t, testDB.SubtractParticipationStake(ctx, projectID, account, 5_000))

		participation, err := testDB.GetParticipation(ctx, projectID, account)
		require.NoError(t, err)
		assert.Equal(t, uint64(10_000), participation.Staked)
		assert.Equal(t, uint64(10_000), participation.ClaimsIssued)
	})

	t.Run("conversion is one-shot and zeroes claims", func(t *testing.T) {
		require.NoError(t, testDB.MarkParticipationConverted(ctx, projectID, account))

		participation, err := testDB.GetParticipation(ctx, projectID, account)
		require.NoError(t, err)
		assert.True(t, participation.Converted)
		assert.Zero(t, participation.ClaimsIssued)
		// record survives with its debt history
		assert.Equal(t, uint64(500), participation.DebtRepaid)

		assert.True(t, db.IsNotFoundError(
			testDB.MarkParticipationConverted(ctx, projectID, account)))
	})

	t.Run("list by project", func(t *testing.T) {
		other := testutil.RandomAccountAddress()
		require.NoError(t, testDB.AddParticipationStake(ctx, projectID, other, 1_000))

		participations, err := testDB.GetParticipationsByProject(ctx, projectID)
		require.NoError(t, err)
		assert.Len(t, participations, 2)
	})
}
