//go:build integration

package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terracore-io/reserve-ledger/internal/db"
	"github.com/terracore-io/reserve-ledger/internal/db/model"
)

func TestMinterState(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("seeded defaults", func(t *testing.T) {
		state, err := testDB.GetMinterState(ctx)
		require.NoError(t, err)

		assert.Equal(t, model.MinterStateID, state.ID)
		assert.Zero(t, state.FeeBasisPoints)
		assert.Equal(t, uint64(10000), state.DiscountBasisPoints)
		assert.Zero(t, state.MintedTotal)
		assert.Zero(t, state.FeesCollected)
	})

	t.Run("set fee and discount", func(t *testing.T) {
		require.NoError(t, testDB.SetFeeBasisPoints(ctx, 200))
		require.NoError(t, testDB.SetDiscountBasisPoints(ctx, 8000))

		state, err := testDB.GetMinterState(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(200), state.FeeBasisPoints)
		assert.Equal(t, uint64(8000), state.DiscountBasisPoints)
	})

	t.Run("snapshot replaced wholesale", func(t *testing.T) {
		err := testDB.UpdateReserveSnapshot(ctx, &model.ReserveSnapshot{Proven: 1_000_000, Inferred: 5})
		require.NoError(t, err)
		err = testDB.UpdateReserveSnapshot(ctx, &model.ReserveSnapshot{Measured: 42})
		require.NoError(t, err)

		state, err := testDB.GetMinterState(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), state.Snapshot.Measured)
		// previous categories do not survive the replace
		assert.Zero(t, state.Snapshot.Proven)
		assert.Zero(t, state.Snapshot.Inferred)
		assert.NotZero(t, state.Snapshot.UpdatedAt)
	})
}

func TestIncrementMintedTotal(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("qualified commit accumulates", func(t *testing.T) {
		require.NoError(t, testDB.IncrementMintedTotal(ctx, 1_000, 10, 500_000))
		require.NoError(t, testDB.IncrementMintedTotal(ctx, 2_000, 20, 500_000))

		state, err := testDB.GetMinterState(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3_000), state.MintedTotal)
		assert.Equal(t, uint64(30), state.FeesCollected)
	})

	t.Run("commit past the bound is rejected", func(t *testing.T) {
		// prior minted total is 3,000; a bound of 2,999 must not qualify
		err := testDB.IncrementMintedTotal(ctx, 1_000, 10, 2_999)
		assert.True(t, db.IsNotFoundError(err))

		state, err := testDB.GetMinterState(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3_000), state.MintedTotal)
	})
}

func TestResetFeesCollected(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	require.NoError(t, testDB.IncrementMintedTotal(ctx, 1_000, 77, 1_000_000))

	held, err := testDB.ResetFeesCollected(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), held)

	// second reset finds nothing
	held, err = testDB.ResetFeesCollected(ctx)
	require.NoError(t, err)
	assert.Zero(t, held)
}
