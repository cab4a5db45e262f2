package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/terracore-io/reserve-ledger/internal/config"
	"github.com/terracore-io/reserve-ledger/internal/db"
	"github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
	"github.com/terracore-io/reserve-ledger/internal/types"
	"github.com/terracore-io/reserve-ledger/testutil"
	"github.com/terracore-io/reserve-ledger/tests/mocks"
)

const priceOneToOne = uint64(100_000_000) // 1.00000000 in oracle decimals

func testConfig() *config.Config {
	return &config.Config{
		Minter: config.MinterConfig{
			Account:         "0x1111111111111111111111111111111111111111",
			PaymentDecimals: 6,
		},
		Ledger: config.LedgerConfig{
			Account:            "0x2222222222222222222222222222222222222222",
			PenaltyBasisPoints: 500,
		},
	}
}

func TestCapacityOf(t *testing.T) {
	t.Run("proven only at 8000 bps", func(t *testing.T) {
		snapshot := &model.ReserveSnapshot{Proven: 1_000_000}
		// 1,000,000 * 7000 * 8000 / 10^8 = 560,000
		assert.Equal(t, uint64(560_000), CapacityOf(snapshot, 8000))
	})

	t.Run("empty snapshot has zero capacity", func(t *testing.T) {
		assert.Zero(t, CapacityOf(&model.ReserveSnapshot{}, 10000))
	})

	t.Run("zero discount halts issuance", func(t *testing.T) {
		snapshot := &model.ReserveSnapshot{Proven: 1_000_000, Measured: 500_000}
		assert.Zero(t, CapacityOf(snapshot, 0))
	})

	t.Run("capacity is monotonic in every category", func(t *testing.T) {
		base := model.ReserveSnapshot{
			Inferred:  100,
			Indicated: 200,
			Measured:  300,
			Probable:  400,
			Proven:    500,
		}
		baseCapacity := CapacityOf(&base, 10000)

		grow := []model.ReserveSnapshot{
			{Inferred: 10_100, Indicated: 200, Measured: 300, Probable: 400, Proven: 500},
			{Inferred: 100, Indicated: 10_200, Measured: 300, Probable: 400, Proven: 500},
			{Inferred: 100, Indicated: 200, Measured: 10_300, Probable: 400, Proven: 500},
			{Inferred: 100, Indicated: 200, Measured: 300, Probable: 10_400, Proven: 500},
			{Inferred: 100, Indicated: 200, Measured: 300, Probable: 400, Proven: 10_500},
		}
		for _, snapshot := range grow {
			assert.GreaterOrEqual(t, CapacityOf(&snapshot, 10000), baseCapacity)
		}
	})
}

func TestScaleAmount(t *testing.T) {
	t.Run("scales up exactly", func(t *testing.T) {
		v, err := scaleAmount(196, 6, 7)
		require.NoError(t, err)
		assert.Equal(t, uint64(1960), v)
	})

	t.Run("scales down with truncation", func(t *testing.T) {
		v, err := scaleAmount(1_999_999, 7, 6)
		require.NoError(t, err)
		assert.Equal(t, uint64(199_999), v)
	})

	t.Run("same scale is identity", func(t *testing.T) {
		v, err := scaleAmount(42, 7, 7)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), v)
	})

	t.Run("round trip never invents value", func(t *testing.T) {
		for _, amount := range []uint64{1, 9, 1_234_567, 99_999_999} {
			down, err := scaleAmount(amount, 7, 6)
			require.NoError(t, err)
			up, err := scaleAmount(down, 6, 7)
			require.NoError(t, err)
			assert.LessOrEqual(t, up, amount)
		}
	})

	t.Run("overflow rejected", func(t *testing.T) {
		_, err := scaleAmount(1<<63, 0, 7)
		assert.Error(t, err)
	})
}

func TestComputeMintQuote(t *testing.T) {
	srv := &Service{cfg: testConfig()}

	t.Run("fee comes off the top", func(t *testing.T) {
		// 200 whole units of a 6-decimal instrument at 200 bps
		quote, serviceErr := srv.computeMintQuote(200_000_000, 200, priceOneToOne)
		require.Nil(t, serviceErr)

		assert.Equal(t, uint64(4_000_000), quote.Fee)
		assert.Equal(t, uint64(196_000_000), quote.Net)
		assert.Equal(t, uint64(1_960_000_000), quote.NetNormalized)
		// issuance is priced from the net, not the gross payment
		assert.Equal(t, uint64(1_960_000_000), quote.Issued)
	})

	t.Run("fee plus net equals payment for all rates", func(t *testing.T) {
		payment := uint64(123_456_789_000)
		for feeBps := uint64(0); feeBps <= config.MaxFeeBasisPoints; feeBps += 50 {
			quote, serviceErr := srv.computeMintQuote(payment, feeBps, priceOneToOne)
			require.Nil(t, serviceErr)
			assert.Equal(t, payment, quote.Fee+quote.Net)
		}
	})

	t.Run("dust issuance rejected", func(t *testing.T) {
		// 200 base units of the instrument prices out far below one gram
		_, serviceErr := srv.computeMintQuote(200, 200, priceOneToOne)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.ValidationError, serviceErr.ErrorCode)
	})

	t.Run("zero payment rejected", func(t *testing.T) {
		_, serviceErr := srv.computeMintQuote(0, 200, priceOneToOne)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.ValidationError, serviceErr.ErrorCode)
	})

	t.Run("zero price rejected", func(t *testing.T) {
		_, serviceErr := srv.computeMintQuote(200_000_000, 200, 0)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.ValidationError, serviceErr.ErrorCode)
	})

	t.Run("higher price issues fewer tokens", func(t *testing.T) {
		cheap, serviceErr := srv.computeMintQuote(200_000_000, 0, priceOneToOne)
		require.Nil(t, serviceErr)
		dear, serviceErr := srv.computeMintQuote(200_000_000, 0, 2*priceOneToOne)
		require.Nil(t, serviceErr)
		assert.Equal(t, cheap.Issued, 2*dear.Issued)
	})
}

func TestMint(t *testing.T) {
	metrics.Init(9999)

	payer := testutil.RandomAccountAddress()
	minterState := func() *model.MinterStateDocument {
		return &model.MinterStateDocument{
			ID:                  model.MinterStateID,
			FeeBasisPoints:      100,
			DiscountBasisPoints: 10000,
			Snapshot:            model.ReserveSnapshot{Proven: 1_000_000_000_000},
		}
	}
	// capacity = 10^12 * 7000 * 10000 / 10^8 = 7 * 10^11
	capacity := uint64(700_000_000_000)

	t.Run("happy path", func(t *testing.T) {
		ctx := t.Context()
		cfg := testConfig()

		dbMock := mocks.NewDbInterface(t)
		oracle := mocks.NewOracleInterface(t)
		payment := mocks.NewTokenInterface(t)
		reserve := mocks.NewTokenInterface(t)
		treasury := mocks.NewTreasuryInterface(t)
		qm := mocks.NewQueueInterface(t)

		dbMock.On("GetMinterState", mock.Anything).Return(minterState(), nil)
		oracle.On("CurrentPrice", mock.Anything).Return(priceOneToOne, nil)
		payment.On("Transfer", mock.Anything, payer, cfg.Minter.Account, uint64(100_000_000)).Return(nil)
		treasury.On("RouteFunds", mock.Anything, uint64(99_000_000)).Return(nil)
		reserve.On("Issue", mock.Anything, payer, uint64(990_000_000)).Return(nil)
		dbMock.On("IncrementMintedTotal", mock.Anything, uint64(990_000_000), uint64(1_000_000), capacity-990_000_000).Return(nil)
		qm.On("Publish", mock.Anything, mock.Anything).Return(nil)

		srv := NewService(cfg, dbMock, oracle, TokenClients{Payment: payment, Reserve: reserve}, treasury, nil, qm)

		quote, serviceErr := srv.Mint(ctx, payer, 100_000_000)
		require.Nil(t, serviceErr)
		assert.Equal(t, uint64(1_000_000), quote.Fee)
		assert.Equal(t, uint64(99_000_000), quote.Net)
		assert.Equal(t, uint64(990_000_000), quote.Issued)
	})

	t.Run("capacity exceeded before any transfer", func(t *testing.T) {
		ctx := t.Context()

		state := minterState()
		state.MintedTotal = capacity // fully minted out

		dbMock := mocks.NewDbInterface(t)
		oracle := mocks.NewOracleInterface(t)

		dbMock.On("GetMinterState", mock.Anything).Return(state, nil)
		oracle.On("CurrentPrice", mock.Anything).Return(priceOneToOne, nil)

		// token mocks left without expectations: any call would fail the test
		srv := NewService(testConfig(), dbMock, oracle, TokenClients{
			Payment: mocks.NewTokenInterface(t),
			Reserve: mocks.NewTokenInterface(t),
		}, mocks.NewTreasuryInterface(t), nil, nil)

		_, serviceErr := srv.Mint(ctx, payer, 100_000_000)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.CapacityExceeded, serviceErr.ErrorCode)
	})

	t.Run("qualified commit rejection maps to capacity exceeded", func(t *testing.T) {
		ctx := t.Context()
		cfg := testConfig()

		dbMock := mocks.NewDbInterface(t)
		oracle := mocks.NewOracleInterface(t)
		payment := mocks.NewTokenInterface(t)
		reserve := mocks.NewTokenInterface(t)
		treasury := mocks.NewTreasuryInterface(t)

		dbMock.On("GetMinterState", mock.Anything).Return(minterState(), nil)
		oracle.On("CurrentPrice", mock.Anything).Return(priceOneToOne, nil)
		payment.On("Transfer", mock.Anything, payer, cfg.Minter.Account, uint64(100_000_000)).Return(nil)
		treasury.On("RouteFunds", mock.Anything, uint64(99_000_000)).Return(nil)
		reserve.On("Issue", mock.Anything, payer, uint64(990_000_000)).Return(nil)
		dbMock.On("IncrementMintedTotal", mock.Anything, uint64(990_000_000), uint64(1_000_000), capacity-990_000_000).
			Return(&db.NotFoundError{Key: model.MinterStateID, Message: "minted total moved past the issuance bound"})

		srv := NewService(cfg, dbMock, oracle, TokenClients{Payment: payment, Reserve: reserve}, treasury, nil, nil)

		_, serviceErr := srv.Mint(ctx, payer, 100_000_000)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.CapacityExceeded, serviceErr.ErrorCode)
	})

	t.Run("invalid payer address", func(t *testing.T) {
		srv := NewService(testConfig(), mocks.NewDbInterface(t), nil, TokenClients{}, nil, nil, nil)

		_, serviceErr := srv.Mint(t.Context(), "not-an-address", 100_000_000)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.ValidationError, serviceErr.ErrorCode)
	})
}

func TestPreviewMint(t *testing.T) {
	metrics.Init(9999)

	t.Run("no side effects beyond reads", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		oracle := mocks.NewOracleInterface(t)

		dbMock.On("GetMinterState", mock.Anything).Return(&model.MinterStateDocument{
			FeeBasisPoints:      200,
			DiscountBasisPoints: 10000,
		}, nil)
		oracle.On("CurrentPrice", mock.Anything).Return(priceOneToOne, nil)

		srv := NewService(testConfig(), dbMock, oracle, TokenClients{}, nil, nil, nil)

		quote, serviceErr := srv.PreviewMint(t.Context(), 200_000_000)
		require.Nil(t, serviceErr)
		assert.Equal(t, uint64(4_000_000), quote.Fee)
		assert.Equal(t, uint64(196_000_000), quote.Net)
	})

	t.Run("preview ignores capacity", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		oracle := mocks.NewOracleInterface(t)

		// empty snapshot: capacity is zero, preview still quotes
		dbMock.On("GetMinterState", mock.Anything).Return(&model.MinterStateDocument{
			DiscountBasisPoints: 10000,
		}, nil)
		oracle.On("CurrentPrice", mock.Anything).Return(priceOneToOne, nil)

		srv := NewService(testConfig(), dbMock, oracle, TokenClients{}, nil, nil, nil)

		quote, serviceErr := srv.PreviewMint(t.Context(), 100_000_000)
		require.Nil(t, serviceErr)
		assert.Equal(t, uint64(1_000_000_000), quote.Issued)
	})
}

func TestRemainingCapacity(t *testing.T) {
	metrics.Init(9999)

	t.Run("subtracts minted total", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetMinterState", mock.Anything).Return(&model.MinterStateDocument{
			DiscountBasisPoints: 8000,
			MintedTotal:         100_000,
			Snapshot:            model.ReserveSnapshot{Proven: 1_000_000},
		}, nil)

		srv := NewService(testConfig(), dbMock, nil, TokenClients{}, nil, nil, nil)

		remaining, serviceErr := srv.RemainingCapacity(t.Context())
		require.Nil(t, serviceErr)
		assert.Equal(t, uint64(460_000), remaining)
	})

	t.Run("clamps at zero after a snapshot shrink", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetMinterState", mock.Anything).Return(&model.MinterStateDocument{
			DiscountBasisPoints: 8000,
			MintedTotal:         600_000,
			Snapshot:            model.ReserveSnapshot{Proven: 1_000_000},
		}, nil)

		srv := NewService(testConfig(), dbMock, nil, TokenClients{}, nil, nil, nil)

		remaining, serviceErr := srv.RemainingCapacity(t.Context())
		require.Nil(t, serviceErr)
		assert.Zero(t, remaining)
	})
}
