package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/terracore-io/reserve-ledger/internal/db"
	"github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
	"github.com/terracore-io/reserve-ledger/internal/types"
	"github.com/terracore-io/reserve-ledger/testutil"
	"github.com/terracore-io/reserve-ledger/tests/mocks"
)

func TestClaimableOf(t *testing.T) {
	t.Run("pro rata share", func(t *testing.T) {
		claimable, err := claimableOf(1_000, 250, 1_000, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(250), claimable)
	})

	t.Run("high water mark subtracts prior claims", func(t *testing.T) {
		claimable, err := claimableOf(2_000, 250, 1_000, 250)
		require.NoError(t, err)
		assert.Equal(t, uint64(250), claimable)
	})

	t.Run("nothing new to claim", func(t *testing.T) {
		claimable, err := claimableOf(1_000, 250, 1_000, 250)
		require.NoError(t, err)
		assert.Zero(t, claimable)
	})

	t.Run("no stake means no share", func(t *testing.T) {
		claimable, err := claimableOf(1_000, 0, 1_000, 0)
		require.NoError(t, err)
		assert.Zero(t, claimable)

		claimable, err = claimableOf(1_000, 0, 0, 0)
		require.NoError(t, err)
		assert.Zero(t, claimable)
	})

	t.Run("truncation never over-distributes", func(t *testing.T) {
		// three equal stakers of 333 against 1000 profit: 333 each, 1 stays
		total := uint64(0)
		for range 3 {
			claimable, err := claimableOf(1_000, 333, 999, 0)
			require.NoError(t, err)
			total += claimable
		}
		assert.LessOrEqual(t, total, uint64(1_000))
	})
}

func TestDepositProfit(t *testing.T) {
	metrics.Init(9999)

	depositor := testutil.RandomAccountAddress()

	t.Run("operational project accepts profit", func(t *testing.T) {
		cfg := testConfig()
		project := activeProject(1_000_000)
		project.State = types.StateOperational

		dbMock := mocks.NewDbInterface(t)
		reserve := mocks.NewTokenInterface(t)
		qm := mocks.NewQueueInterface(t)

		dbMock.On("GetProject", mock.Anything, project.ID).Return(project, nil)
		reserve.On("Transfer", mock.Anything, depositor, cfg.Ledger.Account, uint64(50_000)).Return(nil)
		dbMock.On("AddProjectProfit", mock.Anything, project.ID, uint64(50_000)).Return(nil)
		qm.On("Publish", mock.Anything, mock.Anything).Return(nil)

		srv := NewService(cfg, dbMock, nil, TokenClients{Reserve: reserve}, nil, nil, qm)
		require.Nil(t, srv.DepositProfit(t.Context(), project.ID, depositor, 50_000))
	})

	t.Run("active project rejects profit", func(t *testing.T) {
		project := activeProject(1_000_000)

		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetProject", mock.Anything, project.ID).Return(project, nil)

		srv := NewService(testConfig(), dbMock, nil, TokenClients{Reserve: mocks.NewTokenInterface(t)}, nil, nil, nil)

		serviceErr := srv.DepositProfit(t.Context(), project.ID, depositor, 50_000)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.InvalidState, serviceErr.ErrorCode)
	})
}

func TestClaimProfit(t *testing.T) {
	metrics.Init(9999)

	account := testutil.RandomAccountAddress()

	operationalProject := func(totalStaked, totalProfit uint64) *model.ProjectDocument {
		project := activeProject(totalStaked)
		project.State = types.StateOperational
		project.TotalStaked = totalStaked
		project.TotalProfit = totalProfit
		return project
	}

	t.Run("pays the share and earmarks half as debt", func(t *testing.T) {
		cfg := testConfig()
		project := operationalProject(1_000, 4_000)

		dbMock := mocks.NewDbInterface(t)
		reserve := mocks.NewTokenInterface(t)
		qm := mocks.NewQueueInterface(t)

		dbMock.On("GetProject", mock.Anything, project.ID).Return(project, nil)
		dbMock.On("GetParticipation", mock.Anything, project.ID, account).Return(&model.ParticipationDocument{
			ProjectID:    project.ID,
			Account:      account,
			Staked:       250,
			ClaimsIssued: 250,
		}, nil)
		// 4000 * 250/1000 = 1000 claimable, 500 counted against debt
		dbMock.On("AddParticipationProfit", mock.Anything, project.ID, account, uint64(1_000), uint64(500)).Return(nil)
		reserve.On("Transfer", mock.Anything, cfg.Ledger.Account, account, uint64(1_000)).Return(nil)
		qm.On("Publish", mock.Anything, mock.Anything).Return(nil)

		srv := NewService(cfg, dbMock, nil, TokenClients{Reserve: reserve}, nil, nil, qm)

		claimed, serviceErr := srv.ClaimProfit(t.Context(), project.ID, account)
		require.Nil(t, serviceErr)
		assert.Equal(t, uint64(1_000), claimed)
	})

	t.Run("second claim with no new profit finds nothing", func(t *testing.T) {
		project := operationalProject(1_000, 4_000)

		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetProject", mock.Anything, project.ID).Return(project, nil)
		dbMock.On("GetParticipation", mock.Anything, project.ID, account).Return(&model.ParticipationDocument{
			ProjectID:     project.ID,
			Account:       account,
			Staked:        250,
			ClaimsIssued:  250,
			ProfitClaimed: 1_000,
		}, nil)

		srv := NewService(testConfig(), dbMock, nil, TokenClients{Reserve: mocks.NewTokenInterface(t)}, nil, nil, nil)

		_, serviceErr := srv.ClaimProfit(t.Context(), project.ID, account)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.InsufficientResource, serviceErr.ErrorCode)
	})

	t.Run("unknown participation", func(t *testing.T) {
		project := operationalProject(1_000, 4_000)

		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetProject", mock.Anything, project.ID).Return(project, nil)
		dbMock.On("GetParticipation", mock.Anything, project.ID, account).
			Return(nil, &db.NotFoundError{Key: account, Message: "participation not found"})

		srv := NewService(testConfig(), dbMock, nil, TokenClients{}, nil, nil, nil)

		_, serviceErr := srv.ClaimProfit(t.Context(), project.ID, account)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.NotFound, serviceErr.ErrorCode)
	})
}

func TestConvert(t *testing.T) {
	metrics.Init(9999)

	account := testutil.RandomAccountAddress()

	eligible := func() *model.ParticipationDocument {
		return &model.ParticipationDocument{
			ProjectID:    "proj-1",
			Account:      account,
			Staked:       10_000,
			ClaimsIssued: 10_000,
			DebtRepaid:   5_000,
		}
	}

	t.Run("happy path burns claims and issues equity", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		claim := mocks.NewTokenInterface(t)
		equity := mocks.NewTokenInterface(t)
		kyc := mocks.NewKycInterface(t)
		qm := mocks.NewQueueInterface(t)

		dbMock.On("GetParticipation", mock.Anything, "proj-1", account).Return(eligible(), nil)
		kyc.On("IsVerified", mock.Anything, account).Return(true, nil)
		dbMock.On("MarkParticipationConverted", mock.Anything, "proj-1", account).Return(nil)
		claim.On("Destroy", mock.Anything, account, uint64(10_000)).Return(nil)
		equity.On("Issue", mock.Anything, account, uint64(10_000)).Return(nil)
		qm.On("Publish", mock.Anything, mock.Anything).Return(nil)

		srv := NewService(testConfig(), dbMock, nil, TokenClients{Claim: claim, Equity: equity}, nil, kyc, qm)

		issued, serviceErr := srv.Convert(t.Context(), "proj-1", account)
		require.Nil(t, serviceErr)
		assert.Equal(t, uint64(10_000), issued)
	})

	t.Run("debt below threshold blocks conversion", func(t *testing.T) {
		participation := eligible()
		participation.DebtRepaid = 4_999

		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetParticipation", mock.Anything, "proj-1", account).Return(participation, nil)

		srv := NewService(testConfig(), dbMock, nil, TokenClients{}, nil, mocks.NewKycInterface(t), nil)

		_, serviceErr := srv.Convert(t.Context(), "proj-1", account)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.InvalidState, serviceErr.ErrorCode)
	})

	t.Run("odd stake rounds the debt threshold up", func(t *testing.T) {
		participation := eligible()
		participation.Staked = 10_001
		participation.DebtRepaid = 5_000 // needs 5,001

		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetParticipation", mock.Anything, "proj-1", account).Return(participation, nil)

		srv := NewService(testConfig(), dbMock, nil, TokenClients{}, nil, mocks.NewKycInterface(t), nil)

		_, serviceErr := srv.Convert(t.Context(), "proj-1", account)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.InvalidState, serviceErr.ErrorCode)
	})

	t.Run("unverified account is refused", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		kyc := mocks.NewKycInterface(t)

		dbMock.On("GetParticipation", mock.Anything, "proj-1", account).Return(eligible(), nil)
		kyc.On("IsVerified", mock.Anything, account).Return(false, nil)

		srv := NewService(testConfig(), dbMock, nil, TokenClients{}, nil, kyc, nil)

		_, serviceErr := srv.Convert(t.Context(), "proj-1", account)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.Unauthorized, serviceErr.ErrorCode)
	})

	t.Run("second conversion attempt fails", func(t *testing.T) {
		participation := eligible()
		participation.Converted = true
		participation.ClaimsIssued = 0

		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetParticipation", mock.Anything, "proj-1", account).Return(participation, nil)

		srv := NewService(testConfig(), dbMock, nil, TokenClients{}, nil, mocks.NewKycInterface(t), nil)

		_, serviceErr := srv.Convert(t.Context(), "proj-1", account)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.InvalidState, serviceErr.ErrorCode)
	})

	t.Run("concurrent conversion loses the qualified commit", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		kyc := mocks.NewKycInterface(t)

		dbMock.On("GetParticipation", mock.Anything, "proj-1", account).Return(eligible(), nil)
		kyc.On("IsVerified", mock.Anything, account).Return(true, nil)
		dbMock.On("MarkParticipationConverted", mock.Anything, "proj-1", account).
			Return(&db.NotFoundError{Key: account, Message: "already converted"})

		srv := NewService(testConfig(), dbMock, nil, TokenClients{
			Claim:  mocks.NewTokenInterface(t),
			Equity: mocks.NewTokenInterface(t),
		}, nil, kyc, nil)

		_, serviceErr := srv.Convert(t.Context(), "proj-1", account)
		require.NotNil(t, serviceErr)
		assert.Equal(t, types.InvalidState, serviceErr.ErrorCode)
	})
}
