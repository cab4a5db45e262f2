package api

import (
	"net/http"
	"strconv"

	"github.com/terracore-io/reserve-ledger/internal/services"
	"github.com/terracore-io/reserve-ledger/internal/types"
)

type mintRequest struct {
	Payer   string `json:"payer"`
	Payment uint64 `json:"payment"`
}

func (s *Server) Mint(r *http.Request) (*Result, *types.Error) {
	var req mintRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	quote, serviceErr := s.svc.Mint(r.Context(), req.Payer, req.Payment)
	if serviceErr != nil {
		return nil, serviceErr
	}
	return NewResultWithStatus(quote, http.StatusCreated), nil
}

func (s *Server) PreviewMint(r *http.Request) (*Result, *types.Error) {
	paymentStr := r.URL.Query().Get("payment")
	payment, err := strconv.ParseUint(paymentStr, 10, 64)
	if err != nil {
		return nil, types.NewValidationError("payment query parameter must be a positive integer")
	}

	quote, serviceErr := s.svc.PreviewMint(r.Context(), payment)
	if serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(quote), nil
}

type capacityResponse struct {
	Remaining uint64 `json:"remaining"`
}

func (s *Server) Capacity(r *http.Request) (*Result, *types.Error) {
	remaining, serviceErr := s.svc.RemainingCapacity(r.Context())
	if serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(capacityResponse{Remaining: remaining}), nil
}

func (s *Server) UpdateReserves(r *http.Request) (*Result, *types.Error) {
	var req services.ReserveQuantities
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	if serviceErr := s.svc.UpdateReserves(r.Context(), req); serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(nil), nil
}

type feeRequest struct {
	FeeBasisPoints uint64 `json:"feeBasisPoints"`
}

func (s *Server) SetFee(r *http.Request) (*Result, *types.Error) {
	var req feeRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	if serviceErr := s.svc.SetFee(r.Context(), req.FeeBasisPoints); serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(nil), nil
}

type discountRequest struct {
	DiscountBasisPoints uint64 `json:"discountBasisPoints"`
}

func (s *Server) SetDiscount(r *http.Request) (*Result, *types.Error) {
	var req discountRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	if serviceErr := s.svc.SetDiscountFactor(r.Context(), req.DiscountBasisPoints); serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(nil), nil
}

type oracleRequest struct {
	URL string `json:"url"`
}

func (s *Server) SetOracle(r *http.Request) (*Result, *types.Error) {
	var req oracleRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	if serviceErr := s.svc.SetOracle(r.Context(), req.URL); serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(nil), nil
}

type withdrawFeesRequest struct {
	Destination string `json:"destination"`
}

type withdrawFeesResponse struct {
	Amount uint64 `json:"amount"`
}

func (s *Server) WithdrawFees(r *http.Request) (*Result, *types.Error) {
	var req withdrawFeesRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	amount, serviceErr := s.svc.WithdrawFees(r.Context(), req.Destination)
	if serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(withdrawFeesResponse{Amount: amount}), nil
}

type healthcheckResponse struct {
	Status string `json:"status"`
}

func (s *Server) HealthCheck(r *http.Request) (*Result, *types.Error) {
	if err := s.svc.HealthCheck(r.Context()); err != nil {
		return nil, types.NewError(http.StatusServiceUnavailable, types.InternalServiceError, err)
	}
	return NewResult(healthcheckResponse{Status: "ok"}), nil
}
