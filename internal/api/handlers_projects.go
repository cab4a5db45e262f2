package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/types"
)

type createProjectRequest struct {
	Name             string `json:"name"`
	DocumentationURI string `json:"documentationUri"`
	FundingTarget    uint64 `json:"fundingTarget"`
	Operator         string `json:"operator"`
	FundingAddress   string `json:"fundingAddress"`
}

type projectResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DocumentationURI string `json:"documentationUri"`
	State            string `json:"state"`
	FundingTarget    uint64 `json:"fundingTarget"`
	TotalStaked      uint64 `json:"totalStaked"`
	TotalProfit      uint64 `json:"totalProfit"`
	Operator         string `json:"operator"`
	FundingAddress   string `json:"fundingAddress"`
	AcceptingStakes  bool   `json:"acceptingStakes"`
	CreatedAt        int64  `json:"createdAt"`
	FundedAt         int64  `json:"fundedAt,omitempty"`
}

func toProjectResponse(project *model.ProjectDocument) projectResponse {
	return projectResponse{
		ID:               project.ID,
		Name:             project.Name,
		DocumentationURI: project.DocumentationURI,
		State:            project.State.String(),
		FundingTarget:    project.FundingTarget,
		TotalStaked:      project.TotalStaked,
		TotalProfit:      project.TotalProfit,
		Operator:         project.Operator,
		FundingAddress:   project.FundingAddress,
		AcceptingStakes:  project.AcceptingStakes,
		CreatedAt:        project.CreatedAt,
		FundedAt:         project.FundedAt,
	}
}

type participationResponse struct {
	ProjectID     string `json:"projectId"`
	Account       string `json:"account"`
	Staked        uint64 `json:"staked"`
	ClaimsIssued  uint64 `json:"claimsIssued"`
	ProfitClaimed uint64 `json:"profitClaimed"`
	DebtRepaid    uint64 `json:"debtRepaid"`
	Converted     bool   `json:"converted"`
}

func toParticipationResponse(p *model.ParticipationDocument) participationResponse {
	return participationResponse{
		ProjectID:     p.ProjectID,
		Account:       p.Account,
		Staked:        p.Staked,
		ClaimsIssued:  p.ClaimsIssued,
		ProfitClaimed: p.ProfitClaimed,
		DebtRepaid:    p.DebtRepaid,
		Converted:     p.Converted,
	}
}

func (s *Server) CreateProject(r *http.Request) (*Result, *types.Error) {
	var req createProjectRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	project, serviceErr := s.svc.CreateProject(
		r.Context(),
		req.Name,
		req.DocumentationURI,
		req.Operator,
		req.FundingAddress,
		req.FundingTarget,
	)
	if serviceErr != nil {
		return nil, serviceErr
	}
	return NewResultWithStatus(toProjectResponse(project), http.StatusCreated), nil
}

func (s *Server) ActivateProject(r *http.Request) (*Result, *types.Error) {
	projectID := chi.URLParam(r, "projectID")

	if serviceErr := s.svc.ActivateProject(r.Context(), projectID); serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(nil), nil
}

type transitionRequest struct {
	State string `json:"state"`
}

func (s *Server) TransitionProject(r *http.Request) (*Result, *types.Error) {
	projectID := chi.URLParam(r, "projectID")

	var req transitionRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	if serviceErr := s.svc.TransitionProject(r.Context(), projectID, types.ProjectState(req.State)); serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(nil), nil
}

func (s *Server) ListProjects(r *http.Request) (*Result, *types.Error) {
	var states []types.ProjectState
	for _, state := range r.URL.Query()["state"] {
		states = append(states, types.ProjectState(state))
	}

	projects, serviceErr := s.svc.GetProjects(r.Context(), states)
	if serviceErr != nil {
		return nil, serviceErr
	}

	resp := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		resp = append(resp, toProjectResponse(project))
	}
	return NewResult(resp), nil
}

func (s *Server) GetProject(r *http.Request) (*Result, *types.Error) {
	projectID := chi.URLParam(r, "projectID")

	project, serviceErr := s.svc.GetProject(r.Context(), projectID)
	if serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(toProjectResponse(project)), nil
}

func (s *Server) ListParticipations(r *http.Request) (*Result, *types.Error) {
	projectID := chi.URLParam(r, "projectID")

	participations, serviceErr := s.svc.GetParticipations(r.Context(), projectID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	resp := make([]participationResponse, 0, len(participations))
	for _, participation := range participations {
		resp = append(resp, toParticipationResponse(participation))
	}
	return NewResult(resp), nil
}

func (s *Server) GetParticipation(r *http.Request) (*Result, *types.Error) {
	projectID := chi.URLParam(r, "projectID")
	account := chi.URLParam(r, "account")

	participation, serviceErr := s.svc.GetParticipation(r.Context(), projectID, account)
	if serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(toParticipationResponse(participation)), nil
}

type stakeRequest struct {
	Staker string `json:"staker"`
	Amount uint64 `json:"amount"`
}

func (s *Server) Stake(r *http.Request) (*Result, *types.Error) {
	projectID := chi.URLParam(r, "projectID")

	var req stakeRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	if serviceErr := s.svc.Stake(r.Context(), projectID, req.Staker, req.Amount); serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(nil), nil
}

type unstakeResponse struct {
	Returned uint64 `json:"returned"`
}

func (s *Server) Unstake(r *http.Request) (*Result, *types.Error) {
	projectID := chi.URLParam(r, "projectID")

	var req stakeRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	returned, serviceErr := s.svc.Unstake(r.Context(), projectID, req.Staker, req.Amount)
	if serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(unstakeResponse{Returned: returned}), nil
}

type profitRequest struct {
	Depositor string `json:"depositor"`
	Amount    uint64 `json:"amount"`
}

func (s *Server) DepositProfit(r *http.Request) (*Result, *types.Error) {
	projectID := chi.URLParam(r, "projectID")

	var req profitRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	if serviceErr := s.svc.DepositProfit(r.Context(), projectID, req.Depositor, req.Amount); serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(nil), nil
}

type accountRequest struct {
	Account string `json:"account"`
}

type claimResponse struct {
	Claimed uint64 `json:"claimed"`
}

func (s *Server) ClaimProfit(r *http.Request) (*Result, *types.Error) {
	projectID := chi.URLParam(r, "projectID")

	var req accountRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	claimed, serviceErr := s.svc.ClaimProfit(r.Context(), projectID, req.Account)
	if serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(claimResponse{Claimed: claimed}), nil
}

type convertResponse struct {
	EquityIssued uint64 `json:"equityIssued"`
}

func (s *Server) Convert(r *http.Request) (*Result, *types.Error) {
	projectID := chi.URLParam(r, "projectID")

	var req accountRequest
	if err := parseRequestPayload(r, &req); err != nil {
		return nil, err
	}

	equity, serviceErr := s.svc.Convert(r.Context(), projectID, req.Account)
	if serviceErr != nil {
		return nil, serviceErr
	}
	return NewResult(convertResponse{EquityIssued: equity}), nil
}
