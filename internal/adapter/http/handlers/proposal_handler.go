package handlers

import (
	"context"
	"errors"
	"net/http"
	request "precifica_ti/internal/adapter/http/dto/request"
	response "precifica_ti/internal/adapter/http/dto/response"
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/usecase"
	"precifica_ti/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errInvalidBudgetPayload   = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// ProposalHandler handles HTTP requests for proposals and their budgets.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal stores a draft proposal and makes it the current one.
//
// @Summary      Create a proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ProposalRequest  true  "Proposal"
// @Success      201      {object}  response.ProposalResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.WithField("proposal_id", proposal.ID).Info("[proposal][handler] created")

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

// ListProposals returns every proposal, newest first.
//
// @Summary      List proposals
// @Tags         proposals
// @Produce      json
// @Success      200  {array}  response.ProposalResponse
// @Router       /proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(list))
}

// @Summary      Get a proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {object}  response.ProposalResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	h.respondProposal(c, http.StatusOK, func(ctx context.Context) (entities.Proposal, error) {
		return h.usecase.GetByID(ctx, c.Param("id"))
	})
}

// @Summary      Current proposal
// @Tags         proposals
// @Produce      json
// @Success      200  {object}  response.ProposalResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /proposals/current [get]
func (h *ProposalHandler) GetCurrentProposal(c *gin.Context) {
	h.respondProposal(c, http.StatusOK, h.usecase.GetCurrent)
}

// @Summary      Select the current proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CurrentProposalRequest  true  "Proposal to select"
// @Success      200      {object}  response.ProposalResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /proposals/current [put]
func (h *ProposalHandler) SetCurrentProposal(c *gin.Context) {
	var payload request.CurrentProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	h.respondProposal(c, http.StatusOK, func(ctx context.Context) (entities.Proposal, error) {
		return h.usecase.SetCurrent(ctx, payload.ResolveID())
	})
}

// @Summary      Change a proposal status
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Proposal ID"
// @Param        payload  body      request.ProposalStatusRequest  true  "draft, active, sent, approved or rejected"
// @Success      200      {object}  response.ProposalResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /proposals/{id}/status [patch]
func (h *ProposalHandler) UpdateProposalStatus(c *gin.Context) {
	var payload request.ProposalStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	h.respondProposal(c, http.StatusOK, func(ctx context.Context) (entities.Proposal, error) {
		return h.usecase.UpdateStatus(ctx, c.Param("id"), payload.ResolveStatus())
	})
}

// AddWorksheetBudget prices a sales, rental or services worksheet and adds
// it to the proposal as a budget.
//
// @Summary      Add a worksheet budget
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Proposal ID"
// @Param        payload  body      request.WorksheetRequest  true  "Worksheet"
// @Success      201      {object}  response.ProposalResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /proposals/{id}/budgets [post]
func (h *ProposalHandler) AddWorksheetBudget(c *gin.Context) {
	var payload request.WorksheetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	h.respondProposal(c, http.StatusCreated, func(ctx context.Context) (entities.Proposal, error) {
		return h.usecase.AddWorksheetBudget(ctx, c.Param("id"), payload.ToInput())
	})
}

// @Summary      Add a telephony budget
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Proposal ID"
// @Param        payload  body      request.TelephonyBudgetRequest  true  "PABX and/or SIP selection"
// @Success      201      {object}  response.ProposalResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /proposals/{id}/budgets/telephony [post]
func (h *ProposalHandler) AddTelephonyBudget(c *gin.Context) {
	var payload request.TelephonyBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	h.respondProposal(c, http.StatusCreated, func(ctx context.Context) (entities.Proposal, error) {
		return h.usecase.AddTelephonyBudget(ctx, c.Param("id"), payload.ToInput())
	})
}

func (h *ProposalHandler) respondProposal(
	c *gin.Context,
	status int,
	load func(ctx context.Context) (entities.Proposal, error),
) {
	proposal, err := load(c.Request.Context())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(status, response.FromProposal(proposal))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidProposalState):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProposalInput):
		return errInvalidProposalPayload
	case errors.Is(err, usecase.ErrEmptyBudget), errors.Is(err, usecase.ErrInvalidModule),
		errors.Is(err, usecase.ErrInvalidPricingInput), errors.Is(err, usecase.ErrInvalidContractPeriod):
		return errInvalidBudgetPayload
	case errors.Is(err, usecase.ErrTelephonyNotPriced):
		return pkg.NewDomainErrorSimple("TELEPHONY_NOT_PRICED", "No tier or plan matches the telephony configuration", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoCurrentProposal):
		return pkg.NewDomainErrorSimple("NO_CURRENT_PROPOSAL", "No proposal is selected", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
