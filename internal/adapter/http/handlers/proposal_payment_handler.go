package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	response "precifica_ti/internal/adapter/http/dto/response"
	"precifica_ti/internal/usecase"
	"precifica_ti/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var errPaymentNotFound = pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)

// ProposalPaymentHandler handles HTTP requests for proposal payments.
type ProposalPaymentHandler struct {
	usecase  usecase.IProposalPaymentUseCase
	mockMode bool
}

// NewProposalPaymentHandler builds the handler. In mock mode an unreadable
// body is replaced by an empty payload instead of being rejected.
func NewProposalPaymentHandler(uc usecase.IProposalPaymentUseCase, mockMode bool) *ProposalPaymentHandler {
	return &ProposalPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePaymentByProposalID creates/approves a payment using proposal_id in path.
//
// @Summary      Pay an approved proposal
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        proposal_id  path  string  true  "Proposal ID"
// @Param        payload      body  request.ProposalPaymentCreateRequest  false  "Mercado Pago payload (wrapped or bare)"
// @Success      200  {object}  response.ProposalPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payments/{proposal_id} [post]
func (h *ProposalPaymentHandler) CreatePaymentByProposalID(c *gin.Context) {
	proposalID := c.Param("proposal_id")
	log := logrus.WithField("proposal_id", proposalID)
	log.Info("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.WithError(err).Warn("[payment][handler] invalid payload")
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.WithError(err).Warn("[payment][handler] payload invalid in mock mode; fallback to empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), proposalID, mpPayload)
	if err != nil {
		log.WithError(err).Error("[payment][handler] create failed")
		appErr := mapProposalPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "status": created.Status}).Info("[payment][handler] create success")

	c.JSON(http.StatusOK, response.FromProposalPayment(created))
}

// GetPaymentByProposalID returns the latest payment for a proposal.
//
// @Summary      Latest payment of a proposal
// @Tags         payments
// @Produce      json
// @Param        proposal_id  path  string  true  "Proposal ID"
// @Success      200  {object}  response.ProposalPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{proposal_id} [get]
func (h *ProposalPaymentHandler) GetPaymentByProposalID(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	latest, err := h.usecase.LatestByProposalID(c.Request.Context(), proposalID)
	if err != nil {
		appErr := mapProposalPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.WithFields(logrus.Fields{"proposal_id": proposalID, "payment_id": latest.ID}).Debug("[payment][handler] get-by-proposal success")

	c.JSON(http.StatusOK, response.FromProposalPayment(latest))
}

// ListPaymentsByProposalID returns every payment attempt for a proposal.
//
// @Summary      Payment history of a proposal
// @Tags         payments
// @Produce      json
// @Param        proposal_id  path  string  true  "Proposal ID"
// @Success      200  {array}   response.ProposalPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments/{proposal_id}/history [get]
func (h *ProposalPaymentHandler) ListPaymentsByProposalID(c *gin.Context) {
	payments, err := h.usecase.ListByProposalID(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		appErr := mapProposalPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposalPayments(payments))
}

// GetPayment returns one payment of a proposal by its id.
//
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        proposal_id  path  string  true  "Proposal ID"
// @Param        payment_id   path  string  true  "Payment ID"
// @Success      200  {object}  response.ProposalPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{proposal_id}/records/{payment_id} [get]
func (h *ProposalPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapProposalPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if p.ProposalID != c.Param("proposal_id") {
		c.JSON(errPaymentNotFound.HTTPStatus, errPaymentNotFound.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposalPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapProposalPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentProposalID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotApproved):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_APPROVED", "Proposal not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalWithoutValue):
		return pkg.NewDomainErrorSimple("PROPOSAL_WITHOUT_VALUE", "Proposal has no budget value to charge", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProposalPaymentNotFound):
		return errPaymentNotFound
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
