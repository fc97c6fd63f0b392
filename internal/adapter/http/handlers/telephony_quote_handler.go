package handlers

import (
	"context"
	"errors"
	"net/http"
	request "precifica_ti/internal/adapter/http/dto/request"
	response "precifica_ti/internal/adapter/http/dto/response"
	"precifica_ti/internal/domain/telephony"
	"precifica_ti/internal/usecase"
	"precifica_ti/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TelephonyQuoteHandler serves stored telephony quotes.
type TelephonyQuoteHandler struct {
	usecase usecase.ITelephonyQuoteUseCase
}

func NewTelephonyQuoteHandler(uc usecase.ITelephonyQuoteUseCase) *TelephonyQuoteHandler {
	return &TelephonyQuoteHandler{usecase: uc}
}

// @Summary      Open a telephony quote
// @Tags         telephony
// @Accept       json
// @Produce      json
// @Param        payload  body      request.TelephonyQuoteRequest  true  "Owner and PABX and/or SIP selection"
// @Success      201      {object}  response.TelephonyQuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /telephony/quotes [post]
func (h *TelephonyQuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.TelephonyQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTelephonyPayload.HTTPStatus, errInvalidTelephonyPayload.ToHTTPError())
		return
	}

	h.respondQuote(c, http.StatusCreated, func(ctx context.Context) (telephony.Quote, error) {
		return h.usecase.Create(ctx, payload.Owner(), payload.ToInput())
	})
}

// @Summary      Search telephony quotes
// @Tags         telephony
// @Produce      json
// @Param        search  query     string  false  "Client name or quote id fragment"
// @Success      200     {array}   response.TelephonyQuoteResponse
// @Router       /telephony/quotes [get]
func (h *TelephonyQuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapTelephonyQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTelephonyQuotes(quotes))
}

// @Summary      Get a telephony quote
// @Tags         telephony
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.TelephonyQuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /telephony/quotes/{id} [get]
func (h *TelephonyQuoteHandler) GetQuote(c *gin.Context) {
	h.respondQuote(c, http.StatusOK, func(ctx context.Context) (telephony.Quote, error) {
		return h.usecase.GetByID(ctx, c.Param("id"))
	})
}

// @Summary      Add lines to a telephony quote
// @Tags         telephony
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Quote ID"
// @Param        payload  body      request.TelephonyBudgetRequest  true  "PABX and/or SIP selection"
// @Success      200      {object}  response.TelephonyQuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /telephony/quotes/{id}/lines [post]
func (h *TelephonyQuoteHandler) AddQuoteLines(c *gin.Context) {
	var payload request.TelephonyBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTelephonyPayload.HTTPStatus, errInvalidTelephonyPayload.ToHTTPError())
		return
	}

	h.respondQuote(c, http.StatusOK, func(ctx context.Context) (telephony.Quote, error) {
		return h.usecase.AddLines(ctx, c.Param("id"), payload.ToInput())
	})
}

// @Summary      Remove a line from a telephony quote
// @Tags         telephony
// @Produce      json
// @Param        id       path      string  true  "Quote ID"
// @Param        line_id  path      string  true  "Line ID"
// @Success      200      {object}  response.TelephonyQuoteResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /telephony/quotes/{id}/lines/{line_id} [delete]
func (h *TelephonyQuoteHandler) RemoveQuoteLine(c *gin.Context) {
	h.respondQuote(c, http.StatusOK, func(ctx context.Context) (telephony.Quote, error) {
		return h.usecase.RemoveLine(ctx, c.Param("id"), c.Param("line_id"))
	})
}

func (h *TelephonyQuoteHandler) respondQuote(
	c *gin.Context,
	status int,
	load func(ctx context.Context) (telephony.Quote, error),
) {
	q, err := load(c.Request.Context())
	if err != nil {
		appErr := mapTelephonyQuoteError(err)
		if appErr.HTTPStatus == http.StatusInternalServerError {
			logrus.WithError(err).Error("[telephony][handler] quote request failed")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(status, response.FromTelephonyQuote(q))
}

func mapTelephonyQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyBudget):
		return errInvalidTelephonyPayload
	case errors.Is(err, usecase.ErrTelephonyNotPriced):
		return pkg.NewDomainErrorSimple("TELEPHONY_NOT_PRICED", "No tier or plan matches the telephony configuration", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Telephony quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteLineNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_LINE_NOT_FOUND", "Telephony quote line not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
