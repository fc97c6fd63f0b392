package handlers

import (
	"errors"
	"net/http"
	request "precifica_ti/internal/adapter/http/dto/request"
	response "precifica_ti/internal/adapter/http/dto/response"
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/usecase"
	"precifica_ti/pkg"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)

// PricingHandler exposes the sales, rental and service calculators, DIFAL
// and module worksheets.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// @Summary      Sales price
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SalesPriceRequest  true  "Unit cost, quantity and margin"
// @Success      200      {object}  response.PricingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /pricing/sales [post]
func (h *PricingHandler) SalesPrice(c *gin.Context) {
	var payload request.SalesPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}
	h.respondCalculation(c, func() (entities.PricingCalculation, error) {
		return h.usecase.SalesPrice(payload.ToInput())
	})
}

// @Summary      Rental price
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        payload  body      request.RentalPriceRequest  true  "Unit value, quantity, contract period and margin"
// @Success      200      {object}  response.PricingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /pricing/rental [post]
func (h *PricingHandler) RentalPrice(c *gin.Context) {
	var payload request.RentalPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}
	h.respondCalculation(c, func() (entities.PricingCalculation, error) {
		return h.usecase.RentalPrice(payload.ToInput())
	})
}

// @Summary      Service price
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ServicePriceRequest  true  "Hourly rate, hours and margin"
// @Success      200      {object}  response.PricingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /pricing/services [post]
func (h *PricingHandler) ServicePrice(c *gin.Context) {
	var payload request.ServicePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}
	h.respondCalculation(c, func() (entities.PricingCalculation, error) {
		return h.usecase.ServicePrice(payload.ToInput())
	})
}

// @Summary      Interstate ICMS difference
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        payload  body      request.DIFALRequest  true  "Total cost and destination state"
// @Success      200      {object}  usecase.DIFALResult
// @Failure      400      {object}  pkg.HTTPError
// @Router       /pricing/difal [post]
func (h *PricingHandler) DIFAL(c *gin.Context) {
	var payload request.DIFALRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.DIFAL(c.Request.Context(), payload.TotalCost, payload.DestinationUF)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

// @Summary      Format a value as BRL
// @Tags         pricing
// @Produce      json
// @Param        value  query     number  true  "Value"
// @Success      200    {object}  response.CurrencyResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /pricing/format [get]
func (h *PricingHandler) FormatCurrency(c *gin.Context) {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CurrencyResponse{Value: value, Formatted: h.usecase.FormatCurrency(value)})
}

// EvaluateWorksheet prices every item of a module worksheet without storing it.
//
// @Summary      Evaluate a worksheet
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        payload  body      request.WorksheetRequest  true  "Worksheet"
// @Success      200      {object}  usecase.WorksheetResult
// @Failure      400      {object}  pkg.HTTPError
// @Router       /pricing/worksheets [post]
func (h *PricingHandler) EvaluateWorksheet(c *gin.Context) {
	var payload request.WorksheetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.EvaluateWorksheet(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *PricingHandler) respondCalculation(c *gin.Context, calc func() (entities.PricingCalculation, error)) {
	res, err := calc()
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingCalculation(res))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPricingInput), errors.Is(err, usecase.ErrInvalidContractPeriod):
		return errInvalidPricingPayload
	case errors.Is(err, usecase.ErrInvalidModule):
		return pkg.NewDomainErrorSimple("INVALID_MODULE", "Module must be sales, rental or services", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
