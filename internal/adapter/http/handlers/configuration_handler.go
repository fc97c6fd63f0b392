package handlers

import (
	"errors"
	"net/http"
	request "precifica_ti/internal/adapter/http/dto/request"
	"precifica_ti/internal/usecase"
	"precifica_ti/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConfigurationPayload = pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", "Invalid configuration payload", http.StatusBadRequest)

// ConfigurationHandler serves the tax tables, costs, labor and company data.
type ConfigurationHandler struct {
	usecase usecase.IConfigurationUseCase
}

func NewConfigurationHandler(uc usecase.IConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{usecase: uc}
}

// @Summary      Configuration snapshot
// @Tags         configuration
// @Produce      json
// @Success      200  {object}  entities.Configuration
// @Router       /configuration [get]
func (h *ConfigurationHandler) GetConfiguration(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeConfigurationError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary      Update a tax regime
// @Tags         configuration
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Tax regime ID"
// @Param        payload  body      request.TaxRegimePatchRequest  true  "Fields to change"
// @Success      200      {object}  entities.TaxRegime
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /configuration/tax-regimes/{id} [patch]
func (h *ConfigurationHandler) UpdateTaxRegime(c *gin.Context) {
	var payload request.TaxRegimePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	regime, err := h.usecase.UpdateTaxRegime(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeConfigurationError(c, err)
		return
	}
	c.JSON(http.StatusOK, regime)
}

// @Summary      Toggle a tax regime
// @Tags         configuration
// @Produce      json
// @Param        id   path      string  true  "Tax regime ID"
// @Success      200  {object}  entities.TaxRegime
// @Failure      404  {object}  pkg.HTTPError
// @Router       /configuration/tax-regimes/{id}/toggle [post]
func (h *ConfigurationHandler) ToggleTaxRegime(c *gin.Context) {
	regime, err := h.usecase.ToggleTaxRegime(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeConfigurationError(c, err)
		return
	}
	c.JSON(http.StatusOK, regime)
}

// @Summary      Active tax regime
// @Tags         configuration
// @Produce      json
// @Success      200  {object}  entities.TaxRegime
// @Failure      404  {object}  pkg.HTTPError
// @Router       /configuration/tax-regimes/active [get]
func (h *ConfigurationHandler) GetActiveTaxRegime(c *gin.Context) {
	regime, err := h.usecase.ActiveTaxRegime(c.Request.Context())
	if err != nil {
		writeConfigurationError(c, err)
		return
	}
	c.JSON(http.StatusOK, regime)
}

// @Summary      Update costs and expenses
// @Tags         configuration
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CostsExpensesPatchRequest  true  "Fields to change"
// @Success      200      {object}  entities.CostsExpenses
// @Router       /configuration/costs [patch]
func (h *ConfigurationHandler) UpdateCostsExpenses(c *gin.Context) {
	var payload request.CostsExpensesPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	costs, err := h.usecase.UpdateCostsExpenses(c.Request.Context(), payload.ToPatch())
	if err != nil {
		writeConfigurationError(c, err)
		return
	}
	c.JSON(http.StatusOK, costs)
}

// UpdateLaborCosts edits the labor inputs only; derived values are refreshed
// by CommitLaborCosts.
//
// @Summary      Update labor cost inputs
// @Tags         configuration
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LaborCostsPatchRequest  true  "Fields to change"
// @Success      200      {object}  entities.LaborCosts
// @Router       /configuration/labor [patch]
func (h *ConfigurationHandler) UpdateLaborCosts(c *gin.Context) {
	var payload request.LaborCostsPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	labor, err := h.usecase.UpdateLaborCosts(c.Request.Context(), payload.ToPatch())
	if err != nil {
		writeConfigurationError(c, err)
		return
	}
	c.JSON(http.StatusOK, labor)
}

// @Summary      Recompute labor costs
// @Tags         configuration
// @Produce      json
// @Success      200  {object}  entities.LaborCosts
// @Router       /configuration/labor/commit [post]
func (h *ConfigurationHandler) CommitLaborCosts(c *gin.Context) {
	labor, err := h.usecase.CommitLaborCosts(c.Request.Context())
	if err != nil {
		writeConfigurationError(c, err)
		return
	}
	c.JSON(http.StatusOK, labor)
}

// @Summary      Update company data
// @Tags         configuration
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CompanyDataPatchRequest  true  "Fields to change"
// @Success      200      {object}  entities.CompanyData
// @Router       /configuration/company [patch]
func (h *ConfigurationHandler) UpdateCompanyData(c *gin.Context) {
	var payload request.CompanyDataPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	company, err := h.usecase.UpdateCompanyData(c.Request.Context(), payload.ToPatch())
	if err != nil {
		writeConfigurationError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// @Summary      Update ICMS rates
// @Tags         configuration
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ICMSRatesRequest  true  "Rates per state"
// @Success      200      {object}  entities.ICMSRates
// @Failure      400      {object}  pkg.HTTPError
// @Router       /configuration/icms [patch]
func (h *ConfigurationHandler) UpdateICMSRates(c *gin.Context) {
	var payload request.ICMSRatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	rates, err := h.usecase.UpdateICMSRates(c.Request.Context(), payload.Rates)
	if err != nil {
		writeConfigurationError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

func writeConfigurationError(c *gin.Context, err error) {
	appErr := mapConfigurationError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapConfigurationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaxRegimeID), errors.Is(err, usecase.ErrInvalidPercentage),
		errors.Is(err, usecase.ErrInvalidICMSRate), errors.Is(err, usecase.ErrInvalidStateCode),
		errors.Is(err, usecase.ErrInvalidLaborSchedule):
		return pkg.NewDomainError("INVALID_CONFIGURATION_INPUT", "Invalid configuration payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaxRegimeNotFound):
		return pkg.NewDomainErrorSimple("TAX_REGIME_NOT_FOUND", "Tax regime not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoActiveTaxRegime):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_TAX_REGIME", "No tax regime is active", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
