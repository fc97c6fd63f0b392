package handlers

import (
	"context"
	"errors"
	"net/http"
	request "precifica_ti/internal/adapter/http/dto/request"
	"precifica_ti/internal/usecase"
	"precifica_ti/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// WorksheetHandler serves stored module worksheets.
type WorksheetHandler struct {
	usecase usecase.IWorksheetUseCase
}

func NewWorksheetHandler(uc usecase.IWorksheetUseCase) *WorksheetHandler {
	return &WorksheetHandler{usecase: uc}
}

// @Summary      Open a worksheet
// @Tags         worksheets
// @Accept       json
// @Produce      json
// @Param        payload  body      request.WorksheetRequest  true  "Module, parameters and initial items"
// @Success      201      {object}  usecase.WorksheetResult
// @Failure      400      {object}  pkg.HTTPError
// @Router       /worksheets [post]
func (h *WorksheetHandler) CreateWorksheet(c *gin.Context) {
	var payload request.WorksheetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	h.respondWorksheet(c, http.StatusCreated, func(ctx context.Context) (usecase.WorksheetResult, error) {
		return h.usecase.Create(ctx, payload.ToInput())
	})
}

// @Summary      Get a worksheet
// @Tags         worksheets
// @Produce      json
// @Param        id   path      string  true  "Worksheet ID"
// @Success      200  {object}  usecase.WorksheetResult
// @Failure      404  {object}  pkg.HTTPError
// @Router       /worksheets/{id} [get]
func (h *WorksheetHandler) GetWorksheet(c *gin.Context) {
	h.respondWorksheet(c, http.StatusOK, func(ctx context.Context) (usecase.WorksheetResult, error) {
		return h.usecase.GetByID(ctx, c.Param("id"))
	})
}

// UpdateParams changes margin, contract period or destination state. Items
// are repriced only when recalculate is true.
//
// @Summary      Edit worksheet parameters
// @Tags         worksheets
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Worksheet ID"
// @Param        payload  body      request.WorksheetParamsRequest  true  "Parameters"
// @Success      200      {object}  usecase.WorksheetResult
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /worksheets/{id}/params [patch]
func (h *WorksheetHandler) UpdateParams(c *gin.Context) {
	var payload request.WorksheetParamsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	h.respondWorksheet(c, http.StatusOK, func(ctx context.Context) (usecase.WorksheetResult, error) {
		return h.usecase.UpdateParams(ctx, c.Param("id"), payload.ToInput())
	})
}

// @Summary      Add a worksheet item
// @Tags         worksheets
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Worksheet ID"
// @Param        payload  body      request.WorksheetItemRequest  true  "Item"
// @Success      200      {object}  usecase.WorksheetResult
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /worksheets/{id}/items [post]
func (h *WorksheetHandler) AddItem(c *gin.Context) {
	var payload request.WorksheetItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	h.respondWorksheet(c, http.StatusOK, func(ctx context.Context) (usecase.WorksheetResult, error) {
		return h.usecase.AddItem(ctx, c.Param("id"), payload.ToInput())
	})
}

// @Summary      Edit a worksheet item
// @Tags         worksheets
// @Accept       json
// @Produce      json
// @Param        id       path      string                             true  "Worksheet ID"
// @Param        item_id  path      string                             true  "Item ID"
// @Param        payload  body      request.WorksheetItemPatchRequest  true  "Fields to change"
// @Success      200      {object}  usecase.WorksheetResult
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /worksheets/{id}/items/{item_id} [patch]
func (h *WorksheetHandler) UpdateItem(c *gin.Context) {
	var payload request.WorksheetItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	h.respondWorksheet(c, http.StatusOK, func(ctx context.Context) (usecase.WorksheetResult, error) {
		return h.usecase.UpdateItem(ctx, c.Param("id"), c.Param("item_id"), payload.ToPatch())
	})
}

// @Summary      Remove a worksheet item
// @Tags         worksheets
// @Produce      json
// @Param        id       path      string  true  "Worksheet ID"
// @Param        item_id  path      string  true  "Item ID"
// @Success      200      {object}  usecase.WorksheetResult
// @Failure      404      {object}  pkg.HTTPError
// @Router       /worksheets/{id}/items/{item_id} [delete]
func (h *WorksheetHandler) RemoveItem(c *gin.Context) {
	h.respondWorksheet(c, http.StatusOK, func(ctx context.Context) (usecase.WorksheetResult, error) {
		return h.usecase.RemoveItem(ctx, c.Param("id"), c.Param("item_id"))
	})
}

func (h *WorksheetHandler) respondWorksheet(
	c *gin.Context,
	status int,
	load func(ctx context.Context) (usecase.WorksheetResult, error),
) {
	res, err := load(c.Request.Context())
	if err != nil {
		appErr := mapWorksheetError(err)
		if appErr.HTTPStatus == http.StatusInternalServerError {
			logrus.WithError(err).Error("[pricing][handler] worksheet request failed")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(status, res)
}

func mapWorksheetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorksheetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorksheetNotFound):
		return pkg.NewDomainErrorSimple("WORKSHEET_NOT_FOUND", "Worksheet not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorksheetItemNotFound):
		return pkg.NewDomainErrorSimple("WORKSHEET_ITEM_NOT_FOUND", "Worksheet item not found", http.StatusNotFound)
	default:
		return mapPricingError(err)
	}
}
