package handlers

import (
	"net/http"
	request "precifica_ti/internal/adapter/http/dto/request"
	"precifica_ti/internal/usecase"
	"precifica_ti/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTelephonyPayload = pkg.NewDomainErrorSimple("INVALID_TELEPHONY_INPUT", "Invalid telephony payload", http.StatusBadRequest)

// TelephonyHandler quotes PABX and SIP trunk configurations. A configuration
// outside every tier or plan is answered with priced=false, not an error.
type TelephonyHandler struct {
	usecase usecase.ITelephonyUseCase
}

func NewTelephonyHandler(uc usecase.ITelephonyUseCase) *TelephonyHandler {
	return &TelephonyHandler{usecase: uc}
}

// @Summary      Quote a cloud PABX
// @Tags         telephony
// @Accept       json
// @Produce      json
// @Param        payload  body      request.PABXRequest  true  "Extensions and add-ons"
// @Success      200      {object}  usecase.TelephonyQuoteResult
// @Failure      400      {object}  pkg.HTTPError
// @Router       /telephony/pabx [post]
func (h *TelephonyHandler) QuotePABX(c *gin.Context) {
	var payload request.PABXRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Extensions < 0 || payload.DeviceQuantity < 0 {
		c.JSON(errInvalidTelephonyPayload.HTTPStatus, errInvalidTelephonyPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, h.usecase.QuotePABX(payload.Owner(), payload.ToInput()))
}

// @Summary      Quote a SIP trunk
// @Tags         telephony
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SIPRequest  true  "Plan and add-ons"
// @Success      200      {object}  usecase.TelephonyQuoteResult
// @Failure      400      {object}  pkg.HTTPError
// @Router       /telephony/sip [post]
func (h *TelephonyHandler) QuoteSIP(c *gin.Context) {
	var payload request.SIPRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.AdditionalChannels < 0 {
		c.JSON(errInvalidTelephonyPayload.HTTPStatus, errInvalidTelephonyPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, h.usecase.QuoteSIP(payload.Owner(), payload.ToInput()))
}
