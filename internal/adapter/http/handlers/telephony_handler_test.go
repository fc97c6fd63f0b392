package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"precifica_ti/internal/adapter/http/handlers/mocks"
	"precifica_ti/internal/domain/telephony"
	"precifica_ti/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTelephonyHandler_QuotePABX(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("priced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITelephonyUseCase(ctrl)
		h := NewTelephonyHandler(uc)

		r := gin.New()
		r.POST("/v1/telephony/pabx", h.QuotePABX)

		owner := usecase.QuoteOwner{ClientName: "Prefeitura", AccountManager: "Ana"}
		in := telephony.PABXInput{Extensions: 15, DeviceRental: true, DeviceQuantity: 15}
		uc.EXPECT().QuotePABX(owner, in).Return(usecase.TelephonyQuoteResult{Priced: true, TotalSetup: 2000, TotalMonthly: 2100})

		body := `{"client_name":"Prefeitura","account_manager":"Ana","extensions":15,"device_rental":true,"device_quantity":15}`
		req := httptest.NewRequest(http.MethodPost, "/v1/telephony/pabx", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["priced"] != true || res["total_setup"] != 2000.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unpriced is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITelephonyUseCase(ctrl)
		h := NewTelephonyHandler(uc)

		r := gin.New()
		r.POST("/v1/telephony/pabx", h.QuotePABX)

		uc.EXPECT().QuotePABX(gomock.Any(), gomock.Any()).Return(usecase.TelephonyQuoteResult{})

		req := httptest.NewRequest(http.MethodPost, "/v1/telephony/pabx", bytes.NewBufferString(`{"extensions":5000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if w.Code != http.StatusOK || res["priced"] != false {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("negative extensions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITelephonyUseCase(ctrl)
		h := NewTelephonyHandler(uc)

		r := gin.New()
		r.POST("/v1/telephony/pabx", h.QuotePABX)

		req := httptest.NewRequest(http.MethodPost, "/v1/telephony/pabx", bytes.NewBufferString(`{"extensions":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTelephonyHandler_QuoteSIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("priced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITelephonyUseCase(ctrl)
		h := NewTelephonyHandler(uc)

		r := gin.New()
		r.POST("/v1/telephony/sip", h.QuoteSIP)

		in := telephony.SIPInput{PlanKey: "plano2", AdditionalChannels: 2, EquipmentRental: true}
		uc.EXPECT().QuoteSIP(gomock.Any(), in).Return(usecase.TelephonyQuoteResult{Priced: true, TotalSetup: 150, TotalMonthly: 525})

		req := httptest.NewRequest(http.MethodPost, "/v1/telephony/sip", bytes.NewBufferString(`{"plan":"plano2","additional_channels":2,"equipment_rental":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITelephonyUseCase(ctrl)
		h := NewTelephonyHandler(uc)

		r := gin.New()
		r.POST("/v1/telephony/sip", h.QuoteSIP)

		req := httptest.NewRequest(http.MethodPost, "/v1/telephony/sip", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
