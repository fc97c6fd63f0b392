package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"precifica_ti/internal/adapter/http/handlers/mocks"
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPricingHandler_Calculators(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sales", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/sales", h.SalesPrice)

		uc.EXPECT().SalesPrice(usecase.SalesPriceInput{UnitCost: 100, Quantity: 10, MarginPercent: 20}).
			Return(entities.PricingCalculation{BaseCost: 1000, MarginCommission: 200, Taxes: 180, FinalPrice: 1380}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/sales", bytes.NewBufferString(`{"unit_cost":100,"quantity":10,"margin_percent":20}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["final_price"] != 1380.0 || body["final_price_formatted"] != "R$ 1.380,00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("rental without period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/rental", h.RentalPrice)

		uc.EXPECT().RentalPrice(gomock.Any()).DoAndReturn(func(in usecase.RentalPriceInput) (entities.PricingCalculation, error) {
			if in.ContractPeriod != nil {
				t.Fatalf("expected absent period, got %v", *in.ContractPeriod)
			}
			return entities.PricingCalculation{BaseCost: 100, FinalPrice: 138}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/rental", bytes.NewBufferString(`{"unit_value":1200,"quantity":1,"margin_percent":20}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("rental with zero period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/rental", h.RentalPrice)

		uc.EXPECT().RentalPrice(gomock.Any()).Return(entities.PricingCalculation{}, usecase.ErrInvalidContractPeriod)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/rental", bytes.NewBufferString(`{"unit_value":1200,"quantity":1,"contract_period_months":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("services invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/services", h.ServicePrice)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/services", bytes.NewBufferString(`{"hourly_rate":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_DIFAL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/difal", h.DIFAL)

		uc.EXPECT().DIFAL(gomock.Any(), 10000.0, "SP").
			Return(usecase.DIFALResult{TotalCost: 10000, DestinationUF: "SP", DestinationRate: 18, OriginRate: 12, DIFAL: 600}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/difal", bytes.NewBufferString(`{"total_cost":10000,"destination_uf":"SP"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["difal"] != 600.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing destination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/difal", h.DIFAL)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/difal", bytes.NewBufferString(`{"total_cost":10000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_FormatCurrency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("formats value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/pricing/format", h.FormatCurrency)

		uc.EXPECT().FormatCurrency(1234.5).Return("R$ 1.234,50")

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/format?value=1234.5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["formatted"] != "R$ 1.234,50" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/pricing/format", h.FormatCurrency)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/format?value=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_EvaluateWorksheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("telephony module rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/worksheets", h.EvaluateWorksheet)

		uc.EXPECT().EvaluateWorksheet(gomock.Any(), gomock.Any()).Return(usecase.WorksheetResult{}, usecase.ErrInvalidModule)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/worksheets", bytes.NewBufferString(`{"module":"telephony"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/worksheets", h.EvaluateWorksheet)

		uc.EXPECT().EvaluateWorksheet(gomock.Any(), gomock.Any()).Return(usecase.WorksheetResult{Module: entities.ModuleServices}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/worksheets", bytes.NewBufferString(`{"module":"services","items":[{"hourly_rate":100,"total_hours":10}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapPricingError(t *testing.T) {
	if got := mapPricingError(usecase.ErrInvalidPricingInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got.HTTPStatus)
	}
	if got := mapPricingError(errors.New("db")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
}
