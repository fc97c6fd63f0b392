package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"precifica_ti/internal/adapter/http/handlers/mocks"
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWorksheetRouter(t *testing.T) (*gin.Engine, *mocks.MockIWorksheetUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIWorksheetUseCase(ctrl)
	h := NewWorksheetHandler(uc)

	r := gin.New()
	r.POST("/v1/worksheets", h.CreateWorksheet)
	r.GET("/v1/worksheets/:id", h.GetWorksheet)
	r.PATCH("/v1/worksheets/:id/params", h.UpdateParams)
	r.POST("/v1/worksheets/:id/items", h.AddItem)
	r.PATCH("/v1/worksheets/:id/items/:item_id", h.UpdateItem)
	r.DELETE("/v1/worksheets/:id/items/:item_id", h.RemoveItem)
	return r, uc
}

func sampleWorksheet() usecase.WorksheetResult {
	return usecase.WorksheetResult{
		ID:     "ws-1",
		Module: entities.ModuleSales,
		Params: pricing.WorksheetParams{MarginPercent: 20, DestinationUF: "SP"},
		Totals: pricing.Totals{Items: 1, FinalPrice: 1380},
	}
}

func TestWorksheetHandler_CreateWorksheet(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := newWorksheetRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.WorksheetInput) (usecase.WorksheetResult, error) {
			if in.Module != entities.ModuleSales || len(in.Items) != 1 || in.Items[0].UnitCost != 1000 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return sampleWorksheet(), nil
		})

		body := `{"module":"sales","margin_percent":20,"destination_uf":"SP","items":[{"description":"Switch","quantity":1,"unit_cost":1000}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/worksheets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["id"] != "ws-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing module", func(t *testing.T) {
		r, _ := newWorksheetRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/worksheets", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWorksheetHandler_GetWorksheet(t *testing.T) {
	r, uc := newWorksheetRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "ws-9").Return(usecase.WorksheetResult{}, usecase.ErrWorksheetNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/worksheets/ws-9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWorksheetHandler_UpdateParams(t *testing.T) {
	r, uc := newWorksheetRouter(t)
	uc.EXPECT().UpdateParams(gomock.Any(), "ws-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, in usecase.WorksheetParamsInput) (usecase.WorksheetResult, error) {
			if in.MarginPercent == nil || *in.MarginPercent != 30 || in.ContractPeriod != nil || !in.Recalculate {
				t.Fatalf("unexpected params: %+v", in)
			}
			return sampleWorksheet(), nil
		})

	req := httptest.NewRequest(http.MethodPatch, "/v1/worksheets/ws-1/params", bytes.NewBufferString(`{"margin_percent":30,"recalculate":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestWorksheetHandler_AddItem(t *testing.T) {
	r, uc := newWorksheetRouter(t)
	uc.EXPECT().AddItem(gomock.Any(), "ws-1", gomock.Any()).Return(usecase.WorksheetResult{}, usecase.ErrInvalidPricingInput)

	req := httptest.NewRequest(http.MethodPost, "/v1/worksheets/ws-1/items", bytes.NewBufferString(`{"quantity":-1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWorksheetHandler_UpdateItem(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		r, uc := newWorksheetRouter(t)
		uc.EXPECT().UpdateItem(gomock.Any(), "ws-1", "item-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, patch pricing.ItemPatch) (usecase.WorksheetResult, error) {
				if patch.Quantity == nil || *patch.Quantity != 3 || patch.UnitCost != nil {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return sampleWorksheet(), nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/worksheets/ws-1/items/item-1", bytes.NewBufferString(`{"quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		r, uc := newWorksheetRouter(t)
		uc.EXPECT().UpdateItem(gomock.Any(), "ws-1", "item-9", gomock.Any()).Return(usecase.WorksheetResult{}, usecase.ErrWorksheetItemNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/worksheets/ws-1/items/item-9", bytes.NewBufferString(`{"quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWorksheetHandler_RemoveItem(t *testing.T) {
	r, uc := newWorksheetRouter(t)
	uc.EXPECT().RemoveItem(gomock.Any(), "ws-1", "item-1").Return(sampleWorksheet(), nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/worksheets/ws-1/items/item-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapWorksheetError(t *testing.T) {
	cases := map[error]int{
		usecase.ErrInvalidWorksheetID:    http.StatusBadRequest,
		usecase.ErrWorksheetNotFound:     http.StatusNotFound,
		usecase.ErrWorksheetItemNotFound: http.StatusNotFound,
		usecase.ErrInvalidContractPeriod: http.StatusBadRequest,
		usecase.ErrInvalidModule:         http.StatusBadRequest,
		errors.New("redis down"):         http.StatusInternalServerError,
	}
	for err, status := range cases {
		if got := mapWorksheetError(err).HTTPStatus; got != status {
			t.Fatalf("%v: expected %d, got %d", err, status, got)
		}
	}
}
