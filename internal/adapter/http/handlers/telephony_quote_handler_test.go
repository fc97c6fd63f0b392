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
	"precifica_ti/internal/domain/telephony"
	"precifica_ti/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTelephonyQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockITelephonyQuoteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITelephonyQuoteUseCase(ctrl)
	h := NewTelephonyQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/telephony/quotes", h.CreateQuote)
	r.GET("/v1/telephony/quotes", h.ListQuotes)
	r.GET("/v1/telephony/quotes/:id", h.GetQuote)
	r.POST("/v1/telephony/quotes/:id/lines", h.AddQuoteLines)
	r.DELETE("/v1/telephony/quotes/:id/lines/:line_id", h.RemoveQuoteLine)
	return r, uc
}

func sampleQuote() telephony.Quote {
	return telephony.Quote{
		ID:         "PROP-240307-AB12",
		ClientName: "Prefeitura",
		Products: []entities.TelephonyProduct{
			{ID: "l1", Description: "PABX em Nuvem para 5 ramais", Setup: 1250, Monthly: 100},
			{ID: "l2", Description: "SIP Trunk", Monthly: 150},
		},
	}
}

func TestTelephonyQuoteHandler_CreateQuote(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := newTelephonyQuoteRouter(t)

		owner := usecase.QuoteOwner{ClientName: "Prefeitura", AccountManager: "Ana"}
		uc.EXPECT().Create(gomock.Any(), owner, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ usecase.QuoteOwner, in usecase.TelephonyBudgetInput) (telephony.Quote, error) {
				if in.PABX == nil || in.PABX.Extensions != 5 || in.SIP == nil || in.SIP.PlanKey != "plano1" {
					t.Fatalf("unexpected selection: %+v", in)
				}
				return sampleQuote(), nil
			})

		body := `{"client_name":" Prefeitura ","account_manager":"Ana","pabx":{"extensions":5},"sip":{"plan":"plano1"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/telephony/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["total_setup"] != 1250.0 || res["total_monthly"] != 250.0 {
			t.Fatalf("unexpected totals: %s", w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newTelephonyQuoteRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/telephony/quotes", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unpriced selection", func(t *testing.T) {
		r, uc := newTelephonyQuoteRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(telephony.Quote{}, usecase.ErrTelephonyNotPriced)

		req := httptest.NewRequest(http.MethodPost, "/v1/telephony/quotes", bytes.NewBufferString(`{"pabx":{"extensions":5000}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestTelephonyQuoteHandler_ListQuotes(t *testing.T) {
	r, uc := newTelephonyQuoteRouter(t)
	uc.EXPECT().Search(gomock.Any(), "prefeitura").Return([]telephony.Quote{sampleQuote()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/telephony/quotes?search=prefeitura", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if len(res) != 1 || res[0]["id"] != "PROP-240307-AB12" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestTelephonyQuoteHandler_GetQuote(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, uc := newTelephonyQuoteRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "PROP-240307-AB12").Return(sampleQuote(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/telephony/quotes/PROP-240307-AB12", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newTelephonyQuoteRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "PROP-000000-0000").Return(telephony.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/telephony/quotes/PROP-000000-0000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTelephonyQuoteHandler_AddQuoteLines(t *testing.T) {
	r, uc := newTelephonyQuoteRouter(t)
	uc.EXPECT().AddLines(gomock.Any(), "PROP-240307-AB12", gomock.Any()).Return(sampleQuote(), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/telephony/quotes/PROP-240307-AB12/lines", bytes.NewBufferString(`{"sip":{"plan":"plano1"}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestTelephonyQuoteHandler_RemoveQuoteLine(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		r, uc := newTelephonyQuoteRouter(t)
		q := sampleQuote()
		q.Products = q.Products[1:]
		uc.EXPECT().RemoveLine(gomock.Any(), "PROP-240307-AB12", "l1").Return(q, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/telephony/quotes/PROP-240307-AB12/lines/l1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["total_setup"] != 0.0 || res["total_monthly"] != 150.0 {
			t.Fatalf("unexpected totals: %s", w.Body.String())
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		r, uc := newTelephonyQuoteRouter(t)
		uc.EXPECT().RemoveLine(gomock.Any(), "PROP-240307-AB12", "l9").Return(telephony.Quote{}, usecase.ErrQuoteLineNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/telephony/quotes/PROP-240307-AB12/lines/l9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapTelephonyQuoteError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidQuoteID, http.StatusBadRequest},
		{usecase.ErrEmptyBudget, http.StatusBadRequest},
		{usecase.ErrTelephonyNotPriced, http.StatusUnprocessableEntity},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{usecase.ErrQuoteLineNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapTelephonyQuoteError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
