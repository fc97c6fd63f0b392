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

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing project name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"client_name":"Prefeitura"}`))
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
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.ProposalInput) (entities.Proposal, error) {
			if in.ClientName != "Prefeitura" || in.ProjectName != "Rede" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusDraft, ClientName: in.ClientName, ProjectName: in.ProjectName}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"client_name":"Prefeitura","project_name":"Rede"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "prop-1" || body["status"] != "draft" || body["total_formatted"] != "R$ 0,00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_Lookups(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals/:id", h.GetProposal)

		uc.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/prop-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("no current proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals/current", h.GetCurrentProposal)

		uc.EXPECT().GetCurrent(gomock.Any()).Return(entities.Proposal{}, usecase.ErrNoCurrentProposal)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/current", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("set current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PUT("/v1/proposals/current", h.SetCurrentProposal)

		uc.EXPECT().SetCurrent(gomock.Any(), "prop-2").Return(entities.Proposal{ID: "prop-2"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/proposals/current", bytes.NewBufferString(`{"proposal_id":" prop-2 "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals", h.ListProposals)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Proposal{{ID: "a"}, {ID: "b"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 {
			t.Fatalf("expected two proposals, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestProposalHandler_UpdateProposalStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/status", h.UpdateProposalStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "prop-1", entities.ProposalStatus("archived")).Return(entities.Proposal{}, usecase.ErrInvalidProposalState)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-1/status", bytes.NewBufferString(`{"status":"ARCHIVED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/status", h.UpdateProposalStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "prop-1", entities.ProposalStatusApproved).
			Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-1/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProposalHandler_Budgets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("worksheet budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id/budgets", h.AddWorksheetBudget)

		uc.EXPECT().AddWorksheetBudget(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.WorksheetInput) (entities.Proposal, error) {
			if in.Module != entities.ModuleSales || len(in.Items) != 1 || in.Items[0].UnitCost != 100 {
				t.Fatalf("unexpected worksheet: %+v", in)
			}
			return entities.Proposal{
				ID:      "prop-1",
				Status:  entities.ProposalStatusActive,
				Budgets: []entities.Budget{{ID: "b1", Module: entities.ModuleSales, TotalValue: 13800}},
			}, nil
		})

		body := `{"module":"sales","destination_uf":"SP","items":[{"description":"Switch","quantity":10,"unit_cost":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["total_formatted"] != "R$ 13.800,00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("worksheet budget without module", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id/budgets", h.AddWorksheetBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/budgets", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("telephony budget not priced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id/budgets/telephony", h.AddTelephonyBudget)

		uc.EXPECT().AddTelephonyBudget(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.TelephonyBudgetInput) (entities.Proposal, error) {
			if in.PABX == nil || in.PABX.Extensions != 5000 || in.SIP != nil {
				t.Fatalf("unexpected selection: %+v", in)
			}
			return entities.Proposal{}, usecase.ErrTelephonyNotPriced
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/budgets/telephony", bytes.NewBufferString(`{"pabx":{"extensions":5000}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestMapProposalError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidProposalID, http.StatusBadRequest},
		{usecase.ErrInvalidProposalState, http.StatusBadRequest},
		{usecase.ErrInvalidProposalInput, http.StatusBadRequest},
		{usecase.ErrEmptyBudget, http.StatusBadRequest},
		{usecase.ErrInvalidModule, http.StatusBadRequest},
		{usecase.ErrInvalidContractPeriod, http.StatusBadRequest},
		{usecase.ErrTelephonyNotPriced, http.StatusUnprocessableEntity},
		{usecase.ErrProposalNotFound, http.StatusNotFound},
		{usecase.ErrNoCurrentProposal, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapProposalError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
