package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"precifica_ti/internal/domain/entities"
	mock_interfaces "precifica_ti/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedProposal() entities.Proposal {
	return entities.Proposal{
		ID:          "p1",
		Status:      entities.ProposalStatusApproved,
		ClientName:  "Prefeitura",
		ProjectName: "Rede",
		Budgets: []entities.Budget{
			{ID: "b1", TotalValue: 1000.25},
			{ID: "b2", TotalValue: 500},
		},
	}
}

type paymentMocks struct {
	repo      *mock_interfaces.MockIProposalPaymentRepository
	proposals *mock_interfaces.MockIProposalRepository
	gateway   *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(t *testing.T, opts PaymentOptions) (*ProposalPaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:      mock_interfaces.NewMockIProposalPaymentRepository(ctrl),
		proposals: mock_interfaces.NewMockIProposalRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewProposalPaymentUseCase(m.repo, m.proposals, m.gateway, opts), m
}

func echoPayment(_ context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) {
	return p, nil
}

func TestProposalPaymentUseCase_CreateAndApprove(t *testing.T) {
	validPayload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"buyer@example.com"}}`)

	t.Run("empty proposal id", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, PaymentOptions{})
		if _, err := uc.CreateAndApprove(context.Background(), " ", validPayload); !errors.Is(err, ErrInvalidPaymentProposalID) {
			t.Fatalf("expected ErrInvalidPaymentProposalID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, PaymentOptions{})
		if _, err := uc.CreateAndApprove(context.Background(), "p1", json.RawMessage(`{`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewProposalPaymentUseCase(nil, nil, nil, PaymentOptions{})
		if _, err := uc.CreateAndApprove(context.Background(), "p1", validPayload); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("proposal not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{}, nil)

		if _, err := uc.CreateAndApprove(context.Background(), "p1", validPayload); !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("proposal not approved", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		p := approvedProposal()
		p.Status = entities.ProposalStatusSent
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(p, nil)

		if _, err := uc.CreateAndApprove(context.Background(), "p1", validPayload); !errors.Is(err, ErrProposalNotApproved) {
			t.Fatalf("expected ErrProposalNotApproved, got %v", err)
		}
	})

	t.Run("proposal without value", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		p := approvedProposal()
		p.Budgets = nil
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(p, nil)

		if _, err := uc.CreateAndApprove(context.Background(), "p1", validPayload); !errors.Is(err, ErrProposalWithoutValue) {
			t.Fatalf("expected ErrProposalWithoutValue, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(approvedProposal(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "p1", json.RawMessage(`{"payer":{"email":"a@b.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("success charges the proposal total", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{AccessToken: "APP_USR-1"})
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(approvedProposal(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("gateway received invalid json: %v", err)
			}
			if req["transaction_amount"] != 1500.25 || req["external_reference"] != "p1" {
				t.Fatalf("unexpected request: %v", req)
			}
			if req["description"] != "Proposta Rede - Prefeitura" {
				t.Fatalf("unexpected description: %v", req["description"])
			}
			return "123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
		})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPayment)

		p, err := uc.CreateAndApprove(context.Background(), "p1", validPayload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "123" || p.Amount != 1500.25 || p.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.MPPayload["status"] != "approved" {
			t.Fatalf("expected parsed provider payload, got %v", p.MPPayload)
		}
	})

	t.Run("sandbox payer id is swapped for email", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{AccessToken: "TEST-1", TestPayerUserID: "999", TestPayerEmail: "sandbox@testuser.com"})
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(approvedProposal(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req struct {
				Payer map[string]any `json:"payer"`
			}
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("gateway received invalid json: %v", err)
			}
			if req.Payer["email"] != "sandbox@testuser.com" || req.Payer["id"] != nil || req.Payer["type"] != "customer" {
				t.Fatalf("unexpected payer: %v", req.Payer)
			}
			return "1", "approved", json.RawMessage(`{}`), nil
		})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPayment)

		if _, err := uc.CreateAndApprove(context.Background(), "p1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"999"}}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(approvedProposal(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		if _, err := uc.CreateAndApprove(context.Background(), "p1", validPayload); !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("mock mode skips gateway", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{Mock: true})
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(approvedProposal(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPayment)

		p, err := uc.CreateAndApprove(context.Background(), "p1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" || p.MPPayload["status"] != "approved" || p.MPPayload["external_reference"] != "p1" {
			t.Fatalf("unexpected mock payment: %+v", p)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{Mock: true})
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(approvedProposal(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ProposalPayment{}, errors.New("db"))

		if _, err := uc.CreateAndApprove(context.Background(), "p1", nil); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProposalPaymentUseCase_Queries(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.ProposalPayment{}, nil)

		if _, err := uc.GetByID(context.Background(), "x"); !errors.Is(err, ErrProposalPaymentNotFound) {
			t.Fatalf("expected ErrProposalPaymentNotFound, got %v", err)
		}
	})

	t.Run("get empty id", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, PaymentOptions{})
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("latest is the head of the history", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		m.repo.EXPECT().ListByProposalID(gomock.Any(), "p1").Return([]entities.ProposalPayment{
			{ID: "new", Date: base.Add(time.Hour)},
			{ID: "mid", Date: base.Add(time.Minute)},
			{ID: "old", Date: base},
		}, nil)

		p, err := uc.LatestByProposalID(context.Background(), "p1")
		if err != nil || p.ID != "new" {
			t.Fatalf("expected newest payment, got %+v, %v", p, err)
		}
	})

	t.Run("latest without payments", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentOptions{})
		m.repo.EXPECT().ListByProposalID(gomock.Any(), "p1").Return(nil, nil)

		if _, err := uc.LatestByProposalID(context.Background(), "p1"); !errors.Is(err, ErrProposalPaymentNotFound) {
			t.Fatalf("expected ErrProposalPaymentNotFound, got %v", err)
		}
	})
}
