package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrProposalPaymentNotFound        = errors.New("proposal payment not found")
	ErrInvalidPaymentProposalID       = errors.New("invalid proposal_id")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrProposalNotApproved            = errors.New("proposal not approved")
	ErrProposalWithoutValue           = errors.New("proposal has no budget value")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions controls how payments reach Mercado Pago.
//
// In mock mode no request leaves the service: the payment is approved locally
// and the payload may be empty.
type PaymentOptions struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IProposalPaymentUseCase charges approved proposals.
type IProposalPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, proposalID string, mpPayload json.RawMessage) (entities.ProposalPayment, error)
	GetByID(ctx context.Context, id string) (entities.ProposalPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalPayment, error)
	LatestByProposalID(ctx context.Context, proposalID string) (entities.ProposalPayment, error)
}

type ProposalPaymentUseCase struct {
	repo         interfaces.IProposalPaymentRepository
	proposalRepo interfaces.IProposalRepository
	gateway      interfaces.IPaymentGateway
	opts         PaymentOptions
}

var _ IProposalPaymentUseCase = (*ProposalPaymentUseCase)(nil)

func NewProposalPaymentUseCase(repo interfaces.IProposalPaymentRepository, proposalRepo interfaces.IProposalRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *ProposalPaymentUseCase {
	return &ProposalPaymentUseCase{repo: repo, proposalRepo: proposalRepo, gateway: gateway, opts: opts}
}

func (u *ProposalPaymentUseCase) CreateAndApprove(ctx context.Context, proposalID string, mpPayload json.RawMessage) (entities.ProposalPayment, error) {
	proposalID = strings.TrimSpace(proposalID)
	log := logrus.WithField("proposal_id", proposalID)
	log.WithField("payload_len", len(mpPayload)).Info("[payment][usecase] create-and-approve start")

	if proposalID == "" {
		return entities.ProposalPayment{}, ErrInvalidPaymentProposalID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			log.Warn("[payment][usecase] invalid payload")
			return entities.ProposalPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.Mock {
		return entities.ProposalPayment{}, ErrPaymentGatewayNotConfigured
	}

	proposal, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		log.WithError(err).Error("[payment][usecase] failed loading proposal")
		return entities.ProposalPayment{}, err
	}
	if proposal.ID == "" {
		return entities.ProposalPayment{}, ErrProposalNotFound
	}
	if proposal.Status != entities.ProposalStatusApproved {
		log.WithField("status", proposal.Status).Warn("[payment][usecase] proposal not approved")
		return entities.ProposalPayment{}, ErrProposalNotApproved
	}
	amount := proposal.Total().Round(2).InexactFloat64()
	if amount <= 0 {
		return entities.ProposalPayment{}, ErrProposalWithoutValue
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.ProposalPayment{}, ErrInvalidMPPayload
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("[payment][usecase] missing payment_method_id")
			return entities.ProposalPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn("[payment][usecase] missing/invalid payer")
			return entities.ProposalPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = proposalID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Proposta %s - %s", proposal.ProjectName, proposal.ClientName)
	}
	// The proposal total is the source of truth for the amount.
	reqMap["transaction_amount"] = amount
	if b, err := json.Marshal(reqMap); err == nil {
		mpPayload = b
	}

	var providerPaymentID string
	var providerResp json.RawMessage
	if u.opts.Mock {
		log.Info("[payment][usecase] mock mode enabled; skipping payment gateway")
		providerPaymentID, providerResp, err = mockProviderResponse(reqMap)
		if err != nil {
			return entities.ProposalPayment{}, err
		}
	} else {
		var providerStatus string
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.WithError(err).Error("[payment][usecase] payment gateway failed")
			return entities.ProposalPayment{}, mapGatewayError(err)
		}
		log.WithFields(logrus.Fields{
			"provider_payment_id": providerPaymentID,
			"provider_status":     providerStatus,
		}).Info("[payment][usecase] payment gateway success")
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.WithError(err).Warn("[payment][usecase] provider response unmarshal failed")
	}

	p := entities.ProposalPayment{
		ID:           providerPaymentID,
		ProposalID:   proposalID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.WithError(err).Error("[payment][usecase] payment repository create failed")
		return entities.ProposalPayment{}, err
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "amount": created.Amount}).Info("[payment][usecase] create-and-approve success")
	return created, nil
}

func mockProviderResponse(reqMap map[string]any) (string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(reqMap)+5)
	for k, v := range reqMap {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	return id, b, nil
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *ProposalPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

// ensurePayerDefaults fills payer.type and, in sandbox, a test payer email
// when neither id nor email were sent.
func (u *ProposalPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox accepts.
func (u *ProposalPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	logrus.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func (u *ProposalPaymentUseCase) GetByID(ctx context.Context, id string) (entities.ProposalPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProposalPayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProposalPayment{}, err
	}
	if p.ID == "" {
		return entities.ProposalPayment{}, ErrProposalPaymentNotFound
	}
	return p, nil
}

func (u *ProposalPaymentUseCase) ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalPayment, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidPaymentProposalID
	}
	return u.repo.ListByProposalID(ctx, proposalID)
}

// LatestByProposalID returns the most recent payment of a proposal. The
// repository lists history newest first.
func (u *ProposalPaymentUseCase) LatestByProposalID(ctx context.Context, proposalID string) (entities.ProposalPayment, error) {
	list, err := u.ListByProposalID(ctx, proposalID)
	if err != nil {
		return entities.ProposalPayment{}, err
	}
	if len(list) == 0 {
		return entities.ProposalPayment{}, ErrProposalPaymentNotFound
	}
	return list[0], nil
}
