package usecase

import (
	"context"
	"errors"
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/telephony"
	"precifica_ti/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrInvalidProposalID    = errors.New("invalid proposal id")
	ErrInvalidProposalInput = errors.New("client name and project name are required")
	ErrInvalidProposalState = errors.New("invalid proposal status")
	ErrNoCurrentProposal    = errors.New("no current proposal")
	ErrEmptyBudget          = errors.New("budget has no items")
	ErrTelephonyNotPriced   = errors.New("telephony configuration could not be priced")
)

type ProposalInput struct {
	ClientName    string
	ClientCompany string
	ClientEmail   string
	ClientPhone   string
	ClientCNPJ    string

	ProjectName        string
	ProjectType        string
	ProjectDescription string
	DeliveryDate       string

	ManagerName       string
	ManagerEmail      string
	ManagerPhone      string
	ManagerDepartment string
}

// TelephonyBudgetInput selects the PABX and/or SIP configuration to add.
type TelephonyBudgetInput struct {
	PABX *telephony.PABXInput
	SIP  *telephony.SIPInput
}

// IProposalUseCase manages proposals and the budgets the modules add to them.
type IProposalUseCase interface {
	Create(ctx context.Context, in ProposalInput) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	SetCurrent(ctx context.Context, id string) (entities.Proposal, error)
	GetCurrent(ctx context.Context) (entities.Proposal, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
	AddBudget(ctx context.Context, id string, module entities.CommercialModule, items []entities.BudgetItem, total float64) (entities.Proposal, error)
	AddWorksheetBudget(ctx context.Context, id string, in WorksheetInput) (entities.Proposal, error)
	AddTelephonyBudget(ctx context.Context, id string, in TelephonyBudgetInput) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo      interfaces.IProposalRepository
	pricing   IPricingUseCase
	telephony ITelephonyUseCase
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, pricing IPricingUseCase, telephony ITelephonyUseCase) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, pricing: pricing, telephony: telephony}
}

// Create stores a draft proposal and makes it the current one.
func (u *ProposalUseCase) Create(ctx context.Context, in ProposalInput) (entities.Proposal, error) {
	in = trimProposalInput(in)
	if in.ClientName == "" || in.ProjectName == "" {
		return entities.Proposal{}, ErrInvalidProposalInput
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:                 uuid.NewString(),
		Status:             entities.ProposalStatusDraft,
		ClientName:         in.ClientName,
		ClientCompany:      in.ClientCompany,
		ClientEmail:        in.ClientEmail,
		ClientPhone:        in.ClientPhone,
		ClientCNPJ:         in.ClientCNPJ,
		ProjectName:        in.ProjectName,
		ProjectType:        in.ProjectType,
		ProjectDescription: in.ProjectDescription,
		DeliveryDate:       in.DeliveryDate,
		ManagerName:        in.ManagerName,
		ManagerEmail:       in.ManagerEmail,
		ManagerPhone:       in.ManagerPhone,
		ManagerDepartment:  in.ManagerDepartment,
		Budgets:            []entities.Budget{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := u.repo.SetCurrentID(ctx, created.ID); err != nil {
		return entities.Proposal{}, err
	}
	logrus.WithFields(logrus.Fields{"proposal_id": created.ID, "client": created.ClientName}).Info("[proposal][usecase] proposal created")
	return created, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) List(ctx context.Context) ([]entities.Proposal, error) {
	return u.repo.List(ctx)
}

func (u *ProposalUseCase) SetCurrent(ctx context.Context, id string) (entities.Proposal, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := u.repo.SetCurrentID(ctx, p.ID); err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (u *ProposalUseCase) GetCurrent(ctx context.Context) (entities.Proposal, error) {
	id, err := u.repo.GetCurrentID(ctx)
	if err != nil {
		return entities.Proposal{}, err
	}
	if id == "" {
		return entities.Proposal{}, ErrNoCurrentProposal
	}
	p, err := u.GetByID(ctx, id)
	if errors.Is(err, ErrProposalNotFound) {
		return entities.Proposal{}, ErrNoCurrentProposal
	}
	return p, err
}

func (u *ProposalUseCase) UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	if !status.Valid() {
		return entities.Proposal{}, ErrInvalidProposalState
	}
	p, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	logrus.WithFields(logrus.Fields{"proposal_id": id, "status": status}).Info("[proposal][usecase] status updated")
	return p, nil
}

// AddBudget appends a budget and moves the proposal to active. Existing
// budgets are never touched.
func (u *ProposalUseCase) AddBudget(ctx context.Context, id string, module entities.CommercialModule, items []entities.BudgetItem, total float64) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	if !module.Valid() {
		return entities.Proposal{}, ErrInvalidModule
	}
	if len(items) == 0 {
		return entities.Proposal{}, ErrEmptyBudget
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:         uuid.NewString(),
		ProposalID: id,
		Module:     module,
		Items:      make([]entities.BudgetItem, len(items)),
		TotalValue: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		it.Module = module
		b.Items[i] = it
	}

	p, err := u.repo.AppendBudget(ctx, id, b)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	logrus.WithFields(logrus.Fields{
		"proposal_id": id,
		"budget_id":   b.ID,
		"module":      module,
		"total":       total,
	}).Info("[proposal][usecase] budget added")
	return p, nil
}

func (u *ProposalUseCase) AddWorksheetBudget(ctx context.Context, id string, in WorksheetInput) (entities.Proposal, error) {
	res, err := u.pricing.EvaluateWorksheet(ctx, in)
	if err != nil {
		return entities.Proposal{}, err
	}
	return u.AddBudget(ctx, id, res.Module, res.BudgetItems, res.Totals.BudgetValue)
}

// AddTelephonyBudget prices the given configurations and adds their lines as
// one telephony budget. The budget total is the setup plus the first month.
func (u *ProposalUseCase) AddTelephonyBudget(ctx context.Context, id string, in TelephonyBudgetInput) (entities.Proposal, error) {
	lines, err := telephonyLines(u.telephony, in)
	if err != nil {
		return entities.Proposal{}, err
	}

	total := decimal.Zero
	items := make([]entities.BudgetItem, 0, len(lines))
	for _, l := range lines {
		lineTotal := decimal.NewFromFloat(l.Setup).Add(decimal.NewFromFloat(l.Monthly))
		total = total.Add(lineTotal)
		items = append(items, entities.BudgetItem{
			Description: l.Description,
			Quantity:    1,
			UnitPrice:   l.Monthly,
			TotalPrice:  lineTotal.InexactFloat64(),
			Setup:       l.Setup,
			Monthly:     l.Monthly,
		})
	}
	return u.AddBudget(ctx, id, entities.ModuleTelephony, items, total.InexactFloat64())
}

func trimProposalInput(in ProposalInput) ProposalInput {
	for _, f := range []*string{
		&in.ClientName, &in.ClientCompany, &in.ClientEmail, &in.ClientPhone, &in.ClientCNPJ,
		&in.ProjectName, &in.ProjectType, &in.ProjectDescription, &in.DeliveryDate,
		&in.ManagerName, &in.ManagerEmail, &in.ManagerPhone, &in.ManagerDepartment,
	} {
		*f = strings.TrimSpace(*f)
	}
	return in
}
