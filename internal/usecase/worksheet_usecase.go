package usecase

import (
	"context"
	"errors"
	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrWorksheetNotFound     = errors.New("worksheet not found")
	ErrWorksheetItemNotFound = errors.New("worksheet item not found")
	ErrInvalidWorksheetID    = errors.New("invalid worksheet id")
)

// WorksheetParamsInput edits the module parameters; nil fields keep their
// value. Existing items are repriced only when Recalculate is set.
type WorksheetParamsInput struct {
	MarginPercent  *float64
	ContractPeriod *float64
	DestinationUF  *string
	Recalculate    bool
}

// IWorksheetUseCase keeps module worksheets between requests so their items
// can be edited one at a time.
type IWorksheetUseCase interface {
	Create(ctx context.Context, in WorksheetInput) (WorksheetResult, error)
	GetByID(ctx context.Context, id string) (WorksheetResult, error)
	AddItem(ctx context.Context, id string, item pricing.ItemInput) (WorksheetResult, error)
	UpdateItem(ctx context.Context, id, itemID string, patch pricing.ItemPatch) (WorksheetResult, error)
	RemoveItem(ctx context.Context, id, itemID string) (WorksheetResult, error)
	UpdateParams(ctx context.Context, id string, in WorksheetParamsInput) (WorksheetResult, error)
}

type WorksheetUseCase struct {
	repo    interfaces.IWorksheetRepository
	pricing *PricingUseCase
	newID   func() string
	now     func() time.Time
}

var _ IWorksheetUseCase = (*WorksheetUseCase)(nil)

func NewWorksheetUseCase(repo interfaces.IWorksheetRepository, pricing *PricingUseCase) *WorksheetUseCase {
	return &WorksheetUseCase{repo: repo, pricing: pricing, newID: uuid.NewString, now: time.Now}
}

func (u *WorksheetUseCase) Create(ctx context.Context, in WorksheetInput) (WorksheetResult, error) {
	ws, err := u.pricing.buildWorksheet(ctx, in)
	if err != nil {
		return WorksheetResult{}, err
	}
	id := u.newID()
	if err := u.save(ctx, id, ws); err != nil {
		return WorksheetResult{}, err
	}
	logrus.WithFields(logrus.Fields{"worksheet_id": id, "module": in.Module, "items": len(in.Items)}).Info("[pricing][usecase] worksheet created")
	return worksheetResult(id, ws), nil
}

func (u *WorksheetUseCase) GetByID(ctx context.Context, id string) (WorksheetResult, error) {
	id, ws, err := u.load(ctx, id)
	if err != nil {
		return WorksheetResult{}, err
	}
	return worksheetResult(id, ws), nil
}

func (u *WorksheetUseCase) AddItem(ctx context.Context, id string, item pricing.ItemInput) (WorksheetResult, error) {
	if negativeItem(item) {
		return WorksheetResult{}, ErrInvalidPricingInput
	}
	return u.edit(ctx, id, func(ws *pricing.Worksheet) error {
		ws.Add(item)
		return nil
	})
}

// UpdateItem applies patch to one item. The item is repriced only when a
// cost-relevant field is part of the patch.
func (u *WorksheetUseCase) UpdateItem(ctx context.Context, id, itemID string, patch pricing.ItemPatch) (WorksheetResult, error) {
	if negativePatch(patch) {
		return WorksheetResult{}, ErrInvalidPricingInput
	}
	return u.edit(ctx, id, func(ws *pricing.Worksheet) error {
		if _, ok := ws.Update(strings.TrimSpace(itemID), patch); !ok {
			return ErrWorksheetItemNotFound
		}
		return nil
	})
}

func (u *WorksheetUseCase) RemoveItem(ctx context.Context, id, itemID string) (WorksheetResult, error) {
	return u.edit(ctx, id, func(ws *pricing.Worksheet) error {
		if !ws.Remove(strings.TrimSpace(itemID)) {
			return ErrWorksheetItemNotFound
		}
		return nil
	})
}

func (u *WorksheetUseCase) UpdateParams(ctx context.Context, id string, in WorksheetParamsInput) (WorksheetResult, error) {
	if in.MarginPercent != nil && *in.MarginPercent < 0 {
		return WorksheetResult{}, ErrInvalidPricingInput
	}
	if in.ContractPeriod != nil && *in.ContractPeriod <= 0 {
		return WorksheetResult{}, ErrInvalidContractPeriod
	}
	return u.edit(ctx, id, func(ws *pricing.Worksheet) error {
		params := ws.Params()
		if in.MarginPercent != nil {
			params.MarginPercent = *in.MarginPercent
		}
		if in.ContractPeriod != nil {
			params.ContractPeriod = *in.ContractPeriod
		}
		if in.DestinationUF != nil {
			params.DestinationUF = strings.ToUpper(strings.TrimSpace(*in.DestinationUF))
		}
		ws.SetParams(params)
		if in.Recalculate {
			ws.Recalculate()
		}
		return nil
	})
}

func (u *WorksheetUseCase) edit(ctx context.Context, id string, change func(ws *pricing.Worksheet) error) (WorksheetResult, error) {
	id, ws, err := u.load(ctx, id)
	if err != nil {
		return WorksheetResult{}, err
	}
	if err := change(ws); err != nil {
		return WorksheetResult{}, err
	}
	if err := u.save(ctx, id, ws); err != nil {
		return WorksheetResult{}, err
	}
	logrus.WithField("worksheet_id", id).Debug("[pricing][usecase] worksheet updated")
	return worksheetResult(id, ws), nil
}

func (u *WorksheetUseCase) load(ctx context.Context, id string) (string, *pricing.Worksheet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", nil, ErrInvalidWorksheetID
	}
	state, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if state.ID == "" {
		return "", nil, ErrWorksheetNotFound
	}
	icms, err := u.pricing.icmsRates(ctx)
	if err != nil {
		return "", nil, err
	}
	ws, err := pricing.RestoreWorksheet(state, u.pricing.engine, icms)
	if err != nil {
		return "", nil, err
	}
	return id, ws, nil
}

func (u *WorksheetUseCase) save(ctx context.Context, id string, ws *pricing.Worksheet) error {
	state := ws.Snapshot()
	state.ID = id
	state.UpdatedAt = u.now().UTC()
	return u.repo.Save(ctx, state)
}

func negativePatch(p pricing.ItemPatch) bool {
	for _, v := range []*float64{p.Quantity, p.UnitCost, p.ICMSCredit, p.UnitValue, p.ICMSPurchase, p.Freight, p.HourlyRate, p.TotalHours} {
		if v != nil && *v < 0 {
			return true
		}
	}
	return false
}
