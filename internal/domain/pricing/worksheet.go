package pricing

import (
	"errors"
	"time"

	"precifica_ti/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultContractPeriod = 12
	DefaultRentalMargin   = 20
	DefaultSaleICMSRate   = 12
)

var ErrUnsupportedModule = errors.New("unsupported commercial module")

// WorksheetParams are the module-wide inputs shared by every line item.
type WorksheetParams struct {
	MarginPercent  float64 `json:"margin_percent"`
	ContractPeriod float64 `json:"contract_period_months"`
	DestinationUF  string  `json:"destination_uf"`
}

// WorksheetState is the stored form of a worksheet. Restoring it keeps the
// stored pricing of every item until the next recompute.
type WorksheetState struct {
	ID        string                    `json:"id"`
	Module    entities.CommercialModule `json:"module"`
	Params    WorksheetParams           `json:"params"`
	Items     []entities.LineItem       `json:"items"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

// ItemInput carries the editable fields of any module; fields that do not
// belong to the worksheet's module are ignored.
type ItemInput struct {
	Description string
	Quantity    float64

	UnitCost   float64
	ICMSCredit float64
	ICMSST     bool

	UnitValue    float64
	ICMSPurchase float64
	Freight      float64

	ServiceType string
	HourlyRate  float64
	TotalHours  float64
}

// ItemPatch is a partial edit; nil fields are left untouched.
type ItemPatch struct {
	Description *string
	Quantity    *float64

	UnitCost   *float64
	ICMSCredit *float64
	ICMSST     *bool

	UnitValue    *float64
	ICMSPurchase *float64
	Freight      *float64

	ServiceType *string
	HourlyRate  *float64
	TotalHours  *float64
}

// Totals aggregates a worksheet. BudgetValue is what the module contributes
// to a proposal.
type Totals struct {
	Items            int     `json:"items"`
	BaseCost         float64 `json:"base_cost"`
	MarginCommission float64 `json:"margin_commission"`
	Taxes            float64 `json:"taxes"`
	FinalPrice       float64 `json:"final_price"`
	DIFAL            float64 `json:"difal"`
	BudgetValue      float64 `json:"budget_value"`
}

// Worksheet owns the line items of one commercial module. Items are
// recomputed in place when a cost-relevant field changes; parameter changes
// only reach existing items through Recalculate.
type Worksheet struct {
	module entities.CommercialModule
	params WorksheetParams
	engine *Engine
	icms   entities.ICMSRates
	items  []entities.LineItem
	newID  func() string
}

func NewWorksheet(module entities.CommercialModule, engine *Engine, icms entities.ICMSRates, params WorksheetParams) (*Worksheet, error) {
	switch module {
	case entities.ModuleSales, entities.ModuleRental, entities.ModuleServices:
	default:
		return nil, ErrUnsupportedModule
	}
	return &Worksheet{
		module: module,
		params: params,
		engine: engine,
		icms:   icms,
		newID:  uuid.NewString,
	}, nil
}

// RestoreWorksheet rebuilds a worksheet from its stored state.
func RestoreWorksheet(state WorksheetState, engine *Engine, icms entities.ICMSRates) (*Worksheet, error) {
	w, err := NewWorksheet(state.Module, engine, icms, state.Params)
	if err != nil {
		return nil, err
	}
	w.items = make([]entities.LineItem, 0, len(state.Items))
	for _, it := range state.Items {
		w.items = append(w.items, cloneItem(it))
	}
	return w, nil
}

// Snapshot returns the state to store. ID and UpdatedAt are left to the caller.
func (w *Worksheet) Snapshot() WorksheetState {
	return WorksheetState{Module: w.module, Params: w.params, Items: w.Items()}
}

func (w *Worksheet) Module() entities.CommercialModule { return w.module }

func (w *Worksheet) Params() WorksheetParams { return w.params }

// SetParams replaces the module parameters without touching existing items.
func (w *Worksheet) SetParams(params WorksheetParams) { w.params = params }

// Items returns a copy of the current line items.
func (w *Worksheet) Items() []entities.LineItem {
	out := make([]entities.LineItem, len(w.items))
	for i, it := range w.items {
		out[i] = cloneItem(it)
	}
	return out
}

func (w *Worksheet) Add(in ItemInput) entities.LineItem {
	it := entities.LineItem{
		ID:          w.newID(),
		Description: in.Description,
		Quantity:    in.Quantity,
		Module:      w.module,
	}
	switch w.module {
	case entities.ModuleSales:
		it.Sales = &entities.SalesDetails{
			UnitCost:        in.UnitCost,
			ICMSCredit:      in.ICMSCredit,
			ICMSST:          in.ICMSST,
			ICMSSalePercent: DefaultSaleICMSRate,
		}
	case entities.ModuleRental:
		it.Rental = &entities.RentalDetails{
			UnitValue:    in.UnitValue,
			ICMSPurchase: in.ICMSPurchase,
			ICMSPR:       DefaultSaleICMSRate,
			Freight:      in.Freight,
		}
	case entities.ModuleServices:
		if it.Quantity == 0 {
			it.Quantity = 1
		}
		it.Service = &entities.ServiceDetails{
			ServiceType: in.ServiceType,
			HourlyRate:  in.HourlyRate,
			TotalHours:  in.TotalHours,
		}
	}
	w.recompute(&it)
	w.items = append(w.items, it)
	return cloneItem(it)
}

// Update applies patch to the item with id. The pricing fields are
// recomputed only when a cost-relevant field was part of the patch.
func (w *Worksheet) Update(id string, patch ItemPatch) (entities.LineItem, bool) {
	for i := range w.items {
		it := &w.items[i]
		if it.ID != id {
			continue
		}
		if patch.Description != nil {
			it.Description = *patch.Description
		}
		if w.apply(it, patch) {
			w.recompute(it)
		}
		return cloneItem(*it), true
	}
	return entities.LineItem{}, false
}

func (w *Worksheet) apply(it *entities.LineItem, patch ItemPatch) bool {
	costChanged := false
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
		costChanged = w.module != entities.ModuleServices
	}
	switch w.module {
	case entities.ModuleSales:
		if patch.UnitCost != nil {
			it.Sales.UnitCost = *patch.UnitCost
			costChanged = true
		}
		if patch.ICMSCredit != nil {
			it.Sales.ICMSCredit = *patch.ICMSCredit
		}
		if patch.ICMSST != nil {
			it.Sales.ICMSST = *patch.ICMSST
		}
	case entities.ModuleRental:
		if patch.UnitValue != nil {
			it.Rental.UnitValue = *patch.UnitValue
			costChanged = true
		}
		if patch.ICMSPurchase != nil {
			it.Rental.ICMSPurchase = *patch.ICMSPurchase
		}
		if patch.Freight != nil {
			it.Rental.Freight = *patch.Freight
		}
	case entities.ModuleServices:
		if patch.ServiceType != nil {
			it.Service.ServiceType = *patch.ServiceType
		}
		if patch.HourlyRate != nil {
			it.Service.HourlyRate = *patch.HourlyRate
			costChanged = true
		}
		if patch.TotalHours != nil {
			it.Service.TotalHours = *patch.TotalHours
			costChanged = true
		}
	}
	return costChanged
}

func (w *Worksheet) Remove(id string) bool {
	for i := range w.items {
		if w.items[i].ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return true
		}
	}
	return false
}

// Recalculate recomputes every item with the current parameters.
func (w *Worksheet) Recalculate() {
	for i := range w.items {
		w.recompute(&w.items[i])
	}
}

func (w *Worksheet) recompute(it *entities.LineItem) {
	margin := w.params.MarginPercent
	switch w.module {
	case entities.ModuleSales:
		d := it.Sales
		calc := w.engine.CalculateSalesPrice(d.UnitCost, it.Quantity, margin)
		d.TotalCost = it.Quantity * d.UnitCost
		d.ICMSDestLocalPercent = w.engine.DestinationRate(w.params.DestinationUF, w.icms)
		d.DIFALSale = w.engine.CalculateDIFAL(d.TotalCost, w.params.DestinationUF, w.icms)
		d.GrossRevenue = calc.FinalPrice
		it.Pricing = calc
	case entities.ModuleRental:
		d := it.Rental
		period := w.params.ContractPeriod
		calc := w.engine.CalculateRentalPrice(d.UnitValue, it.Quantity, period, margin)
		d.TotalValue = calc.BaseCost * period
		d.TotalActiveCost = calc.BaseCost*period + calc.Taxes*period
		d.MonthlyActiveCost = calc.FinalPrice
		it.Pricing = calc
	case entities.ModuleServices:
		d := it.Service
		calc := w.engine.CalculateServicePrice(d.HourlyRate, d.TotalHours, margin)
		d.TotalValue = calc.BaseCost
		it.Pricing = calc
	}
}

func (w *Worksheet) Totals() Totals {
	var base, margin, taxes, final, difal, budget decimal.Decimal
	for _, it := range w.items {
		base = base.Add(decimal.NewFromFloat(it.Pricing.BaseCost))
		margin = margin.Add(decimal.NewFromFloat(it.Pricing.MarginCommission))
		taxes = taxes.Add(decimal.NewFromFloat(it.Pricing.Taxes))
		final = final.Add(decimal.NewFromFloat(it.Pricing.FinalPrice))
		switch w.module {
		case entities.ModuleSales:
			difal = difal.Add(decimal.NewFromFloat(it.Sales.DIFALSale))
			budget = budget.Add(decimal.NewFromFloat(it.Sales.GrossRevenue))
		case entities.ModuleRental:
			budget = budget.Add(decimal.NewFromFloat(it.Rental.MonthlyActiveCost))
		}
	}
	if w.module == entities.ModuleServices {
		budget = base.Add(margin).Add(taxes)
	}
	return Totals{
		Items:            len(w.items),
		BaseCost:         base.InexactFloat64(),
		MarginCommission: margin.InexactFloat64(),
		Taxes:            taxes.InexactFloat64(),
		FinalPrice:       final.InexactFloat64(),
		DIFAL:            difal.InexactFloat64(),
		BudgetValue:      budget.InexactFloat64(),
	}
}

// BudgetItems flattens the line items for a proposal budget.
func (w *Worksheet) BudgetItems() []entities.BudgetItem {
	out := make([]entities.BudgetItem, 0, len(w.items))
	for _, it := range w.items {
		bi := entities.BudgetItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Module:      w.module,
		}
		switch w.module {
		case entities.ModuleSales:
			bi.UnitPrice = it.Sales.UnitCost
			bi.TotalPrice = it.Sales.GrossRevenue
		case entities.ModuleRental:
			bi.UnitPrice = it.Rental.UnitValue
			bi.TotalPrice = it.Rental.MonthlyActiveCost
		case entities.ModuleServices:
			bi.Quantity = it.Service.TotalHours
			bi.UnitPrice = it.Service.HourlyRate
			bi.TotalPrice = it.Service.TotalValue + it.Pricing.MarginCommission
		}
		out = append(out, bi)
	}
	return out
}

func cloneItem(it entities.LineItem) entities.LineItem {
	if it.Sales != nil {
		d := *it.Sales
		it.Sales = &d
	}
	if it.Rental != nil {
		d := *it.Rental
		it.Rental = &d
	}
	if it.Service != nil {
		d := *it.Service
		it.Service = &d
	}
	return it
}
