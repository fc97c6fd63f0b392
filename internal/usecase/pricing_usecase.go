package usecase

import (
	"context"
	"errors"
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/domain/taxtable"
	"precifica_ti/internal/usecase/interfaces"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPricingInput   = errors.New("pricing inputs must not be negative")
	ErrInvalidContractPeriod = errors.New("contract period must be greater than zero")
	ErrInvalidModule         = errors.New("invalid commercial module")
)

type SalesPriceInput struct {
	UnitCost      float64
	Quantity      float64
	MarginPercent float64
}

type RentalPriceInput struct {
	UnitValue      float64
	Quantity       float64
	ContractPeriod *float64
	MarginPercent  float64
}

type ServicePriceInput struct {
	HourlyRate    float64
	TotalHours    float64
	MarginPercent float64
}

type DIFALResult struct {
	TotalCost       float64 `json:"total_cost"`
	DestinationUF   string  `json:"destination_uf"`
	DestinationRate float64 `json:"destination_rate"`
	OriginRate      float64 `json:"origin_rate"`
	DIFAL           float64 `json:"difal"`
}

// WorksheetInput describes a whole module worksheet to evaluate at once.
type WorksheetInput struct {
	Module         entities.CommercialModule
	MarginPercent  *float64
	ContractPeriod *float64
	DestinationUF  string
	Items          []pricing.ItemInput
}

// WorksheetResult is a priced worksheet. ID is set only for stored
// worksheets.
type WorksheetResult struct {
	ID          string                    `json:"id,omitempty"`
	Module      entities.CommercialModule `json:"module"`
	Params      pricing.WorksheetParams   `json:"params"`
	Items       []entities.LineItem       `json:"items"`
	Totals      pricing.Totals            `json:"totals"`
	BudgetItems []entities.BudgetItem     `json:"budget_items"`
}

// IPricingUseCase exposes the pricing engine and module worksheets.
type IPricingUseCase interface {
	SalesPrice(in SalesPriceInput) (entities.PricingCalculation, error)
	RentalPrice(in RentalPriceInput) (entities.PricingCalculation, error)
	ServicePrice(in ServicePriceInput) (entities.PricingCalculation, error)
	DIFAL(ctx context.Context, totalCost float64, destinationUF string) (DIFALResult, error)
	FormatCurrency(value float64) string
	EvaluateWorksheet(ctx context.Context, in WorksheetInput) (WorksheetResult, error)
}

type PricingUseCase struct {
	engine     *pricing.Engine
	configRepo interfaces.IConfigurationRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(engine *pricing.Engine, configRepo interfaces.IConfigurationRepository) *PricingUseCase {
	return &PricingUseCase{engine: engine, configRepo: configRepo}
}

func (u *PricingUseCase) SalesPrice(in SalesPriceInput) (entities.PricingCalculation, error) {
	if anyNegative(in.UnitCost, in.Quantity, in.MarginPercent) {
		return entities.PricingCalculation{}, ErrInvalidPricingInput
	}
	return u.engine.CalculateSalesPrice(in.UnitCost, in.Quantity, in.MarginPercent), nil
}

func (u *PricingUseCase) RentalPrice(in RentalPriceInput) (entities.PricingCalculation, error) {
	if anyNegative(in.UnitValue, in.Quantity, in.MarginPercent) {
		return entities.PricingCalculation{}, ErrInvalidPricingInput
	}
	period, err := contractPeriod(in.ContractPeriod)
	if err != nil {
		return entities.PricingCalculation{}, err
	}
	return u.engine.CalculateRentalPrice(in.UnitValue, in.Quantity, period, in.MarginPercent), nil
}

func (u *PricingUseCase) ServicePrice(in ServicePriceInput) (entities.PricingCalculation, error) {
	if anyNegative(in.HourlyRate, in.TotalHours, in.MarginPercent) {
		return entities.PricingCalculation{}, ErrInvalidPricingInput
	}
	return u.engine.CalculateServicePrice(in.HourlyRate, in.TotalHours, in.MarginPercent), nil
}

func (u *PricingUseCase) DIFAL(ctx context.Context, totalCost float64, destinationUF string) (DIFALResult, error) {
	if totalCost < 0 {
		return DIFALResult{}, ErrInvalidPricingInput
	}
	uf := strings.ToUpper(strings.TrimSpace(destinationUF))
	icms, err := u.icmsRates(ctx)
	if err != nil {
		return DIFALResult{}, err
	}
	return DIFALResult{
		TotalCost:       totalCost,
		DestinationUF:   uf,
		DestinationRate: u.engine.DestinationRate(uf, icms),
		OriginRate:      u.engine.Rates().OriginICMSRate,
		DIFAL:           u.engine.CalculateDIFAL(totalCost, uf, icms),
	}, nil
}

func (u *PricingUseCase) FormatCurrency(value float64) string {
	return pricing.FormatCurrency(value)
}

// EvaluateWorksheet builds a worksheet from scratch and returns its items,
// totals and the budget lines it would add to a proposal.
func (u *PricingUseCase) EvaluateWorksheet(ctx context.Context, in WorksheetInput) (WorksheetResult, error) {
	ws, err := u.buildWorksheet(ctx, in)
	if err != nil {
		return WorksheetResult{}, err
	}
	return worksheetResult("", ws), nil
}

func worksheetResult(id string, ws *pricing.Worksheet) WorksheetResult {
	return WorksheetResult{
		ID:          id,
		Module:      ws.Module(),
		Params:      ws.Params(),
		Items:       ws.Items(),
		Totals:      ws.Totals(),
		BudgetItems: ws.BudgetItems(),
	}
}

func (u *PricingUseCase) buildWorksheet(ctx context.Context, in WorksheetInput) (*pricing.Worksheet, error) {
	params := pricing.WorksheetParams{
		ContractPeriod: pricing.DefaultContractPeriod,
		DestinationUF:  strings.ToUpper(strings.TrimSpace(in.DestinationUF)),
	}
	if in.Module == entities.ModuleRental {
		params.MarginPercent = pricing.DefaultRentalMargin
	}
	if in.MarginPercent != nil {
		if *in.MarginPercent < 0 {
			return nil, ErrInvalidPricingInput
		}
		params.MarginPercent = *in.MarginPercent
	}
	if in.Module == entities.ModuleRental {
		period, err := contractPeriod(in.ContractPeriod)
		if err != nil {
			return nil, err
		}
		params.ContractPeriod = period
	}

	icms, err := u.icmsRates(ctx)
	if err != nil {
		return nil, err
	}
	ws, err := pricing.NewWorksheet(in.Module, u.engine, icms, params)
	if err != nil {
		return nil, ErrInvalidModule
	}
	for _, item := range in.Items {
		if negativeItem(item) {
			return nil, ErrInvalidPricingInput
		}
		ws.Add(item)
	}

	logrus.WithFields(logrus.Fields{
		"module": in.Module,
		"items":  len(in.Items),
	}).Debug("[pricing][usecase] worksheet evaluated")
	return ws, nil
}

// icmsRates reads the stored ICMS table, falling back to the seed table when
// the configuration was never saved.
func (u *PricingUseCase) icmsRates(ctx context.Context) (entities.ICMSRates, error) {
	if u.configRepo == nil {
		return taxtable.DefaultICMSRates(), nil
	}
	cfg, err := u.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(cfg.ICMSRates) == 0 {
		return taxtable.DefaultICMSRates(), nil
	}
	return cfg.ICMSRates, nil
}

func contractPeriod(p *float64) (float64, error) {
	if p == nil {
		return pricing.DefaultContractPeriod, nil
	}
	if *p <= 0 {
		return 0, ErrInvalidContractPeriod
	}
	return *p, nil
}

func negativeItem(item pricing.ItemInput) bool {
	return anyNegative(item.Quantity, item.UnitCost, item.ICMSCredit, item.UnitValue,
		item.ICMSPurchase, item.Freight, item.HourlyRate, item.TotalHours)
}

func anyNegative(values ...float64) bool {
	for _, v := range values {
		if v < 0 {
			return true
		}
	}
	return false
}
