package request

import (
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/usecase"
	"strings"
)

type SalesPriceRequest struct {
	UnitCost      float64 `json:"unit_cost"`
	Quantity      float64 `json:"quantity"`
	MarginPercent float64 `json:"margin_percent"`
}

func (r SalesPriceRequest) ToInput() usecase.SalesPriceInput {
	return usecase.SalesPriceInput{UnitCost: r.UnitCost, Quantity: r.Quantity, MarginPercent: r.MarginPercent}
}

// RentalPriceRequest leaves contract_period_months optional; the use case
// falls back to 12 months when it is absent.
type RentalPriceRequest struct {
	UnitValue      float64  `json:"unit_value"`
	Quantity       float64  `json:"quantity"`
	ContractPeriod *float64 `json:"contract_period_months"`
	MarginPercent  float64  `json:"margin_percent"`
}

func (r RentalPriceRequest) ToInput() usecase.RentalPriceInput {
	return usecase.RentalPriceInput{
		UnitValue:      r.UnitValue,
		Quantity:       r.Quantity,
		ContractPeriod: r.ContractPeriod,
		MarginPercent:  r.MarginPercent,
	}
}

type ServicePriceRequest struct {
	HourlyRate    float64 `json:"hourly_rate"`
	TotalHours    float64 `json:"total_hours"`
	MarginPercent float64 `json:"margin_percent"`
}

func (r ServicePriceRequest) ToInput() usecase.ServicePriceInput {
	return usecase.ServicePriceInput{HourlyRate: r.HourlyRate, TotalHours: r.TotalHours, MarginPercent: r.MarginPercent}
}

type DIFALRequest struct {
	TotalCost     float64 `json:"total_cost"`
	DestinationUF string  `json:"destination_uf" binding:"required"`
}

type WorksheetItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`

	UnitCost   float64 `json:"unit_cost"`
	ICMSCredit float64 `json:"icms_credit"`
	ICMSST     bool    `json:"icms_st"`

	UnitValue    float64 `json:"unit_value"`
	ICMSPurchase float64 `json:"icms_purchase"`
	Freight      float64 `json:"freight"`

	ServiceType string  `json:"service_type"`
	HourlyRate  float64 `json:"hourly_rate"`
	TotalHours  float64 `json:"total_hours"`
}

// WorksheetRequest is one module's worksheet: its parameters and line items.
type WorksheetRequest struct {
	Module         string                 `json:"module" binding:"required"`
	MarginPercent  *float64               `json:"margin_percent"`
	ContractPeriod *float64               `json:"contract_period_months"`
	DestinationUF  string                 `json:"destination_uf"`
	Items          []WorksheetItemRequest `json:"items"`
}

func (r WorksheetItemRequest) ToInput() pricing.ItemInput {
	return pricing.ItemInput{
		Description:  strings.TrimSpace(r.Description),
		Quantity:     r.Quantity,
		UnitCost:     r.UnitCost,
		ICMSCredit:   r.ICMSCredit,
		ICMSST:       r.ICMSST,
		UnitValue:    r.UnitValue,
		ICMSPurchase: r.ICMSPurchase,
		Freight:      r.Freight,
		ServiceType:  strings.TrimSpace(r.ServiceType),
		HourlyRate:   r.HourlyRate,
		TotalHours:   r.TotalHours,
	}
}

// WorksheetItemPatchRequest edits one stored item; absent fields are kept.
type WorksheetItemPatchRequest struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`

	UnitCost   *float64 `json:"unit_cost"`
	ICMSCredit *float64 `json:"icms_credit"`
	ICMSST     *bool    `json:"icms_st"`

	UnitValue    *float64 `json:"unit_value"`
	ICMSPurchase *float64 `json:"icms_purchase"`
	Freight      *float64 `json:"freight"`

	ServiceType *string  `json:"service_type"`
	HourlyRate  *float64 `json:"hourly_rate"`
	TotalHours  *float64 `json:"total_hours"`
}

func (r WorksheetItemPatchRequest) ToPatch() pricing.ItemPatch {
	return pricing.ItemPatch{
		Description:  trimmed(r.Description),
		Quantity:     r.Quantity,
		UnitCost:     r.UnitCost,
		ICMSCredit:   r.ICMSCredit,
		ICMSST:       r.ICMSST,
		UnitValue:    r.UnitValue,
		ICMSPurchase: r.ICMSPurchase,
		Freight:      r.Freight,
		ServiceType:  trimmed(r.ServiceType),
		HourlyRate:   r.HourlyRate,
		TotalHours:   r.TotalHours,
	}
}

type WorksheetParamsRequest struct {
	MarginPercent  *float64 `json:"margin_percent"`
	ContractPeriod *float64 `json:"contract_period_months"`
	DestinationUF  *string  `json:"destination_uf"`
	Recalculate    bool     `json:"recalculate"`
}

func (r WorksheetParamsRequest) ToInput() usecase.WorksheetParamsInput {
	return usecase.WorksheetParamsInput{
		MarginPercent:  r.MarginPercent,
		ContractPeriod: r.ContractPeriod,
		DestinationUF:  r.DestinationUF,
		Recalculate:    r.Recalculate,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func (r WorksheetRequest) ToInput() usecase.WorksheetInput {
	items := make([]pricing.ItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.ToInput())
	}
	return usecase.WorksheetInput{
		Module:         entities.CommercialModule(strings.ToLower(strings.TrimSpace(r.Module))),
		MarginPercent:  r.MarginPercent,
		ContractPeriod: r.ContractPeriod,
		DestinationUF:  strings.TrimSpace(r.DestinationUF),
		Items:          items,
	}
}
