// Package pricing implements the sales, rental and service price calculators
// and the DIFAL interstate tax delta.
package pricing

import "precifica_ti/internal/domain/entities"

// Rates are the fixed percentages the calculators apply. Tax rates are
// fractions; ICMS rates are percentages.
type Rates struct {
	SalesTaxRate     float64
	RentalTaxRate    float64
	ServiceTaxRate   float64
	OriginICMSRate   float64
	FallbackICMSRate float64
}

func DefaultRates() Rates {
	return Rates{
		SalesTaxRate:     0.15,
		RentalTaxRate:    0.15,
		ServiceTaxRate:   0.11,
		OriginICMSRate:   12,
		FallbackICMSRate: 7,
	}
}

// Engine is a stateless price calculator. Inputs are not validated: negative
// or zero values propagate arithmetically, including a zero contract period
// in CalculateRentalPrice.
type Engine struct {
	rates Rates
}

func NewEngine(rates Rates) *Engine {
	return &Engine{rates: rates}
}

func (e *Engine) Rates() Rates {
	return e.rates
}

func (e *Engine) CalculateSalesPrice(unitCost, quantity, marginPercent float64) entities.PricingCalculation {
	return e.withMarginAndTaxes(unitCost*quantity, marginPercent, e.rates.SalesTaxRate)
}

// CalculateRentalPrice spreads the asset value evenly over the contract.
func (e *Engine) CalculateRentalPrice(unitValue, quantity, contractPeriodMonths, marginPercent float64) entities.PricingCalculation {
	return e.withMarginAndTaxes((unitValue*quantity)/contractPeriodMonths, marginPercent, e.rates.RentalTaxRate)
}

func (e *Engine) CalculateServicePrice(hourlyRate, totalHours, marginPercent float64) entities.PricingCalculation {
	return e.withMarginAndTaxes(hourlyRate*totalHours, marginPercent, e.rates.ServiceTaxRate)
}

func (e *Engine) withMarginAndTaxes(baseCost, marginPercent, taxRate float64) entities.PricingCalculation {
	margin := baseCost * (marginPercent / 100)
	taxes := (baseCost + margin) * taxRate
	return entities.PricingCalculation{
		BaseCost:         baseCost,
		MarginCommission: margin,
		Taxes:            taxes,
		FinalPrice:       baseCost + margin + taxes,
	}
}

// DestinationRate returns the ICMS rate for uf, falling back to the
// configured rate when the state is missing from the table.
func (e *Engine) DestinationRate(destinationUF string, table entities.ICMSRates) float64 {
	if rate, ok := table.Rate(destinationUF); ok {
		return rate
	}
	return e.rates.FallbackICMSRate
}

// CalculateDIFAL returns the ICMS difference owed to the destination state.
// It is never negative.
func (e *Engine) CalculateDIFAL(totalCost float64, destinationUF string, table entities.ICMSRates) float64 {
	delta := e.DestinationRate(destinationUF, table) - e.rates.OriginICMSRate
	if delta <= 0 {
		return 0
	}
	return totalCost * delta / 100
}
