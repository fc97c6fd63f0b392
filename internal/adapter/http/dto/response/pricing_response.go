package response

import (
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/pricing"
)

// PricingResponse is a calculator result with its final price already
// formatted as Brazilian currency.
type PricingResponse struct {
	entities.PricingCalculation
	FinalPriceFormatted string `json:"final_price_formatted"`
}

func FromPricingCalculation(c entities.PricingCalculation) PricingResponse {
	return PricingResponse{
		PricingCalculation:  c,
		FinalPriceFormatted: pricing.FormatCurrency(c.FinalPrice),
	}
}

type CurrencyResponse struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}
