package response

import (
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/domain/telephony"
	"time"
)

type TelephonyQuoteResponse struct {
	ID                    string                      `json:"id"`
	ClientName            string                      `json:"client_name"`
	AccountManager        string                      `json:"account_manager"`
	Products              []entities.TelephonyProduct `json:"products"`
	TotalSetup            float64                     `json:"total_setup"`
	TotalMonthly          float64                     `json:"total_monthly"`
	TotalSetupFormatted   string                      `json:"total_setup_formatted"`
	TotalMonthlyFormatted string                      `json:"total_monthly_formatted"`
	CreatedAt             time.Time                   `json:"created_at"`
}

func FromTelephonyQuote(q telephony.Quote) TelephonyQuoteResponse {
	products := q.Products
	if products == nil {
		products = []entities.TelephonyProduct{}
	}
	return TelephonyQuoteResponse{
		ID:                    q.ID,
		ClientName:            q.ClientName,
		AccountManager:        q.AccountManager,
		Products:              products,
		TotalSetup:            q.TotalSetup(),
		TotalMonthly:          q.TotalMonthly(),
		TotalSetupFormatted:   pricing.FormatCurrency(q.TotalSetup()),
		TotalMonthlyFormatted: pricing.FormatCurrency(q.TotalMonthly()),
		CreatedAt:             q.CreatedAt,
	}
}

func FromTelephonyQuotes(quotes []telephony.Quote) []TelephonyQuoteResponse {
	out := make([]TelephonyQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromTelephonyQuote(q))
	}
	return out
}
