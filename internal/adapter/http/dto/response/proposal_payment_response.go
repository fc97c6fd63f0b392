package response

import (
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/pricing"
	"time"
)

type ProposalPaymentResponse struct {
	PaymentID       string    `json:"payment_id"`
	ID              string    `json:"id"`
	ProposalID      string    `json:"proposal_id"`
	Amount          float64   `json:"amount"`
	AmountFormatted string    `json:"amount_formatted"`
	PaymentDate     time.Time `json:"payment_date"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// FromProposalPayment keeps payment_id and payment_date as aliases of id and
// date for older clients.
func FromProposalPayment(p entities.ProposalPayment) ProposalPaymentResponse {
	return ProposalPaymentResponse{
		PaymentID:       p.ID,
		ID:              p.ID,
		ProposalID:      p.ProposalID,
		Amount:          p.Amount,
		AmountFormatted: pricing.FormatCurrency(p.Amount),
		PaymentDate:     p.Date,
		Date:            p.Date,
		Status:          string(p.Status),
		MPPayloadRaw:    string(p.MPPayloadRaw),
		MPPayload:       p.MPPayload,
	}
}

func FromProposalPayments(payments []entities.ProposalPayment) []ProposalPaymentResponse {
	out := make([]ProposalPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromProposalPayment(p))
	}
	return out
}
