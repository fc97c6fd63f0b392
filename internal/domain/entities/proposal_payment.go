package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pendente"
	PaymentStatusApproved PaymentStatus = "aprovado"
	PaymentStatusDenied   PaymentStatus = "negado"
)

// ProposalPayment is the payment taken for an approved proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
//
// MPPayloadRaw keeps the provider response as received; MPPayload is its
// parsed form.
type ProposalPayment struct {
	ID         string        `json:"id"`
	ProposalID string        `json:"proposal_id"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
