package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the payment provider (Mercado Pago).
//
// The provider response payload is persisted with the payment for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
