package request

import "encoding/json"

// ProposalPaymentCreateRequest is the payload for the "cria e processa pagamento" route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
// The bare Mercado Pago request, without the envelope, is accepted too.
type ProposalPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
