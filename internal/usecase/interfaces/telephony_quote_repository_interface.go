package interfaces

import (
	"context"
	"precifica_ti/internal/domain/telephony"
)

// ITelephonyQuoteRepository keeps running telephony quotes. GetByID returns
// an empty quote when the id is unknown.
type ITelephonyQuoteRepository interface {
	Save(ctx context.Context, q telephony.Quote) error
	GetByID(ctx context.Context, id string) (telephony.Quote, error)
	// List returns every quote, newest first.
	List(ctx context.Context) ([]telephony.Quote, error)
}
