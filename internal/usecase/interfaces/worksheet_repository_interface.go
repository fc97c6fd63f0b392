package interfaces

import (
	"context"
	"precifica_ti/internal/domain/pricing"
)

// IWorksheetRepository keeps edited worksheets. GetByID returns an empty
// state when the id is unknown or expired.
type IWorksheetRepository interface {
	Save(ctx context.Context, w pricing.WorksheetState) error
	GetByID(ctx context.Context, id string) (pricing.WorksheetState, error)
}
