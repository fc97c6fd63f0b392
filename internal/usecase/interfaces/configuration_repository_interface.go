package interfaces

import (
	"context"
	"precifica_ti/internal/domain/entities"
)

// IConfigurationRepository stores the single configuration snapshot.
// Get returns a zero Configuration when nothing was saved yet.
type IConfigurationRepository interface {
	Get(ctx context.Context) (entities.Configuration, error)
	Save(ctx context.Context, cfg entities.Configuration) (entities.Configuration, error)
}
