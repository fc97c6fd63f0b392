package interfaces

import (
	"context"
	"precifica_ti/internal/domain/entities"
)

// IAnalysisRepository keeps analysis results and the per-session request
// counter used to discard stale runs.
type IAnalysisRepository interface {
	Save(ctx context.Context, r entities.AnalysisResult) error
	GetByID(ctx context.Context, id string) (entities.AnalysisResult, error)

	NextRequestID(ctx context.Context, session string) (uint64, error)
	LatestRequestID(ctx context.Context, session string) (uint64, error)
}
