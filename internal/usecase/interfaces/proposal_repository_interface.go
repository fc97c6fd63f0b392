package interfaces

import (
	"context"
	"precifica_ti/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Budgets are only ever appended; a proposal that does not exist is returned
// as an empty entity (ID == "").
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	AppendBudget(ctx context.Context, id string, b entities.Budget) (entities.Proposal, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)

	// The current proposal pointer. An empty id means none was selected.
	GetCurrentID(ctx context.Context) (string, error)
	SetCurrentID(ctx context.Context, id string) error
}
