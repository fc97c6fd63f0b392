package response

import (
	"testing"
	"time"

	"precifica_ti/internal/domain/entities"
)

func TestFromProposal(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Proposal{
		ID:          "prop-1",
		Status:      entities.ProposalStatusActive,
		ClientName:  "Prefeitura",
		ProjectName: "Rede",
		Budgets: []entities.Budget{
			{ID: "b1", Module: entities.ModuleSales, TotalValue: 1000.1},
			{ID: "b2", Module: entities.ModuleServices, TotalValue: 234.2},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromProposal(p)
	if res.ID != "prop-1" || res.Status != "active" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.TotalValue != 1234.3 || res.TotalFormatted != "R$ 1.234,30" {
		t.Fatalf("unexpected total: %v %q", res.TotalValue, res.TotalFormatted)
	}
	if len(res.Budgets) != 2 || res.Budgets[0].Module != "sales" || res.Budgets[1].TotalFormatted != "R$ 234,20" {
		t.Fatalf("unexpected budgets: %+v", res.Budgets)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromProposals_Empty(t *testing.T) {
	res := FromProposals(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", res)
	}
}

func TestFromPricingCalculation(t *testing.T) {
	res := FromPricingCalculation(entities.PricingCalculation{BaseCost: 1000, MarginCommission: 200, Taxes: 180, FinalPrice: 1380})
	if res.FinalPrice != 1380 || res.FinalPriceFormatted != "R$ 1.380,00" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
