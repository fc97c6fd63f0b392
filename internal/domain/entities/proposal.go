package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus represents the lifecycle of a commercial proposal.
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusActive   ProposalStatus = "active"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusActive, ProposalStatusSent, ProposalStatusApproved, ProposalStatusRejected:
		return true
	}
	return false
}

// Proposal aggregates the budgets produced by the pricing modules.
//
// Storage model (DynamoDB):
//   - PK: id
//   - budgets are stored inline as a list and only ever appended
type Proposal struct {
	ID     string         `json:"id"`
	Status ProposalStatus `json:"status"`

	ClientName    string `json:"client_name"`
	ClientCompany string `json:"client_company"`
	ClientEmail   string `json:"client_email"`
	ClientPhone   string `json:"client_phone"`
	ClientCNPJ    string `json:"client_cnpj"`

	ProjectName        string `json:"project_name"`
	ProjectType        string `json:"project_type"`
	ProjectDescription string `json:"project_description"`
	DeliveryDate       string `json:"delivery_date"`

	ManagerName       string `json:"manager_name"`
	ManagerEmail      string `json:"manager_email"`
	ManagerPhone      string `json:"manager_phone"`
	ManagerDepartment string `json:"manager_department"`

	Budgets   []Budget  `json:"budgets"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Total sums the budget totals.
func (p Proposal) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range p.Budgets {
		total = total.Add(decimal.NewFromFloat(b.TotalValue))
	}
	return total
}

// Budget is one module's contribution to a proposal.
type Budget struct {
	ID         string           `json:"id"`
	ProposalID string           `json:"proposal_id"`
	Module     CommercialModule `json:"module"`
	Items      []BudgetItem     `json:"items"`
	TotalValue float64          `json:"total_value"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// BudgetItem is a flattened line item. Setup and Monthly are only set for
// telephony lines.
type BudgetItem struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Quantity    float64          `json:"quantity"`
	UnitPrice   float64          `json:"unit_price"`
	TotalPrice  float64          `json:"total_price"`
	Module      CommercialModule `json:"module"`
	Setup       float64          `json:"setup,omitempty"`
	Monthly     float64          `json:"monthly,omitempty"`
}
