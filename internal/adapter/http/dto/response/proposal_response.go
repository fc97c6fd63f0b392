package response

import (
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/pricing"
	"time"
)

type BudgetResponse struct {
	ID             string                `json:"id"`
	Module         string                `json:"module"`
	Items          []entities.BudgetItem `json:"items"`
	TotalValue     float64               `json:"total_value"`
	TotalFormatted string                `json:"total_formatted"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type ProposalResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	ClientName    string `json:"client_name"`
	ClientCompany string `json:"client_company,omitempty"`
	ClientEmail   string `json:"client_email,omitempty"`
	ClientPhone   string `json:"client_phone,omitempty"`
	ClientCNPJ    string `json:"client_cnpj,omitempty"`

	ProjectName        string `json:"project_name"`
	ProjectType        string `json:"project_type,omitempty"`
	ProjectDescription string `json:"project_description,omitempty"`
	DeliveryDate       string `json:"delivery_date,omitempty"`

	ManagerName       string `json:"manager_name,omitempty"`
	ManagerEmail      string `json:"manager_email,omitempty"`
	ManagerPhone      string `json:"manager_phone,omitempty"`
	ManagerDepartment string `json:"manager_department,omitempty"`

	Budgets        []BudgetResponse `json:"budgets"`
	TotalValue     float64          `json:"total_value"`
	TotalFormatted string           `json:"total_formatted"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	budgets := make([]BudgetResponse, 0, len(p.Budgets))
	for _, b := range p.Budgets {
		budgets = append(budgets, BudgetResponse{
			ID:             b.ID,
			Module:         string(b.Module),
			Items:          b.Items,
			TotalValue:     b.TotalValue,
			TotalFormatted: pricing.FormatCurrency(b.TotalValue),
			CreatedAt:      b.CreatedAt,
			UpdatedAt:      b.UpdatedAt,
		})
	}

	total, _ := p.Total().Round(2).Float64()
	return ProposalResponse{
		ID:                 p.ID,
		Status:             string(p.Status),
		ClientName:         p.ClientName,
		ClientCompany:      p.ClientCompany,
		ClientEmail:        p.ClientEmail,
		ClientPhone:        p.ClientPhone,
		ClientCNPJ:         p.ClientCNPJ,
		ProjectName:        p.ProjectName,
		ProjectType:        p.ProjectType,
		ProjectDescription: p.ProjectDescription,
		DeliveryDate:       p.DeliveryDate,
		ManagerName:        p.ManagerName,
		ManagerEmail:       p.ManagerEmail,
		ManagerPhone:       p.ManagerPhone,
		ManagerDepartment:  p.ManagerDepartment,
		Budgets:            budgets,
		TotalValue:         total,
		TotalFormatted:     pricing.FormatCurrency(total),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromProposals(list []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProposal(p))
	}
	return out
}
