package request

import (
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/usecase"
	"strings"
)

type ProposalRequest struct {
	ClientName    string `json:"client_name" binding:"required"`
	ClientCompany string `json:"client_company"`
	ClientEmail   string `json:"client_email"`
	ClientPhone   string `json:"client_phone"`
	ClientCNPJ    string `json:"client_cnpj"`

	ProjectName        string `json:"project_name" binding:"required"`
	ProjectType        string `json:"project_type"`
	ProjectDescription string `json:"project_description"`
	DeliveryDate       string `json:"delivery_date"`

	ManagerName       string `json:"manager_name"`
	ManagerEmail      string `json:"manager_email"`
	ManagerPhone      string `json:"manager_phone"`
	ManagerDepartment string `json:"manager_department"`
}

func (r ProposalRequest) ToInput() usecase.ProposalInput {
	return usecase.ProposalInput{
		ClientName:         r.ClientName,
		ClientCompany:      r.ClientCompany,
		ClientEmail:        r.ClientEmail,
		ClientPhone:        r.ClientPhone,
		ClientCNPJ:         r.ClientCNPJ,
		ProjectName:        r.ProjectName,
		ProjectType:        r.ProjectType,
		ProjectDescription: r.ProjectDescription,
		DeliveryDate:       r.DeliveryDate,
		ManagerName:        r.ManagerName,
		ManagerEmail:       r.ManagerEmail,
		ManagerPhone:       r.ManagerPhone,
		ManagerDepartment:  r.ManagerDepartment,
	}
}

type ProposalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ProposalStatusRequest) ResolveStatus() entities.ProposalStatus {
	return entities.ProposalStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

type CurrentProposalRequest struct {
	ProposalID string `json:"proposal_id" binding:"required"`
}

func (r CurrentProposalRequest) ResolveID() string {
	return strings.TrimSpace(r.ProposalID)
}
