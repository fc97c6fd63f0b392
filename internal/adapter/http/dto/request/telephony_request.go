package request

import (
	"precifica_ti/internal/domain/telephony"
	"precifica_ti/internal/usecase"
	"strings"
)

type PABXRequest struct {
	ClientName     string `json:"client_name"`
	AccountManager string `json:"account_manager"`
	Extensions     int    `json:"extensions"`
	DeviceRental   bool   `json:"device_rental"`
	DeviceQuantity int    `json:"device_quantity"`
	AIAgent        bool   `json:"ai_agent"`
	AIAgentPlan    string `json:"ai_agent_plan"`
}

func (r PABXRequest) Owner() usecase.QuoteOwner {
	return usecase.QuoteOwner{ClientName: strings.TrimSpace(r.ClientName), AccountManager: strings.TrimSpace(r.AccountManager)}
}

func (r PABXRequest) ToInput() telephony.PABXInput {
	return telephony.PABXInput{
		Extensions:     r.Extensions,
		DeviceRental:   r.DeviceRental,
		DeviceQuantity: r.DeviceQuantity,
		AIAgent:        r.AIAgent,
		AIAgentPlan:    strings.TrimSpace(r.AIAgentPlan),
	}
}

type SIPRequest struct {
	ClientName         string `json:"client_name"`
	AccountManager     string `json:"account_manager"`
	Plan               string `json:"plan"`
	AdditionalChannels int    `json:"additional_channels"`
	EquipmentRental    bool   `json:"equipment_rental"`
}

func (r SIPRequest) Owner() usecase.QuoteOwner {
	return usecase.QuoteOwner{ClientName: strings.TrimSpace(r.ClientName), AccountManager: strings.TrimSpace(r.AccountManager)}
}

func (r SIPRequest) ToInput() telephony.SIPInput {
	return telephony.SIPInput{
		PlanKey:            strings.TrimSpace(r.Plan),
		AdditionalChannels: r.AdditionalChannels,
		EquipmentRental:    r.EquipmentRental,
	}
}

// TelephonyBudgetRequest adds the selected PABX and/or SIP configuration to a
// proposal. Either part may be omitted.
type TelephonyBudgetRequest struct {
	PABX *PABXRequest `json:"pabx"`
	SIP  *SIPRequest  `json:"sip"`
}

func (r TelephonyBudgetRequest) ToInput() usecase.TelephonyBudgetInput {
	var in usecase.TelephonyBudgetInput
	if r.PABX != nil {
		pabx := r.PABX.ToInput()
		in.PABX = &pabx
	}
	if r.SIP != nil {
		sip := r.SIP.ToInput()
		in.SIP = &sip
	}
	return in
}

// TelephonyQuoteRequest opens a stored quote with an initial selection.
type TelephonyQuoteRequest struct {
	ClientName     string `json:"client_name"`
	AccountManager string `json:"account_manager"`
	TelephonyBudgetRequest
}

func (r TelephonyQuoteRequest) Owner() usecase.QuoteOwner {
	return usecase.QuoteOwner{ClientName: strings.TrimSpace(r.ClientName), AccountManager: strings.TrimSpace(r.AccountManager)}
}
