// Package telephony prices cloud PABX and SIP trunk plans from tiered tables.
package telephony

import (
	"fmt"

	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/taxtable"
)

// Tables are the price tables the calculator reads. They are never mutated.
type Tables struct {
	PABXTiers               []entities.PABXTier
	DeviceRentalTiers       []entities.DeviceRentalTier
	AIAgentPlans            []entities.AIAgentPlan
	SIPPlans                []entities.SIPPlan
	AdditionalChannelCost   float64
	EquipmentCostPerChannel float64
}

func TablesFrom(t taxtable.Tables) Tables {
	return Tables{
		PABXTiers:               t.PABXTiers,
		DeviceRentalTiers:       t.DeviceRentalTiers,
		AIAgentPlans:            t.AIAgentPlans,
		SIPPlans:                t.SIPPlans,
		AdditionalChannelCost:   t.SIPAdditionalChannelCost,
		EquipmentCostPerChannel: t.SIPEquipmentCostPerChannel,
	}
}

type PABXInput struct {
	Extensions     int
	DeviceRental   bool
	DeviceQuantity int
	AIAgent        bool
	AIAgentPlan    string
}

type SIPInput struct {
	PlanKey            string
	AdditionalChannels int
	EquipmentRental    bool
}

type Calculator struct {
	tables Tables
}

func NewCalculator(tables Tables) *Calculator {
	return &Calculator{tables: tables}
}

func (c *Calculator) FindPABXTier(extensions int) (entities.PABXTier, bool) {
	for _, t := range c.tables.PABXTiers {
		if extensions >= t.Min && extensions <= t.Max {
			return t, true
		}
	}
	return entities.PABXTier{}, false
}

// DeviceRentalCost returns the monthly rental for quantity phones. Ranges
// priced at zero are negotiated separately and contribute nothing.
func (c *Calculator) DeviceRentalCost(quantity int) float64 {
	if quantity <= 0 {
		return 0
	}
	for _, t := range c.tables.DeviceRentalTiers {
		if quantity >= t.Min && quantity <= t.Max {
			return t.Price * float64(quantity)
		}
	}
	return 0
}

func (c *Calculator) AIAgentPlan(key string) (entities.AIAgentPlan, bool) {
	for _, p := range c.tables.AIAgentPlans {
		if p.Key == key {
			return p, true
		}
	}
	return entities.AIAgentPlan{}, false
}

func (c *Calculator) SIPPlan(key string) (entities.SIPPlan, bool) {
	for _, p := range c.tables.SIPPlans {
		if p.Key == key {
			return p, true
		}
	}
	return entities.SIPPlan{}, false
}

// QuotePABX prices a PABX configuration. ok is false when the extension
// count falls outside every tier.
func (c *Calculator) QuotePABX(in PABXInput) (entities.PABXResult, bool) {
	if in.Extensions <= 0 {
		return entities.PABXResult{}, false
	}
	tier, ok := c.FindPABXTier(in.Extensions)
	if !ok {
		return entities.PABXResult{}, false
	}

	res := entities.PABXResult{
		Extensions:  in.Extensions,
		Tier:        tier,
		Setup:       tier.Setup,
		BaseMonthly: tier.Monthly,
	}
	if in.Extensions > tier.Max {
		res.BaseMonthly += float64(in.Extensions-tier.Max) * (tier.Monthly / float64(tier.Max))
	}
	if in.DeviceRental && in.DeviceQuantity > 0 {
		res.DeviceQuantity = in.DeviceQuantity
		res.DeviceRentalCost = c.DeviceRentalCost(in.DeviceQuantity)
	}
	if in.AIAgent {
		if plan, ok := c.AIAgentPlan(in.AIAgentPlan); ok {
			res.AIAgentPlanKey = plan.Key
			res.AIAgentCost = plan.Monthly
		}
	}
	res.TotalMonthly = res.BaseMonthly + res.DeviceRentalCost + res.AIAgentCost
	return res, true
}

// QuoteSIP prices a SIP trunk plan. ok is false for an unknown plan key.
func (c *Calculator) QuoteSIP(in SIPInput) (entities.SIPResult, bool) {
	plan, ok := c.SIPPlan(in.PlanKey)
	if !ok {
		return entities.SIPResult{}, false
	}
	res := entities.SIPResult{
		Plan:               plan,
		AdditionalChannels: in.AdditionalChannels,
		EquipmentRental:    in.EquipmentRental,
		Setup:              plan.Setup,
		Monthly:            plan.Monthly,
	}
	if in.EquipmentRental {
		res.Monthly += c.tables.EquipmentCostPerChannel * float64(plan.Channels)
	}
	res.AdditionalChannelsCost = float64(in.AdditionalChannels) * c.tables.AdditionalChannelCost
	res.Monthly += res.AdditionalChannelsCost
	return res, true
}

// PABXLines flattens a PABX result into quote lines: the base line, then
// device rental and AI agent lines when they carry a cost.
func (c *Calculator) PABXLines(res entities.PABXResult) []entities.TelephonyProduct {
	lines := []entities.TelephonyProduct{{
		Description: fmt.Sprintf("PABX em Nuvem para %d ramais", res.Extensions),
		Setup:       res.Setup,
		Monthly:     res.BaseMonthly,
	}}
	if res.DeviceQuantity > 0 && res.DeviceRentalCost > 0 {
		lines = append(lines, entities.TelephonyProduct{
			Description: fmt.Sprintf("Aluguel de %d aparelho(s) IP", res.DeviceQuantity),
			Monthly:     res.DeviceRentalCost,
		})
	}
	if res.AIAgentCost > 0 {
		if plan, ok := c.AIAgentPlan(res.AIAgentPlanKey); ok {
			lines = append(lines, entities.TelephonyProduct{
				Description: fmt.Sprintf("%s (Até: %s msg, %s min, %s voz premium)", plan.Name, plan.Messages, plan.Minutes, plan.PremiumVoice),
				Monthly:     res.AIAgentCost,
			})
		}
	}
	return lines
}

func (c *Calculator) SIPLine(res entities.SIPResult) entities.TelephonyProduct {
	desc := fmt.Sprintf("Plano SIP Trunk (%d canais)", res.Plan.Channels)
	if res.EquipmentRental {
		desc += " com equipamento"
	}
	if res.AdditionalChannels > 0 {
		desc += fmt.Sprintf(" + %d canais adicionais", res.AdditionalChannels)
	}
	return entities.TelephonyProduct{Description: desc, Setup: res.Setup, Monthly: res.Monthly}
}
