// Package taxtable holds the reference tables the pricing and telephony
// calculators are built from.
package taxtable

import "precifica_ti/internal/domain/entities"

// Tables is the complete set of reference data. Default returns fresh copies
// so callers may mutate their own snapshot.
type Tables struct {
	TaxRegimes    []entities.TaxRegime
	CostsExpenses entities.CostsExpenses
	LaborCosts    entities.LaborCosts
	CompanyData   entities.CompanyData
	ICMSRates     entities.ICMSRates

	PABXTiers         []entities.PABXTier
	DeviceRentalTiers []entities.DeviceRentalTier
	AIAgentPlans      []entities.AIAgentPlan
	SIPPlans          []entities.SIPPlan

	SIPAdditionalChannelCost   float64
	SIPEquipmentCostPerChannel float64
}

// Configuration returns the configuration-store part of the tables.
func (t Tables) Configuration() entities.Configuration {
	regimes := make([]entities.TaxRegime, len(t.TaxRegimes))
	copy(regimes, t.TaxRegimes)
	return entities.Configuration{
		TaxRegimes:    regimes,
		CostsExpenses: t.CostsExpenses,
		LaborCosts:    t.LaborCosts,
		CompanyData:   t.CompanyData,
		ICMSRates:     t.ICMSRates.Clone(),
	}
}

func Default() Tables {
	return Tables{
		TaxRegimes:    defaultTaxRegimes(),
		CostsExpenses: defaultCostsExpenses(),
		LaborCosts:    defaultLaborCosts().Recompute(),
		CompanyData: entities.CompanyData{
			Name:      "Empresa Integradora de TI Ltda",
			CNPJ:      "00.000.000/0001-00",
			Address:   "Rua Exemplo, 100",
			CityState: "Curitiba/PR",
			Phone:     "(41) 3000-0000",
			Email:     "comercial@empresa.com.br",
		},
		ICMSRates:                  DefaultICMSRates(),
		PABXTiers:                  defaultPABXTiers(),
		DeviceRentalTiers:          defaultDeviceRentalTiers(),
		AIAgentPlans:               defaultAIAgentPlans(),
		SIPPlans:                   defaultSIPPlans(),
		SIPAdditionalChannelCost:   50,
		SIPEquipmentCostPerChannel: 35,
	}
}

func defaultTaxRegimes() []entities.TaxRegime {
	return []entities.TaxRegime{
		{
			ID: "lucro_presumido", Name: "Lucro Presumido", Active: true,
			PIS: 0.65, COFINS: 3, CSLL: 9, IRPJ: 15, ICMS: 18, ISS: 5,
			PresumedProfitSale: 8, PresumedProfitService: 32,
		},
		{
			ID: "lucro_real", Name: "Lucro Real", Active: false,
			PIS: 1.65, COFINS: 7.6, CSLL: 9, IRPJ: 15, ICMS: 18, ISS: 5,
			PresumedProfitSale: 0, PresumedProfitService: 0,
		},
		{
			ID: "simples_nacional", Name: "Simples Nacional", Active: false,
			PIS: 0.28, COFINS: 1.28, CSLL: 0.35, IRPJ: 0.4, ICMS: 3.41, ISS: 2.79,
			PresumedProfitSale: 0, PresumedProfitService: 0,
		},
	}
}

func defaultCostsExpenses() entities.CostsExpenses {
	return entities.CostsExpenses{
		SalesCommission:      5,
		RentalCommission:     3,
		ServiceCommission:    5,
		ServiceProfitMargin:  20,
		AdminExpenses:        10,
		OtherExpenses:        2,
		MonthlyFinancialCost: 1.5,
		NPVDiscountRate:      1,
		Depreciation:         3,
	}
}

func defaultLaborCosts() entities.LaborCosts {
	return entities.LaborCosts{
		BaseSalary:             5000,
		Vacation:               8.33,
		VacationThird:          2.78,
		ThirteenthSalary:       8.33,
		INSSBase:               20,
		INSSSystemS:            5.8,
		INSSVacationThirteenth: 7.93,
		FGTS:                   8,
		FGTSVacationThirteenth: 1.55,
		FGTSTerminationFine:    4,
		Other:                  0,
		TransportVoucher:       200,
		HealthPlan:             350,
		MealVoucher:            600,
		WorkingDaysPerMonth:    22,
		HoursPerDay:            8,
	}
}

// DefaultICMSRates is the internal ICMS rate of every state.
func DefaultICMSRates() entities.ICMSRates {
	return entities.ICMSRates{
		"AC": 19, "AL": 19, "AP": 18, "AM": 20, "BA": 20.5, "CE": 20, "DF": 20,
		"ES": 17, "GO": 19, "MA": 22, "MT": 17, "MS": 17, "MG": 18, "PA": 19,
		"PB": 20, "PR": 19.5, "PE": 20.5, "PI": 21, "RJ": 22, "RN": 18, "RS": 17,
		"RO": 19.5, "RR": 20, "SC": 17, "SP": 18, "SE": 19, "TO": 20,
	}
}

func defaultPABXTiers() []entities.PABXTier {
	return []entities.PABXTier{
		{Min: 1, Max: 10, Setup: 1250, Monthly: 200},
		{Min: 11, Max: 20, Setup: 2000, Monthly: 220},
		{Min: 21, Max: 30, Setup: 2500, Monthly: 250},
		{Min: 31, Max: 50, Setup: 3000, Monthly: 300},
		{Min: 51, Max: 100, Setup: 3500, Monthly: 400},
		{Min: 101, Max: 500, Setup: 4000, Monthly: 500},
		{Min: 501, Max: 1000, Setup: 5000, Monthly: 600},
	}
}

func defaultDeviceRentalTiers() []entities.DeviceRentalTier {
	return []entities.DeviceRentalTier{
		{Min: 1, Max: 10, Price: 35},
		{Min: 11, Max: 20, Price: 34},
		{Min: 21, Max: 30, Price: 33},
		{Min: 31, Max: 50, Price: 32},
		{Min: 51, Max: 100, Price: 30},
		{Min: 101, Max: 500, Price: 0},
		{Min: 501, Max: 1000, Price: 0},
	}
}

func defaultAIAgentPlans() []entities.AIAgentPlan {
	return []entities.AIAgentPlan{
		{Key: "20k", Name: "Agente IA 20K Créditos", Monthly: 720, Messages: "10.000", Minutes: "2.000", PremiumVoice: "1.000"},
		{Key: "40k", Name: "Agente IA 40K Créditos", Monthly: 1370, Messages: "20.000", Minutes: "4.000", PremiumVoice: "2.000"},
		{Key: "60k", Name: "Agente IA 60K Créditos", Monthly: 1940, Messages: "30.000", Minutes: "6.000", PremiumVoice: "3.000"},
		{Key: "100k", Name: "Agente IA 100K Créditos", Monthly: 3060, Messages: "50.000", Minutes: "10.000", PremiumVoice: "5.000"},
		{Key: "150k", Name: "Agente IA 150K Créditos", Monthly: 4320, Messages: "75.000", Minutes: "15.000", PremiumVoice: "7.500"},
		{Key: "200k", Name: "Agente IA 200K Créditos", Monthly: 5400, Messages: "100.000", Minutes: "20.000", PremiumVoice: "10.000"},
	}
}

func defaultSIPPlans() []entities.SIPPlan {
	return []entities.SIPPlan{
		{Key: "plano1", Name: "Plano 1", Setup: 100, Monthly: 150, Channels: 2},
		{Key: "plano2", Name: "Plano 2", Setup: 150, Monthly: 250, Channels: 5},
		{Key: "plano3", Name: "Plano 3", Setup: 200, Monthly: 400, Channels: 10},
	}
}
