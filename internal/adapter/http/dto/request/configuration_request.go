package request

import "precifica_ti/internal/usecase"

// Configuration patches: absent fields are left untouched.

type TaxRegimePatchRequest struct {
	Name                  *string  `json:"name"`
	PIS                   *float64 `json:"pis"`
	COFINS                *float64 `json:"cofins"`
	CSLL                  *float64 `json:"csll"`
	IRPJ                  *float64 `json:"irpj"`
	ICMS                  *float64 `json:"icms"`
	ISS                   *float64 `json:"iss"`
	PresumedProfitSale    *float64 `json:"presumed_profit_sale"`
	PresumedProfitService *float64 `json:"presumed_profit_service"`
}

func (r TaxRegimePatchRequest) ToPatch() usecase.TaxRegimePatch {
	return usecase.TaxRegimePatch{
		Name:                  r.Name,
		PIS:                   r.PIS,
		COFINS:                r.COFINS,
		CSLL:                  r.CSLL,
		IRPJ:                  r.IRPJ,
		ICMS:                  r.ICMS,
		ISS:                   r.ISS,
		PresumedProfitSale:    r.PresumedProfitSale,
		PresumedProfitService: r.PresumedProfitService,
	}
}

type CostsExpensesPatchRequest struct {
	SalesCommission      *float64 `json:"sales_commission"`
	RentalCommission     *float64 `json:"rental_commission"`
	ServiceCommission    *float64 `json:"service_commission"`
	ServiceProfitMargin  *float64 `json:"service_profit_margin"`
	AdminExpenses        *float64 `json:"admin_expenses"`
	OtherExpenses        *float64 `json:"other_expenses"`
	MonthlyFinancialCost *float64 `json:"monthly_financial_cost"`
	NPVDiscountRate      *float64 `json:"npv_discount_rate"`
	Depreciation         *float64 `json:"depreciation"`
}

func (r CostsExpensesPatchRequest) ToPatch() usecase.CostsExpensesPatch {
	return usecase.CostsExpensesPatch{
		SalesCommission:      r.SalesCommission,
		RentalCommission:     r.RentalCommission,
		ServiceCommission:    r.ServiceCommission,
		ServiceProfitMargin:  r.ServiceProfitMargin,
		AdminExpenses:        r.AdminExpenses,
		OtherExpenses:        r.OtherExpenses,
		MonthlyFinancialCost: r.MonthlyFinancialCost,
		NPVDiscountRate:      r.NPVDiscountRate,
		Depreciation:         r.Depreciation,
	}
}

type LaborCostsPatchRequest struct {
	BaseSalary             *float64 `json:"base_salary"`
	Vacation               *float64 `json:"vacation"`
	VacationThird          *float64 `json:"vacation_third"`
	ThirteenthSalary       *float64 `json:"thirteenth_salary"`
	INSSBase               *float64 `json:"inss_base"`
	INSSSystemS            *float64 `json:"inss_system_s"`
	INSSVacationThirteenth *float64 `json:"inss_vacation_thirteenth"`
	FGTS                   *float64 `json:"fgts"`
	FGTSVacationThirteenth *float64 `json:"fgts_vacation_thirteenth"`
	FGTSTerminationFine    *float64 `json:"fgts_termination_fine"`
	Other                  *float64 `json:"other"`
	TransportVoucher       *float64 `json:"transport_voucher"`
	HealthPlan             *float64 `json:"health_plan"`
	MealVoucher            *float64 `json:"meal_voucher"`
	WorkingDaysPerMonth    *float64 `json:"working_days_per_month"`
	HoursPerDay            *float64 `json:"hours_per_day"`
}

func (r LaborCostsPatchRequest) ToPatch() usecase.LaborCostsPatch {
	return usecase.LaborCostsPatch{
		BaseSalary:             r.BaseSalary,
		Vacation:               r.Vacation,
		VacationThird:          r.VacationThird,
		ThirteenthSalary:       r.ThirteenthSalary,
		INSSBase:               r.INSSBase,
		INSSSystemS:            r.INSSSystemS,
		INSSVacationThirteenth: r.INSSVacationThirteenth,
		FGTS:                   r.FGTS,
		FGTSVacationThirteenth: r.FGTSVacationThirteenth,
		FGTSTerminationFine:    r.FGTSTerminationFine,
		Other:                  r.Other,
		TransportVoucher:       r.TransportVoucher,
		HealthPlan:             r.HealthPlan,
		MealVoucher:            r.MealVoucher,
		WorkingDaysPerMonth:    r.WorkingDaysPerMonth,
		HoursPerDay:            r.HoursPerDay,
	}
}

type CompanyDataPatchRequest struct {
	Name      *string `json:"name"`
	CNPJ      *string `json:"cnpj"`
	Address   *string `json:"address"`
	CityState *string `json:"city_state"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

func (r CompanyDataPatchRequest) ToPatch() usecase.CompanyDataPatch {
	return usecase.CompanyDataPatch{
		Name:      r.Name,
		CNPJ:      r.CNPJ,
		Address:   r.Address,
		CityState: r.CityState,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}

// ICMSRatesRequest maps state codes to percentages, e.g. {"rates": {"SP": 18}}.
type ICMSRatesRequest struct {
	Rates map[string]float64 `json:"rates" binding:"required"`
}
