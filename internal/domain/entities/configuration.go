package entities

import "time"

// TaxRegime is a tax regime with its percentage rates.
//
// More than one regime may be active at a time; callers that need a single
// regime take the first active one in seed order.
type TaxRegime struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Active                bool      `json:"active"`
	PIS                   float64   `json:"pis"`
	COFINS                float64   `json:"cofins"`
	CSLL                  float64   `json:"csll"`
	IRPJ                  float64   `json:"irpj"`
	ICMS                  float64   `json:"icms"`
	ISS                   float64   `json:"iss"`
	PresumedProfitSale    float64   `json:"presumed_profit_sale"`
	PresumedProfitService float64   `json:"presumed_profit_service"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// CostsExpenses holds commercial and overhead percentages.
type CostsExpenses struct {
	SalesCommission      float64   `json:"sales_commission"`
	RentalCommission     float64   `json:"rental_commission"`
	ServiceCommission    float64   `json:"service_commission"`
	ServiceProfitMargin  float64   `json:"service_profit_margin"`
	AdminExpenses        float64   `json:"admin_expenses"`
	OtherExpenses        float64   `json:"other_expenses"`
	MonthlyFinancialCost float64   `json:"monthly_financial_cost"`
	NPVDiscountRate      float64   `json:"npv_discount_rate"`
	Depreciation         float64   `json:"depreciation"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// HourlySaleMarkup converts hourly cost into hourly sale price.
const HourlySaleMarkup = 1.66

// LaborCosts holds payroll parameters for service pricing.
//
// TotalCharges, TotalBenefits, HourlyCost and HourlySalePrice are derived and
// only change through Recompute; edits to the inputs leave them stale.
type LaborCosts struct {
	BaseSalary             float64 `json:"base_salary"`
	Vacation               float64 `json:"vacation"`
	VacationThird          float64 `json:"vacation_third"`
	ThirteenthSalary       float64 `json:"thirteenth_salary"`
	INSSBase               float64 `json:"inss_base"`
	INSSSystemS            float64 `json:"inss_system_s"`
	INSSVacationThirteenth float64 `json:"inss_vacation_thirteenth"`
	FGTS                   float64 `json:"fgts"`
	FGTSVacationThirteenth float64 `json:"fgts_vacation_thirteenth"`
	FGTSTerminationFine    float64 `json:"fgts_termination_fine"`
	Other                  float64 `json:"other"`

	TransportVoucher float64 `json:"transport_voucher"`
	HealthPlan       float64 `json:"health_plan"`
	MealVoucher      float64 `json:"meal_voucher"`

	WorkingDaysPerMonth float64 `json:"working_days_per_month"`
	HoursPerDay         float64 `json:"hours_per_day"`

	TotalCharges    float64   `json:"total_charges"`
	TotalBenefits   float64   `json:"total_benefits"`
	HourlyCost      float64   `json:"hourly_cost"`
	HourlySalePrice float64   `json:"hourly_sale_price"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Recompute returns a copy with the derived fields brought up to date.
func (l LaborCosts) Recompute() LaborCosts {
	out := l
	out.TotalCharges = l.Vacation + l.VacationThird + l.ThirteenthSalary +
		l.INSSBase + l.INSSSystemS + l.INSSVacationThirteenth +
		l.FGTS + l.FGTSVacationThirteenth + l.FGTSTerminationFine + l.Other
	out.TotalBenefits = l.TransportVoucher + l.HealthPlan + l.MealVoucher

	monthlyHours := l.WorkingDaysPerMonth * l.HoursPerDay
	if monthlyHours <= 0 {
		out.HourlyCost = 0
		out.HourlySalePrice = 0
		return out
	}
	monthlyCost := l.BaseSalary*(1+out.TotalCharges/100) + out.TotalBenefits
	out.HourlyCost = monthlyCost / monthlyHours
	out.HourlySalePrice = out.HourlyCost * HourlySaleMarkup
	return out
}

// CompanyData identifies the issuing company on proposals.
type CompanyData struct {
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	Address   string    `json:"address"`
	CityState string    `json:"city_state"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ICMSRates maps a state code (UF) to its internal ICMS rate in percent.
type ICMSRates map[string]float64

// Rate returns the rate for uf and whether the state is present.
func (r ICMSRates) Rate(uf string) (float64, bool) {
	v, ok := r[uf]
	return v, ok
}

// Clone returns an independent copy.
func (r ICMSRates) Clone() ICMSRates {
	out := make(ICMSRates, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Configuration is the full persisted configuration snapshot.
type Configuration struct {
	TaxRegimes    []TaxRegime   `json:"tax_regimes"`
	CostsExpenses CostsExpenses `json:"costs_expenses"`
	LaborCosts    LaborCosts    `json:"labor_costs"`
	CompanyData   CompanyData   `json:"company_data"`
	ICMSRates     ICMSRates     `json:"icms_rates"`
}

// IsZero reports whether the snapshot was never seeded.
func (c Configuration) IsZero() bool {
	return len(c.TaxRegimes) == 0 && len(c.ICMSRates) == 0
}
