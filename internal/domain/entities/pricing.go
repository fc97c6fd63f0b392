package entities

// CommercialModule tags the commercial mode a line item or budget belongs to.
type CommercialModule string

const (
	ModuleSales     CommercialModule = "sales"
	ModuleRental    CommercialModule = "rental"
	ModuleServices  CommercialModule = "services"
	ModuleTelephony CommercialModule = "telephony"
)

// Valid reports whether m is a known module.
func (m CommercialModule) Valid() bool {
	switch m {
	case ModuleSales, ModuleRental, ModuleServices, ModuleTelephony:
		return true
	}
	return false
}

// PricingCalculation is the output shape of every pricing calculator.
type PricingCalculation struct {
	BaseCost         float64 `json:"base_cost"`
	MarginCommission float64 `json:"margin_commission"`
	Taxes            float64 `json:"taxes"`
	FinalPrice       float64 `json:"final_price"`
}

// LineItem is a priced row of a worksheet. Module selects which details
// variant is set; the others stay nil.
type LineItem struct {
	ID          string             `json:"id"`
	Description string             `json:"description"`
	Quantity    float64            `json:"quantity"`
	Module      CommercialModule   `json:"module"`
	Pricing     PricingCalculation `json:"pricing"`

	Sales   *SalesDetails   `json:"sales,omitempty"`
	Rental  *RentalDetails  `json:"rental,omitempty"`
	Service *ServiceDetails `json:"service,omitempty"`
}

type SalesDetails struct {
	UnitCost             float64 `json:"unit_cost"`
	ICMSCredit           float64 `json:"icms_credit"`
	TotalCost            float64 `json:"total_cost"`
	ICMSSalePercent      float64 `json:"icms_sale_percent"`
	ICMSDestLocalPercent float64 `json:"icms_dest_local_percent"`
	DIFALSale            float64 `json:"difal_sale"`
	ICMSST               bool    `json:"icms_st"`
	GrossRevenue         float64 `json:"gross_revenue"`
}

type RentalDetails struct {
	UnitValue         float64 `json:"unit_value"`
	ICMSPurchase      float64 `json:"icms_purchase"`
	ICMSPR            float64 `json:"icms_pr"`
	Freight           float64 `json:"freight"`
	TotalValue        float64 `json:"total_value"`
	TotalActiveCost   float64 `json:"total_active_cost"`
	MonthlyActiveCost float64 `json:"monthly_active_cost"`
}

type ServiceDetails struct {
	ServiceType string  `json:"service_type"`
	HourlyRate  float64 `json:"hourly_rate"`
	TotalHours  float64 `json:"total_hours"`
	TotalValue  float64 `json:"total_value"`
}
