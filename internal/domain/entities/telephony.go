package entities

// PABXTier prices a range of extensions, both bounds inclusive.
type PABXTier struct {
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Setup   float64 `json:"setup"`
	Monthly float64 `json:"monthly"`
}

// DeviceRentalTier prices IP phone rental per unit. A zero price means the
// range is negotiated case by case.
type DeviceRentalTier struct {
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Price float64 `json:"price"`
}

// AIAgentPlan is a monthly AI agent add-on keyed by credit tier.
type AIAgentPlan struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Monthly      float64 `json:"monthly"`
	Messages     string  `json:"messages"`
	Minutes      string  `json:"minutes"`
	PremiumVoice string  `json:"premium_voice"`
}

// SIPPlan is a SIP trunk plan.
type SIPPlan struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Setup    float64 `json:"setup"`
	Monthly  float64 `json:"monthly"`
	Channels int     `json:"channels"`
}

// PABXResult is the priced PABX configuration.
type PABXResult struct {
	Extensions       int      `json:"extensions"`
	Tier             PABXTier `json:"tier"`
	Setup            float64  `json:"setup"`
	BaseMonthly      float64  `json:"base_monthly"`
	DeviceQuantity   int      `json:"device_quantity"`
	DeviceRentalCost float64  `json:"device_rental_cost"`
	AIAgentPlanKey   string   `json:"ai_agent_plan_key,omitempty"`
	AIAgentCost      float64  `json:"ai_agent_cost"`
	TotalMonthly     float64  `json:"total_monthly"`
}

// SIPResult is the priced SIP trunk configuration.
type SIPResult struct {
	Plan                   SIPPlan `json:"plan"`
	AdditionalChannels     int     `json:"additional_channels"`
	AdditionalChannelsCost float64 `json:"additional_channels_cost"`
	EquipmentRental        bool    `json:"equipment_rental"`
	Setup                  float64 `json:"setup"`
	Monthly                float64 `json:"monthly"`
}

// TelephonyProduct is a flattened telephony quote line.
type TelephonyProduct struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Setup       float64 `json:"setup"`
	Monthly     float64 `json:"monthly"`
}
