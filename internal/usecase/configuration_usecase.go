package usecase

import (
	"context"
	"errors"
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/taxtable"
	"precifica_ti/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrTaxRegimeNotFound    = errors.New("tax regime not found")
	ErrNoActiveTaxRegime    = errors.New("no active tax regime")
	ErrInvalidTaxRegimeID   = errors.New("invalid tax regime id")
	ErrInvalidPercentage    = errors.New("percentage must be between 0 and 100")
	ErrInvalidICMSRate      = errors.New("icms rate must be between 0 and 100")
	ErrInvalidStateCode     = errors.New("invalid state code")
	ErrInvalidLaborSchedule = errors.New("working days and hours per day must not be negative")
)

// TaxRegimePatch is a partial update; nil fields are left untouched.
type TaxRegimePatch struct {
	Name                  *string
	PIS                   *float64
	COFINS                *float64
	CSLL                  *float64
	IRPJ                  *float64
	ICMS                  *float64
	ISS                   *float64
	PresumedProfitSale    *float64
	PresumedProfitService *float64
}

type CostsExpensesPatch struct {
	SalesCommission      *float64
	RentalCommission     *float64
	ServiceCommission    *float64
	ServiceProfitMargin  *float64
	AdminExpenses        *float64
	OtherExpenses        *float64
	MonthlyFinancialCost *float64
	NPVDiscountRate      *float64
	Depreciation         *float64
}

type LaborCostsPatch struct {
	BaseSalary             *float64
	Vacation               *float64
	VacationThird          *float64
	ThirteenthSalary       *float64
	INSSBase               *float64
	INSSSystemS            *float64
	INSSVacationThirteenth *float64
	FGTS                   *float64
	FGTSVacationThirteenth *float64
	FGTSTerminationFine    *float64
	Other                  *float64
	TransportVoucher       *float64
	HealthPlan             *float64
	MealVoucher            *float64
	WorkingDaysPerMonth    *float64
	HoursPerDay            *float64
}

type CompanyDataPatch struct {
	Name      *string
	CNPJ      *string
	Address   *string
	CityState *string
	Phone     *string
	Email     *string
}

// IConfigurationUseCase manages the tax tables, costs, labor and company data
// used by the pricing modules.
type IConfigurationUseCase interface {
	Get(ctx context.Context) (entities.Configuration, error)
	UpdateTaxRegime(ctx context.Context, id string, patch TaxRegimePatch) (entities.TaxRegime, error)
	ToggleTaxRegime(ctx context.Context, id string) (entities.TaxRegime, error)
	ActiveTaxRegime(ctx context.Context) (entities.TaxRegime, error)
	UpdateCostsExpenses(ctx context.Context, patch CostsExpensesPatch) (entities.CostsExpenses, error)
	UpdateLaborCosts(ctx context.Context, patch LaborCostsPatch) (entities.LaborCosts, error)
	CommitLaborCosts(ctx context.Context) (entities.LaborCosts, error)
	UpdateCompanyData(ctx context.Context, patch CompanyDataPatch) (entities.CompanyData, error)
	UpdateICMSRates(ctx context.Context, rates map[string]float64) (entities.ICMSRates, error)
}

type ConfigurationUseCase struct {
	repo interfaces.IConfigurationRepository
}

var _ IConfigurationUseCase = (*ConfigurationUseCase)(nil)

func NewConfigurationUseCase(repo interfaces.IConfigurationRepository) *ConfigurationUseCase {
	return &ConfigurationUseCase{repo: repo}
}

// Get returns the persisted configuration, seeding the defaults on first use.
func (u *ConfigurationUseCase) Get(ctx context.Context) (entities.Configuration, error) {
	cfg, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Configuration{}, err
	}
	if !cfg.IsZero() {
		return cfg, nil
	}

	logrus.Info("[configuration][usecase] no configuration stored; seeding defaults")
	seed := taxtable.Default().Configuration()
	now := time.Now().UTC()
	for i := range seed.TaxRegimes {
		seed.TaxRegimes[i].UpdatedAt = now
	}
	seed.CostsExpenses.UpdatedAt = now
	seed.LaborCosts.UpdatedAt = now
	seed.CompanyData.UpdatedAt = now
	return u.repo.Save(ctx, seed)
}

func (u *ConfigurationUseCase) UpdateTaxRegime(ctx context.Context, id string, patch TaxRegimePatch) (entities.TaxRegime, error) {
	return u.mutateTaxRegime(ctx, id, func(r *entities.TaxRegime) error {
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name != "" {
				r.Name = name
			}
		}
		for _, f := range []struct {
			dst *float64
			src *float64
		}{
			{&r.PIS, patch.PIS},
			{&r.COFINS, patch.COFINS},
			{&r.CSLL, patch.CSLL},
			{&r.IRPJ, patch.IRPJ},
			{&r.ICMS, patch.ICMS},
			{&r.ISS, patch.ISS},
			{&r.PresumedProfitSale, patch.PresumedProfitSale},
			{&r.PresumedProfitService, patch.PresumedProfitService},
		} {
			if err := setPercent(f.dst, f.src); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *ConfigurationUseCase) ToggleTaxRegime(ctx context.Context, id string) (entities.TaxRegime, error) {
	return u.mutateTaxRegime(ctx, id, func(r *entities.TaxRegime) error {
		r.Active = !r.Active
		return nil
	})
}

func (u *ConfigurationUseCase) mutateTaxRegime(ctx context.Context, id string, mutate func(*entities.TaxRegime) error) (entities.TaxRegime, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TaxRegime{}, ErrInvalidTaxRegimeID
	}
	cfg, err := u.Get(ctx)
	if err != nil {
		return entities.TaxRegime{}, err
	}

	idx := -1
	for i, r := range cfg.TaxRegimes {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.TaxRegime{}, ErrTaxRegimeNotFound
	}

	regime := cfg.TaxRegimes[idx]
	if err := mutate(&regime); err != nil {
		return entities.TaxRegime{}, err
	}
	regime.UpdatedAt = time.Now().UTC()
	cfg.TaxRegimes[idx] = regime

	if _, err := u.repo.Save(ctx, cfg); err != nil {
		return entities.TaxRegime{}, err
	}
	logrus.WithFields(logrus.Fields{"regime_id": id, "active": regime.Active}).Info("[configuration][usecase] tax regime updated")
	return regime, nil
}

// ActiveTaxRegime returns the first active regime in seed order.
func (u *ConfigurationUseCase) ActiveTaxRegime(ctx context.Context) (entities.TaxRegime, error) {
	cfg, err := u.Get(ctx)
	if err != nil {
		return entities.TaxRegime{}, err
	}
	for _, r := range cfg.TaxRegimes {
		if r.Active {
			return r, nil
		}
	}
	return entities.TaxRegime{}, ErrNoActiveTaxRegime
}

func (u *ConfigurationUseCase) UpdateCostsExpenses(ctx context.Context, patch CostsExpensesPatch) (entities.CostsExpenses, error) {
	cfg, err := u.Get(ctx)
	if err != nil {
		return entities.CostsExpenses{}, err
	}
	c := cfg.CostsExpenses
	for _, f := range []struct {
		dst *float64
		src *float64
	}{
		{&c.SalesCommission, patch.SalesCommission},
		{&c.RentalCommission, patch.RentalCommission},
		{&c.ServiceCommission, patch.ServiceCommission},
		{&c.ServiceProfitMargin, patch.ServiceProfitMargin},
		{&c.AdminExpenses, patch.AdminExpenses},
		{&c.OtherExpenses, patch.OtherExpenses},
		{&c.MonthlyFinancialCost, patch.MonthlyFinancialCost},
		{&c.NPVDiscountRate, patch.NPVDiscountRate},
		{&c.Depreciation, patch.Depreciation},
	} {
		if err := setPercent(f.dst, f.src); err != nil {
			return entities.CostsExpenses{}, err
		}
	}
	c.UpdatedAt = time.Now().UTC()
	cfg.CostsExpenses = c

	if _, err := u.repo.Save(ctx, cfg); err != nil {
		return entities.CostsExpenses{}, err
	}
	return c, nil
}

// UpdateLaborCosts edits the inputs only. Derived values keep their previous
// figures until CommitLaborCosts runs.
func (u *ConfigurationUseCase) UpdateLaborCosts(ctx context.Context, patch LaborCostsPatch) (entities.LaborCosts, error) {
	cfg, err := u.Get(ctx)
	if err != nil {
		return entities.LaborCosts{}, err
	}
	l := cfg.LaborCosts
	for _, f := range []struct {
		dst *float64
		src *float64
	}{
		{&l.Vacation, patch.Vacation},
		{&l.VacationThird, patch.VacationThird},
		{&l.ThirteenthSalary, patch.ThirteenthSalary},
		{&l.INSSBase, patch.INSSBase},
		{&l.INSSSystemS, patch.INSSSystemS},
		{&l.INSSVacationThirteenth, patch.INSSVacationThirteenth},
		{&l.FGTS, patch.FGTS},
		{&l.FGTSVacationThirteenth, patch.FGTSVacationThirteenth},
		{&l.FGTSTerminationFine, patch.FGTSTerminationFine},
		{&l.Other, patch.Other},
	} {
		if err := setPercent(f.dst, f.src); err != nil {
			return entities.LaborCosts{}, err
		}
	}
	for _, f := range []struct {
		dst *float64
		src *float64
	}{
		{&l.BaseSalary, patch.BaseSalary},
		{&l.TransportVoucher, patch.TransportVoucher},
		{&l.HealthPlan, patch.HealthPlan},
		{&l.MealVoucher, patch.MealVoucher},
		{&l.WorkingDaysPerMonth, patch.WorkingDaysPerMonth},
		{&l.HoursPerDay, patch.HoursPerDay},
	} {
		if f.src == nil {
			continue
		}
		if *f.src < 0 {
			return entities.LaborCosts{}, ErrInvalidLaborSchedule
		}
		*f.dst = *f.src
	}
	cfg.LaborCosts = l

	if _, err := u.repo.Save(ctx, cfg); err != nil {
		return entities.LaborCosts{}, err
	}
	return l, nil
}

// CommitLaborCosts recomputes the derived labor values and stores them.
func (u *ConfigurationUseCase) CommitLaborCosts(ctx context.Context) (entities.LaborCosts, error) {
	cfg, err := u.Get(ctx)
	if err != nil {
		return entities.LaborCosts{}, err
	}
	l := cfg.LaborCosts.Recompute()
	l.UpdatedAt = time.Now().UTC()
	cfg.LaborCosts = l

	if _, err := u.repo.Save(ctx, cfg); err != nil {
		return entities.LaborCosts{}, err
	}
	logrus.WithFields(logrus.Fields{
		"hourly_cost":       l.HourlyCost,
		"hourly_sale_price": l.HourlySalePrice,
	}).Info("[configuration][usecase] labor costs committed")
	return l, nil
}

func (u *ConfigurationUseCase) UpdateCompanyData(ctx context.Context, patch CompanyDataPatch) (entities.CompanyData, error) {
	cfg, err := u.Get(ctx)
	if err != nil {
		return entities.CompanyData{}, err
	}
	c := cfg.CompanyData
	for _, f := range []struct {
		dst *string
		src *string
	}{
		{&c.Name, patch.Name},
		{&c.CNPJ, patch.CNPJ},
		{&c.Address, patch.Address},
		{&c.CityState, patch.CityState},
		{&c.Phone, patch.Phone},
		{&c.Email, patch.Email},
	} {
		if f.src != nil {
			*f.dst = strings.TrimSpace(*f.src)
		}
	}
	c.UpdatedAt = time.Now().UTC()
	cfg.CompanyData = c

	if _, err := u.repo.Save(ctx, cfg); err != nil {
		return entities.CompanyData{}, err
	}
	return c, nil
}

// UpdateICMSRates merges per-state rates into the stored table.
func (u *ConfigurationUseCase) UpdateICMSRates(ctx context.Context, rates map[string]float64) (entities.ICMSRates, error) {
	normalized := make(map[string]float64, len(rates))
	for uf, rate := range rates {
		uf = strings.ToUpper(strings.TrimSpace(uf))
		if len(uf) != 2 {
			return nil, ErrInvalidStateCode
		}
		if rate < 0 || rate > 100 {
			return nil, ErrInvalidICMSRate
		}
		normalized[uf] = rate
	}

	cfg, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}
	table := cfg.ICMSRates.Clone()
	for uf, rate := range normalized {
		table[uf] = rate
	}
	cfg.ICMSRates = table

	if _, err := u.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return table, nil
}

func setPercent(dst, src *float64) error {
	if src == nil {
		return nil
	}
	if *src < 0 || *src > 100 {
		return ErrInvalidPercentage
	}
	*dst = *src
	return nil
}
