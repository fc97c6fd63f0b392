package usecase

import (
	"context"
	"errors"
	"testing"

	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/taxtable"
	mock_interfaces "precifica_ti/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func storedConfiguration() entities.Configuration {
	return taxtable.Default().Configuration()
}

func echoSave(_ context.Context, c entities.Configuration) (entities.Configuration, error) {
	return c, nil
}

func ptr[T any](v T) *T { return &v }

func TestConfigurationUseCase_Get(t *testing.T) {
	t.Run("seeds defaults on first read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.Configuration{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)

		cfg, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.TaxRegimes) != 3 || len(cfg.ICMSRates) != 27 {
			t.Fatalf("expected seeded tables, got %d regimes and %d states", len(cfg.TaxRegimes), len(cfg.ICMSRates))
		}
		if cfg.LaborCosts.UpdatedAt.IsZero() {
			t.Fatalf("expected seed to be timestamped")
		}
	})

	t.Run("returns stored configuration untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		stored := storedConfiguration()
		stored.CompanyData.Name = "Acme TI"
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil)

		cfg, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.CompanyData.Name != "Acme TI" {
			t.Fatalf("expected stored company name, got %q", cfg.CompanyData.Name)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.Configuration{}, errors.New("db"))

		if _, err := uc.Get(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestConfigurationUseCase_TaxRegimes(t *testing.T) {
	t.Run("toggle flips active flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(storedConfiguration(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Configuration) (entities.Configuration, error) {
			if c.TaxRegimes[1].ID != "lucro_real" || !c.TaxRegimes[1].Active {
				t.Fatalf("expected lucro_real to be saved as active")
			}
			return c, nil
		})

		r, err := uc.ToggleTaxRegime(context.Background(), "lucro_real")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Active || r.UpdatedAt.IsZero() {
			t.Fatalf("expected active and timestamped regime, got %+v", r)
		}
	})

	t.Run("unknown regime", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(storedConfiguration(), nil)

		if _, err := uc.ToggleTaxRegime(context.Background(), "mei"); !errors.Is(err, ErrTaxRegimeNotFound) {
			t.Fatalf("expected ErrTaxRegimeNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc := NewConfigurationUseCase(nil)
		if _, err := uc.UpdateTaxRegime(context.Background(), " ", TaxRegimePatch{}); !errors.Is(err, ErrInvalidTaxRegimeID) {
			t.Fatalf("expected ErrInvalidTaxRegimeID, got %v", err)
		}
	})

	t.Run("update rejects out of range rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(storedConfiguration(), nil)

		_, err := uc.UpdateTaxRegime(context.Background(), "lucro_presumido", TaxRegimePatch{PIS: ptr(120.0)})
		if !errors.Is(err, ErrInvalidPercentage) {
			t.Fatalf("expected ErrInvalidPercentage, got %v", err)
		}
	})

	t.Run("update applies only given fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		stored := storedConfiguration()
		before := stored.TaxRegimes[0]
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)

		r, err := uc.UpdateTaxRegime(context.Background(), "lucro_presumido", TaxRegimePatch{ISS: ptr(2.0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ISS != 2 || r.PIS != before.PIS || r.Name != before.Name {
			t.Fatalf("unexpected regime after patch: %+v", r)
		}
	})

	t.Run("active regime is the first active one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		stored := storedConfiguration()
		stored.TaxRegimes[2].Active = true
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil)

		r, err := uc.ActiveTaxRegime(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID != "lucro_presumido" {
			t.Fatalf("expected lucro_presumido, got %s", r.ID)
		}
	})

	t.Run("no active regime", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		stored := storedConfiguration()
		for i := range stored.TaxRegimes {
			stored.TaxRegimes[i].Active = false
		}
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil)

		if _, err := uc.ActiveTaxRegime(context.Background()); !errors.Is(err, ErrNoActiveTaxRegime) {
			t.Fatalf("expected ErrNoActiveTaxRegime, got %v", err)
		}
	})
}

func TestConfigurationUseCase_LaborCosts(t *testing.T) {
	t.Run("update keeps derived values stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		stored := storedConfiguration()
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)

		l, err := uc.UpdateLaborCosts(context.Background(), LaborCostsPatch{BaseSalary: ptr(8000.0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.BaseSalary != 8000 {
			t.Fatalf("expected salary 8000, got %v", l.BaseSalary)
		}
		if l.HourlyCost != stored.LaborCosts.HourlyCost {
			t.Fatalf("expected hourly cost to stay %v until commit, got %v", stored.LaborCosts.HourlyCost, l.HourlyCost)
		}
	})

	t.Run("negative schedule is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(storedConfiguration(), nil)

		if _, err := uc.UpdateLaborCosts(context.Background(), LaborCostsPatch{HoursPerDay: ptr(-1.0)}); !errors.Is(err, ErrInvalidLaborSchedule) {
			t.Fatalf("expected ErrInvalidLaborSchedule, got %v", err)
		}
	})

	t.Run("commit recomputes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		stored := storedConfiguration()
		stored.LaborCosts.BaseSalary = 8000
		want := stored.LaborCosts.Recompute()
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)

		l, err := uc.CommitLaborCosts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.HourlyCost != want.HourlyCost || l.HourlySalePrice != want.HourlySalePrice {
			t.Fatalf("expected hourly %v/%v, got %v/%v", want.HourlyCost, want.HourlySalePrice, l.HourlyCost, l.HourlySalePrice)
		}
		if l.HourlyCost == storedConfiguration().LaborCosts.HourlyCost {
			t.Fatalf("expected hourly cost to change after commit")
		}
	})
}

func TestConfigurationUseCase_ICMSRates(t *testing.T) {
	t.Run("out of range rate", func(t *testing.T) {
		uc := NewConfigurationUseCase(nil)
		if _, err := uc.UpdateICMSRates(context.Background(), map[string]float64{"SP": 120}); !errors.Is(err, ErrInvalidICMSRate) {
			t.Fatalf("expected ErrInvalidICMSRate, got %v", err)
		}
	})

	t.Run("invalid state code", func(t *testing.T) {
		uc := NewConfigurationUseCase(nil)
		if _, err := uc.UpdateICMSRates(context.Background(), map[string]float64{"SAO": 18}); !errors.Is(err, ErrInvalidStateCode) {
			t.Fatalf("expected ErrInvalidStateCode, got %v", err)
		}
	})

	t.Run("merges into stored table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(storedConfiguration(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)

		rates, err := uc.UpdateICMSRates(context.Background(), map[string]float64{" sp ": 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates["SP"] != 20 || len(rates) != 27 {
			t.Fatalf("expected SP=20 in a full table, got SP=%v len=%d", rates["SP"], len(rates))
		}
	})
}

func TestConfigurationUseCase_CompanyAndCosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIConfigurationRepository(ctrl)
	uc := NewConfigurationUseCase(repo)

	repo.EXPECT().Get(gomock.Any()).Return(storedConfiguration(), nil).Times(2)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave).Times(2)

	c, err := uc.UpdateCompanyData(context.Background(), CompanyDataPatch{Name: ptr("  Acme TI  ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Acme TI" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}

	costs, err := uc.UpdateCostsExpenses(context.Background(), CostsExpensesPatch{AdminExpenses: ptr(7.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if costs.AdminExpenses != 7.5 || costs.UpdatedAt.IsZero() {
		t.Fatalf("unexpected costs: %+v", costs)
	}
}
