package pricing

import (
	"math"
	"testing"

	"precifica_ti/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestEngine_CalculateSalesPrice(t *testing.T) {
	e := NewEngine(DefaultRates())

	got := e.CalculateSalesPrice(100, 10, 20)

	assert.Equal(t, 1000.0, got.BaseCost)
	assert.InDelta(t, 200.0, got.MarginCommission, 1e-9)
	assert.InDelta(t, 180.0, got.Taxes, 1e-9)
	assert.InDelta(t, 1380.0, got.FinalPrice, 1e-9)
}

func TestEngine_SalesFinalPriceProperty(t *testing.T) {
	e := NewEngine(DefaultRates())
	cases := []struct{ unitCost, quantity, margin float64 }{
		{0, 0, 0},
		{1, 1, 0},
		{12.5, 3, 10},
		{999.99, 7, 35},
		{4500, 120, 100},
	}
	for _, tc := range cases {
		got := e.CalculateSalesPrice(tc.unitCost, tc.quantity, tc.margin)
		want := got.BaseCost * (1 + tc.margin/100) * 1.15
		assert.InDelta(t, want, got.FinalPrice, 1e-6, "unitCost=%v quantity=%v margin=%v", tc.unitCost, tc.quantity, tc.margin)
	}
}

func TestEngine_NegativeInputsPropagate(t *testing.T) {
	got := NewEngine(DefaultRates()).CalculateSalesPrice(-10, 2, 0)
	assert.Equal(t, -20.0, got.BaseCost)
	assert.InDelta(t, -23.0, got.FinalPrice, 1e-9)
}

func TestEngine_CalculateRentalPrice(t *testing.T) {
	e := NewEngine(DefaultRates())

	got := e.CalculateRentalPrice(1200, 2, 12, 20)

	assert.Equal(t, 200.0, got.BaseCost)
	assert.InDelta(t, 40.0, got.MarginCommission, 1e-9)
	assert.InDelta(t, 36.0, got.Taxes, 1e-9)
	assert.InDelta(t, 276.0, got.FinalPrice, 1e-9)
}

func TestEngine_RentalZeroPeriodIsNotClamped(t *testing.T) {
	got := NewEngine(DefaultRates()).CalculateRentalPrice(1200, 2, 0, 20)
	assert.True(t, math.IsInf(got.BaseCost, 1))

	got = NewEngine(DefaultRates()).CalculateRentalPrice(0, 2, 0, 20)
	assert.True(t, math.IsNaN(got.BaseCost))
}

func TestEngine_CalculateServicePrice(t *testing.T) {
	e := NewEngine(DefaultRates())

	service := e.CalculateServicePrice(100, 10, 20)
	sales := e.CalculateSalesPrice(100, 10, 20)

	assert.Equal(t, 1000.0, service.BaseCost)
	assert.InDelta(t, 132.0, service.Taxes, 1e-9)
	assert.InDelta(t, 1332.0, service.FinalPrice, 1e-9)
	assert.Less(t, service.Taxes, sales.Taxes)
	assert.InDelta(t, service.FinalPrice/(1.2*1000), 1.11, 1e-9)
}

func TestEngine_CalculateDIFAL(t *testing.T) {
	e := NewEngine(DefaultRates())
	table := entities.ICMSRates{"SP": 18, "PR": 12, "SC": 7, "ZZ": 0}

	tests := []struct {
		name string
		uf   string
		want float64
	}{
		{name: "higher destination rate", uf: "SP", want: 600},
		{name: "equal to origin", uf: "PR", want: 0},
		{name: "lower destination rate", uf: "SC", want: 0},
		{name: "zero rate present in table", uf: "ZZ", want: 0},
		{name: "unknown state falls back to 7", uf: "XX", want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, e.CalculateDIFAL(10000, tc.uf, table), 1e-9)
		})
	}
}

func TestEngine_DIFALFallbackAboveOrigin(t *testing.T) {
	rates := DefaultRates()
	rates.FallbackICMSRate = 17
	e := NewEngine(rates)

	assert.Equal(t, 17.0, e.DestinationRate("XX", nil))
	assert.InDelta(t, 500.0, e.CalculateDIFAL(10000, "XX", nil), 1e-9)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{0.5, "R$ 0,50"},
		{600, "R$ 600,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.8, "R$ 1.234.567,80"},
		{-10, "-R$ 10,00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatCurrency(tc.in))
	}
}

func TestFormatCurrency_PlainSpaceAfterSymbol(t *testing.T) {
	got := FormatCurrency(1380)
	assert.Equal(t, "R$\u00201.380,00", got)
	assert.NotContains(t, got, "\u00a0")
}
