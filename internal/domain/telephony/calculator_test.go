package telephony

import (
	"testing"

	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/taxtable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalculator() *Calculator {
	return NewCalculator(TablesFrom(taxtable.Default()))
}

func TestCalculator_QuotePABX_TierLookup(t *testing.T) {
	c := newCalculator()

	res, ok := c.QuotePABX(PABXInput{Extensions: 15})
	require.True(t, ok)
	assert.Equal(t, entities.PABXTier{Min: 11, Max: 20, Setup: 2000, Monthly: 220}, res.Tier)
	assert.Equal(t, 2000.0, res.Setup)
	assert.Equal(t, 220.0, res.TotalMonthly)

	for _, ext := range []int{0, -3, 1001, 1500} {
		_, ok := c.QuotePABX(PABXInput{Extensions: ext})
		assert.False(t, ok, "extensions=%d", ext)
	}
}

func TestCalculator_QuotePABX_Boundaries(t *testing.T) {
	c := newCalculator()
	tests := []struct {
		ext   int
		setup float64
	}{
		{1, 1250}, {10, 1250}, {11, 2000}, {50, 3000}, {51, 3500}, {1000, 5000},
	}
	for _, tc := range tests {
		res, ok := c.QuotePABX(PABXInput{Extensions: tc.ext})
		require.True(t, ok)
		assert.Equal(t, tc.setup, res.Setup, "extensions=%d", tc.ext)
	}
}

func TestCalculator_QuotePABX_AddOns(t *testing.T) {
	c := newCalculator()

	res, ok := c.QuotePABX(PABXInput{
		Extensions:     15,
		DeviceRental:   true,
		DeviceQuantity: 15,
		AIAgent:        true,
		AIAgentPlan:    "40k",
	})
	require.True(t, ok)
	assert.Equal(t, 34.0*15, res.DeviceRentalCost)
	assert.Equal(t, 1370.0, res.AIAgentCost)
	assert.Equal(t, 220+510+1370.0, res.TotalMonthly)
	assert.Equal(t, 2000.0, res.Setup)

	t.Run("negotiable device tier contributes zero", func(t *testing.T) {
		res, ok := c.QuotePABX(PABXInput{Extensions: 200, DeviceRental: true, DeviceQuantity: 200})
		require.True(t, ok)
		assert.Zero(t, res.DeviceRentalCost)
		assert.Equal(t, 500.0, res.TotalMonthly)
	})

	t.Run("unknown ai plan is ignored", func(t *testing.T) {
		res, ok := c.QuotePABX(PABXInput{Extensions: 5, AIAgent: true, AIAgentPlan: "1m"})
		require.True(t, ok)
		assert.Zero(t, res.AIAgentCost)
	})

	t.Run("device rental disabled", func(t *testing.T) {
		res, ok := c.QuotePABX(PABXInput{Extensions: 5, DeviceQuantity: 5})
		require.True(t, ok)
		assert.Zero(t, res.DeviceRentalCost)
	})
}

func TestCalculator_QuoteSIP(t *testing.T) {
	c := newCalculator()

	res, ok := c.QuoteSIP(SIPInput{PlanKey: "plano2", AdditionalChannels: 3, EquipmentRental: true})
	require.True(t, ok)
	assert.Equal(t, 150.0, res.Setup)
	assert.Equal(t, 150.0, res.AdditionalChannelsCost)
	assert.Equal(t, 250+35*5+150.0, res.Monthly)

	res, ok = c.QuoteSIP(SIPInput{PlanKey: "plano1"})
	require.True(t, ok)
	assert.Equal(t, 150.0, res.Monthly)

	_, ok = c.QuoteSIP(SIPInput{PlanKey: "plano9"})
	assert.False(t, ok)
}

func TestCalculator_PABXLines(t *testing.T) {
	c := newCalculator()

	res, _ := c.QuotePABX(PABXInput{Extensions: 8, DeviceRental: true, DeviceQuantity: 8, AIAgent: true, AIAgentPlan: "20k"})
	lines := c.PABXLines(res)

	require.Len(t, lines, 3)
	assert.Equal(t, "PABX em Nuvem para 8 ramais", lines[0].Description)
	assert.Equal(t, 1250.0, lines[0].Setup)
	assert.Equal(t, "Aluguel de 8 aparelho(s) IP", lines[1].Description)
	assert.Equal(t, 280.0, lines[1].Monthly)
	assert.Equal(t, "Agente IA 20K Créditos (Até: 10.000 msg, 2.000 min, 1.000 voz premium)", lines[2].Description)
	assert.Zero(t, lines[2].Setup)

	res, _ = c.QuotePABX(PABXInput{Extensions: 200, DeviceRental: true, DeviceQuantity: 200})
	assert.Len(t, c.PABXLines(res), 1, "negotiable rental adds no line")
}

func TestCalculator_SIPLine(t *testing.T) {
	c := newCalculator()

	res, _ := c.QuoteSIP(SIPInput{PlanKey: "plano3", AdditionalChannels: 2, EquipmentRental: true})
	assert.Equal(t, "Plano SIP Trunk (10 canais) com equipamento + 2 canais adicionais", c.SIPLine(res).Description)

	res, _ = c.QuoteSIP(SIPInput{PlanKey: "plano1"})
	assert.Equal(t, "Plano SIP Trunk (2 canais)", c.SIPLine(res).Description)
}
