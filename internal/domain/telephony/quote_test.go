package telephony

import (
	"regexp"
	"testing"
	"time"

	"precifica_ti/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuoteID(t *testing.T) {
	id := NewQuoteID(time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^PROP-240307-[0-9A-F]{4}$`), id)
}

func TestQuote_AddRemoveTotals(t *testing.T) {
	q := NewQuote("ACME", "Maria", time.Now())

	added := q.Add(
		entities.TelephonyProduct{Description: "a", Setup: 0.1, Monthly: 10},
		entities.TelephonyProduct{Description: "b", Setup: 0.2, Monthly: 20},
	)
	require.Len(t, added, 2)
	assert.NotEmpty(t, added[0].ID)
	assert.NotEqual(t, added[0].ID, added[1].ID)

	assert.Equal(t, 0.3, q.TotalSetup())
	assert.Equal(t, 30.0, q.TotalMonthly())

	assert.True(t, q.Remove(added[0].ID))
	assert.False(t, q.Remove(added[0].ID))
	assert.Equal(t, 20.0, q.TotalMonthly())
	assert.Equal(t, "b", q.Products[0].Description)
}

func TestFilterQuotes(t *testing.T) {
	a := Quote{ID: "PROP-240101-AAAA", ClientName: "Prefeitura de Curitiba"}
	b := Quote{ID: "PROP-240102-BBBB", ClientName: "ACME"}
	quotes := []Quote{a, b}

	assert.Equal(t, []Quote{a}, FilterQuotes(quotes, "curitiba"))
	assert.Equal(t, []Quote{b}, FilterQuotes(quotes, "bbbb"))
	assert.Len(t, FilterQuotes(quotes, " "), 2)
	assert.Empty(t, FilterQuotes(quotes, "zzz"))
}
