package telephony

import (
	"fmt"
	"strings"
	"time"

	"precifica_ti/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote is a running list of telephony lines for one client. Lines are only
// appended or removed, never edited.
type Quote struct {
	ID             string                      `json:"id"`
	ClientName     string                      `json:"client_name"`
	AccountManager string                      `json:"account_manager"`
	Products       []entities.TelephonyProduct `json:"products"`
	CreatedAt      time.Time                   `json:"created_at"`
}

func NewQuote(clientName, accountManager string, now time.Time) *Quote {
	return &Quote{
		ID:             NewQuoteID(now),
		ClientName:     clientName,
		AccountManager: accountManager,
		CreatedAt:      now,
	}
}

// NewQuoteID returns an id shaped like PROP-YYMMDD-XXXX.
func NewQuoteID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("PROP-%s-%s", now.Format("060102"), suffix)
}

func (q *Quote) Add(lines ...entities.TelephonyProduct) []entities.TelephonyProduct {
	added := make([]entities.TelephonyProduct, 0, len(lines))
	for _, l := range lines {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		q.Products = append(q.Products, l)
		added = append(added, l)
	}
	return added
}

func (q *Quote) Remove(id string) bool {
	for i, p := range q.Products {
		if p.ID == id {
			q.Products = append(q.Products[:i], q.Products[i+1:]...)
			return true
		}
	}
	return false
}

func (q *Quote) TotalSetup() float64 {
	total := decimal.Zero
	for _, p := range q.Products {
		total = total.Add(decimal.NewFromFloat(p.Setup))
	}
	return total.InexactFloat64()
}

func (q *Quote) TotalMonthly() float64 {
	total := decimal.Zero
	for _, p := range q.Products {
		total = total.Add(decimal.NewFromFloat(p.Monthly))
	}
	return total.InexactFloat64()
}

// FilterQuotes keeps the quotes whose client name or id contains term,
// ignoring case. An empty term keeps everything.
func FilterQuotes(quotes []Quote, term string) []Quote {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return quotes
	}
	out := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if strings.Contains(strings.ToLower(q.ClientName), term) || strings.Contains(strings.ToLower(q.ID), term) {
			out = append(out, q)
		}
	}
	return out
}
