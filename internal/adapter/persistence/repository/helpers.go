package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

func tableNameOr(name, def string) string {
	if name != "" {
		return name
	}
	return def
}

// moneyString encodes an amount for storage without float formatting noise.
func moneyString(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func parseMoney(s string) float64 {
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// storedTimeLayout keeps a fixed width so stored dates sort as strings.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
