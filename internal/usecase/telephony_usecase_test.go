package usecase

import (
	"strings"
	"testing"

	"precifica_ti/internal/domain/taxtable"
	"precifica_ti/internal/domain/telephony"
)

func newTelephonyUseCase() *TelephonyUseCase {
	return NewTelephonyUseCase(telephony.NewCalculator(telephony.TablesFrom(taxtable.Default())))
}

func TestTelephonyUseCase_QuotePABX(t *testing.T) {
	uc := newTelephonyUseCase()

	t.Run("priced with add-ons", func(t *testing.T) {
		res := uc.QuotePABX(QuoteOwner{ClientName: " Acme ", AccountManager: "Ana"}, telephony.PABXInput{
			Extensions:     15,
			DeviceRental:   true,
			DeviceQuantity: 15,
			AIAgent:        true,
			AIAgentPlan:    "40k",
		})
		if !res.Priced || res.PABX == nil || res.Quote == nil {
			t.Fatalf("expected a priced result, got %+v", res)
		}
		if len(res.Quote.Products) != 3 {
			t.Fatalf("expected 3 quote lines, got %d", len(res.Quote.Products))
		}
		if res.TotalSetup != 2000 || res.TotalMonthly != 220+510+1370 {
			t.Fatalf("unexpected totals %v/%v", res.TotalSetup, res.TotalMonthly)
		}
		if res.Quote.ClientName != "Acme" || !strings.HasPrefix(res.Quote.ID, "PROP-") {
			t.Fatalf("unexpected quote header: %+v", res.Quote)
		}
	})

	t.Run("outside every tier", func(t *testing.T) {
		res := uc.QuotePABX(QuoteOwner{}, telephony.PABXInput{Extensions: 0})
		if res.Priced || res.Quote != nil {
			t.Fatalf("expected unpriced result, got %+v", res)
		}
	})
}

func TestTelephonyUseCase_QuoteSIP(t *testing.T) {
	uc := newTelephonyUseCase()

	res := uc.QuoteSIP(QuoteOwner{}, telephony.SIPInput{PlanKey: "plano2", AdditionalChannels: 2, EquipmentRental: true})
	if !res.Priced || res.SIP == nil {
		t.Fatalf("expected a priced result, got %+v", res)
	}
	if res.TotalSetup != 150 || res.TotalMonthly != 250+35*5+100 {
		t.Fatalf("unexpected totals %v/%v", res.TotalSetup, res.TotalMonthly)
	}

	if got := uc.QuoteSIP(QuoteOwner{}, telephony.SIPInput{PlanKey: "plano9"}); got.Priced {
		t.Fatalf("expected unknown plan to be unpriced")
	}
}

func TestTelephonyUseCase_Lines(t *testing.T) {
	uc := newTelephonyUseCase()

	lines, ok := uc.PABXLines(telephony.PABXInput{Extensions: 5})
	if !ok || len(lines) != 1 || lines[0].Setup != 1250 {
		t.Fatalf("unexpected pabx lines: %+v", lines)
	}
	if _, ok := uc.PABXLines(telephony.PABXInput{Extensions: 5000}); ok {
		t.Fatalf("expected pabx outside tiers to fail")
	}

	sip, ok := uc.SIPLines(telephony.SIPInput{PlanKey: "plano1"})
	if !ok || len(sip) != 1 || sip[0].Monthly != 150 {
		t.Fatalf("unexpected sip lines: %+v", sip)
	}
}
