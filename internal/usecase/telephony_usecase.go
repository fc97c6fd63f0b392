package usecase

import (
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/telephony"
	"strings"
	"time"
)

// TelephonyQuoteResult carries either a priced configuration with its quote
// lines or Priced=false when the input matched no tier or plan.
type TelephonyQuoteResult struct {
	Priced       bool                 `json:"priced"`
	PABX         *entities.PABXResult `json:"pabx,omitempty"`
	SIP          *entities.SIPResult  `json:"sip,omitempty"`
	Quote        *telephony.Quote     `json:"quote,omitempty"`
	TotalSetup   float64              `json:"total_setup"`
	TotalMonthly float64              `json:"total_monthly"`
}

type QuoteOwner struct {
	ClientName     string
	AccountManager string
}

// ITelephonyUseCase prices PABX and SIP trunk configurations.
type ITelephonyUseCase interface {
	QuotePABX(owner QuoteOwner, in telephony.PABXInput) TelephonyQuoteResult
	QuoteSIP(owner QuoteOwner, in telephony.SIPInput) TelephonyQuoteResult
	PABXLines(in telephony.PABXInput) ([]entities.TelephonyProduct, bool)
	SIPLines(in telephony.SIPInput) ([]entities.TelephonyProduct, bool)
}

type TelephonyUseCase struct {
	calc *telephony.Calculator
}

var _ ITelephonyUseCase = (*TelephonyUseCase)(nil)

func NewTelephonyUseCase(calc *telephony.Calculator) *TelephonyUseCase {
	return &TelephonyUseCase{calc: calc}
}

func (u *TelephonyUseCase) QuotePABX(owner QuoteOwner, in telephony.PABXInput) TelephonyQuoteResult {
	res, ok := u.calc.QuotePABX(in)
	if !ok {
		return TelephonyQuoteResult{}
	}
	q := newQuote(owner)
	q.Add(u.calc.PABXLines(res)...)
	return TelephonyQuoteResult{Priced: true, PABX: &res, Quote: q, TotalSetup: q.TotalSetup(), TotalMonthly: q.TotalMonthly()}
}

func (u *TelephonyUseCase) QuoteSIP(owner QuoteOwner, in telephony.SIPInput) TelephonyQuoteResult {
	res, ok := u.calc.QuoteSIP(in)
	if !ok {
		return TelephonyQuoteResult{}
	}
	q := newQuote(owner)
	q.Add(u.calc.SIPLine(res))
	return TelephonyQuoteResult{Priced: true, SIP: &res, Quote: q, TotalSetup: q.TotalSetup(), TotalMonthly: q.TotalMonthly()}
}

func (u *TelephonyUseCase) PABXLines(in telephony.PABXInput) ([]entities.TelephonyProduct, bool) {
	res, ok := u.calc.QuotePABX(in)
	if !ok {
		return nil, false
	}
	return u.calc.PABXLines(res), true
}

func (u *TelephonyUseCase) SIPLines(in telephony.SIPInput) ([]entities.TelephonyProduct, bool) {
	res, ok := u.calc.QuoteSIP(in)
	if !ok {
		return nil, false
	}
	return []entities.TelephonyProduct{u.calc.SIPLine(res)}, true
}

// telephonyLines prices every configuration present in the input. Any part
// that matches no tier or plan fails the whole selection.
func telephonyLines(uc ITelephonyUseCase, in TelephonyBudgetInput) ([]entities.TelephonyProduct, error) {
	var lines []entities.TelephonyProduct
	if in.PABX != nil {
		pabx, ok := uc.PABXLines(*in.PABX)
		if !ok {
			return nil, ErrTelephonyNotPriced
		}
		lines = append(lines, pabx...)
	}
	if in.SIP != nil {
		sip, ok := uc.SIPLines(*in.SIP)
		if !ok {
			return nil, ErrTelephonyNotPriced
		}
		lines = append(lines, sip...)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyBudget
	}
	return lines, nil
}

func newQuote(owner QuoteOwner) *telephony.Quote {
	return telephony.NewQuote(strings.TrimSpace(owner.ClientName), strings.TrimSpace(owner.AccountManager), time.Now())
}
