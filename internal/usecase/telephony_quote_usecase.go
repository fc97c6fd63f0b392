package usecase

import (
	"context"
	"errors"
	"precifica_ti/internal/domain/telephony"
	"precifica_ti/internal/usecase/interfaces"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrQuoteNotFound     = errors.New("telephony quote not found")
	ErrQuoteLineNotFound = errors.New("telephony quote line not found")
	ErrInvalidQuoteID    = errors.New("invalid telephony quote id")
)

// ITelephonyQuoteUseCase keeps running telephony quotes: priced lines are
// appended or removed and the totals follow.
type ITelephonyQuoteUseCase interface {
	Create(ctx context.Context, owner QuoteOwner, in TelephonyBudgetInput) (telephony.Quote, error)
	AddLines(ctx context.Context, id string, in TelephonyBudgetInput) (telephony.Quote, error)
	GetByID(ctx context.Context, id string) (telephony.Quote, error)
	Search(ctx context.Context, term string) ([]telephony.Quote, error)
	RemoveLine(ctx context.Context, id, lineID string) (telephony.Quote, error)
}

type TelephonyQuoteUseCase struct {
	repo      interfaces.ITelephonyQuoteRepository
	telephony ITelephonyUseCase
}

var _ ITelephonyQuoteUseCase = (*TelephonyQuoteUseCase)(nil)

func NewTelephonyQuoteUseCase(repo interfaces.ITelephonyQuoteRepository, telephony ITelephonyUseCase) *TelephonyQuoteUseCase {
	return &TelephonyQuoteUseCase{repo: repo, telephony: telephony}
}

// Create prices the selection and stores it as a new quote.
func (u *TelephonyQuoteUseCase) Create(ctx context.Context, owner QuoteOwner, in TelephonyBudgetInput) (telephony.Quote, error) {
	lines, err := telephonyLines(u.telephony, in)
	if err != nil {
		return telephony.Quote{}, err
	}
	q := newQuote(owner)
	q.Add(lines...)
	if err := u.repo.Save(ctx, *q); err != nil {
		return telephony.Quote{}, err
	}
	logrus.WithFields(logrus.Fields{"quote_id": q.ID, "client": q.ClientName, "lines": len(q.Products)}).Info("[telephony][usecase] quote created")
	return *q, nil
}

func (u *TelephonyQuoteUseCase) AddLines(ctx context.Context, id string, in TelephonyBudgetInput) (telephony.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return telephony.Quote{}, err
	}
	lines, err := telephonyLines(u.telephony, in)
	if err != nil {
		return telephony.Quote{}, err
	}
	q.Add(lines...)
	if err := u.repo.Save(ctx, q); err != nil {
		return telephony.Quote{}, err
	}
	return q, nil
}

func (u *TelephonyQuoteUseCase) GetByID(ctx context.Context, id string) (telephony.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return telephony.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return telephony.Quote{}, err
	}
	if q.ID == "" {
		return telephony.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// Search matches term against client names and quote ids, newest first.
// An empty term lists every quote.
func (u *TelephonyQuoteUseCase) Search(ctx context.Context, term string) ([]telephony.Quote, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return telephony.FilterQuotes(quotes, term), nil
}

func (u *TelephonyQuoteUseCase) RemoveLine(ctx context.Context, id, lineID string) (telephony.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return telephony.Quote{}, err
	}
	if !q.Remove(strings.TrimSpace(lineID)) {
		return telephony.Quote{}, ErrQuoteLineNotFound
	}
	if err := u.repo.Save(ctx, q); err != nil {
		return telephony.Quote{}, err
	}
	logrus.WithFields(logrus.Fields{"quote_id": q.ID, "line_id": lineID}).Info("[telephony][usecase] quote line removed")
	return q, nil
}
