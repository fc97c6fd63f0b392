package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const defaultWorksheetTTL = 7 * 24 * time.Hour

// WorksheetRedisRepository keeps worksheets as JSON under worksheet:<id>.
// Every save renews the TTL.
type WorksheetRedisRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ interfaces.IWorksheetRepository = (*WorksheetRedisRepository)(nil)

func NewWorksheetRedisRepository(rdb redis.Cmdable, ttl time.Duration) *WorksheetRedisRepository {
	if ttl <= 0 {
		ttl = defaultWorksheetTTL
	}
	return &WorksheetRedisRepository{rdb: rdb, ttl: ttl}
}

func worksheetKey(id string) string {
	return "worksheet:" + id
}

func (r *WorksheetRedisRepository) Save(ctx context.Context, w pricing.WorksheetState) error {
	b, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, worksheetKey(w.ID), b, r.ttl).Err()
}

func (r *WorksheetRedisRepository) GetByID(ctx context.Context, id string) (pricing.WorksheetState, error) {
	b, err := r.rdb.Get(ctx, worksheetKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return pricing.WorksheetState{}, nil
	}
	if err != nil {
		return pricing.WorksheetState{}, err
	}
	var w pricing.WorksheetState
	if err := json.Unmarshal(b, &w); err != nil {
		return pricing.WorksheetState{}, err
	}
	return w, nil
}
