package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"precifica_ti/internal/domain/telephony"
	"precifica_ti/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const telephonyQuoteIndexKey = "telephony:quotes"

// TelephonyQuoteRedisRepository keeps each quote as JSON under
// telephony:quote:<id> and indexes the ids in a sorted set scored by creation
// time. Quotes do not expire.
type TelephonyQuoteRedisRepository struct {
	rdb redis.Cmdable
}

var _ interfaces.ITelephonyQuoteRepository = (*TelephonyQuoteRedisRepository)(nil)

func NewTelephonyQuoteRedisRepository(rdb redis.Cmdable) *TelephonyQuoteRedisRepository {
	return &TelephonyQuoteRedisRepository{rdb: rdb}
}

func telephonyQuoteKey(id string) string {
	return "telephony:quote:" + id
}

func (r *TelephonyQuoteRedisRepository) Save(ctx context.Context, q telephony.Quote) error {
	b, err := json.Marshal(q)
	if err != nil {
		return err
	}
	// Payload first: an indexed id always has something to read.
	if err := r.rdb.Set(ctx, telephonyQuoteKey(q.ID), b, 0).Err(); err != nil {
		return err
	}
	return r.rdb.ZAdd(ctx, telephonyQuoteIndexKey, &redis.Z{Score: float64(q.CreatedAt.UnixMilli()), Member: q.ID}).Err()
}

func (r *TelephonyQuoteRedisRepository) GetByID(ctx context.Context, id string) (telephony.Quote, error) {
	b, err := r.rdb.Get(ctx, telephonyQuoteKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return telephony.Quote{}, nil
	}
	if err != nil {
		return telephony.Quote{}, err
	}
	var q telephony.Quote
	if err := json.Unmarshal(b, &q); err != nil {
		return telephony.Quote{}, err
	}
	return q, nil
}

func (r *TelephonyQuoteRedisRepository) List(ctx context.Context) ([]telephony.Quote, error) {
	ids, err := r.rdb.ZRevRange(ctx, telephonyQuoteIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []telephony.Quote{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, telephonyQuoteKey(id))
	}
	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	return decodeTelephonyQuotes(values)
}

// decodeTelephonyQuotes skips ids whose payload is gone.
func decodeTelephonyQuotes(values []interface{}) ([]telephony.Quote, error) {
	out := make([]telephony.Quote, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var q telephony.Quote
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			return nil, fmt.Errorf("decode telephony quote: %w", err)
		}
		out = append(out, q)
	}
	return out, nil
}
