package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const defaultAnalysisTTL = 24 * time.Hour

// AnalysisRedisRepository keeps analysis results as JSON under
// analysis:<id> with a TTL, and a monotonic request counter per session.
type AnalysisRedisRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ interfaces.IAnalysisRepository = (*AnalysisRedisRepository)(nil)

func NewAnalysisRedisRepository(rdb redis.Cmdable, ttl time.Duration) *AnalysisRedisRepository {
	if ttl <= 0 {
		ttl = defaultAnalysisTTL
	}
	return &AnalysisRedisRepository{rdb: rdb, ttl: ttl}
}

func analysisKey(id string) string {
	return "analysis:" + id
}

func analysisSequenceKey(session string) string {
	return fmt.Sprintf("analysis:session:%s:seq", session)
}

func (r *AnalysisRedisRepository) Save(ctx context.Context, res entities.AnalysisResult) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, analysisKey(res.ID), b, r.ttl).Err()
}

func (r *AnalysisRedisRepository) GetByID(ctx context.Context, id string) (entities.AnalysisResult, error) {
	b, err := r.rdb.Get(ctx, analysisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.AnalysisResult{}, nil
	}
	if err != nil {
		return entities.AnalysisResult{}, err
	}
	var res entities.AnalysisResult
	if err := json.Unmarshal(b, &res); err != nil {
		return entities.AnalysisResult{}, err
	}
	return res, nil
}

func (r *AnalysisRedisRepository) NextRequestID(ctx context.Context, session string) (uint64, error) {
	key := analysisSequenceKey(session)
	n, err := r.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// The counter outlives any result it tags.
	if err := r.rdb.Expire(ctx, key, 2*r.ttl).Err(); err != nil {
		return 0, fmt.Errorf("expire %s: %w", key, err)
	}
	return uint64(n), nil
}

// LatestRequestID returns 0 when the session never started a request.
func (r *AnalysisRedisRepository) LatestRequestID(ctx context.Context, session string) (uint64, error) {
	s, err := r.rdb.Get(ctx, analysisSequenceKey(session)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(s, 10, 64)
}
