package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/domain/telephony"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errAnsweredLocally = errors.New("answered locally")

// memoryRedis answers the commands the repositories issue from memory. It is
// installed as a client hook, so no connection is ever opened.
type memoryRedis struct {
	values  map[string]string
	scores  map[string]map[string]float64
	failing map[string]error
	calls   []string
}

func newMemoryRedis(t *testing.T) (*redis.Client, *memoryRedis) {
	t.Helper()
	m := &memoryRedis{
		values:  map[string]string{},
		scores:  map[string]map[string]float64{},
		failing: map[string]error{},
	}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(m)
	t.Cleanup(func() { _ = client.Close() })
	return client, m
}

func (m *memoryRedis) BeforeProcess(ctx context.Context, _ redis.Cmder) (context.Context, error) {
	return ctx, errAnsweredLocally
}

func (m *memoryRedis) AfterProcess(_ context.Context, cmd redis.Cmder) error {
	m.answer(cmd)
	return nil
}

func (m *memoryRedis) BeforeProcessPipeline(ctx context.Context, _ []redis.Cmder) (context.Context, error) {
	return ctx, errAnsweredLocally
}

func (m *memoryRedis) AfterProcessPipeline(_ context.Context, cmds []redis.Cmder) error {
	for _, cmd := range cmds {
		m.answer(cmd)
	}
	return nil
}

func (m *memoryRedis) answer(cmd redis.Cmder) {
	cmd.SetErr(nil)
	name := cmd.Name()
	m.calls = append(m.calls, name)
	if err, ok := m.failing[name]; ok {
		cmd.SetErr(err)
		return
	}

	args := cmd.Args()
	arg := func(i int) string { return fmt.Sprint(args[i]) }
	switch c := cmd.(type) {
	case *redis.StatusCmd:
		if name == "set" {
			if b, ok := args[2].([]byte); ok {
				m.values[arg(1)] = string(b)
			} else {
				m.values[arg(1)] = arg(2)
			}
		}
		c.SetVal("OK")
	case *redis.StringCmd:
		v, ok := m.values[arg(1)]
		if !ok {
			c.SetErr(redis.Nil)
			return
		}
		c.SetVal(v)
	case *redis.IntCmd:
		switch name {
		case "incr":
			var n int64
			fmt.Sscan(m.values[arg(1)], &n)
			n++
			m.values[arg(1)] = fmt.Sprint(n)
			c.SetVal(n)
		case "zadd":
			set := m.scores[arg(1)]
			if set == nil {
				set = map[string]float64{}
				m.scores[arg(1)] = set
			}
			for i := 2; i+1 < len(args); i += 2 {
				var score float64
				fmt.Sscan(arg(i), &score)
				set[arg(i+1)] = score
			}
			c.SetVal(1)
		}
	case *redis.BoolCmd:
		c.SetVal(true)
	case *redis.StringSliceCmd:
		set := m.scores[arg(1)]
		members := make([]string, 0, len(set))
		for member := range set {
			members = append(members, member)
		}
		sort.Slice(members, func(i, j int) bool { return set[members[i]] > set[members[j]] })
		c.SetVal(members)
	case *redis.SliceCmd:
		out := make([]interface{}, 0, len(args)-1)
		for i := 1; i < len(args); i++ {
			if v, ok := m.values[arg(i)]; ok {
				out = append(out, v)
			} else {
				out = append(out, nil)
			}
		}
		c.SetVal(out)
	}
}

func TestAnalysisRedisRepository_NextRequestID(t *testing.T) {
	t.Run("counts per session", func(t *testing.T) {
		client, mem := newMemoryRedis(t)
		repo := NewAnalysisRedisRepository(client, time.Hour)

		first, err := repo.NextRequestID(context.Background(), "s1")
		require.NoError(t, err)
		second, err := repo.NextRequestID(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), first)
		assert.Equal(t, uint64(2), second)
		assert.Equal(t, []string{"incr", "expire", "incr", "expire"}, mem.calls)

		latest, err := repo.LatestRequestID(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, uint64(2), latest)
	})

	t.Run("expire failure is returned", func(t *testing.T) {
		client, mem := newMemoryRedis(t)
		mem.failing["expire"] = errors.New("READONLY You can't write against a read only replica")
		repo := NewAnalysisRedisRepository(client, time.Hour)

		if _, err := repo.NextRequestID(context.Background(), "s1"); err == nil {
			t.Fatalf("expected expire error")
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		client, _ := newMemoryRedis(t)
		repo := NewAnalysisRedisRepository(client, time.Hour)

		latest, err := repo.LatestRequestID(context.Background(), "nobody")
		require.NoError(t, err)
		assert.Zero(t, latest)
	})
}

func TestAnalysisRedisRepository_SaveGet(t *testing.T) {
	client, _ := newMemoryRedis(t)
	repo := NewAnalysisRedisRepository(client, 0)

	require.NoError(t, repo.Save(context.Background(), entities.AnalysisResult{ID: "analysis-1-1", FileName: "edital.txt"}))

	got, err := repo.GetByID(context.Background(), "analysis-1-1")
	require.NoError(t, err)
	assert.Equal(t, "edital.txt", got.FileName)

	missing, err := repo.GetByID(context.Background(), "analysis-9-9")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestTelephonyQuoteRedisRepository(t *testing.T) {
	client, _ := newMemoryRedis(t)
	repo := NewTelephonyQuoteRedisRepository(client)
	ctx := context.Background()
	base := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)

	older := telephony.Quote{ID: "PROP-240307-AAAA", ClientName: "Prefeitura", CreatedAt: base}
	newer := telephony.Quote{
		ID:         "PROP-240307-BBBB",
		ClientName: "ACME",
		CreatedAt:  base.Add(time.Hour),
		Products:   []entities.TelephonyProduct{{ID: "l1", Description: "SIP Trunk", Monthly: 150}},
	}
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	t.Run("get", func(t *testing.T) {
		got, err := repo.GetByID(ctx, newer.ID)
		require.NoError(t, err)
		assert.Equal(t, 150.0, got.TotalMonthly())

		missing, err := repo.GetByID(ctx, "PROP-000000-0000")
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})

	t.Run("list is newest first", func(t *testing.T) {
		quotes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.Equal(t, newer.ID, quotes[0].ID)
		assert.Equal(t, older.ID, quotes[1].ID)
	})

	t.Run("saving again replaces the quote", func(t *testing.T) {
		updated := newer
		updated.Products = nil
		require.NoError(t, repo.Save(ctx, updated))

		quotes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.Empty(t, quotes[0].Products)
	})
}

func TestTelephonyQuoteRedisRepository_EmptyIndex(t *testing.T) {
	client, mem := newMemoryRedis(t)
	repo := NewTelephonyQuoteRedisRepository(client)

	quotes, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, quotes)
	assert.Empty(t, quotes)
	assert.NotContains(t, mem.calls, "mget")
}

func TestWorksheetRedisRepository(t *testing.T) {
	client, mem := newMemoryRedis(t)
	repo := NewWorksheetRedisRepository(client, time.Hour)
	ctx := context.Background()

	state := pricing.WorksheetState{
		ID:     "ws-1",
		Module: entities.ModuleRental,
		Params: pricing.WorksheetParams{MarginPercent: 20, ContractPeriod: 24},
		Items: []entities.LineItem{{
			ID:       "item-1",
			Quantity: 2,
			Module:   entities.ModuleRental,
			Rental:   &entities.RentalDetails{UnitValue: 1200},
		}},
	}
	require.NoError(t, repo.Save(ctx, state))
	assert.Contains(t, mem.values, "worksheet:ws-1")

	got, err := repo.GetByID(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 24.0, got.Params.ContractPeriod)
	require.Len(t, got.Items, 1)
	require.NotNil(t, got.Items[0].Rental)
	assert.Equal(t, 1200.0, got.Items[0].Rental.UnitValue)

	missing, err := repo.GetByID(ctx, "ws-9")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestWorksheetRedisRepository_SaveFailure(t *testing.T) {
	client, mem := newMemoryRedis(t)
	mem.failing["set"] = errors.New("OOM command not allowed")
	repo := NewWorksheetRedisRepository(client, 0)

	if err := repo.Save(context.Background(), pricing.WorksheetState{ID: "ws-1"}); err == nil {
		t.Fatalf("expected set error")
	}
}
