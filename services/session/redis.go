// File: loanguard/services/session/redis.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loanguard/metrics"
	"loanguard/models"
	"loanguard/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const maxUpdateAttempts = 5

// RedisStore keeps each session as one JSON value with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
	sealer *Sealer
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = utils.DefaultSessionTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

// WithSealer makes the store encrypt every snapshot it writes. Values it
// cannot open, including ones written before encryption was enabled, read as
// the default state.
func (s *RedisStore) WithSealer(sealer *Sealer) *RedisStore {
	s.sealer = sealer
	return s
}

func (s *RedisStore) key(id string) string {
	return utils.SessionCachePrefix + id
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// load reads a snapshot. A missing key, or one that no longer decodes, yields
// the default state.
func (s *RedisStore) load(ctx context.Context, g getter, key string) (models.AppState, error) {
	data, err := g.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return models.NewAppState(), nil
	}
	if err != nil {
		metrics.SessionStoreErrors.WithLabelValues("get").Inc()
		return models.AppState{}, fmt.Errorf("load session: %w", err)
	}
	if s.sealer != nil {
		if data, err = s.sealer.Open(data); err != nil {
			s.logger.Warn("Discarding unreadable session", zap.String("key", key), zap.Error(err))
			return models.NewAppState(), nil
		}
	}
	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("Discarding undecodable session", zap.String("key", key), zap.Error(err))
		return models.NewAppState(), nil
	}
	return state, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (models.AppState, error) {
	return s.load(ctx, s.client, s.key(id))
}

// Update runs fn inside a WATCH/MULTI transaction and retries when another
// writer touched the key in between.
func (s *RedisStore) Update(ctx context.Context, id string, fn UpdateFunc) (models.AppState, error) {
	key := s.key(id)
	var next models.AppState

	txf := func(tx *redis.Tx) error {
		current, err := s.load(ctx, tx, key)
		if err != nil {
			return err
		}
		next = fn(current)
		b, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
		if s.sealer != nil {
			if b, err = s.sealer.Seal(b); err != nil {
				return fmt.Errorf("seal session: %w", err)
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, b, s.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return next, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		metrics.SessionStoreErrors.WithLabelValues("update").Inc()
		return models.AppState{}, err
	}
	metrics.SessionStoreErrors.WithLabelValues("update").Inc()
	return models.AppState{}, ErrTxFailed
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
