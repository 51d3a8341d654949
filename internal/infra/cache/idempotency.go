package cache

import (
	"context"
	"encoding/json"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:booking:"

type RedisIdempotencyStore struct {
	client redis.UniversalClient
}

func NewRedisIdempotencyStore(client redis.UniversalClient) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client}
}

func keyFor(scope, key string) string {
	return keyPrefix + scope + ":" + key
}

// Reserve claims the key with SET NX. When the key is taken the stored record is returned instead.
func (s *RedisIdempotencyStore) Reserve(ctx context.Context, scope, key, fingerprint string, ttl time.Duration) (*shared.IdempotencyRecord, bool, error) {
	body, err := json.Marshal(shared.IdempotencyRecord{
		Status:      shared.IdempotencyProcessing,
		Fingerprint: fingerprint,
	})
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to encode idempotency record")
	}

	// a key that expires between SETNX and GET is simply claimed on the next pass
	for range 2 {
		ok, err := s.client.SetNX(ctx, keyFor(scope, key), body, ttl).Result()
		if err != nil {
			return nil, false, infra.WrapRepoErr("failed to reserve idempotency key", err, infra.KindDBFailure)
		}
		if ok {
			return nil, true, nil
		}

		existing, err := s.get(ctx, scope, key)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}
	}

	return &shared.IdempotencyRecord{Status: shared.IdempotencyProcessing}, false, nil
}

func (s *RedisIdempotencyStore) get(ctx context.Context, scope, key string) (*shared.IdempotencyRecord, error) {
	raw, err := s.client.Get(ctx, keyFor(scope, key)).Bytes()
	if errs.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read idempotency key", err, infra.KindDBFailure)
	}

	var rec shared.IdempotencyRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errs.Wrap(err, "failed to decode idempotency record")
	}
	return &rec, nil
}

func (s *RedisIdempotencyStore) Complete(ctx context.Context, scope, key, fingerprint string, bookingID uuid.UUID, ttl time.Duration) error {
	body, err := json.Marshal(shared.IdempotencyRecord{
		Status:      shared.IdempotencyCompleted,
		Fingerprint: fingerprint,
		BookingID:   &bookingID,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode idempotency record")
	}

	if err := s.client.Set(ctx, keyFor(scope, key), body, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err, infra.KindDBFailure)
	}
	return nil
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, scope, key string) error {
	if err := s.client.Del(ctx, keyFor(scope, key)).Err(); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err, infra.KindDBFailure)
	}
	return nil
}

// NoopIdempotencyStore is used when no Redis address is configured. Every key is fresh.
type NoopIdempotencyStore struct{}

func (NoopIdempotencyStore) Reserve(context.Context, string, string, string, time.Duration) (*shared.IdempotencyRecord, bool, error) {
	return nil, true, nil
}

func (NoopIdempotencyStore) Complete(context.Context, string, string, string, uuid.UUID, time.Duration) error {
	return nil
}

func (NoopIdempotencyStore) Release(context.Context, string, string) error {
	return nil
}
