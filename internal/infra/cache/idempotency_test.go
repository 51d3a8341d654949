//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_Disabled(t *testing.T) {
	client, cleanup, err := cache.Connect(config.RedisConfig{})

	require.NoError(t, err)
	assert.Nil(t, client)
	require.NotNil(t, cleanup)
	cleanup()
}

func TestNoopIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	store := cache.NoopIdempotencyStore{}

	for range 2 {
		existing, reserved, err := store.Reserve(ctx, "actor", "key", "fp", time.Hour)
		require.NoError(t, err)
		assert.True(t, reserved)
		assert.Nil(t, existing)
	}
	assert.NoError(t, store.Complete(ctx, "actor", "key", "fp", uuid.New(), time.Hour))
	assert.NoError(t, store.Release(ctx, "actor", "key"))
}
