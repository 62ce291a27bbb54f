package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2025-2-NADS4/Projeto4/internal/config"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewMemoryCache(func() time.Time { return now })

	t.Run("Deve retornar ErrCacheMiss para chave inexistente", func(t *testing.T) {
		_, err := c.Get(ctx, "nada")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Deve armazenar e ler um valor", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "chave", "valor", time.Minute))

		value, err := c.Get(ctx, "chave")
		require.NoError(t, err)
		assert.Equal(t, "valor", value)
	})

	t.Run("Deve expirar a chave após o TTL", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "temporaria", "valor", time.Minute))

		now = now.Add(time.Minute)

		_, err := c.Get(ctx, "temporaria")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Deve manter a chave sem TTL", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "permanente", "valor", 0))

		now = now.Add(24 * time.Hour)

		value, err := c.Get(ctx, "permanente")
		require.NoError(t, err)
		assert.Equal(t, "valor", value)
	})

	t.Run("Deve remover várias chaves", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "a", "1", time.Hour))
		require.NoError(t, c.Set(ctx, "b", "2", time.Hour))

		require.NoError(t, c.Del(ctx, "a", "b", "inexistente"))

		_, err := c.Get(ctx, "a")
		assert.ErrorIs(t, err, ErrCacheMiss)
		_, err = c.Get(ctx, "b")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "dataset:abc:client", DatasetKey("abc", "client"))
	assert.Equal(t, "session:revoked:abc", RevokedSessionKey("abc"))
}

func TestNewWithMemoryDriver(t *testing.T) {
	c, err := New(context.Background(), config.Cache{Driver: config.CacheDriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryCache{}, c)
}
