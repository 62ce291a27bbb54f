package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2025-2-NADS4/Projeto4/internal/config"
)

// ErrCacheMiss é retornado por Get quando a chave não existe ou expirou
var ErrCacheMiss = errors.New("chave não encontrada no cache")

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// DatasetKey identifica o snapshot de uma sessão para um escopo
func DatasetKey(sessionID, scope string) string {
	return fmt.Sprintf("dataset:%s:%s", sessionID, scope)
}

// RevokedSessionKey marca uma sessão encerrada por logout
func RevokedSessionKey(sessionID string) string {
	return fmt.Sprintf("session:revoked:%s", sessionID)
}

// New escolhe a implementação a partir de CACHE_DRIVER
func New(ctx context.Context, cfg config.Cache) (Cache, error) {
	if cfg.Driver != config.CacheDriverRedis {
		return NewMemoryCache(time.Now), nil
	}

	c := NewRedisCache(cfg)
	if err := c.Ping(ctx); err != nil {
		return nil, fmt.Errorf("não foi possível conectar ao Redis em %s: %w", cfg.RedisAddress, err)
	}

	return c, nil
}
