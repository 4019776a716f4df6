package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/AbdessamadProschool/medaction-prod-sub005/config"
)

// Client enveloppe du client Redis.
// Utilisé pour la liste noire de tokens et la limitation de débit.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient ouvre la connexion Redis et vérifie la santé par Ping
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connexion Redis: %w", err)
	}

	logger.Info("Connexion Redis établie", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Liste noire de tokens ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken ajoute un JWT ID à la liste noire, TTL aligné sur la durée de vie restante
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token déjà expiré
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted vérifie la présence d'un JWT ID dans la liste noire
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── Limitation de débit ──

// CheckRateLimit fenêtre glissante simple : compteur incrémenté avec expiration
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close ferme la connexion Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}
