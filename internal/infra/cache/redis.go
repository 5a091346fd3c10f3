package cache

import (
	"context"
	"time"

	"lunchbox/internal/pkg/config"
	"lunchbox/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errs.Wrap(err, "failed to connect to redis")
	}

	return client, nil
}
