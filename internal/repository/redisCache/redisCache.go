package redisCache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovaf709/cinema-bot/configs"
	"github.com/vovaf709/cinema-bot/internal/domain"
)

// IMDB ids never change, the TTL only bounds memory on the redis side.
const imdbTTL = 24 * time.Hour

type Cache struct {
	client *redis.Client
}

func NewCache(config *configs.Config) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:         config.RD.Host,
			DB:           config.RD.DB,
			Username:     config.RD.User,
			Password:     config.RD.Password,
			MaxRetries:   config.RD.MaxRetries,
			DialTimeout:  config.RD.DialTimeout,
			ReadTimeout:  config.RD.ReadTimeout,
			WriteTimeout: config.RD.WriteTimeout,
		}),
	}
}

func (c *Cache) GetImdbID(ctx context.Context, filmID int) (string, error) {
	const op = "redisCache.GetImdbID"

	imdbID, err := c.client.Get(ctx, imdbKey(filmID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return imdbID, nil
}

func (c *Cache) SetImdbID(ctx context.Context, filmID int, imdbID string) error {
	const op = "redisCache.SetImdbID"

	if err := c.client.Set(ctx, imdbKey(filmID), imdbID, imdbTTL).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func imdbKey(filmID int) string {
	return fmt.Sprintf("film:imdb:%d", filmID)
}
