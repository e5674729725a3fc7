package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ojlab/discussions/domain"
	"github.com/redis/go-redis/v9"
)

const (
	KeyIdentityUsername = "identity:username:%d"

	usernameTTL = 10 * time.Minute
)

type identityCache struct {
	client *redis.Client
}

var _ domain.IdentityCache = (*identityCache)(nil)

func NewIdentityCache(client *redis.Client) *identityCache {
	return &identityCache{
		client,
	}
}

func (c *identityCache) GetUsername(ctx context.Context, identityID int64) (string, error) {
	key := fmt.Sprintf(KeyIdentityUsername, identityID)
	username, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	} else if err != nil {
		return "", err
	}
	return username, nil
}

func (c *identityCache) SetUsername(ctx context.Context, identityID int64, username string) error {
	key := fmt.Sprintf(KeyIdentityUsername, identityID)
	return c.client.Set(ctx, key, username, usernameTTL).Err()
}
