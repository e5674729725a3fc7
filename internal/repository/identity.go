package repository

import (
	"context"
	"strconv"

	"github.com/ojlab/discussions/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// identityReader 协调层，协调缓存和数据库的用户名查询
type identityReader struct {
	db    domain.IdentityReader
	cache domain.IdentityCache
	group singleflight.Group
}

var _ domain.IdentityReader = (*identityReader)(nil)

func NewIdentityReader(db domain.IdentityReader, cache domain.IdentityCache) *identityReader {
	return &identityReader{
		db:    db,
		cache: cache,
	}
}

// Username resolves a display name, cache first. Concurrent misses for the
// same identity collapse into one database lookup.
func (r *identityReader) Username(ctx context.Context, identityID int64) (string, error) {
	username, err := r.cache.GetUsername(ctx, identityID)
	if err == nil {
		return username, nil
	}

	key := "identity:" + strconv.FormatInt(identityID, 10)
	result, err, _ := r.group.Do(key, func() (interface{}, error) {
		name, err := r.db.Username(ctx, identityID)
		if err != nil {
			return "", err
		}
		if cacheErr := r.cache.SetUsername(ctx, identityID, name); cacheErr != nil {
			logrus.Warnf("failed to cache username for identity %d: %v", identityID, cacheErr)
		}
		return name, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
