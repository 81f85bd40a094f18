package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-realtime-comments/domain"
	"github.com/Guyuepp/go-realtime-comments/internal/repository/cache"
)

const (
	KeyUser = "user:%d"

	// 物理过期 = 逻辑过期 * physicalTTLFactor，过期后仍可返回旧值并异步重建
	physicalTTLFactor = 3
)

type userCache struct {
	client *redis.Client
}

var _ domain.UserCache = (*userCache)(nil)

func NewUserCache(client *redis.Client) *userCache {
	return &userCache{
		client,
	}
}

func (c *userCache) GetUser(ctx context.Context, id int64) (domain.User, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyUser, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.User{}, false, domain.ErrCacheMiss
	} else if err != nil {
		return domain.User{}, false, err
	}

	var entry cache.DataWithLogicalExpire[domain.User]
	if err = json.Unmarshal(data, &entry); err != nil {
		return domain.User{}, false, err
	}
	return entry.Data, entry.IsLogicalExpired(), nil
}

// MGetUsers returns logically expired entries too; callers only use them for display fields.
func (c *userCache) MGetUsers(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	res := make(map[int64]domain.User, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf(KeyUser, id)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, val := range vals {
		str, ok := val.(string)
		if !ok {
			continue
		}
		var entry cache.DataWithLogicalExpire[domain.User]
		if err := json.Unmarshal([]byte(str), &entry); err != nil {
			logrus.Warnf("failed to unmarshal cached user %d: %v", ids[i], err)
			continue
		}
		res[ids[i]] = entry.Data
	}
	return res, nil
}

func (c *userCache) SetUser(ctx context.Context, u domain.User, ttl time.Duration) error {
	data, err := encodeUser(u, ttl)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyUser, u.ID), data, ttl*physicalTTLFactor).Err()
}

func (c *userCache) BatchSetUsers(ctx context.Context, us []domain.User, ttl time.Duration) error {
	if len(us) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	var errMarshal error
	queued := 0
	for i := range us {
		data, err := encodeUser(us[i], ttl)
		if err != nil {
			logrus.Warnf("failed to marshal user for cache, ID: %d, err: %v", us[i].ID, err)
			errMarshal = err
			continue
		}
		pipe.Set(ctx, fmt.Sprintf(KeyUser, us[i].ID), data, ttl*physicalTTLFactor)
		queued++
	}
	if queued == 0 {
		return errMarshal
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *userCache) DeleteUser(ctx context.Context, id int64) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyUser, id)).Err()
}

// encodeUser never caches the follow sets.
func encodeUser(u domain.User, ttl time.Duration) (string, error) {
	u.Followers = nil
	u.Following = nil
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(u, ttl))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
