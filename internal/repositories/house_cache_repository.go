package repositories

import (
	"context"
	"encoding/json"
	"time"

	"house-hunter-server/internal/models"
	"house-hunter-server/pkg/cache"
	"house-hunter-server/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

type houseCache struct {
	client *redis.Client
}

func NewHouseCache(client *redis.Client) HouseCache {
	return &houseCache{client: client}
}

func (c *houseCache) GetHouse(ctx context.Context, key string) (*models.House, error) {
	start := time.Now()
	data, err := c.client.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		return nil, err
	}
	var house models.House
	if err := json.Unmarshal([]byte(data), &house); err != nil {
		return nil, err
	}
	return &house, nil
}

func (c *houseCache) SetHouse(ctx context.Context, key string, house *models.House, expiration time.Duration) error {
	data, err := json.Marshal(house)
	if err != nil {
		return err
	}
	start := time.Now()
	err = c.client.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		return err
	}
	return nil
}

func (c *houseCache) GetHouseList(ctx context.Context, key string) ([]models.House, error) {
	start := time.Now()
	data, err := c.client.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get_list").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_list").Inc()
		return nil, err
	}
	var houses []models.House
	if err := json.Unmarshal([]byte(data), &houses); err != nil {
		return nil, err
	}
	return houses, nil
}

func (c *houseCache) SetHouseList(ctx context.Context, key string, houses []models.House, expiration time.Duration) error {
	data, err := json.Marshal(houses)
	if err != nil {
		return err
	}
	start := time.Now()
	err = c.client.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set_list").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_list").Inc()
		return err
	}

	// track the key so list invalidation can clear every cached filter
	start = time.Now()
	err = c.client.SAdd(ctx, cache.HouseListKeysSetKey(), key).Err()
	metrics.RedisOperationDuration.WithLabelValues("sadd").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("sadd").Inc()
	}
	return nil
}

func (c *houseCache) InvalidateHouse(ctx context.Context, id string) error {
	start := time.Now()
	err := c.client.Del(ctx, cache.HouseKey(id)).Err()
	metrics.RedisOperationDuration.WithLabelValues("del").Observe(time.Since(start).Seconds())
	if err != nil && err != redis.Nil {
		metrics.RedisErrorsTotal.WithLabelValues("del").Inc()
		return err
	}
	return nil
}

func (c *houseCache) InvalidateLists(ctx context.Context) error {
	start := time.Now()
	keys, err := c.client.SMembers(ctx, cache.HouseListKeysSetKey()).Result()
	metrics.RedisOperationDuration.WithLabelValues("smembers").Observe(time.Since(start).Seconds())
	if err != nil && err != redis.Nil {
		metrics.RedisErrorsTotal.WithLabelValues("smembers").Inc()
		return err
	}

	keys = append(keys, cache.HouseListKeysSetKey())
	start = time.Now()
	err = c.client.Del(ctx, keys...).Err()
	metrics.RedisOperationDuration.WithLabelValues("del").Observe(time.Since(start).Seconds())
	if err != nil && err != redis.Nil {
		metrics.RedisErrorsTotal.WithLabelValues("del").Inc()
		return err
	}
	return nil
}
