package repository

import (
	"context"
	"course_insights_backend/internal/model"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const recordCacheKey = "insights:records"

// RecordCache 缓存最近一次拉取的宽表，减少对数据源的重复请求
type RecordCache interface {
	Get(ctx context.Context) ([]model.FlatRecord, bool, error)
	Set(ctx context.Context, records []model.FlatRecord) error
	Invalidate(ctx context.Context) error
}

type RedisRecordCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRecordCache(client *redis.Client, ttl time.Duration) *RedisRecordCache {
	return &RedisRecordCache{Client: client, TTL: ttl}
}

func (c *RedisRecordCache) Get(ctx context.Context) ([]model.FlatRecord, bool, error) {
	raw, err := c.Client.Get(ctx, recordCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read record cache: %w", err)
	}

	var records []model.FlatRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		// 缓存内容损坏时按未命中处理
		return nil, false, nil
	}
	return records, true, nil
}

func (c *RedisRecordCache) Set(ctx context.Context, records []model.FlatRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, recordCacheKey, raw, c.TTL).Err()
}

func (c *RedisRecordCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, recordCacheKey).Err()
}

// NopRecordCache 未启用 Redis 时使用
type NopRecordCache struct{}

func (NopRecordCache) Get(context.Context) ([]model.FlatRecord, bool, error) { return nil, false, nil }

func (NopRecordCache) Set(context.Context, []model.FlatRecord) error { return nil }

func (NopRecordCache) Invalidate(context.Context) error { return nil }
