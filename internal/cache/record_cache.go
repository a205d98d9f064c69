package cache

import (
	"context"
	"time"

	"fizikl/internal/model"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RecordCache handles Redis operations for survey records
type RecordCache interface {
	Set(ctx context.Context, record *model.SurveyRecord) error
	Get(ctx context.Context, id string) (*model.SurveyRecord, error)
}

type recordCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecordCache creates a new survey record cache
func NewRecordCache(client *redis.Client) RecordCache {
	return &recordCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func recordKey(id string) string {
	return "survey:" + id
}

func (c *recordCache) Set(ctx context.Context, record *model.SurveyRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, recordKey(record.ID), data, c.ttl).Err()
}

func (c *recordCache) Get(ctx context.Context, id string) (*model.SurveyRecord, error) {
	data, err := c.client.Get(ctx, recordKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var record model.SurveyRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
