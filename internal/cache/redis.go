package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"pricesuggest/internal/model"
)

const redisKeyPrefix = "suggestion:"

// Redis shares the suggestion cache between processes. Expiry is
// delegated to the server-side TTL, so Get never sees stale entries.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &Redis{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (*model.SuggestionResult, bool) {
	val, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("cache get error: %v", err)
		return nil, false
	}

	var result model.SuggestionResult
	if err := json.Unmarshal(val, &result); err != nil {
		log.Printf("cache decode error for %s: %v", key, err)
		return nil, false
	}
	return &result, true
}

func (r *Redis) Put(ctx context.Context, key string, result *model.SuggestionResult) {
	val, err := json.Marshal(result)
	if err != nil {
		log.Printf("cache encode error for %s: %v", key, err)
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, val, r.ttl).Err(); err != nil {
		log.Printf("cache set error for %s: %v", key, err)
	}
}
