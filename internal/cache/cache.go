package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultPredictionTimeToLive = 24 * time.Hour

// CachedPrediction is probability computed by a specific model version
type CachedPrediction struct {
	Probability  float64   `msgpack:"p"`
	ModelVersion string    `msgpack:"v"`
	ComputedAt   time.Time `msgpack:"at"`
}

// PredictionCache stores probabilities by model version and encoded payload
type PredictionCache interface {
	Find(ctx context.Context, modelVersion, payload string) (*CachedPrediction, error)
	Store(ctx context.Context, payload string, p *CachedPrediction) error
}

type redisPredictionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPredictionCache builds redis-backed cache, non-positive ttl falls back to 24h
func NewRedisPredictionCache(client *redis.Client, ttl time.Duration) PredictionCache {
	if ttl <= 0 {
		ttl = defaultPredictionTimeToLive
	}
	return &redisPredictionCache{client: client, ttl: ttl}
}

func (r *redisPredictionCache) Find(ctx context.Context, modelVersion, payload string) (*CachedPrediction, error) {
	res, err := r.client.Get(ctx, r.key(modelVersion, payload)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var p CachedPrediction
	if err := msgpack.Unmarshal([]byte(res), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *redisPredictionCache) Store(ctx context.Context, payload string, p *CachedPrediction) error {
	encoded, err := msgpack.Marshal(p)
	if err != nil {
		return err
	}

	if _, err := r.client.SetNX(ctx, r.key(p.ModelVersion, payload), encoded, r.ttl).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisPredictionCache) key(modelVersion, payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return fmt.Sprintf("prediction:%s:%s", modelVersion, hex.EncodeToString(sum[:]))
}

type noopPredictionCache struct{}

// NewNoopPredictionCache is used when no redis is configured, it never finds anything
func NewNoopPredictionCache() PredictionCache {
	return noopPredictionCache{}
}

func (noopPredictionCache) Find(context.Context, string, string) (*CachedPrediction, error) {
	return nil, nil
}

func (noopPredictionCache) Store(context.Context, string, *CachedPrediction) error {
	return nil
}
