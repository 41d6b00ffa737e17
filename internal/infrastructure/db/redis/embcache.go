package redis

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/spartancutz/barber-discovery/internal/core/ports"
	"github.com/spartancutz/barber-discovery/internal/metrics"
)

const (
	cacheKeyPrefix = "embcache:"
	cacheTTL       = 24 * time.Hour
)

// CachedEmbedder decorates an Embedder with a Redis cache keyed by the
// SHA-256 of the image bytes. The key is a content hash, so a hit can never
// serve a vector for a different image; any cache failure degrades to
// calling the inner embedder.
type CachedEmbedder struct {
	inner  ports.Embedder
	client *redis.Client
	logger zerolog.Logger
}

func NewCachedEmbedder(inner ports.Embedder, client *redis.Client, logger zerolog.Logger) *CachedEmbedder {
	return &CachedEmbedder{inner: inner, client: client, logger: logger}
}

// Embed returns a cached embedding or calls the inner embedder and caches
// the result.
func (c *CachedEmbedder) Embed(ctx context.Context, image []byte) ([]float32, error) {
	key := cacheKey(image)

	if vec, ok := c.getFromCache(ctx, key); ok {
		metrics.EmbeddingCacheTotal.WithLabelValues("hit").Inc()
		return vec, nil
	}
	metrics.EmbeddingCacheTotal.WithLabelValues("miss").Inc()

	vec, err := c.inner.Embed(ctx, image)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, vectorToBytes(vec), cacheTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to cache embedding")
	}
	return vec, nil
}

func (c *CachedEmbedder) getFromCache(ctx context.Context, key string) ([]float32, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Msg("embedding cache read failed")
		}
		return nil, false
	}

	vec, err := bytesToVector(data)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("discarding corrupt cached embedding")
		return nil, false
	}
	return vec, true
}

func cacheKey(image []byte) string {
	h := sha256.Sum256(image)
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func vectorToBytes(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

func bytesToVector(data []byte) ([]float32, error) {
	if len(data) == 0 || len(data)%4 != 0 {
		return nil, fmt.Errorf("invalid cached embedding: len=%d", len(data))
	}
	vec := make([]float32, len(data)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return vec, nil
}
