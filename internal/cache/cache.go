package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rdyansyah/skygate/internal/models"
)

// Cache stores serialized upstream responses keyed by request identity.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, key string) ([]byte, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, key string, value []byte) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// SearchKey derives a stable cache key from the fields of a search that
// influence the upstream response.
func SearchKey(criteria models.SearchCriteria) string {
	keyData := struct {
		TripType      string
		OriginSky     string
		OriginEntity  string
		DestSky       string
		DestEntity    string
		DepartureDate string
		ReturnDate    string
		Adults        int
		CabinClass    string
	}{
		TripType:      criteria.TripType,
		OriginSky:     criteria.Origin.SkyID,
		OriginEntity:  criteria.Origin.EntityID,
		DestSky:       criteria.Destination.SkyID,
		DestEntity:    criteria.Destination.EntityID,
		DepartureDate: criteria.DepartureDate,
		ReturnDate:    criteria.ReturnDate,
		Adults:        criteria.Adults,
		CabinClass:    criteria.CabinClass,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "search:" + hex.EncodeToString(hash[:])
}

// CalendarKey derives a stable cache key for a route's monthly price grid.
func CalendarKey(originSkyID, destinationSkyID, fromDate string) string {
	hash := sha256.Sum256([]byte(originSkyID + "|" + destinationSkyID + "|" + fromDate))
	return "calendar:" + hex.EncodeToString(hash[:])
}
