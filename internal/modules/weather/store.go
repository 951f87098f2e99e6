// README: Weekly forecast cache backed by Redis.
package weather

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "weather:weekly:"

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// GetWeekly returns the cached forecast for the given base date, or ok=false
// on a miss.
func (s *Store) GetWeekly(ctx context.Context, date string) ([]DailyForecast, bool, error) {
	val, err := s.redis.Get(ctx, cacheKeyPrefix+date).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var forecasts []DailyForecast
	if err := json.Unmarshal([]byte(val), &forecasts); err != nil {
		// A corrupt entry is treated as a miss; the next refresh overwrites it.
		return nil, false, nil
	}
	return forecasts, true, nil
}

// PutWeekly caches the forecast under its base date with the given TTL.
func (s *Store) PutWeekly(ctx context.Context, date string, forecasts []DailyForecast, ttl time.Duration) error {
	payload, err := json.Marshal(forecasts)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, cacheKeyPrefix+date, payload, ttl).Err()
}
