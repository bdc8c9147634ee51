package admin

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisTokenPrefix = "admin_token:"

// RedisTokenStore keeps tokens in Redis with a TTL matching the session
// lifetime, so expiry and multi-instance sharing come for free.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, ttl: ttl}
}

func (s *RedisTokenStore) Save(token string, issuedAt time.Time) error {
	ctx := context.Background()
	return s.client.Set(ctx, redisTokenPrefix+token, strconv.FormatInt(issuedAt.Unix(), 10), s.ttl).Err()
}

func (s *RedisTokenStore) IssuedAt(token string) (time.Time, bool) {
	ctx := context.Background()
	val, err := s.client.Get(ctx, redisTokenPrefix+token).Result()
	if err != nil {
		return time.Time{}, false
	}
	sec, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(sec, 0), true
}

func (s *RedisTokenStore) Delete(token string) error {
	ctx := context.Background()
	return s.client.Del(ctx, redisTokenPrefix+token).Err()
}

// Purge is a no-op: Redis evicts expired tokens via their TTL.
func (s *RedisTokenStore) Purge(time.Time) error {
	return nil
}
