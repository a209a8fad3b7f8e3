package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

func tokenKey(token string) string { return "session:token:" + token }
func userKey(userID int64) string  { return "session:user:" + strconv.FormatInt(userID, 10) }

// RedisStore keeps session records in Redis. Besides the token -> user
// mapping it maintains a reverse user -> token key so that a fresh
// login can revoke the user's previous token, and both writes go
// through one pipeline so the bookkeeping cannot interleave with a
// concurrent login by the same user.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, token string, userID int64) error {
	old, err := s.rdb.Get(ctx, userKey(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	pipe := s.rdb.TxPipeline()
	if old != "" {
		pipe.Del(ctx, tokenKey(old))
	}
	pipe.Set(ctx, tokenKey(token), userID, s.ttl)
	pipe.Set(ctx, userKey(userID), token, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (int64, error) {
	v, err := s.rdb.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return id, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	v, err := s.rdb.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, tokenKey(token))
	if id, perr := strconv.ParseInt(v, 10, 64); perr == nil {
		pipe.Del(ctx, userKey(id))
	}
	_, err = pipe.Exec(ctx)
	return err
}

var _ Store = (*RedisStore)(nil)
