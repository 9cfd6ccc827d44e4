package signalstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/swipekit/pkg/device"
)

// RedisStore keeps signals as JSON strings under prefix+"signals:"+clientID.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a store on client. A zero ttl stores keys without expiry.
func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	if client == nil {
		panic("signalstore: nil redis client")
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// Key returns the Redis key used for clientID.
func (s *RedisStore) Key(clientID string) string {
	return s.prefix + "signals:" + clientID
}

func (s *RedisStore) Save(ctx context.Context, clientID string, sig device.Signals) error {
	if clientID == "" {
		return ErrEmptyClientID
	}
	data, err := json.Marshal(sig)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	if err := s.client.Set(ctx, s.Key(clientID), data, s.ttl).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, clientID string) (device.Signals, error) {
	if clientID == "" {
		return device.Signals{}, ErrEmptyClientID
	}
	data, err := s.client.Get(ctx, s.Key(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return device.Signals{}, ErrNotFound
	}
	if err != nil {
		return device.Signals{}, errors.Join(ErrStoreFailure, err)
	}

	var sig device.Signals
	if err := json.Unmarshal(data, &sig); err != nil {
		return device.Signals{}, errors.Join(ErrStoreFailure, err)
	}
	return sig, nil
}

func (s *RedisStore) Delete(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrEmptyClientID
	}
	if err := s.client.Del(ctx, s.Key(clientID)).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}
