// Package session gère la session de démonstration {name, email} d'un navigateur.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("key not found")

// Store est un stockage clé/valeur durable, l'équivalent du localStorage du navigateur.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// RedisStore conserve les sessions dans Redis sous un préfixe.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore crée un store Redis ; ttl 0 signifie sans expiration.
func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "lecture Redis")
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return errors.Wrap(s.rdb.Set(ctx, s.prefix+key, value, s.ttl).Err(), "écriture Redis")
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return errors.Wrap(s.rdb.Del(ctx, s.prefix+key).Err(), "suppression Redis")
}
