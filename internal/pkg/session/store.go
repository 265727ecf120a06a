package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists Session values with a TTL.
//
// An expired or never-written sid reads back as an empty session, matching
// the "absent on next access" contract of session expiry.
type Store interface {
	// Get returns the session for sid, or an empty session when absent.
	Get(ctx context.Context, sid string) (*Session, error)
	// Save writes the session for sid, preserving the remaining TTL.
	Save(ctx context.Context, sid string, s *Session) error
	// SaveWithExpiry writes the session for sid and (re)sets the TTL.
	SaveWithExpiry(ctx context.Context, sid string, s *Session, ttl time.Duration) error
	// SetExpiry resets the TTL of the whole session.
	SetExpiry(ctx context.Context, sid string, ttl time.Duration) error
	// Delete destroys the session.
	Delete(ctx context.Context, sid string) error
}

// RedisStore is a Store backed by a redis key per session.
type RedisStore struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
}

// NewRedisStore creates a redis-backed session store. defaultTTL bounds
// sessions written without an explicit expiry.
func NewRedisStore(client *redis.Client, defaultTTL time.Duration) *RedisStore {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}

	return &RedisStore{
		client:     client,
		prefix:     "session:",
		defaultTTL: defaultTTL,
	}
}

// Get returns the session for sid, or an empty session when absent.
func (r *RedisStore) Get(ctx context.Context, sid string) (*Session, error) {
	raw, err := r.client.Get(ctx, r.prefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		// Corrupt state is unrecoverable for this sid; treat as expired.
		return &Session{}, nil
	}

	return &s, nil
}

// Save writes the session for sid, preserving the remaining TTL. A session
// that has no TTL yet gets the store default.
func (r *RedisStore) Save(ctx context.Context, sid string, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	key := r.prefix + sid
	if err := r.client.Set(ctx, key, raw, redis.KeepTTL).Err(); err != nil {
		return err
	}

	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return err
	}
	if ttl < 0 {
		return r.client.Expire(ctx, key, r.defaultTTL).Err()
	}

	return nil
}

// SaveWithExpiry writes the session for sid and (re)sets the TTL.
func (r *RedisStore) SaveWithExpiry(ctx context.Context, sid string, s *Session, ttl time.Duration) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	return r.client.Set(ctx, r.prefix+sid, raw, ttl).Err()
}

// SetExpiry resets the TTL of the whole session.
func (r *RedisStore) SetExpiry(ctx context.Context, sid string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	return r.client.Expire(ctx, r.prefix+sid, ttl).Err()
}

// Delete destroys the session.
func (r *RedisStore) Delete(ctx context.Context, sid string) error {
	return r.client.Del(ctx, r.prefix+sid).Err()
}
