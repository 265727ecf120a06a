package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, time.Hour), mr
}

func TestStoreGetAbsent(t *testing.T) {
	store, _ := newTestStore(t)

	s, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.PendingRegistration)
}

func TestStoreSaveWithExpiryRoundTrip(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	in := &Session{
		PendingRegistration: &PendingRegistration{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Password: "Str0ngPass!",
			OTP:      "123456",
		},
		EmailForOTP: "jane@example.com",
	}

	require.NoError(t, store.SaveWithExpiry(ctx, "sid1", in, 5*time.Minute))

	out, err := store.Get(ctx, "sid1")
	require.NoError(t, err)
	require.NotNil(t, out.PendingRegistration)
	assert.Equal(t, "123456", out.PendingRegistration.OTP)
	assert.Equal(t, "jane@example.com", out.EmailForOTP)

	assert.Equal(t, 5*time.Minute, mr.TTL("session:sid1"))
}

func TestStoreWholeSessionExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	in := &Session{
		PendingRegistration: &PendingRegistration{OTP: "123456"},
		EmailForOTP:         "jane@example.com",
	}
	require.NoError(t, store.SaveWithExpiry(ctx, "sid1", in, 5*time.Minute))

	mr.FastForward(5*time.Minute + time.Second)

	out, err := store.Get(ctx, "sid1")
	require.NoError(t, err)
	assert.Nil(t, out.PendingRegistration)
	assert.Empty(t, out.EmailForOTP)
}

func TestStoreSaveKeepsTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveWithExpiry(ctx, "sid1", &Session{AuthUserID: 1}, 10*time.Minute))

	mr.FastForward(time.Minute)
	require.NoError(t, store.Save(ctx, "sid1", &Session{AuthUserID: 1, Flash: map[string]string{"k": "v"}}))

	assert.Equal(t, 9*time.Minute, mr.TTL("session:sid1"))
}

func TestStoreSaveWithoutTTLGetsDefault(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), "sid1", &Session{AuthUserID: 1}))

	assert.Equal(t, time.Hour, mr.TTL("session:sid1"))
}

func TestStoreDelete(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveWithExpiry(ctx, "sid1", &Session{AuthUserID: 1}, time.Minute))
	require.NoError(t, store.Delete(ctx, "sid1"))

	assert.False(t, mr.Exists("session:sid1"))
}

func TestStoreCorruptValueReadsAsEmpty(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, mr.Set("session:sid1", "{not json"))

	out, err := store.Get(context.Background(), "sid1")
	require.NoError(t, err)
	assert.False(t, out.Authenticated())
}
