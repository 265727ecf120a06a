package goroutine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRunsTasks(t *testing.T) {
	mgr := NewManager(4)

	var ran atomic.Int32
	for range 10 {
		mgr.Go(context.Background(), func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}

	require.NoError(t, mgr.Wait())
	assert.LessOrEqual(t, ran.Load(), int32(10))
	assert.Positive(t, ran.Load())
}

func TestManagerCollectsErrors(t *testing.T) {
	mgr := NewManager(2)

	boom := errors.New("boom")
	mgr.Go(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, mgr.Wait(), boom)
}

func TestManagerClosedAfterWait(t *testing.T) {
	mgr := NewManager(2)
	require.NoError(t, mgr.Wait())

	var ran atomic.Bool
	mgr.Go(context.Background(), func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	require.NoError(t, mgr.Wait())
	assert.False(t, ran.Load())
}

func TestManagerRecoversPanic(t *testing.T) {
	mgr := NewManager(2)

	mgr.Go(context.Background(), func(ctx context.Context) error {
		panic("should not escape")
	})

	assert.NoError(t, mgr.Wait())
}
