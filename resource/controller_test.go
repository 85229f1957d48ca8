package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	// Test with limit
	c := NewController(Config{MemoryLimitBytes: 100})
	assert.Equal(t, int64(100), c.Limit())

	// Acquire 50
	err := c.AcquireMemory(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.MemoryUsage())

	// Acquire 40
	err = c.AcquireMemory(context.Background(), 40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Acquire 20 (should block/timeout)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err = c.AcquireMemory(ctx, 20)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Release 50
	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	// Now Acquire 20 should succeed
	err = c.AcquireMemory(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, int64(60), c.MemoryUsage())
}

func TestController_OversizedRequest(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	err := c.AcquireMemory(context.Background(), 101)
	assert.ErrorIs(t, err, ErrMemoryLimit)
	assert.Contains(t, err.Error(), "requested 101 bytes, in use 0 of 100")
	assert.Equal(t, int64(0), c.MemoryUsage())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	err := c.AcquireMemory(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_Reserve(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 64})

	release, err := c.Reserve(context.Background(), 48)
	require.NoError(t, err)
	assert.Equal(t, int64(48), c.MemoryUsage())

	t.Run("OverLimit", func(t *testing.T) {
		_, err := c.Reserve(context.Background(), 65)
		assert.ErrorIs(t, err, ErrMemoryLimit)
	})

	t.Run("WaitsForRelease", func(t *testing.T) {
		done := make(chan error, 1)
		go func() {
			release2, err := c.Reserve(context.Background(), 24)
			if err == nil {
				release2()
			}
			done <- err
		}()

		select {
		case <-done:
			t.Fatal("reservation must wait while memory is in use")
		case <-time.After(20 * time.Millisecond):
		}

		release()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("reservation did not resume after release")
		}
		assert.Equal(t, int64(0), c.MemoryUsage())
	})

	t.Run("Canceled", func(t *testing.T) {
		hold, err := c.Reserve(context.Background(), 64)
		require.NoError(t, err)
		defer hold()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err = c.Reserve(ctx, 1)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireMemory(context.Background(), 1<<40))
	release, err := c.Reserve(context.Background(), 1<<40)
	require.NoError(t, err)
	release()
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(0), c.Limit())
}
