package http_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	mshttp "github.com/fwojciec/mailscout/http"
	"github.com/stretchr/testify/assert"
)

func TestClientLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows burst then rejects", func(t *testing.T) {
		t.Parallel()

		limiter := mshttp.NewClientLimiter(0.001, 2, 0)

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"), "third request should exceed burst")
	})

	t.Run("different clients have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := mshttp.NewClientLimiter(0.001, 1, 0)

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.2"), "other client should not be limited")
	})

	t.Run("raises burst below one", func(t *testing.T) {
		t.Parallel()

		limiter := mshttp.NewClientLimiter(0.001, 0, 0)

		assert.True(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("concurrent requests share one bucket per client", func(t *testing.T) {
		t.Parallel()

		limiter := mshttp.NewClientLimiter(0.001, 3, 0)

		var wg sync.WaitGroup
		var allowed atomic.Int32
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("10.0.0.1") {
					allowed.Add(1)
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, int32(3), allowed.Load())
	})

	t.Run("forgets idle clients", func(t *testing.T) {
		t.Parallel()

		limiter := mshttp.NewClientLimiter(0.001, 1, 20*time.Millisecond)

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.2"))
		assert.Equal(t, 2, limiter.Len())

		time.Sleep(50 * time.Millisecond)

		// The next request sweeps both idle clients before being counted.
		assert.True(t, limiter.Allow("10.0.0.3"))
		assert.Equal(t, 1, limiter.Len())
		assert.True(t, limiter.Allow("10.0.0.1"), "evicted client starts with a full burst")
		assert.Equal(t, 2, limiter.Len())
	})

	t.Run("keeps active clients", func(t *testing.T) {
		t.Parallel()

		limiter := mshttp.NewClientLimiter(0.001, 1, time.Hour)

		for i := range 100 {
			limiter.Allow(fmt.Sprintf("10.0.0.%d", i%10))
		}

		assert.Equal(t, 10, limiter.Len())
	})
}
