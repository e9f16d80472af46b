package workers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchKeepsPerSessionOrder(t *testing.T) {
	pool := NewPool(4)

	var mu sync.Mutex
	seen := make(map[string][]int)

	for i := 0; i < 50; i++ {
		i := i
		for _, sid := range []string{"a", "b", "c"} {
			sid := sid
			pool.Dispatch(sid, func() {
				mu.Lock()
				seen[sid] = append(seen[sid], i)
				mu.Unlock()
			})
		}
	}
	pool.Stop()

	for sid, got := range seen {
		assert.Len(t, got, 50, "session %s", sid)
		for i, v := range got {
			assert.Equal(t, i, v, "session %s out of order", sid)
		}
	}
}

func TestStopWaitsForInflightTasks(t *testing.T) {
	pool := NewPool(2)

	var mu sync.Mutex
	done := 0
	for i := 0; i < 20; i++ {
		pool.Dispatch("s", func() {
			mu.Lock()
			done++
			mu.Unlock()
		})
	}
	pool.Stop()

	assert.Equal(t, 20, done)
}

func TestNewPoolClampsWorkerCount(t *testing.T) {
	pool := NewPool(0)
	ran := false
	pool.Dispatch("s", func() { ran = true })
	pool.Stop()
	assert.True(t, ran)
}
