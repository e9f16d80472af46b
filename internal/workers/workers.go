// Package workers runs tasks on a fixed pool of goroutines, hashing each
// session id to one worker so turns within a session stay ordered.
package workers

import (
	"sync"

	"github.com/rs/zerolog/log"
)

type task struct {
	sessionID string
	run       func()
}

type Pool struct {
	numWorkers int
	queues     []chan task
	wg         sync.WaitGroup
}

func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		numWorkers: n,
		queues:     make([]chan task, n),
	}

	for i := 0; i < n; i++ {
		ch := make(chan task, 100)
		p.queues[i] = ch

		p.wg.Add(1)
		go func(id int, q chan task) {
			defer p.wg.Done()
			for t := range q {
				log.Debug().Int("worker", id).Str("session", t.sessionID).Msg("processing task")
				t.run()
			}
		}(i, ch)
	}

	return p
}

// Dispatch enqueues fn on the worker owning sessionID. Blocks when that
// worker's queue is full, which backpressures the consumer.
func (p *Pool) Dispatch(sessionID string, fn func()) {
	worker := int(hashString(sessionID)) % p.numWorkers
	p.queues[worker] <- task{sessionID: sessionID, run: fn}
}

// Stop closes the queues and waits for in-flight tasks.
func (p *Pool) Stop() {
	for _, q := range p.queues {
		close(q)
	}
	p.wg.Wait()
}

// FNV-1a
func hashString(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
