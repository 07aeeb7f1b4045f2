package buffer

import "sync"

type editKind int

const (
	// editRemove continues a deletion: shift the cold tail down to the
	// current boundary.
	editRemove editKind = iota
	// editAdd continues an insertion: shift the cold tail up by one and
	// seat the evicted byte at its front.
	editAdd
	// editWindow moves the worker's notion of the boundary. Sent only
	// after the queue has drained, so there is nothing to physically move.
	editWindow
	// editShutdown stops the worker.
	editShutdown
)

type editMsg struct {
	kind     editKind
	b        byte
	boundary int
}

// editQueue is the ordered, unbounded channel between the interactive
// goroutine and the worker. push never blocks, which keeps Remove and
// Insert cheap enough to run on every keystroke; all waiting happens in
// waitIdle.
type editQueue struct {
	mu   sync.Mutex
	cond *sync.Cond
	msgs []editMsg
	busy bool
}

func newEditQueue() *editQueue {
	q := &editQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *editQueue) push(m editMsg) {
	q.mu.Lock()
	q.msgs = append(q.msgs, m)
	q.mu.Unlock()
	q.cond.Broadcast()
}

// next blocks until a message is available and marks the queue busy until
// the matching done call.
func (q *editQueue) next() editMsg {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.msgs) == 0 {
		q.cond.Wait()
	}
	m := q.msgs[0]
	q.msgs = q.msgs[1:]
	q.busy = true
	return m
}

func (q *editQueue) done() {
	q.mu.Lock()
	q.busy = false
	empty := len(q.msgs) == 0
	q.mu.Unlock()
	if empty {
		q.cond.Broadcast()
	}
}

// waitIdle blocks until every queued message has been fully processed. The
// mutex also orders memory: after waitIdle returns, the caller observes all
// of the worker's writes.
func (q *editQueue) waitIdle() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.msgs) > 0 || q.busy {
		q.cond.Wait()
	}
}

// processEdits runs on the worker goroutine. Its single piece of local
// state, frontier, is how far the cold tail's start has been shifted to
// date; Open captures it before spawning the goroutine, since edits can
// move the boundary before the first message is dequeued. The worker
// writes only at or beyond the boundary current when it dequeues a
// message; the interactive goroutine writes only before it.
func (s *Store) processEdits(frontier int) {
	defer s.wg.Done()

	for {
		m := s.queue.next()
		switch m.kind {
		case editRemove:
			// Catch the tail up to the current boundary. Consecutive
			// removals coalesce: the first message moves the tail the
			// whole distance, the rest find frontier == start.
			start := int(s.windowEnd.Load())
			if start < frontier {
				copy(s.mem[start:], s.mem[frontier:])
			}
			frontier = start

		case editAdd:
			start := int(s.windowEnd.Load())
			if start < len(s.mem) {
				tail := s.mem[start:]
				copy(tail[1:], tail[:len(tail)-1])
				tail[0] = m.b
			}

		case editWindow:
			frontier = m.boundary

		case editShutdown:
			s.queue.done()
			return
		}
		s.queue.done()
	}
}
