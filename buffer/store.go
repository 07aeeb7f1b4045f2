package buffer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	mmap "github.com/edsrzf/mmap-go"
)

// HotWindowSize is the size of the region around the cursor that is kept
// synchronously consistent on every edit. 64 KiB keeps a synchronous shift
// well under a frame even on slow terminals.
const HotWindowSize = 1 << 16

// Window resize thresholds, as fractions of HotWindowSize. Empirical: grow
// before the cursor can run past the boundary, shrink once the window is so
// much larger than needed that synchronous shifts start to cost.
const (
	windowGrowSlack   = HotWindowSize / 3
	windowShrinkSlack = HotWindowSize * 4 / 3
)

// ErrEmptyFile is returned by Open for zero-length files, which cannot be
// memory-mapped.
var ErrEmptyFile = errors.New("buffer: cannot edit an empty file")

// Store owns a file's bytes for the lifetime of an editing session.
//
// All exported methods must be called from a single goroutine (the
// interactive one); the Store coordinates with its background worker
// internally. Bytes returned by Bytes are invalidated by the next mutation.
type Store struct {
	mem  mmap.MMap
	file *os.File

	// Logical content length. Deletions shrink it without shrinking the
	// mapping; insertions only ever restore a previously removed byte, so
	// it never exceeds the mapped capacity.
	n int

	// Mutation counter. Bumped by Set, Remove and Insert; consumers such as
	// the search index compare it against the value they last observed.
	version uint64

	// Boundary between the hot window and the cold tail, shared with the
	// worker. Only the interactive goroutine moves it.
	windowEnd atomic.Int64

	queue *editQueue
	wg    sync.WaitGroup
}

// Open maps f read-write with copy-on-write semantics: edits are visible to
// this process only, until Flush writes them back. The returned Store keeps
// f for Flush and spawns the background worker.
func Open(f *os.File) (*Store, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("buffer: stat: %w", err)
	}
	if info.Size() == 0 {
		return nil, ErrEmptyFile
	}

	mem, err := mmap.Map(f, mmap.COPY, 0)
	if err != nil {
		return nil, fmt.Errorf("buffer: mmap: %w", err)
	}

	s := &Store{
		mem:   mem,
		file:  f,
		n:     len(mem),
		queue: newEditQueue(),
	}
	s.windowEnd.Store(int64(min(HotWindowSize, s.n)))

	s.wg.Add(1)
	// The frontier must be read here, not on the worker goroutine: edits
	// issued after Open returns can move windowEnd before the worker runs.
	go s.processEdits(int(s.windowEnd.Load()))

	return s, nil
}

// Len returns the logical content length.
func (s *Store) Len() int { return s.n }

// Version returns the mutation counter.
func (s *Store) Version() uint64 { return s.version }

// Bytes returns the current content without copying. The slice is only
// valid until the next mutation, and bytes beyond the hot window may lag
// behind queued edits until Block has been called.
func (s *Store) Bytes() []byte { return s.mem[:s.n] }

// Set overwrites the byte at offset in place. Offsets inside the current
// content are always safe to overwrite directly; no shifting is needed, so
// the worker is not involved.
func (s *Store) Set(offset int, b byte) {
	if offset < 0 || offset >= s.n {
		panic(fmt.Sprintf("buffer: Set(%d) outside content of length %d", offset, s.n))
	}
	s.mem[offset] = b
	s.version++
}

// Remove deletes and returns the byte at offset. Bytes between offset and
// the window boundary shift down synchronously; the cold tail catches up in
// the background. The caller must keep the edit point inside the hot window
// (see Reposition); violating that is a programming error.
func (s *Store) Remove(offset int) byte {
	if s.n == 0 {
		panic("buffer: Remove on empty store")
	}
	end := int(s.windowEnd.Load())
	if offset < 0 || offset >= end {
		panic(fmt.Sprintf("buffer: Remove(%d) outside hot window ending at %d", offset, end))
	}

	b := s.mem[offset]
	copy(s.mem[offset:end-1], s.mem[offset+1:end])
	s.windowEnd.Add(-1)
	s.n--
	s.version++

	s.queue.push(editMsg{kind: editRemove})
	return b
}

// Insert restores a previously removed byte at offset, shifting the hot
// window up by one. The byte evicted at the window edge is handed to the
// worker, which re-seats it at the front of the cold tail. Only ever used
// to undo a Remove, so the content can never outgrow the mapping.
func (s *Store) Insert(offset int, b byte) {
	end := int(s.windowEnd.Load())
	if offset < 0 || offset > end {
		panic(fmt.Sprintf("buffer: Insert(%d) outside hot window ending at %d", offset, end))
	}
	if s.n >= len(s.mem) {
		panic("buffer: Insert beyond mapped capacity")
	}

	// offset == end happens when the removed byte was the last one: the
	// window has nothing to shift and nothing is evicted. The in-place
	// write then lands on the worker's side of the boundary, which is only
	// safe while no shift messages are queued; callers must Reposition
	// (which drains the queue on this path) before inserting at the
	// boundary, as History.Undo does.
	if offset < end {
		s.queue.push(editMsg{kind: editAdd, b: s.mem[end-1]})
		copy(s.mem[offset+1:end], s.mem[offset:end-1])
	}
	s.mem[offset] = b
	s.n++
	s.version++
}

// Reposition recenters the hot window on cursor. Call it whenever the
// cursor moves, before editing at the new location. When the boundary is
// about to be overrun, or the window has grown far larger than needed, it
// waits for the worker to drain and publishes a new boundary; otherwise it
// is a cheap no-op, so calling it every cursor move is fine.
func (s *Store) Reposition(cursor int) {
	end := int(s.windowEnd.Load())
	slack := end - cursor
	if slack >= windowGrowSlack && slack <= windowShrinkSlack {
		return
	}

	s.Block()
	next := min(cursor+HotWindowSize, s.n)
	// Publishing before the worker processes the message is safe: the
	// queue is empty, so the worker touches nothing until it has seen the
	// new boundary.
	s.windowEnd.Store(int64(next))
	s.queue.push(editMsg{kind: editWindow, boundary: next})
}

// Block waits until the worker has applied every queued edit. After Block
// returns, Bytes reflects all edits requested so far.
func (s *Store) Block() {
	s.queue.waitIdle()
}

// Flush writes the content back to the underlying file and truncates it to
// the logical length. The in-memory state is unaffected by a failure, so
// the caller may retry.
func (s *Store) Flush() error {
	s.Block()
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("buffer: seek: %w", err)
	}
	if _, err := s.file.Write(s.Bytes()); err != nil {
		return fmt.Errorf("buffer: write: %w", err)
	}
	if err := s.file.Truncate(int64(s.n)); err != nil {
		return fmt.Errorf("buffer: truncate: %w", err)
	}
	return nil
}

// Close drains the queue, stops the worker and unmaps the file. The Store
// must not be used afterwards. The underlying file stays open; it belongs
// to the caller.
func (s *Store) Close() error {
	s.queue.push(editMsg{kind: editShutdown})
	s.wg.Wait()
	return s.mem.Unmap()
}
