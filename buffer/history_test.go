package buffer

import (
	"bytes"
	"testing"
)

func TestHistory_UndoOverwrite(t *testing.T) {
	orig := sequence(16)
	s, _ := newStore(t, orig)
	var h History

	h.Record(OverwriteNibble(2, s.Bytes()[2], NibbleLow))
	s.Set(2, 0x7F)

	res, ok := h.Undo(s)
	if !ok {
		t.Fatalf("Undo returned no action")
	}
	if got, want := res.Offset, 2; got != want {
		t.Fatalf("Offset=%d, want %d", got, want)
	}
	if !res.HasNibble || res.Nibble != NibbleLow {
		t.Fatalf("nibble state not restored: %+v", res)
	}
	if got := s.Bytes(); !bytes.Equal(got, orig) {
		t.Fatalf("Bytes=% x, want % x", got, orig)
	}
}

func TestHistory_UndoDelete(t *testing.T) {
	orig := sequence(16)
	s, _ := newStore(t, orig)
	var h History

	h.Record(Delete(5, s.Bytes()[5]))
	s.Remove(5)

	res, ok := h.Undo(s)
	if !ok {
		t.Fatalf("Undo returned no action")
	}
	if got, want := res.Offset, 5; got != want {
		t.Fatalf("Offset=%d, want %d", got, want)
	}
	if res.HasNibble {
		t.Fatalf("delete record should not carry nibble state")
	}

	s.Block()
	if got := s.Bytes(); !bytes.Equal(got, orig) {
		t.Fatalf("Bytes=% x, want % x", got, orig)
	}
}

func TestHistory_UndoDepth(t *testing.T) {
	orig := sequence(32)
	s, _ := newStore(t, orig)
	var h History

	const n = 10
	for i := 0; i < n; i++ {
		h.Record(Overwrite(i, s.Bytes()[i]))
		s.Set(i, 0xFF)
	}
	if got, want := h.Len(), n; got != want {
		t.Fatalf("Len=%d, want %d", got, want)
	}

	for i := 0; i < n; i++ {
		if _, ok := h.Undo(s); !ok {
			t.Fatalf("Undo %d returned no action", i)
		}
	}
	if got := s.Bytes(); !bytes.Equal(got, orig) {
		t.Fatalf("Bytes=% x, want % x", got, orig)
	}

	// One more than was recorded: nothing available, nothing changed.
	if _, ok := h.Undo(s); ok {
		t.Fatalf("Undo on empty history reported an action")
	}
	if got := s.Bytes(); !bytes.Equal(got, orig) {
		t.Fatalf("Bytes after no-op undo=% x, want % x", got, orig)
	}
}

func TestHistory_UndoScenario(t *testing.T) {
	// Open a 10-byte file 00 01 .. 09, delete the first byte, undo.
	orig := sequence(10)
	s, _ := newStore(t, orig)
	var h History

	h.Record(Delete(0, s.Bytes()[0]))
	if got, want := s.Remove(0), byte(0x00); got != want {
		t.Fatalf("Remove(0)=%#02x, want %#02x", got, want)
	}
	if got, want := s.Len(), 9; got != want {
		t.Fatalf("Len=%d, want %d", got, want)
	}
	s.Block()
	if got, want := s.Bytes(), orig[1:]; !bytes.Equal(got, want) {
		t.Fatalf("Bytes=% x, want % x", got, want)
	}

	if _, ok := h.Undo(s); !ok {
		t.Fatalf("Undo returned no action")
	}
	if got, want := s.Len(), 10; got != want {
		t.Fatalf("Len=%d, want %d", got, want)
	}
	s.Block()
	if got := s.Bytes(); !bytes.Equal(got, orig) {
		t.Fatalf("Bytes=% x, want % x", got, orig)
	}
}

func TestNibble_Toggle(t *testing.T) {
	if got, want := NibbleHigh.Toggle(), NibbleLow; got != want {
		t.Fatalf("Toggle=%v, want %v", got, want)
	}
	if got, want := NibbleLow.Toggle(), NibbleHigh; got != want {
		t.Fatalf("Toggle=%v, want %v", got, want)
	}
}
