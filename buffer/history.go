package buffer

// Nibble identifies one half of a byte in the hex pane. It lives here so
// the undo log can capture the sub-byte cursor state alongside an edit.
type Nibble int

const (
	// NibbleHigh is the first hex digit of a byte (the top four bits).
	NibbleHigh Nibble = iota
	// NibbleLow is the second.
	NibbleLow
)

// Toggle returns the other half.
func (n Nibble) Toggle() Nibble {
	if n == NibbleHigh {
		return NibbleLow
	}
	return NibbleHigh
}

// ActionKind discriminates undo records.
type ActionKind int

const (
	// ActionOverwrite records a single-byte overwrite; Byte holds the
	// previous value.
	ActionOverwrite ActionKind = iota
	// ActionDelete records a single-byte removal; Byte holds the removed
	// value.
	ActionDelete
)

// Action is one reversible edit record. Record it before applying the
// mutation, while the previous byte value is still readable.
type Action struct {
	Kind   ActionKind
	Offset int
	Byte   byte

	// Sub-byte cursor state at the time of an overwrite from the hex
	// pane. Absent for ASCII-pane edits and deletions.
	Nibble    Nibble
	HasNibble bool
}

// Overwrite builds the record for a byte overwrite made from the text pane.
func Overwrite(offset int, prev byte) Action {
	return Action{Kind: ActionOverwrite, Offset: offset, Byte: prev}
}

// OverwriteNibble builds the record for a byte overwrite made from the hex
// pane, capturing which nibble the cursor was on.
func OverwriteNibble(offset int, prev byte, n Nibble) Action {
	return Action{Kind: ActionOverwrite, Offset: offset, Byte: prev, Nibble: n, HasNibble: true}
}

// Delete builds the record for a byte removal.
func Delete(offset int, removed byte) Action {
	return Action{Kind: ActionDelete, Offset: offset, Byte: removed}
}

// UndoResult tells the session where to put the cursor after an undo.
type UndoResult struct {
	Offset    int
	Nibble    Nibble
	HasNibble bool
}

// History is a last-in-first-out log of reversible edits. There is no redo:
// undone records are consumed.
type History struct {
	actions []Action
}

// Record pushes an edit record.
func (h *History) Record(a Action) {
	h.actions = append(h.actions, a)
}

// Len returns the number of undoable edits.
func (h *History) Len() int { return len(h.actions) }

// Undo pops the most recent record and reverses it against s. An overwrite
// is undone by writing the previous byte back in place; a deletion by
// re-inserting the removed byte. Returns false when there is nothing to
// undo, leaving s unchanged.
func (h *History) Undo(s *Store) (UndoResult, bool) {
	if len(h.actions) == 0 {
		return UndoResult{}, false
	}
	a := h.actions[len(h.actions)-1]
	h.actions = h.actions[:len(h.actions)-1]

	switch a.Kind {
	case ActionOverwrite:
		s.Set(a.Offset, a.Byte)
	case ActionDelete:
		// The edit point may be far from where the window ended up.
		s.Reposition(a.Offset)
		s.Insert(a.Offset, a.Byte)
	}

	return UndoResult{Offset: a.Offset, Nibble: a.Nibble, HasNibble: a.HasNibble}, true
}
