package search

import (
	"bytes"
	"reflect"
	"testing"
)

func TestIndex_Matches(t *testing.T) {
	var x Index
	x.SetQuery("abc")

	content := []byte("abcabcabc")
	if got, want := x.Matches(content, 0), []int{0, 3, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Matches=%v, want %v", got, want)
	}
}

func TestIndex_MatchesOverlapping(t *testing.T) {
	var x Index
	x.SetQuery("aa")

	if got, want := x.Matches([]byte("aaaa"), 0), []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Matches=%v, want %v", got, want)
	}
}

func TestIndex_FindNextWraps(t *testing.T) {
	var x Index
	x.SetQuery("abc")
	content := []byte("abcabcabc")

	if got, ok := x.FindNext(content, 0, 0, Forward); !ok || got != 3 {
		t.Fatalf("FindNext(0, Forward)=%d,%v, want 3,true", got, ok)
	}
	if got, ok := x.FindNext(content, 0, 0, Backward); !ok || got != 6 {
		t.Fatalf("FindNext(0, Backward)=%d,%v, want 6,true", got, ok)
	}
	if got, ok := x.FindNext(content, 0, 6, Forward); !ok || got != 0 {
		t.Fatalf("FindNext(6, Forward)=%d,%v, want 0,true", got, ok)
	}
}

func TestIndex_FindNextBetweenMatches(t *testing.T) {
	// Mirrors the offset list [1, 4, 5, 7]: "xabxxabab".
	content := []byte("xabxxabab")
	var x Index
	x.SetQuery("ab")

	if got, want := x.Matches(content, 0), []int{1, 5, 7}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Matches=%v, want %v", got, want)
	}

	cases := []struct {
		from int
		dir  Direction
		want int
	}{
		{from: 2, dir: Backward, want: 1},
		{from: 3, dir: Backward, want: 1},
		{from: 5, dir: Backward, want: 1},
		{from: 5, dir: Forward, want: 7},
		{from: 7, dir: Forward, want: 1}, // wrap
		{from: 1, dir: Backward, want: 7},
		{from: 0, dir: Backward, want: 7},
	}
	for _, tc := range cases {
		got, ok := x.FindNext(content, 0, tc.from, tc.dir)
		if !ok || got != tc.want {
			t.Fatalf("FindNext(%d, %v)=%d,%v, want %d,true", tc.from, tc.dir, got, ok, tc.want)
		}
	}
}

func TestIndex_NoMatches(t *testing.T) {
	var x Index
	x.SetQuery("zzz")

	if _, ok := x.FindNext([]byte("abcabc"), 0, 0, Forward); ok {
		t.Fatalf("FindNext reported a match for an absent query")
	}
}

func TestIndex_RebuildOnVersionChange(t *testing.T) {
	var x Index
	x.SetQuery("ab")

	content := []byte("abxx")
	if got, want := x.Matches(content, 1), []int{0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Matches=%v, want %v", got, want)
	}

	// Same slice, new content: stale offsets must not be reused once the
	// version moves.
	content[2] = 'a'
	content[3] = 'b'
	if got, want := x.Matches(content, 2), []int{0, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Matches after edit=%v, want %v", got, want)
	}

	// Unchanged version keeps the cached offsets.
	if got, want := x.Matches(content, 2), []int{0, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("cached Matches=%v, want %v", got, want)
	}
}

func TestIndex_HexQueryMatchesBothForms(t *testing.T) {
	// "4142" matches the literal text and, read as hex, the bytes "AB".
	content := []byte("AB....4142")
	var x Index
	x.SetQuery("4142")

	if got, want := x.Matches(content, 0), []int{0, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Matches=%v, want %v", got, want)
	}
}

func TestIndex_HexQueryMergedSorted(t *testing.T) {
	// Hex matches before, between and after literal matches must come out
	// in one ascending list or nearest-match lookups go wrong.
	content := []byte{0x41, 0x42, '.', '4', '1', '4', '2', '.', 0x41, 0x42}
	var x Index
	x.SetQuery("4142")

	got := x.Matches(content, 0)
	want := []int{0, 3, 8}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Matches=%v, want %v", got, want)
	}
	if next, ok := x.FindNext(content, 0, 0, Forward); !ok || next != 3 {
		t.Fatalf("FindNext(0, Forward)=%d,%v, want 3,true", next, ok)
	}
}

func TestParseQuery_Escapes(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{in: "abc", want: []byte("abc")},
		// "0x" followed by two hex digits is one raw byte; the trailing
		// "x" is literal.
		{in: "0x30x", want: []byte{0x30, 'x'}},
		{in: "0x30x78", want: []byte{0x30, 0x78}},
		// Not two hex digits after "0x": everything is literal.
		{in: "0xg1", want: []byte("0xg1")},
		{in: "0x", want: []byte("0x")},
		{in: "a0xFFb", want: []byte{'a', 0xFF, 'b'}},
	}
	for _, tc := range cases {
		if got := ParseQuery(tc.in); !bytes.Equal(got, tc.want) {
			t.Fatalf("ParseQuery(%q)=% x, want % x", tc.in, got, tc.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{in: "dead beef", want: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{in: "0xDEAD", want: []byte{0xDE, 0xAD}},
		{in: "abc", want: nil},  // odd length
		{in: "wxyz", want: nil}, // not hex
		{in: "", want: nil},
	}
	for _, tc := range cases {
		if got := parseHex(tc.in); !bytes.Equal(got, tc.want) {
			t.Fatalf("parseHex(%q)=% x, want % x", tc.in, got, tc.want)
		}
	}
}
