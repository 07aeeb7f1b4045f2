// Package search maintains the match-offset index for the editor's
// find feature.
//
// A query is a literal byte sequence with one escape: "0x" followed by
// exactly two hex digits matches that raw byte (to search for the text
// "0x" itself, write "0x30x78"). A query that reads entirely as
// hexadecimal additionally matches its decoded bytes, so "DEAD BEEF"
// finds both the ASCII text and the byte pattern DE AD BE EF.
//
// The index is rebuilt lazily: lookups compare the store version they are
// given against the version the offsets were computed at, so a stale index
// is never served after an edit.
package search

import (
	"bytes"
	"encoding/hex"
	"sort"
	"strings"
)

// Direction selects which neighboring match a lookup returns.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Index holds the sorted match offsets for the most recent query.
type Index struct {
	query   string
	literal []byte // query with 0xNN escapes decoded
	hexPat  []byte // full-hex reading of the query, nil when it has none

	offsets []int
	built   bool
	builtAt uint64
}

// SetQuery stores a query and invalidates the offsets. The empty query
// clears the index.
func (x *Index) SetQuery(q string) {
	x.query = q
	x.literal = ParseQuery(q)
	x.hexPat = parseHex(q)
	x.offsets = nil
	x.built = false
}

// Query returns the raw query string last passed to SetQuery.
func (x *Index) Query() string { return x.query }

// Empty reports whether no usable query is set.
func (x *Index) Empty() bool { return len(x.literal) == 0 && len(x.hexPat) == 0 }

// Matches returns the sorted offsets of every occurrence of the query in
// content, rebuilding first if content has changed since the last build.
// The returned slice is owned by the index; do not modify it.
func (x *Index) Matches(content []byte, version uint64) []int {
	x.ensure(content, version)
	return x.offsets
}

// FindNext returns the offset of the nearest match strictly after
// (Forward) or strictly before (Backward) from, wrapping around the ends
// of the content. The second result is false when there are no matches.
func (x *Index) FindNext(content []byte, version uint64, from int, dir Direction) (int, bool) {
	x.ensure(content, version)
	n := len(x.offsets)
	if n == 0 {
		return 0, false
	}

	switch dir {
	case Backward:
		if from == 0 {
			return x.offsets[n-1], true
		}
		i := sort.SearchInts(x.offsets, from-1)
		if i < n && x.offsets[i] == from-1 {
			return x.offsets[i], true
		}
		if i == 0 {
			return x.offsets[n-1], true
		}
		return x.offsets[i-1], true

	default:
		i := sort.SearchInts(x.offsets, from+1)
		if i == n {
			return x.offsets[0], true
		}
		return x.offsets[i], true
	}
}

func (x *Index) ensure(content []byte, version uint64) {
	if x.built && x.builtAt == version {
		return
	}
	lit := scan(content, x.literal)
	hx := scan(content, x.hexPat)
	x.offsets = mergeSorted(lit, hx)
	x.built = true
	x.builtAt = version
}

// scan returns every start offset where pat occurs in content, including
// overlapping occurrences, in ascending order.
func scan(content, pat []byte) []int {
	if len(pat) == 0 || len(pat) > len(content) {
		return nil
	}
	var offs []int
	for i := 0; i+len(pat) <= len(content); {
		j := bytes.Index(content[i:], pat)
		if j < 0 {
			break
		}
		offs = append(offs, i+j)
		i += j + 1
	}
	return offs
}

// mergeSorted merges two ascending offset lists into one, dropping
// duplicates. Lookups binary-search the result, so order matters.
func mergeSorted(a, b []int) []int {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}

	out := make([]int, 0, len(a)+len(b))
	for len(a) > 0 && len(b) > 0 {
		switch {
		case a[0] < b[0]:
			out = append(out, a[0])
			a = a[1:]
		case b[0] < a[0]:
			out = append(out, b[0])
			b = b[1:]
		default:
			out = append(out, a[0])
			a, b = a[1:], b[1:]
		}
	}
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// ParseQuery decodes the query mini-syntax into the literal byte pattern.
// "0x" is consumed as an escape only when exactly two hex digits follow;
// anything else is taken verbatim.
func ParseQuery(q string) []byte {
	out := make([]byte, 0, len(q))
	for i := 0; i < len(q); {
		if i+4 <= len(q) && q[i] == '0' && q[i+1] == 'x' &&
			isHexDigit(q[i+2]) && isHexDigit(q[i+3]) {
			out = append(out, hexByte(q[i+2], q[i+3]))
			i += 4
			continue
		}
		out = append(out, q[i])
		i++
	}
	return out
}

// parseHex reads the whole query as a hexadecimal byte string, ignoring
// embedded whitespace. Returns nil when it does not parse.
func parseHex(q string) []byte {
	var sb strings.Builder
	for _, r := range q {
		if r == ' ' || r == '\t' {
			continue
		}
		sb.WriteRune(r)
	}
	stripped := strings.TrimPrefix(sb.String(), "0x")
	if stripped == "" || len(stripped)%2 != 0 {
		return nil
	}
	pat, err := hex.DecodeString(stripped)
	if err != nil {
		return nil
	}
	return pat
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexByte(hi, lo byte) byte {
	return hexDigit(hi)<<4 | hexDigit(lo)
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
