package career

import (
	"math/rand/v2"
	"strings"
)

// Filter narrows a random pick. Zero values disable a criterion.
type Filter struct {
	Position   string // exact match, case-insensitive
	CareerFrom int    // first season start year >= CareerFrom
	CareerTo   int    // last season start year >= CareerTo
}

func (f Filter) match(pos string, first, last int) bool {
	if f.Position != "" && !strings.EqualFold(f.Position, pos) {
		return false
	}
	if f.CareerFrom != 0 && first < f.CareerFrom {
		return false
	}
	if f.CareerTo != 0 && last < f.CareerTo {
		return false
	}
	return true
}

// Index is a read-only, in-memory view of a pool.
type Index[B any] struct {
	entries []Entry[B]
	byID    map[string]int
	intn    func(int) int
}

// NewIndex indexes entries by player id. intn draws the random picks and
// defaults to math/rand/v2.
func NewIndex[B any](entries []Entry[B], intn func(int) int) *Index[B] {
	if intn == nil {
		intn = rand.IntN
	}
	idx := &Index[B]{entries: entries, byID: make(map[string]int, len(entries)), intn: intn}
	for i, e := range entries {
		if _, dup := idx.byID[e.PlayerID.String()]; !dup {
			idx.byID[e.PlayerID.String()] = i
		}
	}
	return idx
}

// Len returns the number of entries. A nil index is empty.
func (x *Index[B]) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// ByID returns the entry with the given player id.
func (x *Index[B]) ByID(id string) (*Entry[B], bool) {
	if x == nil {
		return nil, false
	}
	i, ok := x.byID[id]
	if !ok {
		return nil, false
	}
	return &x.entries[i], true
}

// Random returns a uniformly chosen entry matching f.
func (x *Index[B]) Random(f Filter) (*Entry[B], bool) {
	if x.Len() == 0 {
		return nil, false
	}
	matches := make([]int, 0, len(x.entries))
	for i := range x.entries {
		e := &x.entries[i]
		if f.match(e.Position, e.FirstYear(), e.LastYear()) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return nil, false
	}
	return &x.entries[matches[x.intn(len(matches))]], true
}
