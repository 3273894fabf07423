package model

import (
	"cmp"
	"encoding/json"
	"slices"
)

// Pair is an unordered pair kept in canonical form: A <= B.
// Construct it with NewPair so the invariant always holds.
type Pair[T cmp.Ordered] struct {
	A T
	B T
}

func NewPair[T cmp.Ordered](a, b T) Pair[T] {
	if b < a {
		a, b = b, a
	}
	return Pair[T]{A: a, B: b}
}

// Compare orders pairs by A, then by B.
func (p Pair[T]) Compare(q Pair[T]) int {
	if c := cmp.Compare(p.A, q.A); c != 0 {
		return c
	}
	return cmp.Compare(p.B, q.B)
}

// MarshalJSON encodes the pair as a two element array.
func (p Pair[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]T{p.A, p.B})
}

func (p *Pair[T]) UnmarshalJSON(data []byte) error {
	var v [2]T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = NewPair(v[0], v[1])
	return nil
}

// PairSet holds distinct canonical pairs.
type PairSet[T cmp.Ordered] struct {
	m map[Pair[T]]struct{}
}

func NewPairSet[T cmp.Ordered]() *PairSet[T] {
	return &PairSet[T]{m: make(map[Pair[T]]struct{})}
}

// Add canonicalizes a and b before insertion and reports whether the pair was new.
func (s *PairSet[T]) Add(a, b T) bool {
	p := NewPair(a, b)
	if _, ok := s.m[p]; ok {
		return false
	}
	s.m[p] = struct{}{}
	return true
}

func (s *PairSet[T]) Has(a, b T) bool {
	_, ok := s.m[NewPair(a, b)]
	return ok
}

func (s *PairSet[T]) Len() int {
	return len(s.m)
}

// Sorted returns the pairs ordered by Compare.
func (s *PairSet[T]) Sorted() []Pair[T] {
	out := make([]Pair[T], 0, len(s.m))
	for p := range s.m {
		out = append(out, p)
	}
	slices.SortFunc(out, Pair[T].Compare)
	return out
}

// ContactPair is a detected contact between two residue numbers.
type ContactPair = Pair[int]

// RawPair is a contact in discovery order, before canonicalization.
type RawPair struct {
	I int
	J int
}

// EdgeTable is the sorted, duplicate free list of contacts.
type EdgeTable []ContactPair

// Nodes returns the distinct residue numbers in ascending order.
func (t EdgeTable) Nodes() []int {
	seen := make(map[int]struct{}, len(t))
	var nodes []int
	for _, p := range t {
		for _, n := range [2]int{p.A, p.B} {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				nodes = append(nodes, n)
			}
		}
	}
	slices.Sort(nodes)
	return nodes
}
