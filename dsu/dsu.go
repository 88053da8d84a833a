package dsu

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownElement indicates Find or Union was asked about a label never passed to MakeSet.
var ErrUnknownElement = errors.New("dsu: element not registered")

// Set is a union-find forest keyed by vertex label.
type Set struct {
	parent map[string]string // label → parent label; roots point at themselves
	ops    int64             // diagnostic operation counter
}

// New returns an empty Set. Call MakeSet before any Find or Union.
func New() *Set {
	return &Set{parent: make(map[string]string)}
}

// NewWithVertices is New followed by MakeSet(vertices...).
func NewWithVertices(vertices ...string) *Set {
	s := &Set{parent: make(map[string]string, len(vertices))}
	s.MakeSet(vertices...)

	return s
}

// MakeSet registers each vertex as a singleton set.
// Vertices that are already registered keep their current set.
// Complexity: O(len(vertices)).
func (s *Set) MakeSet(vertices ...string) {
	for _, v := range vertices {
		if _, ok := s.parent[v]; ok {
			continue
		}
		s.parent[v] = v
		s.ops++
	}
}

// Find returns the representative of v's set, compressing the path it walked.
//
// Two passes: the first climbs to the root, the second re-points every node on
// the way directly at that root.
// Complexity: amortized O(log n) without balancing, O(1) after compression.
func (s *Set) Find(v string) (string, error) {
	s.ops++
	if _, ok := s.parent[v]; !ok {
		return "", fmt.Errorf("find %q: %w", v, ErrUnknownElement)
	}

	root := v
	for s.parent[root] != root {
		root = s.parent[root]
	}

	for v != root {
		next := s.parent[v]
		s.parent[v] = root
		s.ops++
		v = next
	}

	return root, nil
}

// Union merges the sets holding a and b.
// It returns true when two distinct sets were merged and false when a and b
// already shared a representative.
func (s *Set) Union(a, b string) (bool, error) {
	rootA, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := s.Find(b)
	if err != nil {
		return false, err
	}

	s.ops++ // comparison
	if rootA == rootB {
		return false, nil
	}
	s.parent[rootA] = rootB
	s.ops++

	return true, nil
}

// Connected reports whether a and b belong to the same set.
func (s *Set) Connected(a, b string) (bool, error) {
	rootA, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := s.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// Operations returns the running diagnostic counter.
func (s *Set) Operations() int64 { return s.ops }

// Len returns the number of registered elements.
func (s *Set) Len() int { return len(s.parent) }

// Components groups every registered element by representative.
// Members are sorted, and groups are ordered by their smallest member.
func (s *Set) Components() [][]string {
	groups := make(map[string][]string)
	for v := range s.parent {
		root, _ := s.Find(v) // v is registered by construction
		groups[root] = append(groups[root], v)
	}

	out := make([][]string, 0, len(groups))
	for _, members := range groups {
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
