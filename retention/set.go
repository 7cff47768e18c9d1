// Package retention implements Hasami's deterministic thinning algorithm
// over sets of time codes.
//
// A Set is an immutable, deduplicated, ascending collection of time
// codes. Every transform returns a new Set, so values can be shared
// across goroutines freely. Retain is the heart of the package: it picks
// which members of a set survive a pruning pass so that recent members
// are favored while older periods stay represented, and so that pruning
// incrementally over successive batches never contradicts pruning the
// cumulative input from scratch.
//
// Usage:
//
//	s := retention.NewSet(codes...)
//	kept, err := s.Retain(base, count)
//	if err != nil { ... }
//	discarded := s.Subtracting(kept)
package retention

import (
	"sort"

	"github.com/samalone/Hasami/timecode"
)

// Set is an immutable set of unique time codes held in ascending order.
// The zero value is the empty set.
type Set struct {
	codes []timecode.TimeCode
}

// NewSet builds a Set from raw time codes. Input order is irrelevant and
// duplicates collapse.
func NewSet(codes ...timecode.TimeCode) Set {
	if len(codes) == 0 {
		return Set{}
	}
	sorted := make([]timecode.TimeCode, len(codes))
	copy(sorted, codes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	deduped := sorted[:1]
	for _, c := range sorted[1:] {
		if c != deduped[len(deduped)-1] {
			deduped = append(deduped, c)
		}
	}
	return Set{codes: deduped}
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.codes)
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return len(s.codes) == 0
}

// Oldest returns the minimum member. ok is false for the empty set.
func (s Set) Oldest() (c timecode.TimeCode, ok bool) {
	if len(s.codes) == 0 {
		return 0, false
	}
	return s.codes[0], true
}

// MostRecent returns the maximum member. ok is false for the empty set.
func (s Set) MostRecent() (c timecode.TimeCode, ok bool) {
	if len(s.codes) == 0 {
		return 0, false
	}
	return s.codes[len(s.codes)-1], true
}

// Contains reports whether x is a member.
func (s Set) Contains(x timecode.TimeCode) bool {
	i := sort.Search(len(s.codes), func(i int) bool { return s.codes[i] >= x })
	return i < len(s.codes) && s.codes[i] == x
}

// Codes returns the members in ascending order. The slice is a copy; the
// set itself is never exposed for mutation.
func (s Set) Codes() []timecode.TimeCode {
	out := make([]timecode.TimeCode, len(s.codes))
	copy(out, s.codes)
	return out
}

// Adding returns a new set with x inserted. Adding an existing member
// returns an equal set.
func (s Set) Adding(x timecode.TimeCode) Set {
	i := sort.Search(len(s.codes), func(i int) bool { return s.codes[i] >= x })
	if i < len(s.codes) && s.codes[i] == x {
		return s
	}
	out := make([]timecode.TimeCode, 0, len(s.codes)+1)
	out = append(out, s.codes[:i]...)
	out = append(out, x)
	out = append(out, s.codes[i:]...)
	return Set{codes: out}
}

// Union returns the set of members in s, other, or both.
func (s Set) Union(other Set) Set {
	out := make([]timecode.TimeCode, 0, len(s.codes)+len(other.codes))
	i, j := 0, 0
	for i < len(s.codes) && j < len(other.codes) {
		switch {
		case s.codes[i] < other.codes[j]:
			out = append(out, s.codes[i])
			i++
		case s.codes[i] > other.codes[j]:
			out = append(out, other.codes[j])
			j++
		default:
			out = append(out, s.codes[i])
			i++
			j++
		}
	}
	out = append(out, s.codes[i:]...)
	out = append(out, other.codes[j:]...)
	return Set{codes: out}
}

// Intersection returns the set of members in both s and other.
func (s Set) Intersection(other Set) Set {
	var out []timecode.TimeCode
	i, j := 0, 0
	for i < len(s.codes) && j < len(other.codes) {
		switch {
		case s.codes[i] < other.codes[j]:
			i++
		case s.codes[i] > other.codes[j]:
			j++
		default:
			out = append(out, s.codes[i])
			i++
			j++
		}
	}
	return Set{codes: out}
}

// Subtracting returns the set of members of s that are not in other.
func (s Set) Subtracting(other Set) Set {
	var out []timecode.TimeCode
	i, j := 0, 0
	for i < len(s.codes) {
		for j < len(other.codes) && other.codes[j] < s.codes[i] {
			j++
		}
		if j < len(other.codes) && other.codes[j] == s.codes[i] {
			i++
			continue
		}
		out = append(out, s.codes[i])
		i++
	}
	return Set{codes: out}
}

// SymmetricDifference returns the set of members in exactly one of s and
// other.
func (s Set) SymmetricDifference(other Set) Set {
	var out []timecode.TimeCode
	i, j := 0, 0
	for i < len(s.codes) && j < len(other.codes) {
		switch {
		case s.codes[i] < other.codes[j]:
			out = append(out, s.codes[i])
			i++
		case s.codes[i] > other.codes[j]:
			out = append(out, other.codes[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, s.codes[i:]...)
	out = append(out, other.codes[j:]...)
	return Set{codes: out}
}

// IsSubset reports whether every member of s is a member of other.
func (s Set) IsSubset(other Set) bool {
	i, j := 0, 0
	for i < len(s.codes) {
		for j < len(other.codes) && other.codes[j] < s.codes[i] {
			j++
		}
		if j >= len(other.codes) || other.codes[j] != s.codes[i] {
			return false
		}
		i++
		j++
	}
	return true
}

// IsStrictSubset reports whether s is a subset of other and other has at
// least one member s lacks.
func (s Set) IsStrictSubset(other Set) bool {
	return len(s.codes) < len(other.codes) && s.IsSubset(other)
}

// Equal reports whether s and other have exactly the same members.
func (s Set) Equal(other Set) bool {
	if len(s.codes) != len(other.codes) {
		return false
	}
	for i, c := range s.codes {
		if other.codes[i] != c {
			return false
		}
	}
	return true
}
