package valve

import "math/bits"

// MaxNodes is the largest graph a NodeSet can address.
const MaxNodes = 128

const nodeSetWords = MaxNodes / 64

// NodeSet is a fixed-size bitset of dense valve indices.
// The zero value is the empty set. NodeSet is comparable and copied by value.
type NodeSet [nodeSetWords]uint64

// Has reports whether i is in the set.
func (s NodeSet) Has(i int) bool {
	return s[i>>6]&(1<<(uint(i)&63)) != 0
}

// With returns a copy of s that also contains i.
func (s NodeSet) With(i int) NodeSet {
	s[i>>6] |= 1 << (uint(i) & 63)
	return s
}

// Union returns the elements present in s or o.
func (s NodeSet) Union(o NodeSet) NodeSet {
	for w := range s {
		s[w] |= o[w]
	}
	return s
}

// Intersects reports whether s and o share at least one element.
func (s NodeSet) Intersects(o NodeSet) bool {
	for w := range s {
		if s[w]&o[w] != 0 {
			return true
		}
	}
	return false
}

// Len returns the number of elements.
func (s NodeSet) Len() int {
	n := 0
	for _, word := range s {
		n += bits.OnesCount64(word)
	}
	return n
}

// Empty reports whether the set has no elements.
func (s NodeSet) Empty() bool {
	return s == NodeSet{}
}

// Members returns the elements in ascending order.
func (s NodeSet) Members() []int {
	out := make([]int, 0, s.Len())
	for w, word := range s {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*64+b)
			word &= word - 1
		}
	}
	return out
}
