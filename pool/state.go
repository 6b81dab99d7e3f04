package pool

import "fmt"

// Increment is the per-pool consumption of one resolution of one item.
// All deltas are non-negative.
type Increment [NumPools]int

// Units returns the total number of pool units the increment consumes.
func (inc Increment) Units() int {
	return inc[RowA] + inc[RowB] + inc[ColC] + inc[ColD]
}

// String renders the increment as the pools it touches, e.g. "RowA+ColC".
func (inc Increment) String() string {
	s := ""
	for p, d := range inc {
		for ; d > 0; d-- {
			if s != "" {
				s += "+"
			}
			s += Pool(p).String()
		}
	}
	if s == "" {
		return "∅"
	}

	return s
}

// CountState is the cumulative consumption of every pool after resolving a
// prefix of the sequence. It is comparable and therefore usable as a map or
// set key.
type CountState [NumPools]int

// Add returns the state advanced by inc; s itself is unchanged.
func (s CountState) Add(inc Increment) CountState {
	s[RowA] += inc[RowA]
	s[RowB] += inc[RowB]
	s[ColC] += inc[ColC]
	s[ColD] += inc[ColD]

	return s
}

// Within reports whether no pool exceeds its capacity.
func (s CountState) Within(caps Capacities) bool {
	return s[RowA] <= caps[RowA] &&
		s[RowB] <= caps[RowB] &&
		s[ColC] <= caps[ColC] &&
		s[ColD] <= caps[ColD]
}

// String renders the state as "(A,B,C,D)".
func (s CountState) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", s[RowA], s[RowB], s[ColC], s[ColD])
}
