/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: enumerate.go
Description: Hidden-value configuration enumerator for the Lineage inference
engine. Generates every assignment of hidden domain values to the population
as a lazy, deterministic base-|domain| counter, with random access by index
so workers can partition the space without overlap.
*/

package engine

// hiddenEnumerator lazily yields every total assignment of hidden values to
// n members. Assignments are base-`base` counters with member index 0 as
// the fastest digit, so enumeration order is deterministic.
type hiddenEnumerator struct {
	digits  []uint8
	base    int
	started bool
	done    bool
}

func newHiddenEnumerator(n, base int) *hiddenEnumerator {
	return &hiddenEnumerator{
		digits: make([]uint8, n),
		base:   base,
	}
}

// Next advances to the next assignment. The first call yields the all-zero
// assignment. It returns false once every assignment has been produced.
func (e *hiddenEnumerator) Next() bool {
	if e.done {
		return false
	}
	if !e.started {
		e.started = true
		return true
	}

	for i := range e.digits {
		e.digits[i]++
		if int(e.digits[i]) < e.base {
			return true
		}
		e.digits[i] = 0
	}

	e.done = true
	return false
}

// Assignment returns the current assignment. The slice is reused between
// calls to Next and must not be retained.
func (e *hiddenEnumerator) Assignment() []uint8 {
	return e.digits
}

// assignmentCount returns base^n, the number of hidden assignments.
// Population size is bounded well below overflow territory before this
// runs.
func assignmentCount(base, n int) uint64 {
	count := uint64(1)
	for i := 0; i < n; i++ {
		count *= uint64(base)
	}
	return count
}

// decodeAssignment writes the assignment with the given enumeration index
// into dst, matching hiddenEnumerator order.
func decodeAssignment(index uint64, base int, dst []uint8) {
	for i := range dst {
		dst[i] = uint8(index % uint64(base))
		index /= uint64(base)
	}
}
