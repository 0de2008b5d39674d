/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: evidence.go
Description: Evidence-constrained enumerator for the observed variable.
Generates every assignment of trait values consistent with the supplied
evidence; contradicting assignments are never generated in the first place,
evidenced members are pinned by construction.
*/

package engine

import (
	"fmt"

	"github.com/kleascm/lineage/pkg/population"
)

// traitEnumerator lazily yields every total assignment of the observed
// variable that agrees with the evidence. Unevidenced members count through
// both values as a binary counter in population order; evidenced members
// keep their observed value in every assignment.
type traitEnumerator struct {
	traits  []bool
	free    []int
	mask    uint64
	total   uint64
	started bool
}

// newTraitEnumerator builds an enumerator for the population under the
// given evidence. Evidence for a member not in the population is a caller
// contract violation.
func newTraitEnumerator(pop *population.Population, ev population.Evidence) (*traitEnumerator, error) {
	e := &traitEnumerator{
		traits: make([]bool, pop.Size()),
	}

	for id := range ev {
		if _, ok := pop.Index(id); !ok {
			return nil, fmt.Errorf("%w: evidence for unknown member %q", ErrInvalidConfiguration, id)
		}
	}

	for i := 0; i < pop.Size(); i++ {
		if observed, ok := ev[pop.Member(i).ID]; ok {
			e.traits[i] = observed
		} else {
			e.free = append(e.free, i)
		}
	}

	e.total = uint64(1) << uint(len(e.free))
	return e, nil
}

// Next advances to the next consistent assignment, returning false after
// all 2^m assignments (m = unevidenced members) have been produced.
func (e *traitEnumerator) Next() bool {
	if !e.started {
		e.started = true
		return true
	}
	if e.mask+1 >= e.total {
		return false
	}
	e.mask++
	for bit, member := range e.free {
		e.traits[member] = e.mask&(uint64(1)<<uint(bit)) != 0
	}
	return true
}

// Assignment returns the current trait assignment. The slice is reused
// between calls to Next and must not be retained.
func (e *traitEnumerator) Assignment() []bool {
	return e.traits
}

// Reset rewinds the enumerator to its initial state so a worker can reuse
// it for the next hidden assignment.
func (e *traitEnumerator) Reset() {
	e.started = false
	e.mask = 0
	for _, member := range e.free {
		e.traits[member] = false
	}
}
