/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: accumulator.go
Description: Marginal accumulator and normalizer for the Lineage inference
engine. Sums joint probabilities into per-member running weights, merges
worker-private partial accumulators element-wise, and rescales every
distribution to unit mass exactly once per inference run.
*/

package engine

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/kleascm/lineage/pkg/interfaces"
	"github.com/kleascm/lineage/pkg/population"
)

// accumulator holds the unnormalized posterior weights of one inference
// run. It stays unexported so callers can never observe the mutable
// intermediate state; Infer hands out results only after normalization.
type accumulator struct {
	hidden   [][]float64 // [member][hidden value]
	observed [][]float64 // [member][observedIndex]
}

// observedIndex maps the observed variable's two values to weight slots.
func observedIndex(observed bool) int {
	if observed {
		return 1
	}
	return 0
}

func newAccumulator(members, domain int) *accumulator {
	a := &accumulator{
		hidden:   make([][]float64, members),
		observed: make([][]float64, members),
	}
	for i := range a.hidden {
		a.hidden[i] = make([]float64, domain)
		a.observed[i] = make([]float64, 2)
	}
	return a
}

// add folds one joint probability into every member's running weights.
// This is the only place weights are mutated during enumeration.
func (a *accumulator) add(hidden []uint8, traits []bool, p float64) {
	for i := range a.hidden {
		a.hidden[i][hidden[i]] += p
		a.observed[i][observedIndex(traits[i])] += p
	}
}

// merge adds another accumulator's weights element-wise. Merging is
// commutative and associative up to floating-point summation order, so the
// engine merges worker accumulators in worker-ID order for determinism.
func (a *accumulator) merge(other *accumulator) {
	for i := range a.hidden {
		floats.Add(a.hidden[i], other.hidden[i])
		floats.Add(a.observed[i], other.observed[i])
	}
}

// normalize rescales every member's hidden and observed weights to sum to
// one, independently of each other. A zero weight sum means the evidence is
// unsatisfiable under the model and is reported as such instead of
// dividing through to NaN. Must run exactly once per inference.
func (a *accumulator) normalize(pop *population.Population) error {
	for i := range a.hidden {
		hiddenSum := floats.Sum(a.hidden[i])
		observedSum := floats.Sum(a.observed[i])
		if hiddenSum == 0 || observedSum == 0 {
			return fmt.Errorf("%w: member %q has zero total weight", ErrInconsistentEvidence, pop.Member(i).ID)
		}
		floats.Scale(1/hiddenSum, a.hidden[i])
		floats.Scale(1/observedSum, a.observed[i])
	}
	return nil
}

// marginals copies the normalized weights into the immutable result type.
func (a *accumulator) marginals(pop *population.Population) map[string]interfaces.MemberMarginals {
	out := make(map[string]interfaces.MemberMarginals, pop.Size())
	for i := range a.hidden {
		dist := make(interfaces.Distribution, len(a.hidden[i]))
		copy(dist, a.hidden[i])
		out[pop.Member(i).ID] = interfaces.MemberMarginals{
			Hidden: dist,
			Observed: interfaces.BinaryDistribution{
				True:  a.observed[i][observedIndex(true)],
				False: a.observed[i][observedIndex(false)],
			},
		}
	}
	return out
}
