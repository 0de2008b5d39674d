/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: joint.go
Description: Joint probability evaluator for the Lineage inference engine.
Computes the probability of one hidden assignment together with one observed
assignment as a product of per-member inheritance and emission factors.
*/

package engine

import (
	"fmt"

	"github.com/kleascm/lineage/pkg/interfaces"
	"github.com/kleascm/lineage/pkg/population"
)

// jointProbability computes the joint probability of a hidden assignment
// and a trait assignment, both indexed in population order. This is the hot
// path: assignments produced by the enumerators are structurally valid, so
// no checks run here.
func jointProbability(pop *population.Population, model interfaces.Model, hidden []uint8, traits []bool) float64 {
	p := 1.0

	for i := 0; i < pop.Size(); i++ {
		m := pop.Member(i)
		v := int(hidden[i])

		if m.Mother < 0 {
			p *= model.PriorProbability(v)
		} else {
			p *= model.ChildProbability(v, int(hidden[m.Mother]), int(hidden[m.Father]))
		}

		p *= model.EmissionProbability(v, traits[i])
	}

	return p
}

// JointProbability computes the joint probability of the hidden and
// observed assignments given as total functions over the population.
//
// Both maps must assign a value to every member and nothing else, and every
// hidden value must lie inside the model's domain; violations return an
// error wrapping ErrInvalidConfiguration rather than a wrong probability.
func JointProbability(pop *population.Population, model interfaces.Model, hidden map[string]int, observed map[string]bool) (float64, error) {
	if len(hidden) != pop.Size() {
		return 0, fmt.Errorf("%w: hidden assignment covers %d members, population has %d", ErrInvalidConfiguration, len(hidden), pop.Size())
	}
	if len(observed) != pop.Size() {
		return 0, fmt.Errorf("%w: observed assignment covers %d members, population has %d", ErrInvalidConfiguration, len(observed), pop.Size())
	}

	hiddenIdx := make([]uint8, pop.Size())
	traitsIdx := make([]bool, pop.Size())

	for id, v := range hidden {
		i, ok := pop.Index(id)
		if !ok {
			return 0, fmt.Errorf("%w: hidden assignment references unknown member %q", ErrInvalidConfiguration, id)
		}
		if v < 0 || v >= model.DomainSize() {
			return 0, fmt.Errorf("%w: hidden value %d for member %q outside domain of size %d", ErrInvalidConfiguration, v, id, model.DomainSize())
		}
		hiddenIdx[i] = uint8(v)
	}

	for id, observed := range observed {
		i, ok := pop.Index(id)
		if !ok {
			return 0, fmt.Errorf("%w: observed assignment references unknown member %q", ErrInvalidConfiguration, id)
		}
		traitsIdx[i] = observed
	}

	return jointProbability(pop, model, hiddenIdx, traitsIdx), nil
}
