/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model.go
Description: Genetic inheritance model for the Lineage inference engine.
Implements the prior, emission, and two-parent transmission tables as an
explicit immutable configuration object with full validation, replacing any
process-wide constant tables.
*/

package model

import (
	"fmt"
	"math"
)

// CopyCount values for the default genetic domain. The hidden variable is
// the number of copies of the trait-carrying allele a member holds.
const (
	ZeroCopies = 0
	OneCopy    = 1
	TwoCopies  = 2

	domainSize = 3
)

const distributionTolerance = 1e-9

// GeneticModel holds the probability tables for two-parent allele
// inheritance with mutation. It implements interfaces.Model.
//
// Prior is indexed by copy count. Emission is indexed by copy count, with
// [0] the probability of showing the trait and [1] of not showing it.
type GeneticModel struct {
	Prior        [domainSize]float64
	Emission     [domainSize][2]float64
	MutationRate float64
}

// DefaultModel returns the reference tables: a rare allele (96% of roots
// carry no copy), a trait that is weakly indicative of carrying the allele,
// and a 1% mutation rate.
func DefaultModel() *GeneticModel {
	return &GeneticModel{
		Prior: [domainSize]float64{0.96, 0.03, 0.01},
		Emission: [domainSize][2]float64{
			{0.01, 0.99},
			{0.56, 0.44},
			{0.65, 0.35},
		},
		MutationRate: 0.01,
	}
}

// DomainSize returns the number of hidden values.
func (m *GeneticModel) DomainSize() int {
	return domainSize
}

// PriorProbability returns the unconditional probability that a member with
// no parents holds v copies of the allele.
func (m *GeneticModel) PriorProbability(v int) float64 {
	return m.Prior[v]
}

// EmissionProbability returns P(trait observation | v copies).
func (m *GeneticModel) EmissionProbability(v int, observed bool) float64 {
	if observed {
		return m.Emission[v][0]
	}
	return m.Emission[v][1]
}

// PassProbability returns the probability that a parent holding the given
// copy count passes the allele to a child.
//
// The mutation convention is fixed: a two-copy parent fails to pass with
// probability MutationRate, a zero-copy parent passes with probability
// MutationRate, and a one-copy parent passes with probability 0.5
// regardless of MutationRate.
func (m *GeneticModel) PassProbability(copies int) float64 {
	switch copies {
	case TwoCopies:
		return 1 - m.MutationRate
	case OneCopy:
		return 0.5
	default:
		return m.MutationRate
	}
}

// ChildProbability returns the probability that a child holds the given
// copy count, given its parents' copy counts. The two passing events are
// independent Bernoulli trials; one copy can arrive two mutually exclusive
// ways (mother passes and father does not, or the reverse), and both ways
// are summed.
func (m *GeneticModel) ChildProbability(child, mother, father int) float64 {
	mPass := m.PassProbability(mother)
	fPass := m.PassProbability(father)

	switch child {
	case TwoCopies:
		return mPass * fPass
	case OneCopy:
		return mPass*(1-fPass) + fPass*(1-mPass)
	default:
		return (1 - mPass) * (1 - fPass)
	}
}

// Validate checks that every table is a well-formed probability
// distribution and the mutation rate is a probability.
func (m *GeneticModel) Validate() error {
	if m.MutationRate < 0 || m.MutationRate > 1 {
		return fmt.Errorf("mutation rate %v outside [0, 1]", m.MutationRate)
	}

	sum := 0.0
	for v, p := range m.Prior {
		if p < 0 || p > 1 {
			return fmt.Errorf("prior probability %v for copy count %d outside [0, 1]", p, v)
		}
		sum += p
	}
	if math.Abs(sum-1) > distributionTolerance {
		return fmt.Errorf("prior table sums to %v, expected 1", sum)
	}

	for v, row := range m.Emission {
		for _, p := range row {
			if p < 0 || p > 1 {
				return fmt.Errorf("emission probability %v for copy count %d outside [0, 1]", p, v)
			}
		}
		if math.Abs(row[0]+row[1]-1) > distributionTolerance {
			return fmt.Errorf("emission row for copy count %d sums to %v, expected 1", v, row[0]+row[1])
		}
	}

	return nil
}
