/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: worker.go
Description: Worker implementation for parallel enumeration in the Lineage
inference engine. Each worker owns a disjoint stride of the hidden
configuration space and a private partial accumulator, so workers share
nothing until the engine merges their results.
*/

package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/kleascm/lineage/pkg/interfaces"
	"github.com/kleascm/lineage/pkg/population"
)

// worker evaluates the joint probability of every (hidden, observed) pair
// in its partition of the configuration space and accumulates the results
// privately.
type worker struct {
	id     int
	pop    *population.Population
	model  interfaces.Model
	traits *traitEnumerator
	acc    *accumulator
	logger *logrus.Logger

	// Performance tracking
	evaluated uint64
}

func newWorker(id int, pop *population.Population, model interfaces.Model, traits *traitEnumerator, logger *logrus.Logger) *worker {
	return &worker{
		id:     id,
		pop:    pop,
		model:  model,
		traits: traits,
		acc:    newAccumulator(pop.Size(), model.DomainSize()),
		logger: logger,
	}
}

// run processes hidden assignment indices start, start+stride, ... below
// total. For each hidden assignment it walks every evidence-consistent
// trait assignment, evaluates the joint probability, and accumulates it.
func (w *worker) run(start, stride, total uint64) {
	hidden := make([]uint8, w.pop.Size())

	for index := start; index < total; index += stride {
		decodeAssignment(index, w.model.DomainSize(), hidden)

		w.traits.Reset()
		for w.traits.Next() {
			p := jointProbability(w.pop, w.model, hidden, w.traits.Assignment())
			w.acc.add(hidden, w.traits.Assignment(), p)
			w.evaluated++
		}
	}

	w.logger.WithFields(logrus.Fields{
		"worker":    w.id,
		"evaluated": w.evaluated,
	}).Debug("Worker finished partition")
}
