/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy for the Lineage inference engine. Distinguishes
structural population failures, internal contract violations, and evidence
with zero probability mass so callers can react to each specifically.
*/

package engine

import (
	"errors"

	"github.com/kleascm/lineage/pkg/population"
)

var (
	// ErrInvalidPopulation reports a structural violation of the
	// parent-forest invariant. It is the population package's sentinel,
	// so errors.Is matches loader and constructor failures too.
	ErrInvalidPopulation = population.ErrInvalidPopulation

	// ErrInvalidConfiguration reports an assignment referencing a member
	// or hidden value outside the population or model domain. It marks a
	// programming defect in the caller, not a recoverable condition.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInconsistentEvidence reports evidence with zero total
	// probability mass under the model. It is raised instead of ever
	// producing NaN marginals.
	ErrInconsistentEvidence = errors.New("evidence has zero probability mass")

	// ErrPopulationTooLarge reports a population above the configured
	// size bound. Enumeration cost is exponential and has no cancellable
	// structure once started, so the bound is checked up front.
	ErrPopulationTooLarge = errors.New("population exceeds configured size bound")
)
