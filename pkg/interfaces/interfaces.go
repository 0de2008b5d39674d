/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces and data types for the Lineage inference engine.
Defines the core types used across all packages to break import cycles and
enable proper modular design.
*/

package interfaces

// MemberRecord is one row of a population description as supplied by a
// loader: an identity, optional parent references, and optional trait
// evidence. MotherID and FatherID must both be set or both be empty.
// A nil Trait means the trait was not observed for this member.
type MemberRecord struct {
	ID       string
	MotherID string
	FatherID string
	Trait    *bool
}

// Model describes an inheritance model over a small discrete hidden domain
// with a binary observed variable. The engine enumerates and multiplies;
// the model owns every probability it multiplies with.
type Model interface {
	// DomainSize returns the number of hidden values. Hidden values are
	// identified by their index in [0, DomainSize).
	DomainSize() int

	// PriorProbability returns the unconditional probability of hidden
	// value v for a member with no parents.
	PriorProbability(v int) float64

	// EmissionProbability returns P(observed | hidden value v).
	EmissionProbability(v int, observed bool) float64

	// ChildProbability returns the probability that a child has hidden
	// value child given its mother's and father's hidden values.
	ChildProbability(child, mother, father int) float64

	// Validate checks that the model's tables are well-formed
	// probability distributions.
	Validate() error
}

// Distribution is a normalized probability distribution over the hidden
// domain, indexed by hidden value.
type Distribution []float64

// BinaryDistribution is a normalized distribution over the observed
// variable's two values.
type BinaryDistribution struct {
	True  float64
	False float64
}

// MemberMarginals holds the posterior marginals of a single member.
type MemberMarginals struct {
	Hidden   Distribution
	Observed BinaryDistribution
}

// Marginals is the final, read-only result of one inference run: per-member
// posterior distributions plus the run identity used in logs.
type Marginals struct {
	RunID   string
	Members map[string]MemberMarginals
}

// EngineConfig represents the configuration for the inference engine.
type EngineConfig struct {
	// Workers is the number of parallel enumeration workers.
	// 0 selects runtime.NumCPU(). Results are deterministic for a fixed
	// worker count; floating-point summation order changes with it.
	Workers int

	// MaxMembers bounds the population size accepted by Infer. Cost is
	// exponential in population size, so the bound is enforced before
	// any enumeration begins. 0 selects the default bound; values above
	// MaxMembersCeiling are clamped to it.
	MaxMembers int

	LogLevel string
	LogFile  string
	JSONLogs bool
}

// DefaultMaxMembers bounds enumeration cost when EngineConfig.MaxMembers is
// unset. Every additional member multiplies the joint term count by six.
const DefaultMaxMembers = 10

// MaxMembersCeiling is the hard upper bound on MaxMembers. The hidden
// assignment count 3^n must fit in a uint64 (3^41 overflows), and 3^32
// assignments is already far beyond practical enumeration.
const MaxMembersCeiling = 32
