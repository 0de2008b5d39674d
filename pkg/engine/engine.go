/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Main inference engine implementation. Composes the hidden
configuration enumerator, evidence filter, joint probability evaluator, and
marginal accumulator behind a single atomic Infer entry point, with a worker
pool partitioning the enumeration and a size bound guarding its exponential
cost.
*/

package engine

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kleascm/lineage/pkg/interfaces"
	"github.com/kleascm/lineage/pkg/population"
)

// Stats tracks engine activity across inference runs.
type Stats struct {
	Runs          int64
	LastWorkers   int
	LastEvaluated uint64
	LastDuration  time.Duration
}

// Engine performs exact posterior inference over a population by full
// enumeration of the joint configuration space.
type Engine struct {
	config *interfaces.EngineConfig
	model  interfaces.Model
	logger *logrus.Logger

	// State management
	initialized bool
	stats       Stats
	mu          sync.RWMutex
}

// NewEngine creates a new inference engine instance.
func NewEngine() *Engine {
	return &Engine{
		logger: logrus.New(),
	}
}

// SetModel sets the inheritance model for the engine.
func (e *Engine) SetModel(model interfaces.Model) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.model = model
}

// Initialize sets up the engine with the given configuration. The model
// must be injected with SetModel first and must validate cleanly.
func (e *Engine) Initialize(config *interfaces.EngineConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.model == nil {
		return fmt.Errorf("model not set - use SetModel() before Initialize()")
	}
	if err := e.model.Validate(); err != nil {
		return fmt.Errorf("invalid model: %w", err)
	}

	// Default on a copy so caller-owned configuration is never mutated.
	cfg := interfaces.EngineConfig{}
	if config != nil {
		cfg = *config
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.MaxMembers <= 0 {
		cfg.MaxMembers = interfaces.DefaultMaxMembers
	}
	if cfg.MaxMembers > interfaces.MaxMembersCeiling {
		e.logger.WithFields(logrus.Fields{
			"max_members": cfg.MaxMembers,
			"ceiling":     interfaces.MaxMembersCeiling,
		}).Warn("Clamping max_members to the enumeration ceiling")
		cfg.MaxMembers = interfaces.MaxMembersCeiling
	}

	e.config = &cfg
	e.setupLogging()
	e.initialized = true

	e.logger.WithFields(logrus.Fields{
		"workers":     config.Workers,
		"max_members": config.MaxMembers,
		"domain_size": e.model.DomainSize(),
	}).Info("Inference engine initialized")
	return nil
}

// setupLogging configures the logging system based on configuration.
func (e *Engine) setupLogging() {
	level, err := logrus.ParseLevel(e.config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	e.logger.SetLevel(level)

	if e.config.LogFile != "" {
		file, err := os.OpenFile(e.config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			e.logger.SetOutput(file)
		}
	}

	if e.config.JSONLogs {
		e.logger.SetFormatter(&logrus.JSONFormatter{})
	}
}

// Infer computes the posterior marginals of every member's hidden and
// observed variables given the evidence. Enumeration, accumulation, and
// normalization run atomically inside this call; the returned marginals are
// final and never mutated afterwards.
//
// Evidence may come from pop.Evidence() or be supplied directly. Evidence
// that contradicts itself under the model surfaces as
// ErrInconsistentEvidence; populations above the configured size bound are
// rejected up front with ErrPopulationTooLarge.
func (e *Engine) Infer(pop *population.Population, ev population.Evidence) (*interfaces.Marginals, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return nil, fmt.Errorf("engine not initialized - call Initialize() first")
	}
	if pop == nil || pop.Size() == 0 {
		return nil, fmt.Errorf("%w: population is empty", ErrInvalidPopulation)
	}
	if pop.Size() > e.config.MaxMembers {
		return nil, fmt.Errorf("%w: %d members, bound is %d", ErrPopulationTooLarge, pop.Size(), e.config.MaxMembers)
	}

	runID := uuid.New().String()
	start := time.Now()
	total := assignmentCount(e.model.DomainSize(), pop.Size())

	// Never run more workers than there are hidden assignments.
	numWorkers := e.config.Workers
	if uint64(numWorkers) > total {
		numWorkers = int(total)
	}

	e.logger.WithFields(logrus.Fields{
		"run_id":      runID,
		"members":     pop.Size(),
		"assignments": total,
		"evidence":    len(ev),
		"workers":     numWorkers,
	}).Info("Starting inference run")

	workers := make([]*worker, numWorkers)
	for i := range workers {
		traits, err := newTraitEnumerator(pop, ev)
		if err != nil {
			return nil, err
		}
		workers[i] = newWorker(i, pop, e.model, traits, e.logger)
	}

	var wg sync.WaitGroup
	for i, w := range workers {
		wg.Add(1)
		go func(start uint64, w *worker) {
			defer wg.Done()
			w.run(start, uint64(numWorkers), total)
		}(uint64(i), w)
	}
	wg.Wait()

	// Merge in worker-ID order so results are bit-stable for a fixed
	// worker count.
	acc := workers[0].acc
	evaluated := workers[0].evaluated
	for _, w := range workers[1:] {
		acc.merge(w.acc)
		evaluated += w.evaluated
	}

	if err := acc.normalize(pop); err != nil {
		e.logger.WithField("run_id", runID).Warn("Inference run failed: inconsistent evidence")
		return nil, err
	}

	duration := time.Since(start)
	e.stats.Runs++
	e.stats.LastWorkers = numWorkers
	e.stats.LastEvaluated = evaluated
	e.stats.LastDuration = duration

	e.logger.WithFields(logrus.Fields{
		"run_id":    runID,
		"evaluated": evaluated,
		"duration":  duration,
	}).Info("Inference run complete")

	return &interfaces.Marginals{
		RunID:   runID,
		Members: acc.marginals(pop),
	}, nil
}

// GetStats returns a copy of the current engine statistics.
func (e *Engine) GetStats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}
