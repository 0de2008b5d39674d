/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model_test.go
Description: Unit tests for the genetic inheritance model. Pins the
transmission and mutation conventions and validates the probability tables.
*/

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/lineage/pkg/model"
)

func TestDefaultModelValidates(t *testing.T) {
	m := model.DefaultModel()
	require.NoError(t, m.Validate())
	assert.Equal(t, 3, m.DomainSize())
}

// TestPassProbabilityConvention pins the mutation direction convention:
// a two-copy parent fails to pass with probability epsilon, a zero-copy
// parent passes with probability epsilon, a one-copy parent passes with
// probability 0.5 regardless of epsilon.
func TestPassProbabilityConvention(t *testing.T) {
	m := model.DefaultModel()

	assert.InDelta(t, 0.99, m.PassProbability(model.TwoCopies), 1e-12)
	assert.InDelta(t, 0.5, m.PassProbability(model.OneCopy), 1e-12)
	assert.InDelta(t, 0.01, m.PassProbability(model.ZeroCopies), 1e-12)

	m.MutationRate = 0
	assert.InDelta(t, 1.0, m.PassProbability(model.TwoCopies), 1e-12)
	assert.InDelta(t, 0.5, m.PassProbability(model.OneCopy), 1e-12)
	assert.InDelta(t, 0.0, m.PassProbability(model.ZeroCopies), 1e-12)
}

// TestChildProbabilityDistributes checks that for every parent combination
// the child copy count distribution sums to 1.
func TestChildProbabilityDistributes(t *testing.T) {
	m := model.DefaultModel()

	for mother := 0; mother < m.DomainSize(); mother++ {
		for father := 0; father < m.DomainSize(); father++ {
			sum := 0.0
			for child := 0; child < m.DomainSize(); child++ {
				p := m.ChildProbability(child, mother, father)
				assert.GreaterOrEqual(t, p, 0.0)
				sum += p
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "parents %d/%d", mother, father)
		}
	}
}

// TestChildProbabilityOneCopy checks that both mutually exclusive ways of
// receiving exactly one copy are summed.
func TestChildProbabilityOneCopy(t *testing.T) {
	m := model.DefaultModel()

	// Mother two copies (pass 0.99), father zero copies (pass 0.01):
	// 0.99*0.99 + 0.01*0.01
	expected := 0.99*0.99 + 0.01*0.01
	assert.InDelta(t, expected, m.ChildProbability(model.OneCopy, model.TwoCopies, model.ZeroCopies), 1e-12)

	// Symmetric in the parents.
	assert.InDelta(t,
		m.ChildProbability(model.OneCopy, model.ZeroCopies, model.TwoCopies),
		m.ChildProbability(model.OneCopy, model.TwoCopies, model.ZeroCopies),
		1e-12)
}

func TestValidateRejectsBadTables(t *testing.T) {
	m := model.DefaultModel()
	m.MutationRate = 1.5
	assert.Error(t, m.Validate())

	m = model.DefaultModel()
	m.Prior = [3]float64{0.5, 0.5, 0.5}
	assert.Error(t, m.Validate())

	m = model.DefaultModel()
	m.Emission[1] = [2]float64{0.7, 0.7}
	assert.Error(t, m.Validate())

	m = model.DefaultModel()
	m.Prior = [3]float64{1.2, -0.1, -0.1}
	assert.Error(t, m.Validate())
}
