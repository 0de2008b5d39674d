/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer_test.go
Description: Unit tests for the infer command's model construction,
including the zero-mutation-rate configuration.
*/

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewModelAppliesZeroMutationRate checks that an explicit zero mutation
// rate reaches the model instead of being swallowed by the default.
func TestNewModelAppliesZeroMutationRate(t *testing.T) {
	m, err := newModel(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.MutationRate)
	require.NoError(t, m.Validate())
}

func TestNewModelAppliesConfiguredRate(t *testing.T) {
	m, err := newModel(0.02)
	require.NoError(t, err)
	assert.Equal(t, 0.02, m.MutationRate)
}

func TestNewModelRejectsOutOfRangeRates(t *testing.T) {
	_, err := newModel(-0.5)
	assert.Error(t, err)

	_, err = newModel(1.5)
	assert.Error(t, err)
}
