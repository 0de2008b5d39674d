/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader_test.go
Description: Unit tests for the CSV population loader covering the
name,mother,father,trait schema and its failure modes.
*/

package population_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/lineage/pkg/population"
)

const familyCSV = `name,mother,father,trait
Arthur,,,1
Molly,,,
Ron,Molly,Arthur,
`

func TestReadCSVParsesFamily(t *testing.T) {
	pop, err := population.ReadCSV(strings.NewReader(familyCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, pop.Size())
	assert.Equal(t, []string{"Arthur", "Molly", "Ron"}, pop.IDs())

	i, _ := pop.Index("Arthur")
	require.NotNil(t, pop.Member(i).Trait)
	assert.True(t, *pop.Member(i).Trait)

	i, _ = pop.Index("Molly")
	assert.Nil(t, pop.Member(i).Trait)

	ev := pop.Evidence()
	assert.Equal(t, population.Evidence{"Arthur": true}, ev)
}

func TestReadCSVTraitZero(t *testing.T) {
	pop, err := population.ReadCSV(strings.NewReader("name,mother,father,trait\nA,,,0\n"))
	require.NoError(t, err)

	i, _ := pop.Index("A")
	require.NotNil(t, pop.Member(i).Trait)
	assert.False(t, *pop.Member(i).Trait)
}

func TestReadCSVRejectsMissingColumn(t *testing.T) {
	_, err := population.ReadCSV(strings.NewReader("name,mother,father\nA,,\n"))
	assert.ErrorContains(t, err, "trait")
}

func TestReadCSVRejectsInvalidTrait(t *testing.T) {
	_, err := population.ReadCSV(strings.NewReader("name,mother,father,trait\nA,,,yes\n"))
	assert.ErrorContains(t, err, "invalid trait value")
}

func TestReadCSVRejectsUnknownParent(t *testing.T) {
	_, err := population.ReadCSV(strings.NewReader("name,mother,father,trait\nA,B,C,\n"))
	assert.Error(t, err)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := population.LoadCSV("does-not-exist.csv")
	assert.Error(t, err)
}
