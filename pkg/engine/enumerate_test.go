/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: enumerate_test.go
Description: Unit tests for the configuration enumerators: hidden-assignment
counting and ordering, index decoding for worker partitioning, and
evidence-pinned trait enumeration.
*/

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/lineage/pkg/interfaces"
	"github.com/kleascm/lineage/pkg/population"
)

func testPopulation(t *testing.T, records ...interfaces.MemberRecord) *population.Population {
	t.Helper()
	pop, err := population.New(records)
	require.NoError(t, err)
	return pop
}

func TestHiddenEnumeratorCount(t *testing.T) {
	e := newHiddenEnumerator(3, 3)

	seen := make(map[[3]uint8]bool)
	for e.Next() {
		var key [3]uint8
		copy(key[:], e.Assignment())
		assert.False(t, seen[key], "assignment generated twice")
		seen[key] = true
	}

	// 3^3 distinct assignments, exactly once each.
	assert.Len(t, seen, 27)
	assert.False(t, e.Next(), "enumerator must stay exhausted")
}

func TestHiddenEnumeratorOrderIsDeterministic(t *testing.T) {
	first := [][]uint8{}
	e := newHiddenEnumerator(2, 3)
	for e.Next() {
		first = append(first, append([]uint8(nil), e.Assignment()...))
	}

	e = newHiddenEnumerator(2, 3)
	for i := 0; e.Next(); i++ {
		assert.Equal(t, first[i], e.Assignment())
	}

	// Member 0 is the fastest digit.
	assert.Equal(t, []uint8{0, 0}, first[0])
	assert.Equal(t, []uint8{1, 0}, first[1])
	assert.Equal(t, []uint8{2, 0}, first[2])
	assert.Equal(t, []uint8{0, 1}, first[3])
}

func TestDecodeAssignmentMatchesEnumeratorOrder(t *testing.T) {
	e := newHiddenEnumerator(3, 3)
	decoded := make([]uint8, 3)

	for index := uint64(0); e.Next(); index++ {
		decodeAssignment(index, 3, decoded)
		assert.Equal(t, e.Assignment(), decoded, "index %d", index)
	}
}

func TestAssignmentCount(t *testing.T) {
	assert.Equal(t, uint64(1), assignmentCount(3, 0))
	assert.Equal(t, uint64(27), assignmentCount(3, 3))
	assert.Equal(t, uint64(1024), assignmentCount(2, 10))
}

func TestTraitEnumeratorPinsEvidence(t *testing.T) {
	pop := testPopulation(t,
		interfaces.MemberRecord{ID: "A"},
		interfaces.MemberRecord{ID: "B"},
		interfaces.MemberRecord{ID: "C"},
	)

	e, err := newTraitEnumerator(pop, population.Evidence{"B": true})
	require.NoError(t, err)

	b, _ := pop.Index("B")
	count := 0
	for e.Next() {
		count++
		// Evidenced member keeps its observed value in every assignment.
		assert.True(t, e.Assignment()[b])
	}

	// 2^2 assignments for the two unevidenced members.
	assert.Equal(t, 4, count)
}

func TestTraitEnumeratorNoEvidence(t *testing.T) {
	pop := testPopulation(t,
		interfaces.MemberRecord{ID: "A"},
		interfaces.MemberRecord{ID: "B"},
	)

	e, err := newTraitEnumerator(pop, nil)
	require.NoError(t, err)

	seen := make(map[[2]bool]bool)
	for e.Next() {
		var key [2]bool
		copy(key[:], e.Assignment())
		seen[key] = true
	}
	assert.Len(t, seen, 4)
}

func TestTraitEnumeratorReset(t *testing.T) {
	pop := testPopulation(t, interfaces.MemberRecord{ID: "A"})

	e, err := newTraitEnumerator(pop, nil)
	require.NoError(t, err)

	for e.Next() {
	}
	e.Reset()

	count := 0
	for e.Next() {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestTraitEnumeratorRejectsUnknownMember(t *testing.T) {
	pop := testPopulation(t, interfaces.MemberRecord{ID: "A"})

	_, err := newTraitEnumerator(pop, population.Evidence{"Nobody": true})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
