/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: population.go
Description: Population graph for the Lineage inference engine. Builds an
indexed, immutable view of the member records and enforces the parent-forest
invariant (two-or-zero parents, resolvable parent ids, no ancestry cycles)
before any inference can start.
*/

package population

import (
	"errors"
	"fmt"

	"github.com/kleascm/lineage/pkg/interfaces"
)

// ErrInvalidPopulation reports a structural violation of the parent-forest
// invariant. Every failure of New wraps it.
var ErrInvalidPopulation = errors.New("invalid population")

// Evidence is a partial mapping from member id to observed trait value.
// Members absent from the map are unconstrained.
type Evidence map[string]bool

// Member is one entity in the population graph. Parent indices are -1 for
// members with no parents.
type Member struct {
	ID     string
	Mother int
	Father int
	Trait  *bool
}

// Population is an immutable, index-addressable view of the member records.
// Member order follows the input record order so that enumeration over the
// population is deterministic.
type Population struct {
	members []Member
	byID    map[string]int
}

// New builds a Population from member records and validates the
// parent-forest invariant. It returns an error for duplicate or empty ids,
// a member with exactly one parent set, a parent id not present in the
// population, or a member that is its own ancestor.
func New(records []interfaces.MemberRecord) (*Population, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: population is empty", ErrInvalidPopulation)
	}

	p := &Population{
		members: make([]Member, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}

	for _, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("%w: member with empty id", ErrInvalidPopulation)
		}
		if _, dup := p.byID[rec.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate member id %q", ErrInvalidPopulation, rec.ID)
		}
		p.byID[rec.ID] = len(p.members)
		p.members = append(p.members, Member{ID: rec.ID, Mother: -1, Father: -1, Trait: rec.Trait})
	}

	// Resolve parent links after all ids are known; records may reference
	// parents declared later in the input.
	for i, rec := range records {
		if (rec.MotherID == "") != (rec.FatherID == "") {
			return nil, fmt.Errorf("%w: member %q has exactly one parent set", ErrInvalidPopulation, rec.ID)
		}
		if rec.MotherID == "" {
			continue
		}

		mother, ok := p.byID[rec.MotherID]
		if !ok {
			return nil, fmt.Errorf("%w: member %q references unknown mother %q", ErrInvalidPopulation, rec.ID, rec.MotherID)
		}
		father, ok := p.byID[rec.FatherID]
		if !ok {
			return nil, fmt.Errorf("%w: member %q references unknown father %q", ErrInvalidPopulation, rec.ID, rec.FatherID)
		}
		p.members[i].Mother = mother
		p.members[i].Father = father
	}

	if err := p.checkAcyclic(); err != nil {
		return nil, err
	}

	return p, nil
}

// checkAcyclic verifies that no member is its own ancestor using a
// recursive three-color depth-first search over the parent links.
func (p *Population) checkAcyclic() error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)

	state := make([]int, len(p.members))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: member %q is its own ancestor", ErrInvalidPopulation, p.members[i].ID)
		}
		state[i] = visiting
		if m := p.members[i].Mother; m >= 0 {
			if err := visit(m); err != nil {
				return err
			}
		}
		if f := p.members[i].Father; f >= 0 {
			if err := visit(f); err != nil {
				return err
			}
		}
		state[i] = done
		return nil
	}

	for i := range p.members {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of members.
func (p *Population) Size() int {
	return len(p.members)
}

// Member returns the member at index i.
func (p *Population) Member(i int) Member {
	return p.members[i]
}

// Index returns the index of the member with the given id.
func (p *Population) Index(id string) (int, bool) {
	i, ok := p.byID[id]
	return i, ok
}

// IDs returns the member ids in population order.
func (p *Population) IDs() []string {
	ids := make([]string, len(p.members))
	for i, m := range p.members {
		ids[i] = m.ID
	}
	return ids
}

// Evidence collects the trait observations embedded in the member records
// into an evidence mapping.
func (p *Population) Evidence() Evidence {
	ev := make(Evidence)
	for _, m := range p.members {
		if m.Trait != nil {
			ev[m.ID] = *m.Trait
		}
	}
	return ev
}
