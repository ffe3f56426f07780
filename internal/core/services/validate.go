package services

import (
	"fmt"
	"time"

	"github.com/gtree-project/gtree/internal/core/domain"
)

// Validate sweeps the whole tree without mutating it: every structural
// invariant of the record model is re-checked, then plausibility
// warnings are added for provisional-looking data. The editor shell
// surfaces the findings but never blocks a save on warnings, because
// hand-maintained files legitimately contain incomplete entries.
func (s *QueryService) Validate() []domain.ValidationIssue {
	idx := s.idx.Fresh()
	var issues []domain.ValidationIssue

	issues = append(issues, s.checkStructure(idx)...)
	issues = append(issues, s.checkDates()...)
	issues = append(issues, s.checkPlausibility(idx)...)
	return issues
}

// checkStructure re-verifies referential integrity, the parent bound,
// acyclicity and spousal uniqueness. The record model enforces all of
// these on mutation, so findings here indicate a defect, but the sweep
// stays independent of that enforcement by design.
func (s *QueryService) checkStructure(idx *Index) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	rels := s.tree.Relationships()
	for i := range rels {
		r := &rels[i]
		a, b := r.Endpoints()
		for _, id := range []string{a, b} {
			if _, ok := idx.Person(id); !ok {
				issues = append(issues, domain.ValidationIssue{
					Severity:       domain.SeverityError,
					Invariant:      domain.InvariantReference,
					RelationshipID: r.ID,
					Message:        fmt.Sprintf("references unknown person %q", id),
				})
			}
		}
	}

	for _, p := range s.tree.Persons() {
		if n := len(idx.Parents(p.ID)); n > domain.MaxParents {
			issues = append(issues, domain.ValidationIssue{
				Severity:  domain.SeverityError,
				Invariant: domain.InvariantParentCount,
				PersonID:  p.ID,
				Message:   fmt.Sprintf("has %d recorded parents", n),
			})
		}
	}

	issues = append(issues, s.checkAcyclic(idx)...)

	// Spousal uniqueness per pair per overlapping period.
	type pair struct{ a, b string }
	seen := make(map[pair][]*domain.Relationship)
	for i := range rels {
		r := &rels[i]
		if r.Kind != domain.KindSpousal {
			continue
		}
		key := pair{r.PersonA, r.PersonB}
		for _, other := range seen[key] {
			if domain.RangesOverlap(r.Start, r.End, other.Start, other.End) {
				issues = append(issues, domain.ValidationIssue{
					Severity:       domain.SeverityError,
					Invariant:      domain.InvariantSpousalOverlap,
					RelationshipID: r.ID,
					Message: fmt.Sprintf("duplicates spousal edge %s over an overlapping period",
						other.ID),
				})
			}
		}
		seen[key] = append(seen[key], r)
	}

	return issues
}

// checkAcyclic looks for lineage cycles with a colouring DFS over the
// parent-to-child adjacency.
func (s *QueryService) checkAcyclic(idx *Index) []domain.ValidationIssue {
	const (
		unvisited = 0
		onStack   = 1
		done      = 2
	)
	state := make(map[string]int)
	var issues []domain.ValidationIssue

	var visit func(id string)
	visit = func(id string) {
		state[id] = onStack
		for _, child := range idx.Children(id) {
			switch state[child] {
			case unvisited:
				visit(child)
			case onStack:
				issues = append(issues, domain.ValidationIssue{
					Severity:  domain.SeverityError,
					Invariant: domain.InvariantAcyclic,
					PersonID:  child,
					Message:   "is part of a lineage cycle",
				})
			}
		}
		state[id] = done
	}

	for _, p := range s.tree.Persons() {
		if state[p.ID] == unvisited {
			visit(p.ID)
		}
	}
	return issues
}

func (s *QueryService) checkDates() []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	for _, p := range s.tree.Persons() {
		if !p.Birth.NotAfter(p.Death) {
			issues = append(issues, domain.ValidationIssue{
				Severity:  domain.SeverityError,
				Invariant: domain.InvariantDateOrder,
				PersonID:  p.ID,
				Message:   fmt.Sprintf("birth %s is after death %s", p.Birth, p.Death),
			})
		}
	}
	for _, r := range s.tree.Relationships() {
		if !r.Start.NotAfter(r.End) {
			issues = append(issues, domain.ValidationIssue{
				Severity:       domain.SeverityError,
				Invariant:      domain.InvariantDateOrder,
				RelationshipID: r.ID,
				Message:        fmt.Sprintf("start %s is after end %s", r.Start, r.End),
			})
		}
	}
	return issues
}

// checkPlausibility adds soft warnings for structurally legal but
// suspicious data.
func (s *QueryService) checkPlausibility(idx *Index) []domain.ValidationIssue {
	var issues []domain.ValidationIssue
	y, m, d := time.Now().Date()
	today := domain.PartialDate{Year: y, Month: int(m), Day: d}

	for _, p := range s.tree.Persons() {
		if !p.Birth.IsZero() && p.Death.IsZero() {
			if age := domain.YearsBetween(p.Birth, today); age > s.maxAgeYears {
				issues = append(issues, domain.ValidationIssue{
					Severity: domain.SeverityWarning,
					PersonID: p.ID,
					Message: fmt.Sprintf("born %s with no death date would now be %d; a death date is probably missing",
						p.Birth, age),
				})
			}
		}

		// A child born before a parent implies a typo in one of the
		// two dates.
		for _, parentID := range idx.Parents(p.ID) {
			parent, ok := idx.Person(parentID)
			if !ok {
				continue
			}
			if !p.Birth.IsZero() && !parent.Birth.IsZero() && !parent.Birth.NotAfter(p.Birth) {
				issues = append(issues, domain.ValidationIssue{
					Severity: domain.SeverityWarning,
					PersonID: p.ID,
					Message: fmt.Sprintf("born %s before parent %s was born (%s)",
						p.Birth, parentID, parent.Birth),
				})
			}
		}
	}
	return issues
}
