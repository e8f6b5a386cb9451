package dataflow

import (
	"fmt"
	"sort"

	"github.com/sarchlab/tenet/iset"
)

// IssueType categorizes lint issues.
type IssueType string

const (
	IssueStruct   IssueType = "STRUCT"   // Iteration sent to a PE outside the array, or to several PEs or cycles
	IssueConflict IssueType = "CONFLICT" // Several iterations share one PE in one cycle
	IssueCoverage IssueType = "COVERAGE" // Iteration without a PE or a cycle
)

// Issue is a single lint finding.
type Issue struct {
	Type      IssueType
	Iteration iset.Tuple // Zero if not applicable
	Point     iset.Tuple // Space-time point, zero if not applicable
	Message   string
	Details   map[string]interface{}
}

// Lint checks that the mapping places every iteration on exactly one PE of
// the array, at exactly one cycle, and that no two iterations collide.
// Partial coverage is reported but does not prevent analysis.
func (d *Dataflow) Lint() ([]Issue, error) {
	domain := d.st.Domain()
	space := d.SpaceMap()
	time := d.TimeMap()

	if domain.IsSymbolic() || space.IsSymbolic() || time.IsSymbolic() {
		return nil, ErrSymbolic
	}

	var issues []Issue
	issues = append(issues, d.lintSpace(space)...)
	issues = append(issues, lintFunction("cycle", domain, time)...)
	issues = append(issues, lintFunction("PE", domain, space)...)
	issues = append(issues, lintConflicts(d.SpaceTimeMap())...)

	return issues, nil
}

// lintSpace reports iterations placed on PEs the array does not have.
func (d *Dataflow) lintSpace(space iset.Map) []Issue {
	var issues []Issue
	for _, p := range space.Pairs() {
		if d.pe.Domain().Contains(p.To) {
			continue
		}

		issues = append(issues, Issue{
			Type:      IssueStruct,
			Iteration: p.From,
			Message:   fmt.Sprintf("%s runs on %s, which is not in %s", p.From, p.To, d.pe.Name()),
			Details:   map[string]interface{}{"pe": p.To.String()},
		})
	}

	return issues
}

// lintFunction reports iterations that have no image or more than one image
// under m.
func lintFunction(what string, domain iset.Set, m iset.Map) []Issue {
	card := m.Card()

	var issues []Issue
	for _, it := range domain.Tuples() {
		n, ok := card.At(it)
		switch {
		case !ok:
			issues = append(issues, Issue{
				Type:      IssueCoverage,
				Iteration: it,
				Message:   fmt.Sprintf("%s has no %s", it, what),
			})
		case n > 1:
			issues = append(issues, Issue{
				Type:      IssueStruct,
				Iteration: it,
				Message:   fmt.Sprintf("%s has %d %ss", it, n, what),
				Details:   map[string]interface{}{"count": n},
			})
		}
	}

	return issues
}

// lintConflicts reports space-time points shared by several iterations.
func lintConflicts(spaceTime iset.Map) []Issue {
	byPoint := spaceTime.Reverse()
	card := byPoint.Card()

	var issues []Issue
	for _, pt := range byPoint.Domain().Tuples() {
		n, _ := card.At(pt)
		if n < 2 {
			continue
		}

		var its []string
		for _, p := range byPoint.IntersectDomain(iset.NewSet(pt)).Pairs() {
			its = append(its, p.To.String())
		}
		sort.Strings(its)

		details := map[string]interface{}{"iterations": its}
		if pe, cycle, ok := pt.Unwrap(); ok {
			details["pe"] = pe.String()
			details["cycle"] = cycle.String()
		}

		issues = append(issues, Issue{
			Type:    IssueConflict,
			Point:   pt,
			Message: fmt.Sprintf("%d iterations run at %s", n, pt),
			Details: details,
		})
	}

	return issues
}
