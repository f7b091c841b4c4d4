package delta

import (
	"fmt"
	"sort"
)

// Delta aggregates a set of Differences. Immutable after construction; build
// one with NewDelta (used by diff.AccumulatingHandler, and by callers
// assembling differences directly, e.g. tests).
type Delta struct {
	RunID            string
	OldLabel         string
	NewLabel         string
	OldIsDevelopment bool
	differences      []Difference
}

// NewDelta builds an immutable Delta from a slice of differences, sorting
// them into the canonical deterministic order (spec.md §4.5).
func NewDelta(runID, oldLabel, newLabel string, oldIsDevelopment bool, diffs []Difference) *Delta {
	cp := append([]Difference(nil), diffs...)
	sort.Stable(byOrder(cp))
	return &Delta{
		RunID:            runID,
		OldLabel:         oldLabel,
		NewLabel:         newLabel,
		OldIsDevelopment: oldIsDevelopment,
		differences:      cp,
	}
}

// Differences returns a defensive copy; callers cannot mutate the Delta
// through the returned slice.
func (d *Delta) Differences() []Difference {
	return append([]Difference(nil), d.differences...)
}

func (d *Delta) Len() int { return len(d.differences) }

func (d *Delta) hasKind(k Kind) bool {
	for _, diff := range d.differences {
		if diff.Kind == k {
			return true
		}
	}
	return false
}

// Category computes the compatibility category per the spec.md §4.5 table.
func (d *Delta) Category() Category {
	switch {
	case d.hasKind(KindChange) || d.hasKind(KindRemove):
		return NonBackwardCompatible
	case d.hasKind(KindAdd):
		return BackwardCompatibleUser
	case d.hasKind(KindDeprecate):
		return BackwardCompatibleUser
	default:
		return BackwardCompatibleImplementer
	}
}

// Describe returns a one-line human summary of this Delta: counts by
// variant and the resulting category. Pure presentation of already
// computed data (SPEC_FULL.md §3) — not the source-rendering the core
// explicitly excludes.
func (d *Delta) Describe() string {
	var add, rem, chg, compat, dep int
	for _, diff := range d.differences {
		switch diff.Kind {
		case KindAdd:
			add++
		case KindRemove:
			rem++
		case KindChange:
			chg++
		case KindCompatChange:
			compat++
		case KindDeprecate:
			dep++
		}
	}
	return fmt.Sprintf(
		"%s -> %s: %d added, %d removed, %d changed, %d compat-changed, %d deprecated -> %s",
		d.OldLabel, d.NewLabel, add, rem, chg, compat, dep, d.Category(),
	)
}

// Infer classifies this Delta and computes the next version from baseline.
func (d *Delta) Infer(baseline *Version) (*Version, error) {
	return InferNextVersion(baseline, d.Category())
}

// Validate reports whether current is an acceptable next version after
// previous, given this Delta's category (spec.md §4.5 "Validation").
func (d *Delta) Validate(previous, current *Version) (bool, error) {
	if previous == nil || current == nil {
		return false, invalidArgument("Delta.Validate", "previous and current must both be non-nil")
	}
	if !current.GreaterThan(previous) {
		return false, invalidArgument("Delta.Validate", "current must be greater than previous")
	}
	if previous.IsDevelopment() {
		return true, nil
	}
	minimum, err := minimumAcceptable(previous, d.Category())
	if err != nil {
		return false, err
	}
	return !current.LessThan(minimum), nil
}
