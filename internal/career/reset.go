package career

import (
	"slices"

	"github.com/fieldhq/brevet/internal/catalog"
)

// ResetAll refunds and clears every unlocked non-promotion skill.
// Promotion milestones survive: the grade never goes backwards and their
// cost is never reclaimed.
func (t *Tree) ResetAll() ResetResult {
	return t.reset(func(catalog.Definition) bool { return true })
}

// ResetAllExceptFoundation clears doctrine and specialization progress
// while keeping every foundation branch intact.
func (t *Tree) ResetAllExceptFoundation() ResetResult {
	return t.reset(func(d catalog.Definition) bool {
		f, ok := t.families.Classify(d.Branch)
		return ok && f != catalog.FamilyFoundation
	})
}

// ResetBranch refunds and clears one branch. A branch holding an
// unlocked promotion milestone is rejected outright (zero result) —
// promotions are irreversible, so the branch that carries them never
// resets.
func (t *Tree) ResetBranch(b catalog.BranchTag) ResetResult {
	if b == catalog.BranchNone || !t.started[b] {
		return ResetResult{}
	}
	for tag, on := range t.unlocked {
		if !on {
			continue
		}
		if d, ok := t.cat.Lookup(tag); ok && d.Branch == b && d.IsPromotion() {
			return ResetResult{}
		}
	}
	return t.reset(func(d catalog.Definition) bool { return d.Branch == b })
}

// reset clears every unlocked non-promotion skill the filter includes,
// credits the refund, and recomputes started branches from what remains.
func (t *Tree) reset(include func(catalog.Definition) bool) ResetResult {
	var res ResetResult
	for tag, on := range t.unlocked {
		if !on {
			continue
		}
		d, ok := t.cat.Lookup(tag)
		if !ok || d.IsPromotion() || !include(d) {
			continue
		}
		res.Refund += d.Cost
		res.Cleared = append(res.Cleared, tag)
	}

	for _, tag := range res.Cleared {
		delete(t.unlocked, tag)
	}
	t.reputation += res.Refund

	// A branch stays started only while it still has an unlocked skill.
	remaining := make(map[catalog.BranchTag]bool)
	for tag, on := range t.unlocked {
		if !on {
			continue
		}
		if d, ok := t.cat.Lookup(tag); ok {
			remaining[d.Branch] = true
		}
	}
	for b, on := range t.started {
		if on && !remaining[b] {
			res.ClearedBranches = append(res.ClearedBranches, b)
		}
	}
	t.started = remaining

	if res.Changed() {
		t.version++
	}
	slices.Sort(res.Cleared)
	slices.Sort(res.ClearedBranches)
	return res
}
