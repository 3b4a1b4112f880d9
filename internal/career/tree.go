// Package career tracks one commanding officer's progression: the
// reputation balance, the current grade, and the set of unlocked skills,
// with derived gameplay bonuses computed on demand.
//
// A Tree is owned by a single commander and is not safe for concurrent
// use; hosts that share a tree across goroutines must serialize calls.
package career

import (
	"slices"

	"github.com/fieldhq/brevet/internal/catalog"
)

// Tree is one commander's mutable skill-tree state. The catalog and
// classifier are injected read-only dependencies shared across trees.
type Tree struct {
	cat      *catalog.Catalog
	families *catalog.Classifier

	reputation int
	grade      catalog.Grade
	unlocked   map[catalog.SkillTag]bool
	started    map[catalog.BranchTag]bool

	// version counts mutations; cache entries remember the version they
	// were computed at, so a stale entry can never be read.
	version uint64
	bonuses map[bonusKey]bonusEntry
	caps    map[catalog.BonusType]capEntry
}

// New creates a tree at junior grade with the given starting reputation.
func New(cat *catalog.Catalog, families *catalog.Classifier, reputation int) *Tree {
	if reputation < 0 {
		reputation = 0
	}
	return &Tree{
		cat:        cat,
		families:   families,
		reputation: reputation,
		grade:      catalog.GradeJunior,
		unlocked:   make(map[catalog.SkillTag]bool),
		started:    make(map[catalog.BranchTag]bool),
		bonuses:    make(map[bonusKey]bonusEntry),
		caps:       make(map[catalog.BonusType]capEntry),
	}
}

// Reputation returns the current spendable balance.
func (t *Tree) Reputation() int { return t.reputation }

// Grade returns the commander's current grade.
func (t *Tree) Grade() catalog.Grade { return t.grade }

// IsUnlocked reports whether a skill is unlocked. TagNone is never
// unlocked.
func (t *Tree) IsUnlocked(tag catalog.SkillTag) bool {
	if tag == catalog.TagNone {
		return false
	}
	return t.unlocked[tag]
}

// Unlocked returns the unlocked tags in ascending order.
func (t *Tree) Unlocked() []catalog.SkillTag {
	out := make([]catalog.SkillTag, 0, len(t.unlocked))
	for tag, on := range t.unlocked {
		if on {
			out = append(out, tag)
		}
	}
	slices.Sort(out)
	return out
}

// HasStarted reports whether any skill of the branch has been unlocked.
func (t *Tree) HasStarted(b catalog.BranchTag) bool {
	return t.started[b]
}

// StartedBranches returns the started branches in ascending order.
func (t *Tree) StartedBranches() []catalog.BranchTag {
	out := make([]catalog.BranchTag, 0, len(t.started))
	for b, on := range t.started {
		if on {
			out = append(out, b)
		}
	}
	slices.Sort(out)
	return out
}

// BranchAvailable reports whether branch-family exclusivity permits
// starting (or continuing) the branch. Foundation branches are always
// available; a doctrine branch is blocked once a different doctrine
// branch has been started, and the same rule applies to specializations.
func (t *Tree) BranchAvailable(b catalog.BranchTag) bool {
	family, ok := t.families.Classify(b)
	if !ok {
		return false
	}
	if family == catalog.FamilyFoundation {
		return true
	}
	for other := range t.started {
		if other == b || !t.started[other] {
			continue
		}
		if f, ok := t.families.Classify(other); ok && f == family {
			return false
		}
	}
	return true
}

// CanUnlock reports whether the skill could be unlocked right now. Pure
// predicate: no state changes. Meant to drive UI enablement ahead of
// Unlock.
func (t *Tree) CanUnlock(tag catalog.SkillTag) bool {
	if tag == catalog.TagNone {
		return false
	}
	d, ok := t.cat.Lookup(tag)
	if !ok {
		return false
	}
	if t.unlocked[tag] {
		return false
	}
	if t.reputation < d.Cost {
		return false
	}
	if t.grade < d.Grade {
		return false
	}
	if !t.BranchAvailable(d.Branch) {
		return false
	}
	for _, r := range d.Requires {
		if !t.unlocked[r] {
			return false
		}
	}
	if len(d.RequiresAny) > 0 {
		any := false
		for _, r := range d.RequiresAny {
			if t.unlocked[r] {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	for _, x := range d.Excludes {
		if t.unlocked[x] {
			return false
		}
	}
	return true
}

// Unlock attempts to unlock the skill. A failed attempt changes nothing
// and reports false; on success it returns a Change describing every
// state transition the unlock caused. Validation happens entirely before
// mutation, so the state never partially applies.
func (t *Tree) Unlock(tag catalog.SkillTag) (*Change, bool) {
	if !t.CanUnlock(tag) {
		return nil, false
	}
	d, _ := t.cat.Lookup(tag)

	ch := &Change{
		Tag:         tag,
		Name:        d.Name,
		Description: t.cat.Describe(tag),
		Branch:      d.Branch,
	}

	// Promotions advance the grade before the debit so the resulting
	// Change already carries the post-promotion grade.
	if g, ok := d.Promotion(); ok && g > t.grade {
		t.grade = g
		ch.Promoted = true
	}

	t.reputation -= d.Cost
	if !t.started[d.Branch] {
		t.started[d.Branch] = true
		ch.BranchStarted = true
	}
	ch.TierFirst = t.firstAtTier(d.Branch, d.Tier)
	t.unlocked[tag] = true
	t.version++

	ch.Grade = t.grade
	ch.ReputationDelta = -d.Cost
	ch.Reputation = t.reputation
	for _, e := range d.Effects {
		if e.IsBoolean() && e.Value > 0 {
			ch.Capabilities = append(ch.Capabilities, e.Type)
		}
	}
	return ch, true
}

// firstAtTier reports whether no skill of the branch at the tier is
// unlocked yet. Called before the new skill is marked unlocked.
func (t *Tree) firstAtTier(b catalog.BranchTag, tier catalog.Tier) bool {
	for _, d := range t.cat.BranchTier(b, tier) {
		if t.unlocked[d.Tag] {
			return false
		}
	}
	return true
}
