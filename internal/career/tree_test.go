package career

import (
	"reflect"
	"testing"

	"github.com/fieldhq/brevet/internal/catalog"
)

// newTestTree builds a tree over the seed catalog.
func newTestTree(reputation int) *Tree {
	return New(catalog.Default(), catalog.DefaultClassifier(), reputation)
}

// mustUnlock fails the test when an unlock that should succeed doesn't.
func mustUnlock(t *testing.T, tr *Tree, tag catalog.SkillTag) *Change {
	t.Helper()
	ch, ok := tr.Unlock(tag)
	if !ok {
		t.Fatalf("unlock %q failed unexpectedly", tag)
	}
	return ch
}

func TestUnlock_DoctrineSkill(t *testing.T) {
	tr := newTestTree(200)

	ch := mustUnlock(t, tr, catalog.SkillArmoredSpearhead)
	if tr.Reputation() != 150 {
		t.Errorf("got reputation %d, want 150", tr.Reputation())
	}
	if got := tr.Bonus(catalog.BonusHardAttack); got != 5 {
		t.Errorf("got hard-attack bonus %g, want 5", got)
	}
	if !tr.IsUnlocked(catalog.SkillArmoredSpearhead) {
		t.Error("skill should be unlocked")
	}
	if !tr.HasStarted(catalog.BranchArmored) {
		t.Error("armored branch should be started")
	}
	if !ch.BranchStarted {
		t.Error("change should report branch started")
	}
	if !ch.TierFirst {
		t.Error("change should report first unlock at tier 1")
	}
	if ch.ReputationDelta != -50 || ch.Reputation != 150 {
		t.Errorf("change reputation: got (%d, %d), want (-50, 150)", ch.ReputationDelta, ch.Reputation)
	}
}

func TestUnlock_RejectsSecondDoctrineBranch(t *testing.T) {
	tr := newTestTree(200)
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)

	if tr.CanUnlock(catalog.SkillRifleCompanies) {
		t.Error("second doctrine branch should not be eligible")
	}
	if _, ok := tr.Unlock(catalog.SkillRifleCompanies); ok {
		t.Error("unlock of second doctrine branch should fail")
	}
	if tr.Reputation() != 150 {
		t.Errorf("failed unlock changed reputation: got %d, want 150", tr.Reputation())
	}
}

func TestUnlock_Promotion(t *testing.T) {
	tr := newTestTree(150)

	ch := mustUnlock(t, tr, catalog.SkillSeniorBrevet)
	if !ch.Promoted {
		t.Error("change should report promotion")
	}
	if ch.Grade != catalog.GradeSenior {
		t.Errorf("change grade: got %q, want senior", ch.Grade)
	}
	if tr.Grade() != catalog.GradeSenior {
		t.Errorf("got grade %q, want senior", tr.Grade())
	}
	if tr.Reputation() != 50 {
		t.Errorf("got reputation %d, want 50", tr.Reputation())
	}

	// Promotions survive a full respec.
	res := tr.ResetAll()
	if res.Changed() {
		t.Errorf("reset should find nothing to clear, got %+v", res)
	}
	if tr.Grade() != catalog.GradeSenior {
		t.Error("reset must not revert the grade")
	}
	if !tr.IsUnlocked(catalog.SkillSeniorBrevet) {
		t.Error("reset must not relock a promotion skill")
	}
	if tr.Reputation() != 50 {
		t.Errorf("reset must not refund a promotion: got %d, want 50", tr.Reputation())
	}
}

func TestCanUnlock_Gates(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Tree)
		tag   catalog.SkillTag
	}{
		{"none tag", func(*Tree) {}, catalog.TagNone},
		{"unknown tag", func(*Tree) {}, catalog.SkillTag(9999)},
		{"already unlocked", func(tr *Tree) {
			tr.Unlock(catalog.SkillArmoredSpearhead)
		}, catalog.SkillArmoredSpearhead},
		{"insufficient reputation", func(tr *Tree) {
			tr.reputation = 10
		}, catalog.SkillArmoredSpearhead},
		{"grade gate", func(tr *Tree) {
			tr.Unlock(catalog.SkillForwardObservers)
			tr.Unlock(catalog.SkillPrecisionFire)
		}, catalog.SkillShootAndScoot}, // needs senior grade
		{"missing prerequisite", func(*Tree) {}, catalog.SkillTankAces},
		{"missing any-of prerequisite", func(tr *Tree) {
			tr.grade = catalog.GradeSenior
			tr.Unlock(catalog.SkillArmoredSpearhead)
			tr.Unlock(catalog.SkillMobileInfantry)
		}, catalog.SkillOverrunTactics}, // neither tank-aces nor massed-armor
		{"mutual exclusion", func(tr *Tree) {
			tr.Unlock(catalog.SkillArmoredSpearhead)
			tr.Unlock(catalog.SkillTankAces)
		}, catalog.SkillMassedArmor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTree(1000)
			tt.setup(tr)
			if tr.CanUnlock(tt.tag) {
				t.Errorf("CanUnlock(%q) = true, want false", tt.tag)
			}
			if _, ok := tr.Unlock(tt.tag); ok {
				t.Errorf("Unlock(%q) succeeded, want failure", tt.tag)
			}
		})
	}
}

func TestUnlock_AnyOfPrerequisiteSatisfied(t *testing.T) {
	tr := newTestTree(1000)
	tr.grade = catalog.GradeSenior
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)
	mustUnlock(t, tr, catalog.SkillMassedArmor)

	// massed-armor alone satisfies the any-of set.
	ch := mustUnlock(t, tr, catalog.SkillOverrunTactics)
	if len(ch.Capabilities) != 1 || ch.Capabilities[0] != catalog.BonusOverrun {
		t.Errorf("got capabilities %v, want [overrun]", ch.Capabilities)
	}
	if !tr.HasCapability(catalog.BonusOverrun) {
		t.Error("overrun capability should be granted")
	}
}

func TestUnlock_FailedAttemptChangesNothing(t *testing.T) {
	tr := newTestTree(60)
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead) // 10 left

	before := tr.Snapshot()
	attempts := []catalog.SkillTag{
		catalog.TagNone,
		catalog.SkillRifleCompanies, // doctrine exclusivity
		catalog.SkillTankAces,       // cost
		catalog.SkillDeepBattle,     // grade + prerequisites
		catalog.SkillArmoredSpearhead,
	}
	for _, tag := range attempts {
		if _, ok := tr.Unlock(tag); ok {
			t.Fatalf("Unlock(%q) unexpectedly succeeded", tag)
		}
	}
	if !reflect.DeepEqual(before, tr.Snapshot()) {
		t.Errorf("failed unlocks changed state:\nbefore %+v\nafter  %+v", before, tr.Snapshot())
	}
}

func TestUnlock_SpecializationExclusive(t *testing.T) {
	tr := newTestTree(500)
	mustUnlock(t, tr, catalog.SkillShockTactics)

	if tr.CanUnlock(catalog.SkillElasticDefense) {
		t.Error("second specialization branch should not be eligible")
	}
	// A doctrine branch is still fine alongside a specialization.
	if !tr.CanUnlock(catalog.SkillRifleCompanies) {
		t.Error("doctrine branch should remain eligible")
	}
	// Foundation branches always stack.
	if !tr.CanUnlock(catalog.SkillLeadByExample) {
		t.Error("foundation branch should remain eligible")
	}
}

func TestBranchAvailable(t *testing.T) {
	tr := newTestTree(500)
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)

	if !tr.BranchAvailable(catalog.BranchArmored) {
		t.Error("the started doctrine branch itself stays available")
	}
	if tr.BranchAvailable(catalog.BranchInfantry) {
		t.Error("a sibling doctrine branch should be unavailable")
	}
	if !tr.BranchAvailable(catalog.BranchLogistics) {
		t.Error("foundation branches are always available")
	}
	if !tr.BranchAvailable(catalog.BranchAssault) {
		t.Error("specializations are unconstrained by doctrine choice")
	}
	if tr.BranchAvailable(catalog.BranchTag(99)) {
		t.Error("unclassified branches are never available")
	}
}

func TestTierFirst(t *testing.T) {
	tr := newTestTree(500)
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)

	ch := mustUnlock(t, tr, catalog.SkillTankAces)
	if !ch.TierFirst {
		t.Error("first tier-2 unlock should report TierFirst")
	}
	ch = mustUnlock(t, tr, catalog.SkillMobileInfantry)
	if ch.TierFirst {
		t.Error("second tier-2 unlock should not report TierFirst")
	}
}

func TestConservationLaw(t *testing.T) {
	const initial = 1000
	tr := newTestTree(initial)

	var spent, refunded int
	unlock := func(tag catalog.SkillTag) {
		t.Helper()
		ch := mustUnlock(t, tr, tag)
		spent += -ch.ReputationDelta
	}

	unlock(catalog.SkillSeniorBrevet)
	unlock(catalog.SkillArmoredSpearhead)
	unlock(catalog.SkillTankAces)
	unlock(catalog.SkillOverrunTactics)
	unlock(catalog.SkillSupplyLines)
	unlock(catalog.SkillShockTactics)

	refunded += tr.ResetBranch(catalog.BranchAssault).Refund
	unlock(catalog.SkillElasticDefense)
	refunded += tr.ResetAllExceptFoundation().Refund
	unlock(catalog.SkillRifleCompanies)
	refunded += tr.ResetAll().Refund

	if got := tr.Reputation(); got != initial+refunded-spent {
		t.Errorf("conservation violated: got %d, want %d (spent %d, refunded %d)",
			got, initial+refunded-spent, spent, refunded)
	}
}

func TestExclusivityInvariantUnderResets(t *testing.T) {
	tr := newTestTree(2000)
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)
	tr.ResetBranch(catalog.BranchArmored)
	mustUnlock(t, tr, catalog.SkillRifleCompanies) // branch freed by the reset
	mustUnlock(t, tr, catalog.SkillShockTactics)
	tr.ResetAll()
	mustUnlock(t, tr, catalog.SkillForwardObservers)

	cl := catalog.DefaultClassifier()
	counts := make(map[catalog.Family]int)
	for _, b := range tr.StartedBranches() {
		if f, ok := cl.Classify(b); ok && f != catalog.FamilyFoundation {
			counts[f]++
		}
	}
	if counts[catalog.FamilyDoctrine] > 1 {
		t.Errorf("started %d doctrine branches", counts[catalog.FamilyDoctrine])
	}
	if counts[catalog.FamilySpecialization] > 1 {
		t.Errorf("started %d specialization branches", counts[catalog.FamilySpecialization])
	}
}
