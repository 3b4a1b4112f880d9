package career

import (
	"slices"
	"testing"

	"github.com/fieldhq/brevet/internal/catalog"
)

func TestResetBranch(t *testing.T) {
	tr := newTestTree(200)
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)

	res := tr.ResetBranch(catalog.BranchArmored)
	if res.Refund != 50 {
		t.Errorf("got refund %d, want 50", res.Refund)
	}
	if !res.Changed() {
		t.Error("reset should report a change")
	}
	if !slices.Contains(res.ClearedBranches, catalog.BranchArmored) {
		t.Errorf("cleared branches %v should include armored", res.ClearedBranches)
	}
	if tr.Reputation() != 200 {
		t.Errorf("got reputation %d, want 200", tr.Reputation())
	}
	if got := tr.Bonus(catalog.BonusHardAttack); got != 0 {
		t.Errorf("got hard-attack bonus %g, want 0", got)
	}
	if tr.HasStarted(catalog.BranchArmored) {
		t.Error("armored branch should no longer be started")
	}
}

func TestResetBranch_RejectsPromotionBranch(t *testing.T) {
	tr := newTestTree(200)
	mustUnlock(t, tr, catalog.SkillSeniorBrevet)

	res := tr.ResetBranch(catalog.BranchStaffCollege)
	if res.Changed() || res.Refund != 0 {
		t.Errorf("promotion branch reset should be a no-op, got %+v", res)
	}
	if !tr.IsUnlocked(catalog.SkillSeniorBrevet) {
		t.Error("promotion skill must stay unlocked")
	}
	if tr.Grade() != catalog.GradeSenior {
		t.Error("grade must not change")
	}
}

func TestResetBranch_NotStarted(t *testing.T) {
	tr := newTestTree(200)
	if res := tr.ResetBranch(catalog.BranchArmored); res.Changed() {
		t.Errorf("reset of an untouched branch should be a no-op, got %+v", res)
	}
	if res := tr.ResetBranch(catalog.BranchNone); res.Changed() {
		t.Errorf("reset of the none branch should be a no-op, got %+v", res)
	}
}

func TestResetAll_KeepsPromotions(t *testing.T) {
	tr := newTestTree(500)
	mustUnlock(t, tr, catalog.SkillSeniorBrevet)     // 100, kept
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead) // 50
	mustUnlock(t, tr, catalog.SkillTankAces)         // 80
	mustUnlock(t, tr, catalog.SkillSupplyLines)      // 40

	res := tr.ResetAll()
	if res.Refund != 170 {
		t.Errorf("got refund %d, want 170", res.Refund)
	}
	if tr.Reputation() != 400 {
		t.Errorf("got reputation %d, want 400", tr.Reputation())
	}
	if tr.Grade() != catalog.GradeSenior {
		t.Error("grade must survive the reset")
	}
	if !tr.IsUnlocked(catalog.SkillSeniorBrevet) {
		t.Error("promotion skill must survive the reset")
	}
	if !tr.HasStarted(catalog.BranchStaffCollege) {
		t.Error("the branch holding the promotion stays started")
	}
	for _, b := range []catalog.BranchTag{catalog.BranchArmored, catalog.BranchLogistics} {
		if tr.HasStarted(b) {
			t.Errorf("branch %q should be cleared", b)
		}
	}

	// The freed reputation can re-enter a different doctrine.
	if !tr.CanUnlock(catalog.SkillRifleCompanies) {
		t.Error("a fresh doctrine branch should be eligible after the reset")
	}
}

func TestResetAllExceptFoundation(t *testing.T) {
	tr := newTestTree(1000)
	mustUnlock(t, tr, catalog.SkillLeadByExample)    // foundation, 40
	mustUnlock(t, tr, catalog.SkillSupplyLines)      // foundation, 40
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead) // doctrine, 50
	mustUnlock(t, tr, catalog.SkillShockTactics)     // specialization, 60

	res := tr.ResetAllExceptFoundation()
	if res.Refund != 110 {
		t.Errorf("got refund %d, want 110", res.Refund)
	}
	wantCleared := []catalog.SkillTag{catalog.SkillArmoredSpearhead, catalog.SkillShockTactics}
	if !slices.Equal(res.Cleared, wantCleared) {
		t.Errorf("got cleared %v, want %v", res.Cleared, wantCleared)
	}
	if !tr.IsUnlocked(catalog.SkillLeadByExample) || !tr.IsUnlocked(catalog.SkillSupplyLines) {
		t.Error("foundation skills must survive")
	}
	if !tr.HasStarted(catalog.BranchLeadership) || !tr.HasStarted(catalog.BranchLogistics) {
		t.Error("foundation branches must stay started")
	}
	if tr.HasStarted(catalog.BranchArmored) || tr.HasStarted(catalog.BranchAssault) {
		t.Error("doctrine and specialization branches should be cleared")
	}
}

func TestReset_ZeroRefundStillReportsChange(t *testing.T) {
	// A free gating node refunds nothing but still clears.
	defs := []catalog.Definition{
		{Tag: catalog.SkillShockTactics, Name: "Entry", Cost: 0,
			Branch: catalog.BranchAssault, Tier: catalog.Tier1},
	}
	cl := catalog.NewClassifier(map[catalog.BranchTag]catalog.Family{
		catalog.BranchAssault: catalog.FamilySpecialization,
	})
	cat, err := catalog.New(defs, cl)
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}

	tr := New(cat, cl, 10)
	mustUnlock(t, tr, catalog.SkillShockTactics)

	res := tr.ResetAll()
	if !res.Changed() {
		t.Error("clearing a free skill is still a change")
	}
	if res.Refund != 0 {
		t.Errorf("got refund %d, want 0", res.Refund)
	}
}
