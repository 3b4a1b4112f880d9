package career

import (
	"math"
	"testing"

	"github.com/fieldhq/brevet/internal/catalog"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBonus_AdditiveAcrossBranches(t *testing.T) {
	tr := newTestTree(1000)
	mustUnlock(t, tr, catalog.SkillRifleCompanies)   // soft-attack +4
	mustUnlock(t, tr, catalog.SkillStormTactics)     // soft-attack +4, initiative +1
	mustUnlock(t, tr, catalog.SkillLeadByExample)    // initiative +1

	if got := tr.Bonus(catalog.BonusSoftAttack); !almostEqual(got, 8) {
		t.Errorf("soft-attack: got %g, want 8", got)
	}
	if got := tr.Bonus(catalog.BonusInitiative); !almostEqual(got, 2) {
		t.Errorf("initiative: got %g, want 2", got)
	}
	if got := tr.Bonus(catalog.BonusHardAttack); got != 0 {
		t.Errorf("hard-attack: got %g, want 0", got)
	}
}

func TestBonus_MultiplicativeCostFactors(t *testing.T) {
	tr := newTestTree(1000)

	// No logistics skills: the factor is the identity.
	if got := tr.Bonus(catalog.BonusSupplyCost); !almostEqual(got, 1.0) {
		t.Errorf("supply-cost baseline: got %g, want 1", got)
	}

	mustUnlock(t, tr, catalog.SkillSupplyLines)  // ×0.9
	mustUnlock(t, tr, catalog.SkillDepotNetwork) // ×0.85

	if got := tr.Bonus(catalog.BonusSupplyCost); !almostEqual(got, 0.765) {
		t.Errorf("supply-cost: got %g, want 0.765", got)
	}
}

func TestBonus_MultiplicativeFloor(t *testing.T) {
	// A reduced catalog with cost factors aggressive enough to cross
	// the floor; the seed never gets that low.
	defs := []catalog.Definition{
		{Tag: catalog.SkillSupplyLines, Name: "Deep Cut A", Cost: 10,
			Branch: catalog.BranchLogistics, Tier: catalog.Tier1,
			Effects: []catalog.Effect{{Type: catalog.BonusSupplyCost, Value: 0.2}}},
		{Tag: catalog.SkillDepotNetwork, Name: "Deep Cut B", Cost: 10,
			Branch: catalog.BranchLogistics, Tier: catalog.Tier2,
			Effects: []catalog.Effect{{Type: catalog.BonusSupplyCost, Value: 0.2}}},
	}
	cl := catalog.NewClassifier(map[catalog.BranchTag]catalog.Family{
		catalog.BranchLogistics: catalog.FamilyFoundation,
	})
	cat, err := catalog.New(defs, cl)
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}

	tr := New(cat, cl, 100)
	mustUnlock(t, tr, catalog.SkillSupplyLines)
	mustUnlock(t, tr, catalog.SkillDepotNetwork)

	// 0.2 × 0.2 = 0.04, floored at 0.1.
	if got := tr.Bonus(catalog.BonusSupplyCost); !almostEqual(got, 0.1) {
		t.Errorf("floored supply-cost: got %g, want 0.1", got)
	}
}

func TestBonusValue_OnlyBooleanFilter(t *testing.T) {
	tr := newTestTree(1000)
	tr.grade = catalog.GradeSenior
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)
	mustUnlock(t, tr, catalog.SkillTankAces)
	mustUnlock(t, tr, catalog.SkillOverrunTactics)

	if got := tr.BonusValue(catalog.BonusHardAttack, true); got != 0 {
		t.Errorf("onlyBoolean hard-attack: got %g, want 0", got)
	}
	if got := tr.BonusValue(catalog.BonusOverrun, true); !almostEqual(got, 1) {
		t.Errorf("onlyBoolean overrun: got %g, want 1", got)
	}
}

func TestHasCapability(t *testing.T) {
	tr := newTestTree(1000)
	tr.grade = catalog.GradeSenior

	if tr.HasCapability(catalog.BonusShootAndScoot) {
		t.Error("capability granted before any unlock")
	}

	mustUnlock(t, tr, catalog.SkillForwardObservers)
	mustUnlock(t, tr, catalog.SkillPrecisionFire)
	mustUnlock(t, tr, catalog.SkillShootAndScoot)

	if !tr.HasCapability(catalog.BonusShootAndScoot) {
		t.Error("shoot-and-scoot capability should be granted")
	}
	if tr.HasCapability(catalog.BonusEntrench) {
		t.Error("entrench capability should not be granted")
	}
}

// TestCacheCoherence checks that memoized reads always match a fresh
// fold over the unlocked set, across interleaved reads and mutations.
func TestCacheCoherence(t *testing.T) {
	tr := newTestTree(2000)
	tr.grade = catalog.GradeSenior

	check := func(stage string) {
		t.Helper()
		for bt := catalog.BonusHardAttack; bt <= catalog.BonusTopPromotion; bt++ {
			cached := tr.BonusValue(bt, false)
			fresh := tr.computeBonus(bt, false)
			if !almostEqual(cached, fresh) {
				t.Errorf("%s: %s cached %g != fresh %g", stage, bt, cached, fresh)
			}
		}
	}

	check("empty")
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)
	check("after first unlock")
	tr.Bonus(catalog.BonusHardAttack) // warm the cache
	mustUnlock(t, tr, catalog.SkillTankAces)
	check("after unlock with warm cache")
	tr.ResetBranch(catalog.BranchArmored)
	check("after branch reset")
	mustUnlock(t, tr, catalog.SkillSupplyLines)
	check("after multiplicative unlock")
	tr.ResetAll()
	check("after full reset")
}

func TestBonus_ReadsDoNotMutate(t *testing.T) {
	tr := newTestTree(500)
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)

	before := tr.Snapshot()
	for bt := catalog.BonusHardAttack; bt <= catalog.BonusTopPromotion; bt++ {
		tr.BonusValue(bt, false)
		tr.BonusValue(bt, true)
		tr.HasCapability(bt)
	}
	after := tr.Snapshot()
	if before.Reputation != after.Reputation ||
		len(before.Skills) != len(after.Skills) ||
		len(before.Branches) != len(after.Branches) {
		t.Errorf("aggregator reads mutated state:\nbefore %+v\nafter  %+v", before, after)
	}
}
