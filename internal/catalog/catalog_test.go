package catalog

import (
	"strings"
	"testing"
)

func TestLookup_Exists(t *testing.T) {
	d, ok := Default().Lookup(SkillArmoredSpearhead)
	if !ok {
		t.Fatal("expected armored-spearhead to resolve")
	}
	if d.Name != "Armored Spearhead" {
		t.Errorf("got name %q, want %q", d.Name, "Armored Spearhead")
	}
	if d.Branch != BranchArmored {
		t.Errorf("got branch %q, want %q", d.Branch, BranchArmored)
	}
	if d.Cost != 50 {
		t.Errorf("got cost %d, want 50", d.Cost)
	}
	if d.Tier != Tier1 {
		t.Errorf("got tier %d, want %d", d.Tier, Tier1)
	}
}

func TestLookup_NoneNeverResolves(t *testing.T) {
	if _, ok := Default().Lookup(TagNone); ok {
		t.Fatal("the reserved none tag must never resolve")
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Default().Lookup(SkillTag(9999)); ok {
		t.Fatal("expected unknown tag to miss")
	}
}

func TestDefault_Counts(t *testing.T) {
	c := Default()
	if c.Len() != 34 {
		t.Errorf("got %d skills, want 34", c.Len())
	}

	tests := []struct {
		branch BranchTag
		want   int
	}{
		{BranchStaffCollege, 2},
		{BranchLeadership, 4},
		{BranchLogistics, 4},
		{BranchArmored, 6},
		{BranchInfantry, 6},
		{BranchArtillery, 6},
		{BranchAssault, 3},
		{BranchDefense, 3},
	}
	for _, tt := range tests {
		if got := len(c.Branch(tt.branch)); got != tt.want {
			t.Errorf("Branch(%q): got %d skills, want %d", tt.branch, got, tt.want)
		}
	}
}

func TestBranch_OrderedByTier(t *testing.T) {
	c := Default()
	for _, b := range AllBranches() {
		defs := c.Branch(b)
		for i := 1; i < len(defs); i++ {
			if defs[i].Tier < defs[i-1].Tier {
				t.Errorf("Branch(%q): %q (tier %d) appears after %q (tier %d)",
					b, defs[i].Tag, defs[i].Tier, defs[i-1].Tag, defs[i-1].Tier)
			}
		}
	}
}

func TestBranchTier(t *testing.T) {
	defs := Default().BranchTier(BranchArmored, Tier2)
	if len(defs) != 3 {
		t.Fatalf("got %d tier-2 armored skills, want 3", len(defs))
	}
	for _, d := range defs {
		if d.Tier != Tier2 {
			t.Errorf("skill %q has tier %d, want %d", d.Tag, d.Tier, Tier2)
		}
	}
}

func TestAll_CoversEveryBranch(t *testing.T) {
	c := Default()
	if got := len(c.All()); got != c.Len() {
		t.Errorf("All() returned %d defs, want %d", got, c.Len())
	}
}

func TestDescribe(t *testing.T) {
	c := Default()
	desc := c.Describe(SkillOverrunTactics)

	for _, want := range []string{
		"Overrun Tactics",
		"Cost: 150 reputation",
		"requires senior grade",
		"Armored Spearhead",           // all-of prerequisite
		"Requires any of: Tank Aces",  // any-of prerequisite
		"grants overrun",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("Describe missing %q in:\n%s", want, desc)
		}
	}
}

func TestDescribe_Promotion(t *testing.T) {
	desc := Default().Describe(SkillSeniorBrevet)
	if !strings.Contains(desc, "promotion to senior grade") {
		t.Errorf("Describe missing promotion line in:\n%s", desc)
	}
}

func TestDescribe_Unknown(t *testing.T) {
	if desc := Default().Describe(SkillTag(9999)); desc != "" {
		t.Errorf("expected empty description, got %q", desc)
	}
}
