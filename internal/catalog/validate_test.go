package catalog

import (
	"strings"
	"testing"
)

func TestValidate_SeedCatalogPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

// testClassifier classifies two synthetic branches for validation tests.
func testClassifier() *Classifier {
	return NewClassifier(map[BranchTag]Family{
		BranchArmored:  FamilyDoctrine,
		BranchInfantry: FamilyDoctrine,
	})
}

func TestValidateDefs_DetectsDuplicateTag(t *testing.T) {
	defs := []Definition{
		{Tag: SkillTankAces, Name: "a", Branch: BranchArmored, Tier: Tier1},
		{Tag: SkillTankAces, Name: "b", Branch: BranchArmored, Tier: Tier1},
	}
	err := validateDefs(defs, testClassifier())
	if err == nil {
		t.Fatal("expected error for duplicate tag, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateDefs_DetectsDanglingPrerequisite(t *testing.T) {
	defs := []Definition{
		{Tag: SkillTankAces, Name: "a", Branch: BranchArmored, Tier: Tier1,
			Requires: []SkillTag{SkillGrandBattery}},
	}
	err := validateDefs(defs, testClassifier())
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "undefined prerequisite") {
		t.Errorf("error should mention the undefined prerequisite, got: %v", err)
	}
}

func TestValidateDefs_DetectsDanglingExclusion(t *testing.T) {
	defs := []Definition{
		{Tag: SkillTankAces, Name: "a", Branch: BranchArmored, Tier: Tier1,
			Excludes: []SkillTag{SkillGrandBattery}},
	}
	err := validateDefs(defs, testClassifier())
	if err == nil {
		t.Fatal("expected error for dangling exclusion, got nil")
	}
	if !strings.Contains(err.Error(), "undefined exclusion") {
		t.Errorf("error should mention the undefined exclusion, got: %v", err)
	}
}

func TestValidateDefs_DetectsSelfReference(t *testing.T) {
	defs := []Definition{
		{Tag: SkillTankAces, Name: "a", Branch: BranchArmored, Tier: Tier1,
			Requires: []SkillTag{SkillTankAces}},
	}
	err := validateDefs(defs, testClassifier())
	if err == nil {
		t.Fatal("expected error for self reference, got nil")
	}
	if !strings.Contains(err.Error(), "itself") {
		t.Errorf("error should mention self reference, got: %v", err)
	}
}

func TestValidateDefs_DetectsReservedNoneTag(t *testing.T) {
	defs := []Definition{
		{Tag: TagNone, Name: "ghost", Branch: BranchArmored, Tier: Tier1},
	}
	err := validateDefs(defs, testClassifier())
	if err == nil {
		t.Fatal("expected error for reserved tag, got nil")
	}
	if !strings.Contains(err.Error(), "reserved") {
		t.Errorf("error should mention the reserved tag, got: %v", err)
	}
}

func TestValidateDefs_DetectsUnclassifiedBranch(t *testing.T) {
	defs := []Definition{
		{Tag: SkillShockTactics, Name: "a", Branch: BranchAssault, Tier: Tier1},
	}
	err := validateDefs(defs, testClassifier())
	if err == nil {
		t.Fatal("expected error for unclassified branch, got nil")
	}
	if !strings.Contains(err.Error(), "no family classification") {
		t.Errorf("error should mention the missing classification, got: %v", err)
	}
}

func TestValidateDefs_DetectsBadCostAndTier(t *testing.T) {
	defs := []Definition{
		{Tag: SkillTankAces, Name: "a", Branch: BranchArmored, Tier: Tier(7), Cost: -5},
	}
	err := validateDefs(defs, testClassifier())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "negative cost") {
		t.Errorf("error should mention the negative cost, got: %v", err)
	}
	if !strings.Contains(err.Error(), "outside 1-4") {
		t.Errorf("error should mention the tier range, got: %v", err)
	}
}

func TestValidateDefs_ReportsAllProblems(t *testing.T) {
	defs := []Definition{
		{Tag: SkillTankAces, Name: "a", Branch: BranchArmored, Tier: Tier1},
		{Tag: SkillTankAces, Name: "b", Branch: BranchAssault, Tier: Tier1,
			Requires: []SkillTag{SkillGrandBattery}},
	}
	err := validateDefs(defs, testClassifier())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"duplicate", "undefined prerequisite", "no family classification"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("combined error should mention %q, got: %v", want, err)
		}
	}
}
