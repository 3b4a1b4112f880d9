package career

import (
	"slices"
	"testing"

	"github.com/fieldhq/brevet/internal/catalog"
	"github.com/fieldhq/brevet/internal/store"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	tr := newTestTree(500)
	mustUnlock(t, tr, catalog.SkillSeniorBrevet)
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)
	mustUnlock(t, tr, catalog.SkillTankAces)
	mustUnlock(t, tr, catalog.SkillSupplyLines)

	data := tr.Snapshot()
	restored, warnings := Restore(catalog.Default(), catalog.DefaultClassifier(), data)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if restored.Reputation() != tr.Reputation() {
		t.Errorf("reputation: got %d, want %d", restored.Reputation(), tr.Reputation())
	}
	if restored.Grade() != tr.Grade() {
		t.Errorf("grade: got %q, want %q", restored.Grade(), tr.Grade())
	}
	if !slices.Equal(restored.Unlocked(), tr.Unlocked()) {
		t.Errorf("unlocked: got %v, want %v", restored.Unlocked(), tr.Unlocked())
	}
	if !slices.Equal(restored.StartedBranches(), tr.StartedBranches()) {
		t.Errorf("branches: got %v, want %v", restored.StartedBranches(), tr.StartedBranches())
	}
	if got, want := restored.Bonus(catalog.BonusHardAttack), tr.Bonus(catalog.BonusHardAttack); got != want {
		t.Errorf("hard-attack after restore: got %g, want %g", got, want)
	}
}

func TestSnapshot_Shape(t *testing.T) {
	tr := newTestTree(200)
	mustUnlock(t, tr, catalog.SkillArmoredSpearhead)

	data := tr.Snapshot()
	if data.Version != snapshotVersion {
		t.Errorf("version: got %d, want %d", data.Version, snapshotVersion)
	}
	if data.Grade != "junior" {
		t.Errorf("grade: got %q, want junior", data.Grade)
	}
	if len(data.Skills) != 1 {
		t.Fatalf("got %d skill records, want 1", len(data.Skills))
	}
	rec := data.Skills[0]
	if rec.Tag != "armored-spearhead" || rec.Branch != "armored-doctrine" {
		t.Errorf("record names: got %+v", rec)
	}
	if rec.TagValue != int(catalog.SkillArmoredSpearhead) {
		t.Errorf("record value: got %d, want %d", rec.TagValue, int(catalog.SkillArmoredSpearhead))
	}
}

func TestRestore_SkipsUnknownSkill(t *testing.T) {
	data := store.CareerData{
		Version:    snapshotVersion,
		Reputation: 80,
		Grade:      "junior",
		Branches:   []string{"armored-doctrine"},
		Skills: []store.SkillRecordData{
			{Branch: "armored-doctrine", Tag: "armored-spearhead", TagValue: int(catalog.SkillArmoredSpearhead)},
			{Branch: "naval-doctrine", Tag: "submarine-wolfpacks", TagValue: 9999},
		},
	}

	tr, warnings := Restore(catalog.Default(), catalog.DefaultClassifier(), data)
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if warnings[0].Field != "skill" {
		t.Errorf("warning field: got %q, want skill", warnings[0].Field)
	}
	if !tr.IsUnlocked(catalog.SkillArmoredSpearhead) {
		t.Error("the resolvable skill must still load")
	}
	if tr.Reputation() != 80 {
		t.Errorf("reputation: got %d, want 80", tr.Reputation())
	}
}

func TestRestore_FallsBackToTagValue(t *testing.T) {
	// A renamed tag: the stored name is stale but the value still maps.
	data := store.CareerData{
		Version:    snapshotVersion,
		Reputation: 0,
		Grade:      "junior",
		Skills: []store.SkillRecordData{
			{Branch: "armored-doctrine", Tag: "panzer-spearhead", TagValue: int(catalog.SkillArmoredSpearhead)},
		},
	}

	tr, warnings := Restore(catalog.Default(), catalog.DefaultClassifier(), data)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if !tr.IsUnlocked(catalog.SkillArmoredSpearhead) {
		t.Error("skill should resolve via the integer fallback")
	}
	if !tr.HasStarted(catalog.BranchArmored) {
		t.Error("the resolved skill's branch must be started")
	}
}

func TestRestore_UnknownGradeAndBranch(t *testing.T) {
	data := store.CareerData{
		Version:    snapshotVersion,
		Reputation: 300,
		Grade:      "generalissimo",
		Branches:   []string{"logistics", "naval-doctrine"},
	}

	tr, warnings := Restore(catalog.Default(), catalog.DefaultClassifier(), data)
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
	if tr.Grade() != catalog.GradeJunior {
		t.Errorf("grade falls back to junior, got %q", tr.Grade())
	}
	if !tr.HasStarted(catalog.BranchLogistics) {
		t.Error("the known branch must still load")
	}
	if tr.Reputation() != 300 {
		t.Errorf("reputation: got %d, want 300", tr.Reputation())
	}
}

func TestRestore_TrustedDataBypassesValidation(t *testing.T) {
	// A snapshot can hold skills the current balance could never buy;
	// restore applies them without re-running eligibility.
	data := store.CareerData{
		Version:    snapshotVersion,
		Reputation: 0,
		Grade:      "top",
		Skills: []store.SkillRecordData{
			{Branch: "armored-doctrine", Tag: "deep-battle", TagValue: int(catalog.SkillDeepBattle)},
		},
	}

	tr, warnings := Restore(catalog.Default(), catalog.DefaultClassifier(), data)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if !tr.IsUnlocked(catalog.SkillDeepBattle) {
		t.Error("trusted restore must not re-check prerequisites")
	}
	if tr.Grade() != catalog.GradeTop {
		t.Errorf("grade: got %q, want top", tr.Grade())
	}
}
