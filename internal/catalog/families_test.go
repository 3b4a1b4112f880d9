package catalog

import "testing"

func TestDefaultClassifier_CoversSeedBranches(t *testing.T) {
	cl := DefaultClassifier()
	for _, d := range Default().All() {
		if _, ok := cl.Classify(d.Branch); !ok {
			t.Errorf("branch %q of skill %q has no family", d.Branch, d.Tag)
		}
	}
}

func TestClassify(t *testing.T) {
	cl := DefaultClassifier()
	tests := []struct {
		branch BranchTag
		want   Family
	}{
		{BranchStaffCollege, FamilyFoundation},
		{BranchLogistics, FamilyFoundation},
		{BranchArmored, FamilyDoctrine},
		{BranchArtillery, FamilyDoctrine},
		{BranchAssault, FamilySpecialization},
		{BranchDefense, FamilySpecialization},
	}
	for _, tt := range tests {
		got, ok := cl.Classify(tt.branch)
		if !ok {
			t.Errorf("Classify(%q): unexpectedly unclassified", tt.branch)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.branch, got, tt.want)
		}
	}
}

func TestClassify_UnknownBranch(t *testing.T) {
	if _, ok := DefaultClassifier().Classify(BranchTag(99)); ok {
		t.Fatal("expected unknown branch to be unclassified")
	}
}

func TestBranchesOf(t *testing.T) {
	cl := DefaultClassifier()
	tests := []struct {
		family Family
		want   int
	}{
		{FamilyFoundation, 3},
		{FamilyDoctrine, 3},
		{FamilySpecialization, 2},
	}
	for _, tt := range tests {
		got := cl.BranchesOf(tt.family)
		if len(got) != tt.want {
			t.Errorf("BranchesOf(%q): got %d branches, want %d", tt.family, len(got), tt.want)
		}
		for _, b := range got {
			f, _ := cl.Classify(b)
			if f != tt.family {
				t.Errorf("BranchesOf(%q) contains %q classified %q", tt.family, b, f)
			}
		}
	}
}
