package catalog

import "testing"

func TestTagNames_RoundTrip(t *testing.T) {
	for tag, name := range tagNames {
		if tag == TagNone {
			continue
		}
		got, ok := TagByName(name)
		if !ok || got != tag {
			t.Errorf("TagByName(%q) = (%v, %v), want (%v, true)", name, got, ok, tag)
		}
		got, ok = TagByValue(int(tag))
		if !ok || got != tag {
			t.Errorf("TagByValue(%d) = (%v, %v), want (%v, true)", int(tag), got, ok, tag)
		}
	}
}

func TestTagByName_ReservedAndUnknown(t *testing.T) {
	if _, ok := TagByName("none"); ok {
		t.Error("the reserved none name must not resolve")
	}
	if _, ok := TagByName("time-travel"); ok {
		t.Error("unknown names must not resolve")
	}
	if _, ok := TagByValue(0); ok {
		t.Error("the reserved zero value must not resolve")
	}
	if _, ok := TagByValue(-3); ok {
		t.Error("out-of-range values must not resolve")
	}
}

func TestBranchByName(t *testing.T) {
	b, ok := BranchByName("armored-doctrine")
	if !ok || b != BranchArmored {
		t.Errorf("BranchByName(armored-doctrine) = (%v, %v)", b, ok)
	}
	if _, ok := BranchByName("none"); ok {
		t.Error("the reserved none branch must not resolve")
	}
	if _, ok := BranchByName("naval-doctrine"); ok {
		t.Error("unknown branches must not resolve")
	}
}

func TestSeedTagsAllNamed(t *testing.T) {
	for _, d := range Default().All() {
		if _, ok := tagNames[d.Tag]; !ok {
			t.Errorf("seed skill %d has no external name", int(d.Tag))
		}
	}
}

func TestGradeByName(t *testing.T) {
	tests := []struct {
		name string
		want Grade
		ok   bool
	}{
		{"junior", GradeJunior, true},
		{"senior", GradeSenior, true},
		{"top", GradeTop, true},
		{"field-marshal", GradeJunior, false},
	}
	for _, tt := range tests {
		got, ok := GradeByName(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("GradeByName(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
