package catalog

import "sort"

// Family classifies a branch for exclusivity rules. Foundation branches
// stack freely; a commander may start at most one Doctrine branch and at
// most one Specialization branch.
type Family int

const (
	FamilyFoundation Family = iota
	FamilyDoctrine
	FamilySpecialization
)

func (f Family) String() string {
	switch f {
	case FamilyFoundation:
		return "foundation"
	case FamilyDoctrine:
		return "doctrine"
	case FamilySpecialization:
		return "specialization"
	default:
		return "unknown"
	}
}

// FamilyByName resolves a family filter name (CLI surface).
func FamilyByName(name string) (Family, bool) {
	switch name {
	case "foundation":
		return FamilyFoundation, true
	case "doctrine":
		return FamilyDoctrine, true
	case "specialization":
		return FamilySpecialization, true
	default:
		return FamilyFoundation, false
	}
}

// defaultFamilies is the declarative branch classification. Every branch
// used by a seed definition must appear here; New refuses to build a
// catalog containing an unclassified branch.
var defaultFamilies = map[BranchTag]Family{
	BranchStaffCollege: FamilyFoundation,
	BranchLeadership:   FamilyFoundation,
	BranchLogistics:    FamilyFoundation,
	BranchArmored:      FamilyDoctrine,
	BranchInfantry:     FamilyDoctrine,
	BranchArtillery:    FamilyDoctrine,
	BranchAssault:      FamilySpecialization,
	BranchDefense:      FamilySpecialization,
}

// Classifier answers branch-family queries from a fixed table.
type Classifier struct {
	families map[BranchTag]Family
	byFamily map[Family][]BranchTag
}

// NewClassifier builds a classifier from a branch→family table.
func NewClassifier(table map[BranchTag]Family) *Classifier {
	c := &Classifier{
		families: make(map[BranchTag]Family, len(table)),
		byFamily: make(map[Family][]BranchTag),
	}
	for b, f := range table {
		c.families[b] = f
		c.byFamily[f] = append(c.byFamily[f], b)
	}
	for f := range c.byFamily {
		sort.Slice(c.byFamily[f], func(i, j int) bool {
			return c.byFamily[f][i] < c.byFamily[f][j]
		})
	}
	return c
}

// DefaultClassifier returns a classifier over the default family table.
func DefaultClassifier() *Classifier {
	return NewClassifier(defaultFamilies)
}

// Classify returns the family of a branch. The second result is false
// for branches missing from the table.
func (c *Classifier) Classify(b BranchTag) (Family, bool) {
	f, ok := c.families[b]
	return f, ok
}

// BranchesOf returns all branches of a family in tag order.
func (c *Classifier) BranchesOf(f Family) []BranchTag {
	out := make([]BranchTag, len(c.byFamily[f]))
	copy(out, c.byFamily[f])
	return out
}
