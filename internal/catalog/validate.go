package catalog

import (
	"fmt"
	"strings"
)

// validateDefs performs all structural checks on a definition set.
// Returns a combined error describing every problem found, or nil.
func validateDefs(defs []Definition, classifier *Classifier) error {
	var errs []string

	tagSet := make(map[SkillTag]bool, len(defs))
	branchSet := make(map[BranchTag]bool)

	for _, d := range defs {
		if d.Tag == TagNone {
			errs = append(errs, fmt.Sprintf("skill %q uses the reserved none tag", d.Name))
			continue
		}
		if tagSet[d.Tag] {
			errs = append(errs, fmt.Sprintf("duplicate skill tag: %q", d.Tag))
		}
		tagSet[d.Tag] = true
		branchSet[d.Branch] = true
	}

	// References must resolve inside the catalog; checked here once so
	// unlock-time code can trust every edge.
	for _, d := range defs {
		checkRefs := func(kind string, refs []SkillTag) {
			for _, r := range refs {
				if !tagSet[r] {
					errs = append(errs, fmt.Sprintf("skill %q references undefined %s %q", d.Tag, kind, r))
				}
				if r == d.Tag {
					errs = append(errs, fmt.Sprintf("skill %q lists itself as a %s", d.Tag, kind))
				}
			}
		}
		checkRefs("prerequisite", d.Requires)
		checkRefs("prerequisite", d.RequiresAny)
		checkRefs("exclusion", d.Excludes)
	}

	for _, d := range defs {
		if d.Cost < 0 {
			errs = append(errs, fmt.Sprintf("skill %q has negative cost %d", d.Tag, d.Cost))
		}
		if d.Tier < Tier1 || d.Tier > Tier4 {
			errs = append(errs, fmt.Sprintf("skill %q has tier %d outside 1-4", d.Tag, d.Tier))
		}
		if d.Branch == BranchNone {
			errs = append(errs, fmt.Sprintf("skill %q has no branch", d.Tag))
		}
	}

	// An unclassified branch is a configuration error, not a default.
	for b := range branchSet {
		if b == BranchNone {
			continue
		}
		if _, ok := classifier.Classify(b); !ok {
			errs = append(errs, fmt.Sprintf("branch %q has no family classification", b))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
