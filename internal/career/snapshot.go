package career

import (
	"fmt"

	"github.com/fieldhq/brevet/internal/catalog"
	"github.com/fieldhq/brevet/internal/store"
)

// snapshotVersion is bumped when the CareerData layout changes shape.
const snapshotVersion = 1

// Snapshot converts the tree to its flat serializable form.
func (t *Tree) Snapshot() store.CareerData {
	data := store.CareerData{
		Version:    snapshotVersion,
		Reputation: t.reputation,
		Grade:      t.grade.String(),
	}
	for _, b := range t.StartedBranches() {
		data.Branches = append(data.Branches, b.String())
	}
	for _, tag := range t.Unlocked() {
		rec := store.SkillRecordData{
			Tag:      tag.String(),
			TagValue: int(tag),
		}
		if d, ok := t.cat.Lookup(tag); ok {
			rec.Branch = d.Branch.String()
		}
		data.Skills = append(data.Skills, rec)
	}
	return data
}

// RestoreWarning reports one snapshot entry that could not be applied.
// Warnings are informational: the rest of the snapshot still loads.
type RestoreWarning struct {
	Field  string // "grade", "branch" or "skill"
	Value  string
	Reason string
}

func (w RestoreWarning) String() string {
	return fmt.Sprintf("%s %q skipped: %s", w.Field, w.Value, w.Reason)
}

// Restore rebuilds a tree from snapshot data. The data is trusted:
// reputation and grade are set directly and skills are force-marked
// unlocked without re-running eligibility checks. Entries that no longer
// resolve against the current catalog (a skill removed in a newer
// version, an unknown branch name) are skipped with a warning — catalog
// evolution must never corrupt a load.
func Restore(cat *catalog.Catalog, families *catalog.Classifier, data store.CareerData) (*Tree, []RestoreWarning) {
	t := New(cat, families, data.Reputation)

	var warnings []RestoreWarning

	if g, ok := catalog.GradeByName(data.Grade); ok {
		t.grade = g
	} else if data.Grade != "" {
		warnings = append(warnings, RestoreWarning{
			Field: "grade", Value: data.Grade, Reason: "unknown grade name",
		})
	}

	for _, name := range data.Branches {
		b, ok := catalog.BranchByName(name)
		if !ok {
			warnings = append(warnings, RestoreWarning{
				Field: "branch", Value: name, Reason: "unknown branch name",
			})
			continue
		}
		t.started[b] = true
	}

	for _, rec := range data.Skills {
		tag, ok := catalog.TagByName(rec.Tag)
		if !ok {
			// Renamed tag: fall back to the stored integer value.
			tag, ok = catalog.TagByValue(rec.TagValue)
		}
		if !ok {
			warnings = append(warnings, RestoreWarning{
				Field: "skill", Value: rec.Tag, Reason: "tag does not resolve",
			})
			continue
		}
		d, defined := cat.Lookup(tag)
		if !defined {
			warnings = append(warnings, RestoreWarning{
				Field: "skill", Value: rec.Tag, Reason: "not in current catalog",
			})
			continue
		}
		t.unlocked[tag] = true
		t.started[d.Branch] = true
	}

	return t, warnings
}
