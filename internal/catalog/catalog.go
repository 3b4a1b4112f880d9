package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is the immutable skill table. Built once, shared read-only by
// every commander's tree; lookups never block and never mutate.
type Catalog struct {
	defs     []Definition
	byTag    map[SkillTag]*Definition
	byBranch map[BranchTag][]Definition
}

// New builds a catalog from definitions, validating against the
// classifier. A non-nil error means the catalog is misconfigured and the
// process should refuse to start.
func New(defs []Definition, classifier *Classifier) (*Catalog, error) {
	if err := validateDefs(defs, classifier); err != nil {
		return nil, err
	}

	c := &Catalog{
		defs:     defs,
		byTag:    make(map[SkillTag]*Definition, len(defs)),
		byBranch: make(map[BranchTag][]Definition),
	}
	for i := range c.defs {
		c.byTag[c.defs[i].Tag] = &c.defs[i]
		c.byBranch[c.defs[i].Branch] = append(c.byBranch[c.defs[i].Branch], c.defs[i])
	}
	for b := range c.byBranch {
		sort.Slice(c.byBranch[b], func(i, j int) bool {
			if c.byBranch[b][i].Tier != c.byBranch[b][j].Tier {
				return c.byBranch[b][i].Tier < c.byBranch[b][j].Tier
			}
			return c.byBranch[b][i].Tag < c.byBranch[b][j].Tag
		})
	}
	return c, nil
}

// Lookup returns the definition for a tag. TagNone never resolves.
func (c *Catalog) Lookup(tag SkillTag) (Definition, bool) {
	d, ok := c.byTag[tag]
	if !ok {
		return Definition{}, false
	}
	return *d, true
}

// Branch returns a branch's definitions ordered by tier.
func (c *Catalog) Branch(b BranchTag) []Definition {
	defs := c.byBranch[b]
	out := make([]Definition, len(defs))
	copy(out, defs)
	return out
}

// BranchTier returns a branch's definitions at one tier.
func (c *Catalog) BranchTier(b BranchTag, tier Tier) []Definition {
	var out []Definition
	for _, d := range c.byBranch[b] {
		if d.Tier == tier {
			out = append(out, d)
		}
	}
	return out
}

// All returns every definition, grouped by branch in display order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, 0, len(c.defs))
	for _, b := range AllBranches() {
		out = append(out, c.byBranch[b]...)
	}
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Describe builds a human-readable summary of a skill: cost, gating and
// effects. Returns "" for unknown tags.
func (c *Catalog) Describe(tag SkillTag) string {
	d, ok := c.Lookup(tag)
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, tier %d)\n", d.Name, BranchDisplayName(d.Branch), d.Tier)
	if d.Description != "" {
		fmt.Fprintf(&b, "%s\n", d.Description)
	}
	fmt.Fprintf(&b, "Cost: %d reputation", d.Cost)
	if d.Grade > GradeJunior {
		fmt.Fprintf(&b, ", requires %s grade", d.Grade)
	}
	b.WriteString("\n")

	if len(d.Requires) > 0 {
		fmt.Fprintf(&b, "Requires: %s\n", joinTagNames(c, d.Requires, ", "))
	}
	if len(d.RequiresAny) > 0 {
		fmt.Fprintf(&b, "Requires any of: %s\n", joinTagNames(c, d.RequiresAny, ", "))
	}
	if len(d.Excludes) > 0 {
		fmt.Fprintf(&b, "Excludes: %s\n", joinTagNames(c, d.Excludes, ", "))
	}

	for _, e := range d.Effects {
		switch e.Type.Kind() {
		case KindAdditive:
			fmt.Fprintf(&b, "  %+g %s\n", e.Value, e.Type)
		case KindMultiplicative:
			fmt.Fprintf(&b, "  ×%g %s\n", e.Value, e.Type)
		case KindCapability:
			fmt.Fprintf(&b, "  grants %s\n", e.Type)
		case KindPromotion:
			g, _ := e.PromotionGrade()
			fmt.Fprintf(&b, "  promotion to %s grade\n", g)
		}
	}
	return b.String()
}

func joinTagNames(c *Catalog, tags []SkillTag, sep string) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		if d, ok := c.Lookup(t); ok {
			names = append(names, d.Name)
		} else {
			names = append(names, t.String())
		}
	}
	return strings.Join(names, sep)
}
