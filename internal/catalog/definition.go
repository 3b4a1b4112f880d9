package catalog

// Definition is one immutable skill entry. A definition with no effects
// is a pure gating node (e.g. a branch's entry skill).
type Definition struct {
	Tag         SkillTag
	Name        string
	Cost        int // reputation debited on unlock, refunded on respec
	Branch      BranchTag
	Tier        Tier
	Description string
	Grade       Grade // minimum grade required to unlock

	// Requires must all be unlocked; RequiresAny (when non-empty) needs
	// at least one unlocked. Excludes block the unlock while unlocked.
	Requires    []SkillTag
	RequiresAny []SkillTag
	Excludes    []SkillTag

	Effects []Effect
}

// Promotion returns the grade this skill promotes to, if any effect is a
// promotion milestone.
func (d Definition) Promotion() (Grade, bool) {
	for _, e := range d.Effects {
		if g, ok := e.PromotionGrade(); ok {
			return g, true
		}
	}
	return GradeJunior, false
}

// IsPromotion reports whether the skill carries a promotion effect.
// Promotion skills are irreversible: no respec refunds or relocks them.
func (d Definition) IsPromotion() bool {
	_, ok := d.Promotion()
	return ok
}
