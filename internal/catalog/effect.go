package catalog

import "fmt"

// BonusType names one gameplay effect a skill can grant. The set is
// closed: every type has exactly one EffectKind, and all code that
// interprets effects switches on the kind.
type BonusType int

const (
	BonusHardAttack BonusType = iota
	BonusSoftAttack
	BonusDefense
	BonusAirDefense
	BonusInitiative
	BonusSpotting
	BonusMovement
	BonusRange
	BonusMoraleRecovery

	// Cost-reduction factors, folded multiplicatively.
	BonusSupplyCost
	BonusPrestigeCost
	BonusRepairCost

	// Boolean capabilities.
	BonusShootAndScoot
	BonusOverrun
	BonusEntrench
	BonusForcedMarch
	BonusAmbushDetection

	// Promotion milestones.
	BonusSeniorPromotion
	BonusTopPromotion
)

// EffectKind tells the aggregator how to interpret an effect value.
type EffectKind int

const (
	KindAdditive EffectKind = iota // totals fold from 0.0 by addition
	KindMultiplicative            // cost factors fold from 1.0 by product
	KindCapability                // boolean grant, value 1.0 means granted
	KindPromotion                 // irreversible grade advancement
)

// Kind returns the effect kind for a bonus type.
func (b BonusType) Kind() EffectKind {
	switch b {
	case BonusSupplyCost, BonusPrestigeCost, BonusRepairCost:
		return KindMultiplicative
	case BonusShootAndScoot, BonusOverrun, BonusEntrench, BonusForcedMarch, BonusAmbushDetection:
		return KindCapability
	case BonusSeniorPromotion, BonusTopPromotion:
		return KindPromotion
	default:
		return KindAdditive
	}
}

func (b BonusType) String() string {
	switch b {
	case BonusHardAttack:
		return "hard-attack"
	case BonusSoftAttack:
		return "soft-attack"
	case BonusDefense:
		return "defense"
	case BonusAirDefense:
		return "air-defense"
	case BonusInitiative:
		return "initiative"
	case BonusSpotting:
		return "spotting"
	case BonusMovement:
		return "movement"
	case BonusRange:
		return "range"
	case BonusMoraleRecovery:
		return "morale-recovery"
	case BonusSupplyCost:
		return "supply-cost"
	case BonusPrestigeCost:
		return "prestige-cost"
	case BonusRepairCost:
		return "repair-cost"
	case BonusShootAndScoot:
		return "shoot-and-scoot"
	case BonusOverrun:
		return "overrun"
	case BonusEntrench:
		return "entrench"
	case BonusForcedMarch:
		return "forced-march"
	case BonusAmbushDetection:
		return "ambush-detection"
	case BonusSeniorPromotion:
		return "senior-promotion"
	case BonusTopPromotion:
		return "top-promotion"
	default:
		return fmt.Sprintf("bonus(%d)", int(b))
	}
}

// Effect is a single bonus granted by a skill.
type Effect struct {
	Type  BonusType
	Value float64
}

// IsBoolean reports whether the effect is a capability grant.
func (e Effect) IsBoolean() bool {
	return e.Type.Kind() == KindCapability
}

// PromotionGrade returns the grade a promotion effect advances to.
// The second result is false for non-promotion effects.
func (e Effect) PromotionGrade() (Grade, bool) {
	switch e.Type {
	case BonusSeniorPromotion:
		return GradeSenior, true
	case BonusTopPromotion:
		return GradeTop, true
	default:
		return GradeJunior, false
	}
}
