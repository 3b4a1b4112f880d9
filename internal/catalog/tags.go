// Package catalog holds the immutable skill catalog: every unlockable
// skill a commanding officer can buy with reputation, the branches the
// skills are grouped into, and the branch-family classification that
// drives doctrine/specialization exclusivity.
package catalog

import "fmt"

// SkillTag identifies one unlockable skill across all branches.
// TagNone is reserved and never names a real skill.
type SkillTag int

const (
	TagNone SkillTag = iota

	// Staff College (promotion milestones)
	SkillSeniorBrevet
	SkillTopBrevet

	// Leadership
	SkillLeadByExample
	SkillIronDiscipline
	SkillFieldRapport
	SkillInspiredCommand

	// Logistics
	SkillSupplyLines
	SkillDepotNetwork
	SkillFieldWorkshops
	SkillWarEconomy

	// Armored Doctrine
	SkillArmoredSpearhead
	SkillMobileInfantry
	SkillTankAces
	SkillMassedArmor
	SkillOverrunTactics
	SkillDeepBattle

	// Infantry Doctrine
	SkillRifleCompanies
	SkillCombatEngineers
	SkillStormTactics
	SkillDugInDefense
	SkillEntrenchment
	SkillForcedMarch

	// Artillery Doctrine
	SkillForwardObservers
	SkillCounterBattery
	SkillRollingBarrage
	SkillPrecisionFire
	SkillShootAndScoot
	SkillGrandBattery

	// Assault Specialization
	SkillShockTactics
	SkillCombinedArms
	SkillRelentlessPursuit

	// Defense Specialization
	SkillElasticDefense
	SkillFortifiedLines
	SkillCamouflageDiscipline
)

// tagNames maps every valid tag to its stable external name. Snapshots
// store these names, so renaming an entry is a save-compat break.
var tagNames = map[SkillTag]string{
	TagNone:                   "none",
	SkillSeniorBrevet:         "senior-brevet",
	SkillTopBrevet:            "top-brevet",
	SkillLeadByExample:        "lead-by-example",
	SkillIronDiscipline:       "iron-discipline",
	SkillFieldRapport:         "field-rapport",
	SkillInspiredCommand:      "inspired-command",
	SkillSupplyLines:          "supply-lines",
	SkillDepotNetwork:         "depot-network",
	SkillFieldWorkshops:       "field-workshops",
	SkillWarEconomy:           "war-economy",
	SkillArmoredSpearhead:     "armored-spearhead",
	SkillMobileInfantry:       "mobile-infantry",
	SkillTankAces:             "tank-aces",
	SkillMassedArmor:          "massed-armor",
	SkillOverrunTactics:       "overrun-tactics",
	SkillDeepBattle:           "deep-battle",
	SkillRifleCompanies:       "rifle-companies",
	SkillCombatEngineers:      "combat-engineers",
	SkillStormTactics:         "storm-tactics",
	SkillDugInDefense:         "dug-in-defense",
	SkillEntrenchment:         "entrenchment",
	SkillForcedMarch:          "forced-march",
	SkillForwardObservers:     "forward-observers",
	SkillCounterBattery:       "counter-battery",
	SkillRollingBarrage:       "rolling-barrage",
	SkillPrecisionFire:        "precision-fire",
	SkillShootAndScoot:        "shoot-and-scoot",
	SkillGrandBattery:         "grand-battery",
	SkillShockTactics:         "shock-tactics",
	SkillCombinedArms:         "combined-arms",
	SkillRelentlessPursuit:    "relentless-pursuit",
	SkillElasticDefense:       "elastic-defense",
	SkillFortifiedLines:       "fortified-lines",
	SkillCamouflageDiscipline: "camouflage-discipline",
}

var tagsByName = func() map[string]SkillTag {
	m := make(map[string]SkillTag, len(tagNames))
	for t, n := range tagNames {
		m[n] = t
	}
	return m
}()

// String returns the tag's stable external name.
func (t SkillTag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return fmt.Sprintf("skill(%d)", int(t))
}

// TagByName resolves an external name to a tag. TagNone never resolves.
func TagByName(name string) (SkillTag, bool) {
	t, ok := tagsByName[name]
	if !ok || t == TagNone {
		return TagNone, false
	}
	return t, true
}

// TagByValue resolves a raw integer (as stored in old snapshots) to a tag.
func TagByValue(v int) (SkillTag, bool) {
	t := SkillTag(v)
	if _, ok := tagNames[t]; !ok || t == TagNone {
		return TagNone, false
	}
	return t, true
}

// BranchTag identifies a named group of thematically related skills.
type BranchTag int

const (
	BranchNone BranchTag = iota
	BranchStaffCollege
	BranchLeadership
	BranchLogistics
	BranchArmored
	BranchInfantry
	BranchArtillery
	BranchAssault
	BranchDefense
)

var branchNames = map[BranchTag]string{
	BranchNone:         "none",
	BranchStaffCollege: "staff-college",
	BranchLeadership:   "leadership",
	BranchLogistics:    "logistics",
	BranchArmored:      "armored-doctrine",
	BranchInfantry:     "infantry-doctrine",
	BranchArtillery:    "artillery-doctrine",
	BranchAssault:      "assault-spec",
	BranchDefense:      "defense-spec",
}

var branchesByName = func() map[string]BranchTag {
	m := make(map[string]BranchTag, len(branchNames))
	for b, n := range branchNames {
		m[n] = b
	}
	return m
}()

func (b BranchTag) String() string {
	if n, ok := branchNames[b]; ok {
		return n
	}
	return fmt.Sprintf("branch(%d)", int(b))
}

// BranchDisplayName returns a human-readable name for a branch.
func BranchDisplayName(b BranchTag) string {
	switch b {
	case BranchStaffCollege:
		return "Staff College"
	case BranchLeadership:
		return "Leadership"
	case BranchLogistics:
		return "Logistics"
	case BranchArmored:
		return "Armored Doctrine"
	case BranchInfantry:
		return "Infantry Doctrine"
	case BranchArtillery:
		return "Artillery Doctrine"
	case BranchAssault:
		return "Assault Specialization"
	case BranchDefense:
		return "Defense Specialization"
	default:
		return b.String()
	}
}

// BranchByName resolves an external name to a branch tag.
func BranchByName(name string) (BranchTag, bool) {
	b, ok := branchesByName[name]
	if !ok || b == BranchNone {
		return BranchNone, false
	}
	return b, true
}

// AllBranches returns every branch in display order.
func AllBranches() []BranchTag {
	return []BranchTag{
		BranchStaffCollege,
		BranchLeadership,
		BranchLogistics,
		BranchArmored,
		BranchInfantry,
		BranchArtillery,
		BranchAssault,
		BranchDefense,
	}
}

// Tier is the sequential depth of a skill within its branch.
type Tier int

const (
	Tier1 Tier = 1 + iota
	Tier2
	Tier3
	Tier4
)

// Grade is a commander's rank. The integer order is the gating order:
// a skill requiring GradeSenior is eligible at GradeSenior or GradeTop.
type Grade int

const (
	GradeJunior Grade = iota
	GradeSenior
	GradeTop
)

func (g Grade) String() string {
	switch g {
	case GradeJunior:
		return "junior"
	case GradeSenior:
		return "senior"
	case GradeTop:
		return "top"
	default:
		return fmt.Sprintf("grade(%d)", int(g))
	}
}

// GradeByName resolves a snapshot grade name. Unknown names report false.
func GradeByName(name string) (Grade, bool) {
	switch name {
	case "junior":
		return GradeJunior, true
	case "senior":
		return GradeSenior, true
	case "top":
		return GradeTop, true
	default:
		return GradeJunior, false
	}
}
