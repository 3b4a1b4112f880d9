package catalog

import "sync"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide seed catalog, built once. The seed is
// static data; a validation failure here is a programming error, so it
// panics rather than limping along with an inconsistent catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(seedDefinitions(), DefaultClassifier())
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Validate checks the seed catalog for structural issues without
// building it. Used by tooling; Default panics on the same errors.
func Validate() error {
	return validateDefs(seedDefinitions(), DefaultClassifier())
}

// seedDefinitions returns the full commander skill catalog.
func seedDefinitions() []Definition {
	return []Definition{
		// --- Staff College: promotion milestones only. Never respecced. ---
		{
			Tag:         SkillSeniorBrevet,
			Name:        "Senior Brevet",
			Cost:        100,
			Branch:      BranchStaffCollege,
			Tier:        Tier1,
			Description: "Field promotion to senior grade, opening senior-gated skills.",
			Grade:       GradeJunior,
			Effects:     []Effect{{Type: BonusSeniorPromotion, Value: 1}},
		},
		{
			Tag:         SkillTopBrevet,
			Name:        "Top Brevet",
			Cost:        250,
			Branch:      BranchStaffCollege,
			Tier:        Tier2,
			Description: "Promotion to top grade and a seat at the general staff.",
			Grade:       GradeSenior,
			Requires:    []SkillTag{SkillSeniorBrevet},
			Effects:     []Effect{{Type: BonusTopPromotion, Value: 1}},
		},

		// --- Leadership ---
		{
			Tag:         SkillLeadByExample,
			Name:        "Lead by Example",
			Cost:        40,
			Branch:      BranchLeadership,
			Tier:        Tier1,
			Description: "The commander is seen where the fighting is.",
			Effects:     []Effect{{Type: BonusInitiative, Value: 1}},
		},
		{
			Tag:         SkillIronDiscipline,
			Name:        "Iron Discipline",
			Cost:        60,
			Branch:      BranchLeadership,
			Tier:        Tier2,
			Description: "Drill and punishment keep formations steady under fire.",
			Requires:    []SkillTag{SkillLeadByExample},
			Excludes:    []SkillTag{SkillFieldRapport},
			Effects:     []Effect{{Type: BonusMoraleRecovery, Value: 10}},
		},
		{
			Tag:         SkillFieldRapport,
			Name:        "Field Rapport",
			Cost:        60,
			Branch:      BranchLeadership,
			Tier:        Tier2,
			Description: "Trust earned in the line lets subordinates act on intent.",
			Requires:    []SkillTag{SkillLeadByExample},
			Excludes:    []SkillTag{SkillIronDiscipline},
			Effects:     []Effect{{Type: BonusInitiative, Value: 2}},
		},
		{
			Tag:         SkillInspiredCommand,
			Name:        "Inspired Command",
			Cost:        120,
			Branch:      BranchLeadership,
			Tier:        Tier3,
			Description: "A command style that gets more from troops than doctrine predicts.",
			Grade:       GradeSenior,
			Requires:    []SkillTag{SkillLeadByExample},
			RequiresAny: []SkillTag{SkillIronDiscipline, SkillFieldRapport},
			Effects: []Effect{
				{Type: BonusInitiative, Value: 2},
				{Type: BonusMoraleRecovery, Value: 10},
			},
		},

		// --- Logistics ---
		{
			Tag:         SkillSupplyLines,
			Name:        "Supply Lines",
			Cost:        40,
			Branch:      BranchLogistics,
			Tier:        Tier1,
			Description: "Convoy scheduling that keeps forward units in ammunition.",
			Effects:     []Effect{{Type: BonusSupplyCost, Value: 0.9}},
		},
		{
			Tag:         SkillDepotNetwork,
			Name:        "Depot Network",
			Cost:        70,
			Branch:      BranchLogistics,
			Tier:        Tier2,
			Description: "Forward depots shorten every resupply run.",
			Requires:    []SkillTag{SkillSupplyLines},
			Effects:     []Effect{{Type: BonusSupplyCost, Value: 0.85}},
		},
		{
			Tag:         SkillFieldWorkshops,
			Name:        "Field Workshops",
			Cost:        70,
			Branch:      BranchLogistics,
			Tier:        Tier2,
			Description: "Damaged equipment is rebuilt behind the line, not written off.",
			Requires:    []SkillTag{SkillSupplyLines},
			Effects:     []Effect{{Type: BonusRepairCost, Value: 0.8}},
		},
		{
			Tag:         SkillWarEconomy,
			Name:        "War Economy",
			Cost:        140,
			Branch:      BranchLogistics,
			Tier:        Tier3,
			Description: "Requisition priority with the home front.",
			Grade:       GradeSenior,
			Requires:    []SkillTag{SkillSupplyLines},
			RequiresAny: []SkillTag{SkillDepotNetwork, SkillFieldWorkshops},
			Effects:     []Effect{{Type: BonusPrestigeCost, Value: 0.9}},
		},

		// --- Armored Doctrine ---
		{
			Tag:         SkillArmoredSpearhead,
			Name:        "Armored Spearhead",
			Cost:        50,
			Branch:      BranchArmored,
			Tier:        Tier1,
			Description: "Concentrate tanks at the point of decision.",
			Effects:     []Effect{{Type: BonusHardAttack, Value: 5}},
		},
		{
			Tag:         SkillMobileInfantry,
			Name:        "Mobile Infantry",
			Cost:        80,
			Branch:      BranchArmored,
			Tier:        Tier2,
			Description: "Infantry rides with the tanks instead of walking behind them.",
			Requires:    []SkillTag{SkillArmoredSpearhead},
			Effects: []Effect{
				{Type: BonusSoftAttack, Value: 3},
				{Type: BonusMovement, Value: 1},
			},
		},
		{
			Tag:         SkillTankAces,
			Name:        "Tank Aces",
			Cost:        80,
			Branch:      BranchArmored,
			Tier:        Tier2,
			Description: "Veteran crews get the new vehicles first.",
			Requires:    []SkillTag{SkillArmoredSpearhead},
			Excludes:    []SkillTag{SkillMassedArmor},
			Effects:     []Effect{{Type: BonusHardAttack, Value: 4}},
		},
		{
			Tag:         SkillMassedArmor,
			Name:        "Massed Armor",
			Cost:        80,
			Branch:      BranchArmored,
			Tier:        Tier2,
			Description: "Numbers over finesse; the formation absorbs losses.",
			Requires:    []SkillTag{SkillArmoredSpearhead},
			Excludes:    []SkillTag{SkillTankAces},
			Effects:     []Effect{{Type: BonusDefense, Value: 3}},
		},
		{
			Tag:         SkillOverrunTactics,
			Name:        "Overrun Tactics",
			Cost:        150,
			Branch:      BranchArmored,
			Tier:        Tier3,
			Description: "Broken enemies are ridden down before they can rally.",
			Grade:       GradeSenior,
			Requires:    []SkillTag{SkillArmoredSpearhead},
			RequiresAny: []SkillTag{SkillTankAces, SkillMassedArmor},
			Effects:     []Effect{{Type: BonusOverrun, Value: 1}},
		},
		{
			Tag:         SkillDeepBattle,
			Name:        "Deep Battle",
			Cost:        200,
			Branch:      BranchArmored,
			Tier:        Tier4,
			Description: "Simultaneous pressure through the whole depth of the defense.",
			Grade:       GradeTop,
			Requires:    []SkillTag{SkillOverrunTactics},
			Effects: []Effect{
				{Type: BonusMovement, Value: 2},
				{Type: BonusHardAttack, Value: 3},
			},
		},

		// --- Infantry Doctrine ---
		{
			Tag:         SkillRifleCompanies,
			Name:        "Rifle Companies",
			Cost:        50,
			Branch:      BranchInfantry,
			Tier:        Tier1,
			Description: "Well-drilled riflemen are the army's backbone.",
			Effects:     []Effect{{Type: BonusSoftAttack, Value: 4}},
		},
		{
			Tag:         SkillCombatEngineers,
			Name:        "Combat Engineers",
			Cost:        80,
			Branch:      BranchInfantry,
			Tier:        Tier2,
			Description: "Demolition teams attached down to battalion level.",
			Requires:    []SkillTag{SkillRifleCompanies},
			Effects: []Effect{
				{Type: BonusHardAttack, Value: 2},
				{Type: BonusDefense, Value: 2},
			},
		},
		{
			Tag:         SkillStormTactics,
			Name:        "Storm Tactics",
			Cost:        80,
			Branch:      BranchInfantry,
			Tier:        Tier2,
			Description: "Small assault groups infiltrate instead of attacking in waves.",
			Requires:    []SkillTag{SkillRifleCompanies},
			Excludes:    []SkillTag{SkillDugInDefense},
			Effects: []Effect{
				{Type: BonusSoftAttack, Value: 4},
				{Type: BonusInitiative, Value: 1},
			},
		},
		{
			Tag:         SkillDugInDefense,
			Name:        "Dug-in Defense",
			Cost:        80,
			Branch:      BranchInfantry,
			Tier:        Tier2,
			Description: "Every halt becomes a fortified position.",
			Requires:    []SkillTag{SkillRifleCompanies},
			Excludes:    []SkillTag{SkillStormTactics},
			Effects:     []Effect{{Type: BonusDefense, Value: 4}},
		},
		{
			Tag:         SkillEntrenchment,
			Name:        "Entrenchment",
			Cost:        140,
			Branch:      BranchInfantry,
			Tier:        Tier3,
			Description: "Units dig in fast enough to matter inside a single engagement.",
			Grade:       GradeSenior,
			Requires:    []SkillTag{SkillDugInDefense},
			Effects:     []Effect{{Type: BonusEntrench, Value: 1}},
		},
		{
			Tag:         SkillForcedMarch,
			Name:        "Forced March",
			Cost:        140,
			Branch:      BranchInfantry,
			Tier:        Tier3,
			Description: "Foot columns arrive a day before the enemy plans for them.",
			Grade:       GradeSenior,
			Requires:    []SkillTag{SkillRifleCompanies},
			RequiresAny: []SkillTag{SkillStormTactics, SkillCombatEngineers},
			Effects:     []Effect{{Type: BonusForcedMarch, Value: 1}},
		},

		// --- Artillery Doctrine ---
		{
			Tag:         SkillForwardObservers,
			Name:        "Forward Observers",
			Cost:        50,
			Branch:      BranchArtillery,
			Tier:        Tier1,
			Description: "Spotters with the lead companies call fire where it lands.",
			Effects:     []Effect{{Type: BonusSpotting, Value: 2}},
		},
		{
			Tag:         SkillCounterBattery,
			Name:        "Counter-battery Fire",
			Cost:        80,
			Branch:      BranchArtillery,
			Tier:        Tier2,
			Description: "Enemy guns are silenced before the infantry steps off.",
			Requires:    []SkillTag{SkillForwardObservers},
			Effects: []Effect{
				{Type: BonusHardAttack, Value: 2},
				{Type: BonusRange, Value: 1},
			},
		},
		{
			Tag:         SkillRollingBarrage,
			Name:        "Rolling Barrage",
			Cost:        80,
			Branch:      BranchArtillery,
			Tier:        Tier2,
			Description: "A timed curtain of fire the infantry advances behind.",
			Requires:    []SkillTag{SkillForwardObservers},
			Excludes:    []SkillTag{SkillPrecisionFire},
			Effects:     []Effect{{Type: BonusSoftAttack, Value: 5}},
		},
		{
			Tag:         SkillPrecisionFire,
			Name:        "Precision Fire",
			Cost:        80,
			Branch:      BranchArtillery,
			Tier:        Tier2,
			Description: "Registered targets and corrected salvos over map fire.",
			Requires:    []SkillTag{SkillForwardObservers},
			Excludes:    []SkillTag{SkillRollingBarrage},
			Effects:     []Effect{{Type: BonusHardAttack, Value: 4}},
		},
		{
			Tag:         SkillShootAndScoot,
			Name:        "Shoot and Scoot",
			Cost:        150,
			Branch:      BranchArtillery,
			Tier:        Tier3,
			Description: "Batteries displace immediately after firing.",
			Grade:       GradeSenior,
			Requires:    []SkillTag{SkillForwardObservers},
			RequiresAny: []SkillTag{SkillRollingBarrage, SkillPrecisionFire},
			Effects:     []Effect{{Type: BonusShootAndScoot, Value: 1}},
		},
		{
			Tag:         SkillGrandBattery,
			Name:        "Grand Battery",
			Cost:        200,
			Branch:      BranchArtillery,
			Tier:        Tier4,
			Description: "Corps-level fire concentrated on a single grid square.",
			Grade:       GradeTop,
			Requires:    []SkillTag{SkillShootAndScoot},
			Effects: []Effect{
				{Type: BonusSoftAttack, Value: 4},
				{Type: BonusRange, Value: 1},
			},
		},

		// --- Assault Specialization ---
		{
			Tag:         SkillShockTactics,
			Name:        "Shock Tactics",
			Cost:        60,
			Branch:      BranchAssault,
			Tier:        Tier1,
			Description: "Hit first, hit hard, keep moving.",
			Effects:     []Effect{{Type: BonusInitiative, Value: 2}},
		},
		{
			Tag:         SkillCombinedArms,
			Name:        "Combined Arms",
			Cost:        100,
			Branch:      BranchAssault,
			Tier:        Tier2,
			Description: "Armor, infantry and guns attack as one timed action.",
			Requires:    []SkillTag{SkillShockTactics},
			Effects: []Effect{
				{Type: BonusHardAttack, Value: 2},
				{Type: BonusSoftAttack, Value: 2},
			},
		},
		{
			Tag:         SkillRelentlessPursuit,
			Name:        "Relentless Pursuit",
			Cost:        160,
			Branch:      BranchAssault,
			Tier:        Tier3,
			Description: "A beaten enemy is never allowed to reform.",
			Grade:       GradeSenior,
			Requires:    []SkillTag{SkillCombinedArms},
			Effects: []Effect{
				{Type: BonusMovement, Value: 1},
				{Type: BonusInitiative, Value: 1},
			},
		},

		// --- Defense Specialization ---
		{
			Tag:         SkillElasticDefense,
			Name:        "Elastic Defense",
			Cost:        60,
			Branch:      BranchDefense,
			Tier:        Tier1,
			Description: "Trade ground for casualties, then counterattack.",
			Effects:     []Effect{{Type: BonusDefense, Value: 3}},
		},
		{
			Tag:         SkillFortifiedLines,
			Name:        "Fortified Lines",
			Cost:        100,
			Branch:      BranchDefense,
			Tier:        Tier2,
			Description: "Bunkers, wire and interlocking fields of fire.",
			Requires:    []SkillTag{SkillElasticDefense},
			Effects: []Effect{
				{Type: BonusDefense, Value: 3},
				{Type: BonusAirDefense, Value: 2},
			},
		},
		{
			Tag:         SkillCamouflageDiscipline,
			Name:        "Camouflage Discipline",
			Cost:        160,
			Branch:      BranchDefense,
			Tier:        Tier3,
			Description: "Positions the enemy only finds when they open fire.",
			Grade:       GradeSenior,
			Requires:    []SkillTag{SkillFortifiedLines},
			Effects:     []Effect{{Type: BonusAmbushDetection, Value: 1}},
		},
	}
}
