package catalog

import "testing"

func TestBonusTypeKind(t *testing.T) {
	tests := []struct {
		bonus BonusType
		want  EffectKind
	}{
		{BonusHardAttack, KindAdditive},
		{BonusMoraleRecovery, KindAdditive},
		{BonusSupplyCost, KindMultiplicative},
		{BonusPrestigeCost, KindMultiplicative},
		{BonusRepairCost, KindMultiplicative},
		{BonusShootAndScoot, KindCapability},
		{BonusAmbushDetection, KindCapability},
		{BonusSeniorPromotion, KindPromotion},
		{BonusTopPromotion, KindPromotion},
	}
	for _, tt := range tests {
		if got := tt.bonus.Kind(); got != tt.want {
			t.Errorf("%s.Kind() = %d, want %d", tt.bonus, got, tt.want)
		}
	}
}

func TestEffectIsBoolean(t *testing.T) {
	if !(Effect{Type: BonusOverrun, Value: 1}).IsBoolean() {
		t.Error("overrun effect should be boolean")
	}
	if (Effect{Type: BonusHardAttack, Value: 5}).IsBoolean() {
		t.Error("hard-attack effect should not be boolean")
	}
}

func TestEffectPromotionGrade(t *testing.T) {
	if g, ok := (Effect{Type: BonusSeniorPromotion, Value: 1}).PromotionGrade(); !ok || g != GradeSenior {
		t.Errorf("senior promotion: got (%v, %v)", g, ok)
	}
	if g, ok := (Effect{Type: BonusTopPromotion, Value: 1}).PromotionGrade(); !ok || g != GradeTop {
		t.Errorf("top promotion: got (%v, %v)", g, ok)
	}
	if _, ok := (Effect{Type: BonusDefense, Value: 2}).PromotionGrade(); ok {
		t.Error("defense effect should not promote")
	}
}

func TestDefinitionPromotion(t *testing.T) {
	d, _ := Default().Lookup(SkillTopBrevet)
	g, ok := d.Promotion()
	if !ok || g != GradeTop {
		t.Errorf("top-brevet promotion: got (%v, %v)", g, ok)
	}
	if !d.IsPromotion() {
		t.Error("top-brevet should be a promotion skill")
	}

	d, _ = Default().Lookup(SkillArmoredSpearhead)
	if d.IsPromotion() {
		t.Error("armored-spearhead should not be a promotion skill")
	}
}

func TestGradeOrdering(t *testing.T) {
	if !(GradeJunior < GradeSenior && GradeSenior < GradeTop) {
		t.Fatal("grade constants must order junior < senior < top")
	}
}
