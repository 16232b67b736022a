package combat

import "testing"

func TestBoostEffect(t *testing.T) {
	catalog := loadCatalog(t)
	effect, err := NewEffect(catalog.Effect(EffectBoost))
	if err != nil {
		t.Fatalf("NewEffect(boost) failed: %v", err)
	}

	f := newMockFighter(100, 10)

	boostLine := effect.ApplyBoost(f)
	damageLine := effect.ApplyDamage(f)

	if f.GetStrength() != 20 {
		t.Errorf("Boost: strength = %d, want 20", f.GetStrength())
	}
	if f.GetHP() != 100 {
		t.Errorf("Boost: hp = %d, want 100 (damage capability must be inert)", f.GetHP())
	}
	if boostLine == "" {
		t.Error("Boost returned no log line from ApplyBoost")
	}
	if damageLine != "" {
		t.Errorf("Boost.ApplyDamage returned %q, want empty", damageLine)
	}
}

func TestDamageEffect(t *testing.T) {
	catalog := loadCatalog(t)
	effect, err := NewEffect(catalog.Effect(EffectDamage))
	if err != nil {
		t.Fatalf("NewEffect(damage) failed: %v", err)
	}

	f := newMockFighter(100, 10)

	boostLine := effect.ApplyBoost(f)
	damageLine := effect.ApplyDamage(f)

	if f.GetHP() != 70 {
		t.Errorf("Damage: hp = %d, want 70", f.GetHP())
	}
	if f.GetStrength() != 10 {
		t.Errorf("Damage: strength = %d, want 10 (boost capability must be inert)", f.GetStrength())
	}
	if boostLine != "" {
		t.Errorf("Damage.ApplyBoost returned %q, want empty", boostLine)
	}
	if damageLine == "" {
		t.Error("Damage returned no log line from ApplyDamage")
	}
}

func TestBoostStrengthCap(t *testing.T) {
	catalog := loadCatalog(t)
	effect, err := NewEffect(catalog.Effect(EffectBoost))
	if err != nil {
		t.Fatalf("NewEffect(boost) failed: %v", err)
	}

	f := newMockFighter(100, 95)
	effect.ApplyBoost(f)

	if f.GetStrength() != 100 {
		t.Errorf("Boost from 95: strength = %d, want 100", f.GetStrength())
	}
}

func TestDamageEffectCanPushHPNegative(t *testing.T) {
	catalog := loadCatalog(t)
	effect, err := NewEffect(catalog.Effect(EffectDamage))
	if err != nil {
		t.Fatalf("NewEffect(damage) failed: %v", err)
	}

	f := newMockFighter(20, 10)
	effect.ApplyDamage(f)

	if f.GetHP() != -10 {
		t.Errorf("Damage from 20 hp: hp = %d, want -10", f.GetHP())
	}
}

func TestEffectDualCallSingleObservable(t *testing.T) {
	catalog := loadCatalog(t)

	for _, id := range []string{EffectBoost, EffectDamage} {
		effect, err := NewEffect(catalog.Effect(id))
		if err != nil {
			t.Fatalf("NewEffect(%q) failed: %v", id, err)
		}

		f := newMockFighter(100, 10)
		lines := 0
		if effect.ApplyBoost(f) != "" {
			lines++
		}
		if effect.ApplyDamage(f) != "" {
			lines++
		}
		if lines != 1 {
			t.Errorf("Effect %q produced %d observable lines, want exactly 1", id, lines)
		}
	}
}

func TestNewEffectRejectsUnknown(t *testing.T) {
	catalog := loadCatalog(t)

	if _, err := NewEffect(catalog.Effect("curse")); err == nil {
		t.Error("NewEffect with missing definition should fail")
	}

	def := *catalog.Effect(EffectBoost)
	def.ID = "curse"
	if _, err := NewEffect(&def); err == nil {
		t.Error("NewEffect(curse) should fail")
	}
}
