package gamedata

import "testing"

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	if got := len(catalog.AttackModes()); got != 3 {
		t.Errorf("Expected 3 attack modes, got %d", got)
	}
	if got := len(catalog.FightModes()); got != 3 {
		t.Errorf("Expected 3 fight modes, got %d", got)
	}
	if got := len(catalog.Actions()); got != 3 {
		t.Errorf("Expected 3 actions, got %d", got)
	}
	if got := len(catalog.Effects()); got != 2 {
		t.Errorf("Expected 2 effects, got %d", got)
	}
}

func TestAttackModeTuning(t *testing.T) {
	catalog := MustLoadCatalog()

	tests := []struct {
		id   string
		name string
		gain int
	}{
		{"normal", "Normal", 1},
		{"powered_up", "PoweredUp", 5},
		{"defeated", "Defeated", 0},
	}

	for _, tt := range tests {
		def := catalog.AttackMode(tt.id)
		if def == nil {
			t.Errorf("Attack mode %q not found", tt.id)
			continue
		}
		if def.Name != tt.name {
			t.Errorf("AttackMode(%q).Name = %q, want %q", tt.id, def.Name, tt.name)
		}
		if def.StrengthGain != tt.gain {
			t.Errorf("AttackMode(%q).StrengthGain = %d, want %d", tt.id, def.StrengthGain, tt.gain)
		}
		if def.Message == "" {
			t.Errorf("AttackMode(%q) has no message", tt.id)
		}
	}
}

func TestFightModeTuning(t *testing.T) {
	catalog := MustLoadCatalog()

	tests := []struct {
		id     string
		name   string
		hpCost int
	}{
		{"melee", "Melee", 10},
		{"ranged", "Ranged", 5},
		{"magic", "Magic", 15},
	}

	for _, tt := range tests {
		def := catalog.FightMode(tt.id)
		if def == nil {
			t.Errorf("Fight mode %q not found", tt.id)
			continue
		}
		if def.Name != tt.name {
			t.Errorf("FightMode(%q).Name = %q, want %q", tt.id, def.Name, tt.name)
		}
		if def.HPCost != tt.hpCost {
			t.Errorf("FightMode(%q).HPCost = %d, want %d", tt.id, def.HPCost, tt.hpCost)
		}
	}
}

func TestActionTuning(t *testing.T) {
	catalog := MustLoadCatalog()

	heal := catalog.Action("heal")
	if heal == nil {
		t.Fatal("Action heal not found")
	}
	if heal.HPRestore != 20 {
		t.Errorf("Action(heal).HPRestore = %d, want 20", heal.HPRestore)
	}

	defend := catalog.Action("defend")
	if defend == nil {
		t.Fatal("Action defend not found")
	}
	if defend.Message == "" {
		t.Error("Action(defend) has no message")
	}
	if defend.HPRestore != 0 {
		t.Errorf("Action(defend).HPRestore = %d, want 0", defend.HPRestore)
	}
}

func TestEffectTuning(t *testing.T) {
	catalog := MustLoadCatalog()

	boost := catalog.Effect("boost")
	if boost == nil {
		t.Fatal("Effect boost not found")
	}
	if boost.StrengthGain != 10 || boost.HPCost != 0 {
		t.Errorf("Effect(boost) tuning = (+%d strength, -%d hp), want (+10, -0)",
			boost.StrengthGain, boost.HPCost)
	}

	damage := catalog.Effect("damage")
	if damage == nil {
		t.Fatal("Effect damage not found")
	}
	if damage.HPCost != 30 || damage.StrengthGain != 0 {
		t.Errorf("Effect(damage) tuning = (+%d strength, -%d hp), want (+0, -30)",
			damage.StrengthGain, damage.HPCost)
	}
}

func TestCatalogUnknownIDs(t *testing.T) {
	catalog := MustLoadCatalog()

	if catalog.AttackMode("berserk") != nil {
		t.Error("AttackMode(berserk) should be nil")
	}
	if catalog.FightMode("siege") != nil {
		t.Error("FightMode(siege) should be nil")
	}
	if catalog.Action("flee") != nil {
		t.Error("Action(flee) should be nil")
	}
	if catalog.Effect("curse") != nil {
		t.Error("Effect(curse) should be nil")
	}
}
