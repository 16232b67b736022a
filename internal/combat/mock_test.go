package combat

import (
	"testing"

	"github.com/samdwyer/questband/internal/gamedata"
)

// mockFighter is a test implementation of the Fighter interface. Its setters
// apply the same upper-bound-only clamp the character uses.
type mockFighter struct {
	hp       int
	strength int
}

func newMockFighter(hp, strength int) *mockFighter {
	return &mockFighter{hp: hp, strength: strength}
}

func (m *mockFighter) GetHP() int { return m.hp }

func (m *mockFighter) SetHP(hp int) {
	if hp > 100 {
		hp = 100
	}
	m.hp = hp
}

func (m *mockFighter) GetStrength() int { return m.strength }

func (m *mockFighter) SetStrength(strength int) {
	if strength > 100 {
		strength = 100
	}
	m.strength = strength
}

// mockCombatant extends mockFighter with mode dispatch for action tests.
type mockCombatant struct {
	mockFighter
	attackMode AttackMode
	fightMode  FightMode
}

func (m *mockCombatant) Attack() string { return m.attackMode.Attack(m) }
func (m *mockCombatant) Fight() string  { return m.fightMode.Fight(m) }

// loadCatalog loads the real embedded definitions for tests.
func loadCatalog(t *testing.T) *gamedata.Catalog {
	t.Helper()
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return catalog
}

// mustAttackMode builds an attack mode from the embedded definitions.
func mustAttackMode(t *testing.T, catalog *gamedata.Catalog, id string) AttackMode {
	t.Helper()
	mode, err := NewAttackMode(catalog.AttackMode(id))
	if err != nil {
		t.Fatalf("NewAttackMode(%q) failed: %v", id, err)
	}
	return mode
}

// mustFightMode builds a fight mode from the embedded definitions.
func mustFightMode(t *testing.T, catalog *gamedata.Catalog, id string) FightMode {
	t.Helper()
	mode, err := NewFightMode(catalog.FightMode(id))
	if err != nil {
		t.Fatalf("NewFightMode(%q) failed: %v", id, err)
	}
	return mode
}
