// Package entity provides the game's single mutable character.
package entity

import "github.com/samdwyer/questband/internal/combat"

// Stat caps. Setters clamp against these upper bounds only; there is no
// lower bound, so hp can go negative with no automatic consequence.
const (
	MaxHP       = 100
	MaxStrength = 100
)

// Starting stats for a fresh character.
const (
	startHP       = 100
	startStrength = 10
)

// Character is the one mutable entity in the game. It owns its current
// attack and fight mode selections and is passed by pointer into the menu
// loop; there is no package-level instance.
type Character struct {
	hp       int
	strength int

	attackMode combat.AttackMode
	fightMode  combat.FightMode
}

// NewCharacter creates a fresh character with the given starting modes.
func NewCharacter(attackMode combat.AttackMode, fightMode combat.FightMode) *Character {
	return &Character{
		hp:         startHP,
		strength:   startStrength,
		attackMode: attackMode,
		fightMode:  fightMode,
	}
}

// GetHP returns current hp.
func (c *Character) GetHP() int { return c.hp }

// SetHP sets hp, capped at MaxHP. Negative values are stored as-is.
func (c *Character) SetHP(hp int) {
	if hp > MaxHP {
		hp = MaxHP
	}
	c.hp = hp
}

// GetStrength returns current strength.
func (c *Character) GetStrength() int { return c.strength }

// SetStrength sets strength, capped at MaxStrength.
func (c *Character) SetStrength(strength int) {
	if strength > MaxStrength {
		strength = MaxStrength
	}
	c.strength = strength
}

// AttackMode returns the current attack mode.
func (c *Character) AttackMode() combat.AttackMode { return c.attackMode }

// SetAttackMode replaces the current attack mode.
func (c *Character) SetAttackMode(mode combat.AttackMode) {
	c.attackMode = mode
}

// FightMode returns the current fight mode.
func (c *Character) FightMode() combat.FightMode { return c.fightMode }

// SetFightMode replaces the current fight mode.
func (c *Character) SetFightMode(mode combat.FightMode) {
	c.fightMode = mode
}

// Attack performs an attack using the current attack mode and returns its
// log line.
func (c *Character) Attack() string {
	return c.attackMode.Attack(c)
}

// Fight performs a fight using the current fight mode and returns its
// log line.
func (c *Character) Fight() string {
	return c.fightMode.Fight(c)
}

// Ensure Character implements combat.Combatant
var _ combat.Combatant = (*Character)(nil)
