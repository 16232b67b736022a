// Package combat provides the character's combat behaviors: attack modes,
// fight modes, templated actions, and one-shot effects. Every variant set is
// closed; variants are built from gamedata definitions by constructors that
// reject unknown IDs.
package combat

// Fighter is the stat surface the combat behaviors mutate. The character
// implements it; its setters apply the character's own clamping, so the
// behaviors here never clamp themselves.
type Fighter interface {
	GetHP() int
	SetHP(hp int)
	GetStrength() int
	SetStrength(strength int)
}

// Combatant extends Fighter with dispatch through the currently selected
// attack and fight modes. Actions operate on a Combatant so the attack action
// can defer to whatever mode the character has at execution time.
type Combatant interface {
	Fighter

	// Attack performs an attack using the current attack mode and returns
	// the log line describing it.
	Attack() string

	// Fight performs a fight using the current fight mode and returns the
	// log line describing it.
	Fight() string
}
