package combat

import (
	"errors"
	"fmt"

	"github.com/samdwyer/questband/internal/gamedata"
)

// Attack mode IDs as they appear in attack_modes.json.
const (
	AttackModeNormal    = "normal"
	AttackModePoweredUp = "powered_up"
	AttackModeDefeated  = "defeated"
)

// AttackMode determines how attacking changes the fighter's strength.
type AttackMode interface {
	ID() string
	Name() string

	// Attack mutates the fighter's strength and returns the log line for
	// the attack.
	Attack(f Fighter) string
}

// NewAttackMode builds the attack mode variant for a definition.
func NewAttackMode(def *gamedata.AttackModeDef) (AttackMode, error) {
	if def == nil {
		return nil, errors.New("nil attack mode definition")
	}
	switch def.ID {
	case AttackModeNormal:
		return &normalAttack{def: def}, nil
	case AttackModePoweredUp:
		return &poweredUpAttack{def: def}, nil
	case AttackModeDefeated:
		return &defeatedAttack{def: def}, nil
	default:
		return nil, fmt.Errorf("unknown attack mode %q", def.ID)
	}
}

// normalAttack grows strength slowly with each attack.
type normalAttack struct {
	def *gamedata.AttackModeDef
}

func (m *normalAttack) ID() string   { return m.def.ID }
func (m *normalAttack) Name() string { return m.def.Name }

func (m *normalAttack) Attack(f Fighter) string {
	f.SetStrength(f.GetStrength() + m.def.StrengthGain)
	return m.def.Message
}

// poweredUpAttack grows strength quickly with each attack.
type poweredUpAttack struct {
	def *gamedata.AttackModeDef
}

func (m *poweredUpAttack) ID() string   { return m.def.ID }
func (m *poweredUpAttack) Name() string { return m.def.Name }

func (m *poweredUpAttack) Attack(f Fighter) string {
	f.SetStrength(f.GetStrength() + m.def.StrengthGain)
	return m.def.Message
}

// defeatedAttack zeroes strength; a defeated character cannot gain any.
type defeatedAttack struct {
	def *gamedata.AttackModeDef
}

func (m *defeatedAttack) ID() string   { return m.def.ID }
func (m *defeatedAttack) Name() string { return m.def.Name }

func (m *defeatedAttack) Attack(f Fighter) string {
	f.SetStrength(0)
	return m.def.Message
}
