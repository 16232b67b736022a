package combat

import (
	"errors"
	"fmt"

	"github.com/samdwyer/questband/internal/gamedata"
)

// Fight mode IDs as they appear in fight_modes.json.
const (
	FightModeMelee  = "melee"
	FightModeRanged = "ranged"
	FightModeMagic  = "magic"
)

// FightMode determines how much hp a fight costs the fighter.
type FightMode interface {
	ID() string
	Name() string

	// Fight mutates the fighter's hp and returns the log line for the
	// fight. There is no lower bound on hp; the fighter's setter only
	// caps the top.
	Fight(f Fighter) string
}

// NewFightMode builds the fight mode variant for a definition. All fight
// modes share one shape (a flat hp cost); the constructor still rejects IDs
// outside the closed set.
func NewFightMode(def *gamedata.FightModeDef) (FightMode, error) {
	if def == nil {
		return nil, errors.New("nil fight mode definition")
	}
	switch def.ID {
	case FightModeMelee, FightModeRanged, FightModeMagic:
		return &fightMode{def: def}, nil
	default:
		return nil, fmt.Errorf("unknown fight mode %q", def.ID)
	}
}

type fightMode struct {
	def *gamedata.FightModeDef
}

func (m *fightMode) ID() string   { return m.def.ID }
func (m *fightMode) Name() string { return m.def.Name }

func (m *fightMode) Fight(f Fighter) string {
	f.SetHP(f.GetHP() - m.def.HPCost)
	return m.def.Message
}
