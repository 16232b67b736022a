package combat

import (
	"errors"
	"fmt"

	"github.com/samdwyer/questband/internal/gamedata"
)

// Effect IDs as they appear in effects.json.
const (
	EffectBoost  = "boost"
	EffectDamage = "damage"
)

// Effect is a one-shot stat modifier. Every effect exposes both capabilities
// and callers invoke both in boost-then-damage order; the capability that
// does not apply to a variant mutates nothing and returns an empty line.
type Effect interface {
	ID() string
	Name() string

	ApplyBoost(f Fighter) string
	ApplyDamage(f Fighter) string
}

// NewEffect builds the effect variant for a definition.
func NewEffect(def *gamedata.EffectDef) (Effect, error) {
	if def == nil {
		return nil, errors.New("nil effect definition")
	}
	switch def.ID {
	case EffectBoost:
		return &boostEffect{def: def}, nil
	case EffectDamage:
		return &damageEffect{def: def}, nil
	default:
		return nil, fmt.Errorf("unknown effect %q", def.ID)
	}
}

// boostEffect raises strength; its damage capability is inert.
type boostEffect struct {
	def *gamedata.EffectDef
}

func (e *boostEffect) ID() string   { return e.def.ID }
func (e *boostEffect) Name() string { return e.def.Name }

func (e *boostEffect) ApplyBoost(f Fighter) string {
	f.SetStrength(f.GetStrength() + e.def.StrengthGain)
	return e.def.Message
}

func (e *boostEffect) ApplyDamage(Fighter) string { return "" }

// damageEffect lowers hp; its boost capability is inert.
type damageEffect struct {
	def *gamedata.EffectDef
}

func (e *damageEffect) ID() string   { return e.def.ID }
func (e *damageEffect) Name() string { return e.def.Name }

func (e *damageEffect) ApplyBoost(Fighter) string { return "" }

func (e *damageEffect) ApplyDamage(f Fighter) string {
	f.SetHP(f.GetHP() - e.def.HPCost)
	return e.def.Message
}
