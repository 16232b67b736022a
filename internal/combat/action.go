package combat

import (
	"errors"
	"fmt"

	"github.com/samdwyer/questband/internal/gamedata"
)

// Action IDs as they appear in actions.json.
const (
	ActionAttack = "attack"
	ActionDefend = "defend"
	ActionHeal   = "heal"
)

// Frame lines printed around every action.
const (
	actionStartLine = "🔸 preparing action..."
	actionEndLine   = "🔸 action completed."
)

// Action is a user-triggered behavior. Actions are only run through
// ExecuteAction so the frame lines can never be skipped.
type Action interface {
	ID() string
	Name() string

	perform(c Combatant) []string
}

// ExecuteAction runs an action inside the fixed announce-start, perform,
// announce-end sequence and returns the log lines in that order.
func ExecuteAction(a Action, c Combatant) []string {
	lines := make([]string, 0, 3)
	lines = append(lines, actionStartLine)
	lines = append(lines, a.perform(c)...)
	return append(lines, actionEndLine)
}

// NewAction builds the action variant for a definition.
func NewAction(def *gamedata.ActionDef) (Action, error) {
	if def == nil {
		return nil, errors.New("nil action definition")
	}
	switch def.ID {
	case ActionAttack:
		return &attackAction{def: def}, nil
	case ActionDefend:
		return &defendAction{def: def}, nil
	case ActionHeal:
		return &healAction{def: def}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", def.ID)
	}
}

// attackAction defers to the combatant's current attack mode.
type attackAction struct {
	def *gamedata.ActionDef
}

func (a *attackAction) ID() string   { return a.def.ID }
func (a *attackAction) Name() string { return a.def.Name }

func (a *attackAction) perform(c Combatant) []string {
	return []string{c.Attack()}
}

// defendAction prints only; defending never touches stats.
type defendAction struct {
	def *gamedata.ActionDef
}

func (a *defendAction) ID() string   { return a.def.ID }
func (a *defendAction) Name() string { return a.def.Name }

func (a *defendAction) perform(c Combatant) []string {
	return []string{a.def.Message}
}

// healAction restores hp up to the cap.
type healAction struct {
	def *gamedata.ActionDef
}

func (a *healAction) ID() string   { return a.def.ID }
func (a *healAction) Name() string { return a.def.Name }

func (a *healAction) perform(c Combatant) []string {
	c.SetHP(c.GetHP() + a.def.HPRestore)
	return []string{a.def.Message}
}
