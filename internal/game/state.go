// Package game provides the menu loop and its state management.
package game

// State represents the current menu state.
type State int

const (
	// StateMainMenu is the top-level menu.
	StateMainMenu State = iota
	// StateChangeAttackMode is the attack mode submenu.
	StateChangeAttackMode
	// StateSelectFightMode is the fight mode submenu.
	StateSelectFightMode
	// StatePerformAction is the action submenu.
	StatePerformAction
	// StateApplyEffect is the effect submenu.
	StateApplyEffect
	// StateExit is terminal; reaching it stops the loop.
	StateExit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateChangeAttackMode:
		return "change_attack_mode"
	case StateSelectFightMode:
		return "select_fight_mode"
	case StatePerformAction:
		return "perform_action"
	case StateApplyEffect:
		return "apply_effect"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}
