package gamedata

// ActionDef defines a game action loaded from JSON.
type ActionDef struct {
	ID        string `json:"id"`        // Unique identifier (e.g., "heal")
	Name      string `json:"name"`      // Display name (e.g., "Heal")
	Message   string `json:"message"`   // Console line printed by the action (empty for "attack")
	HPRestore int    `json:"hpRestore"` // HP restored by the action (only "heal" uses this)
}

// ActionsFile represents the structure of actions.json.
type ActionsFile struct {
	Actions []ActionDef `json:"actions"`
}

// LoadActions loads action definitions from the embedded actions.json file,
// in menu order.
func LoadActions() ([]ActionDef, error) {
	file, err := Load[ActionsFile]("actions.json")
	if err != nil {
		return nil, err
	}
	return file.Actions, nil
}
