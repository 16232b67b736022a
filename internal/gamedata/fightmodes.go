package gamedata

// FightModeDef defines a fight mode loaded from JSON. The fight mode
// determines how much hp a fight costs the character.
type FightModeDef struct {
	ID      string `json:"id"`      // Unique identifier (e.g., "melee")
	Name    string `json:"name"`    // Display name (e.g., "Melee")
	Message string `json:"message"` // Console line printed on fight
	HPCost  int    `json:"hpCost"`  // HP lost per fight
}

// FightModesFile represents the structure of fight_modes.json.
type FightModesFile struct {
	FightModes []FightModeDef `json:"fightModes"`
}

// LoadFightModes loads fight mode definitions from the embedded
// fight_modes.json file, in menu order.
func LoadFightModes() ([]FightModeDef, error) {
	file, err := Load[FightModesFile]("fight_modes.json")
	if err != nil {
		return nil, err
	}
	return file.FightModes, nil
}
