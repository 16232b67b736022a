package gamedata

// AttackModeDef defines an attack mode loaded from JSON. The attack mode
// determines how attacking changes the character's strength.
type AttackModeDef struct {
	ID           string `json:"id"`           // Unique identifier (e.g., "normal")
	Name         string `json:"name"`         // Display name (e.g., "Normal")
	Message      string `json:"message"`      // Console line printed on attack
	StrengthGain int    `json:"strengthGain"` // Strength gained per attack (unused by "defeated")
}

// AttackModesFile represents the structure of attack_modes.json.
type AttackModesFile struct {
	AttackModes []AttackModeDef `json:"attackModes"`
}

// LoadAttackModes loads attack mode definitions from the embedded
// attack_modes.json file, in menu order.
func LoadAttackModes() ([]AttackModeDef, error) {
	file, err := Load[AttackModesFile]("attack_modes.json")
	if err != nil {
		return nil, err
	}
	return file.AttackModes, nil
}
