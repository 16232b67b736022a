package gamedata

// EffectDef defines a one-shot effect loaded from JSON. Exactly one of
// StrengthGain and HPCost is meaningful per effect; the other is zero.
type EffectDef struct {
	ID           string `json:"id"`           // Unique identifier (e.g., "boost")
	Name         string `json:"name"`         // Display name (e.g., "Boost")
	Message      string `json:"message"`      // Console line printed when the effect lands
	StrengthGain int    `json:"strengthGain"` // Strength gained ("boost" only)
	HPCost       int    `json:"hpCost"`       // HP lost ("damage" only)
}

// EffectsFile represents the structure of effects.json.
type EffectsFile struct {
	Effects []EffectDef `json:"effects"`
}

// LoadEffects loads effect definitions from the embedded effects.json file,
// in menu order.
func LoadEffects() ([]EffectDef, error) {
	file, err := Load[EffectsFile]("effects.json")
	if err != nil {
		return nil, err
	}
	return file.Effects, nil
}
