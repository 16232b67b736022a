package gamedata

import "errors"

// Catalog holds all loaded definitions and provides menu ordering and
// by-ID lookup.
type Catalog struct {
	attackModes []AttackModeDef
	fightModes  []FightModeDef
	actions     []ActionDef
	effects     []EffectDef

	attackModesByID map[string]*AttackModeDef
	fightModesByID  map[string]*FightModeDef
	actionsByID     map[string]*ActionDef
	effectsByID     map[string]*EffectDef
}

// LoadCatalog loads every definition file from the embedded filesystem and
// builds the lookup maps. An empty definition set is an error.
func LoadCatalog() (*Catalog, error) {
	attackModes, err := LoadAttackModes()
	if err != nil {
		return nil, err
	}
	if len(attackModes) == 0 {
		return nil, errors.New("no attack modes loaded from attack_modes.json")
	}

	fightModes, err := LoadFightModes()
	if err != nil {
		return nil, err
	}
	if len(fightModes) == 0 {
		return nil, errors.New("no fight modes loaded from fight_modes.json")
	}

	actions, err := LoadActions()
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, errors.New("no actions loaded from actions.json")
	}

	effects, err := LoadEffects()
	if err != nil {
		return nil, err
	}
	if len(effects) == 0 {
		return nil, errors.New("no effects loaded from effects.json")
	}

	c := &Catalog{
		attackModes:     attackModes,
		fightModes:      fightModes,
		actions:         actions,
		effects:         effects,
		attackModesByID: make(map[string]*AttackModeDef, len(attackModes)),
		fightModesByID:  make(map[string]*FightModeDef, len(fightModes)),
		actionsByID:     make(map[string]*ActionDef, len(actions)),
		effectsByID:     make(map[string]*EffectDef, len(effects)),
	}
	for i := range attackModes {
		c.attackModesByID[attackModes[i].ID] = &c.attackModes[i]
	}
	for i := range fightModes {
		c.fightModesByID[fightModes[i].ID] = &c.fightModes[i]
	}
	for i := range actions {
		c.actionsByID[actions[i].ID] = &c.actions[i]
	}
	for i := range effects {
		c.effectsByID[effects[i].ID] = &c.effects[i]
	}
	return c, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// AttackModes returns all attack mode definitions in menu order.
func (c *Catalog) AttackModes() []AttackModeDef {
	return c.attackModes
}

// AttackMode returns the attack mode with the given ID, or nil if not found.
func (c *Catalog) AttackMode(id string) *AttackModeDef {
	return c.attackModesByID[id]
}

// FightModes returns all fight mode definitions in menu order.
func (c *Catalog) FightModes() []FightModeDef {
	return c.fightModes
}

// FightMode returns the fight mode with the given ID, or nil if not found.
func (c *Catalog) FightMode(id string) *FightModeDef {
	return c.fightModesByID[id]
}

// Actions returns all action definitions in menu order.
func (c *Catalog) Actions() []ActionDef {
	return c.actions
}

// Action returns the action with the given ID, or nil if not found.
func (c *Catalog) Action(id string) *ActionDef {
	return c.actionsByID[id]
}

// Effects returns all effect definitions in menu order.
func (c *Catalog) Effects() []EffectDef {
	return c.effects
}

// Effect returns the effect with the given ID, or nil if not found.
func (c *Catalog) Effect(id string) *EffectDef {
	return c.effectsByID[id]
}
