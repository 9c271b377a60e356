package entities

// MaxHealth is both the starting health and the healing cap
const MaxHealth = 20

// PlayerState is the player's health and equipped weapon.
//
// DurabilityFloor is the value of the last monster the equipped weapon
// fought. The weapon cannot be used on a monster whose value is at or above
// the floor. It is nil until the weapon is first used and resets whenever a
// new weapon is equipped.
type PlayerState struct {
	Health          int   `json:"health"`
	Weapon          *Card `json:"weapon,omitempty"`
	DurabilityFloor *int  `json:"durability_floor,omitempty"`
}

// NewPlayerState returns a player at full health with no weapon
func NewPlayerState() PlayerState {
	return PlayerState{Health: MaxHealth}
}

// Clone returns a deep copy
func (p PlayerState) Clone() PlayerState {
	out := PlayerState{Health: p.Health}
	if p.Weapon != nil {
		w := *p.Weapon
		out.Weapon = &w
	}
	if p.DurabilityFloor != nil {
		f := *p.DurabilityFloor
		out.DurabilityFloor = &f
	}
	return out
}

// CanUseWeaponOn reports whether the equipped weapon may fight the monster
func (p PlayerState) CanUseWeaponOn(monster Card) bool {
	if p.Weapon == nil {
		return false
	}
	return p.DurabilityFloor == nil || monster.Value < *p.DurabilityFloor
}

// ClampHealth bounds h to [0, MaxHealth]
func ClampHealth(h int) int {
	if h < 0 {
		return 0
	}
	if h > MaxHealth {
		return MaxHealth
	}
	return h
}
