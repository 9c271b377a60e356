// Package scoundrelv1alpha1 defines the wire contract of the scoundrel game
// service: request and response messages, the gRPC service descriptor and a
// typed client. Messages travel as JSON through the codec registered in
// codec.go.
package scoundrelv1alpha1

// Card kinds on the wire
const (
	CardKindMonster = "monster"
	CardKindWeapon  = "weapon"
	CardKindPotion  = "potion"
)

// Game phases on the wire
const (
	PhaseAwaitingAction        = "awaiting_action"
	PhaseAwaitingMonsterChoice = "awaiting_monster_choice"
	PhaseVictory               = "victory"
	PhaseDefeat                = "defeat"
)

// Card is a single card in the room or the equipped weapon
type Card struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Value int32  `json:"value"`
}

// GetID returns the card ID
func (c *Card) GetID() string {
	if c == nil {
		return ""
	}
	return c.ID
}

// GameState is everything a client needs to render a game
type GameState struct {
	GameID                string  `json:"game_id"`
	Version               int64   `json:"version"`
	Phase                 string  `json:"phase"`
	Health                int32   `json:"health"`
	MaxHealth             int32   `json:"max_health"`
	Weapon                *Card   `json:"weapon,omitempty"`
	WeaponDurabilityFloor *int32  `json:"weapon_durability_floor,omitempty"`
	Hand                  []*Card `json:"hand"`
	PendingCard           *Card   `json:"pending_card,omitempty"`
	CardsRemaining        int32   `json:"cards_remaining"`
	CardsPlayedThisRoom   int32   `json:"cards_played_this_room"`
	DiscardCount          int32   `json:"discard_count"`
	Message               string  `json:"message"`
	Notice                string  `json:"notice,omitempty"`
	CanSkip               bool    `json:"can_skip"`
}

// GetGameID returns the game ID
func (s *GameState) GetGameID() string {
	if s == nil {
		return ""
	}
	return s.GameID
}

// GetHand returns the cards in the room
func (s *GameState) GetHand() []*Card {
	if s == nil {
		return nil
	}
	return s.Hand
}

// NewGameRequest starts a game
type NewGameRequest struct{}

// NewGameResponse carries the first state of a game
type NewGameResponse struct {
	State *GameState `json:"state"`
}

// GetStateRequest reads a game
type GetStateRequest struct {
	GameID string `json:"game_id"`
}

// GetGameID returns the game ID
func (r *GetStateRequest) GetGameID() string {
	if r == nil {
		return ""
	}
	return r.GameID
}

// GetStateResponse carries the current state of a game
type GetStateResponse struct {
	State *GameState `json:"state"`
}

// PlayCardRequest plays a card from the room
type PlayCardRequest struct {
	GameID string `json:"game_id"`
	CardID string `json:"card_id"`
}

// GetGameID returns the game ID
func (r *PlayCardRequest) GetGameID() string {
	if r == nil {
		return ""
	}
	return r.GameID
}

// GetCardID returns the card ID
func (r *PlayCardRequest) GetCardID() string {
	if r == nil {
		return ""
	}
	return r.CardID
}

// PlayCardResponse carries the state after the play
type PlayCardResponse struct {
	State *GameState `json:"state"`
}

// ResolveMonsterRequest answers the weapon prompt for the pending monster
type ResolveMonsterRequest struct {
	GameID    string `json:"game_id"`
	UseWeapon bool   `json:"use_weapon"`
}

// GetGameID returns the game ID
func (r *ResolveMonsterRequest) GetGameID() string {
	if r == nil {
		return ""
	}
	return r.GameID
}

// GetUseWeapon reports whether the weapon was chosen
func (r *ResolveMonsterRequest) GetUseWeapon() bool {
	return r != nil && r.UseWeapon
}

// ResolveMonsterResponse carries the state after the fight
type ResolveMonsterResponse struct {
	State *GameState `json:"state"`
}

// SkipRoomRequest skips the current room
type SkipRoomRequest struct {
	GameID string `json:"game_id"`
}

// GetGameID returns the game ID
func (r *SkipRoomRequest) GetGameID() string {
	if r == nil {
		return ""
	}
	return r.GameID
}

// SkipRoomResponse carries the state after the skip
type SkipRoomResponse struct {
	State *GameState `json:"state"`
}

// RestartRequest deals a new game under the same ID
type RestartRequest struct {
	GameID string `json:"game_id"`
}

// GetGameID returns the game ID
func (r *RestartRequest) GetGameID() string {
	if r == nil {
		return ""
	}
	return r.GameID
}

// RestartResponse carries the fresh state
type RestartResponse struct {
	State *GameState `json:"state"`
}

// EndGameRequest drops a game session
type EndGameRequest struct {
	GameID string `json:"game_id"`
}

// GetGameID returns the game ID
func (r *EndGameRequest) GetGameID() string {
	if r == nil {
		return ""
	}
	return r.GameID
}

// EndGameResponse is empty
type EndGameResponse struct{}
