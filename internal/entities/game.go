package entities

import "time"

// Phase is the state machine tag of a game
type Phase string

// Game phases
const (
	PhaseAwaitingAction        Phase = "awaiting_action"
	PhaseAwaitingMonsterChoice Phase = "awaiting_monster_choice"
	PhaseVictory               Phase = "victory"
	PhaseDefeat                Phase = "defeat"
)

// IsTerminal reports whether the game has ended
func (p Phase) IsTerminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// Game is the authoritative aggregate of one play-through. Version increases
// by one with every accepted intent.
type Game struct {
	ID      string      `json:"id"`
	Version int64       `json:"version"`
	Phase   Phase       `json:"phase"`
	Player  PlayerState `json:"player"`
	Room    RoomState   `json:"room"`

	// PendingCardID is the monster awaiting a weapon/bare-hands choice
	PendingCardID string `json:"pending_card_id,omitempty"`

	Message string `json:"message"`
	Notice  string `json:"notice,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Clone returns a deep copy
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	out := *g
	out.Player = g.Player.Clone()
	out.Room = g.Room.Clone()
	return &out
}

// PendingCard returns the monster awaiting a choice
func (g *Game) PendingCard() (Card, bool) {
	if g.PendingCardID == "" {
		return Card{}, false
	}
	i, ok := g.Room.FindInHand(g.PendingCardID)
	if !ok {
		return Card{}, false
	}
	return g.Room.Hand[i], true
}

// GameSnapshot is the read-only view handed to presentation layers
type GameSnapshot struct {
	GameID                string `json:"game_id"`
	Version               int64  `json:"version"`
	Phase                 Phase  `json:"phase"`
	Health                int    `json:"health"`
	MaxHealth             int    `json:"max_health"`
	Weapon                *Card  `json:"weapon,omitempty"`
	WeaponDurabilityFloor *int   `json:"weapon_durability_floor,omitempty"`
	Hand                  []Card `json:"hand"`
	PendingCard           *Card  `json:"pending_card,omitempty"`
	CardsRemaining        int    `json:"cards_remaining"`
	CardsPlayedThisRoom   int    `json:"cards_played_this_room"`
	DiscardCount          int    `json:"discard_count"`
	Message               string `json:"message"`
	Notice                string `json:"notice,omitempty"`
	CanSkip               bool   `json:"can_skip"`
}

// Snapshot copies the renderable state out of the aggregate
func (g *Game) Snapshot() *GameSnapshot {
	player := g.Player.Clone()
	snap := &GameSnapshot{
		GameID:                g.ID,
		Version:               g.Version,
		Phase:                 g.Phase,
		Health:                player.Health,
		MaxHealth:             MaxHealth,
		Weapon:                player.Weapon,
		WeaponDurabilityFloor: player.DurabilityFloor,
		Hand:                  CloneCards(g.Room.Hand),
		CardsRemaining:        g.Room.CardsRemaining(),
		CardsPlayedThisRoom:   g.Room.CardsPlayed,
		DiscardCount:          len(g.Room.Discard),
		Message:               g.Message,
		Notice:                g.Notice,
		CanSkip:               g.Room.CanSkip && g.Phase == PhaseAwaitingAction,
	}
	if snap.Hand == nil {
		snap.Hand = []Card{}
	}
	if pending, ok := g.PendingCard(); ok {
		snap.PendingCard = &pending
	}
	return snap
}
