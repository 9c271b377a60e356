package game

import (
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
)

// NewGameInput defines the request for starting a game
type NewGameInput struct{}

// NewGameOutput defines the response for starting a game
type NewGameOutput struct {
	Snapshot *entities.GameSnapshot
}

// GetStateInput defines the request for reading a game
type GetStateInput struct {
	GameID string
}

// GetStateOutput defines the response for reading a game
type GetStateOutput struct {
	Snapshot *entities.GameSnapshot
}

// PlayCardInput defines the request for playing a card from the room
type PlayCardInput struct {
	GameID string
	CardID string
}

// PlayCardOutput defines the response for playing a card
type PlayCardOutput struct {
	Snapshot *entities.GameSnapshot
}

// ResolveMonsterInput defines the request for fighting the pending monster
type ResolveMonsterInput struct {
	GameID    string
	UseWeapon bool
}

// ResolveMonsterOutput defines the response for fighting a monster
type ResolveMonsterOutput struct {
	Snapshot *entities.GameSnapshot
}

// SkipRoomInput defines the request for skipping the current room
type SkipRoomInput struct {
	GameID string
}

// SkipRoomOutput defines the response for skipping a room
type SkipRoomOutput struct {
	Snapshot *entities.GameSnapshot
}

// RestartInput defines the request for restarting a game
type RestartInput struct {
	GameID string
}

// RestartOutput defines the response for restarting a game
type RestartOutput struct {
	Snapshot *entities.GameSnapshot
}

// EndGameInput defines the request for ending a game session
type EndGameInput struct {
	GameID string
}

// EndGameOutput defines the response for ending a game session
type EndGameOutput struct{}
