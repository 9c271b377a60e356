package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
)

// Monster returns a monster card with a readable ID like "m5"
func Monster(value int) entities.Card {
	return entities.Card{ID: fmt.Sprintf("m%d", value), Kind: entities.CardKindMonster, Value: value}
}

// Weapon returns a weapon card with a readable ID like "w3"
func Weapon(value int) entities.Card {
	return entities.Card{ID: fmt.Sprintf("w%d", value), Kind: entities.CardKindWeapon, Value: value}
}

// Potion returns a potion card with a readable ID like "p2"
func Potion(value int) entities.Card {
	return entities.Card{ID: fmt.Sprintf("p%d", value), Kind: entities.CardKindPotion, Value: value}
}

// WithID returns card with its ID replaced, for duplicate kind+value cards
func WithID(card entities.Card, id string) entities.Card {
	card.ID = id
	return card
}

// CreateTestGame returns a game at version 1, full health, awaiting action,
// with a freshly dealt (skippable) room.
func CreateTestGame(hand []entities.Card, deck []entities.Card) *entities.Game {
	return &entities.Game{
		ID:      "game_test",
		Version: 1,
		Phase:   entities.PhaseAwaitingAction,
		Player:  entities.NewPlayerState(),
		Room: entities.RoomState{
			Hand:    hand,
			Deck:    deck,
			Discard: []entities.Card{},
			CanSkip: true,
		},
		Message: "Welcome to Scoundrel!",
	}
}
