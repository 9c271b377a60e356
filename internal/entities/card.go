// Package entities provides the core data structures of a scoundrel game.
package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// CardKind identifies what a card does when played
type CardKind string

// Card kinds
const (
	CardKindMonster CardKind = "monster"
	CardKindWeapon  CardKind = "weapon"
	CardKindPotion  CardKind = "potion"
)

// Card value bounds
const (
	MinCardValue    = 1
	MaxMonsterValue = 14
	MaxItemValue    = 10
)

// MaxValue returns the highest legal value for the kind, 0 for unknown kinds
func (k CardKind) MaxValue() int {
	switch k {
	case CardKindMonster:
		return MaxMonsterValue
	case CardKindWeapon, CardKindPotion:
		return MaxItemValue
	default:
		return 0
	}
}

// Card is an immutable playing card. Two cards may share kind and value;
// ID tells them apart.
type Card struct {
	ID    string   `json:"id"`
	Kind  CardKind `json:"kind"`
	Value int      `json:"value"`
}

var _ core.Entity = Card{}

// GetID returns the card's stable identifier
func (c Card) GetID() string {
	return c.ID
}

// GetType returns the card kind
func (c Card) GetType() string {
	return string(c.Kind)
}

// Valid reports whether kind and value are within the deck's bounds
func (c Card) Valid() bool {
	return c.Value >= MinCardValue && c.Value <= c.Kind.MaxValue()
}

func (c Card) String() string {
	switch c.Kind {
	case CardKindMonster:
		return fmt.Sprintf("Monster %d", c.Value)
	case CardKindWeapon:
		return fmt.Sprintf("Weapon %d", c.Value)
	case CardKindPotion:
		return fmt.Sprintf("Potion %d", c.Value)
	default:
		return fmt.Sprintf("%s %d", c.Kind, c.Value)
	}
}

// CloneCards copies a card slice; nil stays nil
func CloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
