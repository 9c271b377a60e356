package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/idgen"
)

const (
	// DeckSize is the number of cards in a fresh deck: 28 monsters, 10
	// weapons and 10 potions
	DeckSize = 48

	// MonstersPerValue is how many monsters share each value
	MonstersPerValue = 2
)

// BuildDeck returns the 48 cards of a game in a fixed order: two monsters of
// each value 1-14, then a weapon and a potion of each value 1-10.
func BuildDeck(ids idgen.Generator) []entities.Card {
	deck := make([]entities.Card, 0, DeckSize)
	for v := entities.MinCardValue; v <= entities.MaxMonsterValue; v++ {
		for i := 0; i < MonstersPerValue; i++ {
			deck = append(deck, entities.Card{ID: ids.Generate(), Kind: entities.CardKindMonster, Value: v})
		}
	}
	for v := entities.MinCardValue; v <= entities.MaxItemValue; v++ {
		deck = append(deck,
			entities.Card{ID: ids.Generate(), Kind: entities.CardKindWeapon, Value: v},
			entities.Card{ID: ids.Generate(), Kind: entities.CardKindPotion, Value: v},
		)
	}
	return deck
}

// Shuffle permutes cards in place with Fisher-Yates. The roller picks each
// swap index, so a uniform roller yields a uniform permutation.
func Shuffle(cards []entities.Card, roller dice.Roller) error {
	for i := len(cards) - 1; i > 0; i-- {
		// Roll(n) is 1..n
		r, err := roller.Roll(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to roll shuffle index")
		}
		j := r - 1
		if j < 0 || j > i {
			return errors.Internalf("roller returned %d for a d%d", r, i+1)
		}
		cards[i], cards[j] = cards[j], cards[i]
	}
	return nil
}

// NewDeck builds a deck with fresh card IDs and shuffles it
func NewDeck(roller dice.Roller) ([]entities.Card, error) {
	deck := BuildDeck(idgen.NewSequential("card"))
	if err := Shuffle(deck, roller); err != nil {
		return nil, err
	}
	return deck, nil
}
