package engine

import (
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
)

// Audit checks the invariants every stored game must hold: all 48 cards
// accounted for exactly once, health in range, a room no larger than
// RoomSize, and a pending monster only while a choice is awaited. It returns
// an Internal error listing every violation.
func Audit(game *entities.Game) error {
	if game == nil {
		return errors.InvalidArgument("game is required")
	}

	vb := errors.NewValidationBuilder()

	if game.Player.Health < 0 || game.Player.Health > entities.MaxHealth {
		vb.Fieldf("health", "%d is outside 0-%d", game.Player.Health, entities.MaxHealth)
	}
	if w := game.Player.Weapon; w != nil && (w.Kind != entities.CardKindWeapon || !w.Valid()) {
		vb.Fieldf("weapon", "%s is not a weapon", w)
	}
	if game.Player.DurabilityFloor != nil && game.Player.Weapon == nil {
		vb.Field("weapon", "durability floor set without a weapon")
	}

	room := game.Room
	if len(room.Hand) > RoomSize {
		vb.Fieldf("hand", "holds %d cards", len(room.Hand))
	}
	if room.CardsPlayed < 0 || room.CardsPlayed >= PlaysPerRoom {
		vb.Fieldf("cards_played", "%d is outside 0-%d", room.CardsPlayed, PlaysPerRoom-1)
	}

	auditCards(vb, room)

	_, pending := game.PendingCard()
	switch {
	case game.Phase == entities.PhaseAwaitingMonsterChoice && !pending:
		vb.Field("pending_card", "no monster in hand is awaiting a choice")
	case game.Phase != entities.PhaseAwaitingMonsterChoice && game.PendingCardID != "":
		vb.Fieldf("pending_card", "set during phase %s", game.Phase)
	}
	if pending {
		if card, _ := game.PendingCard(); card.Kind != entities.CardKindMonster {
			vb.Fieldf("pending_card", "%s is not a monster", card)
		}
	}

	if err := vb.Build(); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "game "+game.ID+" is corrupt")
	}
	return nil
}

func auditCards(vb *errors.ValidationBuilder, room entities.RoomState) {
	type kindValue struct {
		kind  entities.CardKind
		value int
	}

	seen := make(map[string]bool, DeckSize)
	counts := make(map[kindValue]int, DeckSize)
	total := 0
	for _, pile := range [][]entities.Card{room.Hand, room.Deck, room.Discard} {
		for _, c := range pile {
			total++
			if !c.Valid() {
				vb.Fieldf("cards", "%s is not a valid card", c)
				continue
			}
			if seen[c.ID] {
				vb.Fieldf("cards", "%s appears twice", c.ID)
			}
			seen[c.ID] = true
			counts[kindValue{c.Kind, c.Value}]++
		}
	}

	if total != DeckSize {
		vb.Fieldf("cards", "%d cards in play, want %d", total, DeckSize)
		return
	}
	for kv, n := range counts {
		want := 1
		if kv.kind == entities.CardKindMonster {
			want = MonstersPerValue
		}
		if n != want {
			vb.Fieldf("cards", "%d copies of %s %d, want %d", n, kv.kind, kv.value, want)
		}
	}
}
