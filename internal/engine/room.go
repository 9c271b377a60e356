package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
)

const (
	// RoomSize is the number of face-up cards dealt per room
	RoomSize = 4

	// PlaysPerRoom is the number of plays that clear a room
	PlaysPerRoom = 3
)

// DealRoom puts the leftover hand in front of the deck and deals the first
// RoomSize cards. It returns false, with the room untouched, when there is
// nothing left to deal.
func DealRoom(room entities.RoomState) (entities.RoomState, bool) {
	total := make([]entities.Card, 0, room.CardsRemaining())
	total = append(total, room.Hand...)
	total = append(total, room.Deck...)
	if len(total) == 0 {
		return room, false
	}

	n := min(RoomSize, len(total))
	next := room.Clone()
	next.Hand = entities.CloneCards(total[:n])
	next.Deck = entities.CloneCards(total[n:])
	next.CardsPlayed = 0
	next.CanSkip = true
	return next, true
}

// RecordPlay moves the played card from hand to discard. When the room is
// done the remaining hand is discarded with it and roomEnded is true.
//
// A room is done after PlaysPerRoom plays, or earlier if a short final room
// runs out of cards.
func RecordPlay(room entities.RoomState, cardID string) (next entities.RoomState, roomEnded bool, err error) {
	idx, ok := room.FindInHand(cardID)
	if !ok {
		return room, false, errNotInHand(cardID)
	}

	next = room.Clone()
	played := next.Hand[idx]
	next.Hand = append(next.Hand[:idx], next.Hand[idx+1:]...)
	next.Discard = append(next.Discard, played)
	next.CardsPlayed++
	next.CanSkip = false

	if next.CardsPlayed >= PlaysPerRoom || len(next.Hand) == 0 {
		next.Discard = append(next.Discard, next.Hand...)
		next.Hand = []entities.Card{}
		next.CardsPlayed = 0
		return next, true, nil
	}
	return next, false, nil
}

// SkipRoom shuffles the untouched room back into the deck and deals a new
// one. The new room cannot be skipped.
func SkipRoom(room entities.RoomState, roller dice.Roller) (entities.RoomState, error) {
	if room.CardsPlayed > 0 {
		return room, errSkipNotAllowed("a card was already played in this room")
	}
	if !room.CanSkip {
		return room, errSkipNotAllowed("this room cannot be skipped")
	}

	pool := make([]entities.Card, 0, room.CardsRemaining())
	pool = append(pool, room.Deck...)
	pool = append(pool, room.Hand...)
	if err := Shuffle(pool, roller); err != nil {
		return room, errors.Wrap(err, "failed to shuffle skipped room")
	}

	next := room.Clone()
	next.Hand = nil
	next.Deck = pool
	next, _ = DealRoom(next)
	next.CanSkip = false
	return next, nil
}
