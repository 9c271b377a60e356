package entities

// RoomState holds the cards of a game: the face-up room (Hand), the draw
// pile (Deck) and everything already resolved or thrown away (Discard).
type RoomState struct {
	Hand        []Card `json:"hand"`
	Deck        []Card `json:"deck"`
	Discard     []Card `json:"discard"`
	CardsPlayed int    `json:"cards_played"`
	CanSkip     bool   `json:"can_skip"`
}

// Clone returns a deep copy
func (r RoomState) Clone() RoomState {
	return RoomState{
		Hand:        CloneCards(r.Hand),
		Deck:        CloneCards(r.Deck),
		Discard:     CloneCards(r.Discard),
		CardsPlayed: r.CardsPlayed,
		CanSkip:     r.CanSkip,
	}
}

// CardsRemaining counts the cards still to be faced, hand included
func (r RoomState) CardsRemaining() int {
	return len(r.Hand) + len(r.Deck)
}

// FindInHand returns the hand index of the card with the given ID
func (r RoomState) FindInHand(cardID string) (int, bool) {
	for i, c := range r.Hand {
		if c.ID == cardID {
			return i, true
		}
	}
	return -1, false
}
