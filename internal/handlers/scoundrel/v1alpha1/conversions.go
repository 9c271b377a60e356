package v1alpha1

import (
	scoundrelv1alpha1 "github.com/KirkDiggler/rpg-scoundrel/internal/api/scoundrel/v1alpha1"
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
)

func convertSnapshotToProto(snap *entities.GameSnapshot) *scoundrelv1alpha1.GameState {
	if snap == nil {
		return nil
	}

	hand := make([]*scoundrelv1alpha1.Card, 0, len(snap.Hand))
	for i := range snap.Hand {
		hand = append(hand, convertCardToProto(&snap.Hand[i]))
	}

	state := &scoundrelv1alpha1.GameState{
		GameID:              snap.GameID,
		Version:             snap.Version,
		Phase:               string(snap.Phase),
		Health:              int32(snap.Health),    //nolint:gosec // bounded by MaxHealth
		MaxHealth:           int32(snap.MaxHealth), //nolint:gosec // constant
		Weapon:              convertCardToProto(snap.Weapon),
		Hand:                hand,
		PendingCard:         convertCardToProto(snap.PendingCard),
		CardsRemaining:      int32(snap.CardsRemaining),      //nolint:gosec // at most a deck
		CardsPlayedThisRoom: int32(snap.CardsPlayedThisRoom), //nolint:gosec // at most a room
		DiscardCount:        int32(snap.DiscardCount),        //nolint:gosec // at most a deck
		Message:             snap.Message,
		Notice:              snap.Notice,
		CanSkip:             snap.CanSkip,
	}
	if snap.WeaponDurabilityFloor != nil {
		floor := int32(*snap.WeaponDurabilityFloor) //nolint:gosec // card values are small
		state.WeaponDurabilityFloor = &floor
	}

	return state
}

func convertCardToProto(card *entities.Card) *scoundrelv1alpha1.Card {
	if card == nil {
		return nil
	}
	return &scoundrelv1alpha1.Card{
		ID:    card.ID,
		Kind:  string(card.Kind),
		Value: int32(card.Value), //nolint:gosec // card values are small
	}
}
