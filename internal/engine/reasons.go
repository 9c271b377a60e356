package engine

import (
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
)

// Rejection reasons attached to errors returned for illegal intents
const (
	ReasonNotInHand       = "NOT_IN_HAND"
	ReasonNoPendingChoice = "NO_PENDING_CHOICE"
	ReasonSkipNotAllowed  = "SKIP_NOT_ALLOWED"
	ReasonChoicePending   = "CHOICE_PENDING"
	ReasonGameOver        = "GAME_OVER"

	// ReasonWeaponTooTired is reported as a notice: the intent still resolves,
	// bare handed
	ReasonWeaponTooTired = "WEAPON_TOO_TIRED"
)

func errNotInHand(cardID string) error {
	return errors.InvalidArgumentf("card %s is not in the current room", cardID).
		WithReason(ReasonNotInHand).
		WithMeta("card_id", cardID)
}

func errNoPendingChoice() error {
	return errors.FailedPrecondition("no monster is waiting for a weapon choice").
		WithReason(ReasonNoPendingChoice)
}

func errSkipNotAllowed(msg string) error {
	return errors.FailedPrecondition(msg).WithReason(ReasonSkipNotAllowed)
}

func errChoicePending(cardID string) error {
	return errors.FailedPrecondition("resolve the pending monster first").
		WithReason(ReasonChoicePending).
		WithMeta("card_id", cardID)
}

func errGameOver(phase entities.Phase) error {
	return errors.FailedPreconditionf("the game is over (%s), restart to play again", phase).
		WithReason(ReasonGameOver)
}
