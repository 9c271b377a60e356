package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	scoundrelv1alpha1 "github.com/KirkDiggler/rpg-scoundrel/internal/api/scoundrel/v1alpha1"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
)

// Render prints a game state for a person at a terminal
func Render(w io.Writer, state *scoundrelv1alpha1.GameState) error {
	if state == nil {
		return errors.Internal("server returned no game state")
	}

	var b strings.Builder

	fmt.Fprintf(&b, "🃏 Game %s (v%d)\n\n", state.GameID, state.Version)
	fmt.Fprintf(&b, "Health: %d/%d\n", state.Health, state.MaxHealth)

	if state.Weapon != nil {
		fmt.Fprintf(&b, "Weapon: %s", formatCard(state.Weapon))
		if state.WeaponDurabilityFloor != nil {
			fmt.Fprintf(&b, " (only monsters below %d)", *state.WeaponDurabilityFloor)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Weapon: none\n")
	}

	fmt.Fprintf(&b, "Deck: %d cards, discard: %d\n", state.CardsRemaining, state.DiscardCount)

	fmt.Fprintf(&b, "\nRoom (%d played):\n", state.CardsPlayedThisRoom)
	for _, card := range state.Hand {
		marker := "  "
		if state.PendingCard != nil && state.PendingCard.ID == card.ID {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%-8s %s\n", marker, card.ID, formatCard(card))
	}

	if state.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", state.Message)
	}
	if state.Notice != "" {
		fmt.Fprintf(&b, "Note: %s\n", state.Notice)
	}

	b.WriteString("\n")
	b.WriteString(nextStep(state))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON prints the raw state
func RenderJSON(w io.Writer, state *scoundrelv1alpha1.GameState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}

func formatCard(card *scoundrelv1alpha1.Card) string {
	switch card.Kind {
	case scoundrelv1alpha1.CardKindMonster:
		return fmt.Sprintf("👹 Monster %d", card.Value)
	case scoundrelv1alpha1.CardKindWeapon:
		return fmt.Sprintf("🗡️ Weapon %d", card.Value)
	case scoundrelv1alpha1.CardKindPotion:
		return fmt.Sprintf("🧪 Potion %d", card.Value)
	default:
		return fmt.Sprintf("%s %d", card.Kind, card.Value)
	}
}

func nextStep(state *scoundrelv1alpha1.GameState) string {
	switch state.Phase {
	case scoundrelv1alpha1.PhaseAwaitingMonsterChoice:
		return "Fight the monster: fight " + state.GameID + " [--weapon]"
	case scoundrelv1alpha1.PhaseVictory:
		return "🏆 Victory! restart " + state.GameID + " to play again"
	case scoundrelv1alpha1.PhaseDefeat:
		return "💀 Defeat. restart " + state.GameID + " to try again"
	}

	if state.CanSkip {
		return "Play a card: play " + state.GameID + " <card-id>, or skip " + state.GameID
	}
	return "Play a card: play " + state.GameID + " <card-id>"
}

// describeError turns a gRPC failure into a one-line error naming the
// rejection reason when the server sent one
func describeError(err error) error {
	converted := errors.FromGRPCError(err)
	if reason := errors.GetReason(converted); reason != "" {
		return fmt.Errorf("%s: %s", reason, messageOf(converted))
	}
	return fmt.Errorf("request failed: %w", converted)
}

func messageOf(err error) string {
	var e *errors.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
