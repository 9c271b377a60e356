// Package engine implements the scoundrel rules: deck construction, card
// resolution, room bookkeeping and the game state machine.
//
// Everything here is synchronous and works on values. Machine methods never
// modify the game they are given; they return the next version of it or a
// rejection error carrying one of the Reason* codes.
package engine

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
)

// MachineConfig holds the dependencies of the state machine
type MachineConfig struct {
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *MachineConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

// Machine routes intents to the resolver and room manager and owns the
// phase transitions of a game.
type Machine struct {
	roller dice.Roller
}

// NewMachine creates a state machine
func NewMachine(cfg *MachineConfig) (*Machine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Machine{roller: cfg.DiceRoller}, nil
}

// NewGame starts a game at version 1 with the first room dealt
func (m *Machine) NewGame(gameID string) (*entities.Game, error) {
	if gameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	game := &entities.Game{ID: gameID}
	if err := m.reset(game); err != nil {
		return nil, err
	}
	game.Version = 1
	return game, nil
}

// Play plays a card from the current room. A monster only moves the game to
// PhaseAwaitingMonsterChoice; the fight happens in ResolveMonster.
func (m *Machine) Play(game *entities.Game, cardID string) (*entities.Game, error) {
	if game.Phase.IsTerminal() {
		return nil, errGameOver(game.Phase)
	}
	if game.Phase == entities.PhaseAwaitingMonsterChoice {
		return nil, errChoicePending(game.PendingCardID)
	}

	idx, ok := game.Room.FindInHand(cardID)
	if !ok {
		return nil, errNotInHand(cardID)
	}
	card := game.Room.Hand[idx]

	result := Resolve(card, game.Player, ChoiceUnset)
	next := game.Clone()

	if result.Kind == ResultChoiceRequired {
		next.Phase = entities.PhaseAwaitingMonsterChoice
		next.PendingCardID = card.ID
		next.Message = result.Message
		next.Notice = ""
		return commit(next), nil
	}

	return m.apply(next, card, result)
}

// ResolveMonster fights the pending monster. A weapon request that the
// durability floor forbids is downgraded to bare hands and flagged with
// ReasonWeaponTooTired in the notice.
func (m *Machine) ResolveMonster(game *entities.Game, useWeapon bool) (*entities.Game, error) {
	if game.Phase.IsTerminal() {
		return nil, errGameOver(game.Phase)
	}
	if game.Phase != entities.PhaseAwaitingMonsterChoice {
		return nil, errNoPendingChoice()
	}

	card, ok := game.PendingCard()
	if !ok {
		return nil, errors.Internalf("pending card %s is not in hand", game.PendingCardID)
	}

	result := Resolve(card, game.Player, ChoiceFor(useWeapon))

	next := game.Clone()
	next.PendingCardID = ""
	return m.apply(next, card, result)
}

// SkipRoom abandons a freshly dealt room
func (m *Machine) SkipRoom(game *entities.Game) (*entities.Game, error) {
	if game.Phase.IsTerminal() {
		return nil, errGameOver(game.Phase)
	}
	if game.Phase == entities.PhaseAwaitingMonsterChoice {
		return nil, errSkipNotAllowed("a monster is waiting for a weapon choice")
	}

	room, err := SkipRoom(game.Room, m.roller)
	if err != nil {
		return nil, err
	}

	next := game.Clone()
	next.Room = room
	next.Message = msgSkipped
	next.Notice = ""
	return commit(next), nil
}

// Restart deals a brand new game under the same ID. Allowed in every phase.
func (m *Machine) Restart(game *entities.Game) (*entities.Game, error) {
	next := game.Clone()
	if err := m.reset(next); err != nil {
		return nil, err
	}
	return commit(next), nil
}

func (m *Machine) reset(game *entities.Game) error {
	deck, err := NewDeck(m.roller)
	if err != nil {
		return errors.Wrap(err, "failed to build deck")
	}

	room, _ := DealRoom(entities.RoomState{Deck: deck, Discard: []entities.Card{}})

	game.Phase = entities.PhaseAwaitingAction
	game.Player = entities.NewPlayerState()
	game.Room = room
	game.PendingCardID = ""
	game.Message = msgWelcome
	game.Notice = ""
	return nil
}

// apply commits a resolved card: player state, room bookkeeping, then the
// terminal checks. Defeat wins over everything and suppresses the next deal.
func (m *Machine) apply(next *entities.Game, card entities.Card, result Result) (*entities.Game, error) {
	room, roomEnded, err := RecordPlay(next.Room, card.ID)
	if err != nil {
		return nil, err
	}

	next.Player = result.Player
	next.Room = room
	next.Phase = entities.PhaseAwaitingAction
	next.Message = result.Message
	next.Notice = ""
	if result.WeaponTooTired {
		next.Notice = ReasonWeaponTooTired
	}

	if next.Player.Health <= 0 {
		next.Phase = entities.PhaseDefeat
		next.Message = joinMessages(result.Message, msgDefeat)
		return commit(next), nil
	}

	if roomEnded {
		dealt, ok := DealRoom(next.Room)
		if !ok {
			next.Phase = entities.PhaseVictory
			next.Message = joinMessages(result.Message, msgVictory)
			return commit(next), nil
		}
		next.Room = dealt
	}

	return commit(next), nil
}

func commit(next *entities.Game) *entities.Game {
	next.Version++
	return next
}

func joinMessages(msgs ...string) string {
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		if msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, " ")
}
