package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-scoundrel/cmd/server/client"
	scoundrelv1alpha1 "github.com/KirkDiggler/rpg-scoundrel/internal/api/scoundrel/v1alpha1"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
)

// session reads commands line by line and keeps the last state it saw so
// cards can be picked by their position in the room
type session struct {
	client  scoundrelv1alpha1.GameServiceClient
	in      io.Reader
	out     io.Writer
	timeout time.Duration

	gameID string
	state  *scoundrelv1alpha1.GameState
}

func (s *session) run(ctx context.Context) error {
	if err := s.start(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.in)
	s.prompt()
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			s.prompt()
			continue
		}

		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		if err := s.handle(ctx, fields); err != nil {
			fmt.Fprintf(s.out, "❌ %s\n", describe(err))
		}
		s.prompt()
	}
	return scanner.Err()
}

func (s *session) start(ctx context.Context) error {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.gameID != "" {
		resp, err := s.client.GetState(callCtx, &scoundrelv1alpha1.GetStateRequest{GameID: s.gameID})
		if err != nil {
			return fmt.Errorf("failed to resume game %s: %w", s.gameID, err)
		}
		return s.show(resp.State)
	}

	resp, err := s.client.NewGame(callCtx, &scoundrelv1alpha1.NewGameRequest{})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	s.gameID = resp.State.GetGameID()
	return s.show(resp.State)
}

func (s *session) handle(ctx context.Context, fields []string) error {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	switch fields[0] {
	case "play", "p":
		if len(fields) != 2 {
			return errors.InvalidArgument("usage: play <n|card-id>")
		}
		cardID, err := s.resolveCard(fields[1])
		if err != nil {
			return err
		}
		resp, err := s.client.PlayCard(callCtx, &scoundrelv1alpha1.PlayCardRequest{GameID: s.gameID, CardID: cardID})
		if err != nil {
			return err
		}
		return s.show(resp.State)

	case "fight", "f":
		useWeapon := len(fields) > 1 && (fields[1] == "weapon" || fields[1] == "w")
		resp, err := s.client.ResolveMonster(callCtx, &scoundrelv1alpha1.ResolveMonsterRequest{GameID: s.gameID, UseWeapon: useWeapon})
		if err != nil {
			return err
		}
		return s.show(resp.State)

	case "skip", "s":
		resp, err := s.client.SkipRoom(callCtx, &scoundrelv1alpha1.SkipRoomRequest{GameID: s.gameID})
		if err != nil {
			return err
		}
		return s.show(resp.State)

	case "state":
		resp, err := s.client.GetState(callCtx, &scoundrelv1alpha1.GetStateRequest{GameID: s.gameID})
		if err != nil {
			return err
		}
		return s.show(resp.State)

	case "restart":
		resp, err := s.client.Restart(callCtx, &scoundrelv1alpha1.RestartRequest{GameID: s.gameID})
		if err != nil {
			return err
		}
		return s.show(resp.State)

	default:
		return errors.InvalidArgumentf("unknown command %q", fields[0])
	}
}

// resolveCard accepts a 1-based room position or a card ID
func (s *session) resolveCard(arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}

	hand := s.state.GetHand()
	if n < 1 || n > len(hand) {
		return "", errors.InvalidArgumentf("pick a card between 1 and %d", len(hand))
	}
	return hand[n-1].ID, nil
}

func (s *session) show(state *scoundrelv1alpha1.GameState) error {
	s.state = state
	return client.Render(s.out, state)
}

func (s *session) prompt() {
	fmt.Fprint(s.out, "> ")
}

func describe(err error) string {
	converted := errors.FromGRPCError(err)
	var e *errors.Error
	if !errors.As(converted, &e) {
		return err.Error()
	}
	if e.Reason != "" {
		return e.Reason + ": " + e.Message
	}
	return e.Message
}
