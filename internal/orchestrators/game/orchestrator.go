// Package game implements the game orchestrator: it loads a game, runs one
// intent through the rules engine and saves the next version.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/rpg-scoundrel/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-scoundrel/internal/engine"
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-scoundrel/internal/repositories/games"
)

// DefaultSessionTTL is how long an idle game is kept
const DefaultSessionTTL = 2 * time.Hour

// Service defines the interface for playing scoundrel games
type Service interface {
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Intents
	PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error)
	ResolveMonster(ctx context.Context, input *ResolveMonsterInput) (*ResolveMonsterOutput, error)
	SkipRoom(ctx context.Context, input *SkipRoomInput) (*SkipRoomOutput, error)
	Restart(ctx context.Context, input *RestartInput) (*RestartOutput, error)

	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	GameRepo    games.Repository
	IDGenerator idgen.Generator
	DiceRoller  dice.Roller
	Clock       clock.Clock

	// SessionTTL defaults to DefaultSessionTTL
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameRepo == nil {
		vb.RequiredField("GameRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	gameRepo   games.Repository
	idGen      idgen.Generator
	machine    *engine.Machine
	clock      clock.Clock
	sessionTTL time.Duration
	locks      *keyedMutex
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	machine, err := engine.NewMachine(&engine.MachineConfig{DiceRoller: cfg.DiceRoller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rules engine")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}

	return &orchestrator{
		gameRepo:   cfg.GameRepo,
		idGen:      cfg.IDGenerator,
		machine:    machine,
		clock:      clk,
		sessionTTL: ttl,
		locks:      newKeyedMutex(),
	}, nil
}

// NewGame deals a fresh game and stores it
func (o *orchestrator) NewGame(ctx context.Context, _ *NewGameInput) (*NewGameOutput, error) {
	game, err := o.machine.NewGame(o.idGen.Generate())
	if err != nil {
		return nil, errors.Wrap(err, "failed to deal new game")
	}

	now := o.clock.Now()
	game.CreatedAt = now
	game.UpdatedAt = now
	game.ExpiresAt = now.Add(o.sessionTTL)

	if _, err := o.gameRepo.Create(ctx, games.CreateInput{Game: game}); err != nil {
		return nil, errors.Wrapf(err, "failed to save game %s", game.ID)
	}

	slog.Info("Game started",
		"game_id", game.ID,
		"expires_at", game.ExpiresAt)

	return &NewGameOutput{Snapshot: game.Snapshot()}, nil
}

// GetState returns the current snapshot of a game
func (o *orchestrator) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	out, err := o.gameRepo.Get(ctx, games.GetInput{ID: input.GameID})
	if err != nil {
		return nil, err
	}

	return &GetStateOutput{Snapshot: out.Game.Snapshot()}, nil
}

// PlayCard plays a card from the current room
func (o *orchestrator) PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}
	if input.CardID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}

	snap, err := o.transition(ctx, input.GameID, "play_card", func(g *entities.Game) (*entities.Game, error) {
		return o.machine.Play(g, input.CardID)
	})
	if err != nil {
		return nil, err
	}

	return &PlayCardOutput{Snapshot: snap}, nil
}

// ResolveMonster fights the pending monster with the weapon or bare hands
func (o *orchestrator) ResolveMonster(ctx context.Context, input *ResolveMonsterInput) (*ResolveMonsterOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	snap, err := o.transition(ctx, input.GameID, "resolve_monster", func(g *entities.Game) (*entities.Game, error) {
		return o.machine.ResolveMonster(g, input.UseWeapon)
	})
	if err != nil {
		return nil, err
	}

	return &ResolveMonsterOutput{Snapshot: snap}, nil
}

// SkipRoom skips the freshly dealt room
func (o *orchestrator) SkipRoom(ctx context.Context, input *SkipRoomInput) (*SkipRoomOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	snap, err := o.transition(ctx, input.GameID, "skip_room", o.machine.SkipRoom)
	if err != nil {
		return nil, err
	}

	return &SkipRoomOutput{Snapshot: snap}, nil
}

// Restart deals a new game under the same ID
func (o *orchestrator) Restart(ctx context.Context, input *RestartInput) (*RestartOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	snap, err := o.transition(ctx, input.GameID, "restart", o.machine.Restart)
	if err != nil {
		return nil, err
	}

	return &RestartOutput{Snapshot: snap}, nil
}

// EndGame drops the game session
func (o *orchestrator) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	unlock := o.locks.Lock(input.GameID)
	defer unlock()

	if _, err := o.gameRepo.Delete(ctx, games.DeleteInput{ID: input.GameID}); err != nil {
		return nil, err
	}

	slog.Info("Game ended", "game_id", input.GameID)

	return &EndGameOutput{}, nil
}

// transition runs one intent under the game's lock: load, apply, save with
// the version that was loaded.
func (o *orchestrator) transition(
	ctx context.Context,
	gameID, intent string,
	apply func(*entities.Game) (*entities.Game, error),
) (*entities.GameSnapshot, error) {
	unlock := o.locks.Lock(gameID)
	defer unlock()

	out, err := o.gameRepo.Get(ctx, games.GetInput{ID: gameID})
	if err != nil {
		return nil, err
	}
	current := out.Game

	next, err := apply(current)
	if err != nil {
		if reason := errors.GetReason(err); reason != "" {
			slog.Info("Intent rejected",
				"game_id", gameID,
				"intent", intent,
				"reason", reason)
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to apply %s", intent)
	}

	now := o.clock.Now()
	next.UpdatedAt = now
	next.ExpiresAt = now.Add(o.sessionTTL)

	if _, err := o.gameRepo.Update(ctx, games.UpdateInput{
		Game:            next,
		ExpectedVersion: current.Version,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to save game %s", gameID)
	}

	slog.Info("Game advanced",
		"game_id", gameID,
		"intent", intent,
		"version", next.Version,
		"phase", next.Phase,
		"health", next.Player.Health)
	if next.Notice != "" {
		slog.Info("Intent downgraded", "game_id", gameID, "notice", next.Notice)
	}

	return next.Snapshot(), nil
}
