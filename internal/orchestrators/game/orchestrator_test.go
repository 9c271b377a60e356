package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-scoundrel/internal/engine"
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
	"github.com/KirkDiggler/rpg-scoundrel/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-scoundrel/internal/repositories/games"
	gamesmock "github.com/KirkDiggler/rpg-scoundrel/internal/repositories/games/mock"
	"github.com/KirkDiggler/rpg-scoundrel/internal/testutils"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *gamesmock.MockRepository
	clock    *clock.Fixed
	service  game.Service
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = gamesmock.NewMockRepository(s.ctrl)
	s.clock = &clock.Fixed{T: testNow}
	s.ctx = context.Background()

	svc, err := game.NewOrchestrator(&game.Config{
		GameRepo:    s.mockRepo,
		IDGenerator: idgen.NewSequential("game"),
		DiceRoller:  testutils.MaxRoller{},
		Clock:       s.clock,
		SessionTTL:  30 * time.Minute,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) storedGame() *entities.Game {
	g := testutils.CreateTestGame(
		[]entities.Card{testutils.Monster(5), testutils.Potion(3), testutils.Weapon(2), testutils.Monster(9)},
		[]entities.Card{testutils.Monster(1)},
	)
	g.ExpiresAt = testNow.Add(time.Minute)
	return g
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	testCases := []struct {
		name   string
		config *game.Config
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config is required"},
		{
			name:   "missing dependencies",
			config: &game.Config{},
			errMsg: "DiceRoller: is required; GameRepo: is required; IDGenerator: is required",
		},
		{
			name: "negative ttl",
			config: &game.Config{
				GameRepo:    s.mockRepo,
				IDGenerator: idgen.NewSequential("game"),
				DiceRoller:  testutils.MaxRoller{},
				SessionTTL:  -time.Second,
			},
			errMsg: "SessionTTL: must not be negative",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := game.NewOrchestrator(tc.config)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(svc)
		})
	}
}

func (s *OrchestratorTestSuite) TestNewGame() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input games.CreateInput) (*games.CreateOutput, error) {
			s.Equal("game_1", input.Game.ID)
			s.Equal(int64(1), input.Game.Version)
			s.Equal(testNow, input.Game.CreatedAt)
			s.Equal(testNow.Add(30*time.Minute), input.Game.ExpiresAt)
			return &games.CreateOutput{Game: input.Game}, nil
		})

	out, err := s.service.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().NoError(err)

	snap := out.Snapshot
	s.Equal("game_1", snap.GameID)
	s.Equal(entities.PhaseAwaitingAction, snap.Phase)
	s.Equal(entities.MaxHealth, snap.Health)
	s.Equal(entities.MaxHealth, snap.MaxHealth)
	s.Len(snap.Hand, engine.RoomSize)
	s.Equal(engine.DeckSize, snap.CardsRemaining)
	s.True(snap.CanSkip)
	s.Equal("Welcome to Scoundrel!", snap.Message)
}

func (s *OrchestratorTestSuite) TestNewGameStoreFails() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.service.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to save game game_1")
}

func (s *OrchestratorTestSuite) TestGetState() {
	stored := s.storedGame()
	s.mockRepo.EXPECT().
		Get(s.ctx, games.GetInput{ID: "game_test"}).
		Return(&games.GetOutput{Game: stored}, nil)

	out, err := s.service.GetState(s.ctx, &game.GetStateInput{GameID: "game_test"})
	s.Require().NoError(err)
	s.Equal(stored.Snapshot(), out.Snapshot)
}

func (s *OrchestratorTestSuite) TestGetStateNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, games.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("game missing not found"))

	_, err := s.service.GetState(s.ctx, &game.GetStateInput{GameID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRequiredIDs() {
	testCases := []struct {
		name string
		call func() error
	}{
		{name: "get state", call: func() error {
			_, err := s.service.GetState(s.ctx, &game.GetStateInput{})
			return err
		}},
		{name: "play without game", call: func() error {
			_, err := s.service.PlayCard(s.ctx, &game.PlayCardInput{CardID: "m5"})
			return err
		}},
		{name: "play without card", call: func() error {
			_, err := s.service.PlayCard(s.ctx, &game.PlayCardInput{GameID: "game_test"})
			return err
		}},
		{name: "resolve", call: func() error {
			_, err := s.service.ResolveMonster(s.ctx, nil)
			return err
		}},
		{name: "skip", call: func() error {
			_, err := s.service.SkipRoom(s.ctx, &game.SkipRoomInput{})
			return err
		}},
		{name: "restart", call: func() error {
			_, err := s.service.Restart(s.ctx, &game.RestartInput{})
			return err
		}},
		{name: "end", call: func() error {
			_, err := s.service.EndGame(s.ctx, &game.EndGameInput{})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(errors.IsInvalidArgument(tc.call()))
		})
	}
}

func (s *OrchestratorTestSuite) TestPlayCardSavesNextVersion() {
	s.clock.T = testNow.Add(5 * time.Minute)
	stored := s.storedGame()

	s.mockRepo.EXPECT().
		Get(s.ctx, games.GetInput{ID: "game_test"}).
		Return(&games.GetOutput{Game: stored}, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input games.UpdateInput) (*games.UpdateOutput, error) {
			s.Equal(int64(1), input.ExpectedVersion)
			s.Equal(int64(2), input.Game.Version)
			s.Equal(testNow.Add(5*time.Minute), input.Game.UpdatedAt)
			s.Equal(testNow.Add(35*time.Minute), input.Game.ExpiresAt)
			return &games.UpdateOutput{Game: input.Game}, nil
		})

	out, err := s.service.PlayCard(s.ctx, &game.PlayCardInput{GameID: "game_test", CardID: "p3"})
	s.Require().NoError(err)

	s.Equal(int64(2), out.Snapshot.Version)
	s.Equal(1, out.Snapshot.CardsPlayedThisRoom)
	s.Equal(1, out.Snapshot.DiscardCount)
	s.False(out.Snapshot.CanSkip)
	s.Equal("You drank a potion and healed 0 HP!", out.Snapshot.Message)
}

func (s *OrchestratorTestSuite) TestPlayMonsterThenResolve() {
	stored := s.storedGame()

	s.mockRepo.EXPECT().
		Get(s.ctx, games.GetInput{ID: "game_test"}).
		Return(&games.GetOutput{Game: stored}, nil)

	var saved *entities.Game
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input games.UpdateInput) (*games.UpdateOutput, error) {
			saved = input.Game
			return &games.UpdateOutput{Game: input.Game}, nil
		})

	played, err := s.service.PlayCard(s.ctx, &game.PlayCardInput{GameID: "game_test", CardID: "m5"})
	s.Require().NoError(err)
	s.Equal(entities.PhaseAwaitingMonsterChoice, played.Snapshot.Phase)
	s.Require().NotNil(played.Snapshot.PendingCard)
	s.Equal("m5", played.Snapshot.PendingCard.ID)

	s.mockRepo.EXPECT().
		Get(s.ctx, games.GetInput{ID: "game_test"}).
		Return(&games.GetOutput{Game: saved}, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input games.UpdateInput) (*games.UpdateOutput, error) {
			s.Equal(int64(2), input.ExpectedVersion)
			return &games.UpdateOutput{Game: input.Game}, nil
		})

	resolved, err := s.service.ResolveMonster(s.ctx, &game.ResolveMonsterInput{GameID: "game_test"})
	s.Require().NoError(err)
	s.Equal(15, resolved.Snapshot.Health)
	s.Nil(resolved.Snapshot.PendingCard)
	s.Equal("You took 5 damage!", resolved.Snapshot.Message)
}

func (s *OrchestratorTestSuite) TestRejectedIntentIsNotSaved() {
	stored := s.storedGame()

	s.mockRepo.EXPECT().
		Get(s.ctx, games.GetInput{ID: "game_test"}).
		Return(&games.GetOutput{Game: stored}, nil)
	// no Update expected

	_, err := s.service.PlayCard(s.ctx, &game.PlayCardInput{GameID: "game_test", CardID: "m1"})
	s.Require().Error(err)
	s.Equal(engine.ReasonNotInHand, errors.GetReason(err))
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGameOverRejected() {
	stored := s.storedGame()
	stored.Phase = entities.PhaseDefeat
	stored.Player.Health = 0

	s.mockRepo.EXPECT().
		Get(s.ctx, games.GetInput{ID: "game_test"}).
		Return(&games.GetOutput{Game: stored}, nil)

	_, err := s.service.SkipRoom(s.ctx, &game.SkipRoomInput{GameID: "game_test"})
	s.Equal(engine.ReasonGameOver, errors.GetReason(err))
}

func (s *OrchestratorTestSuite) TestConcurrentWriteAborts() {
	stored := s.storedGame()

	s.mockRepo.EXPECT().
		Get(s.ctx, games.GetInput{ID: "game_test"}).
		Return(&games.GetOutput{Game: stored}, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.Aborted("game game_test was modified concurrently"))

	_, err := s.service.SkipRoom(s.ctx, &game.SkipRoomInput{GameID: "game_test"})
	s.Require().Error(err)
	s.True(errors.IsAborted(err))
}

func (s *OrchestratorTestSuite) TestRestart() {
	stored := s.storedGame()
	stored.Phase = entities.PhaseVictory
	stored.Version = 40

	s.mockRepo.EXPECT().
		Get(s.ctx, games.GetInput{ID: "game_test"}).
		Return(&games.GetOutput{Game: stored}, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input games.UpdateInput) (*games.UpdateOutput, error) {
			s.Equal(int64(40), input.ExpectedVersion)
			return &games.UpdateOutput{Game: input.Game}, nil
		})

	out, err := s.service.Restart(s.ctx, &game.RestartInput{GameID: "game_test"})
	s.Require().NoError(err)
	s.Equal("game_test", out.Snapshot.GameID)
	s.Equal(int64(41), out.Snapshot.Version)
	s.Equal(entities.PhaseAwaitingAction, out.Snapshot.Phase)
	s.Equal(engine.DeckSize, out.Snapshot.CardsRemaining)
}

func (s *OrchestratorTestSuite) TestEndGame() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, games.DeleteInput{ID: "game_test"}).
		Return(&games.DeleteOutput{}, nil)

	_, err := s.service.EndGame(s.ctx, &game.EndGameInput{GameID: "game_test"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestRollerFailureIsInternal() {
	svc, err := game.NewOrchestrator(&game.Config{
		GameRepo:    s.mockRepo,
		IDGenerator: idgen.NewSequential("game"),
		DiceRoller:  testutils.BrokenRoller{},
	})
	s.Require().NoError(err)

	_, err = svc.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}
