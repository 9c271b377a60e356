package game_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-scoundrel/internal/engine"
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
	"github.com/KirkDiggler/rpg-scoundrel/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-scoundrel/internal/repositories/games"
	"github.com/KirkDiggler/rpg-scoundrel/internal/testutils"
)

func newInMemoryService(t *testing.T, roller dice.Roller) game.Service {
	t.Helper()

	clk := &clock.Fixed{T: testNow}
	svc, err := game.NewOrchestrator(&game.Config{
		GameRepo:    games.NewInMemory(clk),
		IDGenerator: idgen.NewUUID("game"),
		DiceRoller:  roller,
		Clock:       clk,
	})
	require.NoError(t, err)
	return svc
}

func TestOrchestrator_FullGameInMemory(t *testing.T) {
	svc := newInMemoryService(t, dice.DefaultRoller)
	ctx := context.Background()

	started, err := svc.NewGame(ctx, &game.NewGameInput{})
	require.NoError(t, err)
	id := started.Snapshot.GameID

	snap := started.Snapshot
	for steps := 0; !snap.Phase.IsTerminal(); steps++ {
		require.Less(t, steps, 200)

		if snap.PendingCard != nil {
			out, err := svc.ResolveMonster(ctx, &game.ResolveMonsterInput{GameID: id, UseWeapon: true})
			require.NoError(t, err)
			snap = out.Snapshot
			continue
		}

		out, err := svc.PlayCard(ctx, &game.PlayCardInput{GameID: id, CardID: snap.Hand[0].ID})
		require.NoError(t, err)
		snap = out.Snapshot
	}

	state, err := svc.GetState(ctx, &game.GetStateInput{GameID: id})
	require.NoError(t, err)
	assert.Equal(t, snap, state.Snapshot)
	assert.Equal(t, engine.DeckSize, state.Snapshot.CardsRemaining+state.Snapshot.DiscardCount)

	_, err = svc.PlayCard(ctx, &game.PlayCardInput{GameID: id, CardID: "card_1"})
	assert.Equal(t, engine.ReasonGameOver, errors.GetReason(err))

	restarted, err := svc.Restart(ctx, &game.RestartInput{GameID: id})
	require.NoError(t, err)
	assert.Equal(t, entities.PhaseAwaitingAction, restarted.Snapshot.Phase)
	assert.Equal(t, snap.Version+1, restarted.Snapshot.Version)

	_, err = svc.EndGame(ctx, &game.EndGameInput{GameID: id})
	require.NoError(t, err)

	_, err = svc.GetState(ctx, &game.GetStateInput{GameID: id})
	assert.True(t, errors.IsNotFound(err))
}

func TestOrchestrator_ConcurrentIntentsAreSerialized(t *testing.T) {
	svc := newInMemoryService(t, testutils.MaxRoller{})
	ctx := context.Background()

	started, err := svc.NewGame(ctx, &game.NewGameInput{})
	require.NoError(t, err)
	id := started.Snapshot.GameID

	// Only the first skip of a fresh room is legal, whoever gets there first
	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SkipRoom(ctx, &game.SkipRoomInput{GameID: id})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.GetReason(err) == engine.ReasonSkipNotAllowed:
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)

	state, err := svc.GetState(ctx, &game.GetStateInput{GameID: id})
	require.NoError(t, err)
	assert.Equal(t, int64(2), state.Snapshot.Version)
}
