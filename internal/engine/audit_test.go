package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-scoundrel/internal/engine"
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
	"github.com/KirkDiggler/rpg-scoundrel/internal/testutils"
)

func freshGame(t *testing.T) *entities.Game {
	t.Helper()
	m, err := engine.NewMachine(&engine.MachineConfig{DiceRoller: testutils.MaxRoller{}})
	require.NoError(t, err)
	g, err := m.NewGame("game_audit")
	require.NoError(t, err)
	return g
}

func TestAudit_FreshGameIsClean(t *testing.T) {
	assert.NoError(t, engine.Audit(freshGame(t)))
}

func TestAudit_Violations(t *testing.T) {
	testCases := []struct {
		name    string
		corrupt func(g *entities.Game)
		wantMsg string
	}{
		{
			name:    "lost card",
			corrupt: func(g *entities.Game) { g.Room.Deck = g.Room.Deck[1:] },
			wantMsg: "47 cards in play, want 48",
		},
		{
			name: "duplicated card",
			corrupt: func(g *entities.Game) {
				g.Room.Deck[0] = g.Room.Hand[0]
			},
			wantMsg: "card_1 appears twice",
		},
		{
			name:    "health overflow",
			corrupt: func(g *entities.Game) { g.Player.Health = 25 },
			wantMsg: "health: 25 is outside 0-20",
		},
		{
			name: "floor without weapon",
			corrupt: func(g *entities.Game) {
				floor := 4
				g.Player.DurabilityFloor = &floor
			},
			wantMsg: "durability floor set without a weapon",
		},
		{
			name:    "awaiting choice without monster",
			corrupt: func(g *entities.Game) { g.Phase = entities.PhaseAwaitingMonsterChoice },
			wantMsg: "no monster in hand is awaiting a choice",
		},
		{
			name:    "stale pending card",
			corrupt: func(g *entities.Game) { g.PendingCardID = "card_1" },
			wantMsg: "set during phase awaiting_action",
		},
		{
			name:    "oversized room",
			corrupt: func(g *entities.Game) { g.Room.Hand = append(g.Room.Hand, g.Room.Deck[0]); g.Room.Deck = g.Room.Deck[1:] },
			wantMsg: "hand: holds 5 cards",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := freshGame(t)
			tc.corrupt(g)

			err := engine.Audit(g)
			require.Error(t, err)
			assert.True(t, errors.IsInternal(err))
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestAudit_HoldsThroughPlay(t *testing.T) {
	m, err := engine.NewMachine(&engine.MachineConfig{DiceRoller: testutils.MaxRoller{}})
	require.NoError(t, err)
	g, err := m.NewGame("game_audit")
	require.NoError(t, err)

	for !g.Phase.IsTerminal() {
		if g.Phase == entities.PhaseAwaitingMonsterChoice {
			g, err = m.ResolveMonster(g, true)
		} else {
			g, err = m.Play(g, g.Room.Hand[len(g.Room.Hand)-1].ID)
		}
		require.NoError(t, err)
		require.NoError(t, engine.Audit(g))
	}
}
