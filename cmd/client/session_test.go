package main

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	scoundrelv1alpha1 "github.com/KirkDiggler/rpg-scoundrel/internal/api/scoundrel/v1alpha1"
	"github.com/KirkDiggler/rpg-scoundrel/internal/handlers/scoundrel/v1alpha1"
	"github.com/KirkDiggler/rpg-scoundrel/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-scoundrel/internal/repositories/games"
	"github.com/KirkDiggler/rpg-scoundrel/internal/testutils"
)

func newTestClient(t *testing.T) scoundrelv1alpha1.GameServiceClient {
	t.Helper()

	svc, err := game.NewOrchestrator(&game.Config{
		GameRepo:    games.NewInMemory(nil),
		IDGenerator: idgen.NewSequential("game"),
		DiceRoller:  testutils.MaxRoller{},
	})
	require.NoError(t, err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{GameService: svc})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	scoundrelv1alpha1.RegisterGameServiceServer(srv, handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return scoundrelv1alpha1.NewGameServiceClient(conn)
}

func runSession(t *testing.T, client scoundrelv1alpha1.GameServiceClient, gameID string, lines ...string) (*session, string) {
	t.Helper()

	var out bytes.Buffer
	s := &session{
		client:  client,
		in:      strings.NewReader(strings.Join(lines, "\n") + "\n"),
		out:     &out,
		timeout: 5 * time.Second,
		gameID:  gameID,
	}
	require.NoError(t, s.run(context.Background()))
	return s, out.String()
}

func TestSessionPlaysARoom(t *testing.T) {
	client := newTestClient(t)

	s, out := runSession(t, client, "",
		"play 1",
		"skip",
		"fight",
		"bogus",
		"play 9",
		"quit",
		"state",
	)

	assert.Equal(t, "game_1", s.gameID)
	assert.Contains(t, out, "Game game_1 (v1)")
	assert.Contains(t, out, "fight game_1 [--weapon]")
	assert.Contains(t, out, "SKIP_NOT_ALLOWED")
	assert.Contains(t, out, "You took 1 damage!")
	assert.Contains(t, out, "Health: 19/20")
	assert.Contains(t, out, `unknown command "bogus"`)
	assert.Contains(t, out, "pick a card between 1 and 3")
	assert.Equal(t, int64(3), s.state.Version)
}

func TestSessionResumesGame(t *testing.T) {
	client := newTestClient(t)

	started, err := client.NewGame(context.Background(), &scoundrelv1alpha1.NewGameRequest{})
	require.NoError(t, err)

	s, out := runSession(t, client, started.State.GameID, "skip", "restart")
	assert.Contains(t, out, "Game game_1 (v1)")
	assert.Contains(t, out, "Game game_1 (v3)")
	assert.Equal(t, scoundrelv1alpha1.PhaseAwaitingAction, s.state.Phase)
}

func TestSessionUnknownGame(t *testing.T) {
	client := newTestClient(t)

	s := &session{
		client:  client,
		in:      strings.NewReader(""),
		out:     &bytes.Buffer{},
		timeout: 5 * time.Second,
		gameID:  "game_missing",
	}
	err := s.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resume game game_missing")
}
