package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	scoundrelv1alpha1 "github.com/KirkDiggler/rpg-scoundrel/internal/api/scoundrel/v1alpha1"
)

var useWeapon bool

var newGameCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new game",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client scoundrelv1alpha1.GameServiceClient) (*scoundrelv1alpha1.GameState, error) {
			resp, err := client.NewGame(ctx, &scoundrelv1alpha1.NewGameRequest{})
			if err != nil {
				return nil, err
			}
			return resp.State, nil
		})
	},
}

var stateCmd = &cobra.Command{
	Use:   "state <game-id>",
	Short: "Show the current state of a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client scoundrelv1alpha1.GameServiceClient) (*scoundrelv1alpha1.GameState, error) {
			resp, err := client.GetState(ctx, &scoundrelv1alpha1.GetStateRequest{GameID: args[0]})
			if err != nil {
				return nil, err
			}
			return resp.State, nil
		})
	},
}

var playCmd = &cobra.Command{
	Use:   "play <game-id> <card-id>",
	Short: "Play a card from the room",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client scoundrelv1alpha1.GameServiceClient) (*scoundrelv1alpha1.GameState, error) {
			resp, err := client.PlayCard(ctx, &scoundrelv1alpha1.PlayCardRequest{
				GameID: args[0],
				CardID: args[1],
			})
			if err != nil {
				return nil, err
			}
			return resp.State, nil
		})
	},
}

var fightCmd = &cobra.Command{
	Use:   "fight <game-id>",
	Short: "Fight the pending monster, bare-handed unless --weapon is set",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client scoundrelv1alpha1.GameServiceClient) (*scoundrelv1alpha1.GameState, error) {
			resp, err := client.ResolveMonster(ctx, &scoundrelv1alpha1.ResolveMonsterRequest{
				GameID:    args[0],
				UseWeapon: useWeapon,
			})
			if err != nil {
				return nil, err
			}
			return resp.State, nil
		})
	},
}

var skipCmd = &cobra.Command{
	Use:   "skip <game-id>",
	Short: "Skip the current room",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client scoundrelv1alpha1.GameServiceClient) (*scoundrelv1alpha1.GameState, error) {
			resp, err := client.SkipRoom(ctx, &scoundrelv1alpha1.SkipRoomRequest{GameID: args[0]})
			if err != nil {
				return nil, err
			}
			return resp.State, nil
		})
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart <game-id>",
	Short: "Deal a fresh dungeon under the same game ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client scoundrelv1alpha1.GameServiceClient) (*scoundrelv1alpha1.GameState, error) {
			resp, err := client.Restart(ctx, &scoundrelv1alpha1.RestartRequest{GameID: args[0]})
			if err != nil {
				return nil, err
			}
			return resp.State, nil
		})
	},
}

var endCmd = &cobra.Command{
	Use:   "end <game-id>",
	Short: "End a game and drop its session",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createGameClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := client.EndGame(ctx, &scoundrelv1alpha1.EndGameRequest{GameID: args[0]}); err != nil {
			return describeError(err)
		}

		fmt.Printf("Game %s ended\n", args[0])
		return nil
	},
}

func init() {
	fightCmd.Flags().BoolVar(&useWeapon, "weapon", false, "Fight with the equipped weapon")
}

// withClient opens a connection, runs call and renders the state it returns
func withClient(call func(context.Context, scoundrelv1alpha1.GameServiceClient) (*scoundrelv1alpha1.GameState, error)) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	state, err := call(ctx, client)
	if err != nil {
		return describeError(err)
	}

	if asJSON {
		return RenderJSON(os.Stdout, state)
	}
	return Render(os.Stdout, state)
}
