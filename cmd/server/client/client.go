// Package client provides commands that drive the scoundrel gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	scoundrelv1alpha1 "github.com/KirkDiggler/rpg-scoundrel/internal/api/scoundrel/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Output flags
	asJSON bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Play scoundrel against a running server",
	Long: `Client commands make real gRPC requests to a scoundrel server.

Start with "client new", then pass the printed game ID to the other commands.`,
	SilenceUsage: true,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print the raw game state as JSON")

	ClientCmd.AddCommand(newGameCmd)
	ClientCmd.AddCommand(stateCmd)
	ClientCmd.AddCommand(playCmd)
	ClientCmd.AddCommand(fightCmd)
	ClientCmd.AddCommand(skipCmd)
	ClientCmd.AddCommand(restartCmd)
	ClientCmd.AddCommand(endCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createGameClient creates a game service client
func createGameClient() (scoundrelv1alpha1.GameServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return scoundrelv1alpha1.NewGameServiceClient(conn), cleanup, nil
}
