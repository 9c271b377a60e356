// Package main provides an interactive terminal client for playing scoundrel
// against a running server
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	scoundrelv1alpha1 "github.com/KirkDiggler/rpg-scoundrel/internal/api/scoundrel/v1alpha1"
)

var (
	serverAddr string
	timeout    time.Duration
	resumeID   string
)

var rootCmd = &cobra.Command{
	Use:   "scoundrel-play",
	Short: "Play scoundrel interactively",
	Long: `Play scoundrel one command at a time.

Commands: play <n|card-id>, fight, fight weapon, skip, state, restart, quit.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				log.Printf("Failed to close connection: %v", err)
			}
		}()

		s := &session{
			client:  scoundrelv1alpha1.NewGameServiceClient(conn),
			in:      os.Stdin,
			out:     os.Stdout,
			timeout: timeout,
			gameID:  resumeID,
		}
		return s.run(context.Background())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	rootCmd.Flags().StringVar(&resumeID, "game", "", "resume an existing game instead of starting one")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
