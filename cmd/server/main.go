// Package main is the entry point for the scoundrel gRPC server and its
// command line client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-scoundrel/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "scoundrel",
	Short: "Scoundrel gRPC server",
	Long:  `Scoundrel serves the single player dungeon card game over gRPC and ships a client to play it.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
