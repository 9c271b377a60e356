// Package games provides the repository interface and implementations for
// persisting scoundrel games between intents
package games

import (
	"context"

	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesmock github.com/KirkDiggler/rpg-scoundrel/internal/repositories/games Repository

// Repository stores games by ID. Writes are guarded by the game version so
// two intents racing on the same game cannot both commit.
type Repository interface {
	// Create stores a new game. Fails with AlreadyExists if the ID is taken.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a game by ID. Expired games are NotFound.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a game if the stored version equals ExpectedVersion,
	// otherwise it fails with Aborted.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a game
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a game
type CreateInput struct {
	Game *entities.Game
}

// CreateOutput defines the output of creating a game
type CreateOutput struct {
	Game *entities.Game
}

// GetInput defines the input for getting a game
type GetInput struct {
	ID string
}

// GetOutput defines the output of getting a game
type GetOutput struct {
	Game *entities.Game
}

// UpdateInput defines the input for updating a game
type UpdateInput struct {
	Game *entities.Game
	// ExpectedVersion is the version the caller read before transitioning
	ExpectedVersion int64
}

// UpdateOutput defines the output of updating a game
type UpdateOutput struct {
	Game *entities.Game
}

// DeleteInput defines the input for deleting a game
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output of deleting a game
type DeleteOutput struct{}
