package games

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. It is
// used when no Redis address is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*entities.Game
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*entities.Game),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new game
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateGame(input.Game); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.store[input.Game.ID]; ok && !r.expired(existing) {
		return nil, errors.AlreadyExists(fmt.Sprintf("game %s already exists", input.Game.ID))
	}

	r.store[input.Game.ID] = input.Game.Clone()

	return &CreateOutput{Game: input.Game.Clone()}, nil
}

// Get retrieves a game by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.store[input.ID]
	if !ok || r.expired(game) {
		return nil, errors.NotFoundf("game %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Game: game.Clone()}, nil
}

// Update replaces a game when the stored version matches
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateGame(input.Game); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.store[input.Game.ID]
	if !ok || r.expired(stored) {
		return nil, errors.NotFoundf("game %s not found", input.Game.ID)
	}
	if stored.Version != input.ExpectedVersion {
		return nil, errVersionConflict(input.Game.ID, input.ExpectedVersion, stored.Version)
	}

	r.store[input.Game.ID] = input.Game.Clone()

	return &UpdateOutput{Game: input.Game.Clone()}, nil
}

// Delete removes a game
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[input.ID]; !ok {
		return nil, errors.NotFoundf("game %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// Sweep drops expired games and returns how many were removed
func (r *InMemoryRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, game := range r.store {
		if r.expired(game) {
			delete(r.store, id)
			removed++
		}
	}
	return removed
}

func (r *InMemoryRepository) expired(game *entities.Game) bool {
	return !game.ExpiresAt.IsZero() && r.clock.Now().After(game.ExpiresAt)
}
