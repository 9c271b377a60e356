// Package v1alpha1 handles the scoundrel game grpc service interface
package v1alpha1

import (
	"context"

	scoundrelv1alpha1 "github.com/KirkDiggler/rpg-scoundrel/internal/api/scoundrel/v1alpha1"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
	"github.com/KirkDiggler/rpg-scoundrel/internal/orchestrators/game"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler implements the scoundrel game gRPC service
type Handler struct {
	gameService game.Service
}

// Ensure Handler implements the service
var _ scoundrelv1alpha1.GameServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService: cfg.GameService,
	}, nil
}

// NewGame starts a new game
func (h *Handler) NewGame(
	ctx context.Context,
	_ *scoundrelv1alpha1.NewGameRequest,
) (*scoundrelv1alpha1.NewGameResponse, error) {
	output, err := h.gameService.NewGame(ctx, &game.NewGameInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &scoundrelv1alpha1.NewGameResponse{
		State: convertSnapshotToProto(output.Snapshot),
	}, nil
}

// GetState returns the current state of a game
func (h *Handler) GetState(
	ctx context.Context,
	req *scoundrelv1alpha1.GetStateRequest,
) (*scoundrelv1alpha1.GetStateResponse, error) {
	if req.GetGameID() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	output, err := h.gameService.GetState(ctx, &game.GetStateInput{
		GameID: req.GetGameID(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &scoundrelv1alpha1.GetStateResponse{
		State: convertSnapshotToProto(output.Snapshot),
	}, nil
}

// PlayCard plays a card from the current room
func (h *Handler) PlayCard(
	ctx context.Context,
	req *scoundrelv1alpha1.PlayCardRequest,
) (*scoundrelv1alpha1.PlayCardResponse, error) {
	if req.GetGameID() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}
	if req.GetCardID() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("card_id is required"))
	}

	output, err := h.gameService.PlayCard(ctx, &game.PlayCardInput{
		GameID: req.GetGameID(),
		CardID: req.GetCardID(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &scoundrelv1alpha1.PlayCardResponse{
		State: convertSnapshotToProto(output.Snapshot),
	}, nil
}

// ResolveMonster fights the pending monster
func (h *Handler) ResolveMonster(
	ctx context.Context,
	req *scoundrelv1alpha1.ResolveMonsterRequest,
) (*scoundrelv1alpha1.ResolveMonsterResponse, error) {
	if req.GetGameID() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	output, err := h.gameService.ResolveMonster(ctx, &game.ResolveMonsterInput{
		GameID:    req.GetGameID(),
		UseWeapon: req.GetUseWeapon(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &scoundrelv1alpha1.ResolveMonsterResponse{
		State: convertSnapshotToProto(output.Snapshot),
	}, nil
}

// SkipRoom skips the current room
func (h *Handler) SkipRoom(
	ctx context.Context,
	req *scoundrelv1alpha1.SkipRoomRequest,
) (*scoundrelv1alpha1.SkipRoomResponse, error) {
	if req.GetGameID() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	output, err := h.gameService.SkipRoom(ctx, &game.SkipRoomInput{
		GameID: req.GetGameID(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &scoundrelv1alpha1.SkipRoomResponse{
		State: convertSnapshotToProto(output.Snapshot),
	}, nil
}

// Restart deals a new game under the same ID
func (h *Handler) Restart(
	ctx context.Context,
	req *scoundrelv1alpha1.RestartRequest,
) (*scoundrelv1alpha1.RestartResponse, error) {
	if req.GetGameID() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	output, err := h.gameService.Restart(ctx, &game.RestartInput{
		GameID: req.GetGameID(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &scoundrelv1alpha1.RestartResponse{
		State: convertSnapshotToProto(output.Snapshot),
	}, nil
}

// EndGame drops a game session
func (h *Handler) EndGame(
	ctx context.Context,
	req *scoundrelv1alpha1.EndGameRequest,
) (*scoundrelv1alpha1.EndGameResponse, error) {
	if req.GetGameID() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	if _, err := h.gameService.EndGame(ctx, &game.EndGameInput{
		GameID: req.GetGameID(),
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &scoundrelv1alpha1.EndGameResponse{}, nil
}
