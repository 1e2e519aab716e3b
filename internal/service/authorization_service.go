package service

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
)

// AuthorizationService is the single source of truth for the ownership chain
// (card -> list -> board -> user). Every mutating or single-resource-read
// operation on a list or card goes through one of these guards before touching
// the resource; no CRUD service re-derives the chain on its own.
type AuthorizationService struct {
	boardRepo repository.BoardRepositoryInterface
	listRepo  repository.ListRepositoryInterface
	cardRepo  repository.CardRepositoryInterface
}

func NewAuthorizationService(
	boardRepo repository.BoardRepositoryInterface,
	listRepo repository.ListRepositoryInterface,
	cardRepo repository.CardRepositoryInterface,
) *AuthorizationService {
	return &AuthorizationService{
		boardRepo: boardRepo,
		listRepo:  listRepo,
		cardRepo:  cardRepo,
	}
}

// VerifyBoardOwnership fails with ErrAccessDenied unless a board exists with
// both the given id and owner. The lookup is scoped, so callers cannot tell a
// foreign board from a missing one.
func (s *AuthorizationService) VerifyBoardOwnership(ctx context.Context, boardID, userID uuid.UUID) error {
	board, err := s.boardRepo.GetByIDForUser(ctx, boardID, userID)
	if err != nil {
		return fmt.Errorf("failed to verify board ownership: %w", err)
	}
	if board == nil {
		return ErrAccessDenied
	}
	return nil
}

// VerifyListOwnership resolves the list's board and checks its owner. The
// loaded list is returned so callers avoid a second fetch.
func (s *AuthorizationService) VerifyListOwnership(ctx context.Context, listID, userID uuid.UUID) (*model.List, error) {
	list, err := s.listRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify list ownership: %w", err)
	}
	if list == nil {
		return nil, ErrNotFound
	}
	if list.Board.UserID != userID {
		return nil, ErrAccessDenied
	}
	return list, nil
}

// VerifyCardOwnership walks card -> list -> board in one traversal and checks
// the board's owner. The loaded card is returned on success.
func (s *AuthorizationService) VerifyCardOwnership(ctx context.Context, cardID, userID uuid.UUID) (*model.Card, error) {
	card, err := s.cardRepo.GetByIDWithParents(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify card ownership: %w", err)
	}
	if card == nil {
		return nil, ErrNotFound
	}
	if card.List.Board.UserID != userID {
		return nil, ErrAccessDenied
	}
	return card, nil
}
