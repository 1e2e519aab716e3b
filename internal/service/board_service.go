package service

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
)

const BoardRemovedMessage = "Board removed successfully"

// BoardNotFoundMessage is returned by Remove when nothing was deleted. The
// delete stays idempotent from the caller's perspective and never discloses
// whether the board exists under another owner.
const BoardNotFoundMessage = "Board not found or access denied"

type CreateBoardInput struct {
	Name            string
	Description     string
	BackgroundColor string
}

type UpdateBoardInput struct {
	Name            *string
	Description     *string
	BackgroundColor *string
}

type BoardService struct {
	boardRepo repository.BoardRepositoryInterface
}

func NewBoardService(boardRepo repository.BoardRepositoryInterface) *BoardService {
	return &BoardService{boardRepo: boardRepo}
}

func (s *BoardService) Create(ctx context.Context, userID uuid.UUID, input CreateBoardInput) (*model.Board, error) {
	board := &model.Board{
		ID:              uuid.New(),
		Name:            input.Name,
		Description:     input.Description,
		BackgroundColor: input.BackgroundColor,
		UserID:          userID,
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return board, nil
}

func (s *BoardService) FindBelongsToUser(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	boards, err := s.boardRepo.GetOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find boards: %w", err)
	}
	return boards, nil
}

// FindOne is a scoped lookup; a board owned by another user resolves to
// ErrNotFound so board existence is never disclosed.
func (s *BoardService) FindOne(ctx context.Context, boardID, userID uuid.UUID) (*model.Board, error) {
	board, err := s.boardRepo.GetByIDForUser(ctx, boardID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	if board == nil {
		return nil, ErrNotFound
	}
	return board, nil
}

func (s *BoardService) Update(ctx context.Context, boardID uuid.UUID, input UpdateBoardInput, userID uuid.UUID) (*model.Board, error) {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.BackgroundColor != nil {
		fields["background_color"] = *input.BackgroundColor
	}

	if len(fields) > 0 {
		affected, err := s.boardRepo.Update(ctx, boardID, userID, fields)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return nil, fmt.Errorf("%w: board update", ErrConflict)
			}
			return nil, fmt.Errorf("failed to update board: %w", err)
		}
		if affected == 0 {
			return nil, ErrNotFound
		}
	}

	return s.FindOne(ctx, boardID, userID)
}

func (s *BoardService) Remove(ctx context.Context, boardID, userID uuid.UUID) (string, error) {
	affected, err := s.boardRepo.Delete(ctx, boardID, userID)
	if err != nil {
		return "", fmt.Errorf("failed to remove board: %w", err)
	}
	if affected == 0 {
		return BoardNotFoundMessage, nil
	}
	return BoardRemovedMessage, nil
}
