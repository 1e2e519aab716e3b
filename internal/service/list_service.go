package service

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
)

const ListRemovedMessage = "List removed successfully"

type CreateListInput struct {
	Name     string
	Position *int
}

type UpdateListInput struct {
	Name     *string
	Position *int
}

type ListService struct {
	listRepo  repository.ListRepositoryInterface
	authz     *AuthorizationService
	positions *PositionService
}

func NewListService(
	listRepo repository.ListRepositoryInterface,
	authz *AuthorizationService,
	positions *PositionService,
) *ListService {
	return &ListService{listRepo: listRepo, authz: authz, positions: positions}
}

func (s *ListService) Create(ctx context.Context, boardID uuid.UUID, input CreateListInput, userID uuid.UUID) (*model.List, error) {
	if err := s.authz.VerifyBoardOwnership(ctx, boardID, userID); err != nil {
		return nil, err
	}

	explicit := input.Position != nil
	position := 0
	if explicit {
		position = *input.Position
	} else {
		next, err := s.positions.NextListPosition(ctx, boardID)
		if err != nil {
			return nil, err
		}
		position = next
	}

	list := &model.List{
		ID:       uuid.New(),
		Name:     input.Name,
		Position: position,
		BoardID:  boardID,
	}

	err := s.listRepo.Create(ctx, list)
	if errors.Is(err, repository.ErrDuplicateKey) && !explicit {
		// A concurrent create took our computed ordinal; recompute once.
		next, perr := s.positions.NextListPosition(ctx, boardID)
		if perr != nil {
			return nil, perr
		}
		list.Position = next
		err = s.listRepo.Create(ctx, list)
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: position %d already taken on board", ErrConflict, list.Position)
		}
		return nil, fmt.Errorf("failed to create list: %w", err)
	}
	return list, nil
}

func (s *ListService) FindByBoard(ctx context.Context, boardID, userID uuid.UUID) ([]model.List, error) {
	if err := s.authz.VerifyBoardOwnership(ctx, boardID, userID); err != nil {
		return nil, err
	}

	lists, err := s.listRepo.GetByBoardID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to find lists: %w", err)
	}
	return lists, nil
}

func (s *ListService) FindOne(ctx context.Context, listID, userID uuid.UUID) (*model.List, error) {
	return s.authz.VerifyListOwnership(ctx, listID, userID)
}

func (s *ListService) Update(ctx context.Context, listID uuid.UUID, input UpdateListInput, userID uuid.UUID) (*model.List, error) {
	if _, err := s.FindOne(ctx, listID, userID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Position != nil {
		fields["position"] = *input.Position
	}

	if len(fields) > 0 {
		affected, err := s.listRepo.Update(ctx, listID, fields)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return nil, fmt.Errorf("%w: position already taken on board", ErrConflict)
			}
			return nil, fmt.Errorf("failed to update list: %w", err)
		}
		if affected == 0 {
			return nil, ErrNotFound
		}
	}

	return s.FindOne(ctx, listID, userID)
}

func (s *ListService) Remove(ctx context.Context, listID, userID uuid.UUID) (string, error) {
	if _, err := s.FindOne(ctx, listID, userID); err != nil {
		return "", err
	}

	affected, err := s.listRepo.Delete(ctx, listID)
	if err != nil {
		return "", fmt.Errorf("failed to remove list: %w", err)
	}
	if affected == 0 {
		return "", ErrNotFound
	}
	return ListRemovedMessage, nil
}
