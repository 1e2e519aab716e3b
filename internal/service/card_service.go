package service

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
)

const CardRemovedMessage = "Card removed successfully"

type CreateCardInput struct {
	Title       string
	Description string
	Position    *int
	DueDate     string
	CoverColor  string
}

type UpdateCardInput struct {
	Title       *string
	Description *string
	Position    *int
	DueDate     *string
	CoverColor  *string
	ListID      *uuid.UUID
}

type CardService struct {
	cardRepo  repository.CardRepositoryInterface
	authz     *AuthorizationService
	positions *PositionService
}

func NewCardService(
	cardRepo repository.CardRepositoryInterface,
	authz *AuthorizationService,
	positions *PositionService,
) *CardService {
	return &CardService{cardRepo: cardRepo, authz: authz, positions: positions}
}

func (s *CardService) Create(ctx context.Context, listID uuid.UUID, input CreateCardInput, userID uuid.UUID) (*model.Card, error) {
	if _, err := s.authz.VerifyListOwnership(ctx, listID, userID); err != nil {
		return nil, err
	}

	dueDate, err := s.positions.ConvertDateIfProvided(input.DueDate)
	if err != nil {
		return nil, err
	}

	explicit := input.Position != nil
	position := 0
	if explicit {
		position = *input.Position
	} else {
		next, err := s.positions.NextCardPosition(ctx, listID)
		if err != nil {
			return nil, err
		}
		position = next
	}

	card := &model.Card{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Position:    position,
		DueDate:     dueDate,
		CoverColor:  input.CoverColor,
		ListID:      listID,
	}
	if card.CoverColor == "" {
		card.CoverColor = "#ffffff"
	}

	err = s.cardRepo.Create(ctx, card)
	if errors.Is(err, repository.ErrDuplicateKey) && !explicit {
		// A concurrent create took our computed ordinal; recompute once.
		next, perr := s.positions.NextCardPosition(ctx, listID)
		if perr != nil {
			return nil, perr
		}
		card.Position = next
		err = s.cardRepo.Create(ctx, card)
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: position %d already taken on list", ErrConflict, card.Position)
		}
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return card, nil
}

func (s *CardService) FindByList(ctx context.Context, listID, userID uuid.UUID) ([]model.Card, error) {
	if _, err := s.authz.VerifyListOwnership(ctx, listID, userID); err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.GetByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cards: %w", err)
	}
	return cards, nil
}

// FindOne returns the card's plain fields; the ownership check already walked
// the relation graph, so no second fetch is made.
func (s *CardService) FindOne(ctx context.Context, cardID, userID uuid.UUID) (*model.Card, error) {
	card, err := s.authz.VerifyCardOwnership(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}
	plain := *card
	plain.List = model.List{}
	return &plain, nil
}

func (s *CardService) Update(ctx context.Context, cardID uuid.UUID, input UpdateCardInput, userID uuid.UUID) (*model.Card, error) {
	card, err := s.authz.VerifyCardOwnership(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.CoverColor != nil {
		fields["cover_color"] = *input.CoverColor
	}
	if input.DueDate != nil {
		dueDate, err := s.positions.ConvertDateIfProvided(*input.DueDate)
		if err != nil {
			return nil, err
		}
		fields["due_date"] = dueDate
	}
	if input.Position != nil {
		fields["position"] = *input.Position
	}

	// Moving the card: the target list must belong to the same user, and the
	// position is recomputed against the target unless given explicitly.
	var computedFor *uuid.UUID
	if input.ListID != nil && *input.ListID != card.ListID {
		if _, err := s.authz.VerifyListOwnership(ctx, *input.ListID, userID); err != nil {
			return nil, err
		}
		fields["list_id"] = *input.ListID
		if input.Position == nil {
			next, err := s.positions.NextCardPosition(ctx, *input.ListID)
			if err != nil {
				return nil, err
			}
			fields["position"] = next
			computedFor = input.ListID
		}
	}

	if len(fields) > 0 {
		affected, err := s.cardRepo.Update(ctx, cardID, fields)
		if errors.Is(err, repository.ErrDuplicateKey) && computedFor != nil {
			// A concurrent create took our computed ordinal; recompute once.
			next, perr := s.positions.NextCardPosition(ctx, *computedFor)
			if perr != nil {
				return nil, perr
			}
			fields["position"] = next
			affected, err = s.cardRepo.Update(ctx, cardID, fields)
		}
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return nil, fmt.Errorf("%w: position already taken on list", ErrConflict)
			}
			return nil, fmt.Errorf("failed to update card: %w", err)
		}
		if affected == 0 {
			return nil, ErrNotFound
		}
	}

	return s.FindOne(ctx, cardID, userID)
}

func (s *CardService) Remove(ctx context.Context, cardID, userID uuid.UUID) (string, error) {
	if _, err := s.authz.VerifyCardOwnership(ctx, cardID, userID); err != nil {
		return "", err
	}

	affected, err := s.cardRepo.Delete(ctx, cardID)
	if err != nil {
		return "", fmt.Errorf("failed to remove card: %w", err)
	}
	if affected == 0 {
		return "", ErrNotFound
	}
	return CardRemovedMessage, nil
}

// Move relocates a card to another list, requiring ownership of both the card
// and the destination. list_id and position change in one write.
func (s *CardService) Move(ctx context.Context, cardID, newListID, userID uuid.UUID, newPosition *int) (*model.Card, error) {
	if _, err := s.authz.VerifyCardOwnership(ctx, cardID, userID); err != nil {
		return nil, err
	}
	if _, err := s.authz.VerifyListOwnership(ctx, newListID, userID); err != nil {
		return nil, err
	}

	explicit := newPosition != nil
	position := 0
	if explicit {
		position = *newPosition
	} else {
		next, err := s.positions.NextCardPosition(ctx, newListID)
		if err != nil {
			return nil, err
		}
		position = next
	}

	affected, err := s.cardRepo.Update(ctx, cardID, map[string]interface{}{
		"list_id":  newListID,
		"position": position,
	})
	if errors.Is(err, repository.ErrDuplicateKey) && !explicit {
		// A concurrent create took our computed ordinal; recompute once.
		next, perr := s.positions.NextCardPosition(ctx, newListID)
		if perr != nil {
			return nil, perr
		}
		position = next
		affected, err = s.cardRepo.Update(ctx, cardID, map[string]interface{}{
			"list_id":  newListID,
			"position": position,
		})
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: position %d already taken on list", ErrConflict, position)
		}
		return nil, fmt.Errorf("failed to move card: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.FindOne(ctx, cardID, userID)
}
