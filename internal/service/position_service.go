package service

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/repository"

	"github.com/google/uuid"
)

// dueDateLayouts are accepted on top of RFC3339 for bare calendar dates.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// PositionService computes ordinals for new siblings and coerces due-date
// strings. Next-position is a read-then-write; the (parent, position) unique
// constraints catch concurrent creates that raced to the same ordinal, and the
// CRUD services retry once with a fresh position before giving up.
type PositionService struct {
	listRepo repository.ListRepositoryInterface
	cardRepo repository.CardRepositoryInterface
}

func NewPositionService(
	listRepo repository.ListRepositoryInterface,
	cardRepo repository.CardRepositoryInterface,
) *PositionService {
	return &PositionService{listRepo: listRepo, cardRepo: cardRepo}
}

// NextListPosition returns max(position)+1 among the board's lists, or 1 when
// the board has none.
func (s *PositionService) NextListPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	max, err := s.listRepo.MaxPosition(ctx, boardID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next list position: %w", err)
	}
	return max + 1, nil
}

// NextCardPosition returns max(position)+1 among the list's cards, or 1 when
// the list has none.
func (s *PositionService) NextCardPosition(ctx context.Context, listID uuid.UUID) (int, error) {
	max, err := s.cardRepo.MaxPosition(ctx, listID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next card position: %w", err)
	}
	return max + 1, nil
}

// ConvertDateIfProvided parses a due-date string. Empty input yields nil with
// no error; an unparseable string yields ErrInvalidDate.
func (s *PositionService) ConvertDateIfProvided(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
}
