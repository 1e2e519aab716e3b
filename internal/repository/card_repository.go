package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	GetByIDWithParents(ctx context.Context, id uuid.UUID) (*model.Card, error)
	GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	MaxPosition(ctx context.Context, listID uuid.UUID) (int, error)
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return translateErr(r.db.WithContext(ctx).Create(card).Error)
}

func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetByIDWithParents loads the card with its list and the list's board in one
// traversal, for ownership-chain resolution.
func (r *CardRepository) GetByIDWithParents(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).
		Preload("List").
		Preload("List.Board").
		Where("id = ?", id).
		First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("position ASC").
		Find(&cards).Error
	return cards, err
}

func (r *CardRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Card{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, translateErr(result.Error)
}

func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Card{})
	return result.RowsAffected, result.Error
}

func (r *CardRepository) MaxPosition(ctx context.Context, listID uuid.UUID) (int, error) {
	var maxPosition struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Card{}).
		Select("COALESCE(MAX(position), 0) as max").
		Where("list_id = ?", listID).
		Scan(&maxPosition).Error

	return maxPosition.Max, err
}
