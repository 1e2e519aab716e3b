package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

type BoardRepositoryInterface interface {
	Create(ctx context.Context, board *model.Board) error
	GetOwned(ctx context.Context, userID uuid.UUID) ([]model.Board, error)
	GetByIDForUser(ctx context.Context, boardID, userID uuid.UUID) (*model.Board, error)
	Update(ctx context.Context, boardID, userID uuid.UUID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, boardID, userID uuid.UUID) (int64, error)
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	return translateErr(r.db.WithContext(ctx).Create(board).Error)
}

func (r *BoardRepository) GetOwned(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&boards).Error
	return boards, err
}

// GetByIDForUser is a scoped lookup: it matches on both id and owner, so a
// board owned by somebody else is indistinguishable from a missing one.
func (r *BoardRepository) GetByIDForUser(ctx context.Context, boardID, userID uuid.UUID) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", boardID, userID).
		First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) Update(ctx context.Context, boardID, userID uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Board{}).
		Where("id = ? AND user_id = ?", boardID, userID).
		Updates(fields)
	return result.RowsAffected, translateErr(result.Error)
}

func (r *BoardRepository) Delete(ctx context.Context, boardID, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", boardID, userID).
		Delete(&model.Board{})
	return result.RowsAffected, result.Error
}
