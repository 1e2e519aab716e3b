package service_test

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCardService() (*service.CardService, *MockBoardRepository, *MockListRepository, *MockCardRepository) {
	boardRepo := new(MockBoardRepository)
	listRepo := new(MockListRepository)
	cardRepo := new(MockCardRepository)
	authz := service.NewAuthorizationService(boardRepo, listRepo, cardRepo)
	positions := service.NewPositionService(listRepo, cardRepo)
	return service.NewCardService(cardRepo, authz, positions), boardRepo, listRepo, cardRepo
}

func ownedList(listRepo *MockListRepository, listID, userID uuid.UUID) {
	listRepo.On("GetByID", mock.Anything, listID).
		Return(&model.List{ID: listID, Board: model.Board{UserID: userID}}, nil)
}

func ownedCard(cardRepo *MockCardRepository, cardID, listID, userID uuid.UUID) *model.Card {
	card := &model.Card{
		ID:     cardID,
		Title:  "Write report",
		ListID: listID,
		List:   model.List{ID: listID, Board: model.Board{UserID: userID}},
	}
	cardRepo.On("GetByIDWithParents", mock.Anything, cardID).Return(card, nil)
	return card
}

func TestCardService_Create_FirstCardGetsPositionOne(t *testing.T) {
	cards, _, listRepo, cardRepo := newCardService()
	listID, userID := uuid.New(), uuid.New()

	ownedList(listRepo, listID, userID)
	cardRepo.On("MaxPosition", mock.Anything, listID).Return(0, nil)
	cardRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Card")).Return(nil)

	card, err := cards.Create(context.Background(), listID, service.CreateCardInput{Title: "Write report"}, userID)

	assert.NoError(t, err)
	assert.Equal(t, 1, card.Position)
	assert.Equal(t, listID, card.ListID)
	assert.Equal(t, "#ffffff", card.CoverColor)
}

func TestCardService_Create_CoercesDueDate(t *testing.T) {
	cards, _, listRepo, cardRepo := newCardService()
	listID, userID := uuid.New(), uuid.New()

	ownedList(listRepo, listID, userID)
	cardRepo.On("MaxPosition", mock.Anything, listID).Return(1, nil)
	cardRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Card")).Return(nil)

	card, err := cards.Create(context.Background(), listID, service.CreateCardInput{
		Title:   "Write report",
		DueDate: "2026-04-01T09:00:00Z",
	}, userID)

	assert.NoError(t, err)
	assert.NotNil(t, card.DueDate)
	assert.Equal(t, time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC), *card.DueDate)
	assert.Equal(t, 2, card.Position)
}

func TestCardService_Create_MalformedDueDate(t *testing.T) {
	cards, _, listRepo, cardRepo := newCardService()
	listID, userID := uuid.New(), uuid.New()

	ownedList(listRepo, listID, userID)

	_, err := cards.Create(context.Background(), listID, service.CreateCardInput{
		Title:   "Write report",
		DueDate: "someday",
	}, userID)

	assert.ErrorIs(t, err, service.ErrInvalidDate)
	cardRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCardService_FindOne_ForeignCardDenied(t *testing.T) {
	cards, _, _, cardRepo := newCardService()
	cardID := uuid.New()

	card := &model.Card{ID: cardID, List: model.List{Board: model.Board{UserID: uuid.New()}}}
	cardRepo.On("GetByIDWithParents", mock.Anything, cardID).Return(card, nil)

	_, err := cards.FindOne(context.Background(), cardID, uuid.New())

	assert.ErrorIs(t, err, service.ErrAccessDenied)
}

func TestCardService_Update_RoundTripsPatchedFields(t *testing.T) {
	cards, _, _, cardRepo := newCardService()
	cardID, listID, userID := uuid.New(), uuid.New(), uuid.New()

	ownedCard(cardRepo, cardID, listID, userID)

	title := "Updated title"
	color := "#ff0000"
	cardRepo.On("Update", mock.Anything, cardID, map[string]interface{}{
		"title":       "Updated title",
		"cover_color": "#ff0000",
	}).Return(int64(1), nil)

	_, err := cards.Update(context.Background(), cardID, service.UpdateCardInput{
		Title:      &title,
		CoverColor: &color,
	}, userID)

	assert.NoError(t, err)
	cardRepo.AssertExpectations(t)
}

func TestCardService_Update_MoveRequiresTargetListOwnership(t *testing.T) {
	cards, _, listRepo, cardRepo := newCardService()
	cardID, listID, userID := uuid.New(), uuid.New(), uuid.New()
	foreignList := uuid.New()

	ownedCard(cardRepo, cardID, listID, userID)
	// Destination belongs to someone else, even though the card is ours.
	listRepo.On("GetByID", mock.Anything, foreignList).
		Return(&model.List{ID: foreignList, Board: model.Board{UserID: uuid.New()}}, nil)

	_, err := cards.Update(context.Background(), cardID, service.UpdateCardInput{ListID: &foreignList}, userID)

	assert.ErrorIs(t, err, service.ErrAccessDenied)
	cardRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCardService_Update_MoveRecomputesPositionForTarget(t *testing.T) {
	cards, _, listRepo, cardRepo := newCardService()
	cardID, listID, userID := uuid.New(), uuid.New(), uuid.New()
	targetList := uuid.New()

	ownedCard(cardRepo, cardID, listID, userID)
	ownedList(listRepo, targetList, userID)
	cardRepo.On("MaxPosition", mock.Anything, targetList).Return(6, nil)
	cardRepo.On("Update", mock.Anything, cardID, map[string]interface{}{
		"list_id":  targetList,
		"position": 7,
	}).Return(int64(1), nil)

	_, err := cards.Update(context.Background(), cardID, service.UpdateCardInput{ListID: &targetList}, userID)

	assert.NoError(t, err)
	cardRepo.AssertExpectations(t)
}

func TestCardService_Move_ToEmptyListResetsPosition(t *testing.T) {
	cards, _, listRepo, cardRepo := newCardService()
	cardID, listID, userID := uuid.New(), uuid.New(), uuid.New()
	emptyList := uuid.New()

	ownedCard(cardRepo, cardID, listID, userID)
	ownedList(listRepo, emptyList, userID)
	cardRepo.On("MaxPosition", mock.Anything, emptyList).Return(0, nil)
	cardRepo.On("Update", mock.Anything, cardID, map[string]interface{}{
		"list_id":  emptyList,
		"position": 1,
	}).Return(int64(1), nil)

	card, err := cards.Move(context.Background(), cardID, emptyList, userID, nil)

	assert.NoError(t, err)
	assert.NotNil(t, card)
	cardRepo.AssertExpectations(t)
}

func TestCardService_Move_ForeignDestinationDenied(t *testing.T) {
	cards, _, listRepo, cardRepo := newCardService()
	cardID, listID, userID := uuid.New(), uuid.New(), uuid.New()
	foreignList := uuid.New()

	ownedCard(cardRepo, cardID, listID, userID)
	listRepo.On("GetByID", mock.Anything, foreignList).
		Return(&model.List{ID: foreignList, Board: model.Board{UserID: uuid.New()}}, nil)

	_, err := cards.Move(context.Background(), cardID, foreignList, userID, nil)

	assert.ErrorIs(t, err, service.ErrAccessDenied)
	cardRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCardService_Move_RetriesOncePastStaleOrdinal(t *testing.T) {
	cards, _, listRepo, cardRepo := newCardService()
	cardID, listID, userID := uuid.New(), uuid.New(), uuid.New()
	targetList := uuid.New()

	ownedCard(cardRepo, cardID, listID, userID)
	ownedList(listRepo, targetList, userID)
	// A concurrent create lands on the destination between our MAX read and
	// the write; the second read sees it.
	cardRepo.On("MaxPosition", mock.Anything, targetList).Return(3, nil).Once()
	cardRepo.On("MaxPosition", mock.Anything, targetList).Return(4, nil).Once()
	cardRepo.On("Update", mock.Anything, cardID, map[string]interface{}{
		"list_id":  targetList,
		"position": 4,
	}).Return(int64(0), repository.ErrDuplicateKey).Once()
	cardRepo.On("Update", mock.Anything, cardID, map[string]interface{}{
		"list_id":  targetList,
		"position": 5,
	}).Return(int64(1), nil).Once()

	card, err := cards.Move(context.Background(), cardID, targetList, userID, nil)

	assert.NoError(t, err)
	assert.NotNil(t, card)
	cardRepo.AssertExpectations(t)
}

func TestCardService_Move_ExplicitPositionConflictNoRetry(t *testing.T) {
	cards, _, listRepo, cardRepo := newCardService()
	cardID, listID, userID := uuid.New(), uuid.New(), uuid.New()
	targetList := uuid.New()

	ownedCard(cardRepo, cardID, listID, userID)
	ownedList(listRepo, targetList, userID)
	position := 2
	cardRepo.On("Update", mock.Anything, cardID, map[string]interface{}{
		"list_id":  targetList,
		"position": 2,
	}).Return(int64(0), repository.ErrDuplicateKey)

	_, err := cards.Move(context.Background(), cardID, targetList, userID, &position)

	assert.ErrorIs(t, err, service.ErrConflict)
	cardRepo.AssertNotCalled(t, "MaxPosition", mock.Anything, mock.Anything)
}

func TestCardService_Update_MoveRetriesOncePastStaleOrdinal(t *testing.T) {
	cards, _, listRepo, cardRepo := newCardService()
	cardID, listID, userID := uuid.New(), uuid.New(), uuid.New()
	targetList := uuid.New()

	ownedCard(cardRepo, cardID, listID, userID)
	ownedList(listRepo, targetList, userID)
	cardRepo.On("MaxPosition", mock.Anything, targetList).Return(6, nil).Once()
	cardRepo.On("MaxPosition", mock.Anything, targetList).Return(7, nil).Once()
	cardRepo.On("Update", mock.Anything, cardID, map[string]interface{}{
		"list_id":  targetList,
		"position": 7,
	}).Return(int64(0), repository.ErrDuplicateKey).Once()
	cardRepo.On("Update", mock.Anything, cardID, map[string]interface{}{
		"list_id":  targetList,
		"position": 8,
	}).Return(int64(1), nil).Once()

	_, err := cards.Update(context.Background(), cardID, service.UpdateCardInput{ListID: &targetList}, userID)

	assert.NoError(t, err)
	cardRepo.AssertExpectations(t)
}

func TestCardService_Remove_ZeroRowsIsNotFound(t *testing.T) {
	cards, _, _, cardRepo := newCardService()
	cardID, listID, userID := uuid.New(), uuid.New(), uuid.New()

	ownedCard(cardRepo, cardID, listID, userID)
	cardRepo.On("Delete", mock.Anything, cardID).Return(int64(0), nil)

	_, err := cards.Remove(context.Background(), cardID, userID)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCardService_Remove_Success(t *testing.T) {
	cards, _, _, cardRepo := newCardService()
	cardID, listID, userID := uuid.New(), uuid.New(), uuid.New()

	ownedCard(cardRepo, cardID, listID, userID)
	cardRepo.On("Delete", mock.Anything, cardID).Return(int64(1), nil)

	message, err := cards.Remove(context.Background(), cardID, userID)

	assert.NoError(t, err)
	assert.Equal(t, service.CardRemovedMessage, message)
}
