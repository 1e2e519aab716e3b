package handler

import (
	"net/http"
	"time"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CardHandler struct {
	cardService *service.CardService
}

func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

type CreateCardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Position    *int   `json:"position" binding:"omitempty,min=1"`
	DueDate     string `json:"due_date"`
	CoverColor  string `json:"cover_color"`
}

type UpdateCardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Position    *int    `json:"position" binding:"omitempty,min=1"`
	DueDate     *string `json:"due_date"`
	CoverColor  *string `json:"cover_color"`
	ListID      *string `json:"list_id" binding:"omitempty,uuid"`
}

type MoveCardRequest struct {
	ListID   string `json:"list_id" binding:"required,uuid"`
	Position *int   `json:"position" binding:"omitempty,min=1"`
}

type CardResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Position    int     `json:"position"`
	DueDate     *string `json:"due_date,omitempty"`
	CoverColor  string  `json:"cover_color"`
	ListID      string  `json:"list_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func toCardResponse(card *model.Card) CardResponse {
	resp := CardResponse{
		ID:          card.ID.String(),
		Title:       card.Title,
		Description: card.Description,
		Position:    card.Position,
		CoverColor:  card.CoverColor,
		ListID:      card.ListID.String(),
		CreatedAt:   card.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   card.UpdatedAt.Format(time.RFC3339),
	}
	if card.DueDate != nil {
		due := card.DueDate.Format(time.RFC3339)
		resp.DueDate = &due
	}
	return resp
}

// Create adds a card to a list owned by the authenticated user
// @Summary      Create a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        listId path string true "List ID"
// @Param        request body CreateCardRequest true "Card data"
// @Success      201 {object} CardResponse
// @Router       /cards/list/{listId} [post]
func (h *CardHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	listID, err := uuid.Parse(c.Param("listId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID format"})
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card, err := h.cardService.Create(c.Request.Context(), listID, service.CreateCardInput{
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		DueDate:     req.DueDate,
		CoverColor:  req.CoverColor,
	}, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCardResponse(card))
}

// GetByList returns the list's cards ordered by position
// @Summary      List a list's cards
// @Tags         Cards
// @Produce      json
// @Security     BearerAuth
// @Param        listId path string true "List ID"
// @Success      200 {array} CardResponse
// @Router       /cards/list/{listId} [get]
func (h *CardHandler) GetByList(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	listID, err := uuid.Parse(c.Param("listId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID format"})
		return
	}

	cards, err := h.cardService.FindByList(c.Request.Context(), listID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]CardResponse, len(cards))
	for i := range cards {
		response[i] = toCardResponse(&cards[i])
	}
	c.JSON(http.StatusOK, response)
}

// GetByID returns a single card
// @Summary      Get a card
// @Tags         Cards
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Card ID"
// @Success      200 {object} CardResponse
// @Router       /cards/{id} [get]
func (h *CardHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	card, err := h.cardService.FindOne(c.Request.Context(), cardID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCardResponse(card))
}

// Update patches a card; changing list_id moves it to another owned list
// @Summary      Update a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Card ID"
// @Param        request body UpdateCardRequest true "Fields to update"
// @Success      200 {object} CardResponse
// @Router       /cards/{id} [patch]
func (h *CardHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	input := service.UpdateCardInput{
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		DueDate:     req.DueDate,
		CoverColor:  req.CoverColor,
	}
	if req.ListID != nil {
		listID, err := uuid.Parse(*req.ListID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID format"})
			return
		}
		input.ListID = &listID
	}

	card, err := h.cardService.Update(c.Request.Context(), cardID, input, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCardResponse(card))
}

// Delete removes a card
// @Summary      Delete a card
// @Tags         Cards
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Card ID"
// @Success      200 {object} map[string]string
// @Router       /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	message, err := h.cardService.Remove(c.Request.Context(), cardID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Move relocates a card to another list owned by the same user
// @Summary      Move a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Card ID"
// @Param        request body MoveCardRequest true "Destination"
// @Success      200 {object} CardResponse
// @Failure      403 {object} map[string]string
// @Router       /cards/{id}/move [put]
func (h *CardHandler) Move(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	listID, err := uuid.Parse(req.ListID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID format"})
		return
	}

	card, err := h.cardService.Move(c.Request.Context(), cardID, listID, userID, req.Position)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCardResponse(card))
}
