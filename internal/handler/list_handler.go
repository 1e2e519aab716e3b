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

type ListHandler struct {
	listService *service.ListService
}

func NewListHandler(listService *service.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

type CreateListRequest struct {
	Name     string `json:"name" binding:"required"`
	Position *int   `json:"position" binding:"omitempty,min=1"`
}

type UpdateListRequest struct {
	Name     *string `json:"name"`
	Position *int    `json:"position" binding:"omitempty,min=1"`
}

type ListResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Position  int            `json:"position"`
	BoardID   string         `json:"board_id"`
	CreatedAt string         `json:"created_at"`
	Cards     []CardResponse `json:"cards,omitempty"`
}

func toListResponse(list *model.List) ListResponse {
	resp := ListResponse{
		ID:        list.ID.String(),
		Name:      list.Name,
		Position:  list.Position,
		BoardID:   list.BoardID.String(),
		CreatedAt: list.CreatedAt.Format(time.RFC3339),
	}
	for i := range list.Cards {
		resp.Cards = append(resp.Cards, toCardResponse(&list.Cards[i]))
	}
	return resp
}

// Create adds a list to a board owned by the authenticated user
// @Summary      Create a list
// @Tags         Lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID"
// @Param        request body CreateListRequest true "List data"
// @Success      201 {object} ListResponse
// @Failure      403 {object} map[string]string
// @Router       /lists/board/{boardId} [post]
func (h *ListHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	list, err := h.listService.Create(c.Request.Context(), boardID, service.CreateListInput{
		Name:     req.Name,
		Position: req.Position,
	}, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toListResponse(list))
}

// GetByBoard returns the board's lists ordered by position, cards included
// @Summary      List a board's lists
// @Tags         Lists
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID"
// @Success      200 {array} ListResponse
// @Router       /lists/board/{boardId} [get]
func (h *ListHandler) GetByBoard(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	lists, err := h.listService.FindByBoard(c.Request.Context(), boardID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]ListResponse, len(lists))
	for i := range lists {
		response[i] = toListResponse(&lists[i])
	}
	c.JSON(http.StatusOK, response)
}

// GetByID returns a single list with its cards
// @Summary      Get a list
// @Tags         Lists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "List ID"
// @Success      200 {object} ListResponse
// @Router       /lists/{id} [get]
func (h *ListHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID format"})
		return
	}

	list, err := h.listService.FindOne(c.Request.Context(), listID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListResponse(list))
}

// Update patches a list on a board owned by the authenticated user
// @Summary      Update a list
// @Tags         Lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "List ID"
// @Param        request body UpdateListRequest true "Fields to update"
// @Success      200 {object} ListResponse
// @Router       /lists/{id} [patch]
func (h *ListHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID format"})
		return
	}

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	list, err := h.listService.Update(c.Request.Context(), listID, service.UpdateListInput{
		Name:     req.Name,
		Position: req.Position,
	}, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListResponse(list))
}

// Delete removes a list and, by cascade, its cards
// @Summary      Delete a list
// @Tags         Lists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "List ID"
// @Success      200 {object} map[string]string
// @Router       /lists/{id} [delete]
func (h *ListHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID format"})
		return
	}

	message, err := h.listService.Remove(c.Request.Context(), listID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
