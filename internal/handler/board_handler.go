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

type BoardHandler struct {
	boardService *service.BoardService
}

func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

type CreateBoardRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	BackgroundColor string `json:"background_color"`
}

type UpdateBoardRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	BackgroundColor *string `json:"background_color"`
}

type BoardResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	UserID          string `json:"user_id"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func toBoardResponse(board *model.Board) BoardResponse {
	return BoardResponse{
		ID:              board.ID.String(),
		Name:            board.Name,
		Description:     board.Description,
		BackgroundColor: board.BackgroundColor,
		UserID:          board.UserID.String(),
		CreatedAt:       board.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       board.UpdatedAt.Format(time.RFC3339),
	}
}

// Create creates a new board for the authenticated user
// @Summary      Create a board
// @Tags         Boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateBoardRequest true "Board data"
// @Success      201 {object} BoardResponse
// @Router       /board [post]
func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, err := h.boardService.Create(c.Request.Context(), userID, service.CreateBoardInput{
		Name:            req.Name,
		Description:     req.Description,
		BackgroundColor: req.BackgroundColor,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBoardResponse(board))
}

// GetAll returns all boards owned by the authenticated user
// @Summary      List own boards
// @Tags         Boards
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} BoardResponse
// @Router       /board [get]
func (h *BoardHandler) GetAll(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boards, err := h.boardService.FindBelongsToUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]BoardResponse, len(boards))
	for i := range boards {
		response[i] = toBoardResponse(&boards[i])
	}
	c.JSON(http.StatusOK, response)
}

// GetByID returns a single board owned by the authenticated user
// @Summary      Get a board
// @Tags         Boards
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Board ID"
// @Success      200 {object} BoardResponse
// @Failure      404 {object} map[string]string
// @Router       /board/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	board, err := h.boardService.FindOne(c.Request.Context(), boardID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBoardResponse(board))
}

// Update patches a board owned by the authenticated user
// @Summary      Update a board
// @Tags         Boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Board ID"
// @Param        request body UpdateBoardRequest true "Fields to update"
// @Success      200 {object} BoardResponse
// @Router       /board/{id} [put]
func (h *BoardHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, err := h.boardService.Update(c.Request.Context(), boardID, service.UpdateBoardInput{
		Name:            req.Name,
		Description:     req.Description,
		BackgroundColor: req.BackgroundColor,
	}, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBoardResponse(board))
}

// Delete removes a board owned by the authenticated user
// @Summary      Delete a board
// @Tags         Boards
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Board ID"
// @Success      200 {object} map[string]string
// @Router       /board/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	message, err := h.boardService.Remove(c.Request.Context(), boardID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
