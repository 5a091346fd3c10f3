package api

import (
	"net/http"

	reqdto "lunchbox/internal/handler/dto/request"
	resdto "lunchbox/internal/handler/dto/response"
	"lunchbox/internal/handler/middleware"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/usecase/commands"
	"lunchbox/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LunchHandler struct {
	lunchCommands commands.LunchCommands
	lunchQueries  queries.LunchQueries
}

func NewLunchHandler(lunchCommands commands.LunchCommands, lunchQueries queries.LunchQueries) *LunchHandler {
	return &LunchHandler{
		lunchCommands: lunchCommands,
		lunchQueries:  lunchQueries,
	}
}

// @Summary Create lunch
// @Description Create a lunch template, optionally seeded with one product
// @Tags lunches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLunchRequest true "Lunch request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lunches [post]
func (h *LunchHandler) CreateLunch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateLunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.lunchCommands.CreateLunch(c.Request.Context(), req, userID)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": result.LunchID.String()})
}

// @Summary Rename lunch
// @Tags lunches
// @Accept json
// @Security BearerAuth
// @Param id path string true "Lunch ID"
// @Param request body reqdto.RenameLunchRequest true "Rename request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lunches/{id} [patch]
func (h *LunchHandler) RenameLunch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	lunchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lunch ID format"})
		return
	}

	var req reqdto.RenameLunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.lunchCommands.RenameLunch(c.Request.Context(), lunchID, userID, req.Name); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add product to lunch
// @Description Add a product to the lunch, incrementing quantity when already present
// @Tags lunches
// @Accept json
// @Security BearerAuth
// @Param id path string true "Lunch ID"
// @Param request body reqdto.AddLunchProductRequest true "Product to add"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lunches/{id}/items [post]
func (h *LunchHandler) AddProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	lunchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lunch ID format"})
		return
	}

	var req reqdto.AddLunchProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.lunchCommands.AddProduct(c.Request.Context(), lunchID, userID, req.ProductID); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Set lunch item quantity
// @Description Update a line's quantity; zero removes the line
// @Tags lunches
// @Accept json
// @Security BearerAuth
// @Param id path string true "Lunch ID"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.SetLunchItemQuantityRequest true "Quantity"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lunches/{id}/items/{itemId} [put]
func (h *LunchHandler) SetItemQuantity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	lunchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lunch ID format"})
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID format"})
		return
	}

	var req reqdto.SetLunchItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.lunchCommands.SetItemQuantity(c.Request.Context(), lunchID, itemID, userID, req.Quantity); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get lunch
// @Tags lunches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lunch ID"
// @Success 200 {object} resdto.LunchResponse
// @Failure 404 {object} map[string]string
// @Router /lunches/{id} [get]
func (h *LunchHandler) GetLunch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	lunchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lunch ID format"})
		return
	}

	view, err := h.lunchQueries.GetByID(c.Request.Context(), userID, lunchID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrLunchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Lunch not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLunchView(view))
}

// @Summary Get user lunches
// @Tags lunches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LunchListResponse
// @Router /lunches [get]
func (h *LunchHandler) GetUserLunches(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.lunchQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.LunchListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromLunchListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func (h *LunchHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrLunchNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lunch not found"})
	case errs.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errs.Is(err, commands.ErrInvalidLunchName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lunch name"})
	case errs.Is(err, commands.ErrLunchItemInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lunch item"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
