package api

import (
	"errors"
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

type ScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
	scheduleQueries  queries.ScheduleQueries
}

func NewScheduleHandler(scheduleCommands commands.ScheduleCommands, scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleCommands: scheduleCommands,
		scheduleQueries:  scheduleQueries,
	}
}

// @Summary Create schedule
// @Description Expand a recurrence into delivery dates and create one order instance per date
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateScheduleRequest true "Schedule request"
// @Success 201 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.scheduleCommands.CreateSchedule(c.Request.Context(), req, userID, idempotencyKey)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrLunchNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lunch not found",
			})
		case errs.Is(err, commands.ErrEmptyLunch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Lunch has no items",
			})
		case errs.Is(err, commands.ErrNoDeliveryDates):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No delivery dates found for this schedule",
			})
		case errs.Is(err, commands.ErrInvalidRecurrence):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid recurrence",
			})
		case errs.Is(err, commands.ErrInvalidFee):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid delivery fee",
			})
		case errs.Is(err, commands.ErrDuplicateSchedule):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Duplicate schedule request with different parameters",
			})
		case errs.Is(err, commands.ErrIdempotencyInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Schedule request is currently being processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromScheduleView(result.Schedule))
}

// @Summary Get schedule
// @Description Get schedule by ID with its order instances
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule ID format",
		})
		return
	}

	view, err := h.scheduleQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

// @Summary Get user schedules
// @Description List schedules for the current user
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ScheduleListResponse
// @Failure 401 {object} map[string]string
// @Router /schedules [get]
func (h *ScheduleHandler) GetUserSchedules(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.scheduleQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ScheduleListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromScheduleListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errors.New("Idempotency-Key header is required")
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
