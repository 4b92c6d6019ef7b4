package api

import (
	"errors"
	"net/http"

	reqdto "coach-flow/internal/handler/dto/request"
	resdto "coach-flow/internal/handler/dto/response"
	"coach-flow/internal/handler/httperr"
	"coach-flow/internal/handler/middleware"
	"coach-flow/internal/usecase/commands"
	"coach-flow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UnavailabilityHandler struct {
	cmds commands.UnavailabilityCommands
	q    queries.UnavailabilityQueries
}

func NewUnavailabilityHandler(cmds commands.UnavailabilityCommands, q queries.UnavailabilityQueries) *UnavailabilityHandler {
	return &UnavailabilityHandler{cmds: cmds, q: q}
}

// @Summary Create unavailability window
// @Description Trainer declares a blackout window; cannot cover an accepted booking
// @Tags unavailabilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UnavailabilityWindowRequest true "Window"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /unavailabilities [post]
func (h *UnavailabilityHandler) Create(c *gin.Context) {
	trainerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.UnavailabilityWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.CreateUnavailability(c.Request.Context(), trainerID, req.StartTime, req.EndTime)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List unavailability windows
// @Description List the trainer's own blackout windows
// @Tags unavailabilities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UnavailabilityResponse
// @Failure 401 {object} map[string]string
// @Router /unavailabilities [get]
func (h *UnavailabilityHandler) List(c *gin.Context) {
	trainerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unavailabilities": resdto.FromUnavailabilityList(views)})
}

// @Summary Reschedule unavailability window
// @Description Move or resize an owned blackout window
// @Tags unavailabilities
// @Accept json
// @Security BearerAuth
// @Param id path string true "Window ID"
// @Param request body reqdto.UnavailabilityWindowRequest true "New window"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /unavailabilities/{id} [put]
func (h *UnavailabilityHandler) Update(c *gin.Context) {
	trainerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid window ID format", nil)
		return
	}

	var req reqdto.UnavailabilityWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.RescheduleUnavailability(c.Request.Context(), trainerID, id, req.StartTime, req.EndTime); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete unavailability window
// @Description Remove an owned blackout window
// @Tags unavailabilities
// @Security BearerAuth
// @Param id path string true "Window ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /unavailabilities/{id} [delete]
func (h *UnavailabilityHandler) Delete(c *gin.Context) {
	trainerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid window ID format", nil)
		return
	}

	if err := h.cmds.DeleteUnavailability(c.Request.Context(), trainerID, id); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UnavailabilityHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidWindow):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Start time must be before end time", nil)
	case errors.Is(err, commands.ErrUnavailabilityNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unavailability not found", nil)
	case errors.Is(err, commands.ErrAcceptedBookingInWindow):
		httperr.AbortWithError(c, http.StatusConflict, err, "An accepted booking exists inside the window", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
