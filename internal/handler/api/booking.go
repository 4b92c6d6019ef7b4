package api

import (
	"context"
	"errors"
	"net/http"

	"coach-flow/internal/domain/booking"
	"coach-flow/internal/domain/user"
	reqdto "coach-flow/internal/handler/dto/request"
	resdto "coach-flow/internal/handler/dto/response"
	"coach-flow/internal/handler/httperr"
	"coach-flow/internal/handler/middleware"
	"coach-flow/internal/infra"
	"coach-flow/internal/usecase/commands"
	"coach-flow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request a session with a trainer; the slot length comes from the service duration
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.CreateBooking(c.Request.Context(), clientID, req.TrainerID, req.ServiceID, req.StartTime)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPastTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot book a time in the past", nil)
		case errors.Is(err, commands.ErrClientBanned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Banned from booking with this trainer", nil)
		case errors.Is(err, commands.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, commands.ErrTrainerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Trainer not found", nil)
		case errors.Is(err, commands.ErrServiceTrainerMismatch):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Service does not belong to the trainer", nil)
		case errors.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List the actor's bookings with optional status, role and time filters
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending|accepted|rejected|cancelled)"
// @Param role query string false "Side of the booking (client|trainer)"
// @Param time query string false "Time window (upcoming|past)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filters := queries.BookingListFilters{}
	if query.Status != "" {
		status := booking.Status(query.Status)
		filters.Status = &status
	}
	if query.Role != "" {
		role := user.Role(query.Role)
		filters.Role = &role
	}
	if query.Time != "" {
		tf := queries.TimeFilter(query.Time)
		filters.Time = &tf
	}

	items, err := h.q.List(c.Request.Context(), actorID, filters, query.Page, query.Limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidFilter) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromBookingList(items)})
}

// @Summary Get booking
// @Description Get booking details; only the client or the trainer of the booking may read it
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, queries.ErrBookingAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Approve booking
// @Description Trainer accepts a pending booking request
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	h.transition(c, h.cmds.ApproveBooking)
}

// @Summary Reject booking
// @Description Trainer declines a pending booking request
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	h.transition(c, h.cmds.RejectBooking)
}

// @Summary Cancel booking
// @Description Either party cancels; a late client cancellation of an accepted session triggers a ban
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.CancelBooking)
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, actorID, bookingID uuid.UUID) error) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := op(c.Request.Context(), actorID, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrBookingNotPending):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is not pending", nil)
		case errors.Is(err, commands.ErrBookingNotCancellable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking cannot be cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
