package api

import (
	"errors"
	"net/http"

	resdto "coach-flow/internal/handler/dto/response"
	"coach-flow/internal/handler/httperr"
	"coach-flow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrainerHandler exposes the read-only trainer directory and service catalog.
type TrainerHandler struct {
	userQ    queries.UserQueries
	serviceQ queries.ServiceQueries
}

func NewTrainerHandler(userQ queries.UserQueries, serviceQ queries.ServiceQueries) *TrainerHandler {
	return &TrainerHandler{userQ: userQ, serviceQ: serviceQ}
}

// @Summary List trainers
// @Description List active trainers
// @Tags trainers
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /trainers [get]
func (h *TrainerHandler) List(c *gin.Context) {
	views, err := h.userQ.ListTrainers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainers": resdto.FromUserList(views)})
}

// @Summary List trainer services
// @Description List the services offered by a trainer
// @Tags trainers
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /trainers/{id}/services [get]
func (h *TrainerHandler) ListServices(c *gin.Context) {
	trainerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid trainer ID format", nil)
		return
	}

	views, err := h.serviceQ.ListByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": resdto.FromServiceList(views)})
}

// @Summary Get service
// @Description Get a service by ID
// @Tags trainers
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *TrainerHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID format", nil)
		return
	}

	view, err := h.serviceQ.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrServiceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}
