package api

import (
	"errors"
	"net/http"

	reqdto "coach-flow/internal/handler/dto/request"
	resdto "coach-flow/internal/handler/dto/response"
	"coach-flow/internal/handler/httperr"
	"coach-flow/internal/usecase/commands"
	"coach-flow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler carries the manual ban surface. Bans from late cancellations
// are written by the booking commands without admin involvement.
type AdminHandler struct {
	banCmds commands.BanCommands
	banQ    queries.BanQueries
}

func NewAdminHandler(banCmds commands.BanCommands, banQ queries.BanQueries) *AdminHandler {
	return &AdminHandler{banCmds: banCmds, banQ: banQ}
}

// @Summary Impose ban
// @Description Impose or extend a ban for a (client, trainer) pair
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ImposeBanRequest true "Ban request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bans [post]
func (h *AdminHandler) ImposeBan(c *gin.Context) {
	var req reqdto.ImposeBanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.banCmds.ImposeBan(c.Request.Context(), req.ClientID, req.TrainerID, req.BannedUntil); err != nil {
		switch {
		case errors.Is(err, commands.ErrClientNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
		case errors.Is(err, commands.ErrTrainerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Trainer not found", nil)
		case errors.Is(err, commands.ErrInvalidBanPeriod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Banned until must be in the future", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List client bans
// @Description List all bans recorded for a client
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {array} resdto.BanResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/clients/{id}/bans [get]
func (h *AdminHandler) ListClientBans(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid client ID format", nil)
		return
	}

	views, err := h.banQ.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bans": resdto.FromBanList(views)})
}
