package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/interfaces/http/middleware"
	"mailcraft.backend/internal/interfaces/http/response"
	"mailcraft.backend/internal/usecases"
)

// DashboardHandler handles dashboard overview endpoints
type DashboardHandler struct {
	dashboardUsecase *usecases.DashboardUsecase
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUsecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// Stats returns the actor's dashboard counters
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	stats, err := h.dashboardUsecase.Stats(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
