package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/interfaces/http/response"
	"mailcraft.backend/internal/usecases"
	"mailcraft.backend/pkg/logger"
	"mailcraft.backend/pkg/metrics"
)

// SubscribeHandler handles the public email-capture endpoint
type SubscribeHandler struct {
	subscribeUsecase *usecases.SubscribeUsecase
}

// NewSubscribeHandler creates a new subscribe handler
func NewSubscribeHandler(subscribeUsecase *usecases.SubscribeUsecase) *SubscribeHandler {
	return &SubscribeHandler{subscribeUsecase: subscribeUsecase}
}

// Subscribe forwards a captured email to the form provider. Provider
// failures surface as a generic 500 so upstream details never leak.
// POST /api/v1/subscribe
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("A valid email is required"))
		return
	}

	if err := h.subscribeUsecase.Subscribe(c.Request.Context(), input.Email); err != nil {
		metrics.SubscribeAttempts.WithLabelValues("failure").Inc()
		logger.Error(c.Request.Context(), "email capture failed", zap.Error(err))
		response.ErrorWithStatus(c, http.StatusInternalServerError, "Subscription failed")
		return
	}

	metrics.SubscribeAttempts.WithLabelValues("success").Inc()
	response.Success(c, http.StatusOK, gin.H{"success": true})
}
