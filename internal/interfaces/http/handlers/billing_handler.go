package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/interfaces/http/middleware"
	"mailcraft.backend/internal/interfaces/http/response"
	"mailcraft.backend/internal/usecases"
)

// BillingHandler handles billing portal endpoints
type BillingHandler struct {
	billingUsecase *usecases.BillingUsecase
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingUsecase *usecases.BillingUsecase) *BillingHandler {
	return &BillingHandler{billingUsecase: billingUsecase}
}

// Portal redirects the actor to the external subscription portal
// GET /api/v1/billing/portal
func (h *BillingHandler) Portal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	url, err := h.billingUsecase.PortalURL(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoTeam) {
			response.Error(c, domainerrors.NotFound("No team found"))
			return
		}
		response.Error(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, url)
}

// PortalURL returns the portal URL as JSON for clients that handle the
// redirect themselves
// GET /api/v1/billing/portal-url
func (h *BillingHandler) PortalURL(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	url, err := h.billingUsecase.PortalURL(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoTeam) {
			response.Error(c, domainerrors.NotFound("No team found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url})
}
