package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/interfaces/http/middleware"
	"mailcraft.backend/internal/interfaces/http/response"
	"mailcraft.backend/internal/usecases"
)

// TeamHandler handles team membership endpoints
type TeamHandler struct {
	teamUsecase *usecases.TeamUsecase
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamUsecase *usecases.TeamUsecase) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

// GetTeam returns the actor's team with its ordered roster
// GET /api/v1/team
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	team, err := h.teamUsecase.GetTeamForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoTeam) {
			response.Error(c, domainerrors.NotFound("No team found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, team)
}

// InviteMember creates a pending invitation. Accepts form or JSON bodies
// so both the settings form and API clients can post to it.
// POST /api/v1/team/invitations
func (h *TeamHandler) InviteMember(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.InviteMemberInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	message, err := h.teamUsecase.InviteMember(c.Request.Context(), userID, c.ClientIP(), &input)
	if err != nil {
		response.Error(c, mapTeamError(err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": message})
}

// RemoveMember removes a membership row from the actor's team
// POST /api/v1/team/members/remove
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.RemoveMemberInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	memberID, err := uuid.Parse(input.MemberID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid member ID"))
		return
	}

	h.removeMember(c, userID, memberID)
}

// DeleteMember removes a membership row addressed by path parameter
// DELETE /api/v1/team/members/:id
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid member ID"))
		return
	}

	h.removeMember(c, userID, memberID)
}

func (h *TeamHandler) removeMember(c *gin.Context, userID, memberID uuid.UUID) {
	message, err := h.teamUsecase.RemoveMember(c.Request.Context(), userID, c.ClientIP(), memberID)
	if err != nil {
		response.Error(c, mapTeamError(err))
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": message})
}

// ListInvitations returns the team's pending invitations
// GET /api/v1/team/invitations
func (h *TeamHandler) ListInvitations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	invitations, err := h.teamUsecase.ListPendingInvitations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, mapTeamError(err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invitations": invitations})
}

// ListActivity returns recent audit entries for the actor's team
// GET /api/v1/team/activity
func (h *TeamHandler) ListActivity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			response.Error(c, domainerrors.BadRequest("limit must be between 1 and 100"))
			return
		}
		limit = parsed
	}

	entries, err := h.teamUsecase.ListActivity(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, mapTeamError(err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"activity": entries})
}

// mapTeamError translates usecase sentinels into HTTP-shaped errors.
// AppErrors pass through with their own status and message.
func mapTeamError(err error) error {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, domainerrors.ErrNoTeam):
		return domainerrors.NotFound("No team found")
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Team member not found")
	default:
		return err
	}
}
