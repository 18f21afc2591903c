package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/domain/repositories"
	"mailcraft.backend/pkg/metrics"
	"mailcraft.backend/pkg/utils"
)

// TeamUsecase handles team membership business logic
type TeamUsecase struct {
	teamRepo       repositories.TeamRepository
	memberRepo     repositories.TeamMemberRepository
	invitationRepo repositories.InvitationRepository
	userRepo       repositories.UserRepository
	activityRepo   repositories.ActivityLogRepository
	uow            repositories.UnitOfWork
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(
	teamRepo repositories.TeamRepository,
	memberRepo repositories.TeamMemberRepository,
	invitationRepo repositories.InvitationRepository,
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityLogRepository,
	uow repositories.UnitOfWork,
) *TeamUsecase {
	return &TeamUsecase{
		teamRepo:       teamRepo,
		memberRepo:     memberRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		activityRepo:   activityRepo,
		uow:            uow,
	}
}

// GetTeamForUser resolves the acting user's team joined with its ordered
// roster. Pages requiring team context treat ErrNoTeam as fatal.
func (u *TeamUsecase) GetTeamForUser(ctx context.Context, userID uuid.UUID) (*entities.TeamWithMembers, error) {
	team, err := u.teamRepo.GetForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrNoTeam
		}
		return nil, err
	}

	members, err := u.memberRepo.ListViewsByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return &entities.TeamWithMembers{
		Team:    *team,
		Members: members,
	}, nil
}

// InviteMember creates a pending invitation on behalf of an owner. The
// invitation row and its audit entry commit atomically.
func (u *TeamUsecase) InviteMember(ctx context.Context, actorID uuid.UUID, ipAddress string, input *entities.InviteMemberInput) (string, error) {
	team, actor, err := u.resolveActor(ctx, actorID)
	if err != nil {
		return "", err
	}
	if actor.Role != entities.UserRoleOwner {
		return "", domainerrors.Forbidden("You must be a team owner to invite new members")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Reject inviting someone already on the roster.
	if existing, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		if _, err := u.memberRepo.GetByTeamAndUser(ctx, team.ID, existing.ID); err == nil {
			return "", domainerrors.Conflict("User is already a member of this team")
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return "", err
		}
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return "", err
	}

	if _, err := u.invitationRepo.GetPendingByTeamAndEmail(ctx, team.ID, email); err == nil {
		return "", domainerrors.NewError("An invitation is already pending for this email", domainerrors.ErrDuplicateInvite)
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return "", err
	}

	invitation := &entities.Invitation{
		ID:        utils.GenerateUUIDv7(),
		TeamID:    team.ID,
		Email:     email,
		Role:      entities.UserRole(input.Role),
		InvitedBy: actorID,
		InvitedAt: time.Now(),
		Status:    entities.InvitationStatusPending,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.invitationRepo.Create(txCtx, invitation); err != nil {
			return err
		}
		return u.activityRepo.Create(txCtx, newActivityEntry(team.ID, actorID, entities.ActivityInviteTeamMember, ipAddress))
	})
	if err != nil {
		return "", err
	}

	metrics.InvitationsCreated.Inc()
	return "Invitation sent successfully", nil
}

// RemoveMember deletes a membership row on behalf of an owner. The
// deletion and its audit entry commit atomically.
func (u *TeamUsecase) RemoveMember(ctx context.Context, actorID uuid.UUID, ipAddress string, memberID uuid.UUID) (string, error) {
	team, actor, err := u.resolveActor(ctx, actorID)
	if err != nil {
		return "", err
	}
	if actor.Role != entities.UserRoleOwner {
		return "", domainerrors.Forbidden("You must be a team owner to remove members")
	}

	member, err := u.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.NotFound("Team member not found")
		}
		return "", err
	}
	if member.TeamID != team.ID {
		return "", domainerrors.NotFound("Team member not found")
	}

	// The first ranks never render a removal control; enforce the same
	// rule server-side.
	if member.Protected() {
		return "", domainerrors.NewError("This member cannot be removed", domainerrors.ErrProtectedMember)
	}

	if member.Role == entities.UserRoleOwner {
		owners, err := u.memberRepo.CountOwners(ctx, team.ID)
		if err != nil {
			return "", err
		}
		if owners <= 1 {
			return "", domainerrors.NewError("Cannot remove the last owner of a team", domainerrors.ErrLastOwner)
		}
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.memberRepo.Delete(txCtx, memberID); err != nil {
			return err
		}
		return u.activityRepo.Create(txCtx, newActivityEntry(team.ID, actorID, entities.ActivityRemoveTeamMember, ipAddress))
	})
	if err != nil {
		return "", err
	}

	return "Team member removed successfully", nil
}

// ListPendingInvitations returns the team's outstanding invitations.
func (u *TeamUsecase) ListPendingInvitations(ctx context.Context, actorID uuid.UUID) ([]*entities.Invitation, error) {
	team, _, err := u.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return u.invitationRepo.ListPendingByTeam(ctx, team.ID)
}

// ListActivity returns recent audit entries for the actor's team.
func (u *TeamUsecase) ListActivity(ctx context.Context, actorID uuid.UUID, limit int) ([]*entities.ActivityLog, error) {
	team, _, err := u.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return u.activityRepo.ListByTeam(ctx, team.ID, limit)
}

func (u *TeamUsecase) resolveActor(ctx context.Context, actorID uuid.UUID) (*entities.Team, *entities.TeamMember, error) {
	team, err := u.teamRepo.GetForUser(ctx, actorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.ErrNoTeam
		}
		return nil, nil, err
	}

	actor, err := u.memberRepo.GetByTeamAndUser(ctx, team.ID, actorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.ErrNoTeam
		}
		return nil, nil, err
	}
	return team, actor, nil
}
