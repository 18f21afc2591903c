package repositories

import (
	"context"

	"github.com/google/uuid"
	"mailcraft.backend/internal/domain/entities"
)

// TeamRepository defines team data operations
type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	// GetForUser resolves the team a user belongs to via their membership.
	// Users belonging to multiple teams resolve to the earliest joined one.
	GetForUser(ctx context.Context, userID uuid.UUID) (*entities.Team, error)
	Update(ctx context.Context, team *entities.Team) error
}

// TeamMemberRepository defines membership data operations
type TeamMemberRepository interface {
	Create(ctx context.Context, member *entities.TeamMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error)
	GetByTeamAndUser(ctx context.Context, teamID, userID uuid.UUID) (*entities.TeamMember, error)
	// ListViewsByTeam returns memberships ordered by display rank, each
	// joined with its user projection.
	ListViewsByTeam(ctx context.Context, teamID uuid.UUID) ([]entities.TeamMemberView, error)
	CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error)
	CountOwners(ctx context.Context, teamID uuid.UUID) (int64, error)
	// NextDisplayRank returns the rank to assign to the next joining member.
	NextDisplayRank(ctx context.Context, teamID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvitationRepository defines invitation data operations
type InvitationRepository interface {
	Create(ctx context.Context, invitation *entities.Invitation) error
	GetPendingByTeamAndEmail(ctx context.Context, teamID uuid.UUID, email string) (*entities.Invitation, error)
	ListPendingByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Invitation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvitationStatus) error
}
