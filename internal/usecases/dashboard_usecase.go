package usecases

import (
	"context"

	"github.com/google/uuid"
	"mailcraft.backend/internal/domain/repositories"
)

// DashboardStats backs the dashboard overview widgets. Subscriber and
// engagement numbers stay zero until a sending pipeline exists.
type DashboardStats struct {
	TotalCampaigns int64   `json:"totalCampaigns"`
	TotalBrands    int64   `json:"totalBrands"`
	Subscribers    int64   `json:"subscribers"`
	EmailsSent     int64   `json:"emailsSent"`
	OpenRate       float64 `json:"openRate"`
	TeamMembers    int64   `json:"teamMembers"`
}

// DashboardUsecase aggregates counts for the dashboard page
type DashboardUsecase struct {
	teamRepo       repositories.TeamRepository
	memberRepo     repositories.TeamMemberRepository
	brandRepo      repositories.BrandRepository
	generationRepo repositories.GenerationRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	teamRepo repositories.TeamRepository,
	memberRepo repositories.TeamMemberRepository,
	brandRepo repositories.BrandRepository,
	generationRepo repositories.GenerationRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		teamRepo:       teamRepo,
		memberRepo:     memberRepo,
		brandRepo:      brandRepo,
		generationRepo: generationRepo,
	}
}

// Stats computes the actor's dashboard counters.
func (u *DashboardUsecase) Stats(ctx context.Context, actorID uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{}

	brands, err := u.brandRepo.ListByUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	stats.TotalBrands = int64(len(brands))

	brandIDs := make([]uuid.UUID, 0, len(brands))
	for _, b := range brands {
		brandIDs = append(brandIDs, b.ID)
	}
	campaigns, err := u.generationRepo.CountByBrands(ctx, brandIDs)
	if err != nil {
		return nil, err
	}
	stats.TotalCampaigns = campaigns

	if team, err := u.teamRepo.GetForUser(ctx, actorID); err == nil {
		members, err := u.memberRepo.CountByTeam(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		stats.TeamMembers = members
	}

	return stats, nil
}
