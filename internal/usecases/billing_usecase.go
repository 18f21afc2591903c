package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/domain/repositories"
)

// BillingUsecase hands actors off to the external subscription portal.
// The portal itself is an opaque external collaborator.
type BillingUsecase struct {
	teamRepo      repositories.TeamRepository
	portalBaseURL string
}

// NewBillingUsecase creates a new billing usecase
func NewBillingUsecase(teamRepo repositories.TeamRepository, portalBaseURL string) *BillingUsecase {
	return &BillingUsecase{
		teamRepo:      teamRepo,
		portalBaseURL: portalBaseURL,
	}
}

// PortalURL resolves the redirect target for the actor's team.
func (u *BillingUsecase) PortalURL(ctx context.Context, actorID uuid.UUID) (string, error) {
	team, err := u.teamRepo.GetForUser(ctx, actorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.ErrNoTeam
		}
		return "", err
	}

	if !team.StripeCustomerID.Valid || team.StripeCustomerID.String == "" {
		return "", domainerrors.NewError("Team has no billing account", domainerrors.ErrBadRequest)
	}

	return u.portalBaseURL + "/" + team.StripeCustomerID.String, nil
}
