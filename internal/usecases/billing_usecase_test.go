package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/usecases"
)

func TestBillingUsecase_PortalURL(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	uc := usecases.NewBillingUsecase(teamRepo, "https://billing.example.com/p")
	userID := uuid.New()

	teamRepo.On("GetForUser", mock.Anything, userID).Return(&entities.Team{
		ID:               uuid.New(),
		StripeCustomerID: null.StringFrom("cus_123"),
	}, nil).Once()

	url, err := uc.PortalURL(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "https://billing.example.com/p/cus_123", url)
}

func TestBillingUsecase_PortalURL_NoTeam(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	uc := usecases.NewBillingUsecase(teamRepo, "https://billing.example.com/p")
	userID := uuid.New()

	teamRepo.On("GetForUser", mock.Anything, userID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.PortalURL(context.Background(), userID)
	assert.ErrorIs(t, err, domainerrors.ErrNoTeam)
}

func TestBillingUsecase_PortalURL_NoBillingAccount(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	uc := usecases.NewBillingUsecase(teamRepo, "https://billing.example.com/p")
	userID := uuid.New()

	teamRepo.On("GetForUser", mock.Anything, userID).Return(&entities.Team{ID: uuid.New()}, nil).Once()

	_, err := uc.PortalURL(context.Background(), userID)
	assert.ErrorIs(t, err, domainerrors.ErrBadRequest)
}
