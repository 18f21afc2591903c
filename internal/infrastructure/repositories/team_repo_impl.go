package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/infrastructure/models"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	m := r.toModel(team)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	team.ID = m.ID
	team.CreatedAt = m.CreatedAt
	team.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var m models.Team
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamRepository) GetForUser(ctx context.Context, userID uuid.UUID) (*entities.Team, error) {
	var m models.Team
	err := GetDB(ctx, r.db).WithContext(ctx).
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Order("team_members.joined_at ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.Team) error {
	updates := map[string]interface{}{
		"name":                   team.Name,
		"stripe_customer_id":     team.StripeCustomerID.Ptr(),
		"stripe_subscription_id": team.StripeSubscriptionID.Ptr(),
		"stripe_product_id":      team.StripeProductID.Ptr(),
		"plan_name":              team.PlanName.Ptr(),
		"subscription_status":    team.SubscriptionStatus.Ptr(),
		"updated_at":             time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ?", team.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) toEntity(m *models.Team) *entities.Team {
	return &entities.Team{
		ID:                   m.ID,
		Name:                 m.Name,
		StripeCustomerID:     null.StringFromPtr(m.StripeCustomerID),
		StripeSubscriptionID: null.StringFromPtr(m.StripeSubscriptionID),
		StripeProductID:      null.StringFromPtr(m.StripeProductID),
		PlanName:             null.StringFromPtr(m.PlanName),
		SubscriptionStatus:   null.StringFromPtr(m.SubscriptionStatus),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func (r *TeamRepository) toModel(e *entities.Team) *models.Team {
	return &models.Team{
		ID:                   e.ID,
		Name:                 e.Name,
		StripeCustomerID:     e.StripeCustomerID.Ptr(),
		StripeSubscriptionID: e.StripeSubscriptionID.Ptr(),
		StripeProductID:      e.StripeProductID.Ptr(),
		PlanName:             e.PlanName.Ptr(),
		SubscriptionStatus:   e.SubscriptionStatus.Ptr(),
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}
