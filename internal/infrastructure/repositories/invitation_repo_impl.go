package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/infrastructure/models"
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *entities.Invitation) error {
	m := r.toModel(invitation)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	invitation.ID = m.ID
	return nil
}

func (r *InvitationRepository) GetPendingByTeamAndEmail(ctx context.Context, teamID uuid.UUID, email string) (*entities.Invitation, error) {
	var m models.Invitation
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ? AND lower(email) = ? AND status = ?",
			teamID, strings.ToLower(email), string(entities.InvitationStatusPending)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *InvitationRepository) ListPendingByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Invitation, error) {
	var ms []models.Invitation
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, string(entities.InvitationStatusPending)).
		Order("invited_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Invitation, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *InvitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvitationStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Invitation{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *InvitationRepository) toEntity(m *models.Invitation) *entities.Invitation {
	return &entities.Invitation{
		ID:        m.ID,
		TeamID:    m.TeamID,
		Email:     m.Email,
		Role:      entities.UserRole(m.Role),
		InvitedBy: m.InvitedBy,
		InvitedAt: m.InvitedAt,
		Status:    entities.InvitationStatus(m.Status),
	}
}

func (r *InvitationRepository) toModel(e *entities.Invitation) *models.Invitation {
	return &models.Invitation{
		ID:        e.ID,
		TeamID:    e.TeamID,
		Email:     e.Email,
		Role:      string(e.Role),
		InvitedBy: e.InvitedBy,
		InvitedAt: e.InvitedAt,
		Status:    string(e.Status),
	}
}
