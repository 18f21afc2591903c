package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/infrastructure/models"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	m := r.toModel(member)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	member.ID = m.ID
	return nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	var m models.TeamMember
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamMemberRepository) GetByTeamAndUser(ctx context.Context, teamID, userID uuid.UUID) (*entities.TeamMember, error) {
	var m models.TeamMember
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamMemberRepository) ListViewsByTeam(ctx context.Context, teamID uuid.UUID) ([]entities.TeamMemberView, error) {
	var ms []models.TeamMember
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("User").
		Where("team_id = ?", teamID).
		Order("display_rank ASC, joined_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	views := make([]entities.TeamMemberView, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		views = append(views, entities.TeamMemberView{
			ID:          m.ID,
			Role:        entities.UserRole(m.Role),
			DisplayRank: m.DisplayRank,
			JoinedAt:    m.JoinedAt,
			Removable:   m.DisplayRank > entities.ProtectedMemberRanks,
			User: entities.UserSummary{
				ID:    m.User.ID,
				Name:  null.StringFromPtr(m.User.Name),
				Email: m.User.Email,
			},
		})
	}
	return views, nil
}

func (r *TeamMemberRepository) CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}

func (r *TeamMemberRepository) CountOwners(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("team_id = ? AND role = ?", teamID, string(entities.UserRoleOwner)).
		Count(&count).Error
	return count, err
}

func (r *TeamMemberRepository) NextDisplayRank(ctx context.Context, teamID uuid.UUID) (int, error) {
	var maxRank *int
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("team_id = ?", teamID).
		Select("MAX(display_rank)").
		Scan(&maxRank).Error
	if err != nil {
		return 0, err
	}
	if maxRank == nil {
		return 1, nil
	}
	return *maxRank + 1, nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepository) toEntity(m *models.TeamMember) *entities.TeamMember {
	return &entities.TeamMember{
		ID:          m.ID,
		UserID:      m.UserID,
		TeamID:      m.TeamID,
		Role:        entities.UserRole(m.Role),
		DisplayRank: m.DisplayRank,
		JoinedAt:    m.JoinedAt,
	}
}

func (r *TeamMemberRepository) toModel(e *entities.TeamMember) *models.TeamMember {
	return &models.TeamMember{
		ID:          e.ID,
		UserID:      e.UserID,
		TeamID:      e.TeamID,
		Role:        string(e.Role),
		DisplayRank: e.DisplayRank,
		JoinedAt:    e.JoinedAt,
	}
}
