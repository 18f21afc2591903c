package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"mailcraft.backend/internal/domain/entities"
	"mailcraft.backend/internal/infrastructure/models"
)

// ActivityLogRepository persists the append-only audit trail. It exposes
// no update or delete on purpose.
type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Create(ctx context.Context, entry *entities.ActivityLog) error {
	m := r.toModel(entry)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	entry.ID = m.ID
	return nil
}

func (r *ActivityLogRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, limit int) ([]*entities.ActivityLog, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.ActivityLog
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.ActivityLog, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ActivityLogRepository) CountByTeamAndAction(ctx context.Context, teamID uuid.UUID, action entities.ActivityType) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.ActivityLog{}).
		Where("team_id = ? AND action = ?", teamID, string(action)).
		Count(&count).Error
	return count, err
}

func (r *ActivityLogRepository) toEntity(m *models.ActivityLog) *entities.ActivityLog {
	var userID null.String
	if m.UserID != nil {
		userID = null.StringFrom(m.UserID.String())
	}
	return &entities.ActivityLog{
		ID:        m.ID,
		TeamID:    m.TeamID,
		UserID:    userID,
		Action:    entities.ActivityType(m.Action),
		Timestamp: m.Timestamp,
		IPAddress: null.StringFromPtr(m.IPAddress),
	}
}

func (r *ActivityLogRepository) toModel(e *entities.ActivityLog) *models.ActivityLog {
	m := &models.ActivityLog{
		ID:        e.ID,
		TeamID:    e.TeamID,
		Action:    string(e.Action),
		Timestamp: e.Timestamp,
		IPAddress: e.IPAddress.Ptr(),
	}
	if e.UserID.Valid {
		if uid, err := uuid.Parse(e.UserID.String); err == nil {
			m.UserID = &uid
		}
	}
	return m
}
