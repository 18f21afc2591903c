package repositories

import (
	"context"

	"github.com/google/uuid"
	"mailcraft.backend/internal/domain/entities"
)

// ActivityLogRepository defines audit trail operations. The log is
// append-only: there is deliberately no update or delete.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *entities.ActivityLog) error
	ListByTeam(ctx context.Context, teamID uuid.UUID, limit int) ([]*entities.ActivityLog, error)
	CountByTeamAndAction(ctx context.Context, teamID uuid.UUID, action entities.ActivityType) (int64, error)
}
