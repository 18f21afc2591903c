package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"mailcraft.backend/internal/domain/entities"
)

func TestUnitOfWork_CommitsInvitationWithAudit(t *testing.T) {
	db := newTestDB(t)
	createInvitationTable(t, db)
	createActivityLogTable(t, db)
	invitationRepo := NewInvitationRepository(db)
	activityRepo := NewActivityLogRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	teamID := uuid.New()
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := invitationRepo.Create(txCtx, newInvitation(teamID, "new@example.com", entities.InvitationStatusPending)); err != nil {
			return err
		}
		return activityRepo.Create(txCtx, &entities.ActivityLog{
			ID:        uuid.New(),
			TeamID:    teamID,
			Action:    entities.ActivityInviteTeamMember,
			Timestamp: time.Now(),
		})
	})
	require.NoError(t, err)

	items, err := invitationRepo.ListPendingByTeam(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	count, err := activityRepo.CountByTeamAndAction(ctx, teamID, entities.ActivityInviteTeamMember)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestUnitOfWork_RollsBackAllWritesOnError(t *testing.T) {
	db := newTestDB(t)
	createInvitationTable(t, db)
	createActivityLogTable(t, db)
	invitationRepo := NewInvitationRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	teamID := uuid.New()
	boom := errors.New("boom")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := invitationRepo.Create(txCtx, newInvitation(teamID, "new@example.com", entities.InvitationStatusPending)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The invitation written inside the failed transaction must be gone.
	items, err := invitationRepo.ListPendingByTeam(ctx, teamID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestGetDB_FallsBackWithoutTransaction(t *testing.T) {
	db := newTestDB(t)
	got := GetDB(context.Background(), db)
	require.Same(t, db, got)
}
