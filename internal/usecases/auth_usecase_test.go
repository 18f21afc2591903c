package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/usecases"
	"mailcraft.backend/pkg/crypto"
	"mailcraft.backend/pkg/jwt"
)

type authUsecaseMocks struct {
	userRepo     *MockUserRepository
	teamRepo     *MockTeamRepository
	memberRepo   *MockTeamMemberRepository
	activityRepo *MockActivityLogRepository
	uow          *MockUnitOfWork
}

func newAuthUsecaseForTest() (*usecases.AuthUsecase, *authUsecaseMocks) {
	m := &authUsecaseMocks{
		userRepo:     new(MockUserRepository),
		teamRepo:     new(MockTeamRepository),
		memberRepo:   new(MockTeamMemberRepository),
		activityRepo: new(MockActivityLogRepository),
		uow:          new(MockUnitOfWork),
	}
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	uc := usecases.NewAuthUsecase(m.userRepo, m.teamRepo, m.memberRepo, m.activityRepo, m.uow, jwtSvc)
	return uc, m
}

func TestAuthUsecase_Register_EmailAlreadyExists(t *testing.T) {
	uc, m := newAuthUsecaseForTest()

	m.userRepo.On("GetByEmail", mock.Anything, "exists@mail.com").Return(&entities.User{ID: uuid.New()}, nil).Once()

	_, err := uc.Register(context.Background(), &entities.CreateUserInput{
		Email:    "exists@mail.com",
		Password: "Password123!",
	}, "")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	uc, m := newAuthUsecaseForTest()

	var auditActions []entities.ActivityType

	m.userRepo.On("GetByEmail", mock.Anything, "new@mail.com").Return(nil, domainerrors.ErrNotFound).Once()
	m.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	m.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).Return(nil).Once()
	m.teamRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Team")).Return(nil).Run(func(args mock.Arguments) {
		team := args.Get(1).(*entities.Team)
		assert.Equal(t, "new@mail.com's Team", team.Name)
	}).Once()
	m.memberRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.TeamMember")).Return(nil).Run(func(args mock.Arguments) {
		member := args.Get(1).(*entities.TeamMember)
		assert.Equal(t, entities.UserRoleOwner, member.Role)
		assert.Equal(t, 1, member.DisplayRank)
	}).Once()
	m.activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.ActivityLog")).Return(nil).Run(func(args mock.Arguments) {
		auditActions = append(auditActions, args.Get(1).(*entities.ActivityLog).Action)
	}).Twice()

	resp, err := uc.Register(context.Background(), &entities.CreateUserInput{
		Email:    "New@Mail.com",
		Name:     "New User",
		Password: "Password123!",
	}, "198.51.100.7")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "new@mail.com", resp.User.Email)
	assert.Equal(t, []entities.ActivityType{entities.ActivitySignUp, entities.ActivityCreateTeam}, auditActions)
}

func TestAuthUsecase_Login_InvalidCredentials(t *testing.T) {
	uc, m := newAuthUsecaseForTest()

	m.userRepo.On("GetByEmail", mock.Anything, "missing@mail.com").Return(nil, domainerrors.ErrNotFound).Once()
	_, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "missing@mail.com",
		Password: "whatever",
	}, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	hashed, _ := crypto.HashPassword("correct-password")
	m.userRepo.On("GetByEmail", mock.Anything, "user@mail.com").Return(&entities.User{
		ID:           uuid.New(),
		Email:        "user@mail.com",
		PasswordHash: hashed,
		Role:         entities.UserRoleMember,
	}, nil).Once()
	_, err = uc.Login(context.Background(), &entities.LoginInput{
		Email:    "user@mail.com",
		Password: "wrong-password",
	}, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_SuccessRecordsSignIn(t *testing.T) {
	uc, m := newAuthUsecaseForTest()

	hashed, _ := crypto.HashPassword("correct-password")
	userID := uuid.New()
	team := &entities.Team{ID: uuid.New()}

	m.userRepo.On("GetByEmail", mock.Anything, "user@mail.com").Return(&entities.User{
		ID:           userID,
		Email:        "user@mail.com",
		PasswordHash: hashed,
		Role:         entities.UserRoleMember,
	}, nil).Once()
	m.teamRepo.On("GetForUser", mock.Anything, userID).Return(team, nil).Once()
	m.activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.ActivityLog")).Return(nil).Run(func(args mock.Arguments) {
		entry := args.Get(1).(*entities.ActivityLog)
		assert.Equal(t, entities.ActivitySignIn, entry.Action)
		assert.Equal(t, "198.51.100.7", entry.IPAddress.String)
	}).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "user@mail.com",
		Password: "correct-password",
	}, "198.51.100.7")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestAuthUsecase_Login_AuditFailureDoesNotBlock(t *testing.T) {
	uc, m := newAuthUsecaseForTest()

	hashed, _ := crypto.HashPassword("correct-password")
	userID := uuid.New()

	m.userRepo.On("GetByEmail", mock.Anything, "user@mail.com").Return(&entities.User{
		ID:           userID,
		Email:        "user@mail.com",
		PasswordHash: hashed,
		Role:         entities.UserRoleMember,
	}, nil).Once()
	// No team yet; login still succeeds.
	m.teamRepo.On("GetForUser", mock.Anything, userID).Return(nil, domainerrors.ErrNotFound).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "user@mail.com",
		Password: "correct-password",
	}, "")
	assert.NoError(t, err)
	assert.NotNil(t, resp.User)
	m.activityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_RefreshToken_RoundTrip(t *testing.T) {
	uc, m := newAuthUsecaseForTest()

	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()
	pair, err := jwtSvc.GenerateTokenPair(userID, "user@mail.com", "member")
	assert.NoError(t, err)

	m.userRepo.On("GetByID", mock.Anything, userID).Return(&entities.User{
		ID:    userID,
		Email: "user@mail.com",
		Role:  entities.UserRoleMember,
	}, nil).Once()

	newPair, err := uc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, newPair.AccessToken)
}

func TestAuthUsecase_RefreshToken_Invalid(t *testing.T) {
	uc, _ := newAuthUsecaseForTest()

	_, err := uc.RefreshToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestAuthUsecase_SignOut_RecordsActivity(t *testing.T) {
	uc, m := newAuthUsecaseForTest()
	userID := uuid.New()
	team := &entities.Team{ID: uuid.New()}

	m.teamRepo.On("GetForUser", mock.Anything, userID).Return(team, nil).Once()
	m.activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.ActivityLog")).Return(nil).Run(func(args mock.Arguments) {
		assert.Equal(t, entities.ActivitySignOut, args.Get(1).(*entities.ActivityLog).Action)
	}).Once()

	assert.NoError(t, uc.SignOut(context.Background(), userID, ""))
	m.activityRepo.AssertExpectations(t)
}
