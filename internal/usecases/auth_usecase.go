package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/domain/repositories"
	"mailcraft.backend/pkg/crypto"
	"mailcraft.backend/pkg/jwt"
	"mailcraft.backend/pkg/utils"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	teamRepo     repositories.TeamRepository
	memberRepo   repositories.TeamMemberRepository
	activityRepo repositories.ActivityLogRepository
	uow          repositories.UnitOfWork
	jwtService   *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	teamRepo repositories.TeamRepository,
	memberRepo repositories.TeamMemberRepository,
	activityRepo repositories.ActivityLogRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		teamRepo:     teamRepo,
		memberRepo:   memberRepo,
		activityRepo: activityRepo,
		uow:          uow,
		jwtService:   jwtService,
	}
}

// Register creates a user together with their personal team and owning
// membership. User, team, membership and the SIGN_UP / CREATE_TEAM audit
// entries commit in one transaction.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.CreateUserInput, ipAddress string) (*entities.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleMember,
	}
	if strings.TrimSpace(input.Name) != "" {
		user.Name = null.StringFrom(strings.TrimSpace(input.Name))
	}

	team := &entities.Team{
		ID:   utils.GenerateUUIDv7(),
		Name: email + "'s Team",
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		if err := u.teamRepo.Create(txCtx, team); err != nil {
			return err
		}
		member := &entities.TeamMember{
			ID:          utils.GenerateUUIDv7(),
			UserID:      user.ID,
			TeamID:      team.ID,
			Role:        entities.UserRoleOwner,
			DisplayRank: 1,
			JoinedAt:    time.Now(),
		}
		if err := u.memberRepo.Create(txCtx, member); err != nil {
			return err
		}
		for _, action := range []entities.ActivityType{entities.ActivitySignUp, entities.ActivityCreateTeam} {
			if err := u.activityRepo.Create(txCtx, newActivityEntry(team.ID, user.ID, action, ipAddress)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput, ipAddress string) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	// Sign-in is audited best-effort; a missing team must not block login.
	if team, err := u.teamRepo.GetForUser(ctx, user.ID); err == nil {
		_ = u.activityRepo.Create(ctx, newActivityEntry(team.ID, user.ID, entities.ActivitySignIn, ipAddress))
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// SignOut records the sign-out in the audit trail.
func (u *AuthUsecase) SignOut(ctx context.Context, userID uuid.UUID, ipAddress string) error {
	team, err := u.teamRepo.GetForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}
	return u.activityRepo.Create(ctx, newActivityEntry(team.ID, userID, entities.ActivitySignOut, ipAddress))
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func newActivityEntry(teamID, userID uuid.UUID, action entities.ActivityType, ipAddress string) *entities.ActivityLog {
	entry := &entities.ActivityLog{
		ID:        utils.GenerateUUIDv7(),
		TeamID:    teamID,
		UserID:    null.StringFrom(userID.String()),
		Action:    action,
		Timestamp: time.Now(),
	}
	if ipAddress != "" {
		entry.IPAddress = null.StringFrom(ipAddress)
	}
	return entry
}
