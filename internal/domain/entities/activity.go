package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ActivityType enumerates the audited team actions
type ActivityType string

const (
	ActivitySignUp           ActivityType = "SIGN_UP"
	ActivitySignIn           ActivityType = "SIGN_IN"
	ActivitySignOut          ActivityType = "SIGN_OUT"
	ActivityUpdatePassword   ActivityType = "UPDATE_PASSWORD"
	ActivityDeleteAccount    ActivityType = "DELETE_ACCOUNT"
	ActivityUpdateAccount    ActivityType = "UPDATE_ACCOUNT"
	ActivityCreateTeam       ActivityType = "CREATE_TEAM"
	ActivityRemoveTeamMember ActivityType = "REMOVE_TEAM_MEMBER"
	ActivityInviteTeamMember ActivityType = "INVITE_TEAM_MEMBER"
	ActivityAcceptInvitation ActivityType = "ACCEPT_INVITATION"
)

// ActivityLog is an append-only audit record of a team-affecting action.
// Rows are written once and never mutated or deleted.
type ActivityLog struct {
	ID        uuid.UUID    `json:"id"`
	TeamID    uuid.UUID    `json:"teamId"`
	UserID    null.String  `json:"userId,omitempty"`
	Action    ActivityType `json:"action"`
	Timestamp time.Time    `json:"timestamp"`
	IPAddress null.String  `json:"ipAddress,omitempty"`
}
