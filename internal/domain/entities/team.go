package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProtectedMemberRanks is the number of leading members in a team's
// roster that never expose a removal action. The rank is persisted on
// the membership row rather than inferred from list position.
const ProtectedMemberRanks = 2

// Team represents a billing/organizational unit
type Team struct {
	ID                   uuid.UUID   `json:"id"`
	Name                 string      `json:"name"`
	StripeCustomerID     null.String `json:"stripeCustomerId,omitempty"`
	StripeSubscriptionID null.String `json:"stripeSubscriptionId,omitempty"`
	StripeProductID      null.String `json:"stripeProductId,omitempty"`
	PlanName             null.String `json:"planName,omitempty"`
	SubscriptionStatus   null.String `json:"subscriptionStatus,omitempty"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

// TeamMember links a user to a team with a role
type TeamMember struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	TeamID      uuid.UUID `json:"teamId"`
	Role        UserRole  `json:"role"`
	DisplayRank int       `json:"displayRank"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// Protected reports whether this membership sits in the protected
// leading ranks of the roster.
func (m *TeamMember) Protected() bool {
	return m.DisplayRank <= ProtectedMemberRanks
}

// TeamMemberView is a membership joined with its user projection, plus
// the removability flag the settings page renders from.
type TeamMemberView struct {
	ID          uuid.UUID   `json:"id"`
	Role        UserRole    `json:"role"`
	DisplayRank int         `json:"displayRank"`
	JoinedAt    time.Time   `json:"joinedAt"`
	Removable   bool        `json:"removable"`
	User        UserSummary `json:"user"`
}

// TeamWithMembers is the team record joined with its ordered roster
type TeamWithMembers struct {
	Team    `json:"team"`
	Members []TeamMemberView `json:"members"`
}

// InvitationStatus represents the lifecycle state of an invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// Invitation is a pending offer for a user to join a team
type Invitation struct {
	ID        uuid.UUID        `json:"id"`
	TeamID    uuid.UUID        `json:"teamId"`
	Email     string           `json:"email"`
	Role      UserRole         `json:"role"`
	InvitedBy uuid.UUID        `json:"invitedBy"`
	InvitedAt time.Time        `json:"invitedAt"`
	Status    InvitationStatus `json:"status"`
}

// InviteMemberInput carries the invite form submission
type InviteMemberInput struct {
	Email string `form:"email" json:"email" binding:"required,email"`
	Role  string `form:"role" json:"role" binding:"required,oneof=member owner"`
}

// RemoveMemberInput carries the remove form submission
type RemoveMemberInput struct {
	MemberID string `form:"memberId" json:"memberId" binding:"required"`
}
