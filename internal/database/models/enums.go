package models

// UserRole defines what an account may do in the league
type UserRole string

const (
	UserRoleCoach  UserRole = "coach"
	UserRolePlayer UserRole = "player"
)

// UserStatus is the lifecycle state of an account
type UserStatus string

const (
	UserStatusActive UserStatus = "active"
)

// JoinRequestStatus is the state of a team join or transfer request
type JoinRequestStatus string

const (
	JoinRequestStatusPending            JoinRequestStatus = "pending"
	JoinRequestStatusPendingCoordinator JoinRequestStatus = "pending_coordinator"
	JoinRequestStatusAccepted           JoinRequestStatus = "accepted"
	JoinRequestStatusRejected           JoinRequestStatus = "rejected"
)

// GameStatus is the state of a scheduled game
type GameStatus string

const (
	GameStatusScheduled  GameStatus = "scheduled"
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusFinished   GameStatus = "finished"
	GameStatusCancelled  GameStatus = "cancelled"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCoach, UserRolePlayer:
		return true
	}
	return false
}

// OpenJoinRequestStatuses are the states a request can still be reviewed from
var OpenJoinRequestStatuses = []JoinRequestStatus{
	JoinRequestStatusPending,
	JoinRequestStatusPendingCoordinator,
}

// IsOpen reports whether the request still awaits a decision
func (s JoinRequestStatus) IsOpen() bool {
	return s == JoinRequestStatusPending || s == JoinRequestStatusPendingCoordinator
}

// IsDecision reports whether s is a valid review outcome
func (s JoinRequestStatus) IsDecision() bool {
	return s == JoinRequestStatusAccepted || s == JoinRequestStatusRejected
}

// IsValid checks if the JoinRequestStatus is valid
func (s JoinRequestStatus) IsValid() bool {
	return s.IsOpen() || s.IsDecision()
}

// IsValid checks if the GameStatus is valid
func (s GameStatus) IsValid() bool {
	switch s {
	case GameStatusScheduled, GameStatusInProgress, GameStatusFinished, GameStatusCancelled:
		return true
	}
	return false
}
