package core

import "time"

// Role controls which authorities an account is granted
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Position is a player's preferred lane
type Position string

const (
	PositionTop     Position = "TOP"
	PositionJungle  Position = "JUNGLE"
	PositionMid     Position = "MID"
	PositionBot     Position = "BOT"
	PositionSupport Position = "SUPPORT"
)

// PlayerType describes how seriously someone queues up
type PlayerType string

const (
	PlayerTypeCasual      PlayerType = "CASUAL"
	PlayerTypeCompetitive PlayerType = "COMPETITIVE"
)

// Account represents a registered player.
//
// Email is the identity key: it is unique, case-sensitive as stored, and
// doubles as the subject embedded in issued tokens. Email and PasswordHash
// are never empty once an account exists.
type Account struct {
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"` // Never expose in JSON
	DisplayName      string     `json:"displayName"`
	Role             Role       `json:"role"`
	LeagueName       string     `json:"leagueName,omitempty"`
	FavoritePosition Position   `json:"favoritePosition,omitempty"`
	FavoriteChampion string     `json:"favoriteChampion,omitempty"`
	Description      string     `json:"description,omitempty"`
	PlayerType       PlayerType `json:"playerType,omitempty"`
	WinRate          float32    `json:"winRate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// AuthRequest is the credential pair sent to /auth/register and /auth/login.
// The secret is transient input and is never persisted as plaintext.
type AuthRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

// AuthResponse carries the signed bearer token back to the client
type AuthResponse struct {
	Token string `json:"token"`
}

// ProfileUpdate holds the mutable profile fields. Zero values mean
// "leave unchanged"; credentials and role are not updatable through it.
type ProfileUpdate struct {
	DisplayName      string     `json:"displayName"`
	LeagueName       string     `json:"leagueName"`
	FavoritePosition Position   `json:"favoritePosition"`
	FavoriteChampion string     `json:"favoriteChampion"`
	Description      string     `json:"description"`
	PlayerType       PlayerType `json:"playerType"`
	WinRate          float32    `json:"winRate"`
}
