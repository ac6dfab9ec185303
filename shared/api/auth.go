package api

import "time"

// Request DTOs

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Role            string `json:"role,omitempty" validate:"omitempty,oneof=admin instructor student"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
}

// LoginRequest is the simplejwt TokenObtainPair payload. The user model logs
// in by username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// Response DTOs

// TokenPair is returned by /login/. /token/refresh/ fills Access only.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

type Badge struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Icon           string    `json:"icon"`
	PointsRequired int       `json:"points_required"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"created_at"`
}

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           string    `json:"role"`
	ProfilePicture *string   `json:"profile_picture"`
	Bio            string    `json:"bio"`
	Points         int       `json:"points"`
	DateOfBirth    *string   `json:"date_of_birth"` // YYYY-MM-DD
	PhoneNumber    string    `json:"phone_number"`
	DateJoined     time.Time `json:"date_joined"`
	EarnedBadges   []Badge   `json:"earned_badges"`
}

type UserBadge struct {
	ID       int64     `json:"id"`
	Badge    Badge     `json:"badge"`
	EarnedAt time.Time `json:"earned_at"`
}
