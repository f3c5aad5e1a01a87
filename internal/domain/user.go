package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system. The two capability flags combine
// into the tier the capability policy consults.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	DateOfBirth  time.Time `json:"date_of_birth" db:"date_of_birth"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	IsPremium    bool      `json:"is_premium" db:"is_premium"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Principal derives the request principal for this user.
func (u *User) Principal() Principal {
	return Principal{
		ID:            u.ID,
		Name:          u.Name,
		Admin:         u.IsAdmin,
		Premium:       u.IsPremium,
		Authenticated: true,
	}
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserById(ctx context.Context, id uuid.UUID) (*User, error)
	// DeleteUser removes the user and, transitively, all ratings the user
	// owns. Tracks are never owned by users and are untouched.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
