package user

import (
	"time"

	userRepo "carhive/database/repository/user"
	"carhive/models"
	"carhive/utils"
)

// UserService manages customer accounts and their sign-in sessions.
type UserService interface {
	Register(in models.UserRegistration) (*models.AuthResponse, error)
	SignIn(in models.UserLogin) (*models.AuthResponse, error)
	// SignOut revokes the session behind the given token. Unknown tokens are
	// a no-op.
	SignOut(token string) error
	GetUserByID(id string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	// UpdateProfile changes name and phone. Email is fixed at registration.
	UpdateProfile(id string, in models.UserUpdate) (*models.User, error)
}

// SessionStore persists issued auth sessions keyed by token hash.
type SessionStore interface {
	Save(tokenHash string, session utils.AuthSession, ttl time.Duration) error
	Delete(tokenHash string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions SessionStore
}
