package userRepo

import "carhive/models"

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {
	GetAll() ([]models.User, error)
	// GetByID returns a user, or an error when the id is unknown.
	GetByID(id string) (*models.User, error)
	// GetByEmail returns a user, or nil when no account uses the email.
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
}
