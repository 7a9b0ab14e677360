package user

import (
	"fmt"

	"carhive/models"
	"carhive/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account. Emails are unique; passwords are stored as
// bcrypt hashes only. On success the user is signed in immediately.
func (s *DefaultUserService) Register(in models.UserRegistration) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		logger.Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, NewEmailTakenError()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hashedPassword),
	}
	if err := s.Repo.Create(&userObj); err != nil {
		logger.Error("Register: failed to persist user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	resp, err := s.issueSession(&userObj, false)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", zap.String("userID", userObj.ID))
	return resp, nil
}
