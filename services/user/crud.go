package user

import (
	"carhive/models"
	"carhive/utils"

	"go.uber.org/zap"
)

// GetUserByID returns the account for an id.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// GetAllUsers lists every account; used by the admin dashboard.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// UpdateProfile changes the mutable profile fields. Blank fields keep their
// current value; email cannot be changed after registration.
func (s *DefaultUserService) UpdateProfile(id string, in models.UserUpdate) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		usr.Name = in.Name
	}
	if in.Phone != "" {
		usr.Phone = in.Phone
	}
	if err := s.Repo.Update(usr); err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to persist user", zap.String("userID", id), zap.Error(err))
		return nil, err
	}
	return usr, nil
}
