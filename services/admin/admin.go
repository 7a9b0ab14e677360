package admin

import (
	"carhive/config"
	"carhive/models"
	userSvc "carhive/services/user"
	"carhive/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminService authenticates the configured operator account. The fleet is
// operated by a single admin identity defined in configuration; there is no
// admin collection.
type AdminService interface {
	Authenticate(in models.AdminLogin) (*models.AuthResponse, error)
	SignOut(token string) error
	Profile() models.Admin
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct{}

// Authenticate checks the credentials against the configured admin account
// and issues an admin-role token with a one-day session.
func (s *DefaultAdminService) Authenticate(in models.AdminLogin) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if in.Email != config.AppConfig.AdminEmail {
		return nil, userSvc.NewInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(in.Password)); err != nil {
		return nil, userSvc.NewInvalidCredentialsError()
	}

	token, err := utils.GenerateToken(config.AppConfig.AdminID, in.Email, utils.RoleAdmin, utils.AdminSessionTTL)
	if err != nil {
		logger.Error("admin authenticate: failed to generate token", zap.Error(err))
		return nil, err
	}

	session := utils.AuthSession{
		SubjectID: config.AppConfig.AdminID,
		Email:     in.Email,
		Role:      utils.RoleAdmin,
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), utils.HashToken(token), session, utils.AdminSessionTTL); err != nil {
		logger.Error("admin authenticate: failed to save session", zap.Error(err))
		return nil, err
	}

	return &models.AuthResponse{Token: token}, nil
}

// SignOut revokes the admin session behind the token.
func (s *DefaultAdminService) SignOut(token string) error {
	return utils.DeleteAuthSession(utils.GetAuthCacheClient(), utils.HashToken(token))
}

// Profile returns the configured admin identity.
func (s *DefaultAdminService) Profile() models.Admin {
	return models.Admin{
		ID:    config.AppConfig.AdminID,
		Email: config.AppConfig.AdminEmail,
		Name:  "Admin User",
	}
}
