package user

import (
	"fmt"

	"carhive/models"
	"carhive/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignIn verifies the credentials and issues a token plus a Redis session.
// A "remember me" sign-in keeps the session for 30 days instead of one.
func (s *DefaultUserService) SignIn(in models.UserLogin) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	usr, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		logger.Error("SignIn: failed to look up user", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	if usr == nil {
		return nil, NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return nil, NewInvalidCredentialsError()
	}

	return s.issueSession(usr, in.RememberMe)
}

// issueSession mints a JWT for the user and stores the matching session
// record keyed by the token's hash.
func (s *DefaultUserService) issueSession(usr *models.User, rememberMe bool) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	ttl := utils.SessionTTL
	if rememberMe {
		ttl = utils.RememberMeTTL
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, utils.RoleUser, ttl)
	if err != nil {
		logger.Error("issueSession: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}

	session := utils.AuthSession{
		SubjectID:  usr.ID,
		Email:      usr.Email,
		Role:       utils.RoleUser,
		RememberMe: rememberMe,
	}
	if err := s.Sessions.Save(utils.HashToken(token), session, ttl); err != nil {
		logger.Error("issueSession: failed to save session", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}

	return &models.AuthResponse{Token: token, User: usr}, nil
}

// SignOut deletes the session behind the token. Tokens without a session are
// already signed out, which is fine.
func (s *DefaultUserService) SignOut(token string) error {
	return s.Sessions.Delete(utils.HashToken(token))
}
