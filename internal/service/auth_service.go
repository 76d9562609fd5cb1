package service

import (
	"context"
	"errors"

	"partsdesk/internal/config"
	"partsdesk/internal/dto"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown user and wrong password
// so responses never reveal which part of the credential failed.
var ErrInvalidCredentials = errors.New("Invalid credentials")

// AuthService verifies the single operator credential. The credential is
// injected via configuration — there is no user table and no session state;
// a success response is the only thing the client gets.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.UserID != s.cfg.AdminUser {
		// Still burn a bcrypt comparison so the unknown-user path takes the
		// same time as a wrong password.
		_ = bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &dto.LoginResponse{Success: true, UserID: req.UserID}, nil
}
