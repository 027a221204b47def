package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guilhermemendeslima/clickcell-system/internal/config"
	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/repository"
	"github.com/guilhermemendeslima/clickcell-system/internal/session"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(tokenID string)
	// ConfirmPassword re-checks the shared demo constant. Used by the
	// employee screen before deleting an administrator.
	ConfirmPassword(password string) bool
}

type authService struct {
	repo     repository.EmployeeRepository
	sessions *session.Registry
	cfg      *config.Config
	// demoHash is the bcrypt hash of the single shared demo password,
	// computed once at startup. Every roster account authenticates against
	// this same constant — a demo stand-in, not a per-user credential.
	demoHash []byte
}

func NewAuthService(repo repository.EmployeeRepository, sessions *session.Registry, cfg *config.Config) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &authService{repo: repo, sessions: sessions, cfg: cfg, demoHash: hash}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	// Artificial pause before resolving, like the original login screen.
	// No cancellation, no timeout.
	if s.cfg.LoginDelayMS > 0 {
		time.Sleep(time.Duration(s.cfg.LoginDelayMS) * time.Millisecond)
	}

	emp, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.demoHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenID := uuid.NewString()
	now := time.Now()
	exp := now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)

	// The token payload is a plain copy of the identity — the Go-side analog
	// of the original storing the whole user object under one storage key.
	claims := jwt.MapClaims{
		"jti":     tokenID,
		"user_id": emp.ID,
		"name":    emp.Name,
		"email":   emp.Email,
		"role":    emp.Role,
		"avatar":  emp.Avatar,
		"exp":     exp.Unix(),
		"iat":     now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	s.sessions.Add(tokenID, emp.ID)

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.cfg.JWTExpirationHours * 3600,
		User: dto.UserResponse{
			ID:     emp.ID,
			Name:   emp.Name,
			Email:  emp.Email,
			Role:   emp.Role,
			Avatar: emp.Avatar,
		},
	}, nil
}

func (s *authService) Logout(tokenID string) {
	s.sessions.Revoke(tokenID)
}

func (s *authService) ConfirmPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(s.demoHash, []byte(password)) == nil
}
