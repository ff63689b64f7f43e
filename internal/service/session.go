package service

import (
	"context"
	"fmt"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/repository"
)

// Fixed demo credential pairs. Login is a cosmetic role selector for the
// screens, not an authentication boundary.
var credentials = map[model.Role]struct {
	username string
	password string
}{
	model.RoleAdmin: {username: "admin", password: "admin123"},
	model.RoleKasir: {username: "kasir", password: "kasir123"},
}

type SessionService interface {
	Login(ctx context.Context, username, password string, role model.Role) (model.Session, error)
	Current(ctx context.Context) (model.Session, error)
	Logout(ctx context.Context) error
}

type sessionService struct {
	sessionRepo repository.SessionRepository
}

func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

func (s *sessionService) Login(ctx context.Context, username, password string, role model.Role) (model.Session, error) {
	if username == "" || password == "" {
		return model.Session{}, apperr.ValidationErr.WithMsg("username and password are required")
	}
	if err := role.Validate(); err != nil {
		return model.Session{}, apperr.ValidationErr.WithMsg(err.Error())
	}

	expected := credentials[role]
	if username != expected.username || password != expected.password {
		return model.Session{}, apperr.InvalidCredentialsErr
	}

	session := model.Session{
		IsLoggedIn: true,
		Role:       role,
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return model.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

func (s *sessionService) Current(ctx context.Context) (model.Session, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return model.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !session.IsLoggedIn {
		return model.Session{}, apperr.SessionNotFoundErr
	}
	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
