package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/session"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (session.Session, error)
}

type authService struct {
	api backend.AuthAPI
}

func NewAuthService(api backend.AuthAPI) AuthService {
	return &authService{api: api}
}

func (s *authService) Login(ctx context.Context, email, password string) (session.Session, error) {
	creds := backend.Credentials{Email: strings.TrimSpace(email), Password: password}
	login, err := s.api.Login(ctx, creds).Unpack()
	if err != nil {
		return session.Session{}, fmt.Errorf("login: %w", err)
	}
	return session.New(login.Token, login.Role), nil
}
