package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
)

type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error)
	DeleteUser(ctx context.Context, p domain.Principal, id uuid.UUID) error
}

type userService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetUserById(ctx, id)
}

// DeleteUser removes an account and its ratings. Administrative only; the
// cascade never reaches tracks since users do not own them.
func (s *userService) DeleteUser(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	if !p.Authenticated {
		return domain.ErrUnauthenticated
	}
	if !p.Admin {
		return domain.ErrForbidden
	}
	return s.repo.DeleteUser(ctx, id)
}
