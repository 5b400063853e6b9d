package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/entity"
)

type UsersService struct {
	repo repository.UsersRepositoryI
}

func NewUsersService(usersRepo repository.UsersRepositoryI) *UsersService {
	return &UsersService{
		repo: usersRepo,
	}
}

func (us *UsersService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

// EnsureUser returns the stored user, creating it from the token identity on first sight.
func (us *UsersService) EnsureUser(ctx context.Context, id uuid.UUID, name string) (*entity.User, error) {
	user, err := us.GetByID(ctx, id)
	if err == nil || !errors.Is(err, errorvalues.ErrUserNotFound) {
		return user, err
	}
	user = &entity.User{ID: id, Name: strings.TrimSpace(name)}
	if user.Name == "" {
		user.Name = id.String()
	}
	if err = us.repo.Ensure(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return user, nil
}

func (us *UsersService) UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error {
	err := us.repo.UpdatePushToken(ctx, id, strings.TrimSpace(token))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}
