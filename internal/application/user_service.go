package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-contact-management/internal/domain/entity"
	repo "github.com/oksasatya/go-contact-management/internal/domain/repository"
	"github.com/oksasatya/go-contact-management/pkg/helpers"
	"github.com/oksasatya/go-contact-management/pkg/validation"
)

type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (*UserResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	n, err := s.Repo.CountByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: req.Username, Password: hash, Name: req.Name}
	if err := s.Repo.Create(ctx, u); err != nil {
		// a concurrent registration can win between the count and the insert
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", u.Username).Error("create user failed")
		}
		return nil, err
	}

	resp := ToUserResponse(u)
	return &resp, nil
}

// Login checks the password and rotates the user's API token.
func (s *UserService) Login(ctx context.Context, req LoginUserRequest) (*UserResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	u, err := s.Repo.GetByUsername(ctx, req.Username)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	u.Token = &token
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}

	resp := ToUserResponse(u)
	resp.Token = token
	return &resp, nil
}

// Authenticate resolves the principal behind an API token.
func (s *UserService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	u, err := s.Repo.GetByToken(ctx, token)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(_ context.Context, user *entity.User) (*UserResponse, error) {
	resp := ToUserResponse(user)
	return &resp, nil
}

// Update changes only the fields present in req.
func (s *UserService) Update(ctx context.Context, user *entity.User, req UpdateUserRequest) (*UserResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := helpers.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if err := s.Repo.Update(ctx, user); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Logout clears the token so it no longer authenticates.
func (s *UserService) Logout(ctx context.Context, user *entity.User) error {
	user.Token = nil
	if err := s.Repo.Update(ctx, user); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUnauthenticated
		}
		return err
	}
	return nil
}
