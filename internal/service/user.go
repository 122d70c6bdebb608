package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/model"
	"storefront/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

type TokenIssuer interface {
	Issue(user *model.User) (string, error)
}

type UserService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	// Login returns the user and a signed token for it.
	Login(ctx context.Context, username, password string) (*model.User, string, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

func NewUserService(userRepo repository.UserRepository, tokens TokenIssuer) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userServiceImpl) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
