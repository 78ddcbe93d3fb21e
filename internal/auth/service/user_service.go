package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/dto"
	autherror "github.com/AnthoniusHendriyanto/auth-gate/internal/errors"
	authconstant "github.com/AnthoniusHendriyanto/auth-gate/pkg/constant"
	"github.com/google/uuid"
)

type UserService struct {
	repo         domain.UserRepository
	hasher       PasswordHasher
	tokenService TokenGenerator
}

func NewUserService(repo domain.UserRepository, hasher PasswordHasher, tokenService TokenGenerator) *UserService {
	return &UserService{
		repo:         repo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// Register validates input, hashes the password and stores a new user.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if violations := ValidateRegisterInput(input); len(violations) > 0 {
		return nil, autherror.Validation(violations)
	}

	email := NormalizeEmail(input.Email)

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, autherror.Internal(fmt.Errorf("hash password: %w", err))
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, autherror.Internal(fmt.Errorf("check existing user: %w", err))
	}
	if exists {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// A concurrent signup can pass the existence check too; the store's
		// unique constraint decides.
		if errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			return nil, autherror.ErrEmailAlreadyInUse
		}
		return nil, autherror.Internal(fmt.Errorf("create user: %w", err))
	}

	return user, nil
}

// Login checks the credentials and issues an access token.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	email := NormalizeEmail(input.Email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, autherror.Internal(fmt.Errorf("get user by email: %w", err))
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if input.Password == "" {
		return nil, autherror.ErrPasswordRequired
	}

	ok, err := s.hasher.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return nil, autherror.Internal(fmt.Errorf("compare password: %w", err))
	}
	if !ok {
		return nil, autherror.ErrInvalidCredentials
	}

	token, _, err := s.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		return nil, autherror.Internal(fmt.Errorf("generate token: %w", err))
	}

	return &dto.LoginOutput{
		Email:     user.Email,
		Token:     token,
		TokenType: authconstant.DefaultTokenType,
		ExpiresIn: int(s.tokenService.GetAccessTokenExpiry().Seconds()),
	}, nil
}
