package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fletero/backoffice/internal/domain"
)

// UserUseCase manages accounts and credential checks. Token issuance
// lives in the HTTP layer; this type only deals in users.
type UserUseCase struct {
	userRepo UserRepository
	idGen    IDGenerator
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, idGen IDGenerator) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		idGen:    idGen,
	}
}

// RegisterInput represents input for creating an account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	RoleID    int
	Localidad string
	Sucursal  string
}

func (in RegisterInput) validate() error {
	if in.Username == "" {
		return fmt.Errorf("%w: username", domain.ErrInvalidInput)
	}
	if err := domain.ValidateEmail(in.Email); err != nil {
		return err
	}
	if err := domain.ValidatePassword(in.Password); err != nil {
		return err
	}
	if in.Localidad == "" {
		return fmt.Errorf("%w: localidad", domain.ErrInvalidInput)
	}
	if in.RoleID != domain.RoleUser && in.RoleID != domain.RoleAdmin {
		return fmt.Errorf("%w: role_id", domain.ErrInvalidInput)
	}
	return nil
}

// Register creates an account with a bcrypt-hashed password.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Username:       input.Username,
		Email:          strings.ToLower(input.Email),
		HashedPassword: string(hashed),
		RoleID:         input.RoleID,
		Localidad:      input.Localidad,
		Sucursal:       input.Sucursal,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Authenticate verifies credentials and returns the matching user. A
// missing account and a wrong password both surface as ErrUnauthorized.
func (uc *UserUseCase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// GetProfile retrieves the account behind a principal.
func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}
