package user

import (
	"context"
	"fmt"

	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

type UseCase struct {
	repository ports.UserRepository
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
	logger     ports.Logger
}

type UseCaseDependencies struct {
	Repository ports.UserRepository
	Hasher     ports.PasswordHasher
	Tokens     ports.TokenService
	Logger     ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("user repository is required")
	}
	if deps.Hasher == nil {
		return nil, errors.NewValidationError("password hasher is required")
	}
	if deps.Tokens == nil {
		return nil, errors.NewValidationError("token service is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		repository: deps.Repository,
		hasher:     deps.Hasher,
		tokens:     deps.Tokens,
		logger:     deps.Logger,
	}, nil
}

func (uc *UseCase) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.repository.FindByLogin(ctx, params.Login)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("check login availability: %w", err)
	}
	if existing != nil {
		return nil, errors.NewAlreadyExistsError("User with this login already exists")
	}

	hash, err := uc.hasher.Hash(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	record := &ports.UserData{
		Login:        params.Login,
		PasswordHash: hash,
	}
	if err := uc.repository.Save(ctx, record); err != nil {
		return nil, err
	}

	uc.logger.Info("User registered", ports.F("user", record.Login))
	return &User{ID: record.ID, Login: record.Login}, nil
}

// Login checks credentials and issues a session token
func (uc *UseCase) Login(ctx context.Context, params LoginParams) (string, error) {
	record, err := uc.repository.FindByLogin(ctx, params.Login)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return "", errors.NewInvalidCredentialsError()
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := uc.hasher.Compare(record.PasswordHash, params.Password); err != nil {
		uc.logger.Debug("Password mismatch", ports.F("user", params.Login))
		return "", errors.NewInvalidCredentialsError()
	}

	token, err := uc.tokens.Issue(record.ID, record.Login)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	uc.logger.Info("User logged in", ports.F("user", record.Login))
	return token, nil
}

// CurrentUser resolves a session token to its user
func (uc *UseCase) CurrentUser(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, errors.NewAuthRequiredError("authentication required")
	}

	claims, err := uc.tokens.Verify(token)
	if err != nil {
		if errors.IsAuthError(err) {
			return nil, err
		}
		return nil, errors.NewInvalidTokenError("could not validate credentials", err)
	}

	record, err := uc.repository.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewAuthRequiredError("user not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &User{ID: record.ID, Login: record.Login}, nil
}
