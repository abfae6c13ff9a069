package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// UserModel represents the database model for user accounts
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Login        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// UserRepositoryAdapter implements the UserRepository port using GORM
type UserRepositoryAdapter struct {
	db *gorm.DB
}

// NewUserRepositoryAdapter creates a new user repository adapter
func NewUserRepositoryAdapter(db *gorm.DB) ports.UserRepository {
	return &UserRepositoryAdapter{db: db}
}

// Save inserts a new user
func (r *UserRepositoryAdapter) Save(ctx context.Context, user *ports.UserData) error {
	if user == nil {
		return errors.NewValidationError("user cannot be nil")
	}

	model := &UserModel{
		Login:        user.Login,
		PasswordHash: user.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return errors.NewAlreadyExistsError("User with this login already exists")
		}
		return errors.NewDatabaseError("failed to save user", err)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	return nil
}

// FindByLogin retrieves a user by login
func (r *UserRepositoryAdapter) FindByLogin(ctx context.Context, login string) (*ports.UserData, error) {
	if login == "" {
		return nil, errors.NewValidationError("login cannot be empty")
	}

	var model UserModel
	result := r.db.WithContext(ctx).Where("login = ?", login).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewDatabaseError("failed to find user", result.Error)
	}

	return r.modelToData(&model), nil
}

// FindByID retrieves a user by its ID
func (r *UserRepositoryAdapter) FindByID(ctx context.Context, id uint) (*ports.UserData, error) {
	if id == 0 {
		return nil, errors.NewNotFoundError("user not found")
	}

	var model UserModel
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewDatabaseError("failed to find user by ID", result.Error)
	}

	return r.modelToData(&model), nil
}

func (r *UserRepositoryAdapter) modelToData(model *UserModel) *ports.UserData {
	return &ports.UserData{
		ID:           model.ID,
		Login:        model.Login,
		PasswordHash: model.PasswordHash,
		CreatedAt:    model.CreatedAt,
	}
}
