package ports

import (
	"context"
	"time"
)

// UserData represents a user account for persistence
type UserData struct {
	ID           uint
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines the contract for user persistence
type UserRepository interface {
	Save(ctx context.Context, user *UserData) error
	FindByLogin(ctx context.Context, login string) (*UserData, error)
	FindByID(ctx context.Context, id uint) (*UserData, error)
}
