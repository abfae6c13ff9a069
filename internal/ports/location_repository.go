package ports

import (
	"context"
	"time"
)

// LocationData represents a saved location for persistence
type LocationData struct {
	ID        uint
	Name      string
	Latitude  float64
	Longitude float64
	Country   string
	State     string
	UserID    uint
	CreatedAt time.Time
}

// LocationRepository defines the contract for saved location persistence
type LocationRepository interface {
	Save(ctx context.Context, location *LocationData) error
	GetAllByUser(ctx context.Context, userID uint) ([]*LocationData, error)
	FindByName(ctx context.Context, userID uint, name string) (*LocationData, error)
	Delete(ctx context.Context, id, userID uint) error
}
