package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// LocationModel represents the database model for saved locations
type LocationModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"not null;uniqueIndex:name_user_uc"`
	Latitude  float64 `gorm:"not null;uniqueIndex:name_user_uc"`
	Longitude float64 `gorm:"not null;uniqueIndex:name_user_uc"`
	Country   string  `gorm:"not null"`
	State     string  `gorm:"not null;default:'-'"`
	UserID    uint    `gorm:"not null;index;uniqueIndex:name_user_uc"`
	CreatedAt time.Time
}

func (LocationModel) TableName() string {
	return "locations"
}

// LocationRepositoryAdapter implements the LocationRepository port using GORM
type LocationRepositoryAdapter struct {
	db *gorm.DB
}

// NewLocationRepositoryAdapter creates a new location repository adapter
func NewLocationRepositoryAdapter(db *gorm.DB) ports.LocationRepository {
	return &LocationRepositoryAdapter{db: db}
}

// Save inserts a location. The same (name, latitude, longitude, user) twice is a DuplicateLocationError.
func (r *LocationRepositoryAdapter) Save(ctx context.Context, location *ports.LocationData) error {
	if location == nil {
		return errors.NewValidationError("location cannot be nil")
	}
	if location.UserID == 0 {
		return errors.NewValidationError("location owner cannot be zero")
	}

	model := r.dataToModel(location)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return errors.NewDuplicateLocationError(err)
		}
		return errors.NewDatabaseError("failed to save location", err)
	}

	location.ID = model.ID
	location.CreatedAt = model.CreatedAt
	return nil
}

// GetAllByUser returns the user's locations in insertion order
func (r *LocationRepositoryAdapter) GetAllByUser(ctx context.Context, userID uint) ([]*ports.LocationData, error) {
	var models []LocationModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to get locations", result.Error)
	}

	locations := make([]*ports.LocationData, len(models))
	for i := range models {
		locations[i] = r.modelToData(&models[i])
	}

	return locations, nil
}

// FindByName returns the user's first location called name
func (r *LocationRepositoryAdapter) FindByName(ctx context.Context, userID uint, name string) (*ports.LocationData, error) {
	var model LocationModel
	result := r.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).Order("id").First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("location not found")
		}
		return nil, errors.NewDatabaseError("failed to find location", result.Error)
	}

	return r.modelToData(&model), nil
}

// Delete removes a location owned by userID
func (r *LocationRepositoryAdapter) Delete(ctx context.Context, id, userID uint) error {
	if id == 0 {
		return errors.NewValidationError("location ID cannot be zero for delete")
	}

	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&LocationModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete location", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("location not found")
	}

	return nil
}

func (r *LocationRepositoryAdapter) dataToModel(data *ports.LocationData) *LocationModel {
	return &LocationModel{
		ID:        data.ID,
		Name:      data.Name,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Country:   data.Country,
		State:     data.State,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}

func (r *LocationRepositoryAdapter) modelToData(model *LocationModel) *ports.LocationData {
	return &ports.LocationData{
		ID:        model.ID,
		Name:      model.Name,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Country:   model.Country,
		State:     model.State,
		UserID:    model.UserID,
		CreatedAt: model.CreatedAt,
	}
}
