package location

import (
	"context"
	"fmt"
	"strings"

	"weathertracker.app/internal/core/user"
	"weathertracker.app/internal/core/weather"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// SessionResolver turns a session token into the signed-in user
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (*user.User, error)
}

type UseCase struct {
	repository  ports.LocationRepository
	geocoder    ports.GeocodingProvider
	searchCache ports.SearchCache
	fetcher     WeatherFetcher
	sessions    SessionResolver
	config      ports.ConfigProvider
	logger      ports.Logger
}

type UseCaseDependencies struct {
	Repository  ports.LocationRepository
	Geocoder    ports.GeocodingProvider
	SearchCache ports.SearchCache
	Fetcher     WeatherFetcher
	Sessions    SessionResolver
	Config      ports.ConfigProvider
	Logger      ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("location repository is required")
	}
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoding provider is required")
	}
	if deps.SearchCache == nil {
		return nil, errors.NewValidationError("search cache is required")
	}
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Sessions == nil {
		return nil, errors.NewValidationError("session resolver is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		repository:  deps.Repository,
		geocoder:    deps.Geocoder,
		searchCache: deps.SearchCache,
		fetcher:     deps.Fetcher,
		sessions:    deps.Sessions,
		config:      deps.Config,
		logger:      deps.Logger,
	}, nil
}

// GetResultLocations builds the dashboard page for the token's owner.
// Anonymous or stale sessions get an empty page rather than an error.
func (uc *UseCase) GetResultLocations(ctx context.Context, params ResultParams) (*Page, error) {
	currentPage := params.Page
	if params.CurrentPage != nil && *params.CurrentPage >= 1 {
		currentPage = *params.CurrentPage
	}
	empty := &Page{Items: []WeatherReading{}, CurrentPage: currentPage}

	if params.Token == "" {
		return empty, nil
	}

	owner, err := uc.sessions.CurrentUser(ctx, params.Token)
	if err != nil {
		if errors.IsAuthError(err) {
			uc.logger.Debug("Session rejected, rendering empty dashboard", ports.F("error", err))
			return empty, nil
		}
		return nil, fmt.Errorf("resolve current user: %w", err)
	}

	saved, err := uc.savedLocations(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	aggregator := NewAggregator(uc.fetcher, uc.config.GetWeatherConfig().FetchConcurrency)
	readings, err := aggregator.Aggregate(ctx, saved)
	if err != nil {
		uc.logger.Error("Failed to aggregate weather",
			ports.F("user", owner.Login),
			ports.F("locations", len(saved)),
			ports.F("error", err))
		return nil, fmt.Errorf("aggregate weather for %s: %w", owner.Login, err)
	}

	items, totalPages := Paginate(readings, params.Page, uc.config.GetPaginationConfig().PageSize)

	return &Page{
		Items:       items,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
	}, nil
}

func (uc *UseCase) savedLocations(ctx context.Context, ownerID uint) ([]SavedLocation, error) {
	records, err := uc.repository.GetAllByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load saved locations: %w", err)
	}

	saved := make([]SavedLocation, 0, len(records))
	for _, r := range records {
		saved = append(saved, SavedLocation{
			ID:      r.ID,
			OwnerID: r.UserID,
			Query: Query{
				Name:      r.Name,
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
				Country:   r.Country,
				State:     r.State,
			},
		})
	}
	return saved, nil
}

// GetLocationDB maps the add-location form onto a persistence-ready record
func (uc *UseCase) GetLocationDB(form Form, owner user.User) SavedLocation {
	return SavedLocation{
		OwnerID: owner.ID,
		Query: Query{
			Name:      form.Name,
			Latitude:  form.Lat,
			Longitude: form.Lon,
			Country:   form.Country,
			State:     normalizeState(form.State),
		},
	}
}

// AddLocation saves a location for owner. A duplicate is reported as DuplicateLocationError.
func (uc *UseCase) AddLocation(ctx context.Context, owner user.User, form Form) (*SavedLocation, error) {
	loc := uc.GetLocationDB(form, owner)
	if err := loc.Validate(); err != nil {
		return nil, errors.NewValidationError("invalid location: " + err.Error())
	}

	record := &ports.LocationData{
		Name:      loc.Name,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Country:   loc.Country,
		State:     loc.State,
		UserID:    loc.OwnerID,
	}
	if err := uc.repository.Save(ctx, record); err != nil {
		if errors.IsDuplicateLocationError(err) {
			uc.logDuplicate(ctx, owner, loc.Name)
		}
		return nil, err
	}

	loc.ID = record.ID
	uc.logger.Info("Location saved",
		ports.F("user", owner.Login),
		ports.F("location", loc.Name))
	return &loc, nil
}

func (uc *UseCase) logDuplicate(ctx context.Context, owner user.User, name string) {
	existing, err := uc.repository.FindByName(ctx, owner.ID, name)
	if err != nil {
		uc.logger.Warn("Duplicate location not found by name",
			ports.F("user", owner.Login),
			ports.F("location", name),
			ports.F("error", err.Error()))
		return
	}

	uc.logger.Info("Location already saved",
		ports.F("user", owner.Login),
		ports.F("location", name),
		ports.F("location_id", existing.ID))
}

// DeleteLocation removes one of owner's locations
func (uc *UseCase) DeleteLocation(ctx context.Context, owner user.User, id uint) error {
	if err := uc.repository.Delete(ctx, id, owner.ID); err != nil {
		return err
	}

	uc.logger.Info("Location deleted",
		ports.F("user", owner.Login),
		ports.F("location_id", id))
	return nil
}

// SearchLocations geocodes city and filters the candidates
func (uc *UseCase) SearchLocations(ctx context.Context, city string) ([]Query, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, errors.NewMissingQueryError("missing city parameter")
	}
	city = weather.Capitalize(city)

	places, err := uc.findPlacesWithCache(ctx, city)
	if err != nil {
		uc.logger.Error("Failed to search locations",
			ports.F("city", city),
			ports.F("error", err))
		return nil, fmt.Errorf("search locations for %s: %w", city, err)
	}

	result := make([]Query, 0, len(places))
	for _, p := range places {
		result = append(result, toQuery(p))
	}
	return result, nil
}

func (uc *UseCase) findPlacesWithCache(ctx context.Context, city string) ([]ports.PlaceData, error) {
	searchConfig := uc.config.GetSearchConfig()
	if !searchConfig.EnableCache {
		return uc.findPlacesFromProvider(ctx, city)
	}

	cacheKey := fmt.Sprintf("search:%s", city)
	cached, err := uc.searchCache.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		uc.logger.Debug("Search results found in cache", ports.F("city", city))
		return cached, nil
	}

	places, err := uc.findPlacesFromProvider(ctx, city)
	if err != nil {
		return nil, err
	}

	if cacheErr := uc.searchCache.Set(ctx, cacheKey, places, searchConfig.CacheTTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache search results",
			ports.F("city", city),
			ports.F("error", cacheErr))
	}

	return places, nil
}

func (uc *UseCase) findPlacesFromProvider(ctx context.Context, city string) ([]ports.PlaceData, error) {
	candidates, err := uc.geocoder.FindPlaces(ctx, city, uc.config.GetWeatherConfig().GeocodingLimit)
	if err != nil {
		if errors.IsUpstreamGeocodingError(err) {
			return nil, err
		}
		return nil, errors.NewUpstreamGeocodingError("geocoding provider failed", err)
	}

	return FilterPlaces(city, candidates), nil
}
