package location

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertracker.app/internal/core/user"
	"weathertracker.app/internal/core/weather"
	mocks "weathertracker.app/internal/mocks"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

type sessionFunc func(ctx context.Context, token string) (*user.User, error)

func (f sessionFunc) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	return f(ctx, token)
}

var alice = user.User{ID: 1, Login: "alice"}

func aliceSessions(ctx context.Context, token string) (*user.User, error) {
	switch token {
	case "valid":
		return &alice, nil
	case "expired":
		return nil, errors.NewTokenExpiredError("token has expired")
	default:
		return nil, errors.NewInvalidTokenError("bad token", nil)
	}
}

type testDeps struct {
	repo     *mocks.LocationRepository
	geocoder *mocks.GeocodingProvider
	cache    *mocks.SearchCache
	config   *mocks.ConfigProvider
}

func newTestUseCase(t *testing.T, fetcher WeatherFetcher) (*UseCase, testDeps) {
	d := testDeps{
		repo:     mocks.NewLocationRepository(t),
		geocoder: mocks.NewGeocodingProvider(t),
		cache:    mocks.NewSearchCache(t),
		config:   mocks.NewConfigProvider(t),
	}
	d.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{FetchConcurrency: 4, GeocodingLimit: 5}).Maybe()
	d.config.EXPECT().GetPaginationConfig().Return(ports.PaginationConfig{PageSize: 5}).Maybe()

	if fetcher == nil {
		fetcher = fetchFunc(func(ctx context.Context, lat, lon float64) (weather.Conditions, error) {
			return weather.Conditions{Description: "Ясно", Temperature: 20, FeelsLike: 19, WindSpeed: 2}, nil
		})
	}

	uc, err := NewUseCase(UseCaseDependencies{
		Repository:  d.repo,
		Geocoder:    d.geocoder,
		SearchCache: d.cache,
		Fetcher:     fetcher,
		Sessions:    sessionFunc(aliceSessions),
		Config:      d.config,
		Logger:      mocks.NewQuietLogger(t),
	})
	require.NoError(t, err)
	return uc, d
}

func savedRecords(n int) []*ports.LocationData {
	out := make([]*ports.LocationData, n)
	for i := range out {
		out[i] = &ports.LocationData{
			ID:        uint(i + 1),
			Name:      fmt.Sprintf("City%d", i+1),
			Latitude:  float64(i),
			Longitude: float64(i),
			Country:   "RU",
			State:     "-",
			UserID:    alice.ID,
		}
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestUseCase_GetResultLocations_Anonymous(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)

	page, err := uc.GetResultLocations(context.Background(), ResultParams{Page: 1})

	require.NoError(t, err)
	assert.Equal(t, &Page{Items: []WeatherReading{}, CurrentPage: 1, TotalPages: 0}, page)
}

func TestUseCase_GetResultLocations_StaleSessionIsAnonymous(t *testing.T) {
	for _, token := range []string{"expired", "forged"} {
		t.Run(token, func(t *testing.T) {
			uc, _ := newTestUseCase(t, nil)

			page, err := uc.GetResultLocations(context.Background(), ResultParams{Page: 2, Token: token})

			require.NoError(t, err)
			assert.Empty(t, page.Items)
			assert.Equal(t, 0, page.TotalPages)
			assert.Equal(t, 2, page.CurrentPage)
		})
	}
}

func TestUseCase_GetResultLocations_Paginates(t *testing.T) {
	uc, d := newTestUseCase(t, nil)
	d.repo.EXPECT().GetAllByUser(mock.Anything, alice.ID).Return(savedRecords(12), nil).Once()

	page, err := uc.GetResultLocations(context.Background(), ResultParams{Page: 2, Token: "valid"})

	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "City6", page.Items[0].Name)
	assert.Equal(t, uint(6), page.Items[0].LocationID)
	assert.Equal(t, "Ясно", page.Items[0].Condition)
}

func TestUseCase_GetResultLocations_StickyCurrentPage(t *testing.T) {
	uc, d := newTestUseCase(t, nil)
	d.repo.EXPECT().GetAllByUser(mock.Anything, alice.ID).Return(savedRecords(7), nil).Once()

	page, err := uc.GetResultLocations(context.Background(), ResultParams{Page: 1, CurrentPage: intPtr(2), Token: "valid"})

	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, "City1", page.Items[0].Name)
}

func TestUseCase_GetResultLocations_UpstreamFailure(t *testing.T) {
	fetcher := fetchFunc(func(ctx context.Context, lat, lon float64) (weather.Conditions, error) {
		if lat == 1 {
			return weather.Conditions{}, errors.NewUpstreamWeatherError("cod=500", nil)
		}
		return weather.Conditions{Description: "Ясно"}, nil
	})
	uc, d := newTestUseCase(t, fetcher)
	d.repo.EXPECT().GetAllByUser(mock.Anything, alice.ID).Return(savedRecords(3), nil).Once()

	page, err := uc.GetResultLocations(context.Background(), ResultParams{Page: 1, Token: "valid"})

	assert.Nil(t, page)
	require.Error(t, err)
	assert.True(t, errors.IsUpstreamWeatherError(err))
}

func TestUseCase_GetResultLocations_RepositoryFailure(t *testing.T) {
	uc, d := newTestUseCase(t, nil)
	d.repo.EXPECT().GetAllByUser(mock.Anything, alice.ID).Return(nil, errors.NewDatabaseError("db down", nil)).Once()

	_, err := uc.GetResultLocations(context.Background(), ResultParams{Page: 1, Token: "valid"})

	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_GetLocationDB(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)

	loc := uc.GetLocationDB(Form{Name: "Moscow", Lat: 55.75, Lon: 37.61, Country: "RU"}, alice)

	assert.Equal(t, SavedLocation{
		OwnerID: alice.ID,
		Query:   Query{Name: "Moscow", Latitude: 55.75, Longitude: 37.61, Country: "RU", State: "-"},
	}, loc)
}

func TestUseCase_AddLocation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, d := newTestUseCase(t, nil)
		d.repo.EXPECT().Save(mock.Anything, &ports.LocationData{
			Name: "Moscow", Latitude: 55.75, Longitude: 37.61, Country: "RU", State: "Moscow", UserID: alice.ID,
		}).RunAndReturn(func(_ context.Context, l *ports.LocationData) error {
			l.ID = 42
			return nil
		}).Once()

		loc, err := uc.AddLocation(context.Background(), alice, Form{Name: "Moscow", Lat: 55.75, Lon: 37.61, Country: "RU", State: "Moscow"})

		require.NoError(t, err)
		assert.Equal(t, uint(42), loc.ID)
	})

	t.Run("DuplicateIsForwarded", func(t *testing.T) {
		uc, d := newTestUseCase(t, nil)
		dup := errors.NewDuplicateLocationError(fmt.Errorf("UNIQUE constraint failed"))
		d.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(dup).Once()
		d.repo.EXPECT().FindByName(mock.Anything, alice.ID, "Moscow").
			Return(&ports.LocationData{ID: 7, Name: "Moscow", UserID: alice.ID}, nil).Once()

		_, err := uc.AddLocation(context.Background(), alice, Form{Name: "Moscow", Lat: 55.75, Lon: 37.61, Country: "RU"})

		assert.Same(t, dup, err)
	})

	t.Run("DuplicateLookupFailureKeepsDuplicateError", func(t *testing.T) {
		uc, d := newTestUseCase(t, nil)
		dup := errors.NewDuplicateLocationError(fmt.Errorf("UNIQUE constraint failed"))
		d.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(dup).Once()
		d.repo.EXPECT().FindByName(mock.Anything, alice.ID, "Moscow").
			Return(nil, errors.NewNotFoundError("location not found")).Once()

		_, err := uc.AddLocation(context.Background(), alice, Form{Name: "Moscow", Lat: 55.75, Lon: 37.61, Country: "RU"})

		assert.Same(t, dup, err)
	})

	t.Run("OtherSaveErrorSkipsLookup", func(t *testing.T) {
		uc, d := newTestUseCase(t, nil)
		dbErr := errors.NewDatabaseError("failed to save location", fmt.Errorf("connection reset"))
		d.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(dbErr).Once()

		_, err := uc.AddLocation(context.Background(), alice, Form{Name: "Moscow", Lat: 55.75, Lon: 37.61, Country: "RU"})

		assert.Same(t, dbErr, err)
	})

	t.Run("InvalidCoordinates", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil)

		_, err := uc.AddLocation(context.Background(), alice, Form{Name: "Nowhere", Lat: 91, Lon: 0})

		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUseCase_DeleteLocation(t *testing.T) {
	uc, d := newTestUseCase(t, nil)
	d.repo.EXPECT().Delete(mock.Anything, uint(5), alice.ID).Return(nil).Once()
	d.repo.EXPECT().Delete(mock.Anything, uint(6), alice.ID).Return(errors.NewNotFoundError("location not found")).Once()

	assert.NoError(t, uc.DeleteLocation(context.Background(), alice, 5))
	assert.True(t, errors.IsNotFoundError(uc.DeleteLocation(context.Background(), alice, 6)))
}

func TestUseCase_SearchLocations(t *testing.T) {
	moscow := ports.PlaceData{Name: "Moscow", Latitude: 55.75, Longitude: 37.61, Country: "RU", LocalNames: map[string]string{"ru": "Москва"}}
	paris := ports.PlaceData{Name: "Paris", Latitude: 48.85, Longitude: 2.35, Country: "FR"}

	t.Run("MissingQuery", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil)

		_, err := uc.SearchLocations(context.Background(), "   ")

		assert.True(t, errors.IsMissingQueryError(err))
	})

	t.Run("CacheMissQueriesProviderAndCaches", func(t *testing.T) {
		uc, d := newTestUseCase(t, nil)
		d.config.EXPECT().GetSearchConfig().Return(ports.SearchConfig{EnableCache: true, CacheTTL: 3 * time.Minute}).Once()
		d.cache.EXPECT().Get(mock.Anything, "search:Москва").Return(nil, errors.NewNotFoundError("cache miss")).Once()
		d.geocoder.EXPECT().FindPlaces(mock.Anything, "Москва", 5).Return([]ports.PlaceData{moscow, paris}, nil).Once()
		d.cache.EXPECT().Set(mock.Anything, "search:Москва", mock.Anything, 3*time.Minute).Return(nil).Once()

		result, err := uc.SearchLocations(context.Background(), "москва")

		require.NoError(t, err)
		assert.Equal(t, []Query{{Name: "Москва", Latitude: 55.75, Longitude: 37.61, Country: "RU", State: "-"}}, result)
	})

	t.Run("CacheHitSkipsProvider", func(t *testing.T) {
		uc, d := newTestUseCase(t, nil)
		d.config.EXPECT().GetSearchConfig().Return(ports.SearchConfig{EnableCache: true, CacheTTL: time.Minute}).Once()
		d.cache.EXPECT().Get(mock.Anything, "search:Paris").Return([]ports.PlaceData{paris}, nil).Once()

		result, err := uc.SearchLocations(context.Background(), "Paris")

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("CacheDisabled", func(t *testing.T) {
		uc, d := newTestUseCase(t, nil)
		d.config.EXPECT().GetSearchConfig().Return(ports.SearchConfig{EnableCache: false}).Once()
		d.geocoder.EXPECT().FindPlaces(mock.Anything, "Paris", 5).Return([]ports.PlaceData{paris}, nil).Once()

		result, err := uc.SearchLocations(context.Background(), "Paris")

		require.NoError(t, err)
		assert.Equal(t, "Paris", result[0].Name)
	})

	t.Run("CacheWriteFailureIsIgnored", func(t *testing.T) {
		uc, d := newTestUseCase(t, nil)
		d.config.EXPECT().GetSearchConfig().Return(ports.SearchConfig{EnableCache: true, CacheTTL: time.Minute}).Once()
		d.cache.EXPECT().Get(mock.Anything, "search:Paris").Return(nil, errors.NewNotFoundError("cache miss")).Once()
		d.geocoder.EXPECT().FindPlaces(mock.Anything, "Paris", 5).Return([]ports.PlaceData{paris}, nil).Once()
		d.cache.EXPECT().Set(mock.Anything, "search:Paris", mock.Anything, time.Minute).Return(fmt.Errorf("redis down")).Once()

		result, err := uc.SearchLocations(context.Background(), "Paris")

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		uc, d := newTestUseCase(t, nil)
		d.config.EXPECT().GetSearchConfig().Return(ports.SearchConfig{EnableCache: false}).Once()
		d.geocoder.EXPECT().FindPlaces(mock.Anything, "Paris", 5).Return(nil, fmt.Errorf("connection reset")).Once()

		_, err := uc.SearchLocations(context.Background(), "Paris")

		assert.True(t, errors.IsUpstreamGeocodingError(err))
	})
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "location repository is required")
}
