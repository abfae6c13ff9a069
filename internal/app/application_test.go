package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weathertracker.app/internal/adapters/database"
	"weathertracker.app/internal/config"
	"weathertracker.app/internal/mocks"
)

type fakeOpenWeather struct {
	server       *httptest.Server
	weatherCalls atomic.Int32
	geoCalls     atomic.Int32
}

func newFakeOpenWeather(t *testing.T) *fakeOpenWeather {
	f := &fakeOpenWeather{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/data/weather":
			f.weatherCalls.Add(1)
			_, _ = w.Write([]byte(`{"weather":[{"description":"ясно"}],"main":{"temp":21.4,"feels_like":20.1},"wind":{"speed":3.2}}`))
		case "/geo/direct":
			f.geoCalls.Add(1)
			_, _ = w.Write([]byte(`[{"name":"Moscow","local_names":{"ru":"Москва","en":"Moscow"},"lat":55.7558,"lon":37.6173,"country":"RU","state":"Moscow"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"not found"}`))
		}
	}))
	t.Cleanup(f.server.Close)
	return f
}

func testConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, GinMode: gin.TestMode},
		Weather: config.WeatherConfig{
			APIKey:                "test-key",
			DataURL:               upstreamURL + "/data",
			GeoURL:                upstreamURL + "/geo",
			Lang:                  "ru",
			Units:                 "metric",
			RequestTimeoutSeconds: 5,
			FetchConcurrency:      2,
			GeocodingLimit:        5,
			EnableLogging:         true,
			BreakerFailures:       5,
			BreakerOpenSeconds:    30,
		},
		Pagination: config.PaginationConfig{PageSize: 5},
		Search:     config.SearchConfig{EnableCache: true, CacheTTLSeconds: 180},
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 180,
			BcryptCost:      4,
		},
		Cache: config.CacheConfig{Type: config.CacheTypeMemory},
	}
}

func setupTestApplication(t *testing.T) (*Application, *fakeOpenWeather) {
	upstream := newFakeOpenWeather(t)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tracker.db")), database.Config())
	require.NoError(t, err)

	app, err := NewApplicationWithDatabase(testConfig(upstream.server.URL), db, mocks.NewQuietLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.container.Cleanup() })

	return app, upstream
}

type browser struct {
	router  http.Handler
	cookies map[string]*http.Cookie
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func TestApplication_EndToEnd(t *testing.T) {
	app, upstream := setupTestApplication(t)
	b := &browser{router: app.GetRouter(), cookies: map[string]*http.Cookie{}}

	w := b.post("/register", url.Values{"login": {"alice"}, "password": {"secret1"}, "repeated_password": {"secret1"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = b.post("/register", url.Values{"login": {"alice"}, "password": {"secret1"}, "repeated_password": {"secret1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = b.post("/token", url.Values{"login": {"alice"}, "password": {"wrong"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, b.get("/").Body.String(), "Incorrect username or password")

	w = b.post("/token", url.Values{"login": {"alice"}, "password": {"secret1"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Contains(t, b.cookies, "user_access_token")

	search := "/locations?city=" + url.QueryEscape("москва")
	w = b.get(search)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Москва")
	b.get(search)
	assert.Equal(t, int32(1), upstream.geoCalls.Load(), "second search should be served from cache")

	form := url.Values{"name": {"Москва"}, "lat": {"55.7558"}, "lon": {"37.6173"}, "country": {"RU"}, "state": {"Moscow"}}
	w = b.post("/add_location", form)
	require.Equal(t, http.StatusSeeOther, w.Code)

	b.post("/add_location", form)
	require.Contains(t, b.cookies, "error_message")

	w = b.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Location already exists")
	assert.Contains(t, body, "21&deg;C")
	assert.Contains(t, body, "Ясно")
	assert.Equal(t, int32(1), upstream.weatherCalls.Load())

	w = b.post("/delete_location", url.Values{"location_id": {"1"}, "location_name": {"Москва"}, "current_page": {"1"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?current_page=1", w.Header().Get("Location"))
	assert.Contains(t, b.get("/").Body.String(), "No saved locations yet")

	w = b.post("/logout", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.NotContains(t, b.cookies, "user_access_token")
	assert.Equal(t, http.StatusUnauthorized, b.get("/locations?city=x").Code)
}

func TestApplication_HealthAndMetrics(t *testing.T) {
	app, _ := setupTestApplication(t)
	b := &browser{router: app.GetRouter(), cookies: map[string]*http.Cookie{}}

	w := b.get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database"`)
	assert.Contains(t, w.Body.String(), `"weatherAPI"`)

	w = b.get("/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestApplication_Shutdown(t *testing.T) {
	app, _ := setupTestApplication(t)

	assert.NoError(t, app.Shutdown(context.Background()))
}

func TestNewDependencyContainer_RequiresDatabase(t *testing.T) {
	_, err := NewDependencyContainer(testConfig("http://localhost"), nil, nil)

	assert.Error(t, err)
}
