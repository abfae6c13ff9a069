package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weathertracker.app/pkg/errors"
)

const (
	maxRedisDB        = 15
	maxPortNumber     = 65535
	maxPageSize       = 100
	maxConcurrency    = 64
	maxGeocodingLimit = 5
	minBcryptCost     = 4
	maxBcryptCost     = 31
	maxTTLMinutes     = 10080
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig     `split_words:"true"`
	Database   DatabaseConfig   `split_words:"true"`
	Weather    WeatherConfig    `split_words:"true"`
	Pagination PaginationConfig `split_words:"true"`
	Search     SearchConfig     `split_words:"true"`
	Auth       AuthConfig       `split_words:"true"`
	Cache      CacheConfig      `split_words:"true"`
	Log        LogConfig        `split_words:"true"`
}

type ServerConfig struct {
	Port    int    `envconfig:"SERVER_PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weather_tracker"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherConfig struct {
	APIKey                string `envconfig:"OPENWEATHER_API_KEY" required:"true"`
	DataURL               string `envconfig:"OPENWEATHER_DATA_URL" default:"https://api.openweathermap.org/data/2.5"`
	GeoURL                string `envconfig:"OPENWEATHER_GEO_URL" default:"https://api.openweathermap.org/geo/1.0"`
	Lang                  string `envconfig:"WEATHER_LANG" default:"ru"`
	Units                 string `envconfig:"WEATHER_UNITS" default:"metric"`
	RequestTimeoutSeconds int    `envconfig:"WEATHER_REQUEST_TIMEOUT_SECONDS" default:"10"`
	FetchConcurrency      int    `envconfig:"WEATHER_FETCH_CONCURRENCY" default:"4"`
	GeocodingLimit        int    `envconfig:"GEOCODING_RESULT_LIMIT" default:"5"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	BreakerFailures       int    `envconfig:"WEATHER_BREAKER_FAILURES" default:"5"`
	BreakerOpenSeconds    int    `envconfig:"WEATHER_BREAKER_OPEN_SECONDS" default:"30"`
}

type PaginationConfig struct {
	PageSize int `envconfig:"PAGE_SIZE" default:"5"`
}

type SearchConfig struct {
	EnableCache     bool `envconfig:"SEARCH_ENABLE_CACHE" default:"true"`
	CacheTTLSeconds int  `envconfig:"SEARCH_CACHE_TTL_SECONDS" default:"180"`
}

type AuthConfig struct {
	JWTSecret       string `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLMinutes int    `envconfig:"TOKEN_TTL_MINUTES" default:"180"`
	BcryptCost      int    `envconfig:"BCRYPT_COST" default:"10"`
	CookieSecure    bool   `envconfig:"COOKIE_SECURE" default:"false"`
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:""`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
	CacheTypeMemcached
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	case CacheTypeMemcached:
		return "memcached"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis || c == CacheTypeMemcached
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(s) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	case "memcached":
		return CacheTypeMemcached
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type      CacheType       `envconfig:"CACHE_TYPE" default:"memory"`
	Redis     RedisConfig     `split_words:"true"`
	Memcached MemcachedConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type MemcachedConfig struct {
	Addrs     []string `envconfig:"MEMCACHED_ADDRS" default:"localhost:11211"`
	TimeoutMs int      `envconfig:"MEMCACHED_TIMEOUT_MS" default:"500"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	validators := []interface{ Validate() error }{
		&c.Server, &c.Database, &c.Weather, &c.Pagination, &c.Search, &c.Auth, &c.Cache, &c.Log,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	switch s.GinMode {
	case "debug", "release", "test":
		return nil
	default:
		return errors.NewConfigurationError("GIN_MODE must be one of: debug, release, test", nil)
	}
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.APIKey) == "" {
		return errors.NewConfigurationError("OPENWEATHER_API_KEY cannot be empty", nil)
	}
	if !isHTTPURL(w.DataURL) {
		return errors.NewConfigurationError("OPENWEATHER_DATA_URL must start with http:// or https://", nil)
	}
	if !isHTTPURL(w.GeoURL) {
		return errors.NewConfigurationError("OPENWEATHER_GEO_URL must start with http:// or https://", nil)
	}
	if w.Lang == "" {
		return errors.NewConfigurationError("WEATHER_LANG cannot be empty", nil)
	}
	switch w.Units {
	case "metric", "imperial", "standard":
	default:
		return errors.NewConfigurationError("WEATHER_UNITS must be one of: metric, imperial, standard", nil)
	}
	if w.RequestTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if w.FetchConcurrency < 1 || w.FetchConcurrency > maxConcurrency {
		return errors.NewConfigurationError("WEATHER_FETCH_CONCURRENCY must be between 1 and 64", nil)
	}
	if w.GeocodingLimit < 1 || w.GeocodingLimit > maxGeocodingLimit {
		return errors.NewConfigurationError("GEOCODING_RESULT_LIMIT must be between 1 and 5", nil)
	}
	if w.BreakerFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_FAILURES must be at least 1", nil)
	}
	if w.BreakerOpenSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_OPEN_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (p *PaginationConfig) Validate() error {
	if p.PageSize < 1 || p.PageSize > maxPageSize {
		return errors.NewConfigurationError("PAGE_SIZE must be between 1 and 100", nil)
	}
	return nil
}

func (s *SearchConfig) Validate() error {
	if s.EnableCache && s.CacheTTLSeconds < 1 {
		return errors.NewConfigurationError("SEARCH_CACHE_TTL_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (a *AuthConfig) Validate() error {
	if strings.TrimSpace(a.JWTSecret) == "" {
		return errors.NewConfigurationError("JWT_SECRET cannot be empty", nil)
	}
	if a.TokenTTLMinutes < 1 || a.TokenTTLMinutes > maxTTLMinutes {
		return errors.NewConfigurationError("TOKEN_TTL_MINUTES must be between 1 and 10080 minutes", nil)
	}
	if a.BcryptCost < minBcryptCost || a.BcryptCost > maxBcryptCost {
		return errors.NewConfigurationError("BCRYPT_COST must be between 4 and 31", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}

func (c *CacheConfig) Validate() error {
	switch c.Type {
	case CacheTypeMemory:
		return nil
	case CacheTypeRedis:
		return c.Redis.Validate()
	case CacheTypeMemcached:
		return c.Memcached.Validate()
	default:
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis, memcached", nil)
	}
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (m *MemcachedConfig) Validate() error {
	if len(m.Addrs) == 0 {
		return errors.NewConfigurationError("MEMCACHED_ADDRS cannot be empty when using memcached", nil)
	}
	for _, addr := range m.Addrs {
		if strings.TrimSpace(addr) == "" {
			return errors.NewConfigurationError("MEMCACHED_ADDRS contains an empty address", nil)
		}
	}
	if m.TimeoutMs < 1 {
		return errors.NewConfigurationError("MEMCACHED_TIMEOUT_MS must be at least 1 millisecond", nil)
	}
	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
