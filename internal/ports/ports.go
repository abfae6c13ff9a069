package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider   WeatherProvider
	GeocodingProvider GeocodingProvider
	SearchCache       SearchCache

	// Persistence
	LocationRepository LocationRepository
	UserRepository     UserRepository

	// Security
	TokenService   TokenService
	PasswordHasher PasswordHasher

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Infrastructure
	ConfigProvider   ConfigProvider
	Logger           Logger
	MetricsCollector MetricsCollector
}
