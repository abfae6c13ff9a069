package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("original error")
				return Wrap(DatabaseError, "database operation failed", cause)
			},
			expected: "DATABASE_ERROR: database operation failed (caused by: original error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestSpecificErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedType ErrorType
		expectedMsg  string
		hasCause     bool
	}{
		{
			name:         "NewMissingQueryError",
			constructor:  func() *AppError { return NewMissingQueryError("missing city parameter") },
			expectedType: MissingQueryError,
			expectedMsg:  "missing city parameter",
		},
		{
			name:         "NewDuplicateLocationError",
			constructor:  func() *AppError { return NewDuplicateLocationError(fmt.Errorf("unique violation")) },
			expectedType: DuplicateLocationError,
			expectedMsg:  "Location already exists",
			hasCause:     true,
		},
		{
			name:         "NewUpstreamWeatherError",
			constructor:  func() *AppError { return NewUpstreamWeatherError("provider error envelope", nil) },
			expectedType: UpstreamWeatherError,
			expectedMsg:  "provider error envelope",
		},
		{
			name:         "NewUpstreamGeocodingError",
			constructor:  func() *AppError { return NewUpstreamGeocodingError("geocoding failed", fmt.Errorf("timeout")) },
			expectedType: UpstreamGeocodingError,
			expectedMsg:  "geocoding failed",
			hasCause:     true,
		},
		{
			name:         "NewInvalidCredentialsError",
			constructor:  NewInvalidCredentialsError,
			expectedType: InvalidCredentialsError,
			expectedMsg:  "Incorrect username or password",
		},
		{
			name:         "NewTokenExpiredError",
			constructor:  func() *AppError { return NewTokenExpiredError("token is expired") },
			expectedType: TokenExpiredError,
			expectedMsg:  "token is expired",
		},
		{
			name:         "NewConfigurationError",
			constructor:  func() *AppError { return NewConfigurationError("config loading failed", fmt.Errorf("missing env var")) },
			expectedType: ConfigurationError,
			expectedMsg:  "config loading failed",
			hasCause:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor()

			assert.Equal(t, tt.expectedType, err.Type)
			assert.Equal(t, tt.expectedMsg, err.Message)
			if tt.hasCause {
				assert.NotNil(t, err.Cause)
			} else {
				assert.Nil(t, err.Cause)
			}
		})
	}
}

func TestErrorTypes_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ValidationError, "VALIDATION_ERROR"},
		{MissingQueryError, "MISSING_QUERY_ERROR"},
		{DuplicateLocationError, "DUPLICATE_LOCATION_ERROR"},
		{AuthRequiredError, "AUTH_REQUIRED_ERROR"},
		{InvalidTokenError, "INVALID_TOKEN_ERROR"},
		{TokenExpiredError, "TOKEN_EXPIRED_ERROR"},
		{UpstreamWeatherError, "UPSTREAM_WEATHER_ERROR"},
		{UpstreamGeocodingError, "UPSTREAM_GEOCODING_ERROR"},
		{ErrorType(999), "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypeCheckers_SeeThroughWrapping(t *testing.T) {
	upstream := NewUpstreamWeatherError("provider returned cod=500", nil)
	wrapped := fmt.Errorf("aggregate weather: %w", upstream)

	assert.True(t, IsUpstreamWeatherError(wrapped))
	assert.False(t, IsUpstreamGeocodingError(wrapped))
	assert.Equal(t, UpstreamWeatherError, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(NewAuthRequiredError("login required")))
	assert.True(t, IsAuthError(NewInvalidTokenError("bad signature", nil)))
	assert.True(t, IsAuthError(fmt.Errorf("resolve user: %w", NewTokenExpiredError("expired"))))
	assert.False(t, IsAuthError(NewInvalidCredentialsError()))
	assert.False(t, IsAuthError(NewDatabaseError("db down", nil)))
}

func TestErrorChaining(t *testing.T) {
	originalErr := fmt.Errorf("connection refused")
	dbErr := NewDatabaseError("query failed", originalErr)
	serviceErr := Wrap(UpstreamWeatherError, "service unavailable", dbErr)

	expected := "UPSTREAM_WEATHER_ERROR: service unavailable (caused by: DATABASE_ERROR: query failed (caused by: connection refused))"
	assert.Equal(t, expected, serviceErr.Error())
	assert.Equal(t, dbErr, serviceErr.Unwrap())
	assert.Equal(t, originalErr, dbErr.Unwrap())
}
