package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeMissingQuery
	ErrorTypeNotFound
	ErrorTypeAlreadyExists
	ErrorTypeDuplicateLocation

	// Authentication Errors - the caller is not (or no longer) identified
	ErrorTypeAuthRequired
	ErrorTypeInvalidToken
	ErrorTypeTokenExpired
	ErrorTypeInvalidCredentials

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeUpstreamWeather
	ErrorTypeUpstreamGeocoding
	ErrorTypeCache

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeMissingQuery:
		return "MISSING_QUERY_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeAlreadyExists:
		return "ALREADY_EXISTS_ERROR"
	case ErrorTypeDuplicateLocation:
		return "DUPLICATE_LOCATION_ERROR"
	case ErrorTypeAuthRequired:
		return "AUTH_REQUIRED_ERROR"
	case ErrorTypeInvalidToken:
		return "INVALID_TOKEN_ERROR"
	case ErrorTypeTokenExpired:
		return "TOKEN_EXPIRED_ERROR"
	case ErrorTypeInvalidCredentials:
		return "INVALID_CREDENTIALS_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeUpstreamWeather:
		return "UPSTREAM_WEATHER_ERROR"
	case ErrorTypeUpstreamGeocoding:
		return "UPSTREAM_GEOCODING_ERROR"
	case ErrorTypeCache:
		return "CACHE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the code base
const (
	ValidationError         = ErrorTypeValidation
	MissingQueryError       = ErrorTypeMissingQuery
	NotFoundError           = ErrorTypeNotFound
	AlreadyExistsError      = ErrorTypeAlreadyExists
	DuplicateLocationError  = ErrorTypeDuplicateLocation
	AuthRequiredError       = ErrorTypeAuthRequired
	InvalidTokenError       = ErrorTypeInvalidToken
	TokenExpiredError       = ErrorTypeTokenExpired
	InvalidCredentialsError = ErrorTypeInvalidCredentials
	DatabaseError           = ErrorTypeDatabase
	UpstreamWeatherError    = ErrorTypeUpstreamWeather
	UpstreamGeocodingError  = ErrorTypeUpstreamGeocoding
	CacheError              = ErrorTypeCache
	ConfigurationError      = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewMissingQueryError(message string) *AppError {
	return New(MissingQueryError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewAlreadyExistsError(message string) *AppError {
	return New(AlreadyExistsError, message)
}

func NewDuplicateLocationError(cause error) *AppError {
	return Wrap(DuplicateLocationError, "Location already exists", cause)
}

// Authentication Error Constructors
func NewAuthRequiredError(message string) *AppError {
	return New(AuthRequiredError, message)
}

func NewInvalidTokenError(message string, cause error) *AppError {
	return Wrap(InvalidTokenError, message, cause)
}

func NewTokenExpiredError(message string) *AppError {
	return New(TokenExpiredError, message)
}

func NewInvalidCredentialsError() *AppError {
	return New(InvalidCredentialsError, "Incorrect username or password")
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewUpstreamWeatherError(message string, cause error) *AppError {
	return Wrap(UpstreamWeatherError, message, cause)
}

func NewUpstreamGeocodingError(message string, cause error) *AppError {
	return Wrap(UpstreamGeocodingError, message, cause)
}

func NewCacheError(message string, cause error) *AppError {
	return Wrap(CacheError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the outermost AppError in the chain
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsMissingQueryError(err error) bool {
	return TypeOf(err) == MissingQueryError
}

func IsAlreadyExistsError(err error) bool {
	return TypeOf(err) == AlreadyExistsError
}

func IsDuplicateLocationError(err error) bool {
	return TypeOf(err) == DuplicateLocationError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsDatabaseError(err error) bool {
	return TypeOf(err) == DatabaseError
}

func IsUpstreamWeatherError(err error) bool {
	return TypeOf(err) == UpstreamWeatherError
}

func IsUpstreamGeocodingError(err error) bool {
	return TypeOf(err) == UpstreamGeocodingError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}

// IsAuthError reports whether err means the caller has no valid session
func IsAuthError(err error) bool {
	switch TypeOf(err) {
	case AuthRequiredError, InvalidTokenError, TokenExpiredError:
		return true
	default:
		return false
	}
}
