package external

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"weathertracker.app/internal/ports"
)

// HTTPClient is the subset of *http.Client used by the OpenWeather client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherClientParams configures one OpenWeather API endpoint family
type OpenWeatherClientParams struct {
	Name            string
	BaseURL         string
	APIKey          string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
	HTTPClient      HTTPClient
	Metrics         ports.MetricsCollector
}

// OpenWeatherClient performs GET requests against one OpenWeather base URL behind a circuit breaker
type OpenWeatherClient struct {
	name    string
	baseURL string
	apiKey  string
	client  HTTPClient
	breaker *gobreaker.CircuitBreaker
	metrics ports.MetricsCollector
}

// errorEnvelope is what OpenWeather returns instead of a payload when a call fails
type errorEnvelope struct {
	Cod     json.RawMessage `json:"cod"`
	Message *string         `json:"message"`
}

// statusError is a response OpenWeather answered with a failure status or an error envelope
type statusError struct {
	client  string
	status  int
	message string
}

func (e *statusError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("%s error (status %d): %s", e.client, e.status, e.message)
	}
	return fmt.Sprintf("%s returned status %d", e.client, e.status)
}

// NewOpenWeatherClient creates a client for the given base URL
func NewOpenWeatherClient(params OpenWeatherClientParams) *OpenWeatherClient {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: params.Timeout}
	}

	failures := params.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	settings := gobreaker.Settings{
		Name:        params.Name,
		MaxRequests: 1,
		Timeout:     params.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: isBreakerSuccess,
	}

	return &OpenWeatherClient{
		name:    params.Name,
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		apiKey:  params.APIKey,
		client:  httpClient,
		breaker: gobreaker.NewCircuitBreaker(settings),
		metrics: params.Metrics,
	}
}

// Name returns the name the breaker and metrics are reported under
func (c *OpenWeatherClient) Name() string {
	return c.name
}

// State returns the current circuit breaker state ("closed", "half-open", "open")
func (c *OpenWeatherClient) State() string {
	return c.breaker.State().String()
}

// GetJSON calls endpoint with query, decoding a successful body into target
func (c *OpenWeatherClient) GetJSON(ctx context.Context, endpoint string, query url.Values, target interface{}) error {
	query.Set("appid", c.apiKey)
	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, strings.TrimLeft(endpoint, "/"), query.Encode())

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, requestURL)
	})
	c.recordCall(ctx, err == nil, time.Since(start))

	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return fmt.Errorf("%s circuit breaker is open: %w", c.name, err)
		}
		return err
	}

	body, ok := result.([]byte)
	if !ok {
		return fmt.Errorf("%s returned an unexpected result type", c.name)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", c.name, err)
	}
	return nil
}

func (c *OpenWeatherClient) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", c.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", c.name, err)
	}

	if msg, isEnvelope := detectErrorEnvelope(body); isEnvelope {
		return nil, &statusError{client: c.name, status: envelopeStatus(body, resp.StatusCode), message: msg}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &statusError{client: c.name, status: resp.StatusCode}
	}

	return body, nil
}

// detectErrorEnvelope reports whether body is a JSON object carrying both "cod" and "message"
func detectErrorEnvelope(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return "", false
	}
	if len(envelope.Cod) == 0 || envelope.Message == nil {
		return "", false
	}
	return *envelope.Message, true
}

// envelopeStatus prefers the envelope "cod" when the HTTP status itself reports success
func envelopeStatus(body []byte, httpStatus int) int {
	if httpStatus < http.StatusOK || httpStatus >= http.StatusMultipleChoices {
		return httpStatus
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(bytes.TrimSpace(body), &envelope); err != nil {
		return httpStatus
	}
	cod, err := strconv.Atoi(strings.Trim(string(envelope.Cod), `"`))
	if err != nil || cod == 0 {
		return httpStatus
	}
	return cod
}

// isBreakerSuccess keeps caller cancellations and per-request rejections (4xx) from tripping the shared breaker.
// Transport errors, deadlines and 5xx still count as failures.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.status < http.StatusInternalServerError
	}
	return false
}

func (c *OpenWeatherClient) recordCall(ctx context.Context, success bool, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordUpstreamCall(ctx, c.name, success, duration)
}
