package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the OpenWeatherMap current-weather API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

const requestTimeout = 10 * time.Second

// ErrorKind classifies a failed request.
type ErrorKind int

const (
	// KindStatus means the provider answered with a non-200 status.
	KindStatus ErrorKind = iota
	// KindTimeout means the request exceeded the client timeout.
	KindTimeout
	// KindTransport covers everything else (DNS, connection reset, bad body).
	KindTransport
)

// RequestError is the only error type Current returns. Callers branch on
// presence/absence of a payload; the error carries the diagnostic.
type RequestError struct {
	City    string
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("weather request for %q failed with status %d: %s", e.City, e.Status, e.Message)
	case KindTimeout:
		return fmt.Sprintf("weather request for %q timed out", e.City)
	default:
		return fmt.Sprintf("weather request for %q failed: %v", e.City, e.Err)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client talks to the OpenWeatherMap current-weather endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	units      string
	lang       string
	log        *logrus.Logger
}

func NewClient(baseURL, apiKey, units, lang string, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		units:      units,
		lang:       lang,
		log:        log,
	}
}

// Current fetches the current weather for a city by name. Provider and
// transport failures never escape as raw errors; they come back as a
// *RequestError and the payload is nil.
func (c *Client) Current(ctx context.Context, city string) (*Payload, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", c.apiKey)
	values.Set("units", c.units)
	values.Set("lang", c.lang)

	u := fmt.Sprintf("%s/weather?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &RequestError{City: city, Kind: KindTransport, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &RequestError{City: city, Kind: KindTimeout, Err: err}
		}
		return nil, &RequestError{City: city, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{
			City:    city,
			Kind:    KindStatus,
			Status:  resp.StatusCode,
			Message: decodeErrorMessage(resp),
		}
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &RequestError{City: city, Kind: KindTransport, Err: fmt.Errorf("decoding response: %w", err)}
	}

	c.log.Debugf("fetched weather for %s (status %d)", city, resp.StatusCode)
	return &payload, nil
}

// decodeErrorMessage extracts the provider's error message field, falling
// back to a generic message when the body carries none.
func decodeErrorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return "unknown provider error"
	}
	return body.Message
}

func isTimeout(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
