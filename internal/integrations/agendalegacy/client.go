// Package agendalegacy talks to the previous-generation agenda API, which
// still owns availability for businesses that have not migrated their
// schedule configuration into this service.
//
// Depending on its version the legacy API answers with a flat "horarios"
// list, a "minutos_por_hora" map, or both; the payload is normalized before
// it reaches any caller, so the dual shape never leaks downstream.
package agendalegacy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agendora/Agendora-BookingService/internal/availability"
	"github.com/agendora/Agendora-BookingService/internal/domain"
)

// Logger is the logging surface the client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client is the HTTP client for the legacy agenda API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a legacy agenda client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDayAvailability fetches the availability of one business for one date
// and returns it in canonical form.
func (c *Client) GetDayAvailability(ctx context.Context, businessID int64, date time.Time) (*availability.Response, error) {
	url := fmt.Sprintf("%s/internal/agenda/%d/disponibilidade?data=%s",
		c.baseURL, businessID, date.Format(domain.DateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Fall through to decoding
	case http.StatusNotFound:
		return nil, ErrAgendaNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var raw availability.Raw
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	normalized := availability.Normalize(raw)
	c.log.Info("Legacy availability fetched: business=%d, date=%s, slots=%d",
		businessID, date.Format(domain.DateFormat), len(normalized.Slots))

	return &normalized, nil
}
