// Package rooms is the HTTP client for the external room catalog service.
package rooms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weatherstay/internal/pkg/config"

	"golang.org/x/time/rate"
)

var (
	ErrRoomNotFound = errors.New("rooms: room not found")
	ErrUnavailable  = errors.New("rooms: catalog unavailable")
)

// Room is the catalog's view of a bookable room. BasePrice is in major
// currency units per night.
type Room struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	Location  string  `json:"location"`
}

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(cfg config.RoomsConfig) *Client {
	rps := cfg.RPS
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: cfg.BaseURL,
		hc:   &http.Client{Timeout: cfg.Timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// GetRoom resolves a catalog room id to its details. Unknown ids map to
// ErrRoomNotFound, everything transient to ErrUnavailable.
func (c *Client) GetRoom(ctx context.Context, roomID string) (*Room, error) {
	u := fmt.Sprintf("%s/api/rooms/%s", c.base, url.PathEscape(roomID))

	var room Room
	if err := c.get(ctx, u, &room); err != nil {
		return nil, err
	}
	if room.ID == "" {
		room.ID = roomID
	}
	return &room, nil
}

// get performs a GET with client-side rate limiting, retries on 429 and
// transient 5xx honoring Retry-After, and decodes JSON into out.
func (c *Client) get(ctx context.Context, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 3; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.hc.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %w", ErrUnavailable, err)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
			}
			return nil
		case resp.StatusCode == http.StatusNotFound:
			drain(resp)
			return ErrRoomNotFound
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			wait := retryAfter(resp)
			drain(resp)
			lastErr = fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		default:
			drain(resp)
			return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
		}
	}
	return lastErr
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 500 * time.Millisecond
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
