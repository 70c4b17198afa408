// Package channel talks to the HotelRunner channel manager. It is a
// best-effort collaborator: every caller must keep working when it fails.
package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hotelvoice/config"
	"hotelvoice/models"
)

const defaultTimeout = 8 * time.Second

type Client struct {
	HTTP    *http.Client
	BaseURL string
	Token   string
	HrID    string
}

// NewClient builds a client from the loaded configuration. Returns nil
// when no credentials are configured; callers treat a nil client as
// "channel manager not connected".
func NewClient() *Client {
	cfg := config.AppConfig
	if cfg.ChannelToken == "" || cfg.ChannelHrID == "" {
		return nil
	}
	return &Client{
		HTTP:    &http.Client{Timeout: defaultTimeout},
		BaseURL: cfg.ChannelBaseURL,
		Token:   cfg.ChannelToken,
		HrID:    cfg.ChannelHrID,
	}
}

// Room is the channel manager's view of a room type.
type Room struct {
	Code      string `json:"inv_code"`
	Name      string `json:"name"`
	Available int    `json:"availability"`
}

// FetchRooms retrieves the remote room inventory.
func (c *Client) FetchRooms(ctx context.Context) ([]Room, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/rooms", nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Rooms []Room `json:"rooms"`
	}
	if err := c.doJSON(req, &out); err != nil {
		return nil, err
	}
	return out.Rooms, nil
}

// PushReservation announces a booking to the channel manager and returns
// the provider's reservation reference.
func (c *Client) PushReservation(ctx context.Context, b models.Booking) (string, error) {
	payload := map[string]any{
		"reservation": map[string]any{
			"confirmation_id": b.ID,
			"checkin_date":    b.CheckIn,
			"checkout_date":   b.CheckOut,
			"adults":          b.Adults,
			"children":        b.Children,
			"board_type":      b.BoardType,
			"email":           b.Email,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/reservations", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Reservation struct {
			HrNumber string `json:"hr_number"`
		} `json:"reservation"`
	}
	if err := c.doJSON(req, &out); err != nil {
		return "", err
	}
	return out.Reservation.HrNumber, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	q := url.Values{}
	q.Set("token", c.Token)
	q.Set("hr_id", c.HrID)
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path+"?"+q.Encode(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &models.UpstreamUnavailable{Upstream: "channel", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &models.UpstreamUnavailable{
			Upstream: "channel",
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, data),
		}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
