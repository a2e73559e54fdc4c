// Package hypixel talks to the public Hypixel API and turns raw player
// documents into the stat views the bot presents.
package hypixel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"emperror.dev/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.hypixel.net"

var (
	// ErrInvalidKey means the API rejected the configured key.
	ErrInvalidKey = errors.New("hypixel: invalid api key")
	// ErrThrottled means the key is over its request limit.
	ErrThrottled = errors.New("hypixel: request throttled")
	// ErrPlayerNotFound means the API answered but knows no such player.
	ErrPlayerNotFound = errors.New("hypixel: player not found")
	// ErrUpstream covers every other API-side failure.
	ErrUpstream = errors.New("hypixel: upstream error")
)

// Client is a Hypixel API client bound to one API key.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// NewClient returns a client that authenticates with apiKey.
func NewClient(apiKey string, log *zap.SugaredLogger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// PlayerByName fetches the player document for a Minecraft username.
func (c *Client) PlayerByName(ctx context.Context, name string) (*Player, error) {
	if name == "" {
		return nil, errors.New("player name is empty")
	}
	return c.player(ctx, "name", name)
}

// PlayerByUUID fetches the player document for a Minecraft UUID. Both
// dashed and undashed forms are accepted.
func (c *Client) PlayerByUUID(ctx context.Context, id string) (*Player, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid player uuid %q", id)
	}
	return c.player(ctx, "uuid", parsed.String())
}

func (c *Client) player(ctx context.Context, param, value string) (*Player, error) {
	endpoint := fmt.Sprintf("%s/player?%s=%s", c.baseURL, param, url.QueryEscape(value))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building player request")
	}
	req.Header.Set("API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrUpstream, "requesting player: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return nil, ErrInvalidKey
	case http.StatusTooManyRequests:
		return nil, ErrThrottled
	default:
		return nil, errors.Wrapf(ErrUpstream, "unexpected status %d", resp.StatusCode)
	}

	var envelope playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrapf(ErrUpstream, "decoding player response: %v", err)
	}

	if !envelope.Success {
		if envelope.Throttle {
			return nil, ErrThrottled
		}
		return nil, errors.Wrapf(ErrUpstream, "api reported failure: %s", envelope.Cause)
	}
	if len(envelope.Player) == 0 || string(envelope.Player) == "null" {
		return nil, ErrPlayerNotFound
	}

	var player Player
	if err := json.Unmarshal(envelope.Player, &player); err != nil {
		return nil, errors.Wrapf(ErrUpstream, "decoding player document: %v", err)
	}

	c.log.Debugw("fetched player", param, value, "displayname", player.Displayname)
	return &player, nil
}
