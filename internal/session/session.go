package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie carrying the opaque session ID.
const CookieName = "feedbacker_session"

const keyPrefix = "session:"

// sessionTTL is a sliding window, refreshed on every resolve.
var sessionTTL = 12 * time.Hour

// Manager maps opaque session IDs to authenticated usernames in a
// server-side store. A session holds exactly one field: the username.
type Manager struct {
	client Client
}

func NewManager(client Client) *Manager {
	return &Manager{
		client: client,
	}
}

func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return redis.NewClient(opts), nil
}

// Start creates a session for username and returns its ID.
func (m *Manager) Start(ctx context.Context, username string) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}

	if err := m.client.Set(ctx, keyPrefix+id, username, sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return id, nil
}

// Resolve returns the username a session ID belongs to. A missing or
// expired session resolves to the empty username, never an error, so an
// absent session key is always treated as anonymous.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", nil
	}

	username, err := m.client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("look up session: %w", err)
	}

	if err := m.client.Expire(ctx, keyPrefix+sessionID, sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("refresh session ttl: %w", err)
	}

	return username, nil
}

// Destroy removes the session. Destroying an unknown ID is a no-op.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := m.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
