// Package session implements the server-side session store. A session is a
// small identity record held in Redis, keyed by an opaque token that travels
// in an HttpOnly cookie.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vite-gourmand/catering-service/internal/models"
)

// ErrNoSession is returned when the token does not map to a live session.
var ErrNoSession = errors.New("no session")

// Identity is the record established at login and held for the lifetime of
// the cookie-bound session.
type Identity struct {
	ID        uuid.UUID       `json:"id"`
	LastName  string          `json:"nom"`
	FirstName string          `json:"prenom"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
}

// Store manages sessions in Redis.
type Store struct {
	rdb        *redis.Client
	ttl        time.Duration
	cookieName string
}

// NewStore creates a session store. Sessions expire after ttl.
func NewStore(rdb *redis.Client, cookieName string, ttl time.Duration) *Store {
	return &Store{
		rdb:        rdb,
		ttl:        ttl,
		cookieName: cookieName,
	}
}

// Create stores the identity under a fresh opaque token and returns the token.
func (s *Store) Create(ctx context.Context, identity Identity) (string, error) {
	token := uuid.NewString()

	b, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.rdb.Set(ctx, s.key(token), b, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Get retrieves the identity bound to a token. ErrNoSession when the token
// is unknown or expired.
func (s *Store) Get(ctx context.Context, token string) (*Identity, error) {
	val, err := s.rdb.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return nil, ErrNoSession
	} else if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal([]byte(val), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &identity, nil
}

// Destroy removes the session bound to a token.
func (s *Store) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, s.key(token)).Err()
}

// CookieName returns the name of the session cookie.
func (s *Store) CookieName() string {
	return s.cookieName
}

// NewCookie builds the session cookie carrying a token. An empty token
// produces an expired cookie, used at logout.
func (s *Store) NewCookie(token string) *http.Cookie {
	c := &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	}
	if token == "" {
		c.MaxAge = -1
	}
	return c
}

func (s *Store) key(token string) string {
	return "session:" + token
}
