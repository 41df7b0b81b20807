package session

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionCookie(t *testing.T) {
	store := NewStore(nil, "vg_session", 24*time.Hour)

	c := store.NewCookie("some-token")
	assert.Equal(t, "vg_session", c.Name)
	assert.Equal(t, "some-token", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 24*60*60, c.MaxAge)

	// An empty token produces an expiring cookie for logout
	expired := store.NewCookie("")
	assert.Equal(t, -1, expired.MaxAge)
}
