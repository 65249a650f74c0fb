package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobportal/pkg/cookie"
	"github.com/dmitrymomot/jobportal/pkg/session"
)

func TestCookieBinder(t *testing.T) {
	t.Parallel()

	// Relaxed manager defaults must not weaken the session cookie.
	cm := cookie.New(cookie.WithSecure(false), cookie.WithHTTPOnly(false), cookie.WithPath("/app"))
	b := session.NewCookieBinder(cm, "session", 30*24*time.Hour)

	t.Run("set", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, b.Set(rec, "raw-token"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "session", c.Name)
		assert.Equal(t, "raw-token", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Equal(t, 2592000, c.MaxAge)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := b.Get(r)
		assert.False(t, ok)

		r.AddCookie(&http.Cookie{Name: "session", Value: "raw-token"})
		got, ok := b.Get(r)
		assert.True(t, ok)
		assert.Equal(t, "raw-token", got)

		empty := httptest.NewRequest(http.MethodGet, "/", nil)
		empty.AddCookie(&http.Cookie{Name: "session", Value: ""})
		_, ok = b.Get(empty)
		assert.False(t, ok)
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		b.Clear(rec)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "session", cookies[0].Name)
		assert.Equal(t, "/", cookies[0].Path)
		assert.Less(t, cookies[0].MaxAge, 0)
		assert.Empty(t, cookies[0].Value)
	})

	assert.Equal(t, "session", b.Name())
}
