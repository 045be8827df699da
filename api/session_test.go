package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	sessions := newSessionManager(testSessionSecret, time.Hour)

	cookie := sessionCookieFor(t, sessions, 42)
	assert.Equal(t, sessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	userID, err := sessions.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestSessionRejectsMissingCookie(t *testing.T) {
	sessions := newSessionManager(testSessionSecret, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := sessions.Resolve(req)
	assert.Error(t, err)
}

func TestSessionRejectsTamperedToken(t *testing.T) {
	sessions := newSessionManager(testSessionSecret, time.Hour)

	cookie := sessionCookieFor(t, sessions, 7)
	cookie.Value = cookie.Value + "x"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	_, err := sessions.Resolve(req)
	assert.Error(t, err)
}

func TestSessionRejectsForeignSignature(t *testing.T) {
	sessions := newSessionManager(testSessionSecret, time.Hour)
	other := newSessionManager("some-other-secret", time.Hour)

	cookie := sessionCookieFor(t, other, 7)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	_, err := sessions.Resolve(req)
	assert.Error(t, err)
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	expired := newSessionManager(testSessionSecret, -time.Hour)

	cookie := sessionCookieFor(t, expired, 7)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	sessions := newSessionManager(testSessionSecret, time.Hour)
	_, err := sessions.Resolve(req)
	assert.Error(t, err)
}

func TestClearExpiresCookie(t *testing.T) {
	sessions := newSessionManager(testSessionSecret, time.Hour)

	rec := httptest.NewRecorder()
	sessions.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
