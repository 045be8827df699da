package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dailyink/blog-backend/errs"
)

const sessionCookieName = "blog_session"

// sessionManager issues and verifies the signed session cookie. The cookie
// value is an HS256 JWT whose subject is the user's numeric primary key.
type sessionManager struct {
	secret []byte
	ttl    time.Duration
}

func newSessionManager(secret string, ttl time.Duration) sessionManager {
	return sessionManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue logs the user in by setting the session cookie on the response.
func (m sessionManager) Issue(w http.ResponseWriter, userID uint) error {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return errs.NewInternalError("failed to sign session token")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear logs the user out by expiring the session cookie.
func (m sessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Resolve extracts and verifies the session cookie, returning the user's
// primary key. Any failure (no cookie, bad signature, expiry) yields an
// invalid-session error; callers treat that as anonymous.
func (m sessionManager) Resolve(r *http.Request) (uint, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return 0, errs.NewInvalidSessionError()
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidSession
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errs.NewInvalidSessionError()
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, errs.NewInvalidSessionError()
	}
	return uint(userID), nil
}
