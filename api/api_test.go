package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dailyink/blog-backend/database"
	"github.com/dailyink/blog-backend/models"
	"github.com/dailyink/blog-backend/services"
)

const testSessionSecret = "test-session-secret"

func newTestDB(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	return database.New(db)
}

// seedUsers creates one admin and one commentor for gate tests.
func seedUsers(t *testing.T, db database.Database) (admin, commentor *models.User) {
	t.Helper()
	auth := services.NewAuthService(db.UserRepo())

	admin, err := auth.EnsureAdmin(context.Background(), "Root", "root@example.com", "pw")
	require.NoError(t, err)

	commentor, err = auth.Register(context.Background(), "Ada", "ada@example.com", "pw", nil)
	require.NoError(t, err)
	return admin, commentor
}

// sessionCookieFor issues a session cookie for the given user the same way
// the login handler does.
func sessionCookieFor(t *testing.T, sessions sessionManager, userID uint) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, sessions.Issue(rec, userID))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}
