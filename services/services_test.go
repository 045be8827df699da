package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dailyink/blog-backend/database"
	"github.com/dailyink/blog-backend/models"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// MaxOpenConns is pinned to 1 so the pool cannot hand out a second,
// empty :memory: database.
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

func registerUser(t *testing.T, auth *AuthService, name, email, password string, actor *models.User) *models.User {
	t.Helper()
	user, err := auth.Register(context.Background(), name, email, password, actor)
	require.NoError(t, err)
	return user
}

func strPtr(s string) *string {
	return &s
}

func fullPostInput(title string) PostInput {
	return PostInput{
		Title:    strPtr(title),
		Subtitle: strPtr(title + " subtitle"),
		Body:     strPtr("<p>" + title + " body</p>"),
		ImgURL:   strPtr("https://example.com/" + title + ".jpg"),
	}
}
