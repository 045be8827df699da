package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailyink/blog-backend/database"
	"github.com/dailyink/blog-backend/services"
)

func newTestRouter(t *testing.T, db database.Database) http.Handler {
	t.Helper()
	return newRouter(db, withConfig(map[string]string{
		"SESSION_SECRET":   testSessionSecret,
		"ACCEPTED_ORIGINS": "*",
	}), withStartupTime(time.Now()))
}

func postForm(t *testing.T, router http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getPath(t *testing.T, router http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func firstCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestRegisterThenLoginFlow(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	rec := postForm(t, router, "/register", url.Values{
		"name":     {"Ada"},
		"email":    {"Ada@Example.com"},
		"password": {"hunter2"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	cookie := firstCookie(t, rec)
	assert.Equal(t, sessionCookieName, cookie.Name)

	// Duplicate registration, different case: conflict.
	rec = postForm(t, router, "/register", url.Values{
		"name":     {"Ada Again"},
		"email":    {"ada@example.COM"},
		"password": {"other"},
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Wrong password on login.
	rec = postForm(t, router, "/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"nope"},
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown account on login.
	rec = postForm(t, router, "/login", url.Values{
		"email":    {"ghost@example.com"},
		"password": {"hunter2"},
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Correct credentials establish a session.
	rec = postForm(t, router, "/login", url.Values{
		"email":    {"ADA@example.com"},
		"password": {"hunter2"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	firstCookie(t, rec)
}

func TestAdminGateOutcomesPerActor(t *testing.T) {
	db := newTestDB(t)
	admin, commentor := seedUsers(t, db)
	router := newTestRouter(t, db)
	sessions := newSessionManager(testSessionSecret, time.Hour)

	adminCookie := sessionCookieFor(t, sessions, admin.ID)
	commentorCookie := sessionCookieFor(t, sessions, commentor.ID)

	gated := []string{"/add", "/edit_post/1", "/delete_post/1"}

	for _, path := range gated {
		// Anonymous: redirected to login, never Forbidden.
		rec := getPath(t, router, path, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)

		// Authenticated non-admin: Forbidden.
		rec = getPath(t, router, path, commentorCookie)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}

	// Admin clears the gate; with no posts in storage the edit/delete
	// targets resolve to NotFound rather than a fault.
	rec := getPath(t, router, "/add", adminCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = getPath(t, router, "/edit_post/1", adminCookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = getPath(t, router, "/delete_post/1", adminCookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostAndCommentLifecycleOverRoutes(t *testing.T) {
	db := newTestDB(t)
	admin, commentor := seedUsers(t, db)
	router := newTestRouter(t, db)
	sessions := newSessionManager(testSessionSecret, time.Hour)

	adminCookie := sessionCookieFor(t, sessions, admin.ID)
	commentorCookie := sessionCookieFor(t, sessions, commentor.ID)

	// Admin publishes a post.
	rec := postForm(t, router, "/add", url.Values{
		"title":    {"Hello World"},
		"subtitle": {"The first one"},
		"body":     {"<p>welcome</p>"},
		"img_url":  {"https://example.com/hello.jpg"},
	}, adminCookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// It shows up on the front page.
	rec = getPath(t, router, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing PostCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Equal(t, 1, listing.Total)
	postID := listing.Posts[0].ID
	assert.Equal(t, admin.Name, listing.Posts[0].Author)

	// The post page requires login.
	rec = getPath(t, router, "/show_post/1", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	// A logged-in commentor can view and comment.
	rec = postForm(t, router, "/show_post/1", url.Values{
		"comment": {"great post"},
	}, commentorCookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = getPath(t, router, "/show_post/1", commentorCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var page PostWithComments
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Comments, 1)
	assert.Equal(t, "great post", page.Comments[0].Body)
	assert.Equal(t, commentor.Name, page.Comments[0].Author)

	// Partial edit keeps unsubmitted fields.
	rec = postForm(t, router, "/edit_post/1", url.Values{
		"subtitle": {"Edited subtitle"},
	}, adminCookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	posts := services.NewPostService(db.PostRepo())
	edited, err := posts.Get(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", edited.Title)
	assert.Equal(t, "Edited subtitle", edited.Subtitle)

	// Delete cascades to the comment.
	rec = getPath(t, router, "/delete_post/1", adminCookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	comments := services.NewCommentService(db.PostRepo(), db.CommentRepo())
	orphans, err := comments.ListForPost(context.Background(), postID)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestListsByAuthorOverRoutes(t *testing.T) {
	db := newTestDB(t)
	admin, _ := seedUsers(t, db)
	router := newTestRouter(t, db)
	sessions := newSessionManager(testSessionSecret, time.Hour)
	adminCookie := sessionCookieFor(t, sessions, admin.ID)

	rec := postForm(t, router, "/add", url.Values{
		"title":    {"Mine"},
		"subtitle": {"sub"},
		"body":     {"body"},
		"img_url":  {"https://example.com/a.jpg"},
	}, adminCookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = getPath(t, router, "/get_blogs_by_name/"+admin.UserID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing PostCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, 1, listing.Total)

	rec = getPath(t, router, "/get_blogs_by_name/nobody", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, 0, listing.Total)
}
