package api

import (
	"github.com/dailyink/blog-backend/database"
	"github.com/dailyink/blog-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, cfg map[string]string, sessions sessionManager) *routeHandlers {
	authService := services.NewAuthService(db.UserRepo())
	postService := services.NewPostService(db.PostRepo())
	commentService := services.NewCommentService(db.PostRepo(), db.CommentRepo())
	mailer := services.NewContactMailer(cfg)

	return &routeHandlers{
		authHandler:    newAuthHandler(authService, sessions),
		postHandler:    newPostHandler(postService, commentService),
		contactHandler: newContactHandler(mailer),
		pagesHandler:   newPagesHandler(),
	}
}
