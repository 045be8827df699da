package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the route table. Every group sits behind session
// resolution; the gated groups add the login/admin checks on top.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)
		r.Use(auth.resolveSession)

		r.Get("/", handlers.postHandler.getRecentPosts())
		r.Get("/old_posts", handlers.postHandler.getOldPosts())
		r.Get("/get_blogs_by_name/{authorID}", handlers.postHandler.getPostsByAuthor())
		r.Get("/about", handlers.pagesHandler.about())

		r.Get("/register", handlers.authHandler.getRegister())
		r.Post("/register", handlers.authHandler.postRegister())
		r.Get("/login", handlers.authHandler.getLogin())
		r.Post("/login", handlers.authHandler.postLogin())
		r.Get("/logout", handlers.authHandler.logout())

		r.Get("/contact", handlers.contactHandler.getContact())
		r.Post("/contact", handlers.contactHandler.postContact())
	})

	// Login-gated routes
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)
		r.Use(auth.resolveSession)
		r.Use(auth.requireLogin)

		r.Get("/show_post/{postID}", handlers.postHandler.showPost())
		r.Post("/show_post/{postID}", handlers.postHandler.addComment())
	})

	// Admin-gated routes
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)
		r.Use(auth.resolveSession)
		r.Use(auth.requireAdmin)

		r.Get("/add", handlers.postHandler.getAddPost())
		r.Post("/add", handlers.postHandler.createPost())
		r.Get("/edit_post/{postID}", handlers.postHandler.getEditPost())
		r.Post("/edit_post/{postID}", handlers.postHandler.updatePost())
		r.Get("/delete_post/{postID}", handlers.postHandler.deletePost())
	})
}
