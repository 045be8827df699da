package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dailyink/blog-backend/errs"
	"github.com/dailyink/blog-backend/models"
	"github.com/dailyink/blog-backend/services"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     *services.PostService
	comments  *services.CommentService
}

func newPostHandler(posts *services.PostService, comments *services.CommentService) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
		comments:  comments,
	}
}

// PostCollection is the payload for the post-listing views.
type PostCollection struct {
	Posts []models.Post `json:"posts"`
	Total int           `json:"total"`
}

// PostWithComments is the payload for the single-post view.
type PostWithComments struct {
	Post     models.Post      `json:"post"`
	Comments []models.Comment `json:"comments"`
}

// getRecentPosts serves the front page: the newest four posts.
func (h postHandler) getRecentPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.posts.ListRecent(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, PostCollection{Posts: posts, Total: len(posts)})
	}
}

// getOldPosts serves the archive: everything beyond the newest four.
func (h postHandler) getOldPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.posts.ListArchive(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, PostCollection{Posts: posts, Total: len(posts)})
	}
}

// getPostsByAuthor lists the posts owned by the given external user id.
func (h postHandler) getPostsByAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID := chi.URLParam(r, "authorID")
		if authorID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing authorID"))
			return
		}

		posts, err := h.posts.ListByAuthor(r.Context(), authorID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, PostCollection{Posts: posts, Total: len(posts)})
	}
}

// showPost serves a single post together with its comments.
func (h postHandler) showPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.posts.Get(r.Context(), postID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.comments.ListForPost(r.Context(), postID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, PostWithComments{Post: *post, Comments: comments})
	}
}

// addComment appends the submitted comment to the post and sends the client
// back to the post page, mirroring the form flow.
func (h postHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.BadRequest("failed to parse form"))
			return
		}

		actor := UserFromCtx(r.Context())
		if _, err := h.comments.Add(r.Context(), postID, actor, r.PostFormValue("comment")); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.Redirect(w, r, fmt.Sprintf("/show_post/%d", postID))
	}
}

// getAddPost renders the empty post form.
func (h postHandler) getAddPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, formDescriptor{Fields: []string{"title", "subtitle", "body", "img_url"}})
	}
}

// createPost persists a new post owned by the acting admin.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.BadRequest("failed to parse form"))
			return
		}

		actor := UserFromCtx(r.Context())
		post, err := h.posts.Create(r.Context(), postInputFromForm(r), actor)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Uint("postId", post.ID).Str("admin", actor.Email).Msg("post created")
		h.responder.Redirect(w, r, "/")
	}
}

// getEditPost returns the current post so the edit form can be prefilled.
func (h postHandler) getEditPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.posts.Get(r.Context(), postID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, post)
	}
}

// updatePost applies the submitted fields to an existing post. Fields absent
// from the submission keep their prior values.
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.BadRequest("failed to parse form"))
			return
		}

		if _, err := h.posts.Update(r.Context(), postID, postInputFromForm(r)); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.Redirect(w, r, "/")
	}
}

// deletePost removes a post and all of its comments.
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.posts.Delete(r.Context(), postID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.Redirect(w, r, "/")
	}
}

// postInputFromForm picks the allow-listed fields out of the submission.
// Only keys actually present in the form become part of the input, which is
// what gives updates their partial semantics.
func postInputFromForm(r *http.Request) services.PostInput {
	var input services.PostInput
	if vals, ok := r.PostForm["title"]; ok && len(vals) > 0 {
		input.Title = &vals[0]
	}
	if vals, ok := r.PostForm["subtitle"]; ok && len(vals) > 0 {
		input.Subtitle = &vals[0]
	}
	if vals, ok := r.PostForm["body"]; ok && len(vals) > 0 {
		input.Body = &vals[0]
	}
	if vals, ok := r.PostForm["img_url"]; ok && len(vals) > 0 {
		input.ImgURL = &vals[0]
	}
	return input
}

func parsePostID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "postID")
	if raw == "" {
		return 0, errs.NewBadRequestError("missing postID")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid postID")
	}
	return uint(id), nil
}
