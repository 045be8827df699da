package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dailyink/blog-backend/errs"
	"github.com/dailyink/blog-backend/services"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      *services.AuthService
	sessions  sessionManager
}

func newAuthHandler(auth *services.AuthService, sessions sessionManager) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      auth,
		sessions:  sessions,
	}
}

// formDescriptor tells the client which fields a form expects. GET requests
// on form routes return one of these instead of rendered HTML.
type formDescriptor struct {
	Fields []string `json:"fields"`
}

// getRegister renders the registration form. A logged-in non-admin has no
// business here and is sent back to the front page; an admin stays, since
// admins create further accounts through this same form.
func (h authHandler) getRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := UserFromCtx(r.Context())
		if actor != nil && !actor.IsAdmin() {
			h.responder.Redirect(w, r, "/")
			return
		}
		h.responder.WriteJSON(w, formDescriptor{Fields: []string{"name", "email", "password"}})
	}
}

// postRegister creates an account from the submitted form. When the actor is
// an admin the new account is created with the admin role and the active
// session is left untouched; otherwise the new user is logged in right away.
func (h authHandler) postRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := UserFromCtx(r.Context())
		if actor != nil && !actor.IsAdmin() {
			h.responder.Redirect(w, r, "/")
			return
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.BadRequest("failed to parse form"))
			return
		}

		name := r.PostFormValue("name")
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")
		if name == "" {
			h.responder.WriteError(w, errs.MissingField("name"))
			return
		}
		if email == "" {
			h.responder.WriteError(w, errs.MissingField("email"))
			return
		}
		if password == "" {
			h.responder.WriteError(w, errs.MissingField("password"))
			return
		}

		user, err := h.auth.Register(r.Context(), name, email, password, actor)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// The privileged branch never switches the active session to the
		// account it just created.
		if !actor.IsAdmin() {
			if err := h.sessions.Issue(w, user.ID); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		h.responder.Redirect(w, r, "/")
	}
}

// getLogin renders the login form; an authenticated user is redirected home.
func (h authHandler) getLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if UserFromCtx(r.Context()) != nil {
			h.responder.Redirect(w, r, "/")
			return
		}
		h.responder.WriteJSON(w, formDescriptor{Fields: []string{"email", "password"}})
	}
}

// postLogin authenticates a credential pair and establishes a session.
func (h authHandler) postLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if UserFromCtx(r.Context()) != nil {
			h.responder.Redirect(w, r, "/")
			return
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.BadRequest("failed to parse form"))
			return
		}

		user, err := h.auth.Authenticate(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.sessions.Issue(w, user.ID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.Redirect(w, r, "/")
	}
}

// logout clears the session cookie and sends the client home.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.Clear(w)
		h.responder.Redirect(w, r, "/")
	}
}
