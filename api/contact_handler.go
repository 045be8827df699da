package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dailyink/blog-backend/errs"
	"github.com/dailyink/blog-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    *services.ContactMailer
}

func newContactHandler(mailer *services.ContactMailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

func (h contactHandler) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, formDescriptor{Fields: []string{"name", "email", "phone", "message"}})
	}
}

// postContact forwards the submission to the site owner's inbox.
func (h contactHandler) postContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.BadRequest("failed to parse form"))
			return
		}

		name := r.PostFormValue("name")
		if name == "" {
			h.responder.WriteError(w, errs.MissingField("name"))
			return
		}

		err := h.mailer.Send(
			name,
			r.PostFormValue("email"),
			r.PostFormValue("phone"),
			r.PostFormValue("message"),
		)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Thank You, I will be in touch shortly.",
			"status":  "ok",
		})
	}
}
