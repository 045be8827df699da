package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

type pagesHandler struct {
	responder Responder
}

func newPagesHandler() pagesHandler {
	logger := log.With().Str("handlerName", "pagesHandler").Logger()
	return pagesHandler{responder: NewResponder(logger)}
}

// about serves the static about page content.
func (h pagesHandler) about() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"title": "About",
			"page":  "about",
		})
	}
}
