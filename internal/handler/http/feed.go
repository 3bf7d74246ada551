package http

import (
	"net/http"

	"github.com/MKhiriev/go-search-keeper/internal/app"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	doc, err := h.services.FeedService.Feed(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFeed").Msg("error opening feed")
		http.Error(w, app.MsgFeedUnavailable, statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	serveDocument(w, r, doc)
}

func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	doc, err := h.services.FeedService.Image(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getImage").Str("image_id", id).Msg("error opening image")
		http.Error(w, app.MsgImageUnavailable, statusFromError(err))
		return
	}

	serveDocument(w, r, doc)
}

func serveDocument(w http.ResponseWriter, r *http.Request, doc store.Document) {
	defer doc.Content.Close()
	http.ServeContent(w, r, doc.Name, doc.ModTime, doc.Content)
}
