package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kamdevo/AniKam/internal/browse"
	"github.com/kamdevo/AniKam/internal/platform/api"
)

// Details handles GET /v1/anime/{id} and GET /v1/manga/{id}.
func Details(b Browser, typ browse.ContentType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := requestID(r)
		id, ok := idParam(chi.URLParam(r, "id"))
		if !ok {
			api.BadRequest(w, "INVALID_ID", "id must be a positive integer", rid, nil)
			return
		}
		m, err := b.Details(r.Context(), typ, id)
		if err != nil {
			writeUpstreamError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, m)
	}
}

// Random handles GET /v1/random/anime and GET /v1/random/manga.
func Random(b Browser, typ browse.ContentType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := b.Random(r.Context(), typ)
		if err != nil {
			writeUpstreamError(w, requestID(r), err)
			return
		}
		api.WriteJSON(w, http.StatusOK, m)
	}
}

// Characters handles GET /v1/anime/{id}/characters.
func Characters(b Browser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := requestID(r)
		id, ok := idParam(chi.URLParam(r, "id"))
		if !ok {
			api.BadRequest(w, "INVALID_ID", "id must be a positive integer", rid, nil)
			return
		}
		resp, err := b.Characters(r.Context(), id)
		if err != nil {
			writeUpstreamError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, resp)
	}
}

// Videos handles GET /v1/anime/{id}/videos.
func Videos(b Browser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := requestID(r)
		id, ok := idParam(chi.URLParam(r, "id"))
		if !ok {
			api.BadRequest(w, "INVALID_ID", "id must be a positive integer", rid, nil)
			return
		}
		resp, err := b.Videos(r.Context(), id)
		if err != nil {
			writeUpstreamError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, resp)
	}
}
