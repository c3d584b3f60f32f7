package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kamdevo/AniKam/internal/platform/api"
)

// TopAnime handles GET /v1/top/anime.
func TopAnime(b Browser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageLimit(r)
		pg, err := b.TopAnime(r.Context(), page, limit)
		if err != nil {
			writeUpstreamError(w, requestID(r), err)
			return
		}
		writePage(w, pg)
	}
}

// TopManga handles GET /v1/top/manga.
func TopManga(b Browser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageLimit(r)
		pg, err := b.TopManga(r.Context(), page, limit)
		if err != nil {
			writeUpstreamError(w, requestID(r), err)
			return
		}
		writePage(w, pg)
	}
}

// CurrentSeason handles GET /v1/seasons/now.
func CurrentSeason(b Browser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageLimit(r)
		pg, err := b.CurrentSeason(r.Context(), page, limit)
		if err != nil {
			writeUpstreamError(w, requestID(r), err)
			return
		}
		writePage(w, pg)
	}
}

var validSeasons = map[string]bool{"winter": true, "spring": true, "summer": true, "fall": true}

// Seasonal handles GET /v1/seasons/{year}/{season}.
func Seasonal(b Browser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := requestID(r)
		year, ok := idParam(chi.URLParam(r, "year"))
		if !ok || year < 1950 || year > 2100 {
			api.BadRequest(w, "INVALID_YEAR", "year must be a four-digit year", rid, nil)
			return
		}
		season := strings.ToLower(chi.URLParam(r, "season"))
		if !validSeasons[season] {
			api.BadRequest(w, "INVALID_SEASON", "season must be winter, spring, summer or fall", rid, nil)
			return
		}
		page, limit := pageLimit(r)
		pg, err := b.Seasonal(r.Context(), year, season, page, limit)
		if err != nil {
			writeUpstreamError(w, rid, err)
			return
		}
		writePage(w, pg)
	}
}
