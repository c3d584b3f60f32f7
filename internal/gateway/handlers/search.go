package handlers

import (
	"net/http"
	"strings"

	"github.com/kamdevo/AniKam/internal/browse"
	"github.com/kamdevo/AniKam/internal/platform/api"
)

// Search handles GET /v1/search. Accepts q, type (anime|manga|all),
// genres, status, order_by, sort, page and limit.
func Search(b Browser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := requestID(r)
		q := r.URL.Query()

		typ, ok := contentType(q.Get("type"))
		if !ok {
			api.BadRequest(w, "INVALID_TYPE", "type must be anime, manga or all", rid, nil)
			return
		}
		page, limit := pageLimit(r)

		pg, err := b.Search(r.Context(), browse.SearchParams{
			Query:   strings.TrimSpace(q.Get("q")),
			Type:    typ,
			Genres:  strings.TrimSpace(q.Get("genres")),
			Status:  strings.TrimSpace(q.Get("status")),
			OrderBy: strings.TrimSpace(q.Get("order_by")),
			Sort:    strings.TrimSpace(q.Get("sort")),
			Page:    page,
			Limit:   limit,
		})
		if err != nil {
			writeUpstreamError(w, rid, err)
			return
		}
		writePage(w, pg)
	}
}
