// Package handlers exposes the catalog over HTTP. Handlers are free
// functions closed over a Browser so tests can swap in stubs.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/kamdevo/AniKam/internal/browse"
	"github.com/kamdevo/AniKam/internal/jikan"
	"github.com/kamdevo/AniKam/internal/media"
	"github.com/kamdevo/AniKam/internal/platform/api"
	"github.com/kamdevo/AniKam/internal/platform/httpserver"
)

// Browser is the slice of the browse service the HTTP layer needs.
type Browser interface {
	Search(ctx context.Context, p browse.SearchParams) (browse.Page, error)
	TopAnime(ctx context.Context, page, limit int) (browse.Page, error)
	TopManga(ctx context.Context, page, limit int) (browse.Page, error)
	CurrentSeason(ctx context.Context, page, limit int) (browse.Page, error)
	Seasonal(ctx context.Context, year int, season string, page, limit int) (browse.Page, error)
	Details(ctx context.Context, typ browse.ContentType, id int) (media.Media, error)
	Random(ctx context.Context, typ browse.ContentType) (media.Media, error)
	Characters(ctx context.Context, id int) (*jikan.CharactersResponse, error)
	Videos(ctx context.Context, id int) (*jikan.VideosResponse, error)
}

type listResponse struct {
	Items    []media.Media `json:"items"`
	Page     int           `json:"page"`
	HasNext  bool          `json:"has_next"`
	Fallback bool          `json:"fallback"`
}

func writePage(w http.ResponseWriter, pg browse.Page) {
	items := pg.Items
	if items == nil {
		items = []media.Media{}
	}
	api.WriteJSON(w, http.StatusOK, listResponse{Items: items, Page: pg.Page, HasNext: pg.HasNext, Fallback: pg.Fallback})
}

// writeUpstreamError maps fetch error kinds onto gateway statuses: 429 for
// upstream rate limits, 504 for timeouts, 502 for connectivity and bad
// upstream responses, 500 otherwise.
func writeUpstreamError(w http.ResponseWriter, rid string, err error) {
	msg := err.Error()
	switch jikan.KindOf(err) {
	case jikan.KindRateLimited:
		api.RateLimited(w, "UPSTREAM_RATE_LIMITED", msg, rid, nil)
	case jikan.KindTimeout:
		api.GatewayTimeout(w, "UPSTREAM_TIMEOUT", msg, rid)
	case jikan.KindNetwork, jikan.KindHTTP, jikan.KindParse:
		api.BadGateway(w, "UPSTREAM_ERROR", msg, rid)
	default:
		api.Internal(w, rid)
	}
}

func requestID(r *http.Request) string {
	return httpserver.RequestIDFromContext(r.Context())
}

func parseIntParam(v string, def, min, max int) int {
	if strings.TrimSpace(v) == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}

func pageLimit(r *http.Request) (page, limit int) {
	q := r.URL.Query()
	page = parseIntParam(q.Get("page"), 1, 1, 10000)
	limit = parseIntParam(q.Get("limit"), 24, 1, 25)
	return page, limit
}

func contentType(v string) (browse.ContentType, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "anime":
		return browse.ContentAnime, true
	case "manga":
		return browse.ContentManga, true
	case "all":
		return browse.ContentAll, true
	}
	return "", false
}

func idParam(v string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
