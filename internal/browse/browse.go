// Package browse is the consumer-facing catalog layer. It drives the Jikan
// client, normalizes records into media.Media, and decides when a failed
// fetch gets masked by the bundled fallback catalog instead of surfacing an
// error.
package browse

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kamdevo/AniKam/internal/jikan"
	"github.com/kamdevo/AniKam/internal/media"
	"github.com/kamdevo/AniKam/internal/platform/analytics"
)

// ContentType selects which catalog a browse call targets.
type ContentType string

const (
	ContentAnime ContentType = "anime"
	ContentManga ContentType = "manga"
	ContentAll   ContentType = "all"
)

// ErrBothSourcesFailed is returned when a combined search cannot reach
// either catalog.
var ErrBothSourcesFailed = errors.New("browse: anime and manga searches both failed")

// Page is one page of normalized results. Fallback marks pages served from
// the bundled catalog rather than the live API.
type Page struct {
	Items    []media.Media
	Page     int
	HasNext  bool
	Fallback bool
}

// Service wraps a jikan.Provider with normalization and fallback policy.
type Service struct {
	client   jikan.Provider
	log      *zap.Logger
	events   *analytics.Publisher
	fallback func() []media.Media
}

// New builds a Service. A nil logger is replaced with a no-op one; a nil
// events publisher disables usage events.
func New(client jikan.Provider, log *zap.Logger, events *analytics.Publisher) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, log: log, events: events, fallback: media.Fallback}
}

// SearchParams narrows a browse search. Zero values mean "no filter".
type SearchParams struct {
	Query   string
	Type    ContentType
	Genres  string
	Status  string
	OrderBy string
	Sort    string
	Page    int
	Limit   int
}

// shouldFallback is the single place the masking policy lives. A page that
// extends existing results never falls back, so pagination failures stay
// visible. First pages fall back on connectivity trouble, rate limiting,
// or when the caller asked for the default (empty-query) view.
func shouldFallback(err error, hasExisting bool, query string) bool {
	if hasExisting {
		return false
	}
	if jikan.IsNetwork(err) || jikan.IsRateLimited(err) {
		return true
	}
	return query == ""
}

func (s *Service) fallbackPage(typ ContentType) Page {
	items := s.fallback()
	if typ == ContentAnime || typ == ContentManga {
		filtered := items[:0]
		for _, m := range items {
			if string(m.Type) == string(typ) {
				filtered = append(filtered, m)
			}
		}
		items = filtered
	}
	return Page{Items: items, Page: 1, Fallback: true}
}

// Search queries one or both catalogs. For ContentAll the limit is split
// between the anime and manga searches and results are interleaved; the
// call only errors when both halves fail.
func (s *Service) Search(ctx context.Context, p SearchParams) (Page, error) {
	if p.Type == "" {
		p.Type = ContentAnime
	}
	// Without a query the combined view is just the anime browse page.
	if p.Type == ContentAll && p.Query == "" {
		p.Type = ContentAnime
	}
	appending := p.Page > 1
	s.events.Publish(analytics.SubjectSearchPerformed, "search_performed",
		map[string]any{"query": p.Query, "type": string(p.Type), "page": p.Page})

	switch p.Type {
	case ContentAnime:
		res, err := s.client.SearchAnime(ctx, jikan.SearchAnimeParams{
			Query:   p.Query,
			Genres:  p.Genres,
			Status:  p.Status,
			OrderBy: p.OrderBy,
			Sort:    p.Sort,
			Page:    p.Page,
			Limit:   p.Limit,
		})
		if err != nil {
			return s.recover(err, ContentAnime, appending, p.Query)
		}
		return listPage(media.FromAnimeList(res.Data), res.Pagination), nil

	case ContentManga:
		res, err := s.client.SearchManga(ctx, jikan.SearchMangaParams{
			Query:   p.Query,
			Genres:  p.Genres,
			Status:  p.Status,
			OrderBy: p.OrderBy,
			Sort:    p.Sort,
			Page:    p.Page,
			Limit:   p.Limit,
		})
		if err != nil {
			return s.recover(err, ContentManga, appending, p.Query)
		}
		return listPage(media.FromMangaList(res.Data), res.Pagination), nil

	case ContentAll:
		return s.searchBoth(ctx, p, appending)
	}
	return Page{}, errors.New("browse: unknown content type " + string(p.Type))
}

func (s *Service) searchBoth(ctx context.Context, p SearchParams, appending bool) (Page, error) {
	half := p.Limit / 2
	if half == 0 {
		half = p.Limit
	}

	anime, aerr := s.client.SearchAnime(ctx, jikan.SearchAnimeParams{
		Query: p.Query, Genres: p.Genres, Status: p.Status,
		OrderBy: p.OrderBy, Sort: p.Sort, Page: p.Page, Limit: half,
	})
	manga, merr := s.client.SearchManga(ctx, jikan.SearchMangaParams{
		Query: p.Query, Genres: p.Genres, Status: p.Status,
		OrderBy: p.OrderBy, Sort: p.Sort, Page: p.Page, Limit: half,
	})
	if aerr != nil && merr != nil {
		s.log.Warn("combined search failed on both catalogs",
			zap.Error(aerr), zap.NamedError("manga_error", merr))
		if shouldFallback(aerr, appending, p.Query) {
			s.events.Publish(analytics.SubjectFallbackServed, "fallback_served",
				map[string]any{"type": string(ContentAll), "kind": jikan.KindOf(aerr).String()})
			return s.fallbackPage(ContentAll), nil
		}
		return Page{}, errors.Join(ErrBothSourcesFailed, aerr, merr)
	}

	var items []media.Media
	var hasNext bool
	var page int
	if anime != nil {
		items = append(items, media.FromAnimeList(anime.Data)...)
		hasNext = hasNext || anime.Pagination.HasNextPage
		page = anime.Pagination.CurrentPage
	}
	if manga != nil {
		items = append(items, media.FromMangaList(manga.Data)...)
		hasNext = hasNext || manga.Pagination.HasNextPage
		if page == 0 {
			page = manga.Pagination.CurrentPage
		}
	}
	if appending {
		items = dedupe(items)
	}
	if page == 0 {
		page = max(p.Page, 1)
	}
	return Page{Items: items, Page: page, HasNext: hasNext}, nil
}

// TopAnime returns the highest-ranked anime page. A failed first page is
// served from the fallback catalog.
func (s *Service) TopAnime(ctx context.Context, page, limit int) (Page, error) {
	res, err := s.client.TopAnime(ctx, jikan.TopParams{Page: page, Limit: limit})
	if err != nil {
		return s.recover(err, ContentAnime, page > 1, "")
	}
	return listPage(media.FromAnimeList(res.Data), res.Pagination), nil
}

// TopManga returns the highest-ranked manga page.
func (s *Service) TopManga(ctx context.Context, page, limit int) (Page, error) {
	res, err := s.client.TopManga(ctx, jikan.TopParams{Page: page, Limit: limit})
	if err != nil {
		return s.recover(err, ContentManga, page > 1, "")
	}
	return listPage(media.FromMangaList(res.Data), res.Pagination), nil
}

// CurrentSeason returns this season's airing anime.
func (s *Service) CurrentSeason(ctx context.Context, page, limit int) (Page, error) {
	res, err := s.client.CurrentSeason(ctx, jikan.PageParams{Page: page, Limit: limit})
	if err != nil {
		return s.recover(err, ContentAnime, page > 1, "")
	}
	return listPage(media.FromAnimeList(res.Data), res.Pagination), nil
}

// Seasonal returns the anime that aired in a given year and season.
func (s *Service) Seasonal(ctx context.Context, year int, season string, page, limit int) (Page, error) {
	res, err := s.client.Seasonal(ctx, year, season, jikan.PageParams{Page: page, Limit: limit})
	if err != nil {
		return s.recover(err, ContentAnime, page > 1, "")
	}
	return listPage(media.FromAnimeList(res.Data), res.Pagination), nil
}

// Details fetches one entry by ID. Detail lookups never fall back; the
// caller asked for a specific record and a substitute would be a lie.
func (s *Service) Details(ctx context.Context, typ ContentType, id int) (media.Media, error) {
	s.events.Publish(analytics.SubjectMediaViewed, "media_viewed",
		map[string]any{"type": string(typ), "id": id})
	switch typ {
	case ContentManga:
		rec, err := s.client.GetMangaByID(ctx, id)
		if err != nil {
			return media.Media{}, err
		}
		return media.FromManga(*rec), nil
	default:
		rec, err := s.client.GetAnimeByID(ctx, id)
		if err != nil {
			return media.Media{}, err
		}
		return media.FromAnime(*rec), nil
	}
}

// Random fetches a random entry of the given type.
func (s *Service) Random(ctx context.Context, typ ContentType) (media.Media, error) {
	switch typ {
	case ContentManga:
		rec, err := s.client.RandomManga(ctx)
		if err != nil {
			return media.Media{}, err
		}
		return media.FromManga(*rec), nil
	default:
		rec, err := s.client.RandomAnime(ctx)
		if err != nil {
			return media.Media{}, err
		}
		return media.FromAnime(*rec), nil
	}
}

// Characters proxies the character list for an anime entry.
func (s *Service) Characters(ctx context.Context, id int) (*jikan.CharactersResponse, error) {
	return s.client.AnimeCharacters(ctx, id)
}

// Videos proxies trailers and episode videos for an anime entry.
func (s *Service) Videos(ctx context.Context, id int) (*jikan.VideosResponse, error) {
	return s.client.AnimeVideos(ctx, id)
}

func (s *Service) recover(err error, typ ContentType, hasExisting bool, query string) (Page, error) {
	if shouldFallback(err, hasExisting, query) {
		s.log.Warn("serving fallback catalog",
			zap.String("type", string(typ)),
			zap.String("kind", jikan.KindOf(err).String()),
			zap.Error(err))
		s.events.Publish(analytics.SubjectFallbackServed, "fallback_served",
			map[string]any{"type": string(typ), "kind": jikan.KindOf(err).String()})
		return s.fallbackPage(typ), nil
	}
	return Page{}, err
}

func listPage(items []media.Media, pg jikan.Pagination) Page {
	page := pg.CurrentPage
	if page == 0 {
		page = 1
	}
	return Page{Items: items, Page: page, HasNext: pg.HasNextPage}
}

// dedupe drops repeated IDs, keeping first occurrence order.
func dedupe(items []media.Media) []media.Media {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, m := range items {
		key := string(m.Type) + "/" + m.ID
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}
