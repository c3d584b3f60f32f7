package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/kamdevo/AniKam/internal/netmon"
)

// DefaultBaseURL is the public Jikan v4 API.
const DefaultBaseURL = "https://api.jikan.moe/v4"

// Client is the typed surface over the Jikan API. It composes the response
// cache, the pacing queue and the resilient fetcher: a cache hit returns
// immediately without touching the queue, a miss is paced through the queue
// and cached on success. The client holds no per-call state; pagination
// bookkeeping belongs to the caller.
type Client struct {
	baseURL string
	fetch   *Fetcher
	queue   *RequestQueue
	cache   Cache
	log     *zap.Logger
}

type Options struct {
	BaseURL    string
	CacheTTL   time.Duration
	MinSpacing time.Duration
	Retries    int           // attempts per request, default 3
	Timeout    time.Duration // per-attempt deadline, default 10s
	Monitor    *netmon.Monitor
	Logger     *zap.Logger

	// Optional NATS wiring for cache invalidation. Leave NATS nil to run
	// standalone.
	NATS              *nats.Conn
	InvalidateSubject string
}

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	fetch := NewFetcher(opts.Monitor, opts.Logger)
	if opts.Retries > 0 {
		fetch.Retries = opts.Retries
	}
	if opts.Timeout > 0 {
		fetch.Timeout = opts.Timeout
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		fetch:   fetch,
		queue:   NewRequestQueue(opts.MinSpacing),
		cache:   NewTTLCache(opts.CacheTTL, opts.NATS, opts.InvalidateSubject),
		log:     opts.Logger,
	}
}

// ClearCache drops every cached response.
func (c *Client) ClearCache() { c.cache.Clear() }

// QueueLen reports how many calls are waiting for an upstream slot.
func (c *Client) QueueLen() int { return c.queue.Len() }

// request resolves one endpoint: cache first, then the paced fetch path.
// Errors pass through untouched; fallback policy is the caller's concern.
func (c *Client) request(ctx context.Context, endpoint string, out any) error {
	if body, ok := c.cache.Get(endpoint); ok {
		c.log.Debug("cache hit", zap.String("endpoint", endpoint))
		return decodeBody(body, out)
	}

	body, err := c.queue.Do(ctx, func() (json.RawMessage, error) {
		return c.fetch.Fetch(ctx, c.baseURL+endpoint)
	})
	if err != nil {
		return err
	}
	if err := decodeBody(body, out); err != nil {
		return err
	}
	c.cache.Set(endpoint, body)
	return nil
}

func decodeBody(body json.RawMessage, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindParse, Message: "Received an unexpected response from the anime database.", Err: err}
	}
	return nil
}

// SearchAnimeParams are the optional filters for the /anime search endpoint.
// Zero values are omitted from the query string.
type SearchAnimeParams struct {
	Query    string  // q
	Type     string  // tv, movie, ova, special, ona, music
	Status   string  // airing, complete, upcoming
	Rating   string  // g, pg, pg13, r17, r, rx
	Genres   string  // comma-separated genre IDs
	OrderBy  string
	Sort     string // asc, desc
	Score    float64
	MinScore float64
	MaxScore float64
	Page     int
	Limit    int
}

func (p SearchAnimeParams) values() url.Values {
	v := url.Values{}
	setStr(v, "q", p.Query)
	setStr(v, "type", p.Type)
	setStr(v, "status", p.Status)
	setStr(v, "rating", p.Rating)
	setStr(v, "genres", p.Genres)
	setStr(v, "order_by", p.OrderBy)
	setStr(v, "sort", p.Sort)
	setFloat(v, "score", p.Score)
	setFloat(v, "min_score", p.MinScore)
	setFloat(v, "max_score", p.MaxScore)
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
	return v
}

// SearchMangaParams are the optional filters for the /manga search endpoint.
type SearchMangaParams struct {
	Query    string // q
	Type     string // manga, novel, lightnovel, oneshot, doujin, manhwa, manhua
	Status   string // publishing, complete, hiatus, discontinued, upcoming
	Genres   string
	OrderBy  string
	Sort     string
	Score    float64
	MinScore float64
	MaxScore float64
	Page     int
	Limit    int
}

func (p SearchMangaParams) values() url.Values {
	v := url.Values{}
	setStr(v, "q", p.Query)
	setStr(v, "type", p.Type)
	setStr(v, "status", p.Status)
	setStr(v, "genres", p.Genres)
	setStr(v, "order_by", p.OrderBy)
	setStr(v, "sort", p.Sort)
	setFloat(v, "score", p.Score)
	setFloat(v, "min_score", p.MinScore)
	setFloat(v, "max_score", p.MaxScore)
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
	return v
}

// TopParams filter the /top/anime and /top/manga endpoints.
type TopParams struct {
	Type   string
	Filter string // airing|publishing, upcoming, bypopularity, favorite
	Page   int
	Limit  int
}

func (p TopParams) values() url.Values {
	v := url.Values{}
	setStr(v, "type", p.Type)
	setStr(v, "filter", p.Filter)
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
	return v
}

// PageParams are plain pagination knobs for seasonal endpoints.
type PageParams struct {
	Page  int
	Limit int
}

func (p PageParams) values() url.Values {
	v := url.Values{}
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
	return v
}

// SearchAnime queries /anime with the given filters.
func (c *Client) SearchAnime(ctx context.Context, p SearchAnimeParams) (*ListResponse, error) {
	var out ListResponse
	if err := c.request(ctx, "/anime"+encodeQuery(p.values()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchManga queries /manga with the given filters.
func (c *Client) SearchManga(ctx context.Context, p SearchMangaParams) (*ListResponse, error) {
	var out ListResponse
	if err := c.request(ctx, "/manga"+encodeQuery(p.values()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAnimeByID fetches one anime record.
func (c *Client) GetAnimeByID(ctx context.Context, id int) (*Media, error) {
	if id <= 0 {
		return nil, fmt.Errorf("jikan: id required")
	}
	var out SingleResponse
	if err := c.request(ctx, "/anime/"+strconv.Itoa(id), &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// GetMangaByID fetches one manga record.
func (c *Client) GetMangaByID(ctx context.Context, id int) (*Media, error) {
	if id <= 0 {
		return nil, fmt.Errorf("jikan: id required")
	}
	var out SingleResponse
	if err := c.request(ctx, "/manga/"+strconv.Itoa(id), &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// TopAnime returns a page of /top/anime.
func (c *Client) TopAnime(ctx context.Context, p TopParams) (*ListResponse, error) {
	var out ListResponse
	if err := c.request(ctx, "/top/anime"+encodeQuery(p.values()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TopManga returns a page of /top/manga.
func (c *Client) TopManga(ctx context.Context, p TopParams) (*ListResponse, error) {
	var out ListResponse
	if err := c.request(ctx, "/top/manga"+encodeQuery(p.values()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Seasonal returns anime for a specific year and season.
func (c *Client) Seasonal(ctx context.Context, year int, season string, p PageParams) (*ListResponse, error) {
	if year <= 0 || strings.TrimSpace(season) == "" {
		return nil, fmt.Errorf("jikan: year and season required")
	}
	endpoint := fmt.Sprintf("/seasons/%d/%s%s", year, url.PathEscape(season), encodeQuery(p.values()))
	var out ListResponse
	if err := c.request(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentSeason returns anime airing in the current season.
func (c *Client) CurrentSeason(ctx context.Context, p PageParams) (*ListResponse, error) {
	var out ListResponse
	if err := c.request(ctx, "/seasons/now"+encodeQuery(p.values()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RandomAnime returns a single random anime record.
func (c *Client) RandomAnime(ctx context.Context) (*Media, error) {
	var out SingleResponse
	if err := c.request(ctx, "/random/anime", &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// RandomManga returns a single random manga record.
func (c *Client) RandomManga(ctx context.Context) (*Media, error) {
	var out SingleResponse
	if err := c.request(ctx, "/random/manga", &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// AnimeCharacters returns the character/voice-actor list for an anime.
func (c *Client) AnimeCharacters(ctx context.Context, id int) (*CharactersResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("jikan: id required")
	}
	var out CharactersResponse
	if err := c.request(ctx, fmt.Sprintf("/anime/%d/characters", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnimeVideos returns trailers, episode previews and music videos for an anime.
func (c *Client) AnimeVideos(ctx context.Context, id int) (*VideosResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("jikan: id required")
	}
	var out VideosResponse
	if err := c.request(ctx, fmt.Sprintf("/anime/%d/videos", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// encodeQuery renders a deterministic query string: url.Values.Encode sorts
// by key, so identical parameters always produce identical cache keys.
func encodeQuery(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func setStr(v url.Values, key, val string) {
	if strings.TrimSpace(val) != "" {
		v.Set(key, val)
	}
}

func setInt(v url.Values, key string, val int) {
	if val > 0 {
		v.Set(key, strconv.Itoa(val))
	}
}

func setFloat(v url.Values, key string, val float64) {
	if val > 0 {
		v.Set(key, strconv.FormatFloat(val, 'f', -1, 64))
	}
}
