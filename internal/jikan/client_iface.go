package jikan

import "context"

// Provider is the port for fetching metadata from the Jikan/MAL API.
// *Client is the production implementation; tests stub it.
type Provider interface {
	SearchAnime(ctx context.Context, p SearchAnimeParams) (*ListResponse, error)
	SearchManga(ctx context.Context, p SearchMangaParams) (*ListResponse, error)
	GetAnimeByID(ctx context.Context, id int) (*Media, error)
	GetMangaByID(ctx context.Context, id int) (*Media, error)
	TopAnime(ctx context.Context, p TopParams) (*ListResponse, error)
	TopManga(ctx context.Context, p TopParams) (*ListResponse, error)
	Seasonal(ctx context.Context, year int, season string, p PageParams) (*ListResponse, error)
	CurrentSeason(ctx context.Context, p PageParams) (*ListResponse, error)
	RandomAnime(ctx context.Context) (*Media, error)
	RandomManga(ctx context.Context) (*Media, error)
	AnimeCharacters(ctx context.Context, id int) (*CharactersResponse, error)
	AnimeVideos(ctx context.Context, id int) (*VideosResponse, error)
}

var _ Provider = (*Client)(nil)
