package jikan

// Media is the raw upstream record shared by the anime and the manga
// endpoints. The two shapes overlap heavily; fields present on only one of
// them stay at their zero value for the other. Nullable counts and flags use
// pointers so "not provided" stays distinguishable from zero. Records are
// read-only once decoded.
type Media struct {
	MalID         int      `json:"mal_id"`
	URL           string   `json:"url"`
	Images        Images   `json:"images"`
	Trailer       *Trailer `json:"trailer,omitempty"`
	Approved      bool     `json:"approved"`
	Titles        []Title  `json:"titles"`
	Title         string   `json:"title"`
	TitleEnglish  string   `json:"title_english"`
	TitleJapanese string   `json:"title_japanese"`
	TitleSynonyms []string `json:"title_synonyms"`
	Type          string   `json:"type"`
	Source        string   `json:"source"`

	// Anime-shaped fields.
	Episodes  *int       `json:"episodes,omitempty"`
	Airing    bool       `json:"airing"`
	Aired     *DateRange `json:"aired,omitempty"`
	Duration  string     `json:"duration,omitempty"`
	Rating    string     `json:"rating,omitempty"`
	Season    string     `json:"season,omitempty"`
	Year      *int       `json:"year,omitempty"`
	Broadcast *Broadcast `json:"broadcast,omitempty"`

	// Manga-shaped fields. Publishing stays nil for anime records, which is
	// what structural dispatch keys on.
	Chapters   *int       `json:"chapters,omitempty"`
	Volumes    *int       `json:"volumes,omitempty"`
	Publishing *bool      `json:"publishing,omitempty"`
	Published  *DateRange `json:"published,omitempty"`

	Status     string   `json:"status"`
	Score      *float64 `json:"score"`
	ScoredBy   *int     `json:"scored_by"`
	Rank       *int     `json:"rank"`
	Popularity *int     `json:"popularity"`
	Members    *int     `json:"members"`
	Favorites  *int     `json:"favorites"`
	Synopsis   string   `json:"synopsis"`
	Background string   `json:"background"`

	Producers      []NamedRef `json:"producers,omitempty"`
	Licensors      []NamedRef `json:"licensors,omitempty"`
	Studios        []NamedRef `json:"studios,omitempty"`
	Authors        []NamedRef `json:"authors,omitempty"`
	Serializations []NamedRef `json:"serializations,omitempty"`
	Genres         []NamedRef `json:"genres"`
	ExplicitGenres []NamedRef `json:"explicit_genres"`
	Themes         []NamedRef `json:"themes"`
	Demographics   []NamedRef `json:"demographics"`
}

// NamedRef is the upstream's generic reference shape (genres, studios,
// licensors, authors, ...).
type NamedRef struct {
	MalID int    `json:"mal_id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

type Title struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

type Images struct {
	JPG  ImageSet `json:"jpg"`
	WebP ImageSet `json:"webp"`
}

type ImageSet struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url"`
	LargeImageURL string `json:"large_image_url"`
}

type Trailer struct {
	YoutubeID string `json:"youtube_id"`
	URL       string `json:"url"`
	EmbedURL  string `json:"embed_url"`
}

// DateRange covers both aired (anime) and published (manga) spans.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
	Prop struct {
		From DateParts `json:"from"`
		To   DateParts `json:"to"`
	} `json:"prop"`
	String string `json:"string"`
}

type DateParts struct {
	Day   *int `json:"day"`
	Month *int `json:"month"`
	Year  *int `json:"year"`
}

type Broadcast struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
	String   string `json:"string"`
}

// Pagination is passed through verbatim from upstream; the client never
// reinterprets it.
type Pagination struct {
	LastVisiblePage int             `json:"last_visible_page"`
	HasNextPage     bool            `json:"has_next_page"`
	CurrentPage     int             `json:"current_page"`
	Items           PaginationItems `json:"items"`
}

type PaginationItems struct {
	Count   int `json:"count"`
	Total   int `json:"total"`
	PerPage int `json:"per_page"`
}

// ListResponse is the envelope for search, top and seasonal endpoints.
type ListResponse struct {
	Data       []Media    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// SingleResponse is the envelope for get-by-id and random endpoints.
type SingleResponse struct {
	Data Media `json:"data"`
}

// CharactersResponse is the envelope for /anime/{id}/characters.
type CharactersResponse struct {
	Data []CharacterEntry `json:"data"`
}

type CharacterEntry struct {
	Character struct {
		MalID  int    `json:"mal_id"`
		URL    string `json:"url"`
		Images Images `json:"images"`
		Name   string `json:"name"`
	} `json:"character"`
	Role        string `json:"role"`
	VoiceActors []struct {
		Person struct {
			MalID  int    `json:"mal_id"`
			URL    string `json:"url"`
			Images Images `json:"images"`
			Name   string `json:"name"`
		} `json:"person"`
		Language string `json:"language"`
	} `json:"voice_actors"`
}

// VideosResponse is the envelope for /anime/{id}/videos.
type VideosResponse struct {
	Data Videos `json:"data"`
}

type Videos struct {
	Promo []struct {
		Title   string  `json:"title"`
		Trailer Trailer `json:"trailer"`
	} `json:"promo"`
	Episodes []struct {
		MalID   int    `json:"mal_id"`
		Title   string `json:"title"`
		Episode string `json:"episode"`
		URL     string `json:"url"`
		Images  Images `json:"images"`
	} `json:"episodes"`
	MusicVideos []struct {
		Title string  `json:"title"`
		Video Trailer `json:"video"`
		Meta  struct {
			Title  string `json:"title"`
			Author string `json:"author"`
		} `json:"meta"`
	} `json:"music_videos"`
}
