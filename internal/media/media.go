// Package media defines the unified catalog model and the normalization of
// raw upstream records into it.
package media

// Type discriminates anime from manga entries.
type Type string

const (
	TypeAnime Type = "anime"
	TypeManga Type = "manga"
)

// Status is the closed lifecycle set every upstream status string maps into.
type Status string

const (
	StatusAiring    Status = "airing"
	StatusCompleted Status = "completed"
	StatusUpcoming  Status = "upcoming"
	StatusHiatus    Status = "hiatus"
)

// Genre values are produced only by the adapter's allow-list; nothing else
// constructs them.
type Genre string

const (
	GenreAction        Genre = "Action"
	GenreAdventure     Genre = "Adventure"
	GenreComedy        Genre = "Comedy"
	GenreDrama         Genre = "Drama"
	GenreFantasy       Genre = "Fantasy"
	GenreHorror        Genre = "Horror"
	GenreRomance       Genre = "Romance"
	GenreSciFi         Genre = "Sci-Fi"
	GenreSliceOfLife   Genre = "Slice of Life"
	GenreSports        Genre = "Sports"
	GenreSupernatural  Genre = "Supernatural"
	GenreThriller      Genre = "Thriller"
	GenreMystery       Genre = "Mystery"
	GenreHistorical    Genre = "Historical"
	GenrePsychological Genre = "Psychological"
	GenreMecha         Genre = "Mecha"
	GenreMusic         Genre = "Music"
	GenreSchool        Genre = "School"
)

// Media is the single normalized shape the rest of the system consumes.
// Type-specific counters stay nil when not applicable so "no data" never
// reads as zero. Instances are immutable once built.
type Media struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	TitleEnglish  string   `json:"title_english,omitempty"`
	TitleJapanese string   `json:"title_japanese,omitempty"`
	Description   string   `json:"description"`
	Synopsis      string   `json:"synopsis"`
	Type          Type     `json:"type"`
	Status        Status   `json:"status"`
	Genres        []Genre  `json:"genres"`
	ReleaseYear   int      `json:"release_year"`
	EndYear       *int     `json:"end_year,omitempty"`
	Episodes      *int     `json:"episodes,omitempty"` // anime
	Seasons       *int     `json:"seasons,omitempty"`  // anime
	Chapters      *int     `json:"chapters,omitempty"` // manga
	Volumes       *int     `json:"volumes,omitempty"`  // manga
	Duration      *int     `json:"duration,omitempty"` // episode minutes, anime
	Rating        float64  `json:"rating"`
	Popularity    int      `json:"popularity"`
	CoverImage    string   `json:"cover_image"`
	BannerImage   string   `json:"banner_image"`
	Trailer       string   `json:"trailer,omitempty"` // YouTube video ID, anime
	Studio        string   `json:"studio,omitempty"`
	Author        string   `json:"author,omitempty"`
	Source        string   `json:"source,omitempty"`
	Platforms     []string `json:"platforms"`
	Tags          []string `json:"tags"`
	AgeRating     string   `json:"age_rating"`
	MALScore      *float64 `json:"mal_score,omitempty"`
}
