package media

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kamdevo/AniKam/internal/jikan"
)

const (
	maxGenres    = 6
	maxPlatforms = 5
	maxTags      = 8
)

// genreAllowList translates upstream genre names into the internal enum.
// Unrecognized genres are dropped outright; the adapter is the sole
// validator of Media.Genres.
var genreAllowList = map[string]Genre{
	"Action":          GenreAction,
	"Adventure":       GenreAdventure,
	"Comedy":          GenreComedy,
	"Drama":           GenreDrama,
	"Fantasy":         GenreFantasy,
	"Horror":          GenreHorror,
	"Romance":         GenreRomance,
	"Sci-Fi":          GenreSciFi,
	"Science Fiction": GenreSciFi,
	"Slice of Life":   GenreSliceOfLife,
	"Sports":          GenreSports,
	"Supernatural":    GenreSupernatural,
	"Thriller":        GenreThriller,
	"Mystery":         GenreMystery,
	"Historical":      GenreHistorical,
	"Psychological":   GenrePsychological,
	"Mecha":           GenreMecha,
	"Music":           GenreMusic,
	"School":          GenreSchool,
}

// platformAliases shortens well-known licensor names. Unlike genres,
// unrecognized names pass through unchanged.
var platformAliases = map[string]string{
	"Funimation":         "Funimation",
	"Crunchyroll":        "Crunchyroll",
	"Netflix":            "Netflix",
	"Hulu":               "Hulu",
	"Adult Swim":         "Adult Swim",
	"Disney+":            "Disney+",
	"Amazon Prime Video": "Prime Video",
	"VIZ Media":          "VIZ",
	"Sentai Filmworks":   "Sentai",
}

// defaultAnimePlatforms is substituted when licensor translation yields
// nothing; a catalog entry never shows zero platforms.
var defaultAnimePlatforms = []string{"Crunchyroll", "MyAnimeList"}

var defaultMangaPlatforms = []string{"MyAnimeList", "MangaPlus", "Viz Media"}

var ageRatings = map[string]string{
	"G - All Ages":                   "G",
	"PG - Children":                  "PG",
	"PG-13 - Teens 13 or older":      "PG-13",
	"R - 17+ (violence & profanity)": "R",
	"R+ - Mild Nudity":               "R+",
	"Rx - Hentai":                    "X",
}

// FromAnime normalizes one anime-shaped record.
func FromAnime(rec jikan.Media) Media {
	m := Media{
		ID:            strconv.Itoa(rec.MalID),
		Title:         rec.Title,
		TitleEnglish:  fallbackStr(rec.TitleEnglish, rec.Title),
		TitleJapanese: rec.TitleJapanese,
		Description:   shortDescription(rec.Synopsis),
		Synopsis:      fallbackStr(rec.Synopsis, "No synopsis available."),
		Type:          TypeAnime,
		Status:        mapStatus(rec.Status, rec.Airing),
		Genres:        mapGenres(rec.Genres, rec.ExplicitGenres),
		ReleaseYear:   animeReleaseYear(rec),
		EndYear:       rangeYear(rec.Aired, false),
		Episodes:      rec.Episodes,
		Duration:      ParseDuration(rec.Duration),
		Rating:        deref(rec.Score),
		Popularity:    deref(rec.Popularity),
		CoverImage:    bestImage(rec.Images),
		BannerImage:   bestImage(rec.Images),
		Studio:        firstName(rec.Studios),
		Author:        firstName(rec.Producers),
		Source:        rec.Source,
		Platforms:     mapPlatforms(rec.Licensors),
		Tags:          extractTags(rec.Themes, rec.Demographics, rec.Source),
		AgeRating:     mapAgeRating(rec.Rating),
		MALScore:      rec.Score,
	}
	if rec.Trailer != nil {
		m.Trailer = rec.Trailer.YoutubeID
	}
	return m
}

// FromManga normalizes one manga-shaped record. Anime-only fields
// (episodes, duration, trailer) stay unset.
func FromManga(rec jikan.Media) Media {
	publishing := rec.Publishing != nil && *rec.Publishing
	return Media{
		ID:            strconv.Itoa(rec.MalID),
		Title:         rec.Title,
		TitleEnglish:  fallbackStr(rec.TitleEnglish, rec.Title),
		TitleJapanese: rec.TitleJapanese,
		Description:   shortDescription(rec.Synopsis),
		Synopsis:      fallbackStr(rec.Synopsis, "No synopsis available."),
		Type:          TypeManga,
		Status:        mapStatus(rec.Status, publishing),
		Genres:        mapGenres(rec.Genres, rec.ExplicitGenres),
		ReleaseYear:   mangaReleaseYear(rec),
		EndYear:       rangeYear(rec.Published, false),
		Chapters:      rec.Chapters,
		Volumes:       rec.Volumes,
		Rating:        deref(rec.Score),
		Popularity:    deref(rec.Popularity),
		CoverImage:    bestImage(rec.Images),
		BannerImage:   bestImage(rec.Images),
		Studio:        firstName(rec.Serializations),
		Author:        firstName(rec.Authors),
		Platforms:     append([]string(nil), defaultMangaPlatforms...),
		Tags:          extractTags(rec.Themes, rec.Demographics, "Manga"),
		AgeRating:     "Not Rated",
		MALScore:      rec.Score,
	}
}

// FromAnimeList normalizes a page of anime records.
func FromAnimeList(recs []jikan.Media) []Media {
	out := make([]Media, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromAnime(r))
	}
	return out
}

// FromMangaList normalizes a page of manga records.
func FromMangaList(recs []jikan.Media) []Media {
	out := make([]Media, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromManga(r))
	}
	return out
}

// FromMixedList dispatches each record structurally. Callers that know
// which endpoint produced the records should use the typed variants; this
// exists for genuinely mixed arrays only, and its chapter/volume sniffing
// breaks if upstream ever adds those fields to anime records.
func FromMixedList(recs []jikan.Media) []Media {
	out := make([]Media, 0, len(recs))
	for _, r := range recs {
		if IsMangaRecord(r) {
			out = append(out, FromManga(r))
		} else {
			out = append(out, FromAnime(r))
		}
	}
	return out
}

// IsMangaRecord detects a manga-shaped record by the presence of
// manga-specific fields.
func IsMangaRecord(rec jikan.Media) bool {
	return rec.Chapters != nil || rec.Volumes != nil || rec.Publishing != nil
}

// mapStatus folds upstream free-text status into the closed Status set.
// "currently airing"/"publishing" resolve to airing only when the boolean
// flag agrees; upstream briefly disagrees with itself around transitions
// and the flag wins.
func mapStatus(upstream string, active bool) Status {
	switch strings.ToLower(strings.TrimSpace(upstream)) {
	case "finished airing", "complete", "finished":
		return StatusCompleted
	case "currently airing", "publishing":
		if active {
			return StatusAiring
		}
		return StatusCompleted
	case "not yet aired", "not yet published", "upcoming":
		return StatusUpcoming
	case "on hiatus", "hiatus":
		return StatusHiatus
	case "discontinued":
		return StatusCompleted
	default:
		if active {
			return StatusAiring
		}
		return StatusCompleted
	}
}

func mapGenres(groups ...[]jikan.NamedRef) []Genre {
	out := make([]Genre, 0, maxGenres)
	for _, group := range groups {
		for _, ref := range group {
			g, ok := genreAllowList[ref.Name]
			if !ok {
				continue
			}
			out = append(out, g)
			if len(out) == maxGenres {
				return out
			}
		}
	}
	return out
}

var (
	durationMinRe = regexp.MustCompile(`(\d+)\s*min`)
	durationHrRe  = regexp.MustCompile(`(\d+)\s*hr`)
)

// ParseDuration extracts total minutes from upstream strings like
// "24 min per ep" or "1 hr 30 min per ep". No recognizable component
// yields nil, never zero.
func ParseDuration(s string) *int {
	if s == "" {
		return nil
	}
	minutes := 0
	if m := durationHrRe.FindStringSubmatch(s); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			minutes += h * 60
		}
	}
	if m := durationMinRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			minutes += n
		}
	}
	if minutes <= 0 {
		return nil
	}
	return &minutes
}

func mapPlatforms(licensors []jikan.NamedRef) []string {
	out := make([]string, 0, maxPlatforms)
	for _, ref := range licensors {
		name := ref.Name
		if alias, ok := platformAliases[name]; ok {
			name = alias
		}
		if name == "" || name == "Unknown" {
			continue
		}
		out = append(out, name)
		if len(out) == maxPlatforms {
			break
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultAnimePlatforms...)
	}
	return out
}

func mapAgeRating(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "Not Rated"
	}
	if short, ok := ageRatings[raw]; ok {
		return short
	}
	if tok := strings.Fields(raw); len(tok) > 0 {
		return tok[0]
	}
	return "Not Rated"
}

func extractTags(themes, demographics []jikan.NamedRef, source string) []string {
	tags := make([]string, 0, maxTags)
	for _, t := range themes {
		tags = append(tags, t.Name)
	}
	for _, d := range demographics {
		tags = append(tags, d.Name)
	}
	if source != "" && source != "Unknown" {
		tags = append(tags, "Based on "+source)
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

func animeReleaseYear(rec jikan.Media) int {
	if y := rangeYear(rec.Aired, true); y != nil {
		return *y
	}
	if rec.Year != nil && *rec.Year > 0 {
		return *rec.Year
	}
	return time.Now().Year()
}

func mangaReleaseYear(rec jikan.Media) int {
	if y := rangeYear(rec.Published, true); y != nil {
		return *y
	}
	return time.Now().Year()
}

func rangeYear(r *jikan.DateRange, from bool) *int {
	if r == nil {
		return nil
	}
	parts := r.Prop.To
	if from {
		parts = r.Prop.From
	}
	if parts.Year == nil || *parts.Year <= 0 {
		return nil
	}
	y := *parts.Year
	return &y
}

func bestImage(img jikan.Images) string {
	if img.JPG.LargeImageURL != "" {
		return img.JPG.LargeImageURL
	}
	return img.JPG.ImageURL
}

func firstName(refs []jikan.NamedRef) string {
	if len(refs) == 0 {
		return ""
	}
	return refs[0].Name
}

func shortDescription(synopsis string) string {
	if synopsis == "" {
		return "No description available."
	}
	r := []rune(synopsis)
	if len(r) <= 200 {
		return synopsis
	}
	return string(r[:200]) + "..."
}

func fallbackStr(v, fb string) string {
	if v != "" {
		return v
	}
	return fb
}

func deref[T int | float64](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
