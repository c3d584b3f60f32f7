package media

import (
	"strings"
	"testing"
	"time"

	"github.com/kamdevo/AniKam/internal/jikan"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func boolp(v bool) *bool { return &v }

func refs(names ...string) []jikan.NamedRef {
	out := make([]jikan.NamedRef, len(names))
	for i, n := range names {
		out[i] = jikan.NamedRef{Name: n}
	}
	return out
}

func airedFrom(year int) *jikan.DateRange {
	r := &jikan.DateRange{}
	r.Prop.From.Year = intp(year)
	return r
}

func TestMapGenres_AllowListAndCap(t *testing.T) {
	got := mapGenres(refs("Action", "Award Winning", "Sci-Fi", "Gourmet", "Drama"))
	want := []Genre{GenreAction, GenreSciFi, GenreDrama}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}

	// Longer input caps at six across both groups.
	got = mapGenres(
		refs("Action", "Adventure", "Comedy", "Drama", "Fantasy"),
		refs("Horror", "Romance"),
	)
	if len(got) != 6 {
		t.Fatalf("expected cap at 6 genres, got %d: %v", len(got), got)
	}
}

func TestMapGenres_ScienceFictionAlias(t *testing.T) {
	got := mapGenres(refs("Science Fiction"))
	if len(got) != 1 || got[0] != GenreSciFi {
		t.Fatalf("expected Sci-Fi, got %v", got)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want *int
	}{
		{"24 min per ep", intp(24)},
		{"1 hr 30 min", intp(90)},
		{"2 hr", intp(120)},
		{"Unknown", nil},
		{"", nil},
	}
	for _, c := range cases {
		got := ParseDuration(c.in)
		switch {
		case c.want == nil && got != nil:
			t.Errorf("%q: want nil, got %d", c.in, *got)
		case c.want != nil && got == nil:
			t.Errorf("%q: want %d, got nil", c.in, *c.want)
		case c.want != nil && *got != *c.want:
			t.Errorf("%q: want %d, got %d", c.in, *c.want, *got)
		}
	}
}

func TestMapPlatforms_AliasPassThroughAndDefault(t *testing.T) {
	got := mapPlatforms(refs("Amazon Prime Video", "Some Tiny Licensor"))
	if len(got) != 2 || got[0] != "Prime Video" || got[1] != "Some Tiny Licensor" {
		t.Fatalf("unexpected platforms %v", got)
	}

	got = mapPlatforms(nil)
	if len(got) != len(defaultAnimePlatforms) {
		t.Fatalf("expected default platforms, got %v", got)
	}

	got = mapPlatforms(refs("Unknown", ""))
	if len(got) != len(defaultAnimePlatforms) {
		t.Fatalf("junk licensors should fall back to defaults, got %v", got)
	}
}

func TestMapPlatforms_Cap(t *testing.T) {
	got := mapPlatforms(refs("A", "B", "C", "D", "E", "F", "G"))
	if len(got) != maxPlatforms {
		t.Fatalf("expected cap at %d, got %d", maxPlatforms, len(got))
	}
}

func TestMapAgeRating(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PG-13 - Teens 13 or older", "PG-13"},
		{"R - 17+ (violence & profanity)", "R"},
		{"R+ - Something New", "R+"},
		{"", "Not Rated"},
		{"   ", "Not Rated"},
	}
	for _, c := range cases {
		if got := mapAgeRating(c.in); got != c.want {
			t.Errorf("%q: want %q, got %q", c.in, c.want, got)
		}
	}
}

func TestMapStatus(t *testing.T) {
	cases := []struct {
		upstream string
		active   bool
		want     Status
	}{
		{"Finished Airing", false, StatusCompleted},
		{"Currently Airing", true, StatusAiring},
		{"Currently Airing", false, StatusCompleted},
		{"Publishing", true, StatusAiring},
		{"Not yet aired", false, StatusUpcoming},
		{"Not yet published", false, StatusUpcoming},
		{"On Hiatus", false, StatusHiatus},
		{"Discontinued", false, StatusCompleted},
		{"something weird", true, StatusAiring},
		{"something weird", false, StatusCompleted},
	}
	for _, c := range cases {
		if got := mapStatus(c.upstream, c.active); got != c.want {
			t.Errorf("%q (active=%v): want %s, got %s", c.upstream, c.active, c.want, got)
		}
	}
}

func TestExtractTags_SourceAndCap(t *testing.T) {
	got := extractTags(refs("Military", "Survival"), refs("Shounen"), "Manga")
	if len(got) != 4 || got[3] != "Based on Manga" {
		t.Fatalf("unexpected tags %v", got)
	}

	got = extractTags(refs("a", "b", "c", "d", "e", "f", "g", "h", "i"), nil, "Manga")
	if len(got) != maxTags {
		t.Fatalf("expected cap at %d, got %d", maxTags, len(got))
	}

	got = extractTags(nil, nil, "Unknown")
	if len(got) != 0 {
		t.Fatalf("unknown source must not produce a tag, got %v", got)
	}
}

func TestFromAnime_FullRecord(t *testing.T) {
	rec := jikan.Media{
		MalID:         16498,
		Title:         "Shingeki no Kyojin",
		TitleEnglish:  "Attack on Titan",
		TitleJapanese: "進撃の巨人",
		Synopsis:      strings.Repeat("x", 250),
		Status:        "Finished Airing",
		Airing:        false,
		Episodes:      intp(25),
		Duration:      "24 min per ep",
		Rating:        "R - 17+ (violence & profanity)",
		Score:         floatp(8.54),
		Popularity:    intp(1),
		Aired:         airedFrom(2013),
		Genres:        refs("Action", "Drama"),
		Themes:        refs("Military", "Survival"),
		Demographics:  refs("Shounen"),
		Studios:       refs("Wit Studio"),
		Licensors:     refs("Funimation", "Crunchyroll"),
		Source:        "Manga",
		Trailer:       &jikan.Trailer{YoutubeID: "MGRm4IzK1SQ"},
	}

	m := FromAnime(rec)
	if m.ID != "16498" || m.Type != TypeAnime {
		t.Fatalf("bad identity: %+v", m)
	}
	if m.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", m.Status)
	}
	if m.ReleaseYear != 2013 {
		t.Fatalf("expected release year 2013, got %d", m.ReleaseYear)
	}
	if m.Duration == nil || *m.Duration != 24 {
		t.Fatalf("expected 24 min duration, got %v", m.Duration)
	}
	if m.Rating != 8.54 || m.MALScore == nil || *m.MALScore != 8.54 {
		t.Fatalf("bad score mapping: %+v", m)
	}
	if m.AgeRating != "R" {
		t.Fatalf("expected R, got %q", m.AgeRating)
	}
	if len(m.Description) != 203 || !strings.HasSuffix(m.Description, "...") {
		t.Fatalf("expected truncated description, got %d chars", len(m.Description))
	}
	if m.Trailer != "MGRm4IzK1SQ" {
		t.Fatalf("expected trailer id, got %q", m.Trailer)
	}
	if m.Studio != "Wit Studio" {
		t.Fatalf("expected first studio, got %q", m.Studio)
	}
	if len(m.Platforms) != 2 {
		t.Fatalf("expected licensor platforms, got %v", m.Platforms)
	}
	if m.Episodes == nil || *m.Episodes != 25 {
		t.Fatalf("expected 25 episodes, got %v", m.Episodes)
	}
	if m.Chapters != nil || m.Volumes != nil {
		t.Fatal("anime must not carry manga counters")
	}
}

func TestFromAnime_SparseRecord(t *testing.T) {
	m := FromAnime(jikan.Media{MalID: 1, Title: "Mystery Show"})
	if m.ReleaseYear != time.Now().Year() {
		t.Fatalf("expected current year default, got %d", m.ReleaseYear)
	}
	if m.Description != "No description available." {
		t.Fatalf("expected description placeholder, got %q", m.Description)
	}
	if m.Synopsis != "No synopsis available." {
		t.Fatalf("expected synopsis placeholder, got %q", m.Synopsis)
	}
	if m.Rating != 0 || m.MALScore != nil {
		t.Fatalf("missing score must stay nil: %+v", m)
	}
	if m.Episodes != nil || m.Duration != nil {
		t.Fatal("missing counters must stay nil")
	}
	if len(m.Platforms) == 0 {
		t.Fatal("platforms must never be empty")
	}
	if m.AgeRating != "Not Rated" {
		t.Fatalf("expected Not Rated, got %q", m.AgeRating)
	}
}

func TestFromManga(t *testing.T) {
	rec := jikan.Media{
		MalID:      11061,
		Title:      "Hunter x Hunter",
		Status:     "Publishing",
		Publishing: boolp(true),
		Chapters:   intp(400),
		Volumes:    intp(37),
		Score:      floatp(9.1),
		Published:  airedFrom(1998),
		Authors:    refs("Togashi, Yoshihiro"),
		Genres:     refs("Action", "Adventure"),
	}

	m := FromManga(rec)
	if m.Type != TypeManga || m.Status != StatusAiring {
		t.Fatalf("bad manga mapping: %+v", m)
	}
	if m.ReleaseYear != 1998 {
		t.Fatalf("expected 1998, got %d", m.ReleaseYear)
	}
	if m.Chapters == nil || *m.Chapters != 400 || m.Volumes == nil || *m.Volumes != 37 {
		t.Fatalf("bad counters: %+v", m)
	}
	if m.Author != "Togashi, Yoshihiro" {
		t.Fatalf("expected author, got %q", m.Author)
	}
	if m.Episodes != nil || m.Duration != nil || m.Trailer != "" {
		t.Fatal("manga must not carry anime fields")
	}
	if len(m.Platforms) != len(defaultMangaPlatforms) {
		t.Fatalf("expected default manga platforms, got %v", m.Platforms)
	}
}

func TestFromMixedList_StructuralDispatch(t *testing.T) {
	anime := jikan.Media{MalID: 1, Title: "A", Airing: true, Episodes: intp(12)}
	manga := jikan.Media{MalID: 2, Title: "M", Publishing: boolp(false), Chapters: intp(10)}
	mangaByVolumes := jikan.Media{MalID: 3, Title: "V", Volumes: intp(5)}

	got := FromMixedList([]jikan.Media{anime, manga, mangaByVolumes})
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if got[0].Type != TypeAnime {
		t.Fatalf("record 0 should be anime, got %s", got[0].Type)
	}
	if got[1].Type != TypeManga || got[2].Type != TypeManga {
		t.Fatalf("records 1 and 2 should be manga, got %s %s", got[1].Type, got[2].Type)
	}
}

func TestFallback_ReturnsCopy(t *testing.T) {
	a := Fallback()
	if len(a) == 0 {
		t.Fatal("fallback catalog must not be empty")
	}
	for _, m := range a {
		if len(m.Platforms) == 0 {
			t.Fatalf("%s: fallback entry without platforms", m.Title)
		}
		if len(m.Genres) == 0 {
			t.Fatalf("%s: fallback entry without genres", m.Title)
		}
	}

	a[0].Title = "mutated"
	b := Fallback()
	if b[0].Title == "mutated" {
		t.Fatal("callers must not be able to mutate the catalog")
	}
}
