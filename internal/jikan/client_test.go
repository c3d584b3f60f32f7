package jikan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int) {
	t.Helper()
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := New(Options{BaseURL: srv.URL, MinSpacing: time.Millisecond})
	c.fetch.sleep = func(time.Duration) {}
	return c, &hits
}

func TestClient_SecondIdenticalCallServedFromCache(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"mal_id":1,"title":"Trigun"}],"pagination":{"has_next_page":false}}`))
	})

	p := SearchAnimeParams{Query: "trigun", Limit: 10}
	first, err := c.SearchAnime(context.Background(), p)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := c.SearchAnime(context.Background(), p)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if *hits != 1 {
		t.Fatalf("expected 1 upstream request, got %d", *hits)
	}
	if len(first.Data) != 1 || len(second.Data) != 1 || second.Data[0].Title != "Trigun" {
		t.Fatalf("cached response does not match: %+v vs %+v", first, second)
	}
}

func TestClient_ClearCacheForcesRefetch(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[],"pagination":{}}`))
	})

	ctx := context.Background()
	if _, err := c.TopAnime(ctx, TopParams{}); err != nil {
		t.Fatal(err)
	}
	c.ClearCache()
	if _, err := c.TopAnime(ctx, TopParams{}); err != nil {
		t.Fatal(err)
	}
	if *hits != 2 {
		t.Fatalf("expected refetch after clear, got %d requests", *hits)
	}
}

func TestClient_FailedFetchIsNotCached(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx := context.Background()
	if _, err := c.CurrentSeason(ctx, PageParams{}); err == nil {
		t.Fatal("expected error from failing upstream")
	}
	before := *hits
	if _, err := c.CurrentSeason(ctx, PageParams{}); err == nil {
		t.Fatal("expected error from failing upstream")
	}
	if *hits == before {
		t.Fatal("failed response must not be served from cache")
	}
}

func TestClient_IDRequired(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	})

	ctx := context.Background()
	if _, err := c.GetAnimeByID(ctx, 0); err == nil {
		t.Fatal("expected error for id 0")
	}
	if _, err := c.GetMangaByID(ctx, -3); err == nil {
		t.Fatal("expected error for negative id")
	}
	if _, err := c.AnimeCharacters(ctx, 0); err == nil {
		t.Fatal("expected error for id 0")
	}
	if *hits != 0 {
		t.Fatalf("invalid ids must not reach upstream, got %d requests", *hits)
	}
}

func TestClient_SeasonalValidation(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[],"pagination":{}}`))
	})
	if _, err := c.Seasonal(context.Background(), 0, "winter", PageParams{}); err == nil {
		t.Fatal("expected error for zero year")
	}
	if _, err := c.Seasonal(context.Background(), 2024, " ", PageParams{}); err == nil {
		t.Fatal("expected error for blank season")
	}
}

func TestEncodeQuery_Deterministic(t *testing.T) {
	a := url.Values{}
	a.Set("q", "one piece")
	a.Set("limit", "10")
	a.Set("page", "2")

	b := url.Values{}
	b.Set("page", "2")
	b.Set("limit", "10")
	b.Set("q", "one piece")

	if encodeQuery(a) != encodeQuery(b) {
		t.Fatalf("same params must encode identically: %q vs %q", encodeQuery(a), encodeQuery(b))
	}
	if encodeQuery(url.Values{}) != "" {
		t.Fatal("empty params must encode to empty string")
	}
}

func TestSearchAnimeParams_ZeroValuesOmitted(t *testing.T) {
	v := SearchAnimeParams{Query: "bleach"}.values()
	if len(v) != 1 || v.Get("q") != "bleach" {
		t.Fatalf("expected only q to be set, got %v", v)
	}
}
