package main

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/kamdevo/AniKam/internal/browse"
	gwconfig "github.com/kamdevo/AniKam/internal/gateway/config"
	"github.com/kamdevo/AniKam/internal/gateway/handlers"
	"github.com/kamdevo/AniKam/internal/jikan"
	"github.com/kamdevo/AniKam/internal/netmon"
	"github.com/kamdevo/AniKam/internal/platform/analytics"
	"github.com/kamdevo/AniKam/internal/platform/config"
	"github.com/kamdevo/AniKam/internal/platform/httpserver"
	"github.com/kamdevo/AniKam/internal/platform/logging"
	"github.com/kamdevo/AniKam/internal/platform/natsconn"
	"github.com/kamdevo/AniKam/internal/platform/run"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	gwCfg := gwconfig.Load()

	var nc *nats.Conn
	if gwCfg.NATSURL != "" {
		nc, err = natsconn.Connect(natsconn.Options{URL: gwCfg.NATSURL, Name: cfg.ServiceName})
		if err != nil {
			log.Error("nats connect", zap.Error(err))
			run.Exit(1)
		}
		defer nc.Close()
	}

	mon := netmon.New(netmon.Options{
		ProbeURL: gwCfg.ProbeURL,
		Interval: gwCfg.ProbeInterval,
	})

	client := jikan.New(jikan.Options{
		BaseURL:           gwCfg.JikanBaseURL,
		CacheTTL:          gwCfg.CacheTTL,
		MinSpacing:        gwCfg.MinSpacing,
		Retries:           gwCfg.FetchRetries,
		Timeout:           gwCfg.RequestTimeout,
		Monitor:           mon,
		Logger:            log,
		NATS:              nc,
		InvalidateSubject: gwCfg.InvalidateSubject,
	})
	var events *analytics.Publisher
	if nc != nil {
		if js, jsErr := nc.JetStream(); jsErr == nil {
			events = analytics.New(js, log)
		}
	}
	svc := browse.New(client, log, events)

	r := chi.NewRouter()
	httpserver.SetupRouter(r)

	r.Get("/v1/search", handlers.Search(svc))
	r.Get("/v1/top/anime", handlers.TopAnime(svc))
	r.Get("/v1/top/manga", handlers.TopManga(svc))
	r.Get("/v1/seasons/now", handlers.CurrentSeason(svc))
	r.Get("/v1/seasons/{year}/{season}", handlers.Seasonal(svc))
	r.Get("/v1/anime/{id}", handlers.Details(svc, browse.ContentAnime))
	r.Get("/v1/anime/{id}/characters", handlers.Characters(svc))
	r.Get("/v1/anime/{id}/videos", handlers.Videos(svc))
	r.Get("/v1/manga/{id}", handlers.Details(svc, browse.ContentManga))
	r.Get("/v1/random/anime", handlers.Random(svc, browse.ContentAnime))
	r.Get("/v1/random/manga", handlers.Random(svc, browse.ContentManga))
	r.Get("/v1/status", handlers.Status(mon, client.QueueLen, gwCfg.JikanBaseURL))

	srv := httpserver.New(httpserver.Options{Addr: cfg.HTTP.Addr, ServiceName: cfg.ServiceName, Logger: log, Router: r})

	runner := run.New(log)
	code := runner.WithSignals(func(ctx context.Context) error {
		go mon.Run(ctx)
		go func() {
			<-ctx.Done()
			_ = srv.Shutdown(context.Background())
		}()
		return srv.Start(log)
	})

	log.Info("exit", zap.Int("code", code))
	run.Exit(code)
}
