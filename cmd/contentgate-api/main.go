// @title         contentgate API
// @version       1.0.0
// @description   Faith-gated quotes, scripture, devotionals and prayers

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contentgate/internal/adapters/corpus"
	"contentgate/internal/adapters/providers"
	"contentgate/internal/platform/config"
	"contentgate/internal/platform/logger"
	phttp "contentgate/internal/platform/net/http"
	"contentgate/internal/platform/ratelimit"
	"contentgate/internal/platform/store"

	"contentgate/internal/services/api"
	"contentgate/internal/services/auth"
	contentmod "contentgate/internal/services/content/module"
)

func main() {
	// .env is optional; real env always wins
	_ = config.LoadDotenv()

	logger.Init(logger.FromEnv())
	l := logger.Get()

	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx,
		store.Config{
			Redis:    store.RedisConfig{URL: cfg.MayString("REDIS_URL", "")},
			CacheTTL: cfg.MaySeconds("CACHE_TTL_SEC", store.DefaultTTL),
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// rate limits share redis with the cache when it is up
	var limiter ratelimit.Limiter = ratelimit.NewInMemory(time.Minute)
	if rc, ok := st.Cache.(*store.RedisCache); ok {
		limiter = ratelimit.NewRedis(rc.Client(), time.Minute)
	}

	c, err := corpus.Load(corpus.Options{Dir: cfg.MayString("CORPUS_DIR", ""), Log: l})
	if err != nil {
		l.Fatal().Err(err).Msg("corpus load failed")
	}
	l.Info().
		Int("quotes", len(c.Quotes())).
		Int("themes", len(c.Themes())).
		Int("passages", c.PassageCount()).
		Msg("corpus loaded")

	srv := phttp.NewServer(cfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:  cfg,
			Store:   st,
			Logger:  l,
			Limiter: limiter,
			Auth:    auth.FromConfig(cfg),
			Content: contentmod.Ports{
				Corpus:    c,
				Providers: providers.FromConfig(cfg),
			},
			EnableSwagger:  cfg.MayBool("API_SWAGGER", false),
			EnableProfiler: cfg.MayBool("API_PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
