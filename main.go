package main

import (
	"context"
	"log"
	"net/http"

	"github.com/civicforum/civic-engine/pkg/auth"
	"github.com/civicforum/civic-engine/pkg/cache"
	"github.com/civicforum/civic-engine/pkg/config"
	"github.com/civicforum/civic-engine/pkg/database"
	"github.com/civicforum/civic-engine/pkg/handlers"
	"github.com/civicforum/civic-engine/pkg/logging"
	"github.com/civicforum/civic-engine/pkg/middleware"
	"github.com/civicforum/civic-engine/pkg/repositories"
	"github.com/civicforum/civic-engine/pkg/services"
	"github.com/civicforum/civic-engine/pkg/upstream"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Log startup configuration
	log.Printf("Configuration loaded:")
	log.Printf("  Environment: %s", cfg.Env)
	log.Printf("  Auth verification: %v", cfg.Auth.EnableVerification)
	log.Printf("  Watchlist store enabled: %v", cfg.Database.IsEnabled())
	log.Printf("  Redis: %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	ctx := context.Background()

	// Upstream response cache: Redis when configured, in-process otherwise.
	var store cache.Cache
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if redisClient != nil {
		store = cache.NewRedis(redisClient, logger)
		defer redisClient.Close()
	} else {
		logger.Info("Redis not configured, using in-process cache")
		store = cache.NewMemory()
	}

	// Upstream clients. Mirror-backed datasets go through the fallback
	// resolver; single-host APIs go through the cached fetcher.
	resolver := upstream.NewResolver(logger, cfg.Upstream.AttemptTimeout())
	fetcher := upstream.NewFetcher(store, logger, cfg.Upstream.AttemptTimeout())

	slowTTL := cfg.Upstream.SlowTTL()
	fastTTL := cfg.Upstream.FastTTL()

	legislators := upstream.NewLegislatorClient(resolver, store, logger,
		cfg.Upstream.LegislatorMirrors, cfg.Upstream.SocialMirrors, slowTTL)
	trades := upstream.NewTradesClient(resolver, store, logger, cfg.Upstream.TradeMirrors, fastTTL)
	congress := upstream.NewCongressClient(fetcher, logger, cfg.Upstream.CongressBaseURL, cfg.Upstream.CongressAPIKey, slowTTL)
	fec := upstream.NewFECClient(fetcher, logger, cfg.Upstream.FECBaseURL, cfg.Upstream.FECAPIKey, slowTTL)
	openSecrets := upstream.NewOpenSecretsClient(fetcher, logger, cfg.Upstream.OpenSecretsBaseURL, cfg.Upstream.OpenSecretsAPIKey, slowTTL)
	lobbying := upstream.NewLobbyingClient(fetcher, logger, cfg.Upstream.LobbyingBaseURL, slowTTL)
	news := upstream.NewNewsClient(fetcher, logger, cfg.Upstream.NewsBaseURL, fastTTL)
	wikipedia := upstream.NewWikipediaClient(fetcher, logger, cfg.Upstream.WikipediaBaseURL, slowTTL)

	senatorService := services.NewSenatorService(legislators, trades, congress, fec, lobbying, news, wikipedia, logger)

	mux := http.NewServeMux()

	// Register handlers
	healthHandler := handlers.NewHealthHandler(cfg, logger)
	healthHandler.RegisterRoutes(mux)

	handlers.NewSenatorsHandler(senatorService, logger).RegisterRoutes(mux)
	handlers.NewTradesHandler(trades, legislators, logger).RegisterRoutes(mux)
	handlers.NewHistoricalHandler(logger).RegisterRoutes(mux)
	handlers.NewOpenSecretsHandler(openSecrets, logger).RegisterRoutes(mux)

	// The watchlist API needs both a Postgres store and an identity
	// provider; without a database it stays unmounted.
	if cfg.Database.IsEnabled() {
		db, err := database.NewConnection(ctx, &cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.RunMigrations(cfg.Database.MigrationsPath, logger); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		validator, err := auth.NewJWKSClient(&auth.JWKSConfig{
			EnableVerification: cfg.Auth.EnableVerification,
			JWKSURL:            cfg.Auth.JWKSURL,
		})
		if err != nil {
			log.Fatalf("Failed to initialize JWKS client: %v", err)
		}

		watchlistRepo := repositories.NewWatchlistRepository(db)
		watchlistService := services.NewWatchlistService(watchlistRepo, trades, logger)
		watchlistRoutes := handlers.NewWatchlistHandler(watchlistService, logger).Routes()
		mux.Handle("/api/watchlist", middleware.RequireUser(validator, logger)(watchlistRoutes))
		mux.Handle("/api/watchlist/alerts", middleware.RequireUser(validator, logger)(watchlistRoutes))
	} else {
		logger.Info("Database not configured, watchlist API disabled")
	}

	handler := middleware.RequestLogger(logger)(mux)

	log.Printf("Starting civic-engine on port %s (version: %s)", cfg.Port, cfg.Version)
	if err := http.ListenAndServe(cfg.BindAddr+":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
