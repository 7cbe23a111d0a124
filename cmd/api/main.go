package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/auth"
	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/feed"
	"storefront/internal/logger"
	"storefront/internal/menu"
	"storefront/internal/order"
	"storefront/internal/router"
	"storefront/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── DB ─────────────────────────
	pgDB, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres")
	}
	defer pgDB.Close()

	cartStore, err := cart.NewSQLiteStore(cfg.CartCachePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CartCachePath).Msg("cart cache")
	}
	defer cartStore.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	var images menu.Storage
	if cfg.StorageEnabled() {
		r2Client, err := storage.NewR2Client(ctx, storage.Options{
			Endpoint:      cfg.R2Endpoint,
			AccessKey:     cfg.R2AccessKey,
			SecretKey:     cfg.R2SecretKey,
			Bucket:        cfg.R2Bucket,
			PublicBaseURL: cfg.R2PublicBaseURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("object storage")
		}
		images = r2Client
	} else {
		log.Warn().Msg("object storage not configured, dish image uploads disabled")
	}

	// ───────────────────────── ORDER FEED ─────────────────────────
	var orderFeed feed.Feed = feed.NewBroadcaster()
	if cfg.NATSURL != "" {
		natsFeed, err := feed.NewNATSFeed(cfg.NATSURL, feed.DefaultSubject)
		if err != nil {
			log.Fatal().Err(err).Msg("nats")
		}
		orderFeed = natsFeed
		log.Info().Str("subject", feed.DefaultSubject).Msg("order feed on NATS")
	}
	defer orderFeed.Close()

	// ───────────────────────── MENU ─────────────────────────
	menuService := menu.NewService(menu.NewPostgresRepository(pgDB), images, menu.NewCatalog())

	if n, err := menuService.SeedDefaults(ctx); err != nil {
		log.Error().Err(err).Msg("seed menu")
	} else if n > 0 {
		log.Info().Int("dishes", n).Msg("seeded default menu")
	}

	if err := menuService.Reload(ctx); err != nil {
		// The storefront reports the catalog as not loaded until an
		// admin write triggers a successful reload.
		log.Error().Err(err).Msg("initial catalog load")
	}

	// ───────────────────────── AUTH ─────────────────────────
	cartTokens, err := auth.NewCartTokens(cfg.CartTokenSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("cart tokens")
	}

	sessionService := auth.NewService(
		auth.NewPostgresSessionRepository(pgDB),
		cfg.AdminPasswordHash,
		cfg.AdminSessionTTL,
	)

	// ───────────────────────── ORDERS + CHECKOUT ─────────────────────────
	carts := cart.NewManager(cartStore)
	go carts.SweepIdle(ctx, time.Minute, cfg.CartIdleTTL)
	orderService := order.NewService(order.NewPostgresRepository(pgDB), orderFeed)

	var checkoutService *checkout.Service
	switch cfg.CheckoutMode {
	case config.CheckoutHandoff:
		channel, err := checkout.NewWhatsAppChannel(cfg.HandoffPhone)
		if err != nil {
			log.Fatal().Err(err).Msg("handoff channel")
		}
		checkoutService = checkout.NewHandoffService(carts, channel, cfg.HandoffFooter)
	default:
		checkoutService = checkout.NewStructuredService(carts, orderService)
	}
	log.Info().Str("mode", checkoutService.Mode()).Msg("checkout configured")

	// ───────────────────────── HTTP ─────────────────────────
	r := router.NewRouter(router.Deps{
		CORSOrigins: cfg.CORSOrigins,
		Menu:        menu.NewHandler(menuService),
		MenuAdmin:   menu.NewAdminHandler(menuService),
		Cart:        cart.NewHandler(carts, menuService.Catalog(), cartTokens),
		Checkout:    checkout.NewHandler(checkoutService),
		Auth:        auth.NewHandler(sessionService, cfg.Env == "production"),
		Orders:      order.NewHandler(orderService),
		OrdersHub:   order.NewHub(orderFeed, cfg.CORSOrigins),
		Sessions:    sessionService,
		CartTokens:  cartTokens,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("API running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	<-ctx.Done()

	// ───────────────────────── SHUTDOWN ─────────────────────────
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("API stopped")
}
