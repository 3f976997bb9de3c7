package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/girlhub/storefront/internal/account"
	"github.com/girlhub/storefront/internal/cart"
	"github.com/girlhub/storefront/internal/catalog"
	"github.com/girlhub/storefront/internal/config"
	"github.com/girlhub/storefront/internal/currency"
	"github.com/girlhub/storefront/internal/events"
	"github.com/girlhub/storefront/internal/hash"
	"github.com/girlhub/storefront/internal/httpserver"
	"github.com/girlhub/storefront/internal/logging"
	"github.com/girlhub/storefront/internal/store"
)

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "postgres":
		return store.OpenPostgres(ctx, cfg.DatabaseURL)
	case "redis":
		return store.OpenRedis(ctx, cfg.RedisAddr, "storefront:")
	default:
		return store.OpenSQLite(cfg.StorePath)
	}
}

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := openStore(initCtx, cfg)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	var producer *events.Producer
	if cfg.KafkaAddress != "" {
		producer = events.NewProducer(cfg.KafkaAddress)
	}

	cat := catalog.Default()

	converter := currency.New(st)
	if err := converter.Load(initCtx); err != nil {
		log.Fatalf("currency load error: %v", err)
	}

	accountSvc := account.NewService(st, hash.ForMode(!cfg.HashPasswords), account.Config{
		SessionSecret:   cfg.SessionSecret,
		NormalizeEmails: cfg.NormalizeEmails,
	}, producer)
	if err := accountSvc.LoadSession(logging.IntoContext(initCtx, logger)); err != nil {
		log.Fatalf("session load error: %v", err)
	}

	cartSvc := cart.NewService(st, cat, accountSvc, producer)
	if err := cartSvc.Load(initCtx); err != nil {
		log.Fatalf("cart load error: %v", err)
	}
	accountSvc.AttachCart(cartSvc)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(httpserver.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Catalog: cat, Converter: converter},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc, Converter: converter},
		AuthHandler:    &httpserver.AuthHTTP{Svc: accountSvc},
		ProfileHandler: &httpserver.ProfileHTTP{Svc: accountSvc},
		PrefsHandler:   &httpserver.PrefsHTTP{Converter: converter},
	})

	go func() {
		logger.Info("starting storefront", "port", cfg.ServerPort, "store", cfg.StoreBackend)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}
	if err := producer.Close(); err != nil {
		logger.Error("producer close", "error", err)
	}
	if err := st.Close(); err != nil {
		logger.Error("store close", "error", err)
	}
}
