package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/vape_shop/internal/admin"
	"github.com/Skotchmaster/vape_shop/internal/assistant"
	"github.com/Skotchmaster/vape_shop/internal/cart"
	"github.com/Skotchmaster/vape_shop/internal/catalog"
	"github.com/Skotchmaster/vape_shop/internal/checkout"
	storecfg "github.com/Skotchmaster/vape_shop/internal/config"
	"github.com/Skotchmaster/vape_shop/internal/httpserver"
	"github.com/Skotchmaster/vape_shop/internal/notify"
	"github.com/Skotchmaster/vape_shop/internal/search"
	"github.com/Skotchmaster/vape_shop/internal/snapshot"
	pkgcfg "github.com/Skotchmaster/vape_shop/pkg/config"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
	loggingmw "github.com/Skotchmaster/vape_shop/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := storecfg.Load()
	pkgcfg.MustNonEmpty(cfg.StorageDSN(), "DATABASE_URL")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	storage, err := snapshot.Open(ctx, cfg.StorageDriver, cfg.StorageDSN())
	cancel()
	if err != nil {
		log.Fatalf("storage open: %v", err)
	}

	var (
		observers []catalog.Observer
		notifiers = notify.Multi{notify.LogNotifier{}}
		indexer   *search.Indexer
		kafkaN    *notify.KafkaNotifier
	)

	if len(cfg.KafkaBrokers) > 0 {
		kafkaN = notify.NewKafkaNotifier(cfg.KafkaBrokers)
		observers = append(observers, kafkaN)
		notifiers = append(notifiers, kafkaN)
		logger.Info("kafka_enabled", "brokers", cfg.KafkaBrokers)
	}

	if cfg.SMTPHost != "" {
		notifiers = append(notifiers, notify.NewMailNotifier(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, cfg.OrderEmail,
		))
		logger.Info("mail_enabled", "host", cfg.SMTPHost, "to", cfg.OrderEmail)
	}

	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		indexer = search.NewIndexer(esClient, cfg.ESIndex)
		observers = append(observers, indexer)
	}

	opts := make([]catalog.Option, 0, len(observers))
	for _, o := range observers {
		opts = append(opts, catalog.WithObserver(o))
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	products, err := catalog.Open(ctx, storage, catalog.DefaultProducts(), opts...)
	if err != nil {
		cancel()
		_ = storage.Close()
		log.Fatalf("catalog load: %v", err)
	}
	carts, err := cart.Open(ctx, storage)
	cancel()
	if err != nil {
		_ = storage.Close()
		log.Fatalf("cart load: %v", err)
	}

	run(cfg, logger, storage, products, carts, notifiers, indexer, kafkaN)
}

func run(
	cfg storecfg.Config,
	logger *slog.Logger,
	storage snapshot.Storage,
	products *catalog.Store,
	carts *cart.Store,
	notifiers notify.Multi,
	indexer *search.Indexer,
	kafkaN *notify.KafkaNotifier,
) {
	var searcher search.Searcher = search.Local{Products: products.List}
	if indexer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := indexer.Reindex(ctx, products.List()); err != nil {
			logger.Error("reindex_error", "error", err)
		}
		cancel()
		searcher = indexer
	}

	secret := cfg.JWTAccessSecret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatalf("jwt secret: %v", err)
		}
		logger.Warn("jwt_secret_generated", "reason", "JWT_SECRET is empty, admin sessions end on restart")
	}

	auth, err := admin.NewAuthenticator(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash, secret, cfg.AdminTokenTTL)
	if err != nil {
		log.Fatalf("admin auth: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler:   &httpserver.CatalogHTTP{Store: products, Search: searcher},
		CartHandler:      &httpserver.CartHTTP{Cart: carts, Catalog: products},
		CheckoutHandler:  &httpserver.CheckoutHTTP{Svc: checkout.NewService(carts, notifiers, cfg.OrderSubmitDelay)},
		AdminHandler:     &httpserver.AdminHTTP{Auth: auth, Catalog: products},
		AssistantHandler: &httpserver.AssistantHTTP{Responder: assistant.CatalogResponder{Products: products.List}},
		JWTSecret:        secret,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("storefront_listening", "addr", srv.Addr, "storage", cfg.StorageDriver, "products", products.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}
	if kafkaN != nil {
		if err := kafkaN.Close(); err != nil {
			logger.Error("kafka_close_error", "error", err)
		}
	}
	if err := storage.Close(); err != nil {
		logger.Error("storage_close_error", "error", err)
	}

	logger.Info("storefront_stopped")
}
