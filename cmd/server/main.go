package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/sunnyday_shop/internal/config"
	"github.com/Skotchmaster/sunnyday_shop/internal/database"
	"github.com/Skotchmaster/sunnyday_shop/internal/es"
	"github.com/Skotchmaster/sunnyday_shop/internal/httpserver"
	"github.com/Skotchmaster/sunnyday_shop/internal/logging"
	loggingmw "github.com/Skotchmaster/sunnyday_shop/internal/middleware/logging"
	"github.com/Skotchmaster/sunnyday_shop/internal/mykafka"
	"github.com/Skotchmaster/sunnyday_shop/internal/repo"
	"github.com/Skotchmaster/sunnyday_shop/internal/service"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Open(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	if cfg.Development() {
		logger.Info("development mode: resetting schema and seeding sample data")
		if err := database.Reset(db); err != nil {
			log.Fatalf("db reset error: %v", err)
		}
	} else {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("db migrate error: %v", err)
		}
	}

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = mykafka.NewProducer(cfg.KafkaBrokers)
		logger.Info("kafka events enabled", "brokers", cfg.KafkaBrokers)
	}

	searchHandler := &httpserver.SearchHTTP{Index: es.ProductIndex}
	if cfg.ES_URL != "" {
		client, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHandler.ES = client

		if cfg.Development() {
			r := &repo.GormRepo{DB: db}
			products, err := r.GetProducts(context.Background())
			if err != nil {
				log.Fatalf("load products for indexing: %v", err)
			}
			if err := es.IndexProducts(context.Background(), client, es.ProductIndex, products); err != nil {
				log.Fatalf("index products: %v", err)
			}
			logger.Info("search index seeded", "products", len(products))
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	gormRepo := &repo.GormRepo{DB: db}

	deps := httpserver.Deps{
		ProductHandler:   &httpserver.ProductHTTP{Svc: &service.CatalogService{Repo: gormRepo}},
		UserHandler:      &httpserver.UserHTTP{Svc: &service.UserService{Repo: gormRepo}, Producer: producer},
		CartHandler:      &httpserver.CartHTTP{Svc: &service.CartService{Repo: gormRepo}, Producer: producer},
		OrderHandler:     &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: gormRepo}, Producer: producer},
		AddressHandler:   &httpserver.AddressHTTP{Svc: &service.AddressService{Repo: gormRepo}},
		AnalyticsHandler: &httpserver.AnalyticsHTTP{Svc: &service.AnalyticsService{Repo: gormRepo}},
		SearchHandler:    searchHandler,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	logger.Info("shutdown complete")
}
