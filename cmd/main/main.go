package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"lumina-main/internal/app"
	"lumina-main/internal/cart"
	"lumina-main/internal/catalog"
	"lumina-main/internal/checkout"
	handlersCart "lumina-main/internal/handlers/cart"
	handlersCatalog "lumina-main/internal/handlers/catalog"
	handlersCheckout "lumina-main/internal/handlers/checkout"
	handlersRV "lumina-main/internal/handlers/recently_viewed"
	handlersSession "lumina-main/internal/handlers/session"
	handlersWishlist "lumina-main/internal/handlers/wishlist"
	"lumina-main/internal/indexer"
	"lumina-main/internal/kafka"
	"lumina-main/internal/middleware"
	rv "lumina-main/internal/recently_viewed"
	"lumina-main/internal/search"
	"lumina-main/internal/session"
	"lumina-main/internal/wishlist"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

const (
	cfgPath      = "config/config.yaml"
	RedisAddr    = "redis:6379"
	ElasticAddr  = "http://elasticsearch:9200"
	KafkaBrokers = "kafka:9092"
	KafkaTopic   = "client-events"
)

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	// init db
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatalf("error to database start: %v", err)
	}

	db.SetMaxOpenConns(c.MaxOpenConns)
	if err := db.Ping(); err != nil {
		logger.Infof("Failed to get response to ping: %v", err)
	}

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     RedisAddr,
		Password: "",
		DB:       0, // стандартная БД
	})

	// init elasticsearch
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{ElasticAddr},
	})
	if err != nil {
		logger.Fatalf("error to elasticsearch client init: %v", err)
	}

	searchService := search.NewService(esClient, logger, c.CfgES.Index)
	if err := searchService.EnsureIndex(context.Background()); err != nil {
		logger.Warnf("failed to ensure search index: %v", err)
	}

	// init kafka producer
	eventProducer := kafka.NewProducer([]string{KafkaBrokers}, KafkaTopic, logger)
	defer func() {
		if err := eventProducer.Close(); err != nil {
			logger.Warnf("error to close kafka producer: %v", err)
		}
	}()

	// init repository
	sessionRepository := session.NewSessionRepository(redisClient, logger, c.Secret, c.SessionDuration)
	cartRepository := cart.NewCartRepository(redisClient, logger)
	wishlistRepository := wishlist.NewWishlistRepository(redisClient, logger)
	recentlyViewedRepository := rv.NewRecentlyViewedRepository(redisClient, logger)
	catalogRepository := catalog.NewCatalogDBRepository(db, logger)

	// init checkout
	processor := checkout.NewSimulatedProcessor(c.PaymentDelay)
	checkoutService := checkout.NewService(logger, cartRepository, processor, eventProducer)

	// фоновая индексация каталога в ES
	pipeline := indexer.NewPipeline(
		indexer.NewPostgresExtractor(db, logger),
		indexer.NewTransformer(logger),
		indexer.NewElasticLoader(searchService, logger, db),
		logger,
		c.IndexInterval,
	)
	go pipeline.Run(context.Background())

	// init router
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)
	r.Handle("/metrics", promhttp.Handler())

	// init handlers
	sessionHandlers := handlersSession.NewSessionHandler(logger, sessionRepository)
	cartHandlers := handlersCart.NewCartHandler(logger, cartRepository, catalogRepository, eventProducer)
	wishlistHandlers := handlersWishlist.NewWishlistHandler(logger, wishlistRepository, catalogRepository)
	rvHandlers := handlersRV.NewRecentlyViewedHandler(logger, recentlyViewedRepository, catalogRepository, eventProducer)
	catalogHandlers := handlersCatalog.NewCatalogHandler(logger, catalogRepository, searchService, eventProducer)
	checkoutHandlers := handlersCheckout.NewCheckoutHandler(logger, checkoutService)

	// Ручки требующие сессии клиента
	authRouter := r.PathPrefix("/api").Subrouter()
	authRouter.Use(middleware.Auth(sessionRepository, logger))

	authRouter.HandleFunc("/cart", cartHandlers.GetCart).Methods("GET")
	authRouter.HandleFunc("/cart", cartHandlers.ClearCart).Methods("DELETE")
	authRouter.HandleFunc("/cart/item/{productID}", cartHandlers.AddToCart).Methods("POST")
	authRouter.HandleFunc("/cart/item/{productID}", cartHandlers.UpdateQuantity).Methods("PUT")
	authRouter.HandleFunc("/cart/item/{productID}", cartHandlers.DeleteFromCart).Methods("DELETE")

	authRouter.HandleFunc("/wishlist", wishlistHandlers.GetWishlist).Methods("GET")
	authRouter.HandleFunc("/wishlist", wishlistHandlers.ClearWishlist).Methods("DELETE")
	authRouter.HandleFunc("/wishlist/item/{productID}", wishlistHandlers.Contains).Methods("GET")
	authRouter.HandleFunc("/wishlist/item/{productID}", wishlistHandlers.AddToWishlist).Methods("POST")
	authRouter.HandleFunc("/wishlist/item/{productID}", wishlistHandlers.DeleteFromWishlist).Methods("DELETE")

	authRouter.HandleFunc("/recently-viewed", rvHandlers.GetHistory).Methods("GET")
	authRouter.HandleFunc("/recently-viewed", rvHandlers.ClearHistory).Methods("DELETE")
	authRouter.HandleFunc("/recently-viewed/{productID}", rvHandlers.RecordView).Methods("POST")

	authRouter.HandleFunc("/checkout", checkoutHandlers.Begin).Methods("POST")
	authRouter.HandleFunc("/checkout/{id}", checkoutHandlers.Get).Methods("GET")
	authRouter.HandleFunc("/checkout/{id}", checkoutHandlers.Abandon).Methods("DELETE")
	authRouter.HandleFunc("/checkout/{id}/shipping", checkoutHandlers.SubmitShipping).Methods("PUT")
	authRouter.HandleFunc("/checkout/{id}/back", checkoutHandlers.BackToShipping).Methods("POST")
	authRouter.HandleFunc("/checkout/{id}/payment", checkoutHandlers.SubmitPayment).Methods("POST")

	// Поиск тоже за сессией: поисковые события привязываются к клиенту
	authRouter.HandleFunc("/products/search", catalogHandlers.Search).Methods("GET")

	// Ручки НЕ требующие сессии
	noAuthRouter := r.PathPrefix("/api").Subrouter()

	noAuthRouter.HandleFunc("/session", sessionHandlers.Create).Methods("POST")

	noAuthRouter.HandleFunc("/products", catalogHandlers.List).Methods("GET")
	noAuthRouter.HandleFunc("/products/popular", catalogHandlers.GetPopular).Methods("GET")
	noAuthRouter.HandleFunc("/products/{id}", catalogHandlers.GetByID).Methods("GET")

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		panic("can't start server: " + err.Error())
	}
}
