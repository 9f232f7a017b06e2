package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/boardline/seller-allocation-service/internal/config"
	"github.com/boardline/seller-allocation-service/internal/delivery/http/handlers"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/catalog"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/customers"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/geocoding"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/kafka"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/logger"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/metrics"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/migrate"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/postgres"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/postgres/repository"
	"github.com/boardline/seller-allocation-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.AllocationDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.AllocationDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Metrics
	allocationMetrics := metrics.NewAllocationMetrics()

	// External collaborators
	catalogClient := catalog.NewHTTPCatalogClient(cfg.CatalogService.Address)
	customerClient := customers.NewHTTPCustomerClient(cfg.CustomerService.Address)

	// Geocoding with a process-lifetime coordinate cache
	coordinateCache := geocoding.NewCoordinateCache()
	geocoder := geocoding.NewResolver(cfg.GeocoderService.BaseURL, cfg.GeocoderService.Timeout, coordinateCache, allocationMetrics)

	// Kafka publisher for finalized seller orders
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	sellerOrderPublisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Init sub-order repo
	subOrderRepo := repository.NewDefaultSubOrderRepository(db)
	// Init allocation event logger
	eventLogger := logger.NewPGAllocationEventLogger(db)

	// Init selection usecase
	selectionUsecase := usecase.NewDefaultSelectionUsecase(catalogClient, customerClient, geocoder, allocationMetrics)
	// Init seller order usecase
	sellerOrderUsecase := usecase.NewDefaultSellerOrderUsecase(
		selectionUsecase,
		catalogClient,
		subOrderRepo,
		sellerOrderPublisher,
		eventLogger,
		allocationMetrics,
	)

	// HTTP server
	allocationHandler := handlers.NewAllocationHandler(sellerOrderUsecase)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logger)
	router.Group(allocationHandler.Routes)
	router.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("allocation service started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
