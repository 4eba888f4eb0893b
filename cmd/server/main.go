package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tanneryrow/backend/config"
	httpDelivery "github.com/tanneryrow/backend/internal/delivery/http"
	"github.com/tanneryrow/backend/internal/domain"
	"github.com/tanneryrow/backend/internal/infrastructure/cache"
	"github.com/tanneryrow/backend/internal/infrastructure/catalogcsv"
	"github.com/tanneryrow/backend/internal/infrastructure/squarespace"
	"github.com/tanneryrow/backend/internal/infrastructure/store"
	"github.com/tanneryrow/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Tannery Row Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s (cache TTL %s)", cfg.Catalog.CSVPath, cfg.Catalog.CacheTTL)

	// Infrastructure
	memoryCache := cache.NewMemoryCache()
	sqspClient := squarespace.NewClient(cfg.Squarespace.APIKey, cfg.Squarespace.BaseURL)
	catalogLoader := catalogcsv.NewLoader(cfg.Catalog.CSVPath)

	var mappingStore domain.MappingStore
	if cfg.Store.SQLitePath != "" {
		s, err := store.NewSQLiteStore(cfg.Store.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open mapping store: %v", err)
		}
		mappingStore = s
		log.Printf("Mapping store: %s", cfg.Store.SQLitePath)
	} else {
		log.Printf("WARNING: mapping store not configured, runs will not persist")
	}

	debug := cfg.Matching.DebugLogging || cfg.Server.Environment == "development"

	// Usecase layer
	mappingService := usecase.NewMappingService(
		sqspClient,
		catalogLoader,
		memoryCache,
		mappingStore,
		usecase.NewDescriptorParser(debug),
		usecase.NewCatalogIndexer(debug),
		usecase.NewCategoryMatchers(),
		usecase.NewResolver(debug),
		cfg.Catalog.CacheTTL,
	)
	panelService := usecase.NewPanelService(sqspClient)

	// HTTP delivery
	handler := httpDelivery.NewHandler(mappingService, panelService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
