package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/homespice/backend/config"
	httpDelivery "github.com/homespice/backend/internal/delivery/http"
	"github.com/homespice/backend/internal/domain"
	"github.com/homespice/backend/internal/infrastructure/cache"
	"github.com/homespice/backend/internal/infrastructure/memory"
	pg "github.com/homespice/backend/internal/infrastructure/postgres"
	"github.com/homespice/backend/internal/infrastructure/rankersvc"
	"github.com/homespice/backend/internal/usecase"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting HomeSpice Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Storage: %s", cfg.Storage.Type)

	// Initialize providers
	var (
		catalog  domain.CatalogProvider
		vendors  domain.VendorProvider
		history  domain.HistoryProvider
		profiles domain.ProfileProvider
	)

	switch cfg.Storage.Type {
	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.Storage.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		catalog = pg.NewCatalogRepository(pool)
		vendors = pg.NewVendorRepository(pool)
		history = pg.NewHistoryRepository(pool)
		profiles = pg.NewProfileRepository(pool)
	default:
		store := memory.NewStore()
		seedSampleData(store)
		log.Printf("Seeded in-memory sample catalog")
		catalog, vendors, history, profiles = store, store, store, store
	}

	// Vendor snapshots are read-only for the duration of a call and
	// refreshed between calls
	vendors = cache.NewVendorSnapshot(vendors, cfg.Storage.VendorTTL)
	log.Printf("Vendor snapshot TTL: %s", cfg.Storage.VendorTTL)

	// Local rule-based pipeline
	recommender := usecase.NewRecommendationService(catalog, vendors, history, usecase.RecommendConfig{
		RadiusKm:           cfg.Recommend.RadiusKm,
		PopularRadiusKm:    cfg.Recommend.PopularRadiusKm,
		DefaultLimit:       cfg.Recommend.DefaultLimit,
		EnableDebugLogging: cfg.Recommend.EnableDebugLogging,
	})

	log.Printf("Recommend: radius=%.0fkm popular=%.0fkm limit=%d debug=%v",
		cfg.Recommend.RadiusKm,
		cfg.Recommend.PopularRadiusKm,
		cfg.Recommend.DefaultLimit,
		cfg.Recommend.EnableDebugLogging)

	// Optional remote ranking service behind the mandatory local fallback
	var remote domain.Ranker
	if cfg.Ranker.URL != "" {
		client := rankersvc.NewClient(cfg.Ranker.URL, cfg.Ranker.Timeout)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
		}
		remote = client
		log.Printf("Remote ranker configured: %s (timeout %s)", cfg.Ranker.URL, cfg.Ranker.Timeout)
	} else {
		log.Printf("Remote ranker not configured, using local pipeline only")
	}

	ranker := rankersvc.NewFallbackRanker(remote, recommender, rankersvc.BreakerConfig{
		FailureThreshold: cfg.Ranker.FailureThreshold,
		Cooldown:         cfg.Ranker.Cooldown,
	}, cfg.Recommend.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(ranker, recommender, profiles)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedSampleData loads a small demo catalog for memory storage
func seedSampleData(store *memory.Store) {
	store.AddVendors(
		domain.Vendor{
			ID: "v-ravi", KitchenName: "Ravi's Kitchen", CuisineSpecialty: "North Indian",
			Location: &domain.Coordinates{Latitude: 51.5074, Longitude: -0.1278},
			Status:   domain.VendorStatusApproved, Active: true,
		},
		domain.Vendor{
			ID: "v-priya", KitchenName: "Priya's Kitchen", CuisineSpecialty: "South Indian",
			Location: &domain.Coordinates{Latitude: 51.5155, Longitude: -0.0922},
			Status:   domain.VendorStatusApproved, Active: true,
		},
	)
	store.AddItems(
		domain.MenuItem{
			ID: "d-butter-chicken", VendorID: "v-ravi", Name: "Butter Chicken",
			Description: "Creamy tomato gravy with butter", Price: domain.Money{Amount: 1250, Currency: "INR"},
			Category: "Dinner", DietaryType: domain.DietaryNonVeg, SpiceLevel: domain.SpiceMedium,
			Allergens: []string{"dairy"}, Available: true, Rating: 4.6, OrderCount: 210, ViewCount: 3400,
		},
		domain.MenuItem{
			ID: "d-dal-makhani", VendorID: "v-ravi", Name: "Dal Makhani",
			Description: "Slow-cooked black lentils with cream", Price: domain.Money{Amount: 850, Currency: "INR"},
			Category: "Dinner", DietaryType: domain.DietaryVeg, SpiceLevel: domain.SpiceMild,
			Allergens: []string{"dairy"}, Available: true, Rating: 4.4, OrderCount: 150, ViewCount: 2100,
		},
		domain.MenuItem{
			ID: "d-masala-dosa", VendorID: "v-priya", Name: "Masala Dosa",
			Description: "Crisp rice crepe with potato filling", Price: domain.Money{Amount: 700, Currency: "INR"},
			Category: "Lunch", DietaryType: domain.DietaryVeg, SpiceLevel: domain.SpiceMedium,
			Available: true, Rating: 4.8, OrderCount: 320, ViewCount: 5100,
		},
		domain.MenuItem{
			ID: "d-chettinad-curry", VendorID: "v-priya", Name: "Chettinad Chicken Curry",
			Description: "Fiery pepper curry from Tamil Nadu", Price: domain.Money{Amount: 1100, Currency: "INR"},
			Category: "Dinner", DietaryType: domain.DietaryNonVeg, SpiceLevel: domain.SpiceHot,
			Available: true, Rating: 4.5, OrderCount: 180, ViewCount: 2600,
		},
	)
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
