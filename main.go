// @title REOWN Storefront API
// @version 1.0
// @description REOWN storefront backend: catalog browsing, session cart, mocked auth, RWN token packs
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Reown-Commerce/reown-storefront-backend/auth"
	"github.com/Reown-Commerce/reown-storefront-backend/catalog"
	"github.com/Reown-Commerce/reown-storefront-backend/config"
	"github.com/Reown-Commerce/reown-storefront-backend/controllers/auth_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/controllers/cart_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/controllers/filter_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/controllers/navigation_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/controllers/product_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/controllers/rwn_controller"
	"github.com/Reown-Commerce/reown-storefront-backend/routes"
	"github.com/Reown-Commerce/reown-storefront-backend/store"
)

func init() {
	_ = godotenv.Load()
}

// mockAuthDelay simulates the upstream credential check round trip.
const mockAuthDelay = 1 * time.Second

func main() {
	// Catalog source: embedded seed unless a database is configured
	var source catalog.Source = catalog.EmbeddedSource{}
	if config.InitDB() {
		defer config.CloseDB()
		source = catalog.DatabaseSource{DB: config.StorefrontGorm}
	}

	// Snapshot store: Redis when available, in-memory otherwise
	var snapshots store.SnapshotStore
	if config.ConnectRedis() {
		defer config.CloseRedis()
		snapshots = store.NewRedisStore(config.RedisClient)
	} else {
		snapshots = store.NewMemoryStore()
	}

	navigation, err := catalog.LoadNavigation()
	if err != nil {
		log.Fatalf("❌ Failed to load navigation tree: %v", err)
	}
	packs, err := catalog.LoadRWNPacks()
	if err != nil {
		log.Fatalf("❌ Failed to load RWN packs: %v", err)
	}

	authenticator := auth.NewMockAuthenticator(snapshots, mockAuthDelay)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	products := product_controller.New(source)
	filters := filter_controller.New(source)
	nav := navigation_controller.New(navigation)
	rwn := rwn_controller.New(packs, authenticator)
	carts := cart_controller.New(snapshots)
	auths := auth_controller.New(authenticator)

	routes.SetupStorefrontRoutes(api, products, filters, nav, rwn)
	routes.SetupCartRoutes(api, carts)
	routes.SetupAuthRoutes(api, auths, rwn)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	log.Printf("✅ REOWN storefront API listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
