// @title           Watch Atelier Backend API
// @version         1.0.0
// @description     Backend API for a direct-to-consumer watch customization storefront. Customers assemble a watch from a case, color, and compatible parts through a step-by-step session API; administrators manage the catalog, page content, and incoming orders.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"watch-atelier-backend/docs"
	"watch-atelier-backend/internal/config"
	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/database"
	"watch-atelier-backend/internal/handlers"
	"watch-atelier-backend/internal/imgbb"
	"watch-atelier-backend/internal/middleware"
	"watch-atelier-backend/internal/orders"
	"watch-atelier-backend/internal/services"
	"watch-atelier-backend/internal/supabase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	dbURL := cfg.DatabaseURL
	if dbURL == "" {
		log.Println("Warning: DATABASE_URL not set. Migrations will be skipped.")
		log.Println("Please set DATABASE_URL environment variable with your Supabase PostgreSQL connection string")
	}

	// Initialize Supabase API client (used for realtime notifications)
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}
	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	// Create database client for catalog, orders, and pages
	var dbClient *supabase.DatabaseClient
	if dbURL != "" {
		dbClient, err = supabase.NewDatabaseClient(dbURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
			log.Println("Database operations will be limited. Please configure DATABASE_URL properly.")
		} else {
			defer dbClient.Close()

			// Run migrations
			migrator, err := database.NewMigrator(dbURL)
			if err != nil {
				log.Printf("Warning: Failed to initialize migrator: %v", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(); err != nil {
					log.Printf("Warning: Migration failed: %v", err)
				} else {
					log.Println("Migrations completed successfully")
				}
			}
		}
	}

	// Pick the image host for admin catalog uploads
	var imageHost handlers.ImageHost
	if cfg.ImageHost == config.ImageHostImgBB {
		imageHost = imgbb.NewClient(cfg.ImgBBAPIURL, cfg.ImgBBKey)
	} else {
		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize storage client: %v", err)
		}
		imageHost = storageClient
	}

	// Wizard core wiring (dbClient might be nil, handlers handle this)
	sessionStore := customizer.NewSessionStore()
	var (
		prefetcher      *services.Prefetcher
		assembler       *orders.Assembler
		casesHandler    *handlers.CasesHandler
		sessionsHandler *handlers.SessionsHandler
	)
	if dbClient != nil {
		prefetcher = services.NewPrefetcher(dbClient)
		assembler = orders.NewAssembler(dbClient)
		casesHandler = handlers.NewCasesHandler(dbClient, prefetcher)
		sessionsHandler = handlers.NewSessionsHandler(dbClient, sessionStore, assembler, prefetcher, realtimeClient)
	}

	pagesHandler := handlers.NewPagesHandler(dbClient)
	adminCasesHandler := handlers.NewAdminCasesHandler(dbClient)
	adminPartsHandler := handlers.NewAdminPartsHandler(dbClient)
	adminOrdersHandler := handlers.NewAdminOrdersHandler(dbClient, realtimeClient)
	uploadHandler := handlers.NewUploadHandler(imageHost, cfg.ImageHost)

	// Setup router
	router := gin.Default()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Public customer API
	api := router.Group("/api/v1")
	if casesHandler != nil {
		api.GET("/cases", casesHandler.ListCases)
		api.GET("/cases/:case_id", casesHandler.GetCase)
	}
	if sessionsHandler != nil {
		api.POST("/sessions", sessionsHandler.CreateSession)
		api.GET("/sessions/:session_id", sessionsHandler.GetSession)
		api.PUT("/sessions/:session_id/color", sessionsHandler.SelectColor)
		api.PUT("/sessions/:session_id/part", sessionsHandler.SelectPart)
		api.POST("/sessions/:session_id/next", sessionsHandler.NextStep)
		api.POST("/sessions/:session_id/previous", sessionsHandler.PreviousStep)
		api.POST("/sessions/:session_id/order", sessionsHandler.SubmitOrder)
	}
	api.GET("/pages/:page_id", pagesHandler.GetPage)

	// Admin API (JWT-protected)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))

	admin.POST("/cases", adminCasesHandler.CreateCase)
	admin.PUT("/cases/:case_id", adminCasesHandler.UpdateCase)
	admin.DELETE("/cases/:case_id", adminCasesHandler.DeleteCase)

	admin.GET("/parts", adminPartsHandler.ListParts)
	admin.POST("/parts", adminPartsHandler.CreatePart)
	admin.PUT("/parts/:part_id", adminPartsHandler.UpdatePart)
	admin.DELETE("/parts/:part_id", adminPartsHandler.DeletePart)

	admin.GET("/orders", adminOrdersHandler.ListOrders)
	admin.GET("/orders/:order_id", adminOrdersHandler.GetOrder)
	admin.PUT("/orders/:order_id/status", adminOrdersHandler.UpdateOrderStatus)
	admin.PUT("/orders/:order_id/notes", adminOrdersHandler.SetOrderNotes)
	admin.DELETE("/orders/:order_id", adminOrdersHandler.DeleteOrder)

	admin.PUT("/pages/:page_id", pagesHandler.UpdatePage)
	admin.POST("/uploads", uploadHandler.Upload)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
