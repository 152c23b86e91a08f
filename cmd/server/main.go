package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	farmapp "github.com/farmstead/backend/internal/application/farm"
	feedapp "github.com/farmstead/backend/internal/application/feed"
	financeapp "github.com/farmstead/backend/internal/application/finance"
	healthapp "github.com/farmstead/backend/internal/application/health"
	productapp "github.com/farmstead/backend/internal/application/product"
	reportapp "github.com/farmstead/backend/internal/application/report"
	"github.com/farmstead/backend/internal/infrastructure/auth"
	"github.com/farmstead/backend/internal/infrastructure/cache"
	"github.com/farmstead/backend/internal/infrastructure/config"
	"github.com/farmstead/backend/internal/infrastructure/event"
	"github.com/farmstead/backend/internal/infrastructure/logger"
	"github.com/farmstead/backend/internal/infrastructure/persistence"
	"github.com/farmstead/backend/internal/infrastructure/telemetry"
	"github.com/farmstead/backend/internal/interfaces/http/handler"
	"github.com/farmstead/backend/internal/interfaces/http/middleware"
	"github.com/farmstead/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			Farmstead Backend API
//	@version		1.0
//	@description	Farm management backend for feed, finance, health and production tracking

//	@contact.name	API Support
//	@contact.url	https://github.com/farmstead/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Farmstead Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Register query tracing on the GORM connection
	if cfg.Telemetry.Enabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DefaultDBTracingConfig(), log)
		if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Initialize repositories
	farmRepo := persistence.NewGormFarmRepository(db.DB)
	feedRepo := persistence.NewGormFeedRepository(db.DB)
	feedTypeRepo := persistence.NewGormFeedTypeRepository(db.DB)
	feedPurchaseRepo := persistence.NewGormFeedPurchaseRepository(db.DB)
	feedEntryRepo := persistence.NewGormFeedEntryRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	equipmentRepo := persistence.NewGormEquipmentRepository(db.DB)
	equipmentPurchaseRepo := persistence.NewGormEquipmentPurchaseRepository(db.DB)
	treatmentRepo := persistence.NewGormTreatmentRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	productionRecordRepo := persistence.NewGormProductionRecordRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	statisticsRepo := persistence.NewGormStatisticsRepository(db.DB)

	// Transaction scopes for multi-repository writes
	feedScope := persistence.NewGormFeedTransactionScope(db.DB)
	productScope := persistence.NewGormProductTransactionScope(db.DB)

	// Initialize application services
	farmService := farmapp.NewFarmService(farmRepo)
	feedService := feedapp.NewFeedService(feedScope, feedRepo, feedTypeRepo, feedPurchaseRepo, feedEntryRepo)
	financeService := financeapp.NewFinanceService(transactionRepo, expenseRepo, equipmentRepo, equipmentPurchaseRepo)
	healthService := healthapp.NewHealthService(treatmentRepo, transactionRepo)
	productService := productapp.NewProductService(productScope, productRepo, productionRecordRepo, saleRepo)
	reportService := reportapp.NewReportService(farmRepo, statisticsRepo)

	// Statistics cache (Redis when available, in-memory otherwise)
	if cfg.Report.CacheEnabled {
		if cfg.Redis.Enabled {
			redisCache, err := cache.NewRedisStatisticsCache(cfg.Redis, log)
			if err != nil {
				log.Fatal("Failed to connect to Redis", zap.Error(err))
			}
			defer func() {
				if err := redisCache.Close(); err != nil {
					log.Error("Error closing Redis connection", zap.Error(err))
				}
			}()
			reportService.SetCache(redisCache)
			log.Info("Statistics cache enabled", zap.String("backend", "redis"), zap.String("addr", cfg.Redis.Addr()))
		} else {
			reportService.SetCache(cache.NewInMemoryStatisticsCache())
			log.Info("Statistics cache enabled", zap.String("backend", "memory"))
		}
	}

	// Initialize event bus with a logging subscriber for audit visibility
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewLoggingHandler(log))

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Inject event bus into services that publish domain events
	farmService.SetEventPublisher(eventBus)
	feedService.SetEventPublisher(eventBus)
	financeService.SetEventPublisher(eventBus)
	healthService.SetEventPublisher(eventBus)
	productService.SetEventPublisher(eventBus)

	// JWT service for request authentication
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	farmHandler := handler.NewFarmHandler(farmService)
	feedHandler := handler.NewFeedHandler(feedService, farmService)
	financeHandler := handler.NewFinanceHandler(financeService, farmService)
	treatmentHandler := handler.NewTreatmentHandler(healthService, farmService)
	productHandler := handler.NewProductHandler(productService, farmService)
	reportHandler := handler.NewReportHandler(reportService, farmService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first:
	// request ID, panic recovery, request logging, security headers,
	// tracing, CORS, body limit, rate limiting
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.TracingAttributeInjector())
	}

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthCheckHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication to API routes, skipping public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Farm routes (farm CRUD, transactions, expenses, equipment, statistics)
	farmRoutes := router.NewDomainGroup("farms", "/farms")
	farmRoutes.POST("/create_farm", farmHandler.Create)
	farmRoutes.GET("/get_farms", farmHandler.List)
	farmRoutes.GET("/get_farm/:farm_id", farmHandler.Get)
	farmRoutes.POST("/edit_farm/:farm_id", farmHandler.Update)
	farmRoutes.POST("/delete_farm/:farm_id", farmHandler.Delete)
	farmRoutes.GET("/get_farm_statistics/:farm_id", reportHandler.GetFarmStatistics)

	// Finance routes live under the farm prefix
	farmRoutes.POST("/add_transaction/:farm_id", financeHandler.AddTransaction)
	farmRoutes.GET("/get_transactions/:farm_id", financeHandler.ListTransactions)
	farmRoutes.POST("/add_expense/:farm_id", financeHandler.AddExpense)
	farmRoutes.GET("/get_expenses/:farm_id", financeHandler.ListExpenses)
	farmRoutes.POST("/edit_expense/:id", financeHandler.EditExpense)
	farmRoutes.POST("/delete_expense/:id", financeHandler.DeleteExpense)
	farmRoutes.POST("/add_expense_transaction/:id", financeHandler.AddExpenseTransaction)
	farmRoutes.POST("/remove_expense_transaction/:id", financeHandler.RemoveExpenseTransaction)
	farmRoutes.POST("/add_equipment/:farm_id", financeHandler.AddEquipment)
	farmRoutes.GET("/get_equipment/:farm_id", financeHandler.ListEquipment)
	farmRoutes.POST("/add_equipment_purchase/:farm_id", financeHandler.AddEquipmentPurchase)
	farmRoutes.GET("/get_equipment_purchases/:farm_id", financeHandler.ListEquipmentPurchases)
	farmRoutes.POST("/add_equipment_purchase_transaction/:id", financeHandler.AddEquipmentPurchaseTransaction)
	farmRoutes.POST("/remove_equipment_purchase_transaction/:id", financeHandler.RemoveEquipmentPurchaseTransaction)

	// Feed routes (feeds, feed types, purchases, entries)
	feedRoutes := router.NewDomainGroup("feeds", "/feeds")
	feedRoutes.GET("/get_feeds/:farm_id", feedHandler.ListFeeds)
	feedRoutes.POST("/add_feed/:farm_id", feedHandler.AddFeed)
	feedRoutes.POST("/edit_feed/:id", feedHandler.EditFeed)
	feedRoutes.POST("/delete_feed/:id", feedHandler.DeleteFeed)
	feedRoutes.GET("/get_feed_types/:farm_id", feedHandler.ListFeedTypes)
	feedRoutes.POST("/add_feed_type/:farm_id", feedHandler.AddFeedType)
	feedRoutes.POST("/edit_feed_type/:id", feedHandler.EditFeedType)
	feedRoutes.POST("/delete_feed_type/:id", feedHandler.DeleteFeedType)
	feedRoutes.GET("/get_feed_purchases/:farm_id", feedHandler.ListPurchases)
	feedRoutes.POST("/add_feed_purchase/:farm_id", feedHandler.AddPurchase)
	feedRoutes.DELETE("/delete_feed_purchase/:farm_id/:id", feedHandler.DeletePurchase)
	feedRoutes.GET("/get_feed_entries/:farm_id", feedHandler.ListEntries)
	feedRoutes.POST("/add_feed_entry/:farm_id", feedHandler.AddEntry)
	feedRoutes.DELETE("/delete_feed_entry/:farm_id/:id", feedHandler.DeleteEntry)

	// Health routes (veterinary treatments)
	healthRoutes := router.NewDomainGroup("health", "/health")
	healthRoutes.POST("/add_treatment/:farm_id", treatmentHandler.AddTreatment)
	healthRoutes.GET("/get_treatments/:farm_id", treatmentHandler.ListTreatments)
	healthRoutes.POST("/edit_treatment/:id", treatmentHandler.EditTreatment)
	healthRoutes.POST("/delete_treatment/:id", treatmentHandler.DeleteTreatment)
	healthRoutes.POST("/add_treatment_transaction/:id", treatmentHandler.AddTreatmentTransaction)
	healthRoutes.POST("/remove_treatment_transaction/:id", treatmentHandler.RemoveTreatmentTransaction)

	// Product routes (products, production records, sales)
	productRoutes := router.NewDomainGroup("products", "/products")
	productRoutes.GET("/get_products/:farm_id", productHandler.ListProducts)
	productRoutes.POST("/add_product/:farm_id", productHandler.AddProduct)
	productRoutes.POST("/edit_product/:id", productHandler.EditProduct)
	productRoutes.POST("/delete_product/:id", productHandler.DeleteProduct)
	productRoutes.GET("/get_production_records/:farm_id", productHandler.ListProductionRecords)
	productRoutes.POST("/add_production_record/:farm_id", productHandler.AddProductionRecord)
	productRoutes.DELETE("/delete_production_record/:farm_id/:id", productHandler.DeleteProductionRecord)
	productRoutes.GET("/get_product_sales/:farm_id", productHandler.ListSales)
	productRoutes.POST("/add_product_sale/:farm_id", productHandler.AddSale)
	productRoutes.DELETE("/delete_product_sale/:farm_id/:id", productHandler.DeleteSale)

	// System routes (public)
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(farmRoutes).
		Register(feedRoutes).
		Register(healthRoutes).
		Register(productRoutes).
		Register(systemRoutes)

	r.Setup()

	// Simple ping at API root for basic liveness checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthCheckHandler reports process and database health
func healthCheckHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
