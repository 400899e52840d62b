package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	auditapp "github.com/shopledger/backend/internal/application/audit"
	recordapp "github.com/shopledger/backend/internal/application/record"
	snapshotapp "github.com/shopledger/backend/internal/application/snapshot"
	workspaceapp "github.com/shopledger/backend/internal/application/workspace"
	"github.com/shopledger/backend/internal/domain/snapshot"
	"github.com/shopledger/backend/internal/infrastructure/auth"
	"github.com/shopledger/backend/internal/infrastructure/config"
	"github.com/shopledger/backend/internal/infrastructure/lock"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"github.com/shopledger/backend/internal/infrastructure/persistence"
	"github.com/shopledger/backend/internal/infrastructure/remote"
	"github.com/shopledger/backend/internal/interfaces/http/handler"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
	"github.com/shopledger/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting ShopLedger Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	gormLogLevel := gormlogger.Silent
	if cfg.Log.Level == "debug" {
		gormLogLevel = gormlogger.Info
	}
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	workspaceRepo := persistence.NewGormWorkspaceRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	returnRepo := persistence.NewGormReturnRepository(db.DB)
	incomeRepo := persistence.NewGormIncomeRepository(db.DB)
	remittanceRepo := persistence.NewGormRemittanceRepository(db.DB)

	// Workspace stores for snapshot export and restore
	localStore := persistence.NewLocalWorkspaceStore(db, auditRepo, log)
	var remoteStore snapshot.WorkspaceStore
	if cfg.RemoteStore.BaseURL != "" {
		remoteStore = remote.NewWorkspaceStore(&cfg.RemoteStore, log)
		log.Info("Remote workspace store configured", zap.String("base_url", cfg.RemoteStore.BaseURL))
	}

	// Restore lock: Redis when enabled, in-memory otherwise
	lockFactory := lock.NewRestoreLockFactory(cfg.Redis,
		lock.WithLogger(log),
		lock.WithInMemoryFallback(true),
	)
	restoreLock, err := lockFactory.CreateLock()
	if err != nil {
		log.Fatal("Failed to create restore lock", zap.Error(err))
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	workspaceService := workspaceapp.NewService(workspaceRepo, userRepo, log)
	partyService := recordapp.NewPartyService(workspaceRepo, supplierRepo, customerRepo, employeeRepo)
	productService := recordapp.NewProductService(workspaceRepo, productRepo, supplierRepo)
	tradeService := recordapp.NewTradeService(workspaceRepo, purchaseRepo, saleRepo, returnRepo)
	financeService := recordapp.NewFinanceService(workspaceRepo, incomeRepo, remittanceRepo)
	auditService := auditapp.NewService(auditRepo, workspaceRepo)

	snapshotService := snapshotapp.NewService(
		workspaceRepo,
		userRepo,
		localStore,
		remoteStore,
		restoreLock,
		cfg.Restore.LockTTL,
		cfg.App.Version,
		log,
	)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(userRepo, jwtService)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	recordHandler := handler.NewRecordHandler(partyService, productService, tradeService, financeService)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request id, panic recovery, request logging,
	// security headers, CORS, then body size limit.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/token",
			"/api/v1/ping",
		},
	}))

	// Auth (public)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/token", authHandler.Token)

	// Workspaces and everything scoped under them
	workspaceRoutes := router.NewDomainGroup("workspace", "/workspaces")
	workspaceRoutes.POST("", workspaceHandler.Create)
	workspaceRoutes.GET("", workspaceHandler.List)
	workspaceRoutes.GET("/:workspaceId", workspaceHandler.Get)
	workspaceRoutes.PUT("/:workspaceId", workspaceHandler.Update)
	workspaceRoutes.DELETE("/:workspaceId", workspaceHandler.Delete)
	workspaceRoutes.GET("/:workspaceId/members", workspaceHandler.ListMembers)
	workspaceRoutes.POST("/:workspaceId/members", workspaceHandler.AddMember)
	workspaceRoutes.DELETE("/:workspaceId/members/:id", workspaceHandler.RemoveMember)

	// Snapshot export and restore
	workspaceRoutes.GET("/:workspaceId/export-data", snapshotHandler.Export)
	workspaceRoutes.POST("/:workspaceId/import-data", snapshotHandler.Import)

	// Audit log
	workspaceRoutes.GET("/:workspaceId/audit-logs", auditHandler.List)

	// Parties
	workspaceRoutes.POST("/:workspaceId/suppliers", recordHandler.CreateSupplier)
	workspaceRoutes.GET("/:workspaceId/suppliers", recordHandler.ListSuppliers)
	workspaceRoutes.PUT("/:workspaceId/suppliers/:id", recordHandler.UpdateSupplier)
	workspaceRoutes.DELETE("/:workspaceId/suppliers/:id", recordHandler.DeleteSupplier)
	workspaceRoutes.POST("/:workspaceId/customers", recordHandler.CreateCustomer)
	workspaceRoutes.GET("/:workspaceId/customers", recordHandler.ListCustomers)
	workspaceRoutes.DELETE("/:workspaceId/customers/:id", recordHandler.DeleteCustomer)
	workspaceRoutes.POST("/:workspaceId/employees", recordHandler.CreateEmployee)
	workspaceRoutes.GET("/:workspaceId/employees", recordHandler.ListEmployees)
	workspaceRoutes.DELETE("/:workspaceId/employees/:id", recordHandler.DeleteEmployee)

	// Products
	workspaceRoutes.POST("/:workspaceId/products", recordHandler.CreateProduct)
	workspaceRoutes.GET("/:workspaceId/products", recordHandler.ListProducts)
	workspaceRoutes.GET("/:workspaceId/products/:id", recordHandler.GetProduct)
	workspaceRoutes.PUT("/:workspaceId/products/:id", recordHandler.UpdateProduct)
	workspaceRoutes.DELETE("/:workspaceId/products/:id", recordHandler.DeleteProduct)

	// Trades
	workspaceRoutes.POST("/:workspaceId/purchases", recordHandler.CreatePurchase)
	workspaceRoutes.GET("/:workspaceId/purchases", recordHandler.ListPurchases)
	workspaceRoutes.DELETE("/:workspaceId/purchases/:id", recordHandler.DeletePurchase)
	workspaceRoutes.POST("/:workspaceId/sales", recordHandler.CreateSale)
	workspaceRoutes.GET("/:workspaceId/sales", recordHandler.ListSales)
	workspaceRoutes.DELETE("/:workspaceId/sales/:id", recordHandler.DeleteSale)
	workspaceRoutes.POST("/:workspaceId/returns", recordHandler.CreateReturn)
	workspaceRoutes.GET("/:workspaceId/returns", recordHandler.ListReturns)
	workspaceRoutes.DELETE("/:workspaceId/returns/:id", recordHandler.DeleteReturn)

	// Finance
	workspaceRoutes.POST("/:workspaceId/income", recordHandler.CreateIncome)
	workspaceRoutes.GET("/:workspaceId/income", recordHandler.ListIncome)
	workspaceRoutes.DELETE("/:workspaceId/income/:id", recordHandler.DeleteIncome)
	workspaceRoutes.POST("/:workspaceId/remittance", recordHandler.CreateRemittance)
	workspaceRoutes.GET("/:workspaceId/remittance", recordHandler.ListRemittance)
	workspaceRoutes.DELETE("/:workspaceId/remittance/:id", recordHandler.DeleteRemittance)

	r.Register(authRoutes).
		Register(workspaceRoutes)

	r.Setup()

	// Simple ping at root API level for basic health checks
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

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
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
