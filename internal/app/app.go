package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "vitacoin/internal/controller/http"
	"vitacoin/internal/repo/persistent"
	"vitacoin/internal/simulation"
	"vitacoin/internal/usecase"
	"vitacoin/pkg/config"
	"vitacoin/pkg/logger"
	"vitacoin/pkg/middleware"
	"vitacoin/pkg/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	// Initialize repositories
	ledgerRepo := persistent.NewLedgerRepository(db)
	configRepo := persistent.NewConfigRepository(db)
	queryRepo := persistent.NewQueryRepository(db)
	userRepo := persistent.NewUserRepository(db)

	// Initialize use cases
	configUseCase := usecase.NewConfigUseCase(configRepo, log)
	ledgerUseCase := usecase.NewLedgerUseCase(ledgerRepo, configUseCase, queueClient, log)
	queryUseCase := usecase.NewQueryUseCase(queryRepo, redisClient, log)
	userUseCase := usecase.NewUserUseCase(userRepo, log)

	simulator := simulation.New(ledgerUseCase, userUseCase, configUseCase, log, cfg.SimulationInterval, nil)

	// Initialize HTTP handlers
	ledgerHandler := controller.NewLedgerHandler(ledgerUseCase, log)
	configHandler := controller.NewConfigHandler(configUseCase, log)
	queryHandler := controller.NewQueryHandler(queryUseCase, log)
	userHandler := controller.NewUserHandler(userUseCase, log)
	demoHandler := controller.NewDemoHandler(simulator, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute))
	}

	{
		api.POST("/users", userHandler.Register)
		api.GET("/users", userHandler.List)

		api.GET("/transactions", queryHandler.Transactions)
		api.POST("/transactions", ledgerHandler.CreateTransaction)

		api.POST("/activities/report", ledgerHandler.ReportActivity)

		api.GET("/reward-configs", configHandler.List)
		api.PUT("/reward-configs/:activityType", configHandler.Upsert)

		api.GET("/stats", queryHandler.Stats)
		api.GET("/stats/leaderboard", queryHandler.Leaderboard)

		api.POST("/demo/simulate-activity", demoHandler.SimulateActivity)
		api.POST("/demo/simulate-purchase", demoHandler.SimulatePurchase)
	}

	// Background simulation generator
	simCtx, stopSim := context.WithCancel(context.Background())
	defer stopSim()
	if cfg.SimulationEnabled {
		go simulator.Start(simCtx)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Ledger service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down ledger service...")

	stopSim()

	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Ledger service exited")
}
