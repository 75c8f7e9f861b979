package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"castingfy/internal/config"
	"castingfy/internal/database"
	"castingfy/internal/email"
	"castingfy/internal/handlers"
	"castingfy/internal/logger"
	"castingfy/internal/middleware"
	"castingfy/internal/routes"
	"castingfy/internal/services"
	"castingfy/internal/social"
	"castingfy/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the whole server: config, database, migrations, services,
// router, then listens until SIGINT/SIGTERM.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		// Needed so unique violations surface as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err.Error())
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", "error", err.Error())
	}

	container, err := initializeServices()
	if err != nil {
		logger.Fatal("failed to initialize services", "error", err.Error())
	}

	router := SetupRouter(db, container)

	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, port),
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", "error", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err.Error())
	}
	logger.Info("server stopped")
}

func initializeServices() (*services.ServiceContainer, error) {
	store, err := storage.New(context.Background())
	if err != nil {
		return nil, err
	}

	emailSvc := email.NewServiceFromConfig()
	instagram := social.NewInstagramClient()

	return services.NewServiceContainer(emailSvc, store, instagram), nil
}

// SetupRouter builds the gin engine with the full middleware chain
// and API routes. Tests call this directly with their own DB handle.
func SetupRouter(db *gorm.DB, container *services.ServiceContainer) *gin.Engine {
	cfg := config.GetConfig()
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	appHandlers := handlers.NewAppHandlers(container)
	routes.RegisterRoutes(router, appHandlers)

	return router
}
