package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "staffdesk/docs" // This will be auto-generated
	"staffdesk/internal/adapter/http/handlers"
	"staffdesk/internal/adapter/notification"
	"staffdesk/internal/adapter/persistence/cache"
	"staffdesk/internal/adapter/persistence/repository"
	"staffdesk/internal/infrastructure/database"
	"staffdesk/internal/infrastructure/edge"
	"staffdesk/internal/usecase"
	"staffdesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const defaultPort = 8080

// Run wires the pipeline and serves until SIGINT/SIGTERM, then drains
// in-flight write-throughs before exiting.
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	lifecycle := getRoutes(logger)

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if p, perr := strconv.Atoi(v); perr == nil {
			port = p
		}
	}

	srv := &http.Server{Addr: ":" + strconv.Itoa(port), Handler: router}
	go func() {
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", serveErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	lifecycle.WaitForPersistence()
}

func getRoutes(logger *zap.Logger) *usecase.QuoteLifecycleUseCase {
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)

	quoteCache := cache.NewMemoryQuoteCache()
	if quotes, err := quoteRepo.ListAll(ctx); err != nil {
		// Cache-only degraded mode: everything issued from here until the
		// store recovers is lost on restart.
		logger.Warn("store unreachable at startup, starting with an empty cache", zap.Error(err))
	} else {
		quoteCache.Warm(quotes)
		logger.Info("quote cache warmed", zap.Int("quotes", len(quotes)))
	}

	allocator := usecase.NewQuoteNumberAllocator(ctx, quoteRepo, logger)
	emitter := notification.NewEmitter(logger)
	lifecycle := usecase.NewQuoteLifecycleUseCase(quoteCache, quoteRepo, emitter, allocator, logger)

	var deduper interfaces.IEventDeduper
	if rdb := edge.ConnectRedis(); rdb != nil {
		deduper = edge.NewRedisEventDeduper(rdb)
	} else {
		logger.Warn("edge store not configured, duplicate interaction suppression disabled")
	}

	quoteHandler := handlers.NewQuoteHandler(lifecycle)
	interactionHandler := handlers.NewInteractionHandler(lifecycle, deduper, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, interactionHandler)

	return lifecycle
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
