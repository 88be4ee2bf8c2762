package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"eoscan/eosdb"
	"eoscan/pipeline"
	"eoscan/server/handlers"
	"eoscan/server/middleware"
)

// Server HTTP сервис оценки рисков EOS по данным инвентаризации
type Server struct {
	config     Config
	table      *eosdb.Table
	processor  *pipeline.Processor
	httpServer *http.Server
}

// NewServer создает новый сервер над загруженным справочником EOS
func NewServer(config Config, table *eosdb.Table) *Server {
	return &Server{
		config:    config,
		table:     table,
		processor: pipeline.NewProcessor(table, config.PipelineWorkers),
	}
}

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.buildHTTPHandler(),
		// WriteTimeout с запасом: обработка большого файла инвентаризации
		// выполняется синхронно внутри запроса
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	Logger.Info("Сервер запускается", "addr", addr, "eos_products", s.table.Len())

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}

	return nil
}

// Shutdown останавливает сервер, дожидаясь активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	Logger.Info("Остановка сервера")
	return s.httpServer.Shutdown(ctx)
}

// buildHTTPHandler собирает gin роутер с middleware и маршрутами
func (s *Server) buildHTTPHandler() http.Handler {
	// Режим Gin: release по умолчанию, переопределяется через GIN_MODE
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware(Logger))
	router.Use(middleware.GinRecoveryMiddleware(Logger))

	router.NoRoute(handlers.HandleNotFound)

	handlers.RegisterSwaggerRoutes(router, s.config.Port)
	s.registerHandlers(router)

	return router
}

// registerHandlers регистрирует обработчики API
func (s *Server) registerHandlers(router *gin.Engine) {
	healthHandler := handlers.NewHealthHandler(s.table.Len())
	processHandler := handlers.NewProcessHandler(s.processor, s.config.MaxUploadSizeMB<<20)
	normalizeHandler := handlers.NewNormalizeHandler(s.processor)
	eosHandler := handlers.NewEOSHandler(s.table)

	router.GET("/health", healthHandler.HandleHealth)

	api := router.Group("/api")
	{
		api.POST("/process-csv",
			middleware.GinUploadRateLimitMiddleware(s.config.UploadRatePerMinute),
			processHandler.HandleProcessCSV)
		api.POST("/normalize", normalizeHandler.HandleNormalize)
		api.GET("/eos/products", eosHandler.HandleListProducts)
	}
}
