package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskflow/internal/config"
	"taskflow/internal/handler"
	"taskflow/internal/middleware"
	"taskflow/internal/repository"
	"taskflow/internal/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	Engine *gin.Engine
	Store  storage.Store
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	gin.SetMode(cfg.GinMode)

	// Session storage
	var store storage.Store
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		redisStore, err := storage.NewRedisStoreFromURL(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = redisStore
		log.Info("Connected to redis")
	} else {
		store = storage.NewMemoryStore()
		log.Info("REDIS_URL not set, keeping sessions in memory")
	}

	return &Server{
		Engine: NewRouter(store, cfg.SessionTTL),
		Store:  store,
		Config: cfg,
	}, nil
}

// NewRouter builds the gin engine with every route on top of store.
func NewRouter(store storage.Store, sessionTTL time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	repo := repository.NewSessionRepository(store, sessionTTL)

	// Initialize handlers
	taskHandler := handler.NewTaskHandler(repo, time.Now)
	boardHandler := handler.NewBoardHandler(repo, time.Now)
	preferencesHandler := handler.NewPreferencesHandler(repo)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	session := r.Group("/")
	session.Use(middleware.SessionMiddleware(sessionTTL))
	{
		// Task routes
		session.GET("/tasks", taskHandler.List)
		session.POST("/tasks", taskHandler.Create)
		session.GET("/tasks/:id", taskHandler.GetByID)
		session.PUT("/tasks/:id", taskHandler.Update)
		session.DELETE("/tasks/:id", taskHandler.Delete)
		session.POST("/tasks/:id/drop", taskHandler.Drop)

		// Board routes
		session.GET("/board", boardHandler.Get)
		session.POST("/board/move", boardHandler.Move)
		session.GET("/stats", boardHandler.Stats)
		session.GET("/categories", boardHandler.Categories)
		session.GET("/columns", boardHandler.Columns)

		// Preferences routes
		session.GET("/preferences", preferencesHandler.Get)
		session.PUT("/preferences", preferencesHandler.Update)
	}
	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Infof("Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %s", err)
	}

	if closer, ok := s.Store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.WithError(err).Warn("Failed to close session store")
		}
	}

	log.Info("Server exited properly")
}
