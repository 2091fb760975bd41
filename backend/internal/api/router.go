package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"hobbygraph/backend/internal/graph"
)

// Store is the persistence surface the handlers depend on, implemented by
// *graph.Repository.
type Store interface {
	ListUsers(ctx context.Context) ([]graph.User, error)
	GetUser(ctx context.Context, userID string) (*graph.User, error)
	CreateUser(ctx context.Context, username string, age int, hobbies []string) (*graph.User, error)
	UpdateUser(ctx context.Context, userID string, patch graph.UserPatch) (*graph.User, error)
	DeleteUser(ctx context.Context, userID string) error
	LinkUsers(ctx context.Context, userID, friendID string) error
	UnlinkUsers(ctx context.Context, userID, friendID string) error
	ProjectGraph(ctx context.Context) (*graph.GraphData, error)
}

// NewRouter builds the gin engine with all middleware and routes
func NewRouter(store Store, log *zap.Logger, allowOrigin string) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(log))
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(allowOrigin))

	h := &handlers{store: store, logger: log}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := router.Group("/users")
	{
		// Graph listing is registered ahead of the :id route so "graph" is
		// never parsed as a user id.
		users.GET("/graph/all", h.getGraph)

		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
		users.POST("/:id/link", h.linkUser)
		users.DELETE("/:id/unlink", h.unlinkUser)
	}

	return router
}

// requestLogger logs each request with method, path, status and latency
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}

func corsMiddleware(allowOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
