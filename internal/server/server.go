package server

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-Solo/internal/hub"
	_ "embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

//go:embed web/index.html
var indexHTML []byte

type Server struct {
	engine   *gin.Engine
	hub      *hub.Hub
	games    *controller.GameController
	upgrader websocket.Upgrader
}

func NewServer(h *hub.Hub, games *controller.GameController) *Server {
	s := &Server{
		engine: gin.New(),
		hub:    h,
		games:  games,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.engine.Use(gin.Recovery(), requestTracing())
	s.registerHandlers()
	return s
}

// Engine returns the HTTP handler serving the page, the API and the
// websocket endpoint.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerHandlers() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "games": s.hub.Len()})
	})

	api := s.engine.Group("/api/games")
	{
		api.POST("", s.games.Create)
		api.GET("/:id", s.games.Get)
		api.POST("/:id/moves", s.games.Move)
		api.POST("/:id/reset", s.games.Reset)
		api.DELETE("/:id", s.games.Delete)
	}

	s.engine.GET("/ws/games/:id", s.handleWebSocket)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// requestTracing opens a span per request and logs its outcome.
func requestTracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx, span := tracer.Start(c.Request.Context(), "http "+c.Request.Method+" "+c.FullPath(), trace.WithAttributes(
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.method", c.Request.Method),
		))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		slog.DebugContext(ctx, "request served",
			"http.method", c.Request.Method,
			"http.path", c.Request.URL.Path,
			"http.status", status,
			"duration", time.Since(start),
		)
	}
}
