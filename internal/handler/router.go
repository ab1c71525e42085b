package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"room-reservation/internal/handler/api"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterParams struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	DB                 Pinger
	Metrics            *middleware.Metrics
	AuthMiddleware     *middleware.AuthMiddleware
	AuthHandler        *api.AuthHandler
	LocationHandler    *api.LocationHandler
	RoomHandler        *api.RoomHandler
	ReservationHandler *api.ReservationHandler
	ParticipantHandler *api.ParticipantHandler
	UserHandler        *api.UserHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(metrics.Middleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	authRequired := p.AuthMiddleware.RequireAuth()

	engine.GET("/health", healthCheck(p.DB))
	if p.Config.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me, Mw: []gin.HandlerFunc{authRequired}},
			})
		}

		locations := v1.Group("/locations")
		locations.Use(authRequired)
		{
			addRoutes(locations, []route{
				{Method: http.MethodPost, Path: "", Handler: p.LocationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: p.LocationHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.LocationHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: p.LocationHandler.Update},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.LocationHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.LocationHandler.Delete},
			})
		}

		rooms := v1.Group("/rooms")
		rooms.Use(authRequired)
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: p.RoomHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: p.RoomHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.RoomHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: p.RoomHandler.Update},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.RoomHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.RoomHandler.Delete},
			})
		}

		reservations := v1.Group("/reservations")
		reservations.Use(authRequired)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: p.ReservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: p.ReservationHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.ReservationHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: p.ReservationHandler.Replace},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.ReservationHandler.Patch},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.ReservationHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/participants", Handler: p.ParticipantHandler.ListByReservation},
				{Method: http.MethodDelete, Path: "/:id/participants", Handler: p.ParticipantHandler.DeleteByReservation},
			})
		}

		participants := v1.Group("/participants")
		participants.Use(authRequired)
		{
			addRoutes(participants, []route{
				{Method: http.MethodPost, Path: "", Handler: p.ParticipantHandler.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.ParticipantHandler.Delete},
			})
		}

		users := v1.Group("/users")
		users.Use(authRequired)
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: p.UserHandler.List, Mw: []gin.HandlerFunc{p.AuthMiddleware.RequireAdmin()}},
				{Method: http.MethodGet, Path: "/search", Handler: p.UserHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: p.UserHandler.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check that the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": "ok",
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
