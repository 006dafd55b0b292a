package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"premium-reconciler/internal/handler/api"
	"premium-reconciler/internal/handler/middleware"
	"premium-reconciler/internal/pkg/config"
	"premium-reconciler/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Users   *api.UserHandler
	Orders  *api.OrderHandler
	Rewards *api.RewardHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		users := apiGroup.Group("/users/:owner")
		addRoutes(users, []route{
			{Method: http.MethodPut, Path: "", Handler: h.Users.Register},
			{Method: http.MethodGet, Path: "/entitlement", Handler: h.Users.Entitlement},
			{Method: http.MethodPost, Path: "/orders", Handler: h.Orders.Create},
			{Method: http.MethodGet, Path: "/orders", Handler: h.Orders.Recent},
			{Method: http.MethodGet, Path: "/orders/pending", Handler: h.Orders.Pending},
			{Method: http.MethodPost, Path: "/orders/verify", Handler: h.Orders.Verify},
			{Method: http.MethodPost, Path: "/claims", Handler: h.Rewards.Claim},
			{Method: http.MethodGet, Path: "/claims", Handler: h.Rewards.ClaimStatus},
			{Method: http.MethodGet, Path: "/points", Handler: h.Rewards.Points},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/leaderboard", Handler: h.Rewards.Leaderboard},
		})

		admin := apiGroup.Group("/admin")
		adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin)}
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/points", Handler: h.Admin.GrantPoints, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/broadcasts", Handler: h.Admin.Broadcast, Mw: adminOnly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
