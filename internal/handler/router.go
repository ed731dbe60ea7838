package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"checkout-orchestrator/internal/handler/api"
	resdto "checkout-orchestrator/internal/handler/dto/response"
	"checkout-orchestrator/internal/handler/httperr"
	"checkout-orchestrator/internal/handler/middleware"
	"checkout-orchestrator/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, checkoutHandler *api.CheckoutHandler, orderHandler *api.OrderHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg.Server, checkoutHandler, orderHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

// Paths stay at the root because the storefront calls them there.
func setupRoutes(engine *gin.Engine, cfg config.ServerConfig, checkoutHandler *api.CheckoutHandler, orderHandler *api.OrderHandler) {
	engine.GET("/health", healthCheck)
	engine.NoRoute(notFound)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limitBody := middleware.MaxBodySize(cfg.MaxBodyBytes)

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/create-checkout-session", Handler: checkoutHandler.CreateSession, Mw: []gin.HandlerFunc{limitBody}},
		{Method: http.MethodGet, Path: "/success", Handler: checkoutHandler.GetSession},
		{Method: http.MethodPost, Path: "/order", Handler: orderHandler.Place, Mw: []gin.HandlerFunc{limitBody}},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{Status: "ok"})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, httperr.Response{Error: "Not found"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
