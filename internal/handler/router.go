package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"beer-service/internal/handler/api"
	"beer-service/internal/handler/middleware"
	"beer-service/internal/handler/validation"
	"beer-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, beerHandler *api.BeerHandler, customerHandler *api.CustomerHandler) {
	validation.Setup()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, beerHandler, customerHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, beerHandler *api.BeerHandler, customerHandler *api.CustomerHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	beers := engine.Group(api.BeerPath)
	{
		addRoutes(beers, []route{
			{Method: http.MethodGet, Path: "", Handler: beerHandler.List},
			{Method: http.MethodPost, Path: "", Handler: beerHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: beerHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: beerHandler.Replace},
			{Method: http.MethodPatch, Path: "/:id", Handler: beerHandler.Patch},
			{Method: http.MethodDelete, Path: "/:id", Handler: beerHandler.Delete},
		})
	}

	customers := engine.Group(api.CustomerPath)
	{
		addRoutes(customers, []route{
			{Method: http.MethodGet, Path: "", Handler: customerHandler.List},
			{Method: http.MethodPost, Path: "", Handler: customerHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: customerHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: customerHandler.Replace},
			{Method: http.MethodPatch, Path: "/:id", Handler: customerHandler.Patch},
			{Method: http.MethodDelete, Path: "/:id", Handler: customerHandler.Delete},
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
