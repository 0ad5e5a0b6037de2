package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

type RouterOptions struct {
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// NewRouter mounts the page, API and health routes and wraps them with CORS.
func NewRouter(h *HTTPHandler, opts RouterOptions) http.Handler {
	engine := gin.New()
	engine.Use(RequestLogger(opts.Logger), gin.Recovery())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	engine.GET("/health", h.HealthCheck)

	pages := engine.Group("/inventory")
	{
		pages.GET("/", h.InventoryListPage)
		pages.GET("/:id/", h.InventoryDetailPage)
	}

	api := engine.Group("/api/v1")
	{
		api.GET("/inventory/", h.ListInventoryAPI)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
	})

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(engine)
}
