package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"employee-api/internal/shared/middleware"
	"employee-api/internal/shared/response"
	"employee-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares - Recovery ngoài cùng để bắt panic của mọi middleware sau
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupEmployeeRoutes(api, c)
	}

	setupStaticClient(router, c.Config.App.StaticDir)

	return router
}

// ========================================
// EMPLOYEE ROUTES
// ========================================
func setupEmployeeRoutes(api *gin.RouterGroup, c *container.Container) {
	employees := api.Group("/employees")
	{
		employees.GET("", c.EmployeeHandler.List)
		employees.POST("", c.EmployeeHandler.Create)
		employees.GET("/export", c.EmployeeHandler.Export)
		employees.POST("/increment-and-sum", c.EmployeeHandler.IncrementAndSum)
		// path cũ của client
		employees.POST("/update-values-and-sum", c.EmployeeHandler.IncrementAndSum)
		employees.GET("/:id", c.EmployeeHandler.GetByID)
		employees.PUT("/:id", c.EmployeeHandler.Update)
		employees.DELETE("/:id", c.EmployeeHandler.Delete)
	}
}

// setupStaticClient serve built client + SPA fallback về index.html.
// Request /api/* không match vẫn trả JSON 404.
func setupStaticClient(router *gin.Engine, dir string) {
	router.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if dir == "" || strings.HasPrefix(path, "/api/") || ctx.Request.Method != http.MethodGet {
			response.NotFound(ctx, "Resource not found")
			return
		}

		file := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			ctx.File(file)
			return
		}
		ctx.File(filepath.Join(dir, "index.html"))
	})
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		components := gin.H{}
		for name, err := range c.HealthCheck(checkCtx) {
			if err != nil {
				status = http.StatusServiceUnavailable
				components[name] = "unhealthy"
				continue
			}
			components[name] = "healthy"
		}

		state := "healthy"
		if status != http.StatusOK {
			state = "unhealthy"
		}

		ctx.JSON(status, gin.H{
			"status":      state,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"components":  components,
			"timestamp":   time.Now().UTC(),
		})
	}
}
