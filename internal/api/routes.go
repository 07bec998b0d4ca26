package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog_api/internal/api/handlers"
	"catalog_api/internal/config"
	"catalog_api/internal/middleware"
	"catalog_api/internal/service"
)

// SetupRoutes registers every route of the service. Auth requirements are
// expressed by group membership: only mutating item routes sit behind the
// API-key middleware.
func SetupRoutes(r *gin.Engine, services *service.Services, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(services.Product)
	itemHandler := handlers.NewItemHandler(services.Item)

	r.GET("/", handlers.Home)
	r.GET("/version", handlers.Version)
	r.GET("/add-product-form", handlers.AddProductForm)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	})

	api := r.Group("/api")

	// Public routes
	{
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.POST("/products", productHandler.CreateProduct)

		api.GET("/items", itemHandler.ListItems)
		api.GET("/items/:id", itemHandler.GetItem)
	}

	// Item mutations require the shared API key
	protected := api.Group("/items")
	protected.Use(middleware.APIKeyAuth(cfg.Auth.APIKey))
	{
		protected.POST("", itemHandler.CreateItem)
		protected.PUT("/:id", itemHandler.ReplaceItem)
		protected.PATCH("/:id", itemHandler.UpdateItem)
		protected.DELETE("/:id", itemHandler.DeleteItem)
	}
}
