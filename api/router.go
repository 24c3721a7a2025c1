package api

import (
	"net/http"

	"retail_sales_api/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes binds the sale record endpoints on the given Gin engine.
// The service is injected by the caller; the router owns no state.
// The static /sales/filter-options segment takes precedence over the
// /sales/:id parameter.
func InitRoutes(e *gin.Engine, salesService *sales.Service, logger *zap.Logger) {
	salesHandler := NewSalesHandler(salesService, logger)

	e.GET("/sales", salesHandler.handleListSales)
	e.GET("/sales/filter-options", salesHandler.handleFilterOptions)
	e.GET("/sales/:id", salesHandler.handleGetSale)
	e.POST("/sales", salesHandler.handleCreateSale)

	e.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Server is running",
		})
	})
}
