package api

import (
	"errors"
	"net/http"

	"retail_sales_api/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// salesHandler holds the sales service and implements HTTP handlers
// for the sale record endpoints.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleListSales handles GET /sales: filtered, sorted, paginated
// listing. Malformed optional filter values never cause an error
// response; the filter just isn't applied.
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	params := sales.ListParams{
		Search:          ctx.Query("search"),
		StartDate:       ctx.Query("startDate"),
		EndDate:         ctx.Query("endDate"),
		CustomerRegion:  ctx.QueryArray("customerRegion"),
		Gender:          ctx.QueryArray("gender"),
		MinAge:          ctx.Query("minAge"),
		MaxAge:          ctx.Query("maxAge"),
		ProductCategory: ctx.QueryArray("productCategory"),
		Tags:            ctx.QueryArray("tags"),
		PaymentMethod:   ctx.QueryArray("paymentMethod"),
		SortBy:          ctx.Query("sortBy"),
		SortOrder:       ctx.Query("sortOrder"),
		Page:            ctx.Query("page"),
	}

	records, pagination, err := h.salesService.ListSales(ctx.Request.Context(), params)
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch sales records",
			"error":   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       records,
		"pagination": pagination,
	})
}

// handleGetSale handles GET /sales/:id.
func (h *salesHandler) handleGetSale(ctx *gin.Context) {
	sale, err := h.salesService.GetSale(ctx.Request.Context(), ctx.Param("id"))
	if errors.Is(err, sales.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Sale record not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch sale", zap.String("sale_id", ctx.Param("id")), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch sale record",
			"error":   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sale,
	})
}

// handleCreateSale handles POST /sales. The payload is bound as an
// untyped document and pushed through validation; a rejected payload
// returns every violation in one batch.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var payload map[string]any
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request payload",
		})
		return
	}

	sale, err := h.salesService.CreateSale(ctx.Request.Context(), payload)
	if err != nil {
		var vErr *sales.ValidationError
		if errors.As(err, &vErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed",
				"errors":  vErr.Errors,
			})
			return
		}

		h.logger.Error("failed to create sale", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create sale record",
			"error":   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    sale,
		"message": "Sale recorded successfully",
	})
}

// handleFilterOptions handles GET /sales/filter-options: the distinct
// values of every filterable field, for populating filter choices.
func (h *salesHandler) handleFilterOptions(ctx *gin.Context) {
	opts, err := h.salesService.ListFilterOptions(ctx.Request.Context())
	if err != nil {
		h.logger.Error("failed to fetch filter options", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch filter options",
			"error":   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    opts,
	})
}
