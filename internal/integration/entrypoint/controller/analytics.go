// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyimob/backend/internal/application/usecase/analytics"
	"github.com/easyimob/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles the analytics and raw data endpoints.
//
// Every handler is fail-soft: on any internal failure it responds with HTTP
// 500 and an empty body of the correct shape, never an error payload. The
// dashboard treats that identically to "no data available".
type AnalyticsController struct {
	listRawPaymentsUseCase       *analytics.ListRawPaymentsUseCase
	getPaymentsByPropertyUseCase *analytics.GetPaymentsByPropertyUseCase
	getSalesByMonthUseCase       *analytics.GetSalesByMonthUseCase
	getSalesShareByTypeUseCase   *analytics.GetSalesShareByTypeUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	listRawPaymentsUseCase *analytics.ListRawPaymentsUseCase,
	getPaymentsByPropertyUseCase *analytics.GetPaymentsByPropertyUseCase,
	getSalesByMonthUseCase *analytics.GetSalesByMonthUseCase,
	getSalesShareByTypeUseCase *analytics.GetSalesShareByTypeUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		listRawPaymentsUseCase:       listRawPaymentsUseCase,
		getPaymentsByPropertyUseCase: getPaymentsByPropertyUseCase,
		getSalesByMonthUseCase:       getSalesByMonthUseCase,
		getSalesShareByTypeUseCase:   getSalesShareByTypeUseCase,
	}
}

// GetRawPayments handles GET /raw/payments requests.
// It returns the unaggregated six-column join result.
func (c *AnalyticsController) GetRawPayments(ctx *gin.Context) {
	payments, err := c.listRawPaymentsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		slog.Error("Failed to list raw payments", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.EmptyRawPaymentsResponse())
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRawPaymentsResponse(payments))
}

// GetPaymentsByProperty handles GET /analytics/payments-by-property requests.
// It returns the accumulated payment total per property, highest first.
func (c *AnalyticsController) GetPaymentsByProperty(ctx *gin.Context) {
	totals, err := c.getPaymentsByPropertyUseCase.Execute(ctx.Request.Context())
	if err != nil {
		slog.Error("Failed to get payments by property", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.EmptyPaymentsByPropertyResponse())
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentsByPropertyResponse(totals))
}

// GetSalesByMonth handles GET /analytics/sales-by-month requests.
// It returns the chronological monthly total/count series.
func (c *AnalyticsController) GetSalesByMonth(ctx *gin.Context) {
	output, err := c.getSalesByMonthUseCase.Execute(ctx.Request.Context())
	if err != nil {
		slog.Error("Failed to get sales by month", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.EmptySalesByMonthResponse())
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesByMonthResponse(output))
}

// GetSalesShareByType handles GET /analytics/sales-share-by-type requests.
// It returns the percentage share of payment records per property type.
func (c *AnalyticsController) GetSalesShareByType(ctx *gin.Context) {
	output, err := c.getSalesShareByTypeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		slog.Error("Failed to get sales share by type", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.EmptySalesShareByTypeResponse())
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesShareByTypeResponse(output))
}
