package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mosshrp/payroll_backend/internal/apperrors"
	portssvc "github.com/mosshrp/payroll_backend/internal/core/ports/services"
	"github.com/mosshrp/payroll_backend/internal/dto"
	"github.com/mosshrp/payroll_backend/internal/middleware"
	"github.com/mosshrp/payroll_backend/internal/utils/timeclock"
)

// payrollHandler handles HTTP requests for hotel-level payroll aggregation.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

// newPayrollHandler creates a new payrollHandler.
func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{
		payrollService: ps,
	}
}

// registerPayrollRoutes registers payroll aggregation routes.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	payroll := rg.Group("/payroll")
	{
		payroll.GET("", h.listPayrollHistory)
		payroll.GET("/:payrollID", h.getPayrollDetails)
		payroll.POST("/weekly-summaries", h.getWeeklySummaries)
	}
	hotels := rg.Group("/hotels")
	{
		hotels.GET("/:hotelID/aggregations/monthly", h.getMonthlyAggregation)
		hotels.GET("/:hotelID/aggregations/ytd", h.getYTDSummary)
		hotels.GET("/:hotelID/aggregations/summary", h.getPayrollSummary)
	}
}

func (h *payrollHandler) listPayrollHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var filters dto.PayrollHistoryFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.payrollService.ListPayrollHistory(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list payroll history", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payroll history"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *payrollHandler) getPayrollDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payrollID := c.Param("payrollID")

	record, items, err := h.payrollService.GetPayrollDetails(c.Request.Context(), payrollID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payroll not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get payroll details", slog.String("error", err.Error()), slog.String("payroll_id", payrollID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payroll details"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"payroll": record, "items": items})
}

func (h *payrollHandler) getWeeklySummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.WeeklySummariesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for weekly summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	weekStart, err := timeclock.ParseDate(req.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekStart must be a YYYY-MM-DD date"})
		return
	}

	summaries, failures, err := h.payrollService.GetWeeklySummaries(c.Request.Context(), req.EmployeeIDs, weekStart)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Batch weekly summaries failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute weekly summaries"})
		}
		return
	}

	resp := dto.WeeklySummariesResponse{
		Summaries: make(map[string]dto.WeeklySummaryResponse, len(summaries)),
	}
	for employeeID, summary := range summaries {
		resp.Summaries[employeeID] = dto.ToWeeklySummaryResponse(summary)
	}
	if len(failures) > 0 {
		resp.Failures = make(map[string]string, len(failures))
		for employeeID, ferr := range failures {
			resp.Failures[employeeID] = ferr.Error()
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *payrollHandler) getMonthlyAggregation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	hotelID := c.Param("hotelID")

	year, month, ok := h.yearMonthParams(c)
	if !ok {
		return
	}

	agg, err := h.payrollService.GetMonthlyAggregation(c.Request.Context(), hotelID, year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute monthly aggregation", slog.String("error", err.Error()), slog.String("hotel_id", hotelID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly aggregation"})
		}
		return
	}

	c.JSON(http.StatusOK, agg)
}

func (h *payrollHandler) getYTDSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	hotelID := c.Param("hotelID")

	year, ok := h.yearParam(c)
	if !ok {
		return
	}

	summary, err := h.payrollService.GetYTDSummary(c.Request.Context(), hotelID, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute YTD summary", slog.String("error", err.Error()), slog.String("hotel_id", hotelID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute YTD summary"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *payrollHandler) getPayrollSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	hotelID := c.Param("hotelID")

	year, ok := h.yearParam(c)
	if !ok {
		return
	}

	summary, err := h.payrollService.GetPayrollSummary(c.Request.Context(), hotelID, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute payroll summary", slog.String("error", err.Error()), slog.String("hotel_id", hotelID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute payroll summary"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *payrollHandler) yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().UTC().Year())))
	if err != nil || year <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a positive integer"})
		return 0, false
	}
	return year, true
}

func (h *payrollHandler) yearMonthParams(c *gin.Context) (int, int, bool) {
	year, ok := h.yearParam(c)
	if !ok {
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer between 1 and 12"})
		return 0, 0, false
	}
	return year, month, true
}
