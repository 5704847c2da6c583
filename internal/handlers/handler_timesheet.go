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

// timesheetHandler handles HTTP requests for punch aggregation and employee
// period summaries.
type timesheetHandler struct {
	timesheetService portssvc.TimesheetSvcFacade
}

// newTimesheetHandler creates a new timesheetHandler.
func newTimesheetHandler(ts portssvc.TimesheetSvcFacade) *timesheetHandler {
	return &timesheetHandler{
		timesheetService: ts,
	}
}

// registerTimesheetRoutes registers timesheet routes.
func registerTimesheetRoutes(rg *gin.RouterGroup, timesheetService portssvc.TimesheetSvcFacade) {
	h := newTimesheetHandler(timesheetService)

	timesheets := rg.Group("/timesheets")
	{
		timesheets.POST("/daily-hours", h.computeDailyHours)
	}
	employees := rg.Group("/employees")
	{
		employees.GET("/:employeeID/weekly-summary", h.getWeeklySummary)
		employees.GET("/:employeeID/payroll-history", h.getPayrollHistory)
	}
}

func (h *timesheetHandler) computeDailyHours(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ComputeDailyHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeDailyHours", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	days, parseErrs := h.timesheetService.ComputeDailyHours(c.Request.Context(), req.ToDomainPunches())

	resp := dto.ComputeDailyHoursResponse{
		WorkDays: dto.ToWorkDayResponses(days),
	}
	for _, perr := range parseErrs {
		resp.Warnings = append(resp.Warnings, perr.Error())
	}
	c.JSON(http.StatusOK, resp)
}

func (h *timesheetHandler) getWeeklySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	weekStart, err := timeclock.ParseDate(c.Query("weekStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekStart must be a YYYY-MM-DD date"})
		return
	}

	summary, err := h.timesheetService.GetWeeklySummary(c.Request.Context(), employeeID, weekStart)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute weekly summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute weekly summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWeeklySummaryResponse(summary))
}

func (h *timesheetHandler) getPayrollHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().UTC().Year())))
	if err != nil || year <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a positive integer"})
		return
	}

	items, err := h.timesheetService.GetEmployeePayrollHistory(c.Request.Context(), employeeID, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list payroll history", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payroll history"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"employeeID": employeeID, "year": year, "items": items})
}
