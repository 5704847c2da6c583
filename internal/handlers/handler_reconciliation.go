package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mosshrp/payroll_backend/internal/apperrors"
	portssvc "github.com/mosshrp/payroll_backend/internal/core/ports/services"
	"github.com/mosshrp/payroll_backend/internal/dto"
	"github.com/mosshrp/payroll_backend/internal/middleware"
)

// reconciliationHandler handles HTTP requests for the hotel-vs-MOSS hours
// approval workflow. Every mutation requires an authenticated actor for
// audit attribution.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

// newReconciliationHandler creates a new reconciliationHandler.
func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{
		reconciliationService: rs,
	}
}

// registerReconciliationRoutes registers reconciliation workflow routes.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	periods := rg.Group("/periods")
	{
		periods.GET("/:periodID/reconciliation", h.getReconciliation)
		periods.GET("/:periodID/reconciliation/discrepancies", h.getDiscrepancies)
	}

	reconciliations := rg.Group("/reconciliations")
	{
		reconciliations.POST("/:reconciliationID/bulk-approve", h.bulkApprove)
		reconciliations.PUT("/:reconciliationID/line-items", h.saveLineItem)
		reconciliations.POST("/:reconciliationID/finalize", h.finalize)
		reconciliations.GET("/:reconciliationID/audit-trail", h.getAuditTrail)
	}
}

func (h *reconciliationHandler) getReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	rec, err := h.reconciliationService.LoadReconciliation(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No reconciliation exists for this period"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to load reconciliation", slog.String("error", err.Error()), slog.String("period_id", periodID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reconciliation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(rec))
}

func (h *reconciliationHandler) getDiscrepancies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	rec, err := h.reconciliationService.LoadReconciliation(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No reconciliation exists for this period"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to load reconciliation", slog.String("error", err.Error()), slog.String("period_id", periodID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reconciliation"})
		}
		return
	}

	c.JSON(http.StatusOK, h.reconciliationService.ClassifyDiscrepancies(rec))
}

func (h *reconciliationHandler) bulkApprove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconciliationID := c.Param("reconciliationID")

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.BulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulk approve", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	count, err := h.reconciliationService.BulkApprove(c.Request.Context(), reconciliationID, req.EmployeeIDs, actor)
	if err != nil {
		var auditWarn *apperrors.AuditWriteWarning
		if errors.As(err, &auditWarn) {
			// The approvals are committed; only their audit trail is behind.
			logger.Warn("Bulk approve committed with audit write failure", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, gin.H{"approvedCount": count, "warning": auditWarn.Error()})
		} else if errors.Is(err, apperrors.ErrPrecondition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reconciliation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Bulk approve failed", slog.String("error", err.Error()), slog.String("reconciliation_id", reconciliationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Bulk approve failed", "approvedCount": count})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BulkApproveResponse{ApprovedCount: count})
}

func (h *reconciliationHandler) saveLineItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconciliationID := c.Param("reconciliationID")

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SaveLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for save line item", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	err := h.reconciliationService.SaveLineItem(c.Request.Context(), reconciliationID, req, actor)
	if err != nil {
		var auditWarn *apperrors.AuditWriteWarning
		if errors.As(err, &auditWarn) {
			logger.Warn("Line item saved with audit write failure", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, gin.H{"warning": auditWarn.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrPrecondition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save line item", slog.String("error", err.Error()), slog.String("reconciliation_id", reconciliationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save line item"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *reconciliationHandler) finalize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconciliationID := c.Param("reconciliationID")

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.FinalizeReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for finalize", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rec, err := h.reconciliationService.FinalizeReconciliation(c.Request.Context(), reconciliationID, req, actor)
	if err != nil {
		var auditWarn *apperrors.AuditWriteWarning
		if errors.As(err, &auditWarn) {
			logger.Warn("Reconciliation finalized with audit write failure", slog.String("error", err.Error()))
			resp := dto.ToReconciliationResponse(rec)
			c.JSON(http.StatusOK, gin.H{"reconciliation": resp, "warning": auditWarn.Error()})
		} else if errors.Is(err, apperrors.ErrPrecondition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reconciliation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to finalize reconciliation", slog.String("error", err.Error()), slog.String("reconciliation_id", reconciliationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize reconciliation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(rec))
}

func (h *reconciliationHandler) getAuditTrail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconciliationID := c.Param("reconciliationID")

	entries, err := h.reconciliationService.ListAuditTrail(c.Request.Context(), reconciliationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list audit trail", slog.String("error", err.Error()), slog.String("reconciliation_id", reconciliationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit trail"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
