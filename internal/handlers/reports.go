// Package handlers exposes the upload-driven dashboard API: one POST with a
// CSV file produces a stored report of aggregates, insights and
// recommendations, retrievable as JSON or as a PDF document.
package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nabilassungkar/MoodMelt/internal/dataset"
	"github.com/nabilassungkar/MoodMelt/internal/models"
	"github.com/nabilassungkar/MoodMelt/internal/report"
	"github.com/nabilassungkar/MoodMelt/internal/store"
)

// ReportHandler serves the report endpoints backed by the in-memory store.
type ReportHandler struct {
	store *store.Store
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(s *store.Store) *ReportHandler {
	return &ReportHandler{store: s}
}

// Register mounts the report routes on the given router group.
func (h *ReportHandler) Register(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.POST("", h.CreateReport)
		reports.GET("", h.ListReports)
		reports.GET("/:id", h.GetReport)
		reports.GET("/:id/pdf", h.DownloadPDF)
		reports.DELETE("/:id", h.DeleteReport)
	}
}

// CreateReport ingests an uploaded CSV file, runs the full
// normalize-aggregate pipeline and stores the resulting report. Malformed
// field values never fail the upload; they degrade to the documented
// defaults. A header-only file produces a zero-row report.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeMissingFile, "Upload a CSV file in the \"file\" form field.", gin.H{"reason": err.Error()})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to open uploaded file.", nil)
		return
	}
	defer f.Close()

	rows, err := dataset.ReadCSV(f)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidCSV, "Failed to parse uploaded CSV.", gin.H{"reason": err.Error()})
		return
	}

	records := dataset.Clean(rows)
	rep := h.store.Create(report.Build(fileHeader.Filename, records))

	log.Printf("Processed upload %q: %d rows, report ID %s", fileHeader.Filename, rep.RowCount, rep.ID)
	RespondWithSuccess(c, http.StatusCreated, rep)
}

// ListReports returns summaries of all stored reports, newest first.
func (h *ReportHandler) ListReports(c *gin.Context) {
	RespondWithSuccess(c, http.StatusOK, h.store.List())
}

// GetReport returns the full structured report for an ID.
func (h *ReportHandler) GetReport(c *gin.Context) {
	rep, ok := h.reportFromPath(c)
	if !ok {
		return
	}
	RespondWithSuccess(c, http.StatusOK, rep)
}

// DownloadPDF renders the stored report as a PDF document.
func (h *ReportHandler) DownloadPDF(c *gin.Context) {
	rep, ok := h.reportFromPath(c)
	if !ok {
		return
	}

	out, err := report.RenderPDF(rep)
	if err != nil {
		log.Printf("Failed to render PDF for report %s: %v", rep.ID, err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to render PDF report.", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "moodmelt_dashboard_report.pdf"))
	c.Data(http.StatusOK, "application/pdf", out)
}

// DeleteReport removes a stored report.
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, ok := h.idFromPath(c)
	if !ok {
		return
	}
	if err := h.store.Delete(id); err != nil {
		RespondWithError(c, http.StatusNotFound, models.ErrorCodeReportNotFound, "Report not found.", gin.H{"id": id})
		return
	}
	RespondWithSuccess(c, http.StatusNoContent, nil)
}

func (h *ReportHandler) idFromPath(c *gin.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidIDFormat, "Invalid ID format for report ID.", gin.H{"id": idStr})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReportHandler) reportFromPath(c *gin.Context) (models.Report, bool) {
	id, ok := h.idFromPath(c)
	if !ok {
		return models.Report{}, false
	}
	rep, ok := h.store.Get(id)
	if !ok {
		RespondWithError(c, http.StatusNotFound, models.ErrorCodeReportNotFound, "Report not found.", gin.H{"id": id})
		return models.Report{}, false
	}
	return rep, true
}
