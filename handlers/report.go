package handlers

import (
	"errors"
	"io"
	"net/http"

	"loanguard/metrics"
	"loanguard/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const reportField = "cibilReport"

// UploadReport attaches a CIBIL report to the session. It is sent along with
// the next analysis or comparison. A part without a Content-Type gets one
// sniffed from its bytes.
func (h *LoanHandler) UploadReport(c *gin.Context) {
	logger := getLogger(c)

	header, err := c.FormFile(reportField)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			logger.Warn("Failed to read report upload", zap.Error(err))
		}
		respondError(c, http.StatusBadRequest, "Please choose a CIBIL report to upload.")
		return
	}
	file, err := header.Open()
	if err != nil {
		logger.Error("Failed to open uploaded report", zap.Error(err))
		respondError(c, http.StatusBadRequest, "The uploaded file could not be read.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded report", zap.Error(err))
		respondError(c, http.StatusBadRequest, "The uploaded file could not be read.")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}
	report := &models.CIBILReport{Name: header.Filename, MIMEType: mimeType, Data: data}

	if _, ok := h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
		return s.WithReport(report)
	}); !ok {
		return
	}
	metrics.ReportUploads.Inc()
	logger.Info("CIBIL report attached",
		zap.String("name", report.Name),
		zap.String("mimeType", report.MIMEType),
		zap.Int("size", report.Size()),
	)
	respond(c, http.StatusOK, summarizeReport(report))
}

func (h *LoanHandler) ClearReport(c *gin.Context) {
	if _, ok := h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
		return s.WithoutReport()
	}); !ok {
		return
	}
	if c.Request.Method == http.MethodDelete {
		c.Status(http.StatusNoContent)
		return
	}
	respond(c, http.StatusOK, gin.H{"report": nil})
}
