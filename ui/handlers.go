package ui

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"guardrails/adapters/ingest"
	"guardrails/domain/dataset"
	"guardrails/domain/report"
	"guardrails/internal/analysis"
)

// sampleRowLimit caps the raw rows echoed back in the analyze response
const sampleRowLimit = 20

var validExtensions = []string{".csv", ".xlsx", ".xls"}

var validMimeTypes = []string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", // .xlsx
	"application/vnd.ms-excel", // .xls
	"text/csv",
	"application/csv",
	"text/plain", // some CSV uploads arrive as plain text
	"application/octet-stream",
}

// analyzeResponse is the core report enriched with transport-owned
// fields. Core-owned fields pass through unmodified.
type analyzeResponse struct {
	report.Report
	SampleColumns []string                 `json:"sample_columns"`
	SampleRows    []map[string]interface{} `json:"sample_rows"`
	AIInsights    map[string]interface{}   `json:"ai_insights"`
	AnalysisID    string                   `json:"analysis_id"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":   "Data Quality Guardrails",
		"status": "ok",
		"health": "/api/health",
	})
}

func (s *Server) handleAPIRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyze accepts a multipart dataset (required) and baseline
// (optional), runs the analysis pipeline, and returns the enriched
// report. All upload validation happens before the core runs.
func (s *Server) handleAnalyze(c *gin.Context) {
	datasetFile, err := c.FormFile("dataset")
	if err != nil {
		s.logger.Warn("[handleAnalyze] No dataset uploaded: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No dataset file uploaded"})
		return
	}
	if msg := s.validateUpload(datasetFile); msg != "" {
		s.logger.Warn("[handleAnalyze] Rejected dataset %q: %s", datasetFile.Filename, msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	baselineFile, err := c.FormFile("baseline")
	if err != nil {
		baselineFile = nil
	} else if msg := s.validateUpload(baselineFile); msg != "" {
		s.logger.Warn("[handleAnalyze] Rejected baseline %q: %s", baselineFile.Filename, msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var ds, baseline *dataset.Dataset
	g := new(errgroup.Group)
	g.Go(func() error {
		var decodeErr error
		ds, decodeErr = decodeUpload(datasetFile)
		if decodeErr != nil {
			return fmt.Errorf("Invalid dataset file: %v", decodeErr)
		}
		return nil
	})
	if baselineFile != nil {
		g.Go(func() error {
			var decodeErr error
			baseline, decodeErr = decodeUpload(baselineFile)
			if decodeErr != nil {
				return fmt.Errorf("Invalid baseline file: %v", decodeErr)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("[handleAnalyze] Decode failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := analysis.Analyze(ds, baseline)
	s.logger.Info("[handleAnalyze] Analyzed %q: %d rows, %d columns, %d recommendations",
		datasetFile.Filename, result.Profile.RowCount, result.Profile.ColumnCount, len(result.Recommendations))

	c.JSON(http.StatusOK, analyzeResponse{
		Report:        result,
		SampleColumns: ds.ColumnNames(),
		SampleRows:    ds.Rows(sampleRowLimit),
		AIInsights:    s.insights.Generate(c.Request.Context(), &result),
		AnalysisID:    newAnalysisID(),
		GeneratedAt:   time.Now().UTC(),
	})
}

// validateUpload checks size, extension, and MIME type; returns an
// error message for the client, or empty when the upload is acceptable
func (s *Server) validateUpload(header *multipart.FileHeader) string {
	if header.Size > s.config.Upload.MaxFileSize {
		return fmt.Sprintf("File size (%.1f MB) exceeds the %d MB limit",
			float64(header.Size)/(1024*1024), s.config.Upload.MaxFileSize/(1024*1024))
	}

	name := strings.ToLower(header.Filename)
	hasValidExtension := false
	for _, ext := range validExtensions {
		if strings.HasSuffix(name, ext) {
			hasValidExtension = true
			break
		}
	}
	if !hasValidExtension {
		return "Only CSV (.csv) and Excel (.xlsx, .xls) files are allowed"
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		return ""
	}
	for _, mimeType := range validMimeTypes {
		if strings.HasPrefix(contentType, mimeType) {
			return ""
		}
	}
	return fmt.Sprintf("Unsupported content type: %s", contentType)
}

func decodeUpload(header *multipart.FileHeader) (*dataset.Dataset, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ingest.Decode(header.Filename, file)
}

// newAnalysisID returns a time-ordered identifier, falling back to a
// random one if v7 generation fails
func newAnalysisID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
