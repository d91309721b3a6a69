package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescrm/internal/models"
	"salescrm/internal/repositories"
	"salescrm/internal/services"
)

// stubDealRepo embeds the interface; only the methods a test exercises are
// implemented, anything else panics.
type stubDealRepo struct {
	repositories.DealRepository
	reportCounts repositories.MonthlyReportRow
}

func (s *stubDealRepo) MonthlyReportCounts(from, to time.Time) (repositories.MonthlyReportRow, error) {
	return s.reportCounts, nil
}

type stubGenerator struct {
	path string
	err  error
}

func (g *stubGenerator) GenerateMonthlyReport(report models.MonthlyReport) (string, error) {
	return g.path, g.err
}

func newReportRouter(t *testing.T, generator *stubGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deals := &stubDealRepo{
		reportCounts: repositories.MonthlyReportRow{Closed: 2, Won: 1, Lost: 1, Revenue: 100},
	}
	svc := services.NewReportService(deals, services.NewAnalyticsService(deals), generator, nil, nil)
	handler := NewReportHandler(svc)

	router := gin.New()
	router.GET("/reports/monthly/pdf", handler.MonthlyPDF)
	return router
}

func TestMonthlyPDFStreamsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "monthly_report_2023-07.pdf")
	content := []byte("%PDF-1.3 stub")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	router := newReportRouter(t, &stubGenerator{path: path})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/monthly/pdf?year=2023&month=7", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "monthly_report_2023-07.pdf")
	assert.Equal(t, content, w.Body.Bytes())
}

func TestMonthlyPDFInvalidMonth(t *testing.T) {
	router := newReportRouter(t, &stubGenerator{path: "unused"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/monthly/pdf?year=2023&month=13", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMonthlyPDFMissingYear(t *testing.T) {
	router := newReportRouter(t, &stubGenerator{path: "unused"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/monthly/pdf?month=7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
