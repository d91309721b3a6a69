package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"salescrm/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

func (h *ReportHandler) Monthly(c *gin.Context) {
	year, month, ok := h.yearMonth(c)
	if !ok {
		return
	}

	report, err := h.Service.Monthly(year, month)
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// MonthlyPDF generates the report PDF and streams it back as a download.
func (h *ReportHandler) MonthlyPDF(c *gin.Context) {
	year, month, ok := h.yearMonth(c)
	if !ok {
		return
	}

	path, err := h.Service.MonthlyPDF(year, month)
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

type emailReportRequest struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	To    string `json:"to"`
}

func (h *ReportHandler) EmailMonthly(c *gin.Context) {
	var req emailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to is required"})
		return
	}

	if err := h.Service.EmailMonthly(req.Year, req.Month, req.To); err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "report sent"})
}

func (h *ReportHandler) TelegramDigest(c *gin.Context) {
	if err := h.Service.TelegramDigest(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "digest sent"})
}

func (h *ReportHandler) yearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return 0, 0, false
	}
	return year, month, true
}

func (h *ReportHandler) reportError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidMonth) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
