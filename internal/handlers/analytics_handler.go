package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salescrm/internal/models"
	"salescrm/internal/services"
)

type AnalyticsHandler struct {
	Analytics  *services.AnalyticsService
	Breakdowns *services.BreakdownService
	Forecasts  *services.ForecastService
}

func NewAnalyticsHandler(
	analytics *services.AnalyticsService,
	breakdowns *services.BreakdownService,
	forecasts *services.ForecastService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		Analytics:  analytics,
		Breakdowns: breakdowns,
		Forecasts:  forecasts,
	}
}

// @Summary      Overall KPIs
// @Description  Headline dashboard numbers: deal count, pipeline value, win rate, average deal size
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  models.OverallKPIs
// @Failure      500  {object}  map[string]string
// @Router       /analytics/overall-kpis [get]
func (h *AnalyticsHandler) OverallKPIs(c *gin.Context) {
	data, err := h.Analytics.Overview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary      Dashboard data
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  models.DashboardData
// @Failure      500  {object}  map[string]string
// @Router       /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	data, err := h.Analytics.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary      Detailed KPIs
// @Description  Channel conclusion rates, time to close, ARPU and the annual sales series
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  models.DetailedKPIs
// @Failure      500  {object}  map[string]string
// @Router       /analytics/detailed-kpis [get]
func (h *AnalyticsHandler) DetailedKPIs(c *gin.Context) {
	data, err := h.Analytics.Detailed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary      Deal outcome breakdown
// @Description  Closed deal counts grouped by status, company industry and reason
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}  models.OutcomeBreakdown
// @Failure      500  {object}  map[string]string
// @Router       /analytics/deal-outcomes [get]
func (h *AnalyticsHandler) DealOutcomes(c *gin.Context) {
	data, err := h.Breakdowns.DealOutcomes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary      Channel performance
// @Description  Direct vs agency conclusion rates over won and lost deals
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  models.ChannelPerformance
// @Failure      500  {object}  map[string]string
// @Router       /analytics/channel-performance [get]
func (h *AnalyticsHandler) ChannelPerformance(c *gin.Context) {
	data, err := h.Breakdowns.ChannelPerformance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *AnalyticsHandler) IndustryPerformance(c *gin.Context) {
	data, err := h.Breakdowns.IndustryPerformance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *AnalyticsHandler) WinReasons(c *gin.Context) {
	data, err := h.Breakdowns.WinReasons()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *AnalyticsHandler) LossReasons(c *gin.Context) {
	data, err := h.Breakdowns.LossReasons()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *AnalyticsHandler) MonthlySales(c *gin.Context) {
	data, err := h.Breakdowns.MonthlySales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary      Monthly cancellation rate
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}  models.MonthlyCancellationRate
// @Failure      500  {object}  map[string]string
// @Router       /analytics/monthly-cancellation-rate [get]
func (h *AnalyticsHandler) MonthlyCancellationRate(c *gin.Context) {
	data, err := h.Breakdowns.MonthlyCancellationRate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary      Pipeline revenue forecast
// @Description  Confidence-weighted projection over open deals created in the trailing window
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}  models.ForecastEntry
// @Failure      500  {object}  map[string]string
// @Router       /analytics/forecast [get]
func (h *AnalyticsHandler) Forecast(c *gin.Context) {
	data, err := h.Forecasts.Forecast(time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary      Monthly churn model
// @Description  Computes monthly and annual churn/survival rates from the submitted customer counts
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Param        payload  body      models.ChurnPayload  true  "Monthly customer counts"
// @Success      200      {object}  models.ChurnResult
// @Failure      400      {object}  map[string]string
// @Router       /analytics/monthly-churn [post]
func (h *AnalyticsHandler) MonthlyChurn(c *gin.Context) {
	var payload models.ChurnPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Forecasts.Churn(payload)
	if err != nil {
		if errors.Is(err, services.ErrEmptyChurnPayload) || errors.Is(err, services.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
