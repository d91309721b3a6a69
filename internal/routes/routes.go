package routes

import (
	"github.com/gin-gonic/gin"

	"salescrm/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	analyticsHandler *handlers.AnalyticsHandler,
	performanceHandler *handlers.PerformanceHandler,
	searchHandler *handlers.SearchHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ANALYTICS
	analytics := r.Group("/analytics")
	{
		analytics.GET("/overall-kpis", analyticsHandler.OverallKPIs)
		analytics.GET("/dashboard", analyticsHandler.Dashboard)
		analytics.GET("/detailed-kpis", analyticsHandler.DetailedKPIs)
		analytics.GET("/deal-outcomes", analyticsHandler.DealOutcomes)
		analytics.GET("/channel-performance", analyticsHandler.ChannelPerformance)
		analytics.GET("/industry-performance", analyticsHandler.IndustryPerformance)
		analytics.GET("/win-reasons", analyticsHandler.WinReasons)
		analytics.GET("/loss-reasons", analyticsHandler.LossReasons)
		analytics.GET("/monthly-sales", analyticsHandler.MonthlySales)
		analytics.GET("/monthly-cancellation-rate", analyticsHandler.MonthlyCancellationRate)
		analytics.GET("/forecast", analyticsHandler.Forecast)
		analytics.POST("/monthly-churn", analyticsHandler.MonthlyChurn)

		analytics.GET("/user-performance/:id", performanceHandler.UserPerformance)
		analytics.GET("/leaderboard", performanceHandler.Leaderboard)

		analytics.GET("/search", searchHandler.Search)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/monthly", reportHandler.Monthly)
		reports.GET("/monthly/pdf", reportHandler.MonthlyPDF)
		reports.POST("/monthly/email", reportHandler.EmailMonthly)
		reports.POST("/digest/telegram", reportHandler.TelegramDigest)
	}

	return r
}
