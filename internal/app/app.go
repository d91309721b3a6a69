package app

import (
	"database/sql"
	"fmt"
	"log"

	"salescrm/internal/config"
	"salescrm/internal/handlers"
	"salescrm/internal/pdf"
	"salescrm/internal/repositories"
	"salescrm/internal/routes"
	"salescrm/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "salescrm/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to DB: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close DB: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	activityRepo := repositories.NewActivityRepository(db)

	// === Services ===
	analyticsService := services.NewAnalyticsService(dealRepo)
	breakdownService := services.NewBreakdownService(dealRepo)
	performanceService := services.NewPerformanceService(userRepo, dealRepo, activityRepo)
	forecastService := services.NewForecastService(dealRepo)
	searchService := services.NewSearchService(userRepo, companyRepo, dealRepo)

	// PDF report generator (point font_path at a TTF for non-latin output)
	reportGen := pdf.NewReportGenerator(cfg.Reports.OutputDir, cfg.Reports.FontPath)

	reportMailer := services.NewReportMailer(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	// Telegram digests are optional; a nil notifier is a no-op
	var notifier *services.TelegramNotifier
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		notifier, err = services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("[tg][init] disabled: %v", err)
			notifier = nil
		}
	}

	reportService := services.NewReportService(dealRepo, analyticsService, reportGen, reportMailer, notifier)

	// === Handlers ===
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, breakdownService, forecastService)
	performanceHandler := handlers.NewPerformanceHandler(performanceService)
	searchHandler := handlers.NewSearchHandler(searchService)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		analyticsHandler,
		performanceHandler,
		searchHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
