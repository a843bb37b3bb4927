package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/api/handlers"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/api/routes"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/database"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/middleware"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/utils"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/utils/llm"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/utils/mailing"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/utils/storage"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/announcement"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/brand"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/jwt"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/stats"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/submission"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Taipei",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	validatorLLM, err := llm.NewGeminiValidator(
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
	)
	if err != nil {
		// submissions fall back to needs-manual-review results
		log.Errorf("gemini validator unavailable: %v", err)
		validatorLLM = nil
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	brandRepository := brand.NewBrandRepository(db)
	submissionRepository := submission.NewSubmissionRepository(db)
	announcementRepository := announcement.NewAnnouncementRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository)
	brandService := brand.NewBrandService(brandRepository)
	submissionService := submission.NewSubmissionService(
		submissionRepository,
		brandRepository,
		validatorLLM,
		s3,
		mailing.NotifyOwner,
		database.NewTxRunner(db),
	)
	announcementService := announcement.NewAnnouncementService(announcementRepository)
	statsService := stats.NewStatsService(brandRepository, submissionRepository, userRepository)

	// Handler
	brandHandler := handlers.NewBrandHandler(brandService, validator)
	submissionHandler := handlers.NewSubmissionHandler(submissionService, validator)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService, validator)
	statsHandler := handlers.NewStatsHandler(statsService)
	authHandler := handlers.NewAuthHandler(userService, jwtService, validator)
	uploadHandler := handlers.NewUploadHandler(s3)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		BrandHandler:        brandHandler,
		SubmissionHandler:   submissionHandler,
		AnnouncementHandler: announcementHandler,
		StatsHandler:        statsHandler,
		AuthHandler:         authHandler,
		UploadHandler:       uploadHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
