package routes

import (
	"net/http"
	"time"

	"flagfootball-backend/internal/api/handlers"
	"flagfootball-backend/internal/api/middleware"
	"flagfootball-backend/internal/auth"
	"flagfootball-backend/internal/config"
	"flagfootball-backend/internal/qrcode"
	"flagfootball-backend/internal/repository"
	"flagfootball-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	joinRequestRepo := repository.NewJoinRequestRepository(db)
	gameRepo := repository.NewGameRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Auth
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	authMiddleware := auth.NewAuthMiddleware(tokens)

	// Services
	registrationService := service.NewRegistrationService(userRepo, playerRepo, tokens, validator)
	profileService := service.NewProfileService(playerRepo)
	playerService := service.NewPlayerService(playerRepo, attendanceRepo, statsRepo)
	joinRequestService := service.NewJoinRequestService(joinRequestRepo, teamRepo, playerRepo, validator)
	qrService := service.NewQRService(playerRepo, gameRepo, attendanceRepo, qrcode.NewRenderer(cfg.QRSize), cfg.PublicBaseURL)
	teamService := service.NewTeamService(teamRepo)
	gameService := service.NewGameService(gameRepo, attendanceRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(registrationService)
	profileHandler := handlers.NewProfileHandler(profileService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	joinRequestHandler := handlers.NewJoinRequestHandler(joinRequestService)
	qrHandler := handlers.NewQRHandler(qrService)
	teamHandler := handlers.NewTeamHandler(teamService)
	gameHandler := handlers.NewGameHandler(gameService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Public routes
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/players/:id", playerHandler.GetPlayer)
		api.GET("/teams", teamHandler.ListTeams)
		api.GET("/games", gameHandler.ListGames)
	}

	// Routes acting on behalf of a user require a session
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/player/profile", profileHandler.GetProfile)
		protected.PUT("/player/profile", profileHandler.UpdateProfile)

		protected.GET("/team-join-requests", joinRequestHandler.ListJoinRequests)
		protected.POST("/team-join-requests", joinRequestHandler.CreateJoinRequest)
		protected.PUT("/team-join-requests", joinRequestHandler.ReviewJoinRequest)

		protected.GET("/qr/generate", qrHandler.Generate)
		protected.POST("/qr/scan", qrHandler.Scan)

		protected.GET("/games/:id/attendance", gameHandler.GetAttendance)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ruta no encontrada"})
	})

	return router
}
