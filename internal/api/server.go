package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/keeperschule/booking-api/docs"
	v1 "github.com/keeperschule/booking-api/internal/api/handler/v1"
	"github.com/keeperschule/booking-api/internal/api/middleware"
	"github.com/keeperschule/booking-api/internal/config"
	"github.com/keeperschule/booking-api/internal/metrics"
	"github.com/keeperschule/booking-api/internal/notifier"
	"github.com/keeperschule/booking-api/internal/repository"
	"github.com/keeperschule/booking-api/internal/repository/dao"
	"github.com/keeperschule/booking-api/internal/service"
)

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	metrics *metrics.Metrics
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:  conf,
		Router:  engine,
		metrics: metrics.New(prometheus.DefaultRegisterer),
	}

	s.MountMiddlewares()

	feedHandler := v1.NewFeedHandler()
	go feedHandler.Run()

	authHandler := s.initAuthHandler(db)
	guardianHandler := s.initGuardianHandler(db)
	keeperHandler := s.initKeeperHandler(db)
	eventHandler := s.initEventHandler(db)
	registrationHandler := s.initRegistrationHandler(db, feedHandler)
	s.MountHandlers(authHandler, guardianHandler, keeperHandler, eventHandler, registrationHandler, feedHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	guardianDAO := dao.NewGuardianDAO(db)
	repo := repository.NewGuardianRepository(guardianDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initGuardianHandler(db *gorm.DB) *v1.GuardianHandler {
	guardianDAO := dao.NewGuardianDAO(db)
	repo := repository.NewGuardianRepository(guardianDAO)
	svc := service.NewGuardianService(repo)
	handler := v1.NewGuardianHandler(svc)

	return handler
}

func (s *Server) initKeeperHandler(db *gorm.DB) *v1.KeeperHandler {
	keeperDAO := dao.NewKeeperDAO(db)
	repo := repository.NewKeeperRepository(keeperDAO)
	svc := service.NewKeeperService(repo)
	handler := v1.NewKeeperHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewCatalogService(repo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initRegistrationHandler(db *gorm.DB, feedHandler *v1.FeedHandler) *v1.RegistrationHandler {
	repo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	keeperRepo := repository.NewKeeperRepository(dao.NewKeeperDAO(db))
	guardianRepo := repository.NewGuardianRepository(dao.NewGuardianDAO(db))
	mailer := notifier.NewMailer(s.Config.SMTP)
	svc := service.NewRegistrationService(repo, eventRepo, keeperRepo, guardianRepo, mailer, feedHandler, s.metrics)
	handler := v1.NewRegistrationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.CountRequests(s.metrics))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	guardianHandler *v1.GuardianHandler,
	keeperHandler *v1.KeeperHandler,
	eventHandler *v1.EventHandler,
	registrationHandler *v1.RegistrationHandler,
	feedHandler *v1.FeedHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/profile", guardianHandler.HandleGetProfile)
		authenticated.PUT("/profile", guardianHandler.HandleUpdateContact)

		authenticated.GET("/keepers", keeperHandler.HandleListKeepers)
		authenticated.POST("/keepers", keeperHandler.HandleCreateKeeper)
		authenticated.PUT("/keepers/:keeperID", keeperHandler.HandleUpdateKeeper)
		authenticated.DELETE("/keepers/:keeperID", keeperHandler.HandleRetireKeeper)

		authenticated.GET("/events", eventHandler.HandleListEvents)
		authenticated.GET("/events/:eventID", eventHandler.HandleGetEvent)

		authenticated.GET("/registrations", registrationHandler.HandleGetRegistrations)
		authenticated.PUT("/registrations", registrationHandler.HandleSaveRegistrations)
		authenticated.GET("/registrations/feed", feedHandler.HandleFeed)
	}

	adminAuth := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)
	admin := s.Router.Group(basePath, adminAuth.VerifyJWT(), adminAuth.RequireAdmin())
	{
		admin.PATCH("/admin/participations/:participationID", registrationHandler.HandleAdminSetStatus)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Keeperschule Booking API"
	docs.SwaggerInfo.Description = "Registration and booking API for goalkeeper training events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
