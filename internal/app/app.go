package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gospelHTTP "gospel-keys/internal/controller/http"
	"gospel-keys/internal/data"
	"gospel-keys/internal/provider"
	"gospel-keys/internal/repo/persistent"
	"gospel-keys/internal/usecase"
	"gospel-keys/pkg/config"
	"gospel-keys/pkg/jwt"
	"gospel-keys/pkg/kvstore"
	"gospel-keys/pkg/logger"
	"gospel-keys/pkg/middleware"
	"gospel-keys/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gospel-keys/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	store       kvstore.Store
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	var store kvstore.Store
	var redisClient *redis.Client
	if cfg.StorageBackend == "memory" {
		log.Warn("Using in-memory storage; data is lost on restart")
		store = kvstore.NewMemoryStore(log)
	} else {
		client, err := kvstore.NewRedisClient(cfg)
		if err != nil {
			log.Error("Failed to connect to redis: %v", err)
			return nil, err
		}
		redisClient = client
		store = kvstore.NewRedisStore(client, log)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v (image uploads disabled)", err)
		s3Client = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		store:       store,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.store)
	sessionRepo := persistent.NewSessionRepository(a.store)
	courseRepo := persistent.NewCourseRepository(a.store)
	cartRepo := persistent.NewCartRepository(a.store)
	enrollmentRepo := persistent.NewEnrollmentRepository(a.store)

	hasher := usecase.NewPasswordHasher(a.cfg.PasswordSalt)

	// Initialize use cases; the auth variant is fixed at composition time
	var authUseCase usecase.AuthUseCase
	if a.cfg.AuthProvider == "firebase" {
		a.log.Info("Using firebase-backed authentication")
		authUseCase = usecase.NewProviderAuthUseCase(
			provider.NewFirebaseProvider(a.cfg.FirebaseAPIKey, a.log),
			sessionRepo,
			persistent.NewAdminMarkRepository(a.store),
			a.jwtService,
			a.cfg.AdminCode,
			a.cfg.SessionDuration,
			a.log,
		)
	} else {
		authUseCase = usecase.NewLocalAuthUseCase(
			userRepo,
			sessionRepo,
			a.jwtService,
			hasher,
			a.cfg.AdminCode,
			a.cfg.SessionDuration,
			a.log,
		)
	}

	catalogUseCase := usecase.NewCatalogUseCase(courseRepo, data.Courses(), a.s3Client, a.log)
	cartUseCase := usecase.NewCartUseCase(cartRepo, a.log)
	enrollmentUseCase := usecase.NewEnrollmentUseCase(enrollmentRepo, a.log)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartUseCase, catalogUseCase, enrollmentUseCase, a.cfg.CheckoutDelay, a.log)

	// Initialize HTTP handlers
	authHandler := gospelHTTP.NewAuthHandler(authUseCase)
	catalogHandler := gospelHTTP.NewCatalogHandler(catalogUseCase)
	cartHandler := gospelHTTP.NewCartHandler(cartUseCase, catalogUseCase)
	enrollmentHandler := gospelHTTP.NewEnrollmentHandler(enrollmentUseCase)
	checkoutHandler := gospelHTTP.NewCheckoutHandler(checkoutUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		// Credential endpoints get a rate limit when redis is available
		authRoutes := api.Group("")
		if a.redisClient != nil {
			authRoutes.Use(middleware.RateLimit(a.redisClient, a.cfg.AuthRateLimit, a.cfg.AuthRateWindow))
		}
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)

		api.GET("/session", authHandler.SessionStatus)
		api.GET("/courses", catalogHandler.GetCourses)
		api.GET("/courses/:id", catalogHandler.GetCourse)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/me", authHandler.Me)
			protected.PUT("/me", authHandler.UpdateUser)
			protected.PUT("/me/password", authHandler.ChangePassword)
			protected.GET("/users/:id", authHandler.GetUser)

			protected.GET("/cart", cartHandler.GetCart)
			protected.POST("/cart", cartHandler.AddToCart)
			protected.DELETE("/cart", cartHandler.ClearCart)
			protected.DELETE("/cart/:courseId", cartHandler.RemoveFromCart)

			protected.GET("/wishlist", cartHandler.GetWishlist)
			protected.POST("/wishlist", cartHandler.AddToWishlist)
			protected.DELETE("/wishlist/:courseId", cartHandler.RemoveFromWishlist)
			protected.POST("/wishlist/:courseId/move-to-cart", cartHandler.MoveToCart)

			protected.GET("/enrollments", enrollmentHandler.GetMyEnrollments)
			protected.GET("/enrollments/stats", enrollmentHandler.GetUserStats)
			protected.GET("/enrollments/:courseId/status", enrollmentHandler.GetEnrollmentStatus)
			protected.PUT("/enrollments/:id/progress", enrollmentHandler.UpdateProgress)
			protected.POST("/enrollments/:id/lessons", enrollmentHandler.CompleteLesson)
			protected.DELETE("/enrollments/:id", enrollmentHandler.CancelEnrollment)

			protected.POST("/checkout/quote", checkoutHandler.Quote)
			protected.POST("/checkout", checkoutHandler.Checkout)

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/users", authHandler.GetAllUsers)
				admin.PUT("/users/:id/role", authHandler.SetUserRole)
				admin.DELETE("/users/:id", authHandler.DeleteUser)

				admin.POST("/courses", catalogHandler.CreateCourse)
				admin.PUT("/courses/:id", catalogHandler.UpdateCourse)
				admin.DELETE("/courses/:id", catalogHandler.DeleteCourse)
				admin.POST("/courses/:id/image", catalogHandler.UploadCourseImage)
				admin.GET("/courses/:id/stats", enrollmentHandler.GetCourseStats)

				admin.GET("/enrollments", enrollmentHandler.GetAllEnrollments)
			}
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Gospel Keys API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Gospel Keys API exited")
	return nil
}
