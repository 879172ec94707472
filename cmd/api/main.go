package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"goldenwok/internal/adapter/api"
	"goldenwok/internal/adapter/api/handler"
	apimiddleware "goldenwok/internal/adapter/api/middleware"
	"goldenwok/internal/adapter/api/router"
	"goldenwok/internal/adapter/repository"
	"goldenwok/internal/infrastructure/mail"
	"goldenwok/internal/infrastructure/oauth"
	"goldenwok/internal/infrastructure/ratelimit"
	"goldenwok/internal/infrastructure/storage"
	"goldenwok/internal/infrastructure/token"
	"goldenwok/internal/usecase"
	"goldenwok/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development). With neither, application default credentials
	// apply.
	if credsJSON := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); credsJSON != "" {
		log.Printf("Using Google service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(credsJSON)))
	} else if credsPath := os.Getenv("GOOGLE_SERVICE_ACCOUNT_PATH"); credsPath != "" {
		if _, err := os.Stat(credsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credsPath)
		}
		log.Printf("Using Google service account from file: %s", credsPath)
		opts = append(opts, option.WithCredentialsFile(credsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.GoogleProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	ratingRepo := repository.NewFirestoreRatingRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	replyRepo := repository.NewFirestoreReplyRepository(firestoreClient)

	jwtService := token.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	blacklist := token.NewRedisBlacklistStore(redisClient)
	googleVerifier := oauth.NewGoogleVerifier(cfg.GoogleClientID)

	mailer, err := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.RestaurantName)
	if err != nil {
		log.Fatalf("Failed to configure mail delivery: %v", err)
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, blacklist, googleVerifier, mailer, cfg.FrontendURL, cfg.RestaurantName)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, productRepo)
	cleanupUseCase := usecase.NewCleanupUseCase(ratingRepo, reviewRepo, replyRepo, productRepo, ratingUseCase)
	userUseCase := usecase.NewUserUseCase(userRepo, cleanupUseCase)
	productUseCase := usecase.NewProductUseCase(productRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo, replyRepo)
	replyUseCase := usecase.NewReplyUseCase(replyRepo, reviewRepo)
	adminUseCase := usecase.NewAdminUseCase(userRepo, productRepo, reviewRepo)
	contactUseCase := usecase.NewContactUseCase(mailer, cfg.ContactInbox)

	cookieSecure := cfg.Environment == "production"
	handler.Setup(
		authUseCase,
		userUseCase,
		productUseCase,
		ratingUseCase,
		reviewUseCase,
		replyUseCase,
		adminUseCase,
		contactUseCase,
		storageClient,
		cookieSecure,
	)
	handler.SetupHealthHandler(redisClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(jwtService, blacklist)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, authMiddleware, adminMiddleware, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
