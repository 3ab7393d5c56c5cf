package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"playvault/internal/adapter/api"
	"playvault/internal/adapter/api/handler"
	apimiddleware "playvault/internal/adapter/api/middleware"
	"playvault/internal/adapter/api/router"
	"playvault/internal/adapter/repository"
	"playvault/internal/domain/service"
	"playvault/internal/infrastructure/cache"
	"playvault/internal/infrastructure/firebase"
	"playvault/internal/infrastructure/ratelimit"
	"playvault/internal/infrastructure/storage"
	"playvault/internal/infrastructure/websocket"
	"playvault/internal/usecase"
	"playvault/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			log.Fatal("FIREBASE_SERVICE_ACCOUNT_JSON or FIREBASE_SERVICE_ACCOUNT_PATH must be set")
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	contentRepo := repository.NewFirestoreContentRepository(firestoreClient)
	bidRepo := repository.NewFirestoreBidRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	paymentRepo := repository.NewFirestorePaymentRepository(firestoreClient)
	requestRepo := repository.NewFirestoreCustomRequestRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	cmsRepo := repository.NewFirestoreCmsRepository(firestoreClient)
	settingRepo := repository.NewFirestoreSettingRepository(firestoreClient)

	// Settings reads go through Redis; a missing Redis just degrades to
	// Firestore on every read.
	redisClient := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	cachedSettingRepo := cache.NewSettingsCache(redisClient, settingRepo)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseAPIKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	paymentGateway := service.NewStripePaymentService(cfg.StripeSecretKey)
	webhookVerifier := service.NewStripeWebhookVerifier(cfg.StripeWebhookSecret)
	invoiceService := service.NewInvoiceService(storageClient)

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, wsManager)
	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, notificationUseCase)
	contentUseCase := usecase.NewContentUseCase(contentRepo, userRepo, storageClient)
	bidUseCase := usecase.NewBidUseCase(bidRepo, contentRepo, notificationUseCase)
	orderUseCase := usecase.NewOrderUseCase(
		orderRepo,
		contentRepo,
		bidRepo,
		requestRepo,
		userRepo,
		cachedSettingRepo,
		invoiceService,
		notificationUseCase,
		cfg.DefaultCommissionPct,
	)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, userRepo, paymentGateway, webhookVerifier, notificationUseCase)
	requestUseCase := usecase.NewCustomRequestUseCase(requestRepo, contentRepo, userRepo, notificationUseCase)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, orderRepo, contentRepo, notificationUseCase)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, contentRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, wsManager)
	cmsUseCase := usecase.NewCmsUseCase(cmsRepo)
	settingUseCase := usecase.NewSettingUseCase(cachedSettingRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(userRepo, contentRepo, orderRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		contentUseCase,
		bidUseCase,
		orderUseCase,
		paymentUseCase,
		requestUseCase,
		reviewUseCase,
		wishlistUseCase,
		notificationUseCase,
		chatUseCase,
		cmsUseCase,
		settingUseCase,
		dashboardUseCase,
	)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, authMiddleware, roleMiddleware, limiter)
	router.SetupWebSocketRouter(e, handler.NewWebSocketHandler(wsManager, firebaseAuthClient))

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
