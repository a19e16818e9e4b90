package main

import (
	"context"
	"log"
	"net/http"

	"tradejournal-backend/config"
	httpdelivery "tradejournal-backend/internal/delivery/http"
	wsdelivery "tradejournal-backend/internal/delivery/websocket"
	"tradejournal-backend/internal/domain"
	"tradejournal-backend/internal/infrastructure/db"
	"tradejournal-backend/internal/infrastructure/fcm"
	"tradejournal-backend/internal/infrastructure/pricing"
	"tradejournal-backend/internal/repository"
	"tradejournal-backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 1. Initialize Repositories (Postgres when configured, in-memory otherwise)
	var tradeRepo domain.TradeRepository
	var userRepo domain.UserRepository

	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.PoolConfigFromEnv())
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}
		tradeRepo = repository.NewPostgresTradeRepository(pool)
		userRepo = repository.NewPostgresUserRepository(pool)
		log.Println("Using Postgres repositories")
	} else {
		tradeRepo = repository.NewInMemoryTradeRepository()
		userRepo = repository.NewInMemoryUserRepository()
		log.Println("DATABASE_URL not set, using in-memory repositories")
	}

	portfolioRepo := repository.NewInMemoryPortfolioRepository()
	tokenRepo := repository.NewTokenRepository()

	// 2. Initialize Usecases
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo)

	fcmClient, err := fcm.NewClient()
	if err != nil {
		log.Printf("Error initializing FCM client: %v", err)
		fcmClient = nil
	}
	notifier := usecase.NewNotificationUsecase(fcmClient, tokenRepo)

	priceClient := pricing.NewClient(cfg.PriceFeedBaseURL)
	priceFeed := usecase.NewPriceFeedUsecase(
		portfolioUC, priceClient,
		cfg.PriceFeedSymbol, cfg.PriceFeedCoinID,
		cfg.PriceFeedInterval,
	)

	// 3. Start price feed in background
	go priceFeed.Run()

	// 4. Initialize Delivery
	healthHandler := httpdelivery.NewHealthHandler()
	tradeHandler := httpdelivery.NewTradeHandler(tradeRepo, notifier)
	userHandler := httpdelivery.NewUserHandler(userRepo)
	portfolioHandler := httpdelivery.NewPortfolioHandler(portfolioUC)
	positionSizeHandler := httpdelivery.NewPositionSizeHandler()
	tokenHandler := httpdelivery.NewTokenHandler(tokenRepo)
	wsHandler := wsdelivery.NewHandler(portfolioUC)

	http.HandleFunc("/", httpdelivery.WithCORS(healthHandler.Status))
	http.HandleFunc("/health", httpdelivery.WithCORS(healthHandler.Health))

	http.HandleFunc("/api/trades", httpdelivery.WithCORS(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			tradeHandler.Create(w, r)
		default:
			tradeHandler.List(w, r)
		}
	}))
	http.HandleFunc("/api/trades/get", httpdelivery.WithCORS(tradeHandler.Get))
	http.HandleFunc("/api/trades/update", httpdelivery.WithCORS(tradeHandler.Update))
	http.HandleFunc("/api/trades/delete", httpdelivery.WithCORS(tradeHandler.Delete))

	http.HandleFunc("/api/users", httpdelivery.WithCORS(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			userHandler.Create(w, r)
		default:
			userHandler.List(w, r)
		}
	}))
	http.HandleFunc("/api/users/get", httpdelivery.WithCORS(userHandler.Get))
	http.HandleFunc("/api/users/update", httpdelivery.WithCORS(userHandler.Update))
	http.HandleFunc("/api/users/delete", httpdelivery.WithCORS(userHandler.Delete))

	http.HandleFunc("/api/portfolio", httpdelivery.WithCORS(portfolioHandler.Summary))
	http.HandleFunc("/api/portfolio/orders", httpdelivery.WithCORS(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			portfolioHandler.AddOrder(w, r)
		default:
			portfolioHandler.Orders(w, r)
		}
	}))
	http.HandleFunc("/api/portfolio/orders/delete", httpdelivery.WithCORS(portfolioHandler.RemoveOrder))

	http.HandleFunc("/api/position-size", httpdelivery.WithCORS(positionSizeHandler.Calculate))
	http.HandleFunc("/api/position-size/defaults", httpdelivery.WithCORS(positionSizeHandler.Defaults))

	http.HandleFunc("/api/notifications/register", httpdelivery.WithCORS(tokenHandler.HandleRegisterToken))
	http.HandleFunc("/api/notifications/unregister", httpdelivery.WithCORS(tokenHandler.HandleUnregisterToken))
	http.HandleFunc("/api/notifications/count", httpdelivery.WithCORS(tokenHandler.HandleGetTokenCount))

	http.HandleFunc("/ws/portfolio", wsHandler.Handle)

	log.Println("Server executing on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal(err)
	}
}
