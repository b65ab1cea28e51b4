package main

import (
	"database/sql"
	"log"

	"bazaarBack/internal/config"
	"bazaarBack/internal/handlers"
	"bazaarBack/internal/repositories"
	"bazaarBack/internal/services"
	"bazaarBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	userHandler        *handlers.UserHandler
	locationHandler    *handlers.LocationHandler
	categoryHandler    *handlers.CategoryHandler
	adHandler          *handlers.AdHandler
	adImageHandler     *handlers.AdImageHandler
	favoriteHandler    *handlers.FavoriteHandler
	messageHandler     *handlers.MessageHandler
	reportHandler      *handlers.ReportHandler
	transactionHandler *handlers.TransactionHandler

	wsManager *WebSocketManager
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}
	storage := &utils.Storage{
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	locationRepo := repositories.LocationRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	adRepo := repositories.AdRepository{DB: db}
	adImageRepo := repositories.AdImageRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}
	messageRepo := repositories.MessageRepository{DB: db}
	reportRepo := repositories.ReportRepository{DB: db}
	transactionRepo := repositories.TransactionRepository{DB: db}

	// Services
	userService := &services.UserService{UserRepo: &userRepo, Tokens: tokenManager}
	locationService := &services.LocationService{LocationRepo: &locationRepo}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo}
	adService := &services.AdService{AdRepo: &adRepo}
	adImageService := &services.AdImageService{AdImageRepo: &adImageRepo, Storage: storage}
	favoriteService := &services.FavoriteService{FavoriteRepo: &favoriteRepo}
	messageService := &services.MessageService{MessageRepo: &messageRepo}
	reportService := &services.ReportService{ReportRepo: &reportRepo}
	transactionService := &services.TransactionService{TransactionRepo: &transactionRepo}

	wsManager := NewWebSocketManager()

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	locationHandler := &handlers.LocationHandler{Service: locationService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	adHandler := &handlers.AdHandler{Service: adService}
	adImageHandler := &handlers.AdImageHandler{Service: adImageService}
	favoriteHandler := &handlers.FavoriteHandler{Service: favoriteService}
	messageHandler := &handlers.MessageHandler{Service: messageService, Notify: wsManager.Send}
	reportHandler := &handlers.ReportHandler{Service: reportService}
	transactionHandler := &handlers.TransactionHandler{Service: transactionService}

	return &application{
		errorLog:           errorLog,
		infoLog:            infoLog,
		db:                 db,
		userHandler:        userHandler,
		locationHandler:    locationHandler,
		categoryHandler:    categoryHandler,
		adHandler:          adHandler,
		adImageHandler:     adImageHandler,
		favoriteHandler:    favoriteHandler,
		messageHandler:     messageHandler,
		reportHandler:      reportHandler,
		transactionHandler: transactionHandler,
		wsManager:          wsManager,
	}, nil
}
