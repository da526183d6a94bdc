package main

import (
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/Vedantlights/indiapropertys-sub001/internal/config"
	"github.com/Vedantlights/indiapropertys-sub001/internal/handlers"
	"github.com/Vedantlights/indiapropertys-sub001/internal/repositories"
	"github.com/Vedantlights/indiapropertys-sub001/internal/services"
	"github.com/Vedantlights/indiapropertys-sub001/utils"
)

type application struct {
	errorLog            *log.Logger
	infoLog             *log.Logger
	db                  *sql.DB
	tokenManager        *utils.TokenManager
	propertyHandler     *handlers.PropertyHandler
	favoriteHandler     *handlers.FavoriteHandler
	inquiryHandler      *handlers.InquiryHandler
	userHandler         *handlers.UserHandler
	subscriptionHandler *handlers.SubscriptionHandler
	adminHandler        *handlers.AdminHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewTokenManager(cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	resolver := services.NewImageURLResolver(cfg.Site.BaseURL, cfg.Site.UploadsBaseURL)

	// Repositories
	propertyRepo := repositories.PropertyRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}
	inquiryRepo := repositories.InquiryRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	subscriptionRepo := repositories.SubscriptionRepository{DB: db}

	// Services
	propertyService := &services.PropertyService{
		PropertyRepo:     &propertyRepo,
		SubscriptionRepo: &subscriptionRepo,
		Resolver:         resolver,
		Redis:            rdb,
	}
	favoriteService := &services.FavoriteService{
		FavoriteRepo: &favoriteRepo,
		PropertyRepo: &propertyRepo,
		Resolver:     resolver,
	}
	inquiryService := &services.InquiryService{
		InquiryRepo:  &inquiryRepo,
		PropertyRepo: &propertyRepo,
		UserRepo:     &userRepo,
		Resolver:     resolver,
	}
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokenManager,
	}
	subscriptionService := &services.SubscriptionService{
		SubscriptionRepo: &subscriptionRepo,
		PropertyRepo:     &propertyRepo,
	}

	return &application{
		errorLog:            errorLog,
		infoLog:             infoLog,
		db:                  db,
		tokenManager:        tokenManager,
		propertyHandler:     &handlers.PropertyHandler{Service: propertyService},
		favoriteHandler:     &handlers.FavoriteHandler{Service: favoriteService},
		inquiryHandler:      &handlers.InquiryHandler{Service: inquiryService},
		userHandler:         &handlers.UserHandler{Service: userService},
		subscriptionHandler: &handlers.SubscriptionHandler{Service: subscriptionService},
		adminHandler:        &handlers.AdminHandler{PropertyService: propertyService},
	}, nil
}
