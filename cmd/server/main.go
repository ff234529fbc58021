package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/config"
	"github.com/agroferia/agroferia-backend/internal/database"
	"github.com/agroferia/agroferia-backend/internal/handler"
	"github.com/agroferia/agroferia-backend/internal/queue"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/router"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, caching and rate limiting disabled")
	}

	go func() {
		if err := queue.StartRegistrationConsumer(); err != nil {
			log.Printf("registration consumer stopped: %v", err)
		}
	}()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	fairs := repository.NewFairRepo(db)
	producers := repository.NewProducerRepo(db)
	products := repository.NewProductRepo(db)
	registrations := repository.NewRegistrationRepo(db)
	sales := repository.NewSaleRepo(db)
	reports := repository.NewReportRepo(db)
	help := repository.NewHelpRepo(db)
	surveys := repository.NewSurveyRepo(db)
	postSale := repository.NewPostSaleRepo(db)
	coordinators := repository.NewCoordinatorRepo(db)
	translations := repository.NewTranslationRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	fairH := handler.NewFairHandler(fairs)
	producerH := handler.NewProducerHandler(producers)
	productH := handler.NewProductHandler(products)
	registrationH := handler.NewRegistrationHandler(registrations)
	saleH := handler.NewSaleHandler(sales)
	reportH := handler.NewContentReportHandler(reports, cfg.UploadDir)
	helpH := handler.NewTechnicalHelpHandler(help, cfg.UploadDir)
	surveyH := handler.NewFairSurveyHandler(surveys)
	postSaleH := handler.NewPostSaleHandler(postSale)
	coordinatorH := handler.NewCoordinatorHandler(coordinators)
	translationH := handler.NewTranslationHandler(translations)
	userH := handler.NewUserHandler(users, cfg.BcryptCost)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, router.PublicHandlers{
		Fairs:         fairH,
		Producers:     producerH,
		Products:      productH,
		Registrations: registrationH,
		Sales:         saleH,
		Translations:  translationH,
	}, rdb)
	router.RegisterProducer(e, router.ProducerHandlers{
		Surveys:  surveyH,
		PostSale: postSaleH,
		Help:     helpH,
		Reports:  reportH,
	}, cfg.JWTSecret)
	router.RegisterAdmin(e, router.AdminHandlers{
		Fairs:         fairH,
		Registrations: registrationH,
		Coordinators:  coordinatorH,
		Surveys:       surveyH,
		PostSale:      postSaleH,
		Reports:       reportH,
		Help:          helpH,
		Translations:  translationH,
		Users:         userH,
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
