package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "petshop-backend/internal/adapter/http"
	"petshop-backend/internal/adapter/middleware"
	"petshop-backend/internal/adapter/repository/postgres"
	"petshop-backend/internal/config"
	bathDomain "petshop-backend/internal/domain/bath"
	journeyDomain "petshop-backend/internal/domain/journey"
	petDomain "petshop-backend/internal/domain/pet"
	"petshop-backend/internal/infrastructure/cache"
	"petshop-backend/internal/infrastructure/db"
	"petshop-backend/internal/infrastructure/storage"
	bathUC "petshop-backend/internal/usecase/bath"
	integrationUC "petshop-backend/internal/usecase/integration"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.PostgresDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&bathDomain.WeeklyBath{},
		&petDomain.Pet{},
		&journeyDomain.Event{},
		&journeyDomain.Photo{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewGCSStore(context.Background(), cfg.GCSBucket)
	if err != nil {
		log.Fatal(err)
	}

	baths := postgres.NewBathRepository(gdb)
	pets := postgres.NewPetRepository(gdb)
	journeys := postgres.NewJourneyRepository(gdb)
	uow := postgres.NewGormUoW(gdb)

	bathsUC := bathUC.NewUsecase(baths, uow, store)
	linkUC := integrationUC.NewUsecase(baths, pets, journeys, uow, store)

	h := httpadp.NewHandler()
	bh := httpadp.NewBathHandler(bathsUC)
	ih := httpadp.NewIntegrationHandler(linkUC)
	ph := httpadp.NewPhotoHandler(store, cfg.GCSUploadPath)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)

	v1 := e.Group("/v1", middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	v1.POST("/baths", bh.CreateBath)
	v1.GET("/baths", bh.ListForWeek)
	v1.GET("/baths/:bath_id", bh.GetBath)
	v1.PATCH("/baths/:bath_id", bh.UpdateBath)
	v1.DELETE("/baths/:bath_id", bh.DeleteBath)
	v1.POST("/baths/:bath_id/approve", bh.ApproveBath)
	v1.POST("/baths/:bath_id/reject", bh.RejectBath)
	v1.GET("/weeks", bh.ListAvailableWeeks)
	v1.GET("/display/baths", bh.ListDisplayBaths)

	v1.POST("/baths/:bath_id/integration", ih.ApproveWithIntegration)
	v1.GET("/baths/:bath_id/integration", ih.Status)
	v1.GET("/baths/:bath_id/integration/preview", ih.Preview)
	v1.DELETE("/baths/:bath_id/integration", ih.RemoveIntegration)
	v1.GET("/pets", ih.ListPets)

	v1.POST("/photos", ph.UploadPhoto)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
