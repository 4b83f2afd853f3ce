package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/config"
	"github.com/iliyamo/event-hotel-booking/internal/database"
	"github.com/iliyamo/event-hotel-booking/internal/handler"
	"github.com/iliyamo/event-hotel-booking/internal/middleware"
	"github.com/iliyamo/event-hotel-booking/internal/queue"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
	"github.com/iliyamo/event-hotel-booking/internal/router"
	"github.com/iliyamo/event-hotel-booking/internal/service"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional; caching and rate limiting degrade to no-ops
	// without it.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	enrollments := repository.NewEnrollmentRepo(db)
	tickets := repository.NewTicketRepo(db)
	hotels := repository.NewHotelRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)

	eligibility := service.NewEligibilityChecker(enrollments, tickets)
	bookingSvc := service.NewBookingService(eligibility, bookings, rooms)
	hotelSvc := service.NewHotelService(enrollments, tickets, hotels)
	ticketSvc := service.NewTicketService(enrollments, tickets)
	enrollmentSvc := service.NewEnrollmentService(enrollments)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	bookingHandler := handler.NewBookingHandler(bookingSvc, queue.PublishBookingEvent)
	hotelHandler := handler.NewHotelHandler(hotelSvc)
	ticketHandler := handler.NewTicketHandler(ticketSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterBooking(e, hotelHandler, bookingHandler, cfg.JWTSecret)
	router.RegisterRegistration(e, enrollmentHandler, ticketHandler, cfg.JWTSecret, cache)

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
