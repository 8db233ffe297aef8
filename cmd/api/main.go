package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"travelmate/internal/config"
	"travelmate/internal/database"
	"travelmate/internal/middleware"
	"travelmate/internal/modules/auth"
	"travelmate/internal/modules/booking"
	"travelmate/internal/modules/catalog"
	"travelmate/internal/modules/guide"
	"travelmate/internal/modules/itinerary"
	"travelmate/internal/modules/review"
	jwtsvc "travelmate/internal/pkg/jwt"
	"travelmate/internal/pkg/uploads"
	"travelmate/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	store := uploads.NewStore(cfg.UploadsDir, cfg.StaticBase)

	userRepo := repository.NewUserRepository(db)
	guideRepo := repository.NewGuideRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	accommodationRepo := repository.NewAccommodationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	itineraryRepo := repository.NewItineraryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	reviewService := review.NewService(reviewRepo, destinationRepo, accommodationRepo, guideRepo)
	authService := auth.NewService(userRepo, jwtService)
	guideService := guide.NewService(guideRepo, userRepo, reviewService)
	catalogService := catalog.NewService(destinationRepo, accommodationRepo, reviewService)
	bookingService := booking.NewService(bookingRepo, accommodationRepo)
	itineraryService := itinerary.NewService(itineraryRepo, userRepo)

	authHandler := auth.NewHandler(authService, store)
	guideHandler := guide.NewHandler(guideService, store)
	catalogHandler := catalog.NewHandler(catalogService, store)
	bookingHandler := booking.NewHandler(bookingService)
	itineraryHandler := itinerary.NewHandler(itineraryService)
	reviewHandler := review.NewHandler(reviewService, store)

	if config.IsProd(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(cfg.StaticBase, store.BaseDir())

	api := r.Group("/api/v1")

	public := api.Group("")
	public.Use(middleware.OptionalAuth(jwtService))
	authHandler.RegisterPublicRoutes(public)
	guideHandler.RegisterPublicRoutes(public)
	catalogHandler.RegisterPublicRoutes(public)
	itineraryHandler.RegisterPublicRoutes(public)
	reviewHandler.RegisterPublicRoutes(public)

	protected := api.Group("")
	protected.Use(middleware.Auth(jwtService))
	authHandler.RegisterProtectedRoutes(protected)
	catalogHandler.RegisterProtectedRoutes(protected)
	bookingHandler.RegisterProtectedRoutes(protected)
	itineraryHandler.RegisterProtectedRoutes(protected)
	reviewHandler.RegisterProtectedRoutes(protected)

	staff := api.Group("")
	staff.Use(middleware.Auth(jwtService), middleware.StaffOnly())
	guideHandler.RegisterStaffRoutes(staff)
	catalogHandler.RegisterStaffRoutes(staff)
	bookingHandler.RegisterStaffRoutes(staff)

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
