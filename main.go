package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"netshots-service/internal/auth"
	"netshots-service/internal/config"
	"netshots-service/internal/email"
	"netshots-service/internal/middleware"
	"netshots-service/internal/service"
	"netshots-service/internal/store"
	httptransport "netshots-service/internal/transport/http"
	"netshots-service/internal/weather"
	"netshots-service/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

var startTime time.Time

func main() {
	startTime = time.Now()
	cfg := config.Load()
	store.InitDB(cfg)

	// Firebase is the identity provider; initialized exactly once here and
	// exposed downstream only as the Verify capability.
	if cfg.FirebaseCredentialsJSON == "" {
		log.Fatal("❌ FIREBASE_CREDENTIALS_JSON is required")
	}
	verifier, err := auth.NewVerifier(context.Background(), []byte(cfg.FirebaseCredentialsJSON))
	if err != nil {
		log.Fatalf("❌ Failed to initialize Firebase verifier: %v", err)
	}
	log.Println("✅ Firebase verifier initialized")

	var weatherClient *weather.Client
	if cfg.OpenWeatherAPIKey != "" {
		weatherClient = weather.NewClient(cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey)
		log.Println("✅ Weather enrichment enabled")
	} else {
		log.Println("⚠️ Weather enrichment disabled (no OPENWEATHER_API_KEY)")
	}

	var emailSender *email.Sender
	if cfg.SMTPEnabled() {
		emailSender = email.NewSender(cfg)
		log.Println("✅ Welcome emails enabled")
	} else {
		log.Println("⚠️ Welcome emails disabled (no SMTP config)")
	}

	var r2Client *utils.PictureR2Client
	if cfg.R2Enabled() {
		r2Client, err = utils.NewPictureR2Client(utils.PictureR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			AccessKeySecret: cfg.R2AccessKeySecret,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		})
		if err != nil {
			log.Fatalf("❌ [R2] Failed to initialize client: %v", err)
		}
		log.Println("✅ [R2] Picture upload client initialized")
	} else {
		log.Println("⚠️ [R2] Picture uploads disabled (no R2 config)")
	}

	db := store.GetDB()
	profileService := service.NewProfileService(db, emailSender)
	matchService := service.NewMatchService(db, weatherClient)
	followService := service.NewFollowService(db)
	feedService := service.NewFeedService(db, followService)
	handler := httptransport.NewHandler(profileService, matchService, followService, feedService, r2Client)
	log.Println("✅ [SERVICE] Services & Handler initialized")

	app := fiber.New(fiber.Config{
		AppName:      "netshots-service",
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${ua}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "NetShots API is running"})
	})
	app.Get("/api/health", func(c *fiber.Ctx) error {
		uptime := time.Since(startTime).Round(time.Second)
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "netshots-service",
			"uptime":    uptime.String(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := app.Group("/api", middleware.FirebaseAuth(verifier))

	// Profiles
	api.Get("/profiles/me", handler.GetMyProfile)
	api.Get("/profiles/:userId", handler.GetProfile)
	api.Post("/profiles", handler.CreateOrUpdateProfile)
	api.Put("/profiles/me", handler.UpdateMyProfile)
	api.Delete("/profiles/me", handler.DeleteMyProfile)

	// Search & feed
	api.Get("/search/users", handler.SearchUsers)
	api.Get("/feed", handler.GetFeed)

	// Follows
	api.Post("/follow/:targetUserId", handler.FollowUser)
	api.Delete("/follow/:targetUserId", handler.UnfollowUser)
	api.Get("/follow/:targetUserId/is-following", handler.IsFollowing)
	api.Get("/follow/:userId/followers", handler.GetFollowers)
	api.Get("/follow/:userId/following", handler.GetFollowing)

	// Matches
	api.Get("/matches", handler.GetMyMatches)
	api.Get("/matches/user/:userId", handler.GetMatchesForUser)
	api.Post("/matches", handler.CreateMatch)
	api.Put("/matches/:matchId", handler.UpdateMatch)
	api.Delete("/matches/:matchId", handler.DeleteMatch)
	api.Get("/match-results/:userId", handler.GetMatchResults)

	// Uploads
	if r2Client != nil {
		api.Post("/uploads", handler.UploadPicture)
	}
	log.Println("✅ [ROUTES] Registered /api routes")

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("🛑 [SHUTDOWN] Graceful shutdown initiated...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ [SHUTDOWN] Error: %v", err)
		}
	}()

	log.Printf("🚀 netshots-service starting...")
	log.Printf("   🔗 Listening on port: %s", cfg.ServerPort)
	log.Printf("   🌐 CORS allowed origins: %s", cfg.AllowedOrigins)
	log.Println("✅ Server ready.")

	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("❌ [STARTUP] Server failed to start: %v", err)
	}
}

// customErrorHandler keeps internal detail out of responses; anything the
// handlers didn't classify comes back as a generic message.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Unexpected server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		msg = e.Message
	}
	log.Printf("🔥 [ERROR] [%d] %s %s → %v | IP=%s", code, c.Method(), c.Path(), err, c.IP())
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
