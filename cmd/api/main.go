package main

import (
	"html/template"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gonetfly/gonetfly-backend/internal/config"
	"github.com/gonetfly/gonetfly-backend/internal/database"
	"github.com/gonetfly/gonetfly-backend/internal/handlers"
	"github.com/gonetfly/gonetfly-backend/internal/middleware"
	"github.com/gonetfly/gonetfly-backend/internal/services"
	"github.com/gonetfly/gonetfly-backend/internal/stores"
	"github.com/gonetfly/gonetfly-backend/pkg/utils"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Initialize Redis-backed session storage
	kv, err := services.NewRedisKV(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	sessions := services.NewSessionManager(kv, cfg.SessionSecret, cfg.SessionTTL)
	users := stores.NewUserStore(db)
	bookings := stores.NewBookingStore(db)
	searcher := services.NewMockFlightSearcher()
	notifier := services.NewLogNotifier()

	// Initialize router
	r := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Templates and static files
	r.SetFuncMap(template.FuncMap{
		"formatPrice": utils.FormatPrice,
	})
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./static")

	// Pages
	pages := r.Group("/")
	pages.Use(middleware.OptionalSession(sessions))
	{
		pages.GET("/", handlers.Index())
		pages.GET("/login", handlers.LoginPage())
		pages.GET("/register", handlers.RegisterPage())
		pages.POST("/search", handlers.Search(searcher))
		pages.GET("/booking", handlers.BookingPage())
		pages.GET("/confirmation", handlers.Confirmation())
	}
	r.GET("/my_bookings", middleware.SessionAuthPage(sessions), handlers.MyBookings(bookings))
	r.GET("/sw.js", handlers.ServiceWorker())

	// Auth
	r.POST("/login", handlers.Login(users, sessions))
	r.POST("/register", handlers.Register(users))
	r.GET("/logout", handlers.Logout(sessions))

	// API
	api := r.Group("/api")
	{
		api.POST("/book", middleware.SessionAuth(sessions), handlers.BookFlight(bookings))
		api.POST("/subscribe", handlers.Subscribe(notifier))
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
