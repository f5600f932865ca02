package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/controllers/admin/inventory_controller"
	"github.com/Tazeen604/ZerZabar-sub002/controllers/admin/notification_controller"
	"github.com/Tazeen604/ZerZabar-sub002/controllers/admin/order_controller"
	"github.com/Tazeen604/ZerZabar-sub002/controllers/admin/report_controller"
	"github.com/Tazeen604/ZerZabar-sub002/controllers/admin/settings_controller"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/routes/admin_routes"
	"github.com/Tazeen604/ZerZabar-sub002/services"
	"github.com/Tazeen604/ZerZabar-sub002/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (rate limiter; optional)
	config.ConnectRedis()

	// Storefront client and stores
	client := services.NewStorefrontClient()
	orderStore := store.NewOrderStore()
	transitions := services.NewTransitionService(client, orderStore)
	settingsSvc := services.NewSettingsService(client)
	notificationsSvc := services.NewNotificationService(client, config.NotificationPollInterval())

	// Wire controllers
	order_controller.Init(client, orderStore, transitions, config.SearchDebounce())
	inventory_controller.Init(client, settingsSvc)
	notification_controller.Init(notificationsSvc)
	settings_controller.Init(settingsSvc)
	report_controller.Init(client)

	// Background notification poller with a deterministic stop handle
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	notificationsSvc.Start(ctx)
	defer notificationsSvc.Stop()
	log.Println("✅ Notification poller started")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // invoice downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.TokenPassthrough())
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	admin_routes.SetupOrderRoutes(adminGroup)
	admin_routes.SetupInventoryRoutes(adminGroup)
	admin_routes.SetupNotificationRoutes(adminGroup)
	admin_routes.SetupSettingsRoutes(adminGroup)
	admin_routes.SetupReportRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Println("🚀 Server is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
