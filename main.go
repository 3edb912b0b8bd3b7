package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/Shihab066/learning-server/app/controllers"
	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/app/routes"
	"github.com/Shihab066/learning-server/app/services"
	"github.com/Shihab066/learning-server/pkg/cache"
	"github.com/Shihab066/learning-server/pkg/database"
	"github.com/Shihab066/learning-server/pkg/encryption"
	"github.com/Shihab066/learning-server/pkg/media"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/Shihab066/learning-server/pkg/payments"
	"github.com/Shihab066/learning-server/pkg/utils"
)

func main() {
	r := gin.New()

	encryption.InitSnowflake()
	utils.InitVariables()
	utils.InitVaildator()

	ctx := context.Background()

	store, err := database.Connect(ctx, os.Getenv("MONGO_URI"), os.Getenv("MONGO_DB_NAME"))
	if err != nil {
		utils.Logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer store.Close(ctx)

	if err := store.SetupIndexes(ctx); err != nil {
		utils.Logger.Fatal("failed to setup indexes", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(ctx)
	if err != nil {
		// Aggregation caching is an optimization, the server still works
		// without it.
		utils.Logger.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	q := queries.New(store)

	stripeProvider := payments.NewStripeProvider(os.Getenv("STRIPE_SECRET_KEY"))
	checkoutService := services.NewCheckoutService(q, stripeProvider)

	signer := media.NewSigner(
		os.Getenv("CLOUD_NAME"),
		os.Getenv("CLOUD_API_KEY"),
		os.Getenv("CLOUD_SECRET_KEY"),
	)
	httpClient := &http.Client{Timeout: 30 * time.Second}

	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("#18FD7BFF")).Render("Successfully initialized all necessary services"))

	r.Use(middleware.CustomLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{utils.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.JwtRoute(r, controllers.NewJwtController())
	routes.PaymentRoute(r, controllers.NewPaymentController(checkoutService, q), q)
	routes.CourseRoute(r, controllers.NewCourseController(q, redisClient), q)
	routes.CartRoute(r, controllers.NewCartController(q), q)
	routes.WishlistRoute(r, controllers.NewWishlistController(q), q)
	routes.ReviewRoute(r, controllers.NewReviewController(q), q)
	routes.UserRoute(r, controllers.NewUserController(q), q)
	routes.InstructorRoute(r, controllers.NewInstructorController(q, redisClient))
	routes.DashboardRoute(r, controllers.NewDashboardController(q), q)
	routes.BannerRoute(r, controllers.NewBannerController(q), q)
	routes.FeedbackRoute(r, controllers.NewFeedbackController(q), q)
	routes.SuspensionRoute(r, controllers.NewSuspensionController(q), q)
	routes.MediaRoute(r, controllers.NewMediaController(q, signer, httpClient,
		os.Getenv("IMAGE_UPLOAD_PRESET"), os.Getenv("VIDEO_UPLOAD_PRESET")), q)

	utils.PrintAppBanner()

	if err := r.Run(); err != nil {
		fmt.Printf("Server failed to start: %v\n", err)
	}
}
