package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/logitrustkenya/logistics-enhanced-sub000/controllers"
	"github.com/logitrustkenya/logistics-enhanced-sub000/middlewares"
)

// Controllers bundles everything Routes needs to register the API surface.
type Controllers struct {
	Auth      *controllers.AuthController
	Shipments *controllers.ShipmentController
	Quotes    *controllers.QuoteController
	Payments  *controllers.PaymentController
	Tracking  *controllers.TrackingController
}

func Routes(router *gin.Engine, ctrl Controllers, db *mongo.Database, jwtSecret []byte) {

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", healthHandler(db))

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/signup", ctrl.Auth.Signup)
		authRoutes.GET("/signup", ctrl.Auth.SignupInfo)
		authRoutes.POST("/login", ctrl.Auth.Login)

		// Admin user management
		adminRoutes := authRoutes.Group("/")
		adminRoutes.Use(middlewares.AuthMiddleware(jwtSecret), middlewares.AdminMiddleware())
		adminRoutes.PATCH("/promote/:email", ctrl.Auth.PromoteUserToAdmin)
	}

	shipmentRoutes := api.Group("/shipments")
	{
		shipmentRoutes.GET("", ctrl.Shipments.GetShipments)
		shipmentRoutes.POST("", ctrl.Shipments.CreateShipment)
		shipmentRoutes.PUT("", ctrl.Shipments.UpdateShipment)
		shipmentRoutes.DELETE("", ctrl.Shipments.DeleteShipment)
	}

	quoteRoutes := api.Group("/quotes")
	{
		quoteRoutes.GET("", ctrl.Quotes.GetQuotes)
		quoteRoutes.POST("", ctrl.Quotes.CreateQuote)
		quoteRoutes.PUT("", ctrl.Quotes.UpdateQuote)
		quoteRoutes.DELETE("", ctrl.Quotes.DeleteQuote)
	}

	paymentRoutes := api.Group("/payments")
	{
		paymentRoutes.GET("", ctrl.Payments.GetPayments)
		paymentRoutes.POST("", ctrl.Payments.CreatePayment)
		paymentRoutes.PUT("", ctrl.Payments.UpdatePayment)
		paymentRoutes.DELETE("", ctrl.Payments.DeletePayment)
	}

	trackingRoutes := api.Group("/tracking")
	{
		trackingRoutes.GET("", ctrl.Tracking.GetTrackingRecords)
		trackingRoutes.POST("", ctrl.Tracking.CreateTrackingRecord)
		trackingRoutes.PUT("", ctrl.Tracking.UpdateTrackingRecord)
		trackingRoutes.DELETE("", ctrl.Tracking.DeleteTrackingRecord)
	}
}

func healthHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
