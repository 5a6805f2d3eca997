package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/logitrustkenya/logistics-enhanced-sub000/config"
	"github.com/logitrustkenya/logistics-enhanced-sub000/controllers"
	_ "github.com/logitrustkenya/logistics-enhanced-sub000/docs"
	"github.com/logitrustkenya/logistics-enhanced-sub000/events"
	"github.com/logitrustkenya/logistics-enhanced-sub000/logger"
	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
	"github.com/logitrustkenya/logistics-enhanced-sub000/routes"
	"github.com/logitrustkenya/logistics-enhanced-sub000/store"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @title LogitrustKenya API
// @version 1.0
// @description Logistics marketplace backend: shipments, quotes, payments, tracking and auth.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := config.Disconnect(db); err != nil {
			log.Warn("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	log.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	stores := store.NewMongoStores(db)

	var producer *events.Producer
	if cfg.KafkaBroker != "" {
		producer = events.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
		defer producer.Close()
		log.Info("shipment events enabled", zap.String("topic", cfg.KafkaTopic))
	}

	if err := seedAdmin(stores.Users, cfg); err != nil {
		log.Fatal("failed to seed admin account", zap.Error(err))
	}

	ctrl := routes.Controllers{
		Auth:      controllers.NewAuthController(stores.Users, []byte(cfg.JWTSecret)),
		Shipments: controllers.NewShipmentController(stores.Shipments, producer),
		Quotes:    controllers.NewQuoteController(stores.Quotes),
		Payments:  controllers.NewPaymentController(stores.Payments),
		Tracking:  controllers.NewTrackingController(stores.Tracking),
	}

	router := gin.Default()
	routes.Routes(router, ctrl, db, []byte(cfg.JWTSecret))

	log.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// seedAdmin creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no admin exists under that email yet.
func seedAdmin(users store.UserStore, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	defer cancel()

	count, err := users.CountByEmailAndType(ctx, cfg.AdminEmail, models.UserTypeAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, models.User{
		Email:     cfg.AdminEmail,
		Password:  string(hashed),
		UserType:  models.UserTypeAdmin,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	zap.L().Info("admin account created", zap.String("email", cfg.AdminEmail))
	return nil
}
