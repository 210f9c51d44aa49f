package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/arzan03/PawPal/internal/config"
	"github.com/arzan03/PawPal/internal/db"
	"github.com/arzan03/PawPal/internal/routes"
	"github.com/arzan03/PawPal/internal/services"
	"github.com/arzan03/PawPal/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Connect to MongoDB; the server never starts without it
	client, err := db.ConnectMongoDB(ctx, cfg.MongoConnectionURI())
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	defer client.Disconnect(context.Background())

	database := client.Database(cfg.DBName)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("MongoDB index setup failed: %v", err)
	}

	users := services.NewUserService(database.Collection(db.Users))
	deps := routes.Deps{
		Tokens:     services.NewTokenService(cfg.JWTSecret, cfg.JWTTTL),
		Users:      users,
		Categories: services.NewCategoryService(database.Collection(db.Categories)),
		Pets:       services.NewPetService(database.Collection(db.Pets)),
		Donations:  services.NewDonationService(database.Collection(db.Donations)),
	}

	if cfg.ImagesEnabled() {
		images, err := storage.NewImageStore(ctx, storage.Options{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		deps.Images = images
	} else {
		log.Println("MINIO_ENDPOINT not set, image uploads disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:      "PawPal",
		ErrorHandler: routes.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins(),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.Register(app, deps)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down PawPal server")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Println("Pawpal server is running on port :", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
