package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/utn-integrador-III/security-service/config"
	"github.com/utn-integrador-III/security-service/db"
	"github.com/utn-integrador-III/security-service/internal/access/handler"
	"github.com/utn-integrador-III/security-service/internal/access/notifier"
	repo "github.com/utn-integrador-III/security-service/internal/access/repository/mongodb"
	"github.com/utn-integrador-III/security-service/internal/access/service"
)

func main() {
	cfg := config.Load()

	client, err := db.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to initialize MongoDB client: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("warn: failed to disconnect MongoDB client: %v", err)
		}
	}()

	database := client.Database(cfg.MongoDB)
	userRepo := repo.NewUserRepository(database)
	roleRegistry := repo.NewRoleRegistry(database)
	appRegistry := repo.NewAppRegistry(database)

	resolver := service.NewResolver(roleRegistry, appRegistry)
	mailer := notifier.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPUsername, cfg.SMTPPassword)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.AccessExpiryMin)

	enrollment := service.NewEnrollmentService(userRepo, resolver, mailer)
	verification := service.NewVerificationService(userRepo)
	grants := service.NewGrantService(userRepo, resolver)
	passwords := service.NewPasswordService(userRepo, mailer)
	sessions := service.NewSessionService(userRepo, resolver, tokenService)

	userHandler := handler.NewUserHandler(enrollment, verification, grants, passwords, sessions)

	app := fiber.New()
	handler.RegisterRoutes(app, userHandler)

	log.Fatal(app.Listen(":" + cfg.Port))
}
