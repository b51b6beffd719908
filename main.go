package main

import (
	"log"
	"os"

	"github.com/MCN-Plateforme/MCN-Backend/src/db"
	"github.com/MCN-Plateforme/MCN-Backend/src/middleware"
	"github.com/MCN-Plateforme/MCN-Backend/src/models"
	"github.com/MCN-Plateforme/MCN-Backend/src/routes"
	"github.com/MCN-Plateforme/MCN-Backend/src/seed"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/MCN-Plateforme/MCN-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.UtilisateurModel{},
		&models.CollectionModel{},
		&models.OeuvreModel{},
		&models.DescriptionModel{},
		&models.MediaModel{},
		&models.EvenementModel{},
		&models.InscriptionModel{},
		&models.FavoriModel{},
		&models.HistoriqueModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT signing key
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	middleware.SetSecretKey(secret)

	// Media storage (Cloudinary)
	storage, err := utils.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("Error initializing media storage: %v\n", err)
	}

	// Seed initial data
	seed.Seed(db)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())
	router.Use(middleware.SanitizeInputMiddleware())

	// Services setup
	utilisateurService := services.NewUtilisateurService(db)
	collectionService := services.NewCollectionService(db, storage)
	oeuvreService := services.NewOeuvreService(db, storage)
	evenementService := services.NewEvenementService(db, storage)
	favoriService := services.NewFavoriService(db)

	// Routes setup
	routes.SetupUtilisateurRoutes(router, utilisateurService)
	routes.SetupCollectionRoutes(router, collectionService)
	routes.SetupOeuvreRoutes(router, oeuvreService, utilisateurService)
	routes.SetupEvenementRoutes(router, evenementService)
	routes.SetupFavoriRoutes(router, favoriService)
	routes.SetupQrCodeRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
