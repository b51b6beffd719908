package seed

import (
	"log"
	"os"

	"github.com/MCN-Plateforme/MCN-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Admin user
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@mcn.sn"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme"
	}

	var admin models.UtilisateurModel
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		log.Printf("Admin user %q already exists\n", adminEmail)
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)

		newAdmin := models.UtilisateurModel{
			Nom:        "Administrateur",
			Email:      adminEmail,
			MotDePasse: string(hashedPassword),
			Role:       models.RoleAdmin,
		}
		if err := db.Create(&newAdmin).Error; err != nil {
			log.Printf("Failed to create admin user: %v\n", err)
		} else {
			log.Printf("Admin user %q created\n", adminEmail)
		}
	}

	// Permanent collections seeding
	log.Println("Checking and creating permanent collections...")
	collections := []models.CollectionModel{
		{Nom: "Civilisations africaines", EstPermanente: true},
		{Nom: "Arts contemporains", EstPermanente: true},
		{Nom: "Patrimoine du Sénégal", EstPermanente: true},
	}
	createdCount := 0
	for _, collection := range collections {
		var existing models.CollectionModel
		checkResult := db.Where("nom = ?", collection.Nom).First(&existing)
		if checkResult.Error == nil {
			log.Printf("Collection %q already exists, skipping\n", collection.Nom)
			continue
		}
		if err := db.Create(&collection).Error; err != nil {
			log.Printf("Failed to create collection %q: %v\n", collection.Nom, err)
		} else {
			log.Printf("Collection %q created\n", collection.Nom)
			createdCount++
		}
	}
	if createdCount > 0 {
		log.Printf("Finished creating %d new collections\n", createdCount)
	} else {
		log.Println("All collections already exist")
	}
}
