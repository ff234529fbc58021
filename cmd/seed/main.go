package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/agroferia/agroferia-backend/internal/config"
	"github.com/agroferia/agroferia-backend/internal/database"
	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/repository"
)

// Seeding is best effort: running twice is fine, duplicates are logged and
// skipped rather than prevented.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	users := repository.NewUserRepo(db)
	producers := repository.NewProducerRepo(db)
	fairs := repository.NewFairRepo(db)
	products := repository.NewProductRepo(db)
	translations := repository.NewTranslationRepo(db)

	seedUsers := []struct {
		u        model.User
		password string
	}{
		{model.User{Username: "admin", Email: "admin@agroferia.local", FullName: "Administrador General", Role: model.RoleAdmin, Status: "active"}, "admin1234"},
		{model.User{Username: "coordinadora", Email: "coordinadora@agroferia.local", FullName: "María Quispe", Role: model.RoleCoordinator, Status: "active"}, "coord1234"},
		{model.User{Username: "productor1", Email: "productor1@agroferia.local", FullName: "Juan Mamani", Role: model.RoleProducer, Status: "active"}, "prod12345"},
	}
	for _, s := range seedUsers {
		if _, err := users.Create(ctx, &s.u, s.password, cfg.BcryptCost); err != nil {
			logSkip("user "+s.u.Username, err)
		}
	}

	p := model.Producer{
		Name:           "Juan Mamani",
		DocumentType:   "cedula",
		DocumentNumber: "1234567890",
		Phone:          "0991234567",
		Email:          "productor1@agroferia.local",
		FarmName:       "Finca San José",
		FarmSize:       2.5,
		ProductType:    []string{"hortalizas", "granos"},
	}
	if err := producers.Create(ctx, &p); err != nil {
		logSkip("producer "+p.DocumentNumber, err)
	}

	f := model.Fair{
		Name:              "Feria Agroecológica de Cotacachi",
		Location:          "Cotacachi",
		Address:           "Parque Central, Cotacachi",
		StartDate:         time.Now().AddDate(0, 0, 7),
		EndDate:           time.Now().AddDate(0, 0, 8),
		MaxCapacity:       50,
		Status:            model.FairScheduled,
		ProductCategories: []string{"hortalizas", "frutas", "granos", "lácteos"},
		Requirements:      []string{"certificado agroecológico", "carpa propia"},
	}
	if err := fairs.Create(ctx, &f); err != nil {
		logSkip("fair "+f.Name, err)
	}

	if p.ID != 0 {
		pr := model.Product{
			ProducerID: p.ID,
			Name:       "Quinua orgánica",
			Category:   "granos",
			Quantity:   100,
			Unit:       "kg",
			UnitPrice:  3.5,
			Status:     "available",
		}
		if err := products.Create(ctx, &pr); err != nil {
			logSkip("product "+pr.Name, err)
		}
	}

	seedTranslations := []model.Translation{
		{LanguageCode: "es", Key: "welcome", Value: "Bienvenido a AgroFeria"},
		{LanguageCode: "en", Key: "welcome", Value: "Welcome to AgroFeria"},
		{LanguageCode: "qu", Key: "welcome", Value: "Allin hamusqayki AgroFeriaman"},
	}
	for _, t := range seedTranslations {
		tr := t
		if err := translations.Upsert(ctx, &tr); err != nil {
			logSkip("translation "+t.LanguageCode+"/"+t.Key, err)
		}
	}

	log.Println("seed complete")
}

func logSkip(what string, err error) {
	if errors.Is(err, repository.ErrDuplicate) {
		log.Printf("seed: %s already exists, skipping", what)
		return
	}
	log.Printf("seed: %s failed: %v", what, err)
}
