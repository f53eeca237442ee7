package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"impactohub-backend/internal/config"
	"impactohub-backend/internal/database"
	"impactohub-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seed data structures that directly match the YAML layout
type PlanData struct {
	Name             string  `yaml:"name"`
	Description      string  `yaml:"description"`
	MonthlyPrice     float64 `yaml:"monthly_price"`
	YearlyPrice      float64 `yaml:"yearly_price"`
	MaxUsers         int     `yaml:"max_users"`
	MaxProjects      int     `yaml:"max_projects"`
	MaxBeneficiaries int     `yaml:"max_beneficiaries"`
}

type AdminData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type SeedData struct {
	Plans  []PlanData  `yaml:"plans"`
	Admins []AdminData `yaml:"admins"`
}

func main() {
	seedPath := "scripts/seed.yaml"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	data, err := loadSeedFile(seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	if err := seedPlans(db, data.Plans); err != nil {
		log.Fatalf("Failed to seed plans: %v", err)
	}
	if err := seedAdmins(db, data.Admins); err != nil {
		log.Fatalf("Failed to seed admins: %v", err)
	}

	log.Println("Initial data loaded")
}

func loadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &data, nil
}

// seedPlans inserts plans that do not exist yet; existing plans are left
// untouched so reruns are safe
func seedPlans(db *gorm.DB, plans []PlanData) error {
	for _, p := range plans {
		var existing models.SubscriptionPlan
		err := db.First(&existing, "name = ?", p.Name).Error
		if err == nil {
			log.Printf("Plan %q already exists, skipping", p.Name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		plan := models.SubscriptionPlan{
			Name:             p.Name,
			Description:      p.Description,
			MonthlyPrice:     p.MonthlyPrice,
			YearlyPrice:      p.YearlyPrice,
			MaxUsers:         p.MaxUsers,
			MaxProjects:      p.MaxProjects,
			MaxBeneficiaries: p.MaxBeneficiaries,
			IsActive:         true,
		}
		if err := db.Create(&plan).Error; err != nil {
			return err
		}
		log.Printf("Created plan %q", p.Name)
	}
	return nil
}

// seedAdmins bootstraps back-office admin users
func seedAdmins(db *gorm.DB, admins []AdminData) error {
	for _, a := range admins {
		var existing models.User
		err := db.First(&existing, "email = ?", a.Email).Error
		if err == nil {
			log.Printf("User %q already exists, skipping", a.Email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user := models.User{
			Name:  a.Name,
			Email: a.Email,
			Role:  models.RoleAdmin,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Created admin %q", a.Email)
	}
	return nil
}
