package configs

import (
	"log"

	"grillpos/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first manager account from env so a fresh install can
// log in.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Employee{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Employee{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "manager",
	}
	return db.Create(&admin).Error
}

// SeedLookups seeds status and category lookup tables.
func SeedLookups(cfg *Config) error {
	db := DB()

	// Transaction lifecycle
	db.FirstOrCreate(&entity.TransactionStatus{}, entity.TransactionStatus{StatusName: "in progress"})
	db.FirstOrCreate(&entity.TransactionStatus{}, entity.TransactionStatus{StatusName: "fulfilled"})

	// Menu categories come from config so venues can rename them without a
	// migration.
	for _, name := range cfg.Categories {
		db.FirstOrCreate(&entity.Category{}, entity.Category{CategoryName: name})
	}

	log.Println("lookup tables seeded")
	return nil
}
