package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MilkBrand{}); err != nil {
		log.Fatalf("Error migrating milk brand database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Submission{}); err != nil {
		log.Fatalf("Error migrating submission database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Announcement{}); err != nil {
		log.Fatalf("Error migrating announcement database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
