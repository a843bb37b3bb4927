package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/cmd/config"
	migration "github.com/Lanhyun1508/taiwan-fresh-milk-guide/cmd/database/migrate"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on config.yaml")
	}
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to configure app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
