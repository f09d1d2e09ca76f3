package main

import (
	"log"
	"os"

	"github.com/190014uewroc/dAIet/config"
	"github.com/190014uewroc/dAIet/routes"
	"github.com/190014uewroc/dAIet/services"
)

func main() {
	config.InitDB()
	if err := services.SeedCatalog(); err != nil {
		log.Fatalf("catalog seed failed: %v", err)
	}
	if err := services.InitCatalog(); err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}

	r := routes.SetupRouter()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
