package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"navillera/app"
)

func main() {
	// Load .env in development. In production, variables are set directly.
	if os.Getenv("ENV") != "production" {
		// Overload so .env values override system environment variables
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		} else {
			log.Printf("Loaded environment variables from .env")
		}
	}

	handler, err := app.Initialize()
	if err != nil {
		log.Fatal(err)
	}

	// Listen on 0.0.0.0 to accept connections from all interfaces
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	// PORT from some hosts arrives with a leading colon
	if port[0] == ':' {
		port = port[1:]
	}
	addr := "0.0.0.0:" + port
	log.Printf("Server starting on %s", addr)
	log.Printf("Catalog endpoint: GET http://localhost:%s/api/catalog", port)

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
