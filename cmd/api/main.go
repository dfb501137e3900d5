package main

import (
	_ "apolices_xpto/docs"
	"apolices_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Apolices API
// @version         1.0
// @description     Policies (apolices) and their endorsements (endossos), backed by DynamoDB or PostgreSQL.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
