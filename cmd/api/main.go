package main

import (
	_ "github.com/Fusion-Data-Company/appredding-sub009/docs"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Advance Power Redding API
// @version         1.0
// @description     Solar lead qualification, product catalog, cart and order service backed by DynamoDB and Redis.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
