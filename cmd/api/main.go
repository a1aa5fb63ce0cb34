package main

import (
	_ "fibra_vendas/docs"
	"fibra_vendas/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Fibra Vendas API
// @version         1.0
// @description     Order capture wizard for residential fiber subscriptions.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey InternalKey
// @in header
// @name x-internal-key
// @description Shared secret for provider-facing routes.

func main() {
	routes.Run()
}
