package main

import (
	"context"
	_ "precifica_ti/docs"
	"precifica_ti/internal/adapter/http/routes"
	"precifica_ti/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Precifica TI API
// @version         1.0
// @description     Pricing, proposals and edital analysis for IT public tenders.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	if err := routes.Run(context.Background(), cfg); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
