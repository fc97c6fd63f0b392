package routes

import (
	"precifica_ti/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConfiguration = "/configuration"
)

func addConfigurationRoutes(rg *gin.RouterGroup, configurationHandler *handlers.ConfigurationHandler) {
	configuration := rg.Group(PathConfiguration)
	{
		configuration.GET("", configurationHandler.GetConfiguration)
		configuration.GET("/tax-regimes/active", configurationHandler.GetActiveTaxRegime)
		configuration.PATCH("/tax-regimes/:id", configurationHandler.UpdateTaxRegime)
		configuration.POST("/tax-regimes/:id/toggle", configurationHandler.ToggleTaxRegime)
		configuration.PATCH("/costs", configurationHandler.UpdateCostsExpenses)
		configuration.PATCH("/labor", configurationHandler.UpdateLaborCosts)
		configuration.POST("/labor/commit", configurationHandler.CommitLaborCosts)
		configuration.PATCH("/company", configurationHandler.UpdateCompanyData)
		configuration.PATCH("/icms", configurationHandler.UpdateICMSRates)
	}
}
