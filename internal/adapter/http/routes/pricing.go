package routes

import (
	"precifica_ti/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing   = "/pricing"
	PathTelephony = "/telephony"
)

func addPricingRoutes(
	rg *gin.RouterGroup,
	pricingHandler *handlers.PricingHandler,
	telephonyHandler *handlers.TelephonyHandler,
	quoteHandler *handlers.TelephonyQuoteHandler,
) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/sales", pricingHandler.SalesPrice)
		pricing.POST("/rental", pricingHandler.RentalPrice)
		pricing.POST("/services", pricingHandler.ServicePrice)
		pricing.POST("/difal", pricingHandler.DIFAL)
		pricing.GET("/format", pricingHandler.FormatCurrency)
		pricing.POST("/worksheets", pricingHandler.EvaluateWorksheet)
	}

	telephony := rg.Group(PathTelephony)
	{
		telephony.POST("/pabx", telephonyHandler.QuotePABX)
		telephony.POST("/sip", telephonyHandler.QuoteSIP)

		telephony.POST("/quotes", quoteHandler.CreateQuote)
		telephony.GET("/quotes", quoteHandler.ListQuotes)
		telephony.GET("/quotes/:id", quoteHandler.GetQuote)
		telephony.POST("/quotes/:id/lines", quoteHandler.AddQuoteLines)
		telephony.DELETE("/quotes/:id/lines/:line_id", quoteHandler.RemoveQuoteLine)
	}
}
