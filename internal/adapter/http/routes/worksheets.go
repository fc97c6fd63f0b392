package routes

import (
	"precifica_ti/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorksheets = "/worksheets"
)

func addWorksheetRoutes(rg *gin.RouterGroup, worksheetHandler *handlers.WorksheetHandler) {
	worksheets := rg.Group(PathWorksheets)
	{
		worksheets.POST("", worksheetHandler.CreateWorksheet)
		worksheets.GET("/:id", worksheetHandler.GetWorksheet)
		worksheets.PATCH("/:id/params", worksheetHandler.UpdateParams)
		worksheets.POST("/:id/items", worksheetHandler.AddItem)
		worksheets.PATCH("/:id/items/:item_id", worksheetHandler.UpdateItem)
		worksheets.DELETE("/:id/items/:item_id", worksheetHandler.RemoveItem)
	}
}
