package routes

import (
	"precifica_ti/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAnalyses = "/analyses"
)

func addAnalysisRoutes(rg *gin.RouterGroup, analysisHandler *handlers.AnalysisHandler) {
	analyses := rg.Group(PathAnalyses)
	{
		analyses.POST("", analysisHandler.AnalyzeEdital)
		analyses.GET("/:id", analysisHandler.GetAnalysis)
	}
}
