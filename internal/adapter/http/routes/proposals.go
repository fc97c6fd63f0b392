package routes

import (
	"precifica_ti/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
)

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/current", proposalHandler.GetCurrentProposal)
		proposals.PUT("/current", proposalHandler.SetCurrentProposal)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PATCH("/:id/status", proposalHandler.UpdateProposalStatus)
		proposals.POST("/:id/budgets", proposalHandler.AddWorksheetBudget)
		proposals.POST("/:id/budgets/telephony", proposalHandler.AddTelephonyBudget)
	}
}
