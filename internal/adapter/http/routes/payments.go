package routes

import (
	"precifica_ti/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.ProposalPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:proposal_id", paymentHandler.CreatePaymentByProposalID)
		payments.GET("/:proposal_id", paymentHandler.GetPaymentByProposalID)
		payments.GET("/:proposal_id/history", paymentHandler.ListPaymentsByProposalID)
		payments.GET("/:proposal_id/records/:payment_id", paymentHandler.GetPayment)
	}
}
