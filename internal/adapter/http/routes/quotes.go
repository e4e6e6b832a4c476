package routes

import (
	"staffdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes       = "/quotes"
	PathInteractions = "/interactions"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, interactionHandler *handlers.InteractionHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.IssueQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/claim", quoteHandler.ClaimQuote)
		quotes.PATCH("/:id/payment-method", quoteHandler.SelectPaymentMethod)
		quotes.PATCH("/:id/paid", quoteHandler.ConfirmQuotePaid)
		quotes.PATCH("/:id/invoice", quoteHandler.AttachInvoice)
		quotes.PATCH("/:id/complete", quoteHandler.CompleteQuote)
	}

	interactions := rg.Group(PathInteractions)
	{
		// Single envelope endpoint for the chat layer.
		interactions.POST("", interactionHandler.Dispatch)
	}
}
