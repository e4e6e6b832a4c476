package handlers

import (
	"context"
	"errors"
	"net/http"

	request "staffdesk/internal/adapter/http/dto/request"
	response "staffdesk/internal/adapter/http/dto/response"
	"staffdesk/internal/domain/entities"
	"staffdesk/internal/usecase"
	"staffdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles REST requests for the commission quote pipeline. The
// portal uses these endpoints directly; the bot goes through the interaction
// dispatcher instead.
type QuoteHandler struct {
	usecase usecase.IQuoteLifecycleUseCase
}

func NewQuoteHandler(uc usecase.IQuoteLifecycleUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// IssueQuote opens a new quote.
//
// @Summary  Issue a commission quote
// @Accept   json
// @Produce  json
// @Param    quote body request.IssueQuoteRequest true "quote"
// @Success  201 {object} response.QuoteResponse
// @Router   /quotes [post]
func (h *QuoteHandler) IssueQuote(c *gin.Context) {
	var payload request.IssueQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	price, err := payload.ResolvePrice()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Issue(
		c.Request.Context(),
		payload.ResolveCustomerID(),
		payload.CustomerDisplayName,
		price,
		payload.TimeframeDays,
		payload.Details,
		payload.IssuedBy,
	)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ListQuotes returns every quote currently known to the cache.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote returns one quote by id.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchWithActor(c, h.usecase.Accept)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchWithActor(c, h.usecase.Reject)
}

func (h *QuoteHandler) ClaimQuote(c *gin.Context) {
	h.patchWithActor(c, h.usecase.Claim)
}

func (h *QuoteHandler) ConfirmQuotePaid(c *gin.Context) {
	h.patchWithActor(c, h.usecase.ConfirmPaid)
}

func (h *QuoteHandler) CompleteQuote(c *gin.Context) {
	h.patchWithActor(c, h.usecase.Complete)
}

// SelectPaymentMethod sets the out-of-band payment channel.
func (h *QuoteHandler) SelectPaymentMethod(c *gin.Context) {
	var payload request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.SelectPaymentMethod(c.Request.Context(), c.Param("id"), entities.PaymentMethod(payload.ResolveMethod()))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// AttachInvoice records the invoice link. The admin capability gate is the
// caller's responsibility (portal session), not this endpoint's.
func (h *QuoteHandler) AttachInvoice(c *gin.Context) {
	var payload request.AttachInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.AttachInvoice(c.Request.Context(), c.Param("id"), payload.ResolveLink(), payload.ResolveActorID())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) patchWithActor(
	c *gin.Context,
	updater func(ctx context.Context, id, actorID string) (entities.Quote, error),
) {
	var payload request.ActorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := updater(c.Request.Context(), c.Param("id"), payload.ResolveActorID())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidTimeframe),
		errors.Is(err, usecase.ErrInvalidMethod),
		errors.Is(err, usecase.ErrInvalidInvoiceLink):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyClaimed):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_CLAIMED", "Quote already claimed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Action not allowed in the current state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
