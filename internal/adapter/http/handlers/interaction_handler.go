package handlers

import (
	"net/http"

	request "staffdesk/internal/adapter/http/dto/request"
	response "staffdesk/internal/adapter/http/dto/response"
	"staffdesk/internal/adapter/notification"
	"staffdesk/internal/domain/entities"
	"staffdesk/internal/usecase"
	"staffdesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InteractionHandler is the dispatcher for chat-layer events: every button
// press, form submission and menu selection arrives here as one envelope.
// The action string is parsed into a closed enum before anything else runs,
// so an unknown action can never reach the lifecycle manager.
type InteractionHandler struct {
	usecase usecase.IQuoteLifecycleUseCase
	deduper interfaces.IEventDeduper
	log     *zap.Logger
}

func NewInteractionHandler(uc usecase.IQuoteLifecycleUseCase, deduper interfaces.IEventDeduper, log *zap.Logger) *InteractionHandler {
	return &InteractionHandler{usecase: uc, deduper: deduper, log: log.Named("dispatch")}
}

// Dispatch routes one interaction event to its lifecycle operation.
//
// @Summary  Dispatch a chat interaction event
// @Accept   json
// @Produce  json
// @Param    event body request.InteractionEventRequest true "event"
// @Success  200 {object} response.InteractionResponse
// @Router   /interactions [post]
func (h *InteractionHandler) Dispatch(c *gin.Context) {
	var payload request.InteractionEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := errInvalidQuotePayload
		c.JSON(appErr.HTTPStatus, response.InteractionErrorResponse{
			OK: false, Code: appErr.Code, Message: "That request could not be read.",
		})
		return
	}

	action, err := payload.ResolveAction()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.InteractionErrorResponse{
			OK: false, Code: "UNKNOWN_ACTION", Message: "That action is not supported.",
		})
		return
	}

	if h.suppressDuplicate(c, payload) {
		return
	}

	ctx := c.Request.Context()
	actor := payload.ResolveActorID()
	quoteID := payload.ResolveQuoteID()

	var (
		quote entities.Quote
		event entities.QuoteEvent
	)
	switch action {
	case request.ActionIssue:
		event = entities.QuoteEventIssued
		price, perr := request.IssueQuoteRequest{Price: payload.Payload.Price}.ResolvePrice()
		if perr != nil {
			err = usecase.ErrInvalidPrice
			break
		}
		quote, err = h.usecase.Issue(ctx,
			payload.Payload.CustomerID,
			payload.Payload.CustomerDisplayName,
			price,
			payload.Payload.TimeframeDays,
			payload.Payload.Details,
			actor,
		)
	case request.ActionAccept:
		event = entities.QuoteEventAccepted
		quote, err = h.usecase.Accept(ctx, quoteID, actor)
	case request.ActionReject:
		event = entities.QuoteEventRejected
		quote, err = h.usecase.Reject(ctx, quoteID, actor)
	case request.ActionClaim:
		event = entities.QuoteEventClaimed
		quote, err = h.usecase.Claim(ctx, quoteID, actor)
	case request.ActionSelectMethod:
		event = entities.QuoteEventMethodSelected
		method := request.PaymentMethodRequest{Method: payload.Payload.Method}.ResolveMethod()
		quote, err = h.usecase.SelectPaymentMethod(ctx, quoteID, entities.PaymentMethod(method))
	case request.ActionConfirmPaid:
		event = entities.QuoteEventPaid
		quote, err = h.usecase.ConfirmPaid(ctx, quoteID, actor)
	case request.ActionAttachInvoice:
		event = entities.QuoteEventInvoiceSent
		quote, err = h.usecase.AttachInvoice(ctx, quoteID, payload.Payload.Link, actor)
	case request.ActionComplete:
		event = entities.QuoteEventCompleted
		quote, err = h.usecase.Complete(ctx, quoteID, actor)
	}

	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, response.InteractionErrorResponse{
			OK:      false,
			Code:    appErr.Code,
			Message: notification.RenderError(err),
		})
		return
	}

	c.JSON(http.StatusOK, response.InteractionResponse{
		OK:      true,
		Message: notification.Render(quote, event).UserMessage,
		Quote:   response.FromQuote(quote),
	})
}

// suppressDuplicate applies the edge-store dedup window. Best-effort: with no
// deduper configured, no interaction id, or the edge store down, the event
// goes through (the lifecycle preconditions still hold server-side).
func (h *InteractionHandler) suppressDuplicate(c *gin.Context, payload request.InteractionEventRequest) bool {
	interactionID := payload.ResolveInteractionID()
	if h.deduper == nil || interactionID == "" {
		return false
	}

	seen, err := h.deduper.Seen(c.Request.Context(), interactionID)
	if err != nil {
		h.log.Warn("edge dedup unavailable, dispatching anyway",
			zap.String("interaction_id", interactionID), zap.Error(err))
		return false
	}
	if !seen {
		return false
	}

	resp := response.InteractionResponse{
		OK:        true,
		Duplicate: true,
		Message:   "Already handled.",
	}
	if quote, err := h.usecase.GetByID(c.Request.Context(), payload.ResolveQuoteID()); err == nil {
		resp.Quote = response.FromQuote(quote)
	}
	c.JSON(http.StatusOK, resp)
	return true
}
