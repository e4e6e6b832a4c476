package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"staffdesk/internal/adapter/http/handlers/mocks"
	"staffdesk/internal/domain/entities"
	"staffdesk/internal/usecase"
	mock_interfaces "staffdesk/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func dispatchRouter(h *InteractionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/interactions", h.Dispatch)
	return r
}

func postInteraction(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/interactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInteractionHandler_UnknownAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteLifecycleUseCase(ctrl)
	h := NewInteractionHandler(uc, nil, zap.NewNop())

	w := postInteraction(t, dispatchRouter(h), `{"action":"explode","actor_id":"staff-7"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["code"] != "UNKNOWN_ACTION" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestInteractionHandler_DispatchesClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteLifecycleUseCase(ctrl)
	h := NewInteractionHandler(uc, nil, zap.NewNop())

	uc.EXPECT().Claim(gomock.Any(), "q-1", "staff-7").
		Return(entities.Quote{ID: "q-1", QuoteNumber: 3, ClaimedBy: "staff-7"}, nil)

	w := postInteraction(t, dispatchRouter(h), `{"action":"claim","quote_id":"q-1","actor_id":"staff-7"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["ok"] != true {
		t.Fatalf("expected ok, got %v", resp)
	}
	if msg, _ := resp["message"].(string); msg == "" {
		t.Fatalf("expected a rendered user message")
	}
}

func TestInteractionHandler_DispatchesIssue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteLifecycleUseCase(ctrl)
	h := NewInteractionHandler(uc, nil, zap.NewNop())

	uc.EXPECT().
		Issue(gomock.Any(), "cust-42", "Apricot", gomock.Any(), 7, "logo", "staff-1").
		Return(entities.Quote{ID: "q-1", QuoteNumber: 1}, nil)

	body := `{"action":"issue","actor_id":"staff-1","payload":{"customer_id":"cust-42","customer_display_name":"Apricot","price":150,"timeframe_days":7,"details":"logo"}}`
	w := postInteraction(t, dispatchRouter(h), body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestInteractionHandler_NormalizesPaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteLifecycleUseCase(ctrl)
	h := NewInteractionHandler(uc, nil, zap.NewNop())

	// Mixed-case method strings from chat menus must land as the canonical
	// lowercase method, same as the REST payment-method route.
	uc.EXPECT().
		SelectPaymentMethod(gomock.Any(), "q-1", entities.PaymentMethodPayPal).
		Return(entities.Quote{ID: "q-1", QuoteNumber: 2, PaymentMethod: entities.PaymentMethodPayPal}, nil)

	body := `{"action":"select_payment_method","quote_id":"q-1","actor_id":"cust-42","payload":{"method":" PayPal "}}`
	w := postInteraction(t, dispatchRouter(h), body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestInteractionHandler_FailureRendersUserMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteLifecycleUseCase(ctrl)
	h := NewInteractionHandler(uc, nil, zap.NewNop())

	uc.EXPECT().Claim(gomock.Any(), "q-1", "staff-9").
		Return(entities.Quote{}, usecase.ErrQuoteAlreadyClaimed)

	w := postInteraction(t, dispatchRouter(h), `{"action":"claim","quote_id":"q-1","actor_id":"staff-9"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["ok"] != false || resp["code"] != "QUOTE_ALREADY_CLAIMED" {
		t.Fatalf("unexpected body: %v", resp)
	}
	if msg, _ := resp["message"].(string); msg == "" {
		t.Fatalf("expected a rendered failure message")
	}
}

func TestInteractionHandler_DuplicateSuppressed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteLifecycleUseCase(ctrl)
	deduper := mock_interfaces.NewMockIEventDeduper(ctrl)
	h := NewInteractionHandler(uc, deduper, zap.NewNop())

	deduper.EXPECT().Seen(gomock.Any(), "btn-123").Return(true, nil)
	uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

	w := postInteraction(t, dispatchRouter(h), `{"action":"confirm_paid","quote_id":"q-1","actor_id":"staff-7","interaction_id":"btn-123"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["duplicate"] != true {
		t.Fatalf("expected duplicate marker, got %v", resp)
	}
}

func TestInteractionHandler_DedupFailureDispatchesAnyway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteLifecycleUseCase(ctrl)
	deduper := mock_interfaces.NewMockIEventDeduper(ctrl)
	h := NewInteractionHandler(uc, deduper, zap.NewNop())

	deduper.EXPECT().Seen(gomock.Any(), "btn-123").Return(false, errors.New("redis down"))
	uc.EXPECT().ConfirmPaid(gomock.Any(), "q-1", "staff-7").
		Return(entities.Quote{ID: "q-1", Paid: true}, nil)

	w := postInteraction(t, dispatchRouter(h), `{"action":"confirm_paid","quote_id":"q-1","actor_id":"staff-7","interaction_id":"btn-123"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
