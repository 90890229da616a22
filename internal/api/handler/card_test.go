// internal/api/handler/card_test.go
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardwallet/internal/domain"
	"cardwallet/internal/form"
	"cardwallet/internal/store"
	"cardwallet/internal/util"
)

// MockCardService is a mock implementation of service.CardService.
type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) Snapshot(ctx context.Context) store.Snapshot {
	return m.Called(ctx).Get(0).(store.Snapshot)
}

func (m *MockCardService) Card(ctx context.Context, id domain.CardID) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) DefaultCard(ctx context.Context) (*domain.Card, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Card), args.Bool(1)
}

func (m *MockCardService) AddCard(ctx context.Context, f form.AddCard) (*domain.Card, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) DeleteCard(ctx context.Context, id domain.CardID) store.Snapshot {
	return m.Called(ctx, id).Get(0).(store.Snapshot)
}

func (m *MockCardService) SetDefaultCard(ctx context.Context, id domain.CardID) store.Snapshot {
	return m.Called(ctx, id).Get(0).(store.Snapshot)
}

func (m *MockCardService) SetCardActive(ctx context.Context, id domain.CardID, active bool) store.Snapshot {
	return m.Called(ctx, id, active).Get(0).(store.Snapshot)
}

func (m *MockCardService) ToggleExpanded(ctx context.Context, id domain.CardID) store.Snapshot {
	return m.Called(ctx, id).Get(0).(store.Snapshot)
}

func (m *MockCardService) SelectCard(ctx context.Context, id domain.CardID) store.Snapshot {
	return m.Called(ctx, id).Get(0).(store.Snapshot)
}

// newTestRouter mounts the card routes the same way the real router does.
func newTestRouter(h *CardHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/cards", func(r chi.Router) {
		r.Get("/", h.ListCards)
		r.Post("/", h.AddCard)
		r.Route("/{cardID}", func(r chi.Router) {
			r.Get("/", h.GetCard)
			r.Delete("/", h.DeleteCard)
			r.Post("/active", h.SetCardActive)
			r.Post("/expand", h.ToggleExpanded)
		})
	})
	return r
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCardHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	card := domain.NewCard("card-1", domain.NewCardParams{Number: "4242424242424242", CardholderName: "john doe", ExpiryMonth: "12", ExpiryYear: "25"}).WithDefault(true)
	snap := store.Snapshot{Cards: []domain.Card{card}, ExpandedCardID: "card-1", Stats: domain.CardStats{Total: 1, Active: 1}}

	t.Run("AddCardCreated", func(t *testing.T) {
		svc := new(MockCardService)
		expected := form.AddCard{CardNumber: "4242424242424242", CardholderName: "john doe", ExpiryMonth: "12", ExpiryYear: "25", CVV: "123"}
		svc.On("AddCard", mock.Anything, expected).Return(&card, nil).Once()

		rec := serve(t, newTestRouter(NewCardHandler(svc, logger)), http.MethodPost, "/cards",
			`{"card_number":"4242424242424242","cardholder_name":"john doe","expiry_month":"12","expiry_year":"25","cvv":"123"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.Card
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, card, got)
		svc.AssertExpectations(t)
	})

	t.Run("AddCardMalformedBody", func(t *testing.T) {
		svc := new(MockCardService)

		rec := serve(t, newTestRouter(NewCardHandler(svc, logger)), http.MethodPost, "/cards", `{not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid input provided")
		svc.AssertNotCalled(t, "AddCard", mock.Anything, mock.Anything)
	})

	t.Run("AddCardValidationError", func(t *testing.T) {
		svc := new(MockCardService)
		svc.On("AddCard", mock.Anything, mock.Anything).Return(nil, errors.Join(util.ErrInvalidInput, errors.New("card number must be 16 digits"))).Once()

		rec := serve(t, newTestRouter(NewCardHandler(svc, logger)), http.MethodPost, "/cards", `{"card_number":"1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "card number must be 16 digits")
	})

	t.Run("GetCardNotFound", func(t *testing.T) {
		svc := new(MockCardService)
		svc.On("Card", mock.Anything, domain.CardID("missing")).Return(nil, util.ErrCardNotFound).Once()

		rec := serve(t, newTestRouter(NewCardHandler(svc, logger)), http.MethodGet, "/cards/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Resource not found")
	})

	t.Run("UnexpectedErrorIs500", func(t *testing.T) {
		svc := new(MockCardService)
		svc.On("Card", mock.Anything, domain.CardID("card-1")).Return(nil, errors.New("boom")).Once()

		rec := serve(t, newTestRouter(NewCardHandler(svc, logger)), http.MethodGet, "/cards/card-1", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Internal server error")
	})

	t.Run("ListCardsShape", func(t *testing.T) {
		svc := new(MockCardService)
		svc.On("Snapshot", mock.Anything).Return(snap).Once()

		rec := serve(t, newTestRouter(NewCardHandler(svc, logger)), http.MethodGet, "/cards", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "card-1", body["expanded_card_id"])
		assert.Nil(t, body["selected_card_id"])
		assert.Len(t, body["data"], 1)
		assert.Equal(t, map[string]interface{}{"total": float64(1), "active": float64(1), "disabled": float64(0)}, body["stats"])
	})

	t.Run("DeleteCardPassesID", func(t *testing.T) {
		svc := new(MockCardService)
		svc.On("DeleteCard", mock.Anything, domain.CardID("card-1")).Return(store.Snapshot{}).Once()

		rec := serve(t, newTestRouter(NewCardHandler(svc, logger)), http.MethodDelete, "/cards/card-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[],"expanded_card_id":null,"selected_card_id":null,"stats":{"total":0,"active":0,"disabled":0}}`, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("SetCardActive", func(t *testing.T) {
		svc := new(MockCardService)
		svc.On("SetCardActive", mock.Anything, domain.CardID("card-1"), false).Return(snap).Once()

		rec := serve(t, newTestRouter(NewCardHandler(svc, logger)), http.MethodPost, "/cards/card-1/active", `{"active":false}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("SetCardActiveMissingField", func(t *testing.T) {
		svc := new(MockCardService)

		rec := serve(t, newTestRouter(NewCardHandler(svc, logger)), http.MethodPost, "/cards/card-1/active", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "SetCardActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ToggleExpanded", func(t *testing.T) {
		svc := new(MockCardService)
		svc.On("ToggleExpanded", mock.Anything, domain.CardID("card-1")).Return(snap).Once()

		rec := serve(t, newTestRouter(NewCardHandler(svc, logger)), http.MethodPost, "/cards/card-1/expand", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})
}
