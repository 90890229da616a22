// internal/api/handler/card.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cardwallet/internal/api/types"
	"cardwallet/internal/domain"
	"cardwallet/internal/form"
	"cardwallet/internal/service"
	"cardwallet/internal/util" // For custom errors
)

// CardHandler handles HTTP requests related to card management.
type CardHandler struct {
	responder
	service service.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(svc service.CardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// cardIDParam reads the {cardID} path parameter.
func cardIDParam(r *http.Request) domain.CardID {
	return domain.CardID(chi.URLParam(r, "cardID"))
}

// ListCards returns the card list with selection state and counts.
// GET /cards
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Snapshot(r.Context())
	h.respondWithJSON(w, http.StatusOK, types.NewCardCollectionResponse(snap))
}

// GetStats returns only the derived card counts.
// GET /cards/stats
func (h *CardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Snapshot(r.Context())
	h.respondWithJSON(w, http.StatusOK, snap.Stats)
}

// AddCard handles the add-card form submission.
// POST /cards
func (h *CardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	var req form.AddCard
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	card, err := h.service.AddCard(r.Context(), req)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, card)
}

// GetCard returns a single card.
// GET /cards/{cardID}
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.service.Card(r.Context(), cardIDParam(r))
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, card)
}

// DeleteCard removes a card. Deleting an unknown card still succeeds.
// DELETE /cards/{cardID}
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	snap := h.service.DeleteCard(r.Context(), cardIDParam(r))
	h.respondWithJSON(w, http.StatusOK, types.NewCardCollectionResponse(snap))
}

// SetDefaultCard marks a card as the default one.
// POST /cards/{cardID}/default
func (h *CardHandler) SetDefaultCard(w http.ResponseWriter, r *http.Request) {
	snap := h.service.SetDefaultCard(r.Context(), cardIDParam(r))
	h.respondWithJSON(w, http.StatusOK, types.NewCardCollectionResponse(snap))
}

// SetActiveRequest represents the request body for activating a card.
type SetActiveRequest struct {
	Active *bool `json:"active"`
}

// SetCardActive activates or deactivates a card.
// POST /cards/{cardID}/active
func (h *CardHandler) SetCardActive(w http.ResponseWriter, r *http.Request) {
	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Active == nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	snap := h.service.SetCardActive(r.Context(), cardIDParam(r), *req.Active)
	h.respondWithJSON(w, http.StatusOK, types.NewCardCollectionResponse(snap))
}

// ToggleExpanded expands or collapses a card's detail view.
// POST /cards/{cardID}/expand
func (h *CardHandler) ToggleExpanded(w http.ResponseWriter, r *http.Request) {
	snap := h.service.ToggleExpanded(r.Context(), cardIDParam(r))
	h.respondWithJSON(w, http.StatusOK, types.NewCardCollectionResponse(snap))
}

// SelectCard marks a card as selected.
// POST /cards/{cardID}/select
func (h *CardHandler) SelectCard(w http.ResponseWriter, r *http.Request) {
	snap := h.service.SelectCard(r.Context(), cardIDParam(r))
	h.respondWithJSON(w, http.StatusOK, types.NewCardCollectionResponse(snap))
}
