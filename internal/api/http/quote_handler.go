package http

import (
	"context"
	"net/http"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/service"
)

type QuoteHandler struct {
	quoteSvc service.QuoteService
}

func NewQuoteHandler(quoteSvc service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteSvc: quoteSvc}
}

type submitQuoteResponse struct {
	Quote *domain.PartQuote `json:"quote"`
	// BudgetExceeded warns that the total is above the request's price
	// ceiling. The quote is created regardless.
	BudgetExceeded bool `json:"budget_exceeded"`
}

func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, orgID, err := actorFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}
	requestID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input service.QuoteInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	quote, budgetExceeded, err := h.quoteSvc.SubmitQuote(r.Context(), actor, orgID, requestID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, submitQuoteResponse{Quote: quote, BudgetExceeded: budgetExceeded})
}

func (h *QuoteHandler) ListForRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	quotes, err := h.quoteSvc.ListQuotesForRequest(r.Context(), requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	_, orgID, err := actorFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	quotes, err := h.quoteSvc.ListSupplierQuotes(r.Context(), orgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.quoteSvc.AcceptQuote)
}

func (h *QuoteHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.quoteSvc.RejectQuote)
}

func (h *QuoteHandler) resolve(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, actor service.Actor, orgID, quoteID int32) (*domain.PartQuote, error)) {
	actor, orgID, err := actorFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}
	quoteID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	quote, err := op(r.Context(), actor, orgID, quoteID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}
