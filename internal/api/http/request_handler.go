package http

import (
	"net/http"
	"strconv"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/service"

	"github.com/gorilla/mux"
)

type RequestHandler struct {
	requestSvc service.RequestService
}

func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, orgID, err := actorFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var input service.RequestInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	req, err := h.requestSvc.CreateRequest(r.Context(), actor, orgID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	_, orgID, err := actorFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	requests, err := h.requestSvc.ListRequests(r.Context(), orgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// Search serves the open-request board suppliers quote from. An empty term
// matches everything; urgency defaults to "all".
func (h *RequestHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	urgency := domain.RequestUrgency(r.URL.Query().Get("urgency"))
	if urgency == "" {
		urgency = domain.RequestUrgencyAll
	}

	requests, err := h.requestSvc.SearchOpenRequests(r.Context(), term, urgency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

type requestDetailResponse struct {
	Request *domain.PartRequest `json:"request"`
	Quotes  []domain.PartQuote  `json:"quotes"`
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, quotes, err := h.requestSvc.GetRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requestDetailResponse{Request: req, Quotes: quotes})
}

func (h *RequestHandler) MarkFulfilled(w http.ResponseWriter, r *http.Request) {
	actor, orgID, err := actorFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.requestSvc.MarkFulfilled(r.Context(), actor, orgID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &service.ValidationError{Field: "id", Message: "invalid id"}
	}
	return int32(id), nil
}
