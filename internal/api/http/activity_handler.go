package http

import (
	"net/http"
	"strconv"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/service"
)

type ActivityHandler struct {
	activitySvc service.ActivityService
}

func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// Search lists activity entries for the caller's organization, filtered by
// the optional user_id, term, action and window query parameters.
func (h *ActivityHandler) Search(w http.ResponseWriter, r *http.Request) {
	_, orgID, err := actorFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	q := r.URL.Query()
	filter := domain.ActivityFilter{
		Term:   q.Get("term"),
		Action: domain.ActivityAction(q.Get("action")),
		Window: domain.ActivityWindow(q.Get("window")),
	}
	if raw := q.Get("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, &service.ValidationError{Field: "user_id", Message: "invalid user id"})
			return
		}
		filter.UserID = int32(userID)
	}

	entries, err := h.activitySvc.Search(r.Context(), orgID, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
