package http

import (
	"net/http"

	"fixwize-backend/internal/service"
)

type TeamHandler struct {
	teamSvc service.TeamService
}

func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	_, orgID, err := actorFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	members, err := h.teamSvc.ListMembers(r.Context(), orgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	member, err := h.teamSvc.GetMember(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, orgID, err := actorFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var input service.MemberInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	member, err := h.teamSvc.AddMember(r.Context(), actor, orgID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var input service.MemberInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	member, err := h.teamSvc.UpdateMember(r.Context(), actor, orgID, id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

// Delete removes a member. The irreversible call only goes through when the
// client confirms it via the confirm query parameter.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	confirmed := r.URL.Query().Get("confirm") == "true"
	if err := h.teamSvc.DeleteMember(r.Context(), actor, orgID, id, confirmed); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
