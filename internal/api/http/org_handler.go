package http

import (
	"net/http"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/repository"
)

type OrgHandler struct {
	orgRepo repository.OrganizationRepository
}

func NewOrgHandler(orgRepo repository.OrganizationRepository) *OrgHandler {
	return &OrgHandler{orgRepo: orgRepo}
}

func (h *OrgHandler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.orgRepo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orgs)
}

func (h *OrgHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	org, err := h.orgRepo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrgHandler) Create(w http.ResponseWriter, r *http.Request) {
	var org domain.Organization
	if err := decodeBody(r, &org); err != nil {
		writeError(w, err)
		return
	}
	if org.Type != domain.OrgTypeGarage && org.Type != domain.OrgTypeSupplier {
		org.Type = domain.OrgTypeGarage
	}

	if err := h.orgRepo.Create(r.Context(), &org); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, org)
}
