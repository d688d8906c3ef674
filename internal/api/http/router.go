package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Auth     *AuthHandler
	Request  *RequestHandler
	Quote    *QuoteHandler
	Team     *TeamHandler
	Activity *ActivityHandler
	Org      *OrgHandler
}

// NewRouter wires the API routes. Everything under /api/v1 requires a valid
// access token except login and refresh.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(auth.Handler)

	protected.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)

	protected.HandleFunc("/requests", h.Request.Create).Methods(http.MethodPost)
	protected.HandleFunc("/requests", h.Request.List).Methods(http.MethodGet)
	protected.HandleFunc("/requests/search", h.Request.Search).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{id:[0-9]+}", h.Request.Get).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{id:[0-9]+}/fulfill", h.Request.MarkFulfilled).Methods(http.MethodPost)
	protected.HandleFunc("/requests/{id:[0-9]+}/quotes", h.Quote.Submit).Methods(http.MethodPost)
	protected.HandleFunc("/requests/{id:[0-9]+}/quotes", h.Quote.ListForRequest).Methods(http.MethodGet)

	protected.HandleFunc("/quotes", h.Quote.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/quotes/{id:[0-9]+}/accept", h.Quote.Accept).Methods(http.MethodPost)
	protected.HandleFunc("/quotes/{id:[0-9]+}/reject", h.Quote.Reject).Methods(http.MethodPost)

	protected.HandleFunc("/team", h.Team.List).Methods(http.MethodGet)
	protected.HandleFunc("/team", h.Team.Create).Methods(http.MethodPost)
	protected.HandleFunc("/team/{id:[0-9]+}", h.Team.Get).Methods(http.MethodGet)
	protected.HandleFunc("/team/{id:[0-9]+}", h.Team.Update).Methods(http.MethodPut)
	protected.HandleFunc("/team/{id:[0-9]+}", h.Team.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/activity", h.Activity.Search).Methods(http.MethodGet)

	protected.HandleFunc("/orgs", h.Org.List).Methods(http.MethodGet)
	protected.HandleFunc("/orgs", h.Org.Create).Methods(http.MethodPost)
	protected.HandleFunc("/orgs/{id:[0-9]+}", h.Org.Get).Methods(http.MethodGet)

	return r
}
